package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type RoleSalary struct {
	RoleID string
	Salary int64
	// Cooldown is the minimum time between two collections for this role,
	// in seconds.
	Cooldown int64
}

// CollectResult reports the outcome of a salary collection. When nothing was
// collected, Wait is the remaining time until the soonest-eligible role pays
// again (zero when the user holds no salaried role at all).
type CollectResult struct {
	Collected int64
	Wait      time.Duration
}

// AssignRoleSalary creates or updates a role's salary and cooldown.
func (s *Store) AssignRoleSalary(ctx context.Context, roleID string, salary, cooldown int64) error {
	if salary <= 0 || cooldown <= 0 {
		return ErrInvalidAmount
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO role_salaries (role_id, salary, cooldown)
		VALUES ($1, $2, $3)
		ON CONFLICT (role_id)
		DO UPDATE SET salary = EXCLUDED.salary, cooldown = EXCLUDED.cooldown
	`, roleID, salary, cooldown)
	if err != nil {
		return fmt.Errorf("assign role salary: %w", err)
	}
	return nil
}

// RemoveRoleSalary deletes a role's salary. The returned bool reports
// whether the role had one.
func (s *Store) RemoveRoleSalary(ctx context.Context, roleID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM role_salaries WHERE role_id = $1", roleID)
	if err != nil {
		return false, fmt.Errorf("remove role salary: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListRoleSalaries returns all salaried roles ordered by salary, highest
// first.
func (s *Store) ListRoleSalaries(ctx context.Context) ([]RoleSalary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT role_id, salary, cooldown FROM role_salaries ORDER BY salary DESC")
	if err != nil {
		return nil, fmt.Errorf("list role salaries: %w", err)
	}
	defer rows.Close()

	var salaries []RoleSalary
	for rows.Next() {
		var rs RoleSalary
		if err := rows.Scan(&rs.RoleID, &rs.Salary, &rs.Cooldown); err != nil {
			return nil, err
		}
		salaries = append(salaries, rs)
	}
	return salaries, rows.Err()
}

// Collect pays the salaries of the held roles whose cooldown has elapsed
// since the user's last collection. All roles share one last_collect
// timestamp: collecting on a fast-cooldown role resets the timer for every
// role. The timestamp moves only when at least one role paid.
func (s *Store) Collect(ctx context.Context, userID string, heldRoleIDs []string) (CollectResult, error) {
	var result CollectResult
	if len(heldRoleIDs) == 0 {
		return result, nil
	}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var lastCollect int64
		err := tx.QueryRow(
			"SELECT last_collect FROM salary_cooldowns WHERE user_id = $1", userID).Scan(&lastCollect)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("query last collect: %w", err)
		}

		salaries, err := heldRoleSalaries(tx, heldRoleIDs)
		if err != nil {
			return err
		}
		if len(salaries) == 0 {
			return nil
		}

		now := s.now().Unix()
		elapsed := now - lastCollect
		var (
			total   int64
			soonest int64 = -1
		)
		for _, rs := range salaries {
			if lastCollect == 0 || elapsed >= rs.Cooldown {
				total += rs.Salary
				continue
			}
			if remaining := rs.Cooldown - elapsed; soonest == -1 || remaining < soonest {
				soonest = remaining
			}
		}

		if total == 0 {
			result.Wait = time.Duration(soonest) * time.Second
			return nil
		}

		if err := creditWallet(tx, userID, total); err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO salary_cooldowns (user_id, last_collect)
			VALUES ($1, $2)
			ON CONFLICT (user_id) DO UPDATE SET last_collect = EXCLUDED.last_collect
		`, userID, now)
		if err != nil {
			return fmt.Errorf("set last collect: %w", err)
		}
		result.Collected = total
		return nil
	})
	if err != nil {
		return CollectResult{}, err
	}
	return result, nil
}

// heldRoleSalaries returns the salaried subset of the held roles.
func heldRoleSalaries(tx *sql.Tx, roleIDs []string) ([]RoleSalary, error) {
	placeholders := make([]string, len(roleIDs))
	args := make([]any, len(roleIDs))
	for i, id := range roleIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	rows, err := tx.Query(fmt.Sprintf(
		"SELECT role_id, salary, cooldown FROM role_salaries WHERE role_id IN (%s)",
		strings.Join(placeholders, ",")), args...)
	if err != nil {
		return nil, fmt.Errorf("query held role salaries: %w", err)
	}
	defer rows.Close()

	var salaries []RoleSalary
	for rows.Next() {
		var rs RoleSalary
		if err := rows.Scan(&rs.RoleID, &rs.Salary, &rs.Cooldown); err != nil {
			return nil, err
		}
		salaries = append(salaries, rs)
	}
	return salaries, rows.Err()
}
