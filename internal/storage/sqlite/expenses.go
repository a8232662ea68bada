package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
)

// CreateExpense persists a new expense and its splits in one transaction.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate ID if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, owner_id, description, amount, paid_by, category, tag, intent, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.OwnerID, expense.Description, expense.Amount, expense.PaidBy,
		expense.Category, nullString(expense.Tag), nullString(expense.Intent), expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, split := range expense.Splits {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, person_id, amount, position) VALUES (?, ?, ?, ?)",
			expense.ID, split.PersonID, split.Amount, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListExpenses retrieves all expenses for an owner, with splits, in insertion order.
func (s *SQLiteStore) ListExpenses(ctx context.Context, ownerID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, description, amount, paid_by, category, tag, intent, created_at
		 FROM expenses WHERE owner_id = ? ORDER BY rowid`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	index := make(map[string]int)
	for rows.Next() {
		var e models.Expense
		var tag, intent sql.NullString
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Description, &e.Amount, &e.PaidBy,
			&e.Category, &tag, &intent, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Tag = tag.String
		e.Intent = intent.String
		index[e.ID] = len(expenses)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	if len(expenses) == 0 {
		return expenses, nil
	}

	// Load every split for the owner in one pass
	splitRows, err := s.db.QueryContext(ctx,
		`SELECT s.expense_id, s.person_id, s.amount
		 FROM expense_splits s JOIN expenses e ON e.id = s.expense_id
		 WHERE e.owner_id = ?
		 ORDER BY s.expense_id, s.position`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var expenseID string
		var split models.ExpenseSplit
		if err := splitRows.Scan(&expenseID, &split.PersonID, &split.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		i, ok := index[expenseID]
		if !ok {
			continue
		}
		expenses[i].Splits = append(expenses[i].Splits, split)
	}
	if err := splitRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense by ID. Its splits are removed by cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, ownerID, expenseID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE id = ? AND owner_id = ?",
		expenseID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted expense: %w", err)
	}
	if n == 0 {
		return notFound("expense", expenseID)
	}

	return nil
}

// nullString stores empty optional text as NULL.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
