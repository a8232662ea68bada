// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitledger/internal/models"
)

// ErrNotFound is returned (wrapped) when a record does not exist for the owner.
var ErrNotFound = errors.New("not found")

// Store defines the interface for ledger storage operations.
// Every record is scoped to the user that owns it. The calculator never
// touches the store; services load people and expenses and pass them in.
type Store interface {
	// CreatePerson persists a new person.
	// The person.ID and person.CreatedAt fields are populated if empty.
	CreatePerson(ctx context.Context, person *models.Person) error

	// ListPeople returns the owner's people in the order they were added.
	ListPeople(ctx context.Context, ownerID string) ([]models.Person, error)

	// DeletePerson removes a person. Expenses that reference the person are kept.
	DeletePerson(ctx context.Context, ownerID, personID string) error

	// CreateExpense persists a new expense with its splits.
	// The expense.ID and expense.CreatedAt fields are populated if empty.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns the owner's expenses in the order they were recorded,
	// each with its splits in input order.
	ListExpenses(ctx context.Context, ownerID string) ([]models.Expense, error)

	// DeleteExpense removes an expense and its splits.
	DeleteExpense(ctx context.Context, ownerID, expenseID string) error

	// Close releases any resources held by the store.
	Close() error
}
