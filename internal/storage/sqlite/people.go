package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
)

// CreatePerson persists a new person to the database.
func (s *SQLiteStore) CreatePerson(ctx context.Context, person *models.Person) error {
	// Generate ID if not set
	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	if person.CreatedAt == 0 {
		person.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO people (id, owner_id, name, color, created_at) VALUES (?, ?, ?, ?, ?)",
		person.ID, person.OwnerID, person.Name, person.Color, person.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}

	return nil
}

// ListPeople retrieves all people for an owner in insertion order.
func (s *SQLiteStore) ListPeople(ctx context.Context, ownerID string) ([]models.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, name, color, created_at FROM people WHERE owner_id = ? ORDER BY rowid",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Color, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}

	return people, nil
}

// DeletePerson removes a person by ID.
func (s *SQLiteStore) DeletePerson(ctx context.Context, ownerID, personID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM people WHERE id = ? AND owner_id = ?",
		personID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted person: %w", err)
	}
	if n == 0 {
		return notFound("person", personID)
	}

	return nil
}
