package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/emresource/emresource/internal/pkg/models"
)

// ListContacts returns a user's SOS contact list.
func (r *EmergencyRepo) ListContacts(ctx context.Context, userID uuid.UUID) ([]*models.EmergencyContact, error) {
	query := `SELECT id, user_id, name, phone, relationship, created_at
		FROM emergency_contacts WHERE user_id = $1 ORDER BY created_at ASC`

	var contacts []*models.EmergencyContact
	if err := r.db.SelectContext(ctx, &contacts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}
	return contacts, nil
}

// AddContact appends a contact to a user's SOS list.
func (r *EmergencyRepo) AddContact(ctx context.Context, contact *models.EmergencyContact) error {
	query := `INSERT INTO emergency_contacts (id, user_id, name, phone, relationship, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`

	if _, err := r.db.ExecContext(ctx, query,
		contact.ID, contact.UserID, contact.Name, contact.Phone, contact.Relationship); err != nil {
		return fmt.Errorf("failed to add emergency contact: %w", err)
	}
	return nil
}
