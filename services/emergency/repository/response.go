package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/models"
)

// CreateResponse records a responder's offer as a single guarded insert: the
// row materializes only while the request is still active, and the unique
// (request_id, responder_id) index swallows a concurrent duplicate. One
// statement means the activity check and the insert cannot interleave with a
// concurrent close.
func (r *EmergencyRepo) CreateResponse(ctx context.Context, resp *models.Response) error {
	query := `INSERT INTO request_responses (
		id, request_id, responder_id, message, contact_info, availability, status, responded_at
	)
	SELECT $1, $2, $3, $4, $5, $6, $7, NOW()
	FROM emergency_requests
	WHERE id = $2 AND status = 'active'
	ON CONFLICT (request_id, responder_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query,
		resp.ID, resp.RequestID, resp.ResponderID,
		resp.Message, resp.ContactInfo, resp.Availability, resp.Status)
	if err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check response insert: %w", err)
	}
	if rows == 1 {
		return nil
	}

	// Zero rows: the request is missing, no longer active, or this
	// responder already responded. Disambiguate for the caller.
	req, err := r.GetRequest(ctx, resp.RequestID)
	if err != nil {
		return err
	}
	if req.Status != models.RequestStatusActive {
		return apperrors.Conflict("request is no longer active")
	}
	return apperrors.Conflict("you have already responded to this request")
}

// ListResponses returns every response to a request, oldest first.
func (r *EmergencyRepo) ListResponses(ctx context.Context, requestID uuid.UUID) ([]models.Response, error) {
	query := `SELECT id, request_id, responder_id, message, contact_info, availability, status, responded_at
		FROM request_responses WHERE request_id = $1 ORDER BY responded_at ASC`

	var responses []models.Response
	if err := r.db.SelectContext(ctx, &responses, query, requestID); err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return responses, nil
}

// ListResponsesByResponder returns the caller's outgoing responses, newest
// first.
func (r *EmergencyRepo) ListResponsesByResponder(ctx context.Context, responderID uuid.UUID) ([]*models.Response, error) {
	query := `SELECT id, request_id, responder_id, message, contact_info, availability, status, responded_at
		FROM request_responses WHERE responder_id = $1 ORDER BY responded_at DESC`

	var responses []*models.Response
	if err := r.db.SelectContext(ctx, &responses, query, responderID); err != nil {
		return nil, fmt.Errorf("failed to list outgoing responses: %w", err)
	}
	return responses, nil
}
