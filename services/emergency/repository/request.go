package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/models"
)

const requestColumns = `id, requester_id, type, urgency, blood_type, longitude, latitude,
	street, city, state, zip_code, country, description, deadline, status,
	fulfilled_by, fulfilled_at, fulfillment_notes, created_at, updated_at`

// CreateRequest inserts a new emergency request.
func (r *EmergencyRepo) CreateRequest(ctx context.Context, req *models.EmergencyRequest) error {
	query := `INSERT INTO emergency_requests (
		id, requester_id, type, urgency, blood_type, longitude, latitude,
		street, city, state, zip_code, country, description, deadline, status,
		created_at, updated_at
	) VALUES (
		:id, :requester_id, :type, :urgency, :blood_type, :longitude, :latitude,
		:street, :city, :state, :zip_code, :country, :description, :deadline, :status,
		NOW(), NOW()
	)`

	if _, err := r.db.NamedExecContext(ctx, query, req.ToDTO()); err != nil {
		return fmt.Errorf("failed to create emergency request: %w", err)
	}
	return nil
}

// GetRequest loads a request with its responses.
func (r *EmergencyRepo) GetRequest(ctx context.Context, id uuid.UUID) (*models.EmergencyRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM emergency_requests WHERE id = $1`

	var dto models.RequestDTO
	err := r.db.GetContext(ctx, &dto, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("emergency request not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get emergency request: %w", err)
	}

	req := dto.ToRequest()
	responses, err := r.ListResponses(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Responses = responses
	return req, nil
}

// GetRequestsByIDs loads a batch of requests in one round trip. Missing ids
// are skipped, not errors: the proximity index may briefly hold points for
// rows already closed out.
func (r *EmergencyRepo) GetRequestsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.EmergencyRequest, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+requestColumns+` FROM emergency_requests WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build request batch query: %w", err)
	}
	query = r.db.Rebind(query)

	var dtos []models.RequestDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get emergency requests: %w", err)
	}

	requests := make([]*models.EmergencyRequest, 0, len(dtos))
	for i := range dtos {
		requests = append(requests, dtos[i].ToRequest())
	}
	return requests, nil
}

// ListRequests returns a filtered, paged listing, newest first.
func (r *EmergencyRepo) ListRequests(ctx context.Context, filter *models.RequestListFilter) ([]*models.EmergencyRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM emergency_requests WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += ` AND type = $` + strconv.Itoa(len(args))
	}
	if filter.Urgency != "" {
		args = append(args, filter.Urgency)
		query += ` AND urgency = $` + strconv.Itoa(len(args))
	}
	if filter.BloodType != "" {
		args = append(args, filter.BloodType)
		query += ` AND blood_type = $` + strconv.Itoa(len(args))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		query += ` AND city = $` + strconv.Itoa(len(args))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	args = append(args, limit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, (page-1)*limit)
	query += ` OFFSET $` + strconv.Itoa(len(args))

	var dtos []models.RequestDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list emergency requests: %w", err)
	}

	requests := make([]*models.EmergencyRequest, 0, len(dtos))
	for i := range dtos {
		requests = append(requests, dtos[i].ToRequest())
	}
	return requests, nil
}

// ListRequestsByRequester returns the caller's own requests, newest first.
func (r *EmergencyRepo) ListRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.EmergencyRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM emergency_requests
		WHERE requester_id = $1 ORDER BY created_at DESC`

	var dtos []models.RequestDTO
	if err := r.db.SelectContext(ctx, &dtos, query, requesterID); err != nil {
		return nil, fmt.Errorf("failed to list requests by requester: %w", err)
	}

	requests := make([]*models.EmergencyRequest, 0, len(dtos))
	for i := range dtos {
		requests = append(requests, dtos[i].ToRequest())
	}
	return requests, nil
}

// CloseRequest moves an active request into a terminal status as a single
// conditional update: once terminal, a request never transitions again, and
// concurrent closers race for the one row where status is still active.
func (r *EmergencyRepo) CloseRequest(ctx context.Context, requestID uuid.UUID, status models.RequestStatus, fulfillment *models.Fulfillment) error {
	if !status.Terminal() {
		return apperrors.Validation("target status must be terminal")
	}

	var (
		result sql.Result
		err    error
	)
	if fulfillment != nil {
		query := `UPDATE emergency_requests
			SET status = $1, fulfilled_by = $2, fulfilled_at = $3, fulfillment_notes = $4, updated_at = NOW()
			WHERE id = $5 AND status = 'active'`
		result, err = r.db.ExecContext(ctx, query,
			status, fulfillment.FulfilledBy, fulfillment.FulfilledAt, fulfillment.Notes, requestID)
	} else {
		query := `UPDATE emergency_requests
			SET status = $1, updated_at = NOW()
			WHERE id = $2 AND status = 'active'`
		result, err = r.db.ExecContext(ctx, query, status, requestID)
	}
	if err != nil {
		return fmt.Errorf("failed to close emergency request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check request close: %w", err)
	}
	if rows == 0 {
		// Either the row does not exist or it is already terminal.
		if _, getErr := r.GetRequest(ctx, requestID); getErr != nil {
			return getErr
		}
		return apperrors.Conflict("request is no longer active")
	}
	return nil
}

// Stats aggregates the platform overview counters.
func (r *EmergencyRepo) Stats(ctx context.Context) (*models.EmergencyStats, error) {
	query := `SELECT
		COUNT(*) FILTER (WHERE status = 'active') AS active_requests,
		COUNT(*) FILTER (WHERE status = 'fulfilled') AS fulfilled_requests,
		COUNT(*) FILTER (WHERE status = 'active' AND urgency = 'critical') AS critical_requests,
		(SELECT COUNT(*) FROM donors WHERE is_available = TRUE AND status = 'active') AS available_donors,
		(SELECT COUNT(*) FROM facilities WHERE is_active = TRUE) AS active_facilities
	FROM emergency_requests`

	var stats models.EmergencyStats
	row := r.db.QueryRowxContext(ctx, query)
	if err := row.Scan(
		&stats.ActiveRequests,
		&stats.FulfilledRequests,
		&stats.CriticalRequests,
		&stats.AvailableDonors,
		&stats.ActiveFacilities,
	); err != nil {
		return nil, fmt.Errorf("failed to load emergency stats: %w", err)
	}
	return &stats, nil
}
