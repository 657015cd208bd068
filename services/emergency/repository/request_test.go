package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/models"
)

func setupEmergencyRepo(t *testing.T) (*EmergencyRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewEmergencyRepo(&models.Config{}, sqlxDB, nil)
	return repo, mock
}

var requestColumnNames = []string{
	"id", "requester_id", "type", "urgency", "blood_type", "longitude", "latitude",
	"street", "city", "state", "zip_code", "country", "description", "deadline", "status",
	"fulfilled_by", "fulfilled_at", "fulfillment_notes", "created_at", "updated_at",
}

func requestRows(id, requesterID uuid.UUID, status models.RequestStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(requestColumnNames).AddRow(
		id, requesterID, models.ResourceBlood, models.UrgencyCritical, models.BloodONeg,
		77.59, 12.97, "", "Bengaluru", "", "", "", "need O- urgently", nil, status,
		nil, nil, "", now, now,
	)
}

func emptyResponseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "request_id", "responder_id", "message", "contact_info", "availability", "status", "responded_at",
	})
}

func TestGetRequest_NotFound(t *testing.T) {
	repo, mock := setupEmergencyRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM emergency_requests WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(requestColumnNames))

	_, err := repo.GetRequest(context.Background(), uuid.New())
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequest_HydratesResponses(t *testing.T) {
	repo, mock := setupEmergencyRepo(t)

	requestID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM emergency_requests WHERE id = \$1`).
		WithArgs(requestID).
		WillReturnRows(requestRows(requestID, uuid.New(), models.RequestStatusActive))
	mock.ExpectQuery(`SELECT .+ FROM request_responses WHERE request_id = \$1`).
		WithArgs(requestID).
		WillReturnRows(emptyResponseRows())

	req, err := repo.GetRequest(context.Background(), requestID)
	require.NoError(t, err)
	assert.Equal(t, requestID, req.ID)
	assert.Equal(t, models.UrgencyCritical, req.Urgency)
	assert.Empty(t, req.Responses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseRequest_Success(t *testing.T) {
	repo, mock := setupEmergencyRepo(t)

	requestID := uuid.New()
	mock.ExpectExec(`UPDATE emergency_requests\s+SET status = \$1, updated_at = NOW\(\)\s+WHERE id = \$2 AND status = 'active'`).
		WithArgs(models.RequestStatusCancelled, requestID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CloseRequest(context.Background(), requestID, models.RequestStatusCancelled, nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseRequest_WithFulfillment(t *testing.T) {
	repo, mock := setupEmergencyRepo(t)

	requestID := uuid.New()
	fulfilledBy := uuid.New()
	fulfilledAt := time.Now()

	mock.ExpectExec(`UPDATE emergency_requests\s+SET status = \$1, fulfilled_by = \$2, fulfilled_at = \$3, fulfillment_notes = \$4`).
		WithArgs(models.RequestStatusFulfilled, fulfilledBy, fulfilledAt, "donor arrived", requestID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CloseRequest(context.Background(), requestID, models.RequestStatusFulfilled, &models.Fulfillment{
		FulfilledBy: fulfilledBy,
		FulfilledAt: fulfilledAt,
		Notes:       "donor arrived",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseRequest_AlreadyTerminal(t *testing.T) {
	repo, mock := setupEmergencyRepo(t)

	requestID := uuid.New()

	// No active row to update; the follow-up read finds the request already
	// fulfilled, so the caller gets a conflict rather than not-found.
	mock.ExpectExec(`UPDATE emergency_requests`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .+ FROM emergency_requests WHERE id = \$1`).
		WithArgs(requestID).
		WillReturnRows(requestRows(requestID, uuid.New(), models.RequestStatusFulfilled))
	mock.ExpectQuery(`SELECT .+ FROM request_responses WHERE request_id = \$1`).
		WillReturnRows(emptyResponseRows())

	err := repo.CloseRequest(context.Background(), requestID, models.RequestStatusCancelled, nil)
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseRequest_MissingRequest(t *testing.T) {
	repo, mock := setupEmergencyRepo(t)

	mock.ExpectExec(`UPDATE emergency_requests`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .+ FROM emergency_requests WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(requestColumnNames))

	err := repo.CloseRequest(context.Background(), uuid.New(), models.RequestStatusCancelled, nil)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseRequest_NonTerminalStatus(t *testing.T) {
	repo, _ := setupEmergencyRepo(t)

	err := repo.CloseRequest(context.Background(), uuid.New(), models.RequestStatusActive, nil)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}
