package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/models"
)

func sampleResponse(requestID uuid.UUID) *models.Response {
	return &models.Response{
		ID:          uuid.New(),
		RequestID:   requestID,
		ResponderID: uuid.New(),
		Message:     "I can donate",
		ContactInfo: "9876543210",
		Status:      models.ResponseStatusPending,
	}
}

func TestCreateResponse_Success(t *testing.T) {
	repo, mock := setupEmergencyRepo(t)

	requestID := uuid.New()
	resp := sampleResponse(requestID)

	mock.ExpectExec(`INSERT INTO request_responses`).
		WithArgs(resp.ID, requestID, resp.ResponderID, resp.Message, resp.ContactInfo, resp.Availability, resp.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateResponse(context.Background(), resp)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateResponse_RequestNoLongerActive(t *testing.T) {
	repo, mock := setupEmergencyRepo(t)

	requestID := uuid.New()
	resp := sampleResponse(requestID)

	// The guarded insert matches no active row; the follow-up read shows the
	// request already closed.
	mock.ExpectExec(`INSERT INTO request_responses`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .+ FROM emergency_requests WHERE id = \$1`).
		WithArgs(requestID).
		WillReturnRows(requestRows(requestID, uuid.New(), models.RequestStatusFulfilled))
	mock.ExpectQuery(`SELECT .+ FROM request_responses WHERE request_id = \$1`).
		WillReturnRows(emptyResponseRows())

	err := repo.CreateResponse(context.Background(), resp)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
	assert.Contains(t, err.Error(), "no longer active")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateResponse_Duplicate(t *testing.T) {
	repo, mock := setupEmergencyRepo(t)

	requestID := uuid.New()
	resp := sampleResponse(requestID)

	// Zero rows while the request is still active means the unique
	// (request_id, responder_id) index swallowed a duplicate.
	mock.ExpectExec(`INSERT INTO request_responses`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .+ FROM emergency_requests WHERE id = \$1`).
		WithArgs(requestID).
		WillReturnRows(requestRows(requestID, uuid.New(), models.RequestStatusActive))
	mock.ExpectQuery(`SELECT .+ FROM request_responses WHERE request_id = \$1`).
		WillReturnRows(emptyResponseRows())

	err := repo.CreateResponse(context.Background(), resp)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
	assert.Contains(t, err.Error(), "already responded")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateResponse_MissingRequest(t *testing.T) {
	repo, mock := setupEmergencyRepo(t)

	resp := sampleResponse(uuid.New())

	mock.ExpectExec(`INSERT INTO request_responses`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .+ FROM emergency_requests WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(requestColumnNames))

	err := repo.CreateResponse(context.Background(), resp)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
