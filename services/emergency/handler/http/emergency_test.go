package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/services/emergency/mocks"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestFindNearbyRequests_MissingCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewEmergencyHandler(mocks.NewMockEmergencyUC(ctrl))

	c, rec := newTestContext(t, http.MethodGet, "/emergency/nearby?lat=12.97", "")
	require.NoError(t, h.FindNearbyRequests(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindNearbyRequests_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEmergencyHandler(mockUC)

	mockUC.EXPECT().FindNearbyRequests(gomock.Any(),
		models.GeoPoint{Longitude: 77.59, Latitude: 12.97}, 5.0,
		&models.NearbyRequestsFilter{BloodType: models.BloodONeg}).
		Return([]*models.EmergencyRequest{}, nil)

	c, rec := newTestContext(t, http.MethodGet,
		"/emergency/nearby?lat=12.97&lng=77.59&radius=5&blood_type=O-", "")
	require.NoError(t, h.FindNearbyRequests(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRespondToRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEmergencyHandler(mockUC)

	requestID := uuid.New()
	userID := uuid.New()

	mockUC.EXPECT().RespondToRequest(gomock.Any(), requestID, userID, gomock.Any()).
		Return(&models.Response{
			ID:          uuid.New(),
			RequestID:   requestID,
			ResponderID: userID,
			Status:      models.ResponseStatusPending,
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/",
		`{"message":"on my way","contact_info":"9876543210"}`)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("user_id", userID)

	require.NoError(t, h.RespondToRequest(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRespondToRequest_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewEmergencyHandler(mocks.NewMockEmergencyUC(ctrl))

	c, rec := newTestContext(t, http.MethodPost, "/", `{"contact_info":"9876543210"}`)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	require.NoError(t, h.RespondToRequest(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRespondToRequest_DuplicateConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEmergencyHandler(mockUC)

	mockUC.EXPECT().RespondToRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Conflict("you have already responded to this request"))

	c, rec := newTestContext(t, http.MethodPost, "/", `{"contact_info":"9876543210"}`)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())
	c.Set("user_id", uuid.New())

	require.NoError(t, h.RespondToRequest(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "already responded")
}

func TestUpdateRequestStatus_ForbiddenPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEmergencyHandler(mockUC)

	mockUC.EXPECT().UpdateRequestStatus(gomock.Any(), gomock.Any(), gomock.Any(), models.RoleDonor, gomock.Any()).
		Return(nil, apperrors.Forbidden("only the requester or an admin may update this request"))

	c, rec := newTestContext(t, http.MethodPatch, "/", `{"status":"cancelled"}`)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())
	c.Set("user_id", uuid.New())
	c.Set("user_role", models.RoleDonor)

	require.NoError(t, h.UpdateRequestStatus(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetRequest_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewEmergencyHandler(mocks.NewMockEmergencyUC(ctrl))

	c, rec := newTestContext(t, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetRequest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
