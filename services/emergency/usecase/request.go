package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/logger"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/internal/utils"
)

// CreateRequest validates and persists a new emergency request, indexes its
// location and announces it to the notifier.
func (uc *EmergencyUC) CreateRequest(ctx context.Context, requesterID uuid.UUID, payload *models.RequestPayload) (*models.EmergencyRequest, error) {
	if !payload.Type.Valid() {
		return nil, apperrors.Validation("unknown resource type")
	}
	if !payload.Urgency.Valid() {
		return nil, apperrors.Validation("unknown urgency level")
	}
	if !payload.Location.Valid() {
		return nil, apperrors.Validation("location is out of bounds")
	}
	if payload.Type == models.ResourceBlood && !payload.BloodType.Valid() {
		return nil, apperrors.Validation("blood requests require a blood type")
	}
	if payload.Deadline != nil && payload.Deadline.Before(time.Now()) {
		return nil, apperrors.Validation("deadline is in the past")
	}

	req := &models.EmergencyRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		Type:        payload.Type,
		Urgency:     payload.Urgency,
		BloodType:   payload.BloodType,
		Location:    payload.Location,
		Address:     payload.Address,
		Description: payload.Description,
		Deadline:    payload.Deadline,
		Status:      models.RequestStatusActive,
	}
	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	if err := uc.repo.IndexRequestLocation(ctx, req.ID, req.Location); err != nil {
		logger.Warn("failed to index request location",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}

	if err := uc.gw.PublishRequestCreated(ctx, &models.RequestCreatedEvent{
		RequestID: req.ID.String(),
		Type:      req.Type,
		Urgency:   req.Urgency,
		BloodType: req.BloodType,
		Location:  req.Location,
	}); err != nil {
		logger.Warn("failed to publish request created event",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}

	return req, nil
}

func (uc *EmergencyUC) GetRequest(ctx context.Context, id uuid.UUID) (*models.EmergencyRequest, error) {
	return uc.repo.GetRequest(ctx, id)
}

func (uc *EmergencyUC) ListRequests(ctx context.Context, filter *models.RequestListFilter) ([]*models.EmergencyRequest, error) {
	return uc.repo.ListRequests(ctx, filter)
}

func (uc *EmergencyUC) ListMyRequests(ctx context.Context, requesterID uuid.UUID) ([]*models.EmergencyRequest, error) {
	return uc.repo.ListRequestsByRequester(ctx, requesterID)
}

func (uc *EmergencyUC) ListOutgoingResponses(ctx context.Context, responderID uuid.UUID) ([]*models.Response, error) {
	return uc.repo.ListResponsesByResponder(ctx, responderID)
}

// FindNearbyRequests runs a radius query over the proximity index, hydrates
// and filters the active hits, and orders them urgency first: a critical
// request two kilometers away outranks a medium one around the corner.
// Distance breaks ties within a level, recency after that.
func (uc *EmergencyUC) FindNearbyRequests(ctx context.Context, origin models.GeoPoint, radiusKm float64, filter *models.NearbyRequestsFilter) ([]*models.EmergencyRequest, error) {
	if !origin.Valid() {
		return nil, apperrors.Validation("location is out of bounds")
	}
	radiusKm = utils.ClampRadiusKm(radiusKm, uc.cfg.Geo.DefaultRequestRadiusKm, uc.cfg.Geo.MaxRadiusKm)

	hits, err := uc.repo.NearbyRequests(ctx, origin, radiusKm)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return []*models.EmergencyRequest{}, nil
	}

	distances := make(map[string]float64, len(hits))
	ids := make([]uuid.UUID, 0, len(hits))
	for _, hit := range hits {
		id, err := uuid.Parse(hit.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
		distances[hit.ID] = hit.Distance
	}

	requests, err := uc.repo.GetRequestsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.EmergencyRequest, 0, len(requests))
	for _, req := range requests {
		if req.Status != models.RequestStatusActive {
			continue
		}
		if filter != nil {
			if filter.Type != "" && req.Type != filter.Type {
				continue
			}
			if filter.Urgency != "" && req.Urgency != filter.Urgency {
				continue
			}
			if filter.BloodType != "" && req.BloodType != filter.BloodType {
				continue
			}
		}
		req.DistanceKm = distances[req.ID.String()]
		matched = append(matched, req)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Urgency.Rank() != matched[j].Urgency.Rank() {
			return matched[i].Urgency.Rank() > matched[j].Urgency.Rank()
		}
		if matched[i].DistanceKm != matched[j].DistanceKm {
			return matched[i].DistanceKm < matched[j].DistanceKm
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched, nil
}

// RespondToRequest records a responder's offer. The store-level guard makes
// the activity check and the duplicate check part of the insert itself.
func (uc *EmergencyUC) RespondToRequest(ctx context.Context, requestID, responderID uuid.UUID, payload *models.ResponsePayload) (*models.Response, error) {
	if payload.ContactInfo == "" {
		return nil, apperrors.Validation("contact info is required")
	}

	resp := &models.Response{
		ID:           uuid.New(),
		RequestID:    requestID,
		ResponderID:  responderID,
		Message:      payload.Message,
		ContactInfo:  payload.ContactInfo,
		Availability: payload.Availability,
		Status:       models.ResponseStatusPending,
		RespondedAt:  time.Now(),
	}
	if err := uc.repo.CreateResponse(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateRequestStatus moves an active request into a terminal status. Only
// the requester who opened it, or an admin, may close it.
func (uc *EmergencyUC) UpdateRequestStatus(ctx context.Context, requestID, actorID uuid.UUID, actorRole models.Role, payload *models.StatusUpdatePayload) (*models.EmergencyRequest, error) {
	if !payload.Status.Terminal() {
		return nil, apperrors.Validation("status must be fulfilled, cancelled or expired")
	}

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.RequesterID != actorID && actorRole != models.RoleAdmin {
		return nil, apperrors.Forbidden("only the requester or an admin may update this request")
	}

	var fulfillment *models.Fulfillment
	if payload.Status == models.RequestStatusFulfilled {
		fulfillment = &models.Fulfillment{
			FulfilledBy: actorID,
			FulfilledAt: time.Now(),
			Notes:       payload.Notes,
		}
	}

	if err := uc.repo.CloseRequest(ctx, requestID, payload.Status, fulfillment); err != nil {
		return nil, err
	}

	// Closed requests stop surfacing in proximity queries.
	if err := uc.repo.RemoveRequestLocation(ctx, requestID); err != nil {
		logger.Warn("failed to deindex closed request",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
	}

	req.Status = payload.Status
	req.Fulfillment = fulfillment
	return req, nil
}

func (uc *EmergencyUC) Stats(ctx context.Context) (*models.EmergencyStats, error) {
	return uc.repo.Stats(ctx)
}
