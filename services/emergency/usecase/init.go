package usecase

import (
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/services/emergency"
)

// EmergencyUC implements emergency.EmergencyUC.
type EmergencyUC struct {
	repo emergency.EmergencyRepo
	gw   emergency.EmergencyGW
	cfg  *models.Config
}

func NewEmergencyUC(cfg *models.Config, repo emergency.EmergencyRepo, gw emergency.EmergencyGW) *EmergencyUC {
	return &EmergencyUC{
		repo: repo,
		gw:   gw,
		cfg:  cfg,
	}
}
