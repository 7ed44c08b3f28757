package profiles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitforge/fitforge-api/internal/plans"
	"github.com/fitforge/fitforge-api/internal/storage"
)

// Service manages the per-owner pre-fill profile slot.
type Service struct {
	storage storage.ProfilesStorage
}

func NewService(store storage.ProfilesStorage) *Service {
	return &Service{storage: store}
}

func (s *Service) Get(ctx context.Context, ownerUserID string) (*ProfileDTO, bool, error) {
	rec, err := s.storage.GetLastProfile(ctx, ownerUserID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return toDTO(rec), true, nil
}

func (s *Service) Put(ctx context.Context, ownerUserID string, req PutProfileRequest) (*ProfileDTO, error) {
	// Same validation rules as a generation request, the profile
	// exists to feed one.
	probe := plans.GeneratePlanRequest{
		HeightCm:  req.HeightCm,
		WeightKg:  req.WeightKg,
		Goal:      req.Goal,
		Equipment: req.Equipment,
	}
	if err := probe.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rec := storage.ProfileRecord{
		OwnerUserID: ownerUserID,
		HeightCm:    req.HeightCm,
		WeightKg:    req.WeightKg,
		Goal:        req.Goal,
		Equipment:   req.Equipment,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.storage.SaveLastProfile(ctx, rec); err != nil {
		return nil, err
	}
	return toDTO(rec), nil
}

func toDTO(rec storage.ProfileRecord) *ProfileDTO {
	equipment := rec.Equipment
	if equipment == nil {
		equipment = []string{}
	}
	return &ProfileDTO{
		HeightCm:  rec.HeightCm,
		WeightKg:  rec.WeightKg,
		Goal:      rec.Goal,
		Equipment: equipment,
		UpdatedAt: rec.UpdatedAt,
	}
}
