package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/fitforge/fitforge-api/internal/ai"
	"github.com/fitforge/fitforge-api/internal/blob"
	"github.com/fitforge/fitforge-api/internal/storage"
)

// Service runs the generation pipeline: build the prompt, call the
// model, validate the output, persist the result.
type Service struct {
	provider ai.Provider
	storage  storage.Storage
	archive  blob.Store // nil means archiving disabled
}

func NewService(provider ai.Provider, store storage.Storage, archive blob.Store) *Service {
	return &Service{
		provider: provider,
		storage:  store,
		archive:  archive,
	}
}

// Generate produces a fresh weekly plan for the owner and stores it as
// the owner's last plan, replacing any previous one. The submitted
// profile is also stored so clients can pre-fill the next request.
func (s *Service) Generate(ctx context.Context, ownerUserID string, req GeneratePlanRequest) (*StoredPlan, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.GeneratePlan(ctx, ai.GenerateRequest{
		Instructions: prompt.Instructions,
		UserMessage:  prompt.UserMessage,
	})
	if err != nil {
		return nil, err
	}

	planID := uuid.NewString()
	s.archiveRaw(ctx, planID, raw)

	plan, dropped, err := ParsePlan(raw)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		log.Printf("WARN plans: generation for owner=%s dropped %d invalid entries", ownerUserID, dropped)
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	now := time.Now().UTC()
	rec := storage.PlanRecord{
		ID:             planID,
		OwnerUserID:    ownerUserID,
		Goal:           req.Goal,
		Payload:        payload,
		DroppedEntries: dropped,
		CreatedAt:      now,
	}
	if err := s.storage.SaveLastPlan(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	profileRec := storage.ProfileRecord{
		OwnerUserID: ownerUserID,
		HeightCm:    req.HeightCm,
		WeightKg:    req.WeightKg,
		Goal:        req.Goal,
		Equipment:   req.Equipment,
		UpdatedAt:   now,
	}
	if err := s.storage.SaveLastProfile(ctx, profileRec); err != nil {
		// The plan itself is saved; losing the pre-fill profile is
		// not worth failing the request.
		log.Printf("WARN plans: failed to save profile for owner=%s: %v", ownerUserID, err)
	}

	return &StoredPlan{
		ID:             planID,
		Goal:           req.Goal,
		Plan:           plan,
		DroppedEntries: dropped,
		CreatedAt:      now,
	}, nil
}

func archiveKey(planID string) string {
	return fmt.Sprintf("plans/raw/%s.json", planID)
}

// archiveRaw stores the unparsed model response for debugging. Best
// effort only.
func (s *Service) archiveRaw(ctx context.Context, planID string, raw string) {
	if s.archive == nil {
		return
	}
	key := archiveKey(planID)
	if _, err := s.archive.PutObject(ctx, key, []byte(raw), "application/json"); err != nil {
		log.Printf("WARN plans: failed to archive raw response key=%s: %v", key, err)
	}
}

// LastRaw returns the archived model response behind the owner's stored
// plan. found=false when archiving is disabled, no plan exists, or the
// archived object is gone.
func (s *Service) LastRaw(ctx context.Context, ownerUserID string) ([]byte, bool, error) {
	if s.archive == nil {
		return nil, false, nil
	}

	rec, err := s.storage.GetLastPlan(ctx, ownerUserID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	data, err := s.archive.GetObject(ctx, archiveKey(rec.ID))
	if err != nil {
		log.Printf("WARN plans: failed to read archived response for plan=%s: %v", rec.ID, err)
		return nil, false, nil
	}
	return data, true, nil
}

// Last returns the owner's stored plan, or found=false when there is
// none.
func (s *Service) Last(ctx context.Context, ownerUserID string) (*StoredPlan, bool, error) {
	rec, err := s.storage.GetLastPlan(ctx, ownerUserID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var plan RawPlan
	if err := json.Unmarshal(rec.Payload, &plan); err != nil {
		return nil, false, fmt.Errorf("failed to decode stored plan: %w", err)
	}

	return &StoredPlan{
		ID:             rec.ID,
		Goal:           rec.Goal,
		Plan:           plan,
		DroppedEntries: rec.DroppedEntries,
		CreatedAt:      rec.CreatedAt,
	}, true, nil
}

// LastWeek returns the owner's stored plan grouped into the seven-day
// view.
func (s *Service) LastWeek(ctx context.Context, ownerUserID string) ([]DayAggregate, bool, error) {
	stored, found, err := s.Last(ctx, ownerUserID)
	if err != nil || !found {
		return nil, found, err
	}
	return AggregateWeek(stored.Plan), true, nil
}

// DeleteLast removes the owner's stored plan and its archived raw
// response. Deleting when nothing is stored reports found=false, not an
// error.
func (s *Service) DeleteLast(ctx context.Context, ownerUserID string) (bool, error) {
	archivedID := ""
	if s.archive != nil {
		rec, err := s.storage.GetLastPlan(ctx, ownerUserID)
		if err == nil {
			archivedID = rec.ID
		} else if !errors.Is(err, storage.ErrNotFound) {
			return false, err
		}
	}

	err := s.storage.DeleteLastPlan(ctx, ownerUserID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if archivedID != "" {
		if err := s.archive.DeleteObject(ctx, archiveKey(archivedID)); err != nil {
			log.Printf("WARN plans: failed to delete archived response for plan=%s: %v", archivedID, err)
		}
	}
	return true, nil
}
