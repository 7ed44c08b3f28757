package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when an owner has no stored record.
var ErrNotFound = errors.New("not found")

// PlanRecord is the persisted last generated plan for one owner.
// Payload holds the validated plan as JSON.
type PlanRecord struct {
	ID             string
	OwnerUserID    string
	Goal           string
	Payload        []byte
	DroppedEntries int
	CreatedAt      time.Time
}

// ProfileRecord is the persisted last submitted profile for one owner,
// used to pre-fill the next generation request.
type ProfileRecord struct {
	OwnerUserID string
	HeightCm    float64
	WeightKg    float64
	Goal        string
	Equipment   []string
	UpdatedAt   time.Time
}

// PlansStorage keeps a single last-plan slot per owner. Saving
// replaces whatever the owner had before.
type PlansStorage interface {
	SaveLastPlan(ctx context.Context, rec PlanRecord) error
	GetLastPlan(ctx context.Context, ownerUserID string) (PlanRecord, error)
	DeleteLastPlan(ctx context.Context, ownerUserID string) error
}

// ProfilesStorage keeps a single last-profile slot per owner.
type ProfilesStorage interface {
	SaveLastProfile(ctx context.Context, rec ProfileRecord) error
	GetLastProfile(ctx context.Context, ownerUserID string) (ProfileRecord, error)
}

// Storage is the full persistence surface the server needs.
type Storage interface {
	PlansStorage
	ProfilesStorage
	Close() error
}
