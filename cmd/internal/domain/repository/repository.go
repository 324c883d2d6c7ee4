package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"mydoc/cmd/internal/domain/entity"
)

// ErrNotFound is returned by Delete when no entity has the given id.
// Lookups report a missing entity as (nil, nil) instead.
var ErrNotFound = errors.New("entity not found")

type Entity interface {
	EntityID() uuid.UUID
}

// Repository is the generic persistence gateway for one entity type.
type Repository[T Entity] interface {
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Find(ctx context.Context, pred func(*T) bool) ([]*T, error)
	Add(ctx context.Context, e *T) error
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Store bundles the repositories of one backend. Atomic runs fn against a
// store whose writes either all commit or all roll back; multi-aggregate
// workflows go through it so a partial failure cannot leave stale stock or
// half-linked associations behind.
type Store interface {
	Hospitals() Repository[entity.Hospital]
	Doctors() Repository[entity.Doctor]
	Patients() Repository[entity.Patient]
	Appointments() Repository[entity.Appointment]
	Bills() Repository[entity.Bill]
	Medications() Repository[entity.Medication]
	Payments() Repository[entity.Payment]
	Prescriptions() Repository[entity.Prescription]
	Histories() Repository[entity.History]

	Atomic(ctx context.Context, fn func(Store) error) error
}
