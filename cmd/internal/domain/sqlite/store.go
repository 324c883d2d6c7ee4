package sqlite

import (
	"context"

	"gorm.io/gorm"

	"mydoc/cmd/internal/domain/entity"
	domain "mydoc/cmd/internal/domain/repository"
	"mydoc/cmd/internal/domain/sqlite/repository"
)

// Store is the sqlite-backed persistence gateway.
type Store struct {
	db *gorm.DB

	hospitals     domain.Repository[entity.Hospital]
	doctors       domain.Repository[entity.Doctor]
	patients      domain.Repository[entity.Patient]
	appointments  domain.Repository[entity.Appointment]
	bills         domain.Repository[entity.Bill]
	medications   domain.Repository[entity.Medication]
	payments      domain.Repository[entity.Payment]
	prescriptions domain.Repository[entity.Prescription]
	histories     domain.Repository[entity.History]
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		hospitals:    repository.New[entity.Hospital](db, repository.Config{Preloads: []string{"Doctors"}}),
		doctors:      repository.New[entity.Doctor](db, repository.Config{Preloads: []string{"Appointments", "Reviews"}}),
		patients:     repository.New[entity.Patient](db, repository.Config{Preloads: []string{"Appointments", "Histories"}}),
		appointments: repository.New[entity.Appointment](db, repository.Config{}),
		bills: repository.New[entity.Bill](db, repository.Config{
			Preloads: []string{"Medications", "Payment"},
			Replace:  []string{"Medications"},
		}),
		medications:   repository.New[entity.Medication](db, repository.Config{}),
		payments:      repository.New[entity.Payment](db, repository.Config{}),
		prescriptions: repository.New[entity.Prescription](db, repository.Config{Preloads: []string{"Dosages"}}),
		histories:     repository.New[entity.History](db, repository.Config{Preloads: []string{"Dosages"}}),
	}
}

func (s *Store) Hospitals() domain.Repository[entity.Hospital]         { return s.hospitals }
func (s *Store) Doctors() domain.Repository[entity.Doctor]             { return s.doctors }
func (s *Store) Patients() domain.Repository[entity.Patient]           { return s.patients }
func (s *Store) Appointments() domain.Repository[entity.Appointment]   { return s.appointments }
func (s *Store) Bills() domain.Repository[entity.Bill]                 { return s.bills }
func (s *Store) Medications() domain.Repository[entity.Medication]     { return s.medications }
func (s *Store) Payments() domain.Repository[entity.Payment]           { return s.payments }
func (s *Store) Prescriptions() domain.Repository[entity.Prescription] { return s.prescriptions }
func (s *Store) Histories() domain.Repository[entity.History]          { return s.histories }

// Atomic runs fn inside a database transaction; fn gets a store bound to it.
func (s *Store) Atomic(ctx context.Context, fn func(domain.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
