// Package memory provides an in-memory implementation of the persistence
// gateway, used by tests and ephemeral environments.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"

	"mydoc/cmd/internal/domain/entity"
	domain "mydoc/cmd/internal/domain/repository"
)

var _ domain.Store = (*Store)(nil)

// Store keeps every entity family in a map keyed by id. Values are cloned on
// the way in and on the way out, so callers never share state with the store.
type Store struct {
	mu   *sync.Mutex
	inTx bool // the store lock is already held by Atomic

	hospitals     *repo[entity.Hospital]
	doctors       *repo[entity.Doctor]
	patients      *repo[entity.Patient]
	appointments  *repo[entity.Appointment]
	bills         *repo[entity.Bill]
	medications   *repo[entity.Medication]
	payments      *repo[entity.Payment]
	prescriptions *repo[entity.Prescription]
	histories     *repo[entity.History]
}

func NewStore() *Store {
	mu := &sync.Mutex{}
	return &Store{
		mu:            mu,
		hospitals:     newRepo[entity.Hospital](mu),
		doctors:       newRepo[entity.Doctor](mu),
		patients:      newRepo[entity.Patient](mu),
		appointments:  newRepo[entity.Appointment](mu),
		bills:         newRepo[entity.Bill](mu),
		medications:   newRepo[entity.Medication](mu),
		payments:      newRepo[entity.Payment](mu),
		prescriptions: newRepo[entity.Prescription](mu),
		histories:     newRepo[entity.History](mu),
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

// Atomic serializes fn against all other store access and restores the
// pre-call state when fn fails.
func (s *Store) Atomic(ctx context.Context, fn func(domain.Store) error) error {
	if s.inTx {
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(s.txView()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// txView shares the live maps but skips locking, the Atomic caller holds the lock.
func (s *Store) txView() *Store {
	return &Store{
		inTx:          true,
		hospitals:     s.hospitals.unlocked(),
		doctors:       s.doctors.unlocked(),
		patients:      s.patients.unlocked(),
		appointments:  s.appointments.unlocked(),
		bills:         s.bills.unlocked(),
		medications:   s.medications.unlocked(),
		payments:      s.payments.unlocked(),
		prescriptions: s.prescriptions.unlocked(),
		histories:     s.histories.unlocked(),
	}
}

type snapshot struct {
	hospitals     map[uuid.UUID]entity.Hospital
	doctors       map[uuid.UUID]entity.Doctor
	patients      map[uuid.UUID]entity.Patient
	appointments  map[uuid.UUID]entity.Appointment
	bills         map[uuid.UUID]entity.Bill
	medications   map[uuid.UUID]entity.Medication
	payments      map[uuid.UUID]entity.Payment
	prescriptions map[uuid.UUID]entity.Prescription
	histories     map[uuid.UUID]entity.History
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		hospitals:     maps.Clone(s.hospitals.items),
		doctors:       maps.Clone(s.doctors.items),
		patients:      maps.Clone(s.patients.items),
		appointments:  maps.Clone(s.appointments.items),
		bills:         maps.Clone(s.bills.items),
		medications:   maps.Clone(s.medications.items),
		payments:      maps.Clone(s.payments.items),
		prescriptions: maps.Clone(s.prescriptions.items),
		histories:     maps.Clone(s.histories.items),
	}
}

func (s *Store) restore(snap snapshot) {
	s.hospitals.items = snap.hospitals
	s.doctors.items = snap.doctors
	s.patients.items = snap.patients
	s.appointments.items = snap.appointments
	s.bills.items = snap.bills
	s.medications.items = snap.medications
	s.payments.items = snap.payments
	s.prescriptions.items = snap.prescriptions
	s.histories.items = snap.histories
}

type repo[T domain.Entity] struct {
	mu    *sync.Mutex // nil inside Atomic
	items map[uuid.UUID]T
}

func newRepo[T domain.Entity](mu *sync.Mutex) *repo[T] {
	return &repo[T]{mu: mu, items: make(map[uuid.UUID]T)}
}

func (r *repo[T]) unlocked() *repo[T] {
	return &repo[T]{items: r.items}
}

func (r *repo[T]) lock() func() {
	if r.mu == nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *repo[T]) FindAll(ctx context.Context) ([]*T, error) {
	defer r.lock()()
	entities := make([]*T, 0, len(r.items))
	for _, v := range r.items {
		entities = append(entities, clone(&v))
	}
	return entities, nil
}

func (r *repo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	defer r.lock()()
	v, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return clone(&v), nil
}

func (r *repo[T]) Find(ctx context.Context, pred func(*T) bool) ([]*T, error) {
	defer r.lock()()
	var matched []*T
	for _, v := range r.items {
		c := clone(&v)
		if pred(c) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (r *repo[T]) Add(ctx context.Context, e *T) error {
	defer r.lock()()
	v := *clone(e)
	r.items[v.EntityID()] = v
	return nil
}

func (r *repo[T]) Update(ctx context.Context, e *T) error {
	return r.Add(ctx, e)
}

func (r *repo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.lock()()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// clone deep-copies an entity through its JSON form; every persisted field is
// serializable, and it keeps stored values isolated from caller mutation.
func clone[T any](e *T) *T {
	raw, err := json.Marshal(e)
	if err != nil {
		panic(fmt.Sprintf("memory store: clone: %v", err))
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("memory store: clone: %v", err))
	}
	return &out
}
