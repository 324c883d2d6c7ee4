package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mydoc/cmd/internal/domain/entity"
	domain "mydoc/cmd/internal/domain/repository"
)

func TestAddAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	m := entity.NewMedication("Aspirin", "pill", 10)
	require.NoError(t, store.Medications().Add(ctx, m))

	got, err := store.Medications().FindByID(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Aspirin", got.Name)

	missing, err := store.Medications().FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := store.Medications().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFindByPredicate(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Medications().Add(ctx, entity.NewMedication("Aspirin", "pill", 10)))
	require.NoError(t, store.Medications().Add(ctx, entity.NewMedication("Ibuprofen", "pill", 0)))

	empty, err := store.Medications().Find(ctx, func(m *entity.Medication) bool {
		return m.Stock == 0
	})
	require.NoError(t, err)
	require.Len(t, empty, 1)
	assert.Equal(t, "Ibuprofen", empty[0].Name)
}

func TestStoredValuesAreIsolatedFromCallers(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	m := entity.NewMedication("Aspirin", "pill", 10)
	require.NoError(t, store.Medications().Add(ctx, m))

	// mutating the value we added must not reach the store
	m.Stock = 0
	got, err := store.Medications().FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock)

	// mutating a fetched value must not reach later readers
	got.Stock = 1
	again, err := store.Medications().FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, again.Stock)
}

func TestDeleteReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	m := entity.NewMedication("Aspirin", "pill", 10)
	require.NoError(t, store.Medications().Add(ctx, m))

	require.NoError(t, store.Medications().Delete(ctx, m.ID))
	assert.ErrorIs(t, store.Medications().Delete(ctx, m.ID), domain.ErrNotFound)
}

func TestAtomicRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	m := entity.NewMedication("Aspirin", "pill", 5)
	require.NoError(t, store.Medications().Add(ctx, m))

	boom := errors.New("boom")
	err := store.Atomic(ctx, func(tx domain.Store) error {
		m.Stock = 0
		if err := tx.Medications().Update(ctx, m); err != nil {
			return err
		}
		if err := tx.Hospitals().Add(ctx, entity.NewHospital("PPTH", "1 Hospital Dr", "555-0100")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Medications().FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)

	hospitals, err := store.Hospitals().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, hospitals)
}

func TestAtomicCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	m := entity.NewMedication("Aspirin", "pill", 5)
	err := store.Atomic(ctx, func(tx domain.Store) error {
		return tx.Medications().Add(ctx, m)
	})
	require.NoError(t, err)

	got, err := store.Medications().FindByID(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestNestedAtomicSharesTheOuterUnit(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	boom := errors.New("boom")
	err := store.Atomic(ctx, func(tx domain.Store) error {
		if err := tx.Atomic(ctx, func(inner domain.Store) error {
			return inner.Medications().Add(ctx, entity.NewMedication("Aspirin", "pill", 5))
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// the inner write rolls back with the outer unit
	all, err := store.Medications().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
