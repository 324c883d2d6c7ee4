package repository

import (
	"context"
	"errors"
	"reflect"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "mydoc/cmd/internal/domain/repository"
)

// Config tunes how one entity type is persisted.
type Config struct {
	// Preloads are the associations loaded on every read.
	Preloads []string
	// Replace lists many-to-many associations whose join rows are synced to
	// the entity's slice on Update, so removals take effect.
	Replace []string
}

// Gorm is the gorm-backed implementation of the generic repository.
type Gorm[T domain.Entity] struct {
	db  *gorm.DB
	cfg Config
}

func New[T domain.Entity](db *gorm.DB, cfg Config) *Gorm[T] {
	return &Gorm[T]{db: db, cfg: cfg}
}

func (r *Gorm[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.cfg.Preloads {
		q = q.Preload(p)
	}
	return q
}

func (r *Gorm[T]) FindAll(ctx context.Context) ([]*T, error) {
	var entities []*T
	err := r.query(ctx).Find(&entities).Error
	return entities, err
}

func (r *Gorm[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var e T
	err := r.query(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Gorm[T]) Find(ctx context.Context, pred func(*T) bool) ([]*T, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*T, 0, len(all))
	for _, e := range all {
		if pred(e) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (r *Gorm[T]) Add(ctx context.Context, e *T) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *Gorm[T]) Update(ctx context.Context, e *T) error {
	db := r.db.WithContext(ctx)
	if err := db.Save(e).Error; err != nil {
		return err
	}
	for _, name := range r.cfg.Replace {
		values := reflect.ValueOf(e).Elem().FieldByName(name).Interface()
		if err := db.Model(e).Association(name).Replace(values); err != nil {
			return err
		}
	}
	return nil
}

func (r *Gorm[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var e T
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(&e).Error
}
