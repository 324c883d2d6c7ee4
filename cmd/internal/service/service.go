package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"mydoc/cmd/internal/domain/repository"
	"mydoc/cmd/internal/utils/apierror"
)

// errAborted signals Atomic to roll back after a client error was already
// captured; it never reaches the caller.
var errAborted = errors.New("request aborted")

// deleteByID removes an entity and reports 404 when the id does not resolve.
// Delete is not idempotent: a second delete of the same id is a 404 too.
func deleteByID[T repository.Entity](ctx context.Context, repo repository.Repository[T], id uuid.UUID, kind string) apierror.ErrorResponse {
	err := repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apierror.NewNotFound(kind)
	}
	if err != nil {
		log.Errorf("failed to delete %s %s: %v", kind, id, err)
		return apierror.InternalServerError
	}
	return nil
}
