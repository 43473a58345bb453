package services

import (
	"errors"

	"go.uber.org/zap"

	"metacatalog/internal/domain"
)

// wrapStorage passes already-classified domain errors through untouched and
// wraps anything else as a logged StorageError so raw driver text never
// masquerades as a domain outcome.
func wrapStorage(logger *zap.SugaredLogger, err error, message string) error {
	var validation *domain.ValidationError
	var notFound *domain.NotFoundError
	var conflict *domain.ConflictError

	if errors.As(err, &validation) || errors.As(err, &notFound) || errors.As(err, &conflict) {
		return err
	}

	logger.Errorw(message, "error", err)
	return domain.ErrStorage(err, "%s", message)
}
