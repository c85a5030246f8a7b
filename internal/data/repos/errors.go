package repos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yungbote/orderdesk-backend/internal/domain/aggregates"
)

// mapError funnels every storage failure through one spot. Record-not-found
// becomes the entity's not-found error; anything else surfaces as a
// persistence failure carrying the failing operation, with the postgres
// condition named when pgx exposes one. Already-mapped domain errors pass
// through untouched so nested calls do not double-wrap.
func mapError(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if aggregates.IsNotFound(err) || aggregates.IsPersistence(err) ||
		aggregates.IsInvalidState(err) || aggregates.IsValidation(err) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return aggregates.NewNotFound(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505":
			return aggregates.NewPersistence(op, fmt.Errorf("unique violation: %w", err))
		case "23503":
			return aggregates.NewPersistence(op, fmt.Errorf("foreign key violation: %w", err))
		case "40001", "40P01", "55P03":
			return aggregates.NewPersistence(op, fmt.Errorf("transient conflict: %w", err))
		}
	}
	return aggregates.NewPersistence(op, err)
}
