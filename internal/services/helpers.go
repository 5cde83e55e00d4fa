package services

import (
	"errors"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
)

// readError maps a failed read to an AppError. A stored date that cannot be
// parsed is reported as a data integrity problem.
func readError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, models.ErrMalformedDate) {
		return apperrors.Wrap(apperrors.ErrDataIntegrity, err)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
