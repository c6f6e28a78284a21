package service

import (
	"errors"

	"warehouse/pkg/apperror"
)

func asAppError(err error) *apperror.Error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
