package service

import (
	"errors"

	"github.com/TWRT/direction-dashboard/internal/repository"
)

var (
	ErrNotFound             = repository.ErrNotFound
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrExportFailed         = errors.New("error generating the file")
	ErrInvalidKind          = repository.ErrInvalidKind
)
