package book

import "library-backend/internal/shared/apperror"

var (
	ErrBookNotFound = apperror.NotFound("No records found for this ID!")
	ErrNullBook     = apperror.ErrNullObject
)
