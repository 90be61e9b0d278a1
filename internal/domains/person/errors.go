package person

import "library-backend/internal/shared/apperror"

var (
	ErrPersonNotFound = apperror.NotFound("No records found for this ID!")
	ErrNullPerson     = apperror.ErrNullObject
)
