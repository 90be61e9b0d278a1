package file

import "library-backend/internal/shared/apperror"

var (
	ErrFileNotFound = apperror.NotFound("File not found!")
	ErrEmptyFile    = apperror.InvalidInput("Sorry! Could not store an empty file")
	ErrNoFiles      = apperror.InvalidInput("No files were uploaded")
)
