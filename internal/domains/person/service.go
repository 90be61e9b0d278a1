package person

import (
	"context"

	"library-backend/internal/shared/hateoas"
)

// Service is the person use-case layer. Every returned DTO carries fresh links.
type Service interface {
	FindByID(ctx context.Context, id int64) (*PersonDTO, error)
	FindAll(ctx context.Context, req hateoas.PageRequest) (*hateoas.PagedModel[PersonDTO], error)
	Create(ctx context.Context, dto *PersonDTO) (*PersonDTO, error)
	Update(ctx context.Context, dto *PersonDTO) (*PersonDTO, error)
	Delete(ctx context.Context, id int64) error

	// Disable sets enabled=false and leaves every other field untouched.
	Disable(ctx context.Context, id int64) (*PersonDTO, error)
}
