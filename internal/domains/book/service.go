package book

import (
	"context"

	"library-backend/internal/shared/hateoas"
)

type Service interface {
	FindByID(ctx context.Context, id int64) (*BookDTO, error)
	FindAll(ctx context.Context, req hateoas.PageRequest) (*hateoas.PagedModel[BookDTO], error)
	Create(ctx context.Context, dto *BookDTO) (*BookDTO, error)
	Update(ctx context.Context, dto *BookDTO) (*BookDTO, error)
	Delete(ctx context.Context, id int64) error
}
