package book

import (
	"context"

	"library-backend/internal/shared/hateoas"
)

// Repository is the book store. Semantics match person.Repository.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Book, error)
	FindPage(ctx context.Context, req hateoas.PageRequest) ([]Book, int64, error)
	Save(ctx context.Context, b *Book) (*Book, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
