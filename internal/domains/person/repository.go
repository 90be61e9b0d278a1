package person

import (
	"context"

	"library-backend/internal/shared/hateoas"
)

// Repository is the person store.
type Repository interface {
	// FindByID returns ErrPersonNotFound when the id does not exist.
	FindByID(ctx context.Context, id int64) (*Person, error)

	// FindPage returns one sorted page and the total number of persons.
	// req must already be normalized and carry a known sort field.
	FindPage(ctx context.Context, req hateoas.PageRequest) ([]Person, int64, error)

	// Save inserts when p.ID is zero and updates otherwise.
	// Updating a missing id returns ErrPersonNotFound.
	Save(ctx context.Context, p *Person) (*Person, error)

	// DeleteByID returns ErrPersonNotFound when nothing was deleted.
	DeleteByID(ctx context.Context, id int64) error

	ExistsByID(ctx context.Context, id int64) (bool, error)
}
