package memstore

import (
	"cmp"
	"context"
	"strings"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/hateoas"
)

// BookRepository is an in-memory book.Repository.
type BookRepository struct {
	*table[book.Book]
}

var _ book.Repository = (*BookRepository)(nil)

func NewBookRepository(seed ...book.Book) *BookRepository {
	compare := map[string]compareFunc[book.Book]{
		"id":         func(a, b book.Book) int { return cmp.Compare(a.ID, b.ID) },
		"title":      func(a, b book.Book) int { return strings.Compare(a.Title, b.Title) },
		"author":     func(a, b book.Book) int { return strings.Compare(a.Author, b.Author) },
		"price":      func(a, b book.Book) int { return a.Price.Cmp(b.Price) },
		"launchDate": func(a, b book.Book) int { return a.LaunchDate.Compare(b.LaunchDate) },
	}

	return &BookRepository{newTable(
		func(b book.Book) int64 { return b.ID },
		func(b *book.Book, id int64) { b.ID = id },
		compare,
		book.ErrBookNotFound,
		seed,
	)}
}

func (r *BookRepository) FindByID(_ context.Context, id int64) (*book.Book, error) {
	return r.findByID(id)
}

func (r *BookRepository) FindPage(_ context.Context, req hateoas.PageRequest) ([]book.Book, int64, error) {
	books, total := r.findPage(req)
	return books, total, nil
}

func (r *BookRepository) Save(_ context.Context, b *book.Book) (*book.Book, error) {
	return r.save(b)
}

func (r *BookRepository) DeleteByID(_ context.Context, id int64) error {
	return r.deleteByID(id)
}

func (r *BookRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	return r.existsByID(id), nil
}
