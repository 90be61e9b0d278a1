package memstore

import (
	"cmp"
	"context"
	"strings"

	"library-backend/internal/domains/person"
	"library-backend/internal/shared/hateoas"
)

// PersonRepository is an in-memory person.Repository.
type PersonRepository struct {
	*table[person.Person]
}

var _ person.Repository = (*PersonRepository)(nil)

func NewPersonRepository(seed ...person.Person) *PersonRepository {
	compare := map[string]compareFunc[person.Person]{
		"id":        func(a, b person.Person) int { return cmp.Compare(a.ID, b.ID) },
		"firstName": func(a, b person.Person) int { return strings.Compare(a.FirstName, b.FirstName) },
		"lastName":  func(a, b person.Person) int { return strings.Compare(a.LastName, b.LastName) },
		"address":   func(a, b person.Person) int { return strings.Compare(a.Address, b.Address) },
		"gender":    func(a, b person.Person) int { return strings.Compare(a.Gender, b.Gender) },
		"enabled": func(a, b person.Person) int {
			return cmp.Compare(boolRank(a.Enabled), boolRank(b.Enabled))
		},
	}

	return &PersonRepository{newTable(
		func(p person.Person) int64 { return p.ID },
		func(p *person.Person, id int64) { p.ID = id },
		compare,
		person.ErrPersonNotFound,
		seed,
	)}
}

func (r *PersonRepository) FindByID(_ context.Context, id int64) (*person.Person, error) {
	return r.findByID(id)
}

func (r *PersonRepository) FindPage(_ context.Context, req hateoas.PageRequest) ([]person.Person, int64, error) {
	people, total := r.findPage(req)
	return people, total, nil
}

func (r *PersonRepository) Save(_ context.Context, p *person.Person) (*person.Person, error) {
	return r.save(p)
}

func (r *PersonRepository) DeleteByID(_ context.Context, id int64) error {
	return r.deleteByID(id)
}

func (r *PersonRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	return r.existsByID(id), nil
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
