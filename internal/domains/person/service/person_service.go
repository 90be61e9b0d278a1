package service

import (
	"context"

	"library-backend/internal/domains/person"
	"library-backend/internal/shared/apperror"
	"library-backend/internal/shared/hateoas"
)

type personService struct {
	repo   person.Repository
	linker hateoas.Linker
}

// NewPersonService wires the service to its store and link builder.
func NewPersonService(repo person.Repository, linker hateoas.Linker) person.Service {
	return &personService{
		repo:   repo,
		linker: linker,
	}
}

func (s *personService) withLinks(p person.Person) *person.PersonDTO {
	dto := person.ToDTO(p)
	dto.Links = s.linker.SelfLinks(dto.ID)
	return &dto
}

func (s *personService) FindByID(ctx context.Context, id int64) (*person.PersonDTO, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withLinks(*p), nil
}

func (s *personService) FindAll(ctx context.Context, req hateoas.PageRequest) (*hateoas.PagedModel[person.PersonDTO], error) {
	req = req.Normalize(person.DefaultSort)
	if _, ok := person.SortColumn(req.Sort); !ok {
		req.Sort = person.DefaultSort
	}

	people, total, err := s.repo.FindPage(ctx, req)
	if err != nil {
		return nil, err
	}

	content := make([]person.PersonDTO, 0, len(people))
	for _, p := range people {
		content = append(content, *s.withLinks(p))
	}

	meta := hateoas.NewPageMetadata(req.Size, total, req.Page)
	return hateoas.NewPagedModel(content, s.linker.Collection(req, meta), meta), nil
}

func (s *personService) Create(ctx context.Context, dto *person.PersonDTO) (*person.PersonDTO, error) {
	if dto == nil {
		return nil, person.ErrNullPerson
	}
	if err := dto.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	entity := person.ToEntity(*dto)
	entity.ID = 0
	entity.Enabled = true

	created, err := s.repo.Save(ctx, &entity)
	if err != nil {
		return nil, err
	}
	return s.withLinks(*created), nil
}

func (s *personService) Update(ctx context.Context, dto *person.PersonDTO) (*person.PersonDTO, error) {
	if dto == nil {
		return nil, person.ErrNullPerson
	}
	existing, err := s.repo.FindByID(ctx, dto.ID)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	existing.FirstName = dto.FirstName
	existing.LastName = dto.LastName
	existing.Address = dto.Address
	existing.Gender = dto.Gender
	// update may enable an account but only Disable turns it off
	if dto.Enabled {
		existing.Enabled = true
	}

	updated, err := s.repo.Save(ctx, existing)
	if err != nil {
		return nil, err
	}
	return s.withLinks(*updated), nil
}

func (s *personService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return person.ErrPersonNotFound
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *personService) Disable(ctx context.Context, id int64) (*person.PersonDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Enabled = false

	updated, err := s.repo.Save(ctx, existing)
	if err != nil {
		return nil, err
	}
	return s.withLinks(*updated), nil
}
