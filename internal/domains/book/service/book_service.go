package service

import (
	"context"
	"time"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/apperror"
	"library-backend/internal/shared/hateoas"
)

type bookService struct {
	repo   book.Repository
	linker hateoas.Linker
	now    func() time.Time
}

func NewBookService(repo book.Repository, linker hateoas.Linker) book.Service {
	return &bookService{
		repo:   repo,
		linker: linker,
		now:    time.Now,
	}
}

func (s *bookService) withLinks(b book.Book) *book.BookDTO {
	dto := book.ToDTO(b)
	dto.Links = s.linker.SelfLinks(dto.ID)
	return &dto
}

func (s *bookService) FindByID(ctx context.Context, id int64) (*book.BookDTO, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withLinks(*b), nil
}

func (s *bookService) FindAll(ctx context.Context, req hateoas.PageRequest) (*hateoas.PagedModel[book.BookDTO], error) {
	req = req.Normalize(book.DefaultSort)
	if _, ok := book.SortColumn(req.Sort); !ok {
		req.Sort = book.DefaultSort
	}

	books, total, err := s.repo.FindPage(ctx, req)
	if err != nil {
		return nil, err
	}

	content := make([]book.BookDTO, 0, len(books))
	for _, b := range books {
		content = append(content, *s.withLinks(b))
	}

	meta := hateoas.NewPageMetadata(req.Size, total, req.Page)
	return hateoas.NewPagedModel(content, s.linker.Collection(req, meta), meta), nil
}

func (s *bookService) Create(ctx context.Context, dto *book.BookDTO) (*book.BookDTO, error) {
	if dto == nil {
		return nil, book.ErrNullBook
	}
	if err := dto.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	entity := book.ToEntity(*dto)
	entity.ID = 0
	if entity.LaunchDate.IsZero() {
		entity.LaunchDate = s.now().UTC().Truncate(time.Microsecond)
	}

	created, err := s.repo.Save(ctx, &entity)
	if err != nil {
		return nil, err
	}
	return s.withLinks(*created), nil
}

func (s *bookService) Update(ctx context.Context, dto *book.BookDTO) (*book.BookDTO, error) {
	if dto == nil {
		return nil, book.ErrNullBook
	}
	existing, err := s.repo.FindByID(ctx, dto.ID)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	existing.Title = dto.Title
	existing.Author = dto.Author
	existing.Price = dto.Price
	if !dto.LaunchDate.IsZero() {
		existing.LaunchDate = dto.LaunchDate
	}

	updated, err := s.repo.Save(ctx, existing)
	if err != nil {
		return nil, err
	}
	return s.withLinks(*updated), nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return book.ErrBookNotFound
	}
	return s.repo.DeleteByID(ctx, id)
}
