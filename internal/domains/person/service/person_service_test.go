package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/person"
	"library-backend/internal/shared/apperror"
	"library-backend/internal/shared/hateoas"
	"library-backend/internal/testing/fixtures"
	"library-backend/internal/testing/memstore"
)

const base = "http://localhost:8888/api/person/v1"

func newService(t *testing.T) (person.Service, *memstore.PersonRepository) {
	t.Helper()
	repo := memstore.NewPersonRepository(fixtures.People()...)
	return NewPersonService(repo, hateoas.NewLinker("http://localhost:8888", person.BasePath)), repo
}

func TestFindByIDSelfLink(t *testing.T) {
	svc, _ := newService(t)

	for _, p := range fixtures.People() {
		dto, err := svc.FindByID(context.Background(), p.ID)
		require.NoError(t, err)

		require.Len(t, dto.Links, 1)
		assert.Equal(t, hateoas.RelSelf, dto.Links[0].Rel)
		assert.Equal(t, base+"/"+itoa(p.ID), dto.Links[0].Href)
		assert.Equal(t, p.FirstName, dto.FirstName)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "No records found for this ID!", err.Error())
}

func TestCreateAndUpdateRejectNull(t *testing.T) {
	svc, repo := newService(t)

	_, err := svc.Create(context.Background(), nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, "It's not allowed to persist a null object!", err.Error())

	_, err = svc.Update(context.Background(), nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, "It's not allowed to persist a null object!", err.Error())

	assert.Zero(t, repo.Writes())
}

func TestCreateStallman(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	in := fixtures.PersonDTO(fixtures.WithPersonID(77), fixtures.WithEnabled(false))
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)

	assert.Greater(t, created.ID, int64(0))
	assert.NotEqual(t, int64(77), created.ID)
	assert.True(t, created.Enabled)
	assert.Equal(t, "Richard", created.FirstName)
	assert.Equal(t, "Stallman", created.LastName)
	assert.Equal(t, "New York City, New York, US", created.Address)
	assert.Equal(t, "Male", created.Gender)
	assert.Equal(t, hateoas.Links{{Rel: "self", Href: base + "/" + itoa(created.ID)}}, created.Links)
	assert.EqualValues(t, 1, repo.Writes())

	found, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestCreateValidation(t *testing.T) {
	svc, repo := newService(t)

	_, err := svc.Create(context.Background(), &person.PersonDTO{Address: "nowhere"})
	require.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Zero(t, repo.Writes())
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites fields and keeps id", func(t *testing.T) {
		svc, repo := newService(t)
		in := fixtures.PersonDTO(fixtures.WithPersonID(6))
		in.FirstName = "Madiba"

		updated, err := svc.Update(ctx, in)
		require.NoError(t, err)
		assert.EqualValues(t, 6, updated.ID)
		assert.Equal(t, "Madiba", updated.FirstName)
		assert.Equal(t, "Stallman", updated.LastName)
		assert.Equal(t, base+"/6", updated.Links[0].Href)
		assert.EqualValues(t, 1, repo.Writes())
	})

	t.Run("does not disable", func(t *testing.T) {
		svc, _ := newService(t)
		updated, err := svc.Update(ctx, fixtures.PersonDTO(fixtures.WithPersonID(1), fixtures.WithEnabled(false)))
		require.NoError(t, err)
		assert.True(t, updated.Enabled)
	})

	t.Run("re-enables a disabled person", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.Disable(ctx, 2)
		require.NoError(t, err)

		updated, err := svc.Update(ctx, fixtures.PersonDTO(fixtures.WithPersonID(2), fixtures.WithEnabled(true)))
		require.NoError(t, err)
		assert.True(t, updated.Enabled)
	})

	t.Run("missing id", func(t *testing.T) {
		svc, repo := newService(t)
		_, err := svc.Update(ctx, fixtures.PersonDTO(fixtures.WithPersonID(404)))
		assert.ErrorIs(t, err, person.ErrPersonNotFound)
		assert.Zero(t, repo.Writes())
	})

	t.Run("missing id wins over invalid payload", func(t *testing.T) {
		svc, repo := newService(t)
		_, err := svc.Update(ctx, &person.PersonDTO{ID: 404})
		assert.ErrorIs(t, err, person.ErrPersonNotFound)
		assert.Zero(t, repo.Writes())
	})

	t.Run("invalid payload for existing id", func(t *testing.T) {
		svc, repo := newService(t)
		_, err := svc.Update(ctx, &person.PersonDTO{ID: 1})
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
		assert.Zero(t, repo.Writes())
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	require.NoError(t, svc.Delete(ctx, 3))

	_, err := svc.FindByID(ctx, 3)
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 3), person.ErrPersonNotFound)
}

func TestDisable(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	before, err := svc.FindByID(ctx, 6)
	require.NoError(t, err)

	first, err := svc.Disable(ctx, 6)
	require.NoError(t, err)
	second, err := svc.Disable(ctx, 6)
	require.NoError(t, err)

	assert.False(t, first.Enabled)
	assert.Equal(t, first, second)

	expected := *before
	expected.Enabled = false
	assert.Equal(t, &expected, second)
	assert.EqualValues(t, 2, repo.Writes())

	_, err = svc.Disable(ctx, 404)
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestFindAll(t *testing.T) {
	svc, _ := newService(t)

	page, err := svc.FindAll(context.Background(), hateoas.PageRequest{Page: 0, Size: 4, Direction: hateoas.Asc})
	require.NoError(t, err)

	assert.Equal(t, hateoas.PageMetadata{Size: 4, TotalElements: 10, TotalPages: 3, Number: 0}, page.Page)
	require.Len(t, page.Content, 4)
	assert.Equal(t, "Ada", page.Content[0].FirstName)
	assert.Equal(t, base+"/5", page.Content[0].Links[0].Href)

	next, ok := page.Links.Find(hateoas.RelNext)
	require.True(t, ok)
	assert.Equal(t, base+"?page=1&size=4&sort=firstName,asc", next.Href)
}

func TestFindAllPastTheEnd(t *testing.T) {
	svc, _ := newService(t)

	for _, pageNo := range []int{3, 50, math.MaxInt} {
		page, err := svc.FindAll(context.Background(), hateoas.PageRequest{Page: pageNo, Size: 4})
		require.NoError(t, err)

		assert.Empty(t, page.Content)
		assert.EqualValues(t, 10, page.Page.TotalElements)
		_, hasNext := page.Links.Find(hateoas.RelNext)
		assert.False(t, hasNext)
		last, _ := page.Links.Find(hateoas.RelLast)
		assert.Equal(t, base+"?page=2&size=4&sort=firstName,asc", last.Href)
	}
}

func TestFindAllFallsBackToDefaultSort(t *testing.T) {
	svc, _ := newService(t)

	page, err := svc.FindAll(context.Background(), hateoas.PageRequest{Size: 2, Sort: "password"})
	require.NoError(t, err)

	self, _ := page.Links.Find(hateoas.RelSelf)
	assert.Equal(t, base+"?page=0&size=2&sort=firstName,asc", self.Href)
}

// mockRepository lets tests inject store failures.
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (*person.Person, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*person.Person)
	return p, args.Error(1)
}

func (m *mockRepository) FindPage(ctx context.Context, req hateoas.PageRequest) ([]person.Person, int64, error) {
	args := m.Called(ctx, req)
	people, _ := args.Get(0).([]person.Person)
	return people, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) Save(ctx context.Context, p *person.Person) (*person.Person, error) {
	args := m.Called(ctx, p)
	saved, _ := args.Get(0).(*person.Person)
	return saved, args.Error(1)
}

func (m *mockRepository) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestStoreFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")

	repo := new(mockRepository)
	repo.On("FindPage", ctx, mock.Anything).Return(nil, int64(0), boom).Once()
	repo.On("Save", ctx, mock.Anything).Return(nil, boom).Once()
	repo.On("ExistsByID", ctx, int64(1)).Return(false, boom).Once()

	svc := NewPersonService(repo, hateoas.NewLinker("", person.BasePath))

	_, err := svc.FindAll(ctx, hateoas.PageRequest{})
	assert.ErrorIs(t, err, boom)

	_, err = svc.Create(ctx, fixtures.PersonDTO())
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, svc.Delete(ctx, 1), boom)
	assert.Equal(t, 500, apperror.HTTPStatus(err))

	repo.AssertExpectations(t)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
