package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/file"
	"library-backend/internal/infrastructure/storage"
	"library-backend/internal/shared/apperror"
)

func newService(s file.Storage) *fileService {
	svc := NewFileService(s, "http://localhost:8888/").(*fileService)
	svc.newID = func() string { return "0b5e" }
	return svc
}

func upload(name, contentType, body string) file.Upload {
	return file.Upload{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}

func TestStoreAndLoad(t *testing.T) {
	store := storage.NewMemoryStorage()
	svc := newService(store)
	ctx := context.Background()

	dto, err := svc.Store(ctx, upload("Relatório Anual.PDF", "application/pdf", "%PDF-1.4"))
	require.NoError(t, err)

	assert.Equal(t, "0b5e_relatorio-anual.pdf", dto.FileName)
	assert.Equal(t, "http://localhost:8888/api/file/v1/downloadFile/0b5e_relatorio-anual.pdf", dto.FileDownloadURI)
	assert.Equal(t, "application/pdf", dto.FileType)
	assert.EqualValues(t, 8, dto.FileSize)

	obj, err := svc.Load(ctx, dto.FileName)
	require.NoError(t, err)
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
	assert.Equal(t, "application/pdf", obj.ContentType)
}

func TestStoreDefaultsContentType(t *testing.T) {
	dto, err := newService(storage.NewMemoryStorage()).Store(context.Background(), upload("notes", "", "x"))
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", dto.FileType)
}

func TestStoreRejectsEmpty(t *testing.T) {
	svc := newService(storage.NewMemoryStorage())

	_, err := svc.Store(context.Background(), upload("empty.txt", "text/plain", ""))
	assert.ErrorIs(t, err, file.ErrEmptyFile)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = svc.StoreAll(context.Background(), nil)
	assert.ErrorIs(t, err, file.ErrNoFiles)
}

func TestStoreAllStopsAtFirstFailure(t *testing.T) {
	svc := newService(storage.NewMemoryStorage())

	stored, err := svc.StoreAll(context.Background(), []file.Upload{
		upload("a.txt", "text/plain", "a"),
		upload("b.txt", "text/plain", ""),
	})
	assert.Nil(t, stored)
	assert.ErrorIs(t, err, file.ErrEmptyFile)
}

func TestLoadMissing(t *testing.T) {
	svc := newService(storage.NewMemoryStorage())

	for _, name := range []string{"nope.txt", "../etc/passwd", "a/b", ""} {
		_, err := svc.Load(context.Background(), name)
		assert.ErrorIs(t, err, file.ErrFileNotFound, name)
	}
}

type failingStorage struct{ err error }

func (f failingStorage) Put(context.Context, string, io.Reader, int64, string) error { return f.err }

func (f failingStorage) Get(context.Context, string) (*storage.Object, error) { return nil, f.err }

func TestStorageFailuresAreWrapped(t *testing.T) {
	boom := errors.New("minio unavailable")
	svc := newService(failingStorage{err: boom})

	_, err := svc.Store(context.Background(), upload("a.txt", "text/plain", "a"))
	assert.ErrorIs(t, err, boom)

	_, err = svc.Load(context.Background(), "a.txt")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, file.ErrFileNotFound)
}
