package file

import (
	"context"
	"io"

	"library-backend/internal/infrastructure/storage"
)

// Storage is satisfied by *storage.MinIOStorage and *storage.MemoryStorage.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (*storage.Object, error)
}

type Service interface {
	Store(ctx context.Context, upload Upload) (*UploadResponseDTO, error)
	StoreAll(ctx context.Context, uploads []Upload) ([]UploadResponseDTO, error)

	// Load opens a stored file; the caller closes the returned body.
	Load(ctx context.Context, fileName string) (*storage.Object, error)
}
