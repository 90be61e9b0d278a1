package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/file"
	"library-backend/internal/infrastructure/storage"
	"library-backend/internal/shared/utils"
)

const defaultContentType = "application/octet-stream"

type fileService struct {
	storage file.Storage
	baseURL string
	newID   func() string
}

// NewFileService stores uploads under "<uuid>_<safe name>" and builds download
// URIs from baseURL.
func NewFileService(s file.Storage, baseURL string) file.Service {
	return &fileService{
		storage: s,
		baseURL: strings.TrimRight(baseURL, "/"),
		newID:   uuid.NewString,
	}
}

func (s *fileService) Store(ctx context.Context, upload file.Upload) (*file.UploadResponseDTO, error) {
	if upload.Body == nil || upload.Size <= 0 {
		return nil, file.ErrEmptyFile
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	key := s.newID() + "_" + utils.SafeFileName(upload.Name)
	if err := s.storage.Put(ctx, key, upload.Body, upload.Size, contentType); err != nil {
		return nil, fmt.Errorf("store file %q: %w", upload.Name, err)
	}

	log.Debug().
		Str("file", key).
		Int64("size", upload.Size).
		Msg("File stored")

	return &file.UploadResponseDTO{
		FileName:        key,
		FileDownloadURI: s.downloadURI(key),
		FileType:        contentType,
		FileSize:        upload.Size,
	}, nil
}

func (s *fileService) StoreAll(ctx context.Context, uploads []file.Upload) ([]file.UploadResponseDTO, error) {
	if len(uploads) == 0 {
		return nil, file.ErrNoFiles
	}

	stored := make([]file.UploadResponseDTO, 0, len(uploads))
	for _, upload := range uploads {
		dto, err := s.Store(ctx, upload)
		if err != nil {
			return nil, err
		}
		stored = append(stored, *dto)
	}
	return stored, nil
}

func (s *fileService) Load(ctx context.Context, fileName string) (*storage.Object, error) {
	if fileName == "" || strings.Contains(fileName, "..") || strings.ContainsAny(fileName, `/\`) {
		return nil, file.ErrFileNotFound
	}

	obj, err := s.storage.Get(ctx, fileName)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, file.ErrFileNotFound
		}
		return nil, fmt.Errorf("load file %q: %w", fileName, err)
	}

	if obj.ContentType == "" {
		obj.ContentType = defaultContentType
	}
	return obj, nil
}

func (s *fileService) downloadURI(key string) string {
	return s.baseURL + file.BasePath + "/downloadFile/" + url.PathEscape(key)
}
