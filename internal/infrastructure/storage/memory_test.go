package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoragePutGet(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a.txt", strings.NewReader("hello"), 5, "text/plain"))

	obj, err := s.Get(ctx, "a.txt")
	require.NoError(t, err)
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, "text/plain", obj.ContentType)
	assert.EqualValues(t, 5, obj.Size)
}

func TestMemoryStorageMissingAndShort(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	assert.Error(t, s.Put(ctx, "b", strings.NewReader("abc"), 10, ""))

	require.NoError(t, s.Put(ctx, "c", strings.NewReader("abc"), 3, ""))
	require.NoError(t, s.Delete(ctx, "c"))
	_, err = s.Get(ctx, "c")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
