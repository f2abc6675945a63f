package imagestore

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/tutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageKey(t *testing.T) {
	key, err := NewImageKey(4, "Red Dragon.PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "images/world-4/"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)

	key, err = NewImageKey(0, "map.jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "images/unattached/"), key)

	_, err = NewImageKey(1, "notes.txt")
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "images/a.png", bytes.NewReader([]byte("png-bytes")), 9, "image/png"))

	r, contentType, err := s.Open(ctx, "images/a.png")
	require.NoError(t, err)
	data, _ := io.ReadAll(r)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, s.Delete(ctx, "images/a.png"))
	_, _, err = s.Open(ctx, "images/a.png")
	assert.True(t, errors.Is(err, ErrObjectNotFound))
}

func TestMinioStore(t *testing.T) {
	tutil.SkipUnlessIntegration(t)

	ctx := context.Background()
	s, err := NewMinioStore(os.Getenv("REALM_MINIO_ENDPOINT"), os.Getenv("REALM_MINIO_ACCESS_KEY"),
		os.Getenv("REALM_MINIO_SECRET_KEY"), "realm-test", false)
	require.NoError(t, err)

	key, err := NewImageKey(1, "test.png")
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, key, bytes.NewReader([]byte("png")), 3, "image/png"))
	url, err := s.PresignGet(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, key)
	require.NoError(t, s.Delete(ctx, key))
}
