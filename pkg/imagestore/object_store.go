// Package imagestore keeps uploaded world, character and creature artwork in an
// S3 compatible object store.
package imagestore

import (
	"context"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"
)

// ObjectStore provides access to object storage.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// Opener is implemented by stores that can serve object bytes themselves instead of
// handing out a presigned URL.
type Opener interface {
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}

var ErrObjectNotFound = errors.New("object not found")

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// NewImageKey builds the object key for an uploaded image. Images attached to a
// world are grouped under that world; worldID 0 means "not yet attached".
func NewImageKey(worldID int, filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if !allowedExtensions[ext] {
		return "", errors.Errorf("unsupported image type %q", ext)
	}

	id, err := uuid.GenerateUUID()
	if err != nil {
		return "", err
	}

	group := "unattached"
	if worldID != 0 {
		group = "world-" + strconv.Itoa(worldID)
	}

	return path.Join("images", group, id+ext), nil
}
