package webapi

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/clog"
	"github.com/realmkeeper/realmkeeper/pkg/imagestore"
)

const (
	maxImageSize  = 10 << 20
	imageURLBase  = "/api/images/"
	presignExpiry = 15 * time.Minute
)

// ImageController accepts artwork uploads and serves them back. Records store the
// returned imageUrl like any other image URL.
type ImageController struct {
	store imagestore.ObjectStore
}

func NewImageController(store imagestore.ObjectStore) *ImageController {
	return &ImageController{store: store}
}

func (ic *ImageController) UploadImage(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}

	if fh.Size > maxImageSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image larger than 10MB")
	}

	worldID := 0
	if v := c.FormValue("worldId"); v != "" {
		if worldID, err = strconv.Atoi(v); err != nil || worldID < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid worldId")
		}
	}

	key, err := imagestore.NewImageKey(worldID, fh.Filename)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer f.Close()

	// Sniff rather than trust the client's Content-Type.
	head := make([]byte, 512)
	n, _ := io.ReadFull(f, head)
	contentType := http.DetectContentType(head[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return echo.NewHTTPError(http.StatusBadRequest, "file is not an image")
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return toHTTPError(err)
	}

	if err := ic.store.Put(c.Request().Context(), key, f, fh.Size, contentType); err != nil {
		return toHTTPError(err)
	}

	clog.For("images").Infof("Stored image %s (%d bytes)", key, fh.Size)

	return c.JSON(http.StatusCreated, echo.Map{"imageUrl": imageURLBase + key})
}

// GetImage serves the bytes directly when the store can, otherwise redirects to a
// short lived presigned URL.
func (ic *ImageController) GetImage(c echo.Context) error {
	key := c.Param("*")
	if key == "" || strings.Contains(key, "..") {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image key")
	}

	ctx := c.Request().Context()

	if opener, ok := ic.store.(imagestore.Opener); ok {
		r, contentType, err := opener.Open(ctx, key)
		if err != nil {
			return imageError(err)
		}
		defer r.Close()
		return c.Stream(http.StatusOK, contentType, r)
	}

	url, err := ic.store.PresignGet(ctx, key, presignExpiry)
	if err != nil {
		return imageError(err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, url)
}

func imageError(err error) error {
	if errors.Is(err, imagestore.ErrObjectNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "image not found")
	}

	return toHTTPError(err)
}
