package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/httpresp"
	"github.com/BruksfildServices01/home-listing/internal/infra/imaging"
	"github.com/BruksfildServices01/home-listing/internal/infra/storage"
	"github.com/BruksfildServices01/home-listing/internal/middleware"
)

const maxUploadBytes = 10 << 20

type ImageHandler struct {
	uploader storage.Uploader
	maxWidth int
}

func NewImageHandler(uploader storage.Uploader, maxWidth int) *ImageHandler {
	return &ImageHandler{
		uploader: uploader,
		maxWidth: maxWidth,
	}
}

// Upload converts the multipart "file" field to WebP and stores it. The
// returned url goes into the images array of a home.
func (h *ImageHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Attach the image as the \"file\" form field.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "unreadable_file", "The uploaded file could not be read.")
		return
	}
	defer f.Close()

	body, err := imaging.ToWebP(f, h.maxWidth)
	if errors.Is(err, imaging.ErrUnsupportedImage) {
		httperr.BadRequest(c, "unsupported_image", "Only JPEG, PNG and GIF images are accepted.")
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	key := "homes/" + uuid.NewString() + ".webp"

	url, err := h.uploader.Put(c.Request.Context(), key, "image/webp", body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"user_id": middleware.UserID(c),
		"key":     key,
		"bytes":   len(body),
	}).Info("image uploaded")

	httpresp.Created(c, gin.H{"url": url})
}
