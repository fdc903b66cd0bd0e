package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	commondto "github.com/parley-chat/parley/internal/application/common/dto"
	apperrors "github.com/parley-chat/parley/internal/shared/errors"
)

func noop() {}

// readImageUpload returns the file in a multipart field with its sniffed
// content type. A missing field yields a nil upload. The returned func
// closes the file.
func readImageUpload(c *gin.Context, field string, maxBytes int64) (*commondto.ImageUpload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, apperrors.NewValidationError("Invalid multipart form")
	}

	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, noop, apperrors.NewValidationError(
			"File is too large",
			fmt.Sprintf("%s must not exceed %d MB", field, maxBytes>>20),
		)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open upload: %w", err)
	}

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return nil, noop, fmt.Errorf("failed to detect upload type: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, noop, fmt.Errorf("failed to rewind upload: %w", err)
	}

	return &commondto.ImageUpload{
		Body:        f,
		Size:        fh.Size,
		ContentType: mtype.String(),
		Filename:    fh.Filename,
	}, func() { f.Close() }, nil
}
