// Package dto provides data transfer objects shared across domains.
package dto

import (
	"io"
	"strings"
)

// ImageUpload is an image file received from a client, not yet stored.
type ImageUpload struct {
	Body        io.Reader
	Size        int64
	ContentType string
	Filename    string
}

// IsImage reports whether the sniffed content type is an image.
func (u *ImageUpload) IsImage() bool {
	return u != nil && strings.HasPrefix(u.ContentType, "image/")
}
