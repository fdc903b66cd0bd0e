package shared

import "strings"

// ImageRef points at an object held by the object store. URL is what clients
// load; StorageID is the key used to delete or replace the object.
type ImageRef struct {
	URL       string
	StorageID string
}

// NewImageRef returns nil when url is blank so callers can store the result
// in an optional field directly.
func NewImageRef(url, storageID string) *ImageRef {
	if strings.TrimSpace(url) == "" {
		return nil
	}
	return &ImageRef{URL: url, StorageID: storageID}
}

func (r *ImageRef) IsZero() bool {
	return r == nil || r.URL == ""
}
