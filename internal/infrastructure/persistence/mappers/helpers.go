package mappers

import "github.com/parley-chat/parley/internal/domain/shared"

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func imageRefFromColumns(url, storageID *string) *shared.ImageRef {
	return shared.NewImageRef(derefString(url), derefString(storageID))
}

func imageRefToColumns(ref *shared.ImageRef) (url, storageID *string) {
	if ref.IsZero() {
		return nil, nil
	}
	return stringPtr(ref.URL), stringPtr(ref.StorageID)
}

// mapSlice converts each element, stopping at the first failure.
func mapSlice[S, D any](src []S, fn func(S) (D, error)) ([]D, error) {
	out := make([]D, 0, len(src))
	for _, s := range src {
		d, err := fn(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
