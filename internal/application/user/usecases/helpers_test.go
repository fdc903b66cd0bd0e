package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/parley-chat/parley/internal/domain/shared"
	"github.com/parley-chat/parley/internal/domain/user"
)

func buildUser(t *testing.T, id uint, email string, active bool, image *shared.ImageRef) *user.User {
	t.Helper()

	u, err := user.ReconstructUser(user.UserSnapshot{
		ID:           id,
		Email:        email,
		Username:     "user" + email[:1],
		Gender:       "other",
		PasswordHash: "hashed:password1",
		ProfileImage: image,
		Active:       active,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	return u
}
