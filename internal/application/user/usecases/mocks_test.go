package usecases

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	commondto "github.com/parley-chat/parley/internal/application/common/dto"
	"github.com/parley-chat/parley/internal/domain/shared"
	"github.com/parley-chat/parley/internal/domain/user"
	"github.com/parley-chat/parley/internal/shared/errors"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) UpdateProfileImage(ctx context.Context, id uint, image shared.ImageRef) error {
	args := m.Called(ctx, id, image)
	return args.Error(0)
}

func (m *mockUserRepository) ListExcept(ctx context.Context, id uint) ([]*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

// plainHasher stores passwords with a visible prefix.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

// fakeTokens issues tokens of the form "token-<uid>-<n>".
type fakeTokens struct {
	mu       sync.Mutex
	issued   int
	issueErr error
	claims   map[string]*SessionClaims
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{claims: make(map[string]*SessionClaims)}
}

func (f *fakeTokens) Issue(userID uint, email string) (*SessionToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.issueErr != nil {
		return nil, f.issueErr
	}
	f.issued++
	value := fmt.Sprintf("token-%d-%d", userID, f.issued)
	expires := time.Now().Add(time.Hour)
	f.claims[value] = &SessionClaims{UserID: userID, Email: email, TokenID: "jti-" + value, ExpiresAt: expires}
	return &SessionToken{Value: value, ID: "jti-" + value, ExpiresAt: expires}, nil
}

func (f *fakeTokens) Verify(token string) (*SessionClaims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c, ok := f.claims[token]; ok {
		return c, nil
	}
	if strings.HasPrefix(token, "expired") {
		return nil, errors.NewTokenExpiredError()
	}
	return nil, errors.NewTokenInvalidError()
}

type fakeDenylist struct {
	revoked  map[string]time.Time
	checkErr error
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{revoked: make(map[string]time.Time)}
}

func (f *fakeDenylist) Revoke(_ context.Context, tokenID string, until time.Time) error {
	f.revoked[tokenID] = until
	return nil
}

func (f *fakeDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if f.checkErr != nil {
		return false, f.checkErr
	}
	_, ok := f.revoked[tokenID]
	return ok, nil
}

type fakeImageStore struct {
	uploads   []string
	deleted   []string
	uploadErr error
	deleteErr error
}

func (f *fakeImageStore) Upload(_ context.Context, folder string, image *commondto.ImageUpload) (shared.ImageRef, error) {
	if f.uploadErr != nil {
		return shared.ImageRef{}, f.uploadErr
	}
	id := fmt.Sprintf("%s/img-%d.png", folder, len(f.uploads)+1)
	f.uploads = append(f.uploads, id)
	return shared.ImageRef{URL: "https://cdn.test/" + id, StorageID: id}, nil
}

func (f *fakeImageStore) Delete(_ context.Context, storageID string) error {
	f.deleted = append(f.deleted, storageID)
	return f.deleteErr
}
