package usecases

import (
	"context"
	"fmt"
	"sort"
	"time"

	commondto "github.com/parley-chat/parley/internal/application/common/dto"
	"github.com/parley-chat/parley/internal/domain/message"
	"github.com/parley-chat/parley/internal/domain/shared"
	"github.com/parley-chat/parley/internal/domain/user"
)

type mockMessageRepository struct {
	messages   []*message.Message
	CreateFunc func(ctx context.Context, msg *message.Message) error
}

func (m *mockMessageRepository) Create(ctx context.Context, msg *message.Message) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, msg); err != nil {
			return err
		}
	}
	if err := msg.SetID(uint(len(m.messages) + 1)); err != nil {
		return err
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockMessageRepository) ListConversation(_ context.Context, a, b uint) ([]*message.Message, error) {
	var out []*message.Message
	for _, msg := range m.messages {
		s, r := msg.SenderID(), msg.ReceiverID()
		if (s == a && r == b) || (s == b && r == a) {
			out = append(out, msg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].ID() < out[j].ID()
		}
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out, nil
}

// mockUserRepository knows a fixed set of user ids.
type mockUserRepository struct {
	users      map[uint]*user.User
	GetByIDErr error
}

func (m *mockUserRepository) Create(context.Context, *user.User) error { return nil }

func (m *mockUserRepository) GetByID(_ context.Context, id uint) (*user.User, error) {
	if m.GetByIDErr != nil {
		return nil, m.GetByIDErr
	}
	return m.users[id], nil
}

func (m *mockUserRepository) GetByEmail(context.Context, string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(context.Context, string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) UpdateProfileImage(context.Context, uint, shared.ImageRef) error {
	return nil
}

func (m *mockUserRepository) ListExcept(context.Context, uint) ([]*user.User, error) {
	return nil, nil
}

type mockImageStore struct {
	uploads   []string
	deleted   []string
	uploadErr error
}

func (m *mockImageStore) Upload(_ context.Context, folder string, _ *commondto.ImageUpload) (shared.ImageRef, error) {
	if m.uploadErr != nil {
		return shared.ImageRef{}, m.uploadErr
	}
	id := fmt.Sprintf("%s/%d.jpg", folder, len(m.uploads)+1)
	m.uploads = append(m.uploads, id)
	return shared.ImageRef{URL: "https://cdn.test/" + id, StorageID: id}, nil
}

func (m *mockImageStore) Delete(_ context.Context, storageID string) error {
	m.deleted = append(m.deleted, storageID)
	return nil
}

type notification struct {
	receiverID string
	payload    any
}

type mockNotifier struct {
	online map[string]bool
	sent   []notification
}

func (m *mockNotifier) Notify(receiverID string, payload any) bool {
	m.sent = append(m.sent, notification{receiverID: receiverID, payload: payload})
	return m.online[receiverID]
}

func newUsers(ids ...uint) *mockUserRepository {
	repo := &mockUserRepository{users: make(map[uint]*user.User)}
	for _, id := range ids {
		u, err := user.ReconstructUser(user.UserSnapshot{
			ID:        id,
			Email:     fmt.Sprintf("u%d@x.com", id),
			Username:  fmt.Sprintf("user%d", id),
			Gender:    "other",
			Active:    true,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		})
		if err != nil {
			panic(err)
		}
		repo.users[id] = u
	}
	return repo
}
