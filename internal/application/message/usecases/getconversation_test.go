package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-chat/parley/internal/application/message/dto"
	"github.com/parley-chat/parley/internal/shared/errors"
	"github.com/parley-chat/parley/internal/shared/logger"
	"github.com/parley-chat/parley/internal/shared/services/markdown"
)

func TestGetConversationUseCase_Execute_Symmetric(t *testing.T) {
	f := newSendFixture()
	f.users = newUsers(1, 2, 3)
	f.uc.userRepo = f.users

	ctx := context.Background()
	for _, cmd := range []SendMessageCommand{
		{SenderID: 1, ReceiverID: 2, Content: "first"},
		{SenderID: 2, ReceiverID: 1, Content: "second"},
		{SenderID: 1, ReceiverID: 3, Content: "elsewhere"},
		{SenderID: 1, ReceiverID: 2, Content: "third"},
	} {
		_, err := f.uc.Execute(ctx, cmd)
		require.NoError(t, err)
	}

	uc := NewGetConversationUseCase(f.messages, f.users, dto.NewMapper(markdown.NewRenderer()), logger.NewLogger())

	ab, err := uc.Execute(ctx, GetConversationQuery{CurrentUserID: 1, OtherUserID: 2})
	require.NoError(t, err)
	ba, err := uc.Execute(ctx, GetConversationQuery{CurrentUserID: 2, OtherUserID: 1})
	require.NoError(t, err)

	require.Len(t, ab, 3)
	assert.Equal(t, ab, ba)

	var contents []string
	for _, m := range ab {
		contents = append(contents, *m.Content)
	}
	assert.Equal(t, []string{"first", "second", "third"}, contents)
}

func TestGetConversationUseCase_Execute_UnknownUser(t *testing.T) {
	uc := NewGetConversationUseCase(&mockMessageRepository{}, newUsers(1), dto.NewMapper(markdown.NewRenderer()), logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetConversationQuery{CurrentUserID: 1, OtherUserID: 5})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetConversationUseCase_Execute_Empty(t *testing.T) {
	uc := NewGetConversationUseCase(&mockMessageRepository{}, newUsers(1, 2), dto.NewMapper(markdown.NewRenderer()), logger.NewLogger())

	msgs, err := uc.Execute(context.Background(), GetConversationQuery{CurrentUserID: 1, OtherUserID: 2})
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
