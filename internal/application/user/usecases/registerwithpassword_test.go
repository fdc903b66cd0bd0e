package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/parley-chat/parley/internal/domain/user"
	vo "github.com/parley-chat/parley/internal/domain/user/valueobjects"
	"github.com/parley-chat/parley/internal/shared/errors"
	"github.com/parley-chat/parley/internal/shared/logger"
)

func validRegisterCommand() RegisterWithPasswordCommand {
	return RegisterWithPasswordCommand{
		Username:        "alice",
		Email:           " A@x.com ",
		Gender:          "male",
		Password:        "password1",
		ConfirmPassword: "password1",
	}
}

func TestRegisterWithPasswordUseCase_Execute_Success(t *testing.T) {
	repo := new(mockUserRepository)
	tokens := newFakeTokens()

	repo.On("ExistsByEmail", mock.Anything, "A@x.com").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*user.User).SetID(1))
		}).
		Return(nil)

	uc := NewRegisterWithPasswordUseCase(repo, plainHasher{}, vo.DefaultPasswordPolicy(), tokens, logger.NewLogger())

	result, err := uc.Execute(context.Background(), validRegisterCommand())

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.User.ID())
	assert.Equal(t, "A@x.com", result.User.Email().String())
	assert.Equal(t, "hashed:password1", result.User.PasswordHash())
	assert.True(t, result.User.IsActive())
	require.NotNil(t, result.Token)
	assert.Equal(t, "token-1-1", result.Token.Value)

	repo.AssertExpectations(t)
}

func TestRegisterWithPasswordUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterWithPasswordCommand)
		wantErr string
	}{
		{
			name:    "password mismatch",
			mutate:  func(c *RegisterWithPasswordCommand) { c.ConfirmPassword = "password2" },
			wantErr: "passwords do not match",
		},
		{
			name: "password too short",
			mutate: func(c *RegisterWithPasswordCommand) {
				c.Password = "short"
				c.ConfirmPassword = "short"
			},
			wantErr: "at least 8",
		},
		{
			name:    "bad email",
			mutate:  func(c *RegisterWithPasswordCommand) { c.Email = "not-an-email" },
			wantErr: "email",
		},
		{
			name:    "short username",
			mutate:  func(c *RegisterWithPasswordCommand) { c.Username = "ab" },
			wantErr: "username",
		},
		{
			name:    "unknown gender",
			mutate:  func(c *RegisterWithPasswordCommand) { c.Gender = "robot" },
			wantErr: "gender",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepository)
			uc := NewRegisterWithPasswordUseCase(repo, plainHasher{}, vo.DefaultPasswordPolicy(), newFakeTokens(), logger.NewLogger())

			cmd := validRegisterCommand()
			tt.mutate(&cmd)

			result, err := uc.Execute(context.Background(), cmd)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)

			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterWithPasswordUseCase_Execute_EmailTaken(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("ExistsByEmail", mock.Anything, "A@x.com").Return(true, nil)

	uc := NewRegisterWithPasswordUseCase(repo, plainHasher{}, vo.DefaultPasswordPolicy(), newFakeTokens(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), validRegisterCommand())

	assert.True(t, errors.IsConflictError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterWithPasswordUseCase_Execute_UniqueIndexRace(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("ExistsByEmail", mock.Anything, "A@x.com").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(user.ErrEmailTaken)

	uc := NewRegisterWithPasswordUseCase(repo, plainHasher{}, vo.DefaultPasswordPolicy(), newFakeTokens(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), validRegisterCommand())

	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterWithPasswordUseCase_Execute_TokenFailureKeepsUser(t *testing.T) {
	repo := new(mockUserRepository)
	tokens := newFakeTokens()
	tokens.issueErr = stderrors.New("signing failed")

	repo.On("ExistsByEmail", mock.Anything, "A@x.com").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	uc := NewRegisterWithPasswordUseCase(repo, plainHasher{}, vo.DefaultPasswordPolicy(), tokens, logger.NewLogger())

	_, err := uc.Execute(context.Background(), validRegisterCommand())

	require.Error(t, err)
	assert.False(t, errors.IsAppError(err))
	repo.AssertNumberOfCalls(t, "Create", 1)
}
