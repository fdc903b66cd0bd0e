package http

import (
	messageDto "github.com/parley-chat/parley/internal/application/message/dto"
	messageUsecases "github.com/parley-chat/parley/internal/application/message/usecases"
	"github.com/parley-chat/parley/internal/application/user/usecases"
	vo "github.com/parley-chat/parley/internal/domain/user/valueobjects"
	"github.com/parley-chat/parley/internal/shared/services/markdown"
)

// allUseCases holds every use case the handlers call.
type allUseCases struct {
	register        *usecases.RegisterWithPasswordUseCase
	login           *usecases.LoginWithPasswordUseCase
	logout          *usecases.LogoutUseCase
	resolveSession  *usecases.ResolveSessionUseCase
	updateProfile   *usecases.UpdateProfilePictureUseCase
	listUsers       *usecases.ListUsersUseCase
	sendMessage     *messageUsecases.SendMessageUseCase
	getConversation *messageUsecases.GetConversationUseCase
}

// ============================================================
// Section 2: Use cases
// ============================================================

func (c *Container) initUseCases() {
	log := c.log
	repos := c.repos
	denylist := c.newTokenDenylist()
	mapper := messageDto.NewMapper(markdown.NewRenderer())

	c.ucs = &allUseCases{
		register:        usecases.NewRegisterWithPasswordUseCase(repos.userRepo, c.hasher, vo.NewPasswordPolicy(c.cfg.Auth.Password.MinLength), c.tokenService, log),
		login:           usecases.NewLoginWithPasswordUseCase(repos.userRepo, c.hasher, c.tokenService, log),
		logout:          usecases.NewLogoutUseCase(c.tokenService, denylist, log),
		resolveSession:  usecases.NewResolveSessionUseCase(repos.userRepo, c.tokenService, denylist, log),
		updateProfile:   usecases.NewUpdateProfilePictureUseCase(repos.userRepo, c.images, log),
		listUsers:       usecases.NewListUsersUseCase(repos.userRepo, log),
		sendMessage:     messageUsecases.NewSendMessageUseCase(repos.messageRepo, repos.userRepo, c.images, c.notifier, mapper, log),
		getConversation: messageUsecases.NewGetConversationUseCase(repos.messageRepo, repos.userRepo, mapper, log),
	}
}
