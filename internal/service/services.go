package service

import (
	"github.com/mzhalilov/go-user-registry/internal/config"
	"github.com/mzhalilov/go-user-registry/internal/logger"
	"github.com/mzhalilov/go-user-registry/internal/store"
	"github.com/mzhalilov/go-user-registry/internal/validators"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewUserValidator(userRepository)

	return &Services{
		AuthService: NewAuthService(userRepository, validator, cfg, logger),
		UserService: NewUserService(userRepository, validator, logger),
	}
}
