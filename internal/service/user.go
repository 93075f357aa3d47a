package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"medsystem/internal/domain"
	"medsystem/pkg/utils"
)

// UserService resolves doctor accounts. Authentication lives at the
// transport boundary; domain services only ever see the resolved id.
type UserService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) GetByID(id uuid.UUID) (*domain.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) GetByEmail(email string) (*domain.User, error) {
	return s.users.FindByEmail(email)
}

// ValidateCredentials returns the user only when the account is active
// and the password matches.
func (s *UserService) ValidateCredentials(email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive || !utils.CheckPassword(password, u.PasswordHash) {
		s.log.Warn("login rejected", zap.String("email", email))
		return nil, domain.ErrNotFound
	}
	return u, nil
}
