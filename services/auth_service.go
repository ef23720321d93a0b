package services

import (
	"context"
	"crypto/subtle"

	"github.com/Dosada05/bracket-seeding/utils"
)

// OrganizerRole is the role carried by tokens that may manage plans.
const OrganizerRole = "organizer"

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*Principal, error)
}

type LoginInput struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// Principal is the identity a successful login is issued a token for.
type Principal struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
}

type authService struct {
	username     string
	passwordHash string
}

func NewAuthService(username, passwordHash string) AuthService {
	return &authService{
		username:     username,
		passwordHash: passwordHash,
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*Principal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sameUser := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.username)) == 1
	validPassword := utils.CheckPasswordHash(input.Password, s.passwordHash)
	if !sameUser || !validPassword {
		return nil, ErrInvalidCredentials
	}

	return &Principal{Subject: s.username, Role: OrganizerRole}, nil
}
