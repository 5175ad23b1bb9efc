package service

import (
	"context"
	"strings"

	"github.com/no0bAuntor/online-voting-system/config"
	"github.com/no0bAuntor/online-voting-system/internal/models"
	"github.com/no0bAuntor/online-voting-system/internal/repository"
	"github.com/no0bAuntor/online-voting-system/pkg/constants"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
}

type authService struct {
	userRepository repository.UserRepository
	jwtSecret      string
	admin          config.AdminConfig
}

func NewAuthService(userRepository repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepository: userRepository,
		jwtSecret:      cfg.JWT.Secret,
		admin:          cfg.Admin,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) error {

	username = strings.TrimSpace(username)

	if username == s.admin.Username {
		return ErrUsernameReserved
	}
	if len(username) < 3 {
		return ErrUsernameTooShort
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	existing, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	// Passwords double as ballot credentials here, so a password shared
	// between two voters is rejected outright.
	users, err := s.userRepository.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, user := range users {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil {
			return ErrPasswordInUse
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Username: username,
		Password: string(hashed),
	}

	return s.userRepository.Insert(ctx, user)
}

// Login checks the statically configured admin pair before any user lookup;
// the admin is never a users document.
func (s *authService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {

	if username == s.admin.Username && password == s.admin.Password {
		token, err := s.signToken(constants.AdminUserID)
		if err != nil {
			return nil, err
		}
		return &models.LoginResponse{Token: token, IsAdmin: true}, nil
	}

	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, IsAdmin: false}, nil
}

func (s *authService) signToken(id string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": id,
	})
	return token.SignedString([]byte(s.jwtSecret))
}
