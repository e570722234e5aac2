package services

import (
	"strings"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

// AuthService registers accounts and establishes sessions.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register creates a new account. Job seekers are approved immediately;
// employers stay unapproved until an administrator acts.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	isEmployer := req.WantsEmployer()

	company := ""
	if isEmployer {
		company = strings.TrimSpace(req.Company)
	}

	if username == "" || email == "" || password == "" {
		return nil, apperrors.ValidationError("auth", "Fill all required fields")
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, apperrors.ValidationError("auth", err.Error())
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ConflictError("auth", "Username or email already exists")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsEmployer:   isEmployer,
		Company:      company,
		// Job seekers need no approval step.
		IsApproved: !isEmployer,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ConflictError("auth", "Username or email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "username", user.Username, "employer", user.IsEmployer)
	return user, nil
}

// Authenticate verifies credentials and mints a session token bound to the
// user id. A missing user and a wrong password are indistinguishable to the
// caller.
func (s *AuthService) Authenticate(req *dto.LoginRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", apperrors.InvalidCredentials()
		}
		return nil, "", apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", apperrors.InvalidCredentials()
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}
	return user, token, nil
}

// CurrentPrincipal resolves a session token to the backing user, or nil for
// an anonymous/expired session.
func (s *AuthService) CurrentPrincipal(token string) *models.User {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil
	}
	return user
}

// SessionTTL exposes the configured session lifetime for cookie max-age.
func (s *AuthService) SessionTTL() int {
	return int(s.tokens.TTL().Seconds())
}
