package services

import (
	"fmt"

	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/pkg/apperrors"
)

// UserService covers the administrator-facing user operations.
type UserService struct {
	userRepo repositories.UserRepository
	mailer   email.Provider
}

func NewUserService(userRepo repositories.UserRepository, mailer email.Provider) *UserService {
	return &UserService{userRepo: userRepo, mailer: mailer}
}

// ListEmployers returns every employer account for the admin dashboard.
func (s *UserService) ListEmployers() ([]models.User, error) {
	users, err := s.userRepo.FindEmployers()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

// SetEmployerApproval grants or revokes posting rights. Non-employer
// accounts are rejected; approval only means something for employers.
func (s *UserService) SetEmployerApproval(userID string, approved bool) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.IsEmployer {
		return nil, apperrors.ValidationError("user", "Invalid action")
	}

	if err := s.userRepo.SetApproval(user.ID, approved); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.IsApproved = approved

	s.notifyApprovalChange(user, approved)

	logger.Info("employer approval changed", "user_id", user.ID, "approved", approved)
	return user, nil
}

// notifyApprovalChange emails the employer about the decision. Delivery
// failures are logged, never surfaced to the admin request.
func (s *UserService) notifyApprovalChange(user *models.User, approved bool) {
	subject := "Your employer account has been approved"
	body := fmt.Sprintf("Hello %s,\n\nYour employer account is now approved. You can post jobs and review applicants.\n", user.Username)
	if !approved {
		subject = "Your employer account approval has been revoked"
		body = fmt.Sprintf("Hello %s,\n\nYour employer account approval has been revoked. Contact the administrator for details.\n", user.Username)
	}

	err := s.mailer.Send(email.Message{To: user.Email, Subject: subject, Body: body})
	if err != nil {
		logger.Error("failed to send approval notification", "user_id", user.ID, "error", err)
	}
}
