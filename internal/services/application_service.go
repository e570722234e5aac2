package services

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/google/uuid"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"
)

// allowedResumeExtensions is the upload allow-list.
var allowedResumeExtensions = map[string]struct{}{
	"pdf": {},
}

// ApplicationService owns the apply flow and resume handling.
type ApplicationService struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
	store   storage.Storage
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	store storage.Storage,
) *ApplicationService {
	return &ApplicationService{appRepo: appRepo, jobRepo: jobRepo, store: store}
}

// HasApplied reports whether the user already holds an application for the job.
func (s *ApplicationService) HasApplied(userID, jobID string) (bool, error) {
	exists, err := s.appRepo.ExistsForUserAndJob(userID, jobID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return exists, nil
}

// Apply validates and stores the resume, then creates the application with
// status "Under Review". The stored key is the sanitized original name behind
// a random prefix, so concurrent uploads of the same filename never collide.
func (s *ApplicationService) Apply(ctx context.Context, applicant *models.User, jobID string, resume *multipart.FileHeader) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.appRepo.ExistsForUserAndJob(applicant.ID, job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ConflictError("application", "You have already applied for this job")
	}

	key, err := s.storeResume(ctx, resume)
	if err != nil {
		return nil, err
	}

	app := &models.Application{
		UserID: applicant.ID,
		JobID:  job.ID,
		Resume: key,
		Status: models.ApplicationStatusUnderReview,
	}

	if err := s.appRepo.Create(app); err != nil {
		// Lost the check-then-insert race; the unique index resolved it.
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			_ = s.store.Delete(ctx, key)
			return nil, apperrors.ConflictError("application", "You have already applied for this job")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("application submitted", "application_id", app.ID, "job_id", job.ID, "user_id", applicant.ID)
	return app, nil
}

// storeResume checks the upload against the allow-list and persists it under
// a sanitized key.
func (s *ApplicationService) storeResume(ctx context.Context, resume *multipart.FileHeader) (string, error) {
	if resume == nil || resume.Filename == "" || resume.Size == 0 {
		return "", apperrors.ValidationError("upload", "Please upload your resume before submitting")
	}

	ext := storage.Extension(resume.Filename)
	if _, ok := allowedResumeExtensions[ext]; !ok {
		return "", apperrors.UnsupportedMediaType("Invalid file type. Please upload a PDF")
	}

	sanitized := storage.SanitizeFilename(resume.Filename)
	if sanitized == "" {
		return "", apperrors.ValidationError("upload", "Invalid file name")
	}
	key := uuid.NewString()[:8] + "_" + sanitized

	src, err := resume.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	if err := s.store.Save(ctx, key, src); err != nil {
		return "", apperrors.InternalError(err)
	}
	return key, nil
}

// ListForApplicant returns the caller's applications.
func (s *ApplicationService) ListForApplicant(userID string) ([]models.Application, error) {
	apps, err := s.appRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// ListForEmployer returns applications across all jobs the employer posted.
func (s *ApplicationService) ListForEmployer(employerID string) ([]models.Job, []models.Application, error) {
	jobs, err := s.jobRepo.FindByPoster(employerID)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	jobIDs := make([]string, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
	}

	apps, err := s.appRepo.FindByJobIDs(jobIDs)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return jobs, apps, nil
}

// ListAll returns every application (admin dashboard).
func (s *ApplicationService) ListAll() ([]models.Application, error) {
	apps, err := s.appRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// ChangeStatus sets an application's status; admin only (gated at the route).
func (s *ApplicationService) ChangeStatus(appID, status string) error {
	if !models.ValidApplicationStatus(status) {
		return apperrors.InvalidStatus("application", "Unknown application status: "+status)
	}
	if err := s.appRepo.UpdateStatus(appID, models.ApplicationStatus(status)); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.NotFoundError("application", "Application not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// OpenResume streams a stored resume after checking that the requester may
// see it: the applicant, the employer who posted the applied-to job, or an
// administrator.
func (s *ApplicationService) OpenResume(ctx context.Context, requester *models.User, filename string) (io.ReadCloser, error) {
	apps, err := s.appRepo.FindByResume(filename)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(apps) == 0 {
		return nil, apperrors.NotFoundError("upload", "File not found")
	}

	if !s.canAccessResume(requester, apps) {
		return nil, apperrors.ForbiddenError("You do not have access to this file")
	}

	exists, err := s.store.Exists(ctx, filename)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.NotFoundError("upload", "File not found")
	}

	reader, err := s.store.Open(ctx, filename)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reader, nil
}

func (s *ApplicationService) canAccessResume(requester *models.User, apps []models.Application) bool {
	if requester.IsAdmin {
		return true
	}
	for _, app := range apps {
		if app.UserID == requester.ID {
			return true
		}
		if app.Job != nil && app.Job.PostedBy == requester.ID {
			return true
		}
	}
	return false
}
