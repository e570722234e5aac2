package services

import (
	"strings"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

// JobService owns posting rules and job queries.
type JobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// List returns all postings, newest first.
func (s *JobService) List() ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAllNewestFirst()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobService) Get(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Post creates a job on behalf of poster. The route is already gated on
// employer+approved; the check is repeated here so the rule holds even if a
// future caller skips the middleware.
func (s *JobService) Post(poster *models.User, req *dto.PostJobRequest) (*models.Job, error) {
	if !poster.IsEmployer {
		return nil, apperrors.ForbiddenError("Only employers can post jobs")
	}
	if !poster.IsApproved {
		return nil, apperrors.ForbiddenError("Your employer account is not approved yet")
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, apperrors.ValidationError("job", "Title and description required")
	}

	company := poster.Company
	if company == "" {
		company = poster.Username
	}

	job := &models.Job{
		Title:       title,
		Description: description,
		Salary:      strings.TrimSpace(req.Salary),
		Location:    strings.TrimSpace(req.Location),
		Category:    strings.TrimSpace(req.Category),
		Company:     company,
		PostedBy:    poster.ID,
		Status:      models.JobStatusOpen,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job posted", "job_id", job.ID, "posted_by", poster.ID)
	return job, nil
}

// ChangeStatus sets a job's status; admin only (gated at the route).
func (s *JobService) ChangeStatus(jobID, status string) error {
	if !models.ValidJobStatus(status) {
		return apperrors.InvalidStatus("job", "Unknown job status: "+status)
	}
	if err := s.jobRepo.UpdateStatus(jobID, models.JobStatus(status)); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.NotFoundError("job", "Job not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
