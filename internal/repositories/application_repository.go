package repositories

import (
	"errors"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this user and job")
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	ExistsForUserAndJob(userID, jobID string) (bool, error)
	FindByUser(userID string) ([]models.Application, error)
	FindByJobIDs(jobIDs []string) ([]models.Application, error)
	FindByResume(filename string) ([]models.Application, error)
	FindAll() ([]models.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	err := r.db.Create(app).Error
	if err != nil {
		// idx_applicant_job catches the race the pre-insert check cannot:
		// two concurrent applies by the same user collapse to one row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ExistsForUserAndJob(userID, jobID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ApplicationRepositoryImpl) FindByUser(userID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Job").
		Where("user_id = ?", userID).
		Order("applied_on DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByJobIDs(jobIDs []string) ([]models.Application, error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}
	var apps []models.Application
	err := r.db.Preload("Job").Preload("Applicant").
		Where("job_id IN ?", jobIDs).
		Order("applied_on DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByResume(filename string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Job").
		Where("resume = ?", filename).
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindAll() ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Job").Preload("Applicant").
		Order("applied_on DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
