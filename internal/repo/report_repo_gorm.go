package repo

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medsystem/internal/domain"
)

type ReportRepo struct{ db *gorm.DB }

func NewReportRepo(db *gorm.DB) *ReportRepo { return &ReportRepo{db: db} }

func (r *ReportRepo) Create(m *domain.MedicalReport) error { return r.db.Create(m).Error }

func (r *ReportRepo) Update(m *domain.MedicalReport) error { return r.db.Save(m).Error }

func (r *ReportRepo) FindByID(id uuid.UUID) (*domain.MedicalReport, error) {
	var m domain.MedicalReport
	err := r.db.First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ReportRepo) FindByPatientID(patientID uuid.UUID) ([]domain.MedicalReport, error) {
	var ms []domain.MedicalReport
	err := r.db.
		Where("patient_id = ? AND is_deleted = ?", patientID, false).
		Order("consultation_date desc").
		Find(&ms).Error
	return ms, err
}

func (r *ReportRepo) FindByUserID(userID uuid.UUID) ([]domain.MedicalReport, error) {
	var ms []domain.MedicalReport
	err := r.db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&ms).Error
	return ms, err
}

func (r *ReportRepo) FindRecent(userID uuid.UUID, limit int) ([]domain.MedicalReport, error) {
	var ms []domain.MedicalReport
	err := r.db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Limit(limit).
		Find(&ms).Error
	return ms, err
}

func (r *ReportRepo) FindByStatus(userID uuid.UUID, status domain.ReportStatus) ([]domain.MedicalReport, error) {
	var ms []domain.MedicalReport
	err := r.db.
		Where("user_id = ? AND status = ? AND is_deleted = ?", userID, status, false).
		Order("created_at desc").
		Find(&ms).Error
	return ms, err
}

func (r *ReportRepo) FindByDateRange(userID uuid.UUID, from, to time.Time) ([]domain.MedicalReport, error) {
	var ms []domain.MedicalReport
	err := r.db.
		Where("user_id = ? AND consultation_date BETWEEN ? AND ? AND is_deleted = ?",
			userID, from, to, false).
		Order("consultation_date desc").
		Find(&ms).Error
	return ms, err
}
