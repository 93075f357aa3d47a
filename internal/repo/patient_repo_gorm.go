package repo

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medsystem/internal/domain"
)

type PatientRepo struct{ db *gorm.DB }

func NewPatientRepo(db *gorm.DB) *PatientRepo { return &PatientRepo{db: db} }

func (r *PatientRepo) Create(p *domain.Patient) error { return r.db.Create(p).Error }

func (r *PatientRepo) Update(p *domain.Patient) error { return r.db.Save(p).Error }

// FindByID returns the row regardless of the soft-delete flag; callers
// decide what deleted means for their operation.
func (r *PatientRepo) FindByID(id uuid.UUID) (*domain.Patient, error) {
	var p domain.Patient
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepo) FindByUserID(userID uuid.UUID) ([]domain.Patient, error) {
	var ps []domain.Patient
	err := r.db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("full_name asc").
		Find(&ps).Error
	return ps, err
}

func (r *PatientRepo) Search(term string) ([]domain.Patient, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	var ps []domain.Patient
	err := r.db.
		Where("is_deleted = ? AND (LOWER(full_name) LIKE ? OR cpf LIKE ? OR LOWER(email) LIKE ?)",
			false, like, like, like).
		Order("full_name asc").
		Find(&ps).Error
	return ps, err
}

// CpfExists checks every row, soft-deleted included: a CPF is never
// freed by deleting its patient.
func (r *PatientRepo) CpfExists(cpf string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.Patient{}).Where("cpf = ?", cpf).Count(&n).Error
	return n > 0, err
}
