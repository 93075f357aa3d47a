package database

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"medsystem/internal/domain"
	"medsystem/pkg/utils"
)

// The one doctor account the system ships with. Login is real (bcrypt
// over this password), only the account provisioning is fixed.
const (
	SeedDoctorEmail    = "doutor@medico.local"
	seedDoctorName     = "Dr. Sistema Médico"
	seedDoctorCrm      = "123456-SP"
	seedDoctorPassword = "MedicoSeguro2024!"
)

// Migrate creates/updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.Patient{}, &domain.MedicalReport{})
}

// Seed provisions the default doctor when the users table is empty.
func Seed(db *gorm.DB, l *zap.Logger) error {
	var n int64
	if err := db.Model(&domain.User{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := time.Now().UTC()
	u := &domain.User{
		ID:           uuid.New(),
		Email:        SeedDoctorEmail,
		PasswordHash: utils.HashPassword(seedDoctorPassword),
		FullName:     seedDoctorName,
		Crm:          seedDoctorCrm,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(u).Error; err != nil {
		return err
	}
	l.Info("default doctor seeded", zap.String("email", u.Email), zap.String("crm", u.Crm))
	return nil
}
