package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medsystem/internal/domain"
)

// PatientService enforces the ownership and soft-delete rules for
// patients. Every operation takes the acting doctor's id explicitly;
// resolving who is calling is the transport layer's problem.
type PatientService struct {
	patients domain.PatientRepository
	log      *zap.Logger
}

func NewPatientService(patients domain.PatientRepository, log *zap.Logger) *PatientService {
	return &PatientService{patients: patients, log: log}
}

func (s *PatientService) Create(in *domain.CreatePatientInput, userID uuid.UUID) (*domain.Patient, error) {
	if ve := domain.ValidateCreatePatient(in); ve != nil {
		return nil, ve
	}

	exists, err := s.patients.CpfExists(in.Cpf)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateCpf
	}

	now := time.Now().UTC()
	p := &domain.Patient{
		ID:         uuid.New(),
		UserID:     userID,
		FullName:   in.FullName,
		Cpf:        in.Cpf,
		Gender:     in.Gender,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		HealthPlan: in.HealthPlan,
		Allergies:  in.Allergies,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.patients.Create(p); err != nil {
		return nil, err
	}
	s.log.Info("patient created",
		zap.String("patient_id", p.ID.String()),
		zap.String("user_id", userID.String()))
	return p, nil
}

func (s *PatientService) GetByID(id, userID uuid.UUID) (*domain.Patient, error) {
	p, err := s.patients.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.OwnedBy(userID) || !p.Visible() {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *PatientService) ListByUser(userID uuid.UUID) ([]domain.Patient, error) {
	return s.patients.FindByUserID(userID)
}

// Search falls back to the plain listing on a blank term; otherwise the
// repository matches name/CPF/email across all owners and the result is
// narrowed to the caller's visible patients here.
func (s *PatientService) Search(term string, userID uuid.UUID) ([]domain.Patient, error) {
	if isBlank(term) {
		return s.ListByUser(userID)
	}
	found, err := s.patients.Search(term)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Patient, 0, len(found))
	for _, p := range found {
		if p.OwnedBy(userID) && p.Visible() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PatientService) Update(id uuid.UUID, in *domain.UpdatePatientInput, userID uuid.UUID) (*domain.Patient, error) {
	if ve := domain.ValidateUpdatePatient(in); ve != nil {
		return nil, ve
	}

	p, err := s.patients.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.OwnedBy(userID) || !p.Visible() {
		return nil, domain.ErrNotFound
	}

	// CPF is immutable after registration.
	p.FullName = in.FullName
	p.Gender = in.Gender
	p.Email = in.Email
	p.Phone = in.Phone
	p.Address = in.Address
	p.HealthPlan = in.HealthPlan
	p.Allergies = in.Allergies
	p.UpdatedAt = time.Now().UTC()

	if err := s.patients.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete flips the soft-delete flag. Visibility is deliberately not
// re-checked, so deleting twice succeeds.
func (s *PatientService) Delete(id, userID uuid.UUID) error {
	p, err := s.patients.FindByID(id)
	if err != nil {
		return err
	}
	if p == nil || !p.OwnedBy(userID) {
		return domain.ErrNotFound
	}

	p.IsDeleted = true
	p.UpdatedAt = time.Now().UTC()
	if err := s.patients.Update(p); err != nil {
		return err
	}
	s.log.Info("patient deleted",
		zap.String("patient_id", id.String()),
		zap.String("user_id", userID.String()))
	return nil
}

// CpfExists is a global pre-registration check, not scoped to a user.
// Soft-deleted patients do not free their CPF.
func (s *PatientService) CpfExists(cpf string) (bool, error) {
	return s.patients.CpfExists(cpf)
}
