package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medsystem/internal/domain"
)

const defaultRecentCount = 10

// ReportService enforces the rules for medical reports, including the
// cross-entity one: a report's patient must belong to the same doctor.
type ReportService struct {
	reports  domain.MedicalReportRepository
	patients domain.PatientRepository
	log      *zap.Logger
}

func NewReportService(reports domain.MedicalReportRepository, patients domain.PatientRepository, log *zap.Logger) *ReportService {
	return &ReportService{reports: reports, patients: patients, log: log}
}

func (s *ReportService) Create(in *domain.ReportInput, userID uuid.UUID) (*domain.MedicalReport, error) {
	if ve := domain.ValidateReport(in); ve != nil {
		return nil, ve
	}

	p, err := s.patients.FindByID(in.PatientID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.OwnedBy(userID) || !p.Visible() {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	r := &domain.MedicalReport{
		ID:               uuid.New(),
		UserID:           userID,
		Status:           domain.StatusDraft,
		ConsultationDate: in.ConsultationDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	applyReportInput(r, in)

	if err := s.reports.Create(r); err != nil {
		return nil, err
	}
	s.log.Info("report created",
		zap.String("report_id", r.ID.String()),
		zap.String("patient_id", r.PatientID.String()),
		zap.String("user_id", userID.String()))
	return r, nil
}

func (s *ReportService) GetByID(id, userID uuid.UUID) (*domain.MedicalReport, error) {
	r, err := s.reports.FindByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil || !r.OwnedBy(userID) || !r.Visible() {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// ListByPatient fails closed: an unknown patient, or one owned by a
// different doctor, yields an empty list rather than an error.
func (s *ReportService) ListByPatient(patientID, userID uuid.UUID) ([]domain.MedicalReport, error) {
	p, err := s.patients.FindByID(patientID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.OwnedBy(userID) {
		return []domain.MedicalReport{}, nil
	}

	found, err := s.reports.FindByPatientID(patientID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MedicalReport, 0, len(found))
	for _, r := range found {
		if r.OwnedBy(userID) && r.Visible() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ReportService) ListByUser(userID uuid.UUID) ([]domain.MedicalReport, error) {
	return s.reports.FindByUserID(userID)
}

func (s *ReportService) Recent(userID uuid.UUID, count int) ([]domain.MedicalReport, error) {
	if count <= 0 {
		count = defaultRecentCount
	}
	return s.reports.FindRecent(userID, count)
}

func (s *ReportService) ListByStatus(status domain.ReportStatus, userID uuid.UUID) ([]domain.MedicalReport, error) {
	if !status.Valid() {
		return nil, &domain.ValidationError{Messages: []string{"Status inválido"}}
	}
	return s.reports.FindByStatus(userID, status)
}

func (s *ReportService) ListByDateRange(from, to time.Time, userID uuid.UUID) ([]domain.MedicalReport, error) {
	if from.After(to) {
		return nil, &domain.ValidationError{Messages: []string{"Período inválido"}}
	}
	return s.reports.FindByDateRange(userID, from, to)
}

// Update replaces every clinical field; status is left untouched, only
// UpdateStatus moves it.
func (s *ReportService) Update(id uuid.UUID, in *domain.ReportInput, userID uuid.UUID) (*domain.MedicalReport, error) {
	if ve := domain.ValidateReport(in); ve != nil {
		return nil, ve
	}

	r, err := s.reports.FindByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil || !r.OwnedBy(userID) || !r.Visible() {
		return nil, domain.ErrNotFound
	}

	applyReportInput(r, in)
	r.UpdatedAt = time.Now().UTC()

	if err := s.reports.Update(r); err != nil {
		return nil, err
	}
	return r, nil
}

// UpdateStatus sets the status directly; there is no transition graph,
// any status may follow any status.
func (s *ReportService) UpdateStatus(id uuid.UUID, status domain.ReportStatus, userID uuid.UUID) (*domain.MedicalReport, error) {
	if !status.Valid() {
		return nil, &domain.ValidationError{Messages: []string{"Status inválido"}}
	}

	r, err := s.reports.FindByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil || !r.OwnedBy(userID) || !r.Visible() {
		return nil, domain.ErrNotFound
	}

	r.Status = status
	r.UpdatedAt = time.Now().UTC()
	if err := s.reports.Update(r); err != nil {
		return nil, err
	}
	s.log.Info("report status updated",
		zap.String("report_id", id.String()),
		zap.String("status", status.String()))
	return r, nil
}

// Delete flips the soft-delete flag; like patient deletion it does not
// re-check visibility, so it is idempotent.
func (s *ReportService) Delete(id, userID uuid.UUID) error {
	r, err := s.reports.FindByID(id)
	if err != nil {
		return err
	}
	if r == nil || !r.OwnedBy(userID) {
		return domain.ErrNotFound
	}

	r.IsDeleted = true
	r.UpdatedAt = time.Now().UTC()
	return s.reports.Update(r)
}

// GeneratePDF is not implemented yet; it must say so instead of
// pretending to succeed.
// TODO: render the report into a PDF and store its URL on the record.
func (s *ReportService) GeneratePDF(id, userID uuid.UUID) ([]byte, error) {
	return nil, domain.ErrNotImplemented
}

func applyReportInput(r *domain.MedicalReport, in *domain.ReportInput) {
	r.PatientID = in.PatientID
	r.ReportType = in.ReportType
	r.PathologyDuration = in.PathologyDuration
	r.Diagnosis = in.Diagnosis
	r.TreatmentPerformed = in.TreatmentPerformed
	r.TreatmentImageURL = in.TreatmentImageURL
	r.Prescription = in.Prescription
	r.DiseaseDisabilities = in.DiseaseDisabilities
	r.DiseaseDuration = in.DiseaseDuration
	r.Cid10 = in.Cid10
	r.Prognosis = in.Prognosis
	r.PrognosisImageURL = in.PrognosisImageURL
	r.ConsultationDate = in.ConsultationDate
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
