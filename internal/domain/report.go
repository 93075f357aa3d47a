package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus follows the stored int values of the original system.
// There is no transition graph: any status may follow any status, and
// Draft is the only initial state.
type ReportStatus int

const (
	StatusDraft     ReportStatus = 1
	StatusFinal     ReportStatus = 2
	StatusCancelled ReportStatus = 3
)

func (s ReportStatus) Valid() bool {
	return s == StatusDraft || s == StatusFinal || s == StatusCancelled
}

func (s ReportStatus) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusFinal:
		return "final"
	case StatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

type ReportType int

const (
	TypeConsultation ReportType = 1
	TypeExamination  ReportType = 2
	TypeExpertise    ReportType = 3
)

func (t ReportType) Valid() bool {
	return t == TypeConsultation || t == TypeExamination || t == TypeExpertise
}

// MedicalReport belongs to exactly one Patient and one User; the user on
// the report must equal the patient's owner, which the service enforces
// at creation time.
type MedicalReport struct {
	ID                  uuid.UUID    `gorm:"primaryKey;size:36" json:"id"`
	UserID              uuid.UUID    `gorm:"index;size:36;not null" json:"userId"`
	PatientID           uuid.UUID    `gorm:"index;size:36;not null" json:"patientId"`
	ReportType          ReportType   `gorm:"not null" json:"reportType"`
	PathologyDuration   *string      `gorm:"size:255" json:"pathologyDuration,omitempty"`
	Diagnosis           string       `gorm:"size:5000;not null" json:"diagnosis"`
	TreatmentPerformed  *string      `gorm:"size:5000" json:"treatmentPerformed,omitempty"`
	TreatmentImageURL   *string      `gorm:"size:500" json:"treatmentImageUrl,omitempty"`
	Prescription        *string      `gorm:"size:5000" json:"prescription,omitempty"`
	DiseaseDisabilities *string      `gorm:"size:5000" json:"diseaseDisabilities,omitempty"`
	DiseaseDuration     *string      `gorm:"size:255" json:"diseaseDuration,omitempty"`
	Cid10               *string      `gorm:"size:10" json:"cid10,omitempty"`
	Prognosis           *string      `gorm:"size:5000" json:"prognosis,omitempty"`
	PrognosisImageURL   *string      `gorm:"size:500" json:"prognosisImageUrl,omitempty"`
	ConsultationDate    time.Time    `gorm:"not null" json:"consultationDate"`
	Status              ReportStatus `gorm:"not null" json:"status"`
	PdfURL              *string      `gorm:"size:500" json:"pdfUrl,omitempty"`
	IsDeleted           bool         `gorm:"index;not null;default:false" json:"-"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}

func (MedicalReport) TableName() string { return "medical_reports" }

func (r *MedicalReport) OwnedBy(userID uuid.UUID) bool { return r.UserID == userID }

func (r *MedicalReport) Visible() bool { return !r.IsDeleted }

type MedicalReportRepository interface {
	Create(r *MedicalReport) error
	Update(r *MedicalReport) error
	FindByID(id uuid.UUID) (*MedicalReport, error)
	// FindByPatientID returns non-deleted reports for one patient,
	// newest consultation date first.
	FindByPatientID(patientID uuid.UUID) ([]MedicalReport, error)
	// FindByUserID returns non-deleted reports of one owner, newest
	// created first.
	FindByUserID(userID uuid.UUID) ([]MedicalReport, error)
	FindRecent(userID uuid.UUID, limit int) ([]MedicalReport, error)
	FindByStatus(userID uuid.UUID, status ReportStatus) ([]MedicalReport, error)
	FindByDateRange(userID uuid.UUID, from, to time.Time) ([]MedicalReport, error)
}
