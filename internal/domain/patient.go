package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	GenderMale   = "masculino"
	GenderFemale = "feminino"
)

// Address is an embedded value, stored as address_* columns. All fields
// are plain strings; only the zip code has a format rule.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// FullAddress joins the non-empty parts for display.
func (a Address) FullAddress() string {
	var parts []string
	if a.Street != "" {
		parts = append(parts, a.Street+", "+a.Number)
	}
	if a.Complement != "" {
		parts = append(parts, a.Complement)
	}
	if a.Neighborhood != "" {
		parts = append(parts, a.Neighborhood)
	}
	if a.City != "" {
		parts = append(parts, a.City)
	}
	if a.State != "" {
		parts = append(parts, a.State)
	}
	if a.ZipCode != "" {
		parts = append(parts, a.ZipCode)
	}
	return strings.Join(parts, ", ")
}

// Patient belongs to exactly one User. References are by id only;
// loading the owner is always an explicit repository call.
type Patient struct {
	ID         uuid.UUID `gorm:"primaryKey;size:36" json:"id"`
	UserID     uuid.UUID `gorm:"index;size:36;not null" json:"userId"`
	FullName   string    `gorm:"size:255;not null" json:"fullName"`
	Cpf        string    `gorm:"index;size:11;not null" json:"cpf"`
	Gender     string    `gorm:"size:16;not null" json:"gender"`
	Email      *string   `gorm:"size:255" json:"email,omitempty"`
	Phone      *string   `gorm:"size:20" json:"phone,omitempty"`
	Address    *Address  `gorm:"embedded;embeddedPrefix:address_" json:"address,omitempty"`
	HealthPlan *string   `gorm:"size:255" json:"healthPlan,omitempty"`
	Allergies  *string   `gorm:"type:text" json:"allergies,omitempty"`
	IsDeleted  bool      `gorm:"index;not null;default:false" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Patient) TableName() string { return "patients" }

func (p *Patient) OwnedBy(userID uuid.UUID) bool { return p.UserID == userID }

// Visible reports whether the record is still active (not soft-deleted).
func (p *Patient) Visible() bool { return !p.IsDeleted }

type PatientRepository interface {
	Create(p *Patient) error
	Update(p *Patient) error
	FindByID(id uuid.UUID) (*Patient, error)
	// FindByUserID returns non-deleted patients of one owner, full name
	// ascending.
	FindByUserID(userID uuid.UUID) ([]Patient, error)
	// Search matches name/CPF/email case-insensitively across all
	// non-deleted patients; ownership scoping happens in the service.
	Search(term string) ([]Patient, error)
	// CpfExists checks across all owners, soft-deleted rows included; a
	// CPF is never freed by deleting its patient.
	CpfExists(cpf string) (bool, error)
}
