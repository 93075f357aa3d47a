package domain

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"medsystem/pkg/cpf"
)

// Field rules for patient and report input. Validation happens before
// any write; messages keep the wording of the original system.

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
	zipRe   = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	cid10Re = regexp.MustCompile(`^[A-Z]\d{2}(\.\d{1,2})?$`)
)

// CreatePatientInput carries every writable patient field. CPF is only
// accepted here; updates never touch it.
type CreatePatientInput struct {
	FullName   string   `json:"fullName"`
	Cpf        string   `json:"cpf"`
	Gender     string   `json:"gender"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Address    *Address `json:"address"`
	HealthPlan *string  `json:"healthPlan"`
	Allergies  *string  `json:"allergies"`
}

type UpdatePatientInput struct {
	FullName   string   `json:"fullName"`
	Gender     string   `json:"gender"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Address    *Address `json:"address"`
	HealthPlan *string  `json:"healthPlan"`
	Allergies  *string  `json:"allergies"`
}

// ReportInput is shared by create and update; status is never part of
// it (creation forces Draft, updates leave status alone).
type ReportInput struct {
	PatientID           uuid.UUID  `json:"patientId"`
	ReportType          ReportType `json:"reportType"`
	PathologyDuration   *string    `json:"pathologyDuration"`
	Diagnosis           string     `json:"diagnosis"`
	TreatmentPerformed  *string    `json:"treatmentPerformed"`
	TreatmentImageURL   *string    `json:"treatmentImageUrl"`
	Prescription        *string    `json:"prescription"`
	DiseaseDisabilities *string    `json:"diseaseDisabilities"`
	DiseaseDuration     *string    `json:"diseaseDuration"`
	Cid10               *string    `json:"cid10"`
	Prognosis           *string    `json:"prognosis"`
	PrognosisImageURL   *string    `json:"prognosisImageUrl"`
	ConsultationDate    time.Time  `json:"consultationDate"`
}

func ValidateCreatePatient(in *CreatePatientInput) *ValidationError {
	var msgs []string
	msgs = append(msgs, patientCommonRules(in.FullName, in.Gender, in.Email, in.Phone, in.Address, in.HealthPlan)...)

	switch {
	case in.Cpf == "":
		msgs = append(msgs, "CPF é obrigatório")
	case len(in.Cpf) != 11:
		msgs = append(msgs, "CPF deve ter 11 dígitos")
	case !cpf.Valid(in.Cpf):
		msgs = append(msgs, "CPF deve ter formato válido")
	}

	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

func ValidateUpdatePatient(in *UpdatePatientInput) *ValidationError {
	msgs := patientCommonRules(in.FullName, in.Gender, in.Email, in.Phone, in.Address, in.HealthPlan)
	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

func patientCommonRules(fullName, gender string, email, phone *string, addr *Address, healthPlan *string) []string {
	var msgs []string

	// Length caps count characters, not bytes; accented names must not
	// hit the limit early.
	switch {
	case fullName == "":
		msgs = append(msgs, "Nome é obrigatório")
	case utf8.RuneCountInString(fullName) < 2:
		msgs = append(msgs, "Nome deve ter pelo menos 2 caracteres")
	case utf8.RuneCountInString(fullName) > 255:
		msgs = append(msgs, "Nome deve ter no máximo 255 caracteres")
	}

	if gender != GenderMale && gender != GenderFemale {
		msgs = append(msgs, "Gênero deve ser 'masculino' ou 'feminino'")
	}

	if email != nil && *email != "" && !emailRe.MatchString(*email) {
		msgs = append(msgs, "Email deve ter formato válido")
	}
	if phone != nil && *phone != "" && !phoneRe.MatchString(*phone) {
		msgs = append(msgs, "Telefone deve ter formato válido: (11) 99999-9999")
	}
	if healthPlan != nil && utf8.RuneCountInString(*healthPlan) > 255 {
		msgs = append(msgs, "Nome do convênio deve ter no máximo 255 caracteres")
	}
	if addr != nil && addr.ZipCode != "" && !zipRe.MatchString(addr.ZipCode) {
		msgs = append(msgs, "CEP deve ter formato válido: 00000-000")
	}
	return msgs
}

func ValidateReport(in *ReportInput) *ValidationError {
	var msgs []string

	if in.PatientID == uuid.Nil {
		msgs = append(msgs, "Paciente é obrigatório")
	}
	if !in.ReportType.Valid() {
		msgs = append(msgs, "Tipo de laudo inválido")
	}

	switch {
	case in.Diagnosis == "":
		msgs = append(msgs, "Diagnóstico é obrigatório")
	case utf8.RuneCountInString(in.Diagnosis) > 5000:
		msgs = append(msgs, "Diagnóstico deve ter no máximo 5000 caracteres")
	}

	if in.ConsultationDate.IsZero() {
		msgs = append(msgs, "Data da consulta é obrigatória")
	} else if in.ConsultationDate.After(time.Now()) {
		msgs = append(msgs, "Data da consulta não pode ser futura")
	}

	msgs = appendMaxLen(msgs, in.PathologyDuration, 255, "Tempo da patologia deve ter no máximo 255 caracteres")
	msgs = appendMaxLen(msgs, in.TreatmentPerformed, 5000, "Tratamento realizado deve ter no máximo 5000 caracteres")
	msgs = appendMaxLen(msgs, in.Prescription, 5000, "Prescrição deve ter no máximo 5000 caracteres")
	msgs = appendMaxLen(msgs, in.DiseaseDisabilities, 5000, "Incapacidades deve ter no máximo 5000 caracteres")
	msgs = appendMaxLen(msgs, in.DiseaseDuration, 255, "Tempo da doença deve ter no máximo 255 caracteres")
	msgs = appendMaxLen(msgs, in.Prognosis, 5000, "Prognóstico deve ter no máximo 5000 caracteres")

	if in.Cid10 != nil && *in.Cid10 != "" {
		if utf8.RuneCountInString(*in.Cid10) > 10 {
			msgs = append(msgs, "CID-10 deve ter no máximo 10 caracteres")
		} else if !cid10Re.MatchString(*in.Cid10) {
			msgs = append(msgs, "CID-10 deve ter formato válido (ex: A00, A00.1, A00.12)")
		}
	}

	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

func appendMaxLen(msgs []string, v *string, maxLen int, msg string) []string {
	if v != nil && utf8.RuneCountInString(*v) > maxLen {
		msgs = append(msgs, msg)
	}
	return msgs
}
