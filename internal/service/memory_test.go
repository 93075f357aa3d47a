package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"medsystem/internal/domain"
)

// In-memory repositories for service tests. They mimic the ordering and
// filtering of the GORM implementations.

type memPatients struct {
	items map[uuid.UUID]domain.Patient
}

func newMemPatients() *memPatients {
	return &memPatients{items: make(map[uuid.UUID]domain.Patient)}
}

func (m *memPatients) Create(p *domain.Patient) error { m.items[p.ID] = *p; return nil }
func (m *memPatients) Update(p *domain.Patient) error { m.items[p.ID] = *p; return nil }

func (m *memPatients) FindByID(id uuid.UUID) (*domain.Patient, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memPatients) FindByUserID(userID uuid.UUID) ([]domain.Patient, error) {
	var out []domain.Patient
	for _, p := range m.items {
		if p.UserID == userID && !p.IsDeleted {
			out = append(out, p)
		}
	}
	sortPatientsByName(out)
	return out, nil
}

func (m *memPatients) Search(term string) ([]domain.Patient, error) {
	t := strings.ToLower(strings.TrimSpace(term))
	var out []domain.Patient
	for _, p := range m.items {
		if p.IsDeleted {
			continue
		}
		email := ""
		if p.Email != nil {
			email = strings.ToLower(*p.Email)
		}
		if strings.Contains(strings.ToLower(p.FullName), t) ||
			strings.Contains(p.Cpf, t) ||
			strings.Contains(email, t) {
			out = append(out, p)
		}
	}
	sortPatientsByName(out)
	return out, nil
}

func (m *memPatients) CpfExists(cpf string) (bool, error) {
	for _, p := range m.items {
		if p.Cpf == cpf {
			return true, nil
		}
	}
	return false, nil
}

func sortPatientsByName(ps []domain.Patient) {
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].FullName < ps[j].FullName })
}

type memReports struct {
	items map[uuid.UUID]domain.MedicalReport
}

func newMemReports() *memReports {
	return &memReports{items: make(map[uuid.UUID]domain.MedicalReport)}
}

func (m *memReports) Create(r *domain.MedicalReport) error { m.items[r.ID] = *r; return nil }
func (m *memReports) Update(r *domain.MedicalReport) error { m.items[r.ID] = *r; return nil }

func (m *memReports) FindByID(id uuid.UUID) (*domain.MedicalReport, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memReports) FindByPatientID(patientID uuid.UUID) ([]domain.MedicalReport, error) {
	out := m.filter(func(r domain.MedicalReport) bool { return r.PatientID == patientID })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ConsultationDate.After(out[j].ConsultationDate)
	})
	return out, nil
}

func (m *memReports) FindByUserID(userID uuid.UUID) ([]domain.MedicalReport, error) {
	out := m.filter(func(r domain.MedicalReport) bool { return r.UserID == userID })
	sortReportsByCreated(out)
	return out, nil
}

func (m *memReports) FindRecent(userID uuid.UUID, limit int) ([]domain.MedicalReport, error) {
	out, _ := m.FindByUserID(userID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memReports) FindByStatus(userID uuid.UUID, status domain.ReportStatus) ([]domain.MedicalReport, error) {
	out := m.filter(func(r domain.MedicalReport) bool {
		return r.UserID == userID && r.Status == status
	})
	sortReportsByCreated(out)
	return out, nil
}

func (m *memReports) FindByDateRange(userID uuid.UUID, from, to time.Time) ([]domain.MedicalReport, error) {
	out := m.filter(func(r domain.MedicalReport) bool {
		return r.UserID == userID && !r.ConsultationDate.Before(from) && !r.ConsultationDate.After(to)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ConsultationDate.After(out[j].ConsultationDate)
	})
	return out, nil
}

func (m *memReports) filter(keep func(domain.MedicalReport) bool) []domain.MedicalReport {
	var out []domain.MedicalReport
	for _, r := range m.items {
		if !r.IsDeleted && keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func sortReportsByCreated(rs []domain.MedicalReport) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].CreatedAt.After(rs[j].CreatedAt) })
}

type memUsers struct {
	items map[uuid.UUID]domain.User
}

func newMemUsers() *memUsers { return &memUsers{items: make(map[uuid.UUID]domain.User)} }

func (m *memUsers) Create(u *domain.User) error { m.items[u.ID] = *u; return nil }

func (m *memUsers) FindByID(id uuid.UUID) (*domain.User, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUsers) FindByEmail(email string) (*domain.User, error) {
	for _, u := range m.items {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}
