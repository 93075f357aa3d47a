package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"medsystem/internal/domain"
)

type ReportServiceSuite struct {
	suite.Suite
	patients *memPatients
	reports  *memReports
	psvc     *PatientService
	svc      *ReportService
	owner    uuid.UUID
	other    uuid.UUID
	patient  *domain.Patient
}

func (s *ReportServiceSuite) SetupTest() {
	s.patients = newMemPatients()
	s.reports = newMemReports()
	log := zap.NewNop()
	s.psvc = NewPatientService(s.patients, log)
	s.svc = NewReportService(s.reports, s.patients, log)
	s.owner = uuid.New()
	s.other = uuid.New()

	p, err := s.psvc.Create(&domain.CreatePatientInput{
		FullName: "Maria da Silva",
		Cpf:      "52998224725",
		Gender:   domain.GenderFemale,
	}, s.owner)
	s.Require().NoError(err)
	s.patient = p
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func (s *ReportServiceSuite) input() *domain.ReportInput {
	return &domain.ReportInput{
		PatientID:        s.patient.ID,
		ReportType:       domain.TypeConsultation,
		Diagnosis:        "Lombalgia crônica",
		Cid10:            strp("M54.5"),
		ConsultationDate: time.Now().Add(-2 * time.Hour),
	}
}

func (s *ReportServiceSuite) TestCreate() {
	s.Run("starts as draft with the caller as owner", func() {
		r, err := s.svc.Create(s.input(), s.owner)
		s.Require().NoError(err)
		s.Equal(domain.StatusDraft, r.Status)
		s.Equal(s.owner, r.UserID)
		s.Equal(s.patient.ID, r.PatientID)
		s.False(r.IsDeleted)
	})

	s.Run("valid payload still fails when the patient belongs to someone else", func() {
		_, err := s.svc.Create(s.input(), s.other)
		s.Require().ErrorIs(err, domain.ErrNotFound)
	})

	s.Run("fails for a missing patient", func() {
		in := s.input()
		in.PatientID = uuid.New()
		_, err := s.svc.Create(in, s.owner)
		s.Require().ErrorIs(err, domain.ErrNotFound)
	})

	s.Run("fails for a soft-deleted patient", func() {
		s.Require().NoError(s.psvc.Delete(s.patient.ID, s.owner))
		_, err := s.svc.Create(s.input(), s.owner)
		s.Require().ErrorIs(err, domain.ErrNotFound)
	})
}

func (s *ReportServiceSuite) TestCreateValidatesFirst() {
	in := s.input()
	in.Diagnosis = ""
	_, err := s.svc.Create(in, s.owner)
	ve, ok := domain.AsValidation(err)
	s.Require().True(ok)
	s.Contains(ve.Messages[0], "Diagnóstico")
	s.Empty(s.reports.items)
}

func (s *ReportServiceSuite) TestGetByID() {
	r, err := s.svc.Create(s.input(), s.owner)
	s.Require().NoError(err)

	got, err := s.svc.GetByID(r.ID, s.owner)
	s.Require().NoError(err)
	s.Equal(r.ID, got.ID)

	_, err = s.svc.GetByID(r.ID, s.other)
	s.Require().ErrorIs(err, domain.ErrNotFound)
}

func (s *ReportServiceSuite) TestListByPatientFailsClosed() {
	_, err := s.svc.Create(s.input(), s.owner)
	s.Require().NoError(err)

	s.Run("unknown patient yields empty, not an error", func() {
		list, err := s.svc.ListByPatient(uuid.New(), s.owner)
		s.Require().NoError(err)
		s.Empty(list)
	})

	s.Run("foreign patient yields empty", func() {
		list, err := s.svc.ListByPatient(s.patient.ID, s.other)
		s.Require().NoError(err)
		s.Empty(list)
	})

	s.Run("owner sees newest consultation first", func() {
		in := s.input()
		in.ConsultationDate = time.Now().Add(-time.Hour)
		newest, err := s.svc.Create(in, s.owner)
		s.Require().NoError(err)

		list, err := s.svc.ListByPatient(s.patient.ID, s.owner)
		s.Require().NoError(err)
		s.Require().Len(list, 2)
		s.Equal(newest.ID, list[0].ID)
	})
}

func (s *ReportServiceSuite) TestRecent() {
	for i := 0; i < 12; i++ {
		r, err := s.svc.Create(s.input(), s.owner)
		s.Require().NoError(err)
		// Stagger creation times; the fake sorts on CreatedAt.
		r.CreatedAt = r.CreatedAt.Add(time.Duration(i) * time.Minute)
		s.Require().NoError(s.reports.Update(r))
	}

	list, err := s.svc.Recent(s.owner, 0)
	s.Require().NoError(err)
	s.Len(list, 10) // default count

	list, err = s.svc.Recent(s.owner, 3)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.True(list[0].CreatedAt.After(list[1].CreatedAt))
}

func (s *ReportServiceSuite) TestUpdateDoesNotTouchStatus() {
	r, err := s.svc.Create(s.input(), s.owner)
	s.Require().NoError(err)
	_, err = s.svc.UpdateStatus(r.ID, domain.StatusFinal, s.owner)
	s.Require().NoError(err)

	in := s.input()
	in.Diagnosis = "Hérnia de disco"
	got, err := s.svc.Update(r.ID, in, s.owner)
	s.Require().NoError(err)
	s.Equal("Hérnia de disco", got.Diagnosis)
	s.Equal(domain.StatusFinal, got.Status)
}

func (s *ReportServiceSuite) TestStatusTransitionsAreUnrestricted() {
	r, err := s.svc.Create(s.input(), s.owner)
	s.Require().NoError(err)

	_, err = s.svc.UpdateStatus(r.ID, domain.StatusFinal, s.owner)
	s.Require().NoError(err)

	// Final is not terminal; going back to Draft is allowed.
	_, err = s.svc.UpdateStatus(r.ID, domain.StatusDraft, s.owner)
	s.Require().NoError(err)

	got, err := s.svc.GetByID(r.ID, s.owner)
	s.Require().NoError(err)
	s.Equal(domain.StatusDraft, got.Status)

	_, err = s.svc.UpdateStatus(r.ID, domain.ReportStatus(7), s.owner)
	_, ok := domain.AsValidation(err)
	s.True(ok)

	_, err = s.svc.UpdateStatus(r.ID, domain.StatusFinal, s.other)
	s.Require().ErrorIs(err, domain.ErrNotFound)
}

func (s *ReportServiceSuite) TestDeleteIsIdempotent() {
	r, err := s.svc.Create(s.input(), s.owner)
	s.Require().NoError(err)

	s.Require().ErrorIs(s.svc.Delete(r.ID, s.other), domain.ErrNotFound)
	s.Require().NoError(s.svc.Delete(r.ID, s.owner))
	s.Require().NoError(s.svc.Delete(r.ID, s.owner))

	_, err = s.svc.GetByID(r.ID, s.owner)
	s.Require().ErrorIs(err, domain.ErrNotFound)

	list, err := s.svc.ListByUser(s.owner)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *ReportServiceSuite) TestListByStatus() {
	r1, err := s.svc.Create(s.input(), s.owner)
	s.Require().NoError(err)
	_, err = s.svc.Create(s.input(), s.owner)
	s.Require().NoError(err)
	_, err = s.svc.UpdateStatus(r1.ID, domain.StatusFinal, s.owner)
	s.Require().NoError(err)

	finals, err := s.svc.ListByStatus(domain.StatusFinal, s.owner)
	s.Require().NoError(err)
	s.Require().Len(finals, 1)
	s.Equal(r1.ID, finals[0].ID)

	_, err = s.svc.ListByStatus(domain.ReportStatus(0), s.owner)
	_, ok := domain.AsValidation(err)
	s.True(ok)
}

func (s *ReportServiceSuite) TestListByDateRange() {
	in := s.input()
	in.ConsultationDate = time.Now().Add(-48 * time.Hour)
	old, err := s.svc.Create(in, s.owner)
	s.Require().NoError(err)
	_, err = s.svc.Create(s.input(), s.owner)
	s.Require().NoError(err)

	from := time.Now().Add(-72 * time.Hour)
	to := time.Now().Add(-24 * time.Hour)
	list, err := s.svc.ListByDateRange(from, to, s.owner)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(old.ID, list[0].ID)

	_, err = s.svc.ListByDateRange(to, from, s.owner)
	_, ok := domain.AsValidation(err)
	s.True(ok)
}

func (s *ReportServiceSuite) TestGeneratePDFIsNotImplemented() {
	r, err := s.svc.Create(s.input(), s.owner)
	s.Require().NoError(err)

	_, err = s.svc.GeneratePDF(r.ID, s.owner)
	s.Require().ErrorIs(err, domain.ErrNotImplemented)
}
