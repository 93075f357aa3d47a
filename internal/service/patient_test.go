package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"medsystem/internal/domain"
)

type PatientServiceSuite struct {
	suite.Suite
	repo  *memPatients
	svc   *PatientService
	owner uuid.UUID
	other uuid.UUID
}

func (s *PatientServiceSuite) SetupTest() {
	s.repo = newMemPatients()
	s.svc = NewPatientService(s.repo, zap.NewNop())
	s.owner = uuid.New()
	s.other = uuid.New()
}

func TestPatientServiceSuite(t *testing.T) {
	suite.Run(t, new(PatientServiceSuite))
}

func strp(s string) *string { return &s }

func (s *PatientServiceSuite) input(name, cpfNum string) *domain.CreatePatientInput {
	return &domain.CreatePatientInput{FullName: name, Cpf: cpfNum, Gender: domain.GenderFemale}
}

func (s *PatientServiceSuite) TestCreate() {
	s.Run("persists with owner, timestamps and visible flag", func() {
		p, err := s.svc.Create(s.input("Maria da Silva", "52998224725"), s.owner)
		s.Require().NoError(err)
		s.Equal(s.owner, p.UserID)
		s.False(p.IsDeleted)
		s.False(p.CreatedAt.IsZero())
		s.Equal(p.CreatedAt, p.UpdatedAt)
		s.NotEqual(uuid.Nil, p.ID)
	})

	s.Run("rejects invalid input before any write", func() {
		before := len(s.repo.items)
		_, err := s.svc.Create(s.input("", "15350946056"), s.owner)
		_, ok := domain.AsValidation(err)
		s.True(ok)
		s.Len(s.repo.items, before)
	})

	s.Run("rejects duplicate cpf even across owners", func() {
		// Fresh CPF: the first subtest already registered 52998224725.
		_, err := s.svc.Create(s.input("Joana Pereira", "15350946056"), s.owner)
		s.Require().NoError(err)

		_, err = s.svc.Create(s.input("Outra Pessoa", "15350946056"), s.other)
		s.Require().ErrorIs(err, domain.ErrDuplicateCpf)
	})
}

func (s *PatientServiceSuite) TestGetByIDIsOwnershipScoped() {
	p, err := s.svc.Create(s.input("Maria da Silva", "52998224725"), s.owner)
	s.Require().NoError(err)

	got, err := s.svc.GetByID(p.ID, s.owner)
	s.Require().NoError(err)
	s.Equal(p.ID, got.ID)

	// Another doctor sees not-found, never the record.
	_, err = s.svc.GetByID(p.ID, s.other)
	s.Require().ErrorIs(err, domain.ErrNotFound)

	_, err = s.svc.GetByID(uuid.New(), s.owner)
	s.Require().ErrorIs(err, domain.ErrNotFound)
}

func (s *PatientServiceSuite) TestSoftDelete() {
	p, err := s.svc.Create(s.input("Maria da Silva", "52998224725"), s.owner)
	s.Require().NoError(err)

	s.Run("other user cannot delete", func() {
		s.Require().ErrorIs(s.svc.Delete(p.ID, s.other), domain.ErrNotFound)
	})

	s.Require().NoError(s.svc.Delete(p.ID, s.owner))

	s.Run("deleted patient is gone from reads", func() {
		_, err := s.svc.GetByID(p.ID, s.owner)
		s.Require().ErrorIs(err, domain.ErrNotFound)

		list, err := s.svc.ListByUser(s.owner)
		s.Require().NoError(err)
		s.Empty(list)
	})

	s.Run("second delete succeeds", func() {
		s.Require().NoError(s.svc.Delete(p.ID, s.owner))
	})

	s.Run("cpf stays blocked after soft delete", func() {
		exists, err := s.svc.CpfExists("52998224725")
		s.Require().NoError(err)
		s.True(exists)
	})
}

func (s *PatientServiceSuite) TestListByUserOrdersByName() {
	_, err := s.svc.Create(s.input("Zuleide Costa", "52998224725"), s.owner)
	s.Require().NoError(err)
	_, err = s.svc.Create(s.input("Ana Lima", "15350946056"), s.owner)
	s.Require().NoError(err)

	list, err := s.svc.ListByUser(s.owner)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Ana Lima", list[0].FullName)
	s.Equal("Zuleide Costa", list[1].FullName)
}

func (s *PatientServiceSuite) TestSearch() {
	in := s.input("Maria da Silva", "52998224725")
	in.Email = strp("maria@example.com")
	mine, err := s.svc.Create(in, s.owner)
	s.Require().NoError(err)

	_, err = s.svc.Create(s.input("Maria Oliveira", "15350946056"), s.other)
	s.Require().NoError(err)

	s.Run("blank term behaves like the plain listing", func() {
		list, err := s.svc.Search("   ", s.owner)
		s.Require().NoError(err)
		full, err := s.svc.ListByUser(s.owner)
		s.Require().NoError(err)
		s.Equal(full, list)
	})

	s.Run("never leaks another doctor's patients", func() {
		list, err := s.svc.Search("maria", s.owner)
		s.Require().NoError(err)
		s.Require().Len(list, 1)
		s.Equal(mine.ID, list[0].ID)
	})

	s.Run("matches cpf and email too", func() {
		list, err := s.svc.Search("529982", s.owner)
		s.Require().NoError(err)
		s.Len(list, 1)

		list, err = s.svc.Search("MARIA@EXAMPLE", s.owner)
		s.Require().NoError(err)
		s.Len(list, 1)
	})

	s.Run("excludes soft-deleted", func() {
		s.Require().NoError(s.svc.Delete(mine.ID, s.owner))
		list, err := s.svc.Search("maria", s.owner)
		s.Require().NoError(err)
		s.Empty(list)
	})
}

func (s *PatientServiceSuite) TestUpdate() {
	p, err := s.svc.Create(s.input("Maria da Silva", "52998224725"), s.owner)
	s.Require().NoError(err)

	upd := &domain.UpdatePatientInput{
		FullName:   "Maria da Silva Santos",
		Gender:     domain.GenderFemale,
		Phone:      strp("(85) 98888-7777"),
		HealthPlan: strp("Unimed"),
	}

	s.Run("not found for other owner", func() {
		_, err := s.svc.Update(p.ID, upd, s.other)
		s.Require().ErrorIs(err, domain.ErrNotFound)
	})

	s.Run("merges fields and keeps cpf", func() {
		got, err := s.svc.Update(p.ID, upd, s.owner)
		s.Require().NoError(err)
		s.Equal("Maria da Silva Santos", got.FullName)
		s.Equal("52998224725", got.Cpf)
		s.Equal("Unimed", *got.HealthPlan)
		s.True(got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
	})

	s.Run("invalid input fails before the fetch", func() {
		_, err := s.svc.Update(p.ID, &domain.UpdatePatientInput{}, s.owner)
		_, ok := domain.AsValidation(err)
		s.True(ok)
	})

	s.Run("not found once deleted", func() {
		s.Require().NoError(s.svc.Delete(p.ID, s.owner))
		_, err := s.svc.Update(p.ID, upd, s.owner)
		s.Require().ErrorIs(err, domain.ErrNotFound)
	})
}

func (s *PatientServiceSuite) TestCpfExistsIsGlobal() {
	_, err := s.svc.Create(s.input("Maria da Silva", "52998224725"), s.owner)
	s.Require().NoError(err)

	// Not scoped to any user: a different doctor's pre-registration
	// check still sees it.
	exists, err := s.svc.CpfExists("52998224725")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.svc.CpfExists("15350946056")
	s.Require().NoError(err)
	s.False(exists)
}
