package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medsystem/internal/core/cache"
	"medsystem/internal/domain"
	"medsystem/internal/service"
	"medsystem/internal/transport/http/ez"
	"medsystem/pkg/cpf"
)

const cpfExistsTTL = 30 * time.Second

type PatientHandler struct {
	patients *service.PatientService
	cache    *cache.Cache // optional
}

func NewPatientHandler(patients *service.PatientService, c *cache.Cache) *PatientHandler {
	return &PatientHandler{patients: patients, cache: c}
}

func (h *PatientHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g)

	ez.RegisterAction(e, ez.Action[domain.CreatePatientInput, *domain.Patient]{
		Method: http.MethodPost,
		Path:   "/patients",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *domain.CreatePatientInput) (*domain.Patient, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			in.Cpf = cpf.Strip(in.Cpf)
			return h.patients.Create(in, uid)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, []domain.Patient]{
		Method: http.MethodGet,
		Path:   "/patients",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Patient, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			return h.patients.ListByUser(uid)
		},
	})

	type searchQ struct {
		Q string `form:"q"`
	}
	ez.RegisterAction(e, ez.Action[searchQ, []domain.Patient]{
		Method: http.MethodGet,
		Path:   "/patients/search",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *searchQ) ([]domain.Patient, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			return h.patients.Search(in.Q, uid)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, *domain.Patient]{
		Method: http.MethodGet,
		Path:   "/patients/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Patient, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			id, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return nil, ez.BadRequest("id inválido")
			}
			return h.patients.GetByID(id, uid)
		},
	})

	ez.RegisterAction(e, ez.Action[domain.UpdatePatientInput, *domain.Patient]{
		Method: http.MethodPut,
		Path:   "/patients/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *domain.UpdatePatientInput) (*domain.Patient, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			id, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return nil, ez.BadRequest("id inválido")
			}
			return h.patients.Update(id, in, uid)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/patients/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			id, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return nil, ez.BadRequest("id inválido")
			}
			if err := h.patients.Delete(id, uid); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}

// MountPublic exposes the pre-registration CPF check. No auth, cached
// briefly to absorb form-driven polling.
func (h *PatientHandler) MountPublic(g *gin.RouterGroup) {
	e := ez.New(g)

	ez.RegisterAction(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/patients/cpf-exists/:cpf",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			num := cpf.Strip(c.Param("cpf"))
			exists, err := h.cpfExists(c, num)
			if err != nil {
				return nil, err
			}
			return gin.H{"exists": exists}, nil
		},
	})
}

func (h *PatientHandler) cpfExists(c *gin.Context, num string) (bool, error) {
	if h.cache == nil {
		return h.patients.CpfExists(num)
	}
	return cache.GetOrLoadJSON(h.cache, c.Request.Context(), "cpf-exists:"+num, cpfExistsTTL,
		func(context.Context) (bool, error) {
			return h.patients.CpfExists(num)
		})
}
