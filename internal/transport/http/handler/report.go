package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medsystem/internal/domain"
	"medsystem/internal/service"
	"medsystem/internal/transport/http/ez"
)

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g)

	ez.RegisterAction(e, ez.Action[domain.ReportInput, *domain.MedicalReport]{
		Method: http.MethodPost,
		Path:   "/reports",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *domain.ReportInput) (*domain.MedicalReport, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			return h.reports.Create(in, uid)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, []domain.MedicalReport]{
		Method: http.MethodGet,
		Path:   "/reports",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.MedicalReport, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			return h.reports.ListByUser(uid)
		},
	})

	type recentQ struct {
		Count int `form:"count"`
	}
	ez.RegisterAction(e, ez.Action[recentQ, []domain.MedicalReport]{
		Method: http.MethodGet,
		Path:   "/reports/recent",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *recentQ) ([]domain.MedicalReport, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			return h.reports.Recent(uid, in.Count)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, []domain.MedicalReport]{
		Method: http.MethodGet,
		Path:   "/reports/status/:status",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.MedicalReport, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			n, err := strconv.Atoi(c.Param("status"))
			if err != nil {
				return nil, ez.BadRequest("Status inválido")
			}
			return h.reports.ListByStatus(domain.ReportStatus(n), uid)
		},
	})

	type rangeQ struct {
		From string `form:"from" binding:"required"`
		To   string `form:"to" binding:"required"`
	}
	ez.RegisterAction(e, ez.Action[rangeQ, []domain.MedicalReport]{
		Method: http.MethodGet,
		Path:   "/reports/range",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *rangeQ) ([]domain.MedicalReport, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			from, err := parseDate(in.From)
			if err != nil {
				return nil, ez.BadRequest("Período inválido")
			}
			to, err := parseDate(in.To)
			if err != nil {
				return nil, ez.BadRequest("Período inválido")
			}
			return h.reports.ListByDateRange(from, to, uid)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, []domain.MedicalReport]{
		Method: http.MethodGet,
		Path:   "/reports/patient/:patientId",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.MedicalReport, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			pid, err := uuid.Parse(c.Param("patientId"))
			if err != nil {
				return nil, ez.BadRequest("id inválido")
			}
			return h.reports.ListByPatient(pid, uid)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, *domain.MedicalReport]{
		Method: http.MethodGet,
		Path:   "/reports/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.MedicalReport, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			id, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return nil, ez.BadRequest("id inválido")
			}
			return h.reports.GetByID(id, uid)
		},
	})

	ez.RegisterAction(e, ez.Action[domain.ReportInput, *domain.MedicalReport]{
		Method: http.MethodPut,
		Path:   "/reports/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *domain.ReportInput) (*domain.MedicalReport, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			id, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return nil, ez.BadRequest("id inválido")
			}
			return h.reports.Update(id, in, uid)
		},
	})

	type statusReq struct {
		Status int `json:"status" binding:"required"`
	}
	ez.RegisterAction(e, ez.Action[statusReq, *domain.MedicalReport]{
		Method: http.MethodPatch,
		Path:   "/reports/:id/status",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *statusReq) (*domain.MedicalReport, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			id, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return nil, ez.BadRequest("id inválido")
			}
			return h.reports.UpdateStatus(id, domain.ReportStatus(in.Status), uid)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/reports/:id",
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
			if err := h.reports.Delete(id, uid); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/reports/:id/pdf",
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
			if _, err := h.reports.GeneratePDF(id, uid); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}

// parseDate accepts RFC 3339 timestamps or bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
