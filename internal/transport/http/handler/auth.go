package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medsystem/internal/core/auth"
	"medsystem/internal/domain"
	"medsystem/internal/service"
	"medsystem/internal/transport/http/ez"
)

type AuthHandler struct {
	users *service.UserService
	jwter *auth.JWTer
}

func NewAuthHandler(users *service.UserService, jwter *auth.JWTer) *AuthHandler {
	return &AuthHandler{users: users, jwter: jwter}
}

// Priority mounts auth routes before the domain modules.
func (h *AuthHandler) Priority() int { return 10 }

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResp struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *AuthHandler) MountPublic(g *gin.RouterGroup) {
	e := ez.New(g)

	ez.RegisterAction(e, ez.Action[loginReq, *loginResp]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginReq) (*loginResp, error) {
			u, err := h.users.ValidateCredentials(in.Email, in.Password)
			if err != nil {
				// do not leak whether the account exists
				return nil, ez.Unauthorized("credenciais inválidas")
			}
			token, err := h.jwter.Issue(u.ID.String())
			if err != nil {
				return nil, ez.Internal("erro interno do servidor", err)
			}
			return &loginResp{Token: token, User: u}, nil
		},
	})
}

func (h *AuthHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g)

	ez.RegisterAction(e, ez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			uid, err := currentUser(c)
			if err != nil {
				return nil, err
			}
			u, err := h.users.GetByID(uid)
			if err != nil {
				return nil, err
			}
			if u == nil {
				return nil, domain.ErrNotFound
			}
			return u, nil
		},
	})
}
