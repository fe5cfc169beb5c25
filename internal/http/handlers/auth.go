package handlers

import (
	"net/http"
	"time"

	"skillbridge/internal/app"
	"skillbridge/internal/common"
	"skillbridge/internal/http/middleware"
	"skillbridge/internal/http/response"
)

type AuthHandler struct {
	auth    *app.AuthService
	limiter middleware.Limiter
}

func NewAuthHandler(auth *app.AuthService, limiter middleware.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

type registerRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	DOB         string `json:"dob"`
	Gender      string `json:"gender"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Mobile      string `json:"mobile"`
	JobPosition string `json:"jobPosition"`
	Company     string `json:"company"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) RegisterLearner(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, app.KindLearner)
}

func (h *AuthHandler) RegisterEmployer(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, app.KindEmployer)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, kind app.Kind) {
	if !h.allow(w, r, "register") {
		return
	}
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		response.Error(w, err)
		return
	}
	err := h.auth.Register(r.Context(), kind, app.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DOB:         req.DOB,
		Gender:      req.Gender,
		Email:       req.Email,
		Password:    req.Password,
		Mobile:      req.Mobile,
		JobPosition: req.JobPosition,
		Company:     req.Company,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, messageResponse{Message: "Registered successfully"})
}

func (h *AuthHandler) LoginLearner(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, app.KindLearner)
}

func (h *AuthHandler) LoginEmployer(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, app.KindEmployer)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, kind app.Kind) {
	if !h.allow(w, r, "login") {
		return
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		response.Error(w, err)
		return
	}
	credential, err := h.auth.Login(r.Context(), kind, req.Email, req.Password)
	if err != nil {
		// An unknown email reads the same as a wrong password from outside.
		if common.Is(err, common.CodeNotFound) {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid email or password", nil))
			return
		}
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, credential)
}

func (h *AuthHandler) allow(w http.ResponseWriter, r *http.Request, action string) bool {
	if h.limiter == nil {
		return true
	}
	key := "auth:" + action + ":ip:" + middleware.ClientIP(r)
	if !h.limiter.Allow(key, 5, time.Minute) {
		response.Error(w, common.NewError(common.CodeRateLimited, "too many attempts", nil))
		return false
	}
	return true
}
