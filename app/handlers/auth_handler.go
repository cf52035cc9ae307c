package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"

	"github.com/grabpoint/api/app/services"
	"github.com/grabpoint/api/app/utils/apperrors"
	"github.com/grabpoint/api/app/utils/respond"
)

type AuthHandler struct {
	authSvc  *services.AuthService
	render   *render.Render
	validate *validator.Validate
}

func NewAuthHandler(authSvc *services.AuthService, render *render.Render, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{authSvc, render, validate}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Err(h.render, w, apperrors.Validationf("invalid request body"))
		return
	}
	if err := h.validate.Struct(&in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			respond.ValidationErrs(h.render, w, verrs)
			return
		}
		respond.Err(h.render, w, apperrors.Validationf("invalid request body"))
		return
	}

	user, err := h.authSvc.Register(r.Context(), in)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Err(h.render, w, apperrors.Validationf("invalid request body"))
		return
	}
	if in.Username == "" || in.Password == "" {
		respond.Err(h.render, w, apperrors.Validationf("username and password are required"))
		return
	}

	token, user, err := h.authSvc.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]interface{}{
		"access": token,
		"user":   user,
	})
}

// Logout is a stateless acknowledgment; clients simply discard the token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	respond.JSON(h.render, w, http.StatusOK, map[string]string{"message": "logged out successfully"})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Err(h.render, w, apperrors.Validationf("invalid request body"))
		return
	}
	if in.Username == "" || in.Email == "" {
		respond.Err(h.render, w, apperrors.Validationf("username and email are required"))
		return
	}

	if err := h.authSvc.ForgotPassword(r.Context(), in.Username, in.Email); err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]string{
		"message": "if the account exists, a reset code has been emailed",
	})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username    string `json:"username"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Err(h.render, w, apperrors.Validationf("invalid request body"))
		return
	}
	if in.Username == "" || in.Code == "" || in.NewPassword == "" {
		respond.Err(h.render, w, apperrors.Validationf("username, code and new_password are required"))
		return
	}

	if err := h.authSvc.ResetPassword(r.Context(), in.Username, in.Code, in.NewPassword); err != nil {
		respond.Err(h.render, w, err)
		return
	}

	respond.JSON(h.render, w, http.StatusOK, map[string]string{"message": "password updated"})
}
