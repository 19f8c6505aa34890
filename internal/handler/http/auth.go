package http

import (
	"encoding/json"
	"net/http"

	authdomain "github.com/staffhub-hr/hr-backend-go/internal/domain/auth"
	"github.com/staffhub-hr/hr-backend-go/internal/handler/http/response"
	authservice "github.com/staffhub-hr/hr-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService *authservice.AuthService
}

func NewAuthHandler(authService *authservice.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req authdomain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Login successful", result)
}
