package auth

import (
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/validator"
)

const (
	RoleAdmin    = "admin"
	RoleApprover = "approver"
)

type LoginRequest struct {
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Role, []string{RoleAdmin, RoleApprover}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, approver",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
}
