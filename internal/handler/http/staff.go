package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	staffdomain "github.com/staffhub-hr/hr-backend-go/internal/domain/staff"
	"github.com/staffhub-hr/hr-backend-go/internal/handler/http/response"
	staffservice "github.com/staffhub-hr/hr-backend-go/internal/service/staff"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffService *staffservice.StaffService
}

func NewStaffHandler(staffService *staffservice.StaffService) StaffHandler {
	return &staffHandlerImpl{staffService: staffService}
}

func (h *staffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	staffs, err := h.staffService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, staffs)
}

func (h *staffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staffdomain.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Staff created", created)
}

func (h *staffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req staffdomain.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.staffService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staff updated", updated)
}

func (h *staffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.staffService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staff deleted", nil)
}

func (h *staffHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	var req staffdomain.GetByIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.staffService.GetByID(r.Context(), req.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

func (h *staffHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	suffix := chi.URLParam(r, "last3digits")
	if len(suffix) != 3 {
		response.BadRequest(w, "Search key must be the last 3 digits of a staff id", nil)
		return
	}

	matches, err := h.staffService.SearchByIDSuffix(r.Context(), suffix)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, matches)
}
