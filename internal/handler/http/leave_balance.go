package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	leavebalancedomain "github.com/staffhub-hr/hr-backend-go/internal/domain/leavebalance"
	"github.com/staffhub-hr/hr-backend-go/internal/handler/http/response"
	leavebalanceservice "github.com/staffhub-hr/hr-backend-go/internal/service/leavebalance"
)

type LeaveBalanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	ResetMonthly(w http.ResponseWriter, r *http.Request)
}

type leaveBalanceHandlerImpl struct {
	balanceService *leavebalanceservice.LeaveBalanceService
}

func NewLeaveBalanceHandler(balanceService *leavebalanceservice.LeaveBalanceService) LeaveBalanceHandler {
	return &leaveBalanceHandlerImpl{balanceService: balanceService}
}

func (h *leaveBalanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	balances, err := h.balanceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, balances)
}

func (h *leaveBalanceHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var req leavebalancedomain.AddLeaveBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.balanceService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave balance created", created)
}

func (h *leaveBalanceHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	var req leavebalancedomain.EditLeaveBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	updated, err := h.balanceService.Edit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave balance updated", updated)
}

func (h *leaveBalanceHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.balanceService.Remove(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave balance removed", nil)
}

func (h *leaveBalanceHandlerImpl) ResetMonthly(w http.ResponseWriter, r *http.Request) {
	updated, err := h.balanceService.ResetMonthly(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Monthly leave reset applied", map[string]int64{
		"juniors_updated": updated,
	})
}
