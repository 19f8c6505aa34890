package http

import (
	"encoding/json"
	"net/http"

	leaverequestdomain "github.com/staffhub-hr/hr-backend-go/internal/domain/leaverequest"
	"github.com/staffhub-hr/hr-backend-go/internal/handler/http/response"
	"github.com/staffhub-hr/hr-backend-go/internal/service/export"
	leaverequestservice "github.com/staffhub-hr/hr-backend-go/internal/service/leaverequest"
)

type LeaveRequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListApproved(w http.ResponseWriter, r *http.Request)
	ListRejected(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type leaveRequestHandlerImpl struct {
	requestService *leaverequestservice.LeaveRequestService
}

func NewLeaveRequestHandler(requestService *leaverequestservice.LeaveRequestService) LeaveRequestHandler {
	return &leaveRequestHandlerImpl{requestService: requestService}
}

func (h *leaveRequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leaverequestdomain.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", created)
}

func (h *leaveRequestHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, leaverequestdomain.StatusPending)
}

func (h *leaveRequestHandlerImpl) ListApproved(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, leaverequestdomain.StatusApproved)
}

func (h *leaveRequestHandlerImpl) ListRejected(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, leaverequestdomain.StatusRejected)
}

func (h *leaveRequestHandlerImpl) listByStatus(w http.ResponseWriter, r *http.Request, status leaverequestdomain.DateStatus) {
	requests, err := h.requestService.ListByStatus(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

func (h *leaveRequestHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leaverequestdomain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.requestService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave date status updated", updated)
}

// Export streams leave requests of one status as CSV or XLSX.
func (h *leaveRequestHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	status := leaverequestdomain.DateStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = leaverequestdomain.StatusPending
	}
	switch status {
	case leaverequestdomain.StatusPending, leaverequestdomain.StatusApproved, leaverequestdomain.StatusRejected:
	default:
		response.BadRequest(w, "status must be one of: pending, approved, rejected", nil)
		return
	}

	requests, err := h.requestService.ListByStatus(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := export.LeaveRequests(requests, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := "leave-requests-" + string(status) + "." + string(format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
