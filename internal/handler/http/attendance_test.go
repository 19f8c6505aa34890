package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/staffhub-hr/hr-backend-go/internal/handler/http/response"
	attendanceservice "github.com/staffhub-hr/hr-backend-go/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The punch endpoints reject bad fields before any dependency is
// touched, so a handler over an empty service is enough here.
func punchHandler() AttendanceHandler {
	return NewAttendanceHandler(attendanceservice.NewAttendanceService(nil, nil, nil))
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSaveMissingFieldsReturnsBadRequest(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing id", `{"date":"2026-03-02","inTime":"09:00"}`},
		{"missing date", `{"id":"EMP001","inTime":"09:00"}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/attendance/save", strings.NewReader(c.body))
			rec := httptest.NewRecorder()

			punchHandler().Save(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeErrorResponse(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.NotEmpty(t, resp.Error.Details)
		})
	}
}

func TestGetByIDDateMissingFieldsReturnsBadRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/getByIdDate", strings.NewReader(`{"date":"2026-03-02"}`))
	rec := httptest.NewRecorder()

	punchHandler().GetByIDDate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "id")
}
