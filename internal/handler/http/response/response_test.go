package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/ledgerline/backoffice-backend-go/internal/domain/payroll"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "emp-1"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestSuccessWithMetaComputesTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		meta       Meta
		totalPages int
	}{
		{"exact fit", Meta{Page: 1, Limit: 10, TotalItems: 20}, 2},
		{"partial last page", Meta{Page: 1, Limit: 10, TotalItems: 21}, 3},
		{"empty result", Meta{Page: 1, Limit: 10, TotalItems: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SuccessWithMeta(rec, []string{}, &tt.meta)

			resp := decode(t, rec)
			require.NotNil(t, resp.Meta)
			assert.Equal(t, tt.totalPages, resp.Meta.TotalPages)
		})
	}
}

func TestErrorEnvelopes(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "Employee not found")

	assert.Equal(t, 404, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "Employee not found", resp.Error.Message)

	rec = httptest.NewRecorder()
	BadRequest(rec, "Invalid request body", map[string]string{"body": "malformed JSON"})

	assert.Equal(t, 400, rec.Code)
	resp = decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "malformed JSON", resp.Error.Details["body"])
}

func TestHandleErrorMapsDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", payroll.ErrBatchNotFound, 404},
		{"terminal conflict", payroll.ErrBatchTerminal, 409},
		{"lock conflict", payroll.ErrBatchLocked, 409},
		{"unknown", assert.AnError, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandleErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "batch_name", Message: "is required"},
	})

	assert.Equal(t, 422, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "is required", resp.Error.Details["batch_name"])
}
