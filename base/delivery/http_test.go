package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/mintora/goapi/domain"
)

func TestMakeJsonRespErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"validation", domain.ErrWithReason(domain.ErrValidation, "bad amount"), http.StatusBadRequest},
		{"permission", domain.ErrWithReason(domain.ErrPermission, "not the owner"), http.StatusForbidden},
		{"conflict", domain.ErrWithReason(domain.ErrConflict, "auction ended"), http.StatusConflict},
		{"concurrency", domain.ErrWithReason(domain.ErrConcurrency, "lost race"), http.StatusConflict},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			ec := e.NewContext(req, rec)

			// handlers pass 500 and let the error kind decide
			assert.NoError(t, MakeJsonResp(ec, http.StatusInternalServerError, c.err))
			assert.Equal(t, c.wantStatus, rec.Code)
		})
	}
}

func TestMakeJsonRespEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ec := e.NewContext(req, rec)

	assert.NoError(t, MakeJsonResp(ec, http.StatusOK, "ok"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"ok","status":"success"}`, rec.Body.String())
}
