package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"

	"github.com/promptgate/promptgate/pkg/models"
)

func TestErrorHandler_HTTPError(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := &echo.HTTPError{
		Code:     http.StatusNotImplemented,
		Message:  "test error",
		Internal: nil,
	}
	ErrorHandler(err, c)

	g.Expect(rec).To(HaveHTTPStatus(http.StatusNotImplemented))
	g.Expect(rec.Body.String()).To(MatchJSON(`{"message": "test error"}`))
}

func TestErrorHandler_ErrorMessage(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := models.NewRateLimitedError(models.ReasonQuotaExhausted, errors.New("request limit reached"))
	ErrorHandler(err, c)

	g.Expect(rec).To(HaveHTTPStatus(http.StatusTooManyRequests))
	g.Expect(rec.Body.String()).To(MatchJSON(`{
              "reason": "quota_exhausted",
              "message": "request limit reached"
            }`))
}

func TestErrorHandler_Cancelled(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := models.NewCancelledError(errors.New("context canceled"))
	ErrorHandler(err, c)

	g.Expect(rec).To(HaveHTTPStatus(models.StatusRequestCancelled))
	g.Expect(rec.Body.String()).To(BeEmpty())
}

func TestErrorHandler_Default(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := errors.New("test error")
	ErrorHandler(err, c)

	g.Expect(rec).To(HaveHTTPStatus(http.StatusInternalServerError))
	g.Expect(rec.Body.String()).To(MatchJSON(`{
              "reason": "internal_error",
              "message": "test error"
            }`))
}

func TestErrorHandler_Committed(t *testing.T) {
	g := NewWithT(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/whatever", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	rec.WriteHeader(http.StatusNotFound)
	c.Response().Committed = true
	err := errors.New("test error")
	ErrorHandler(err, c)

	g.Expect(rec).To(HaveHTTPStatus(http.StatusNotFound))
	g.Expect(rec.Body.String()).To(BeEmpty())
}
