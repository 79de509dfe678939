package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"

	"github.com/promptgate/promptgate/mocks"
	"github.com/promptgate/promptgate/pkg/dto"
)

func TestCatalogController_Models(t *testing.T) {
	g := NewWithT(t)
	cat := mocks.NewModelCatalog(t)
	cat.EXPECT().GetModels().Return([]dto.Model{
		{Name: "fast", Upstream: "gemini-2.0-flash", Default: true},
		{Name: "pro", Upstream: "gemini-2.5-pro"},
	}).Once()

	cc := NewCatalogController(cat)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/models", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := cc.Models(c)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`[
          {"name": "fast", "upstream": "gemini-2.0-flash", "default": true},
          {"name": "pro", "upstream": "gemini-2.5-pro", "default": false}
        ]`))
}
