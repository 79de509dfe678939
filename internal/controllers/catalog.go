package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/promptgate/promptgate/pkg/catalog"
)

type CatalogController struct {
	cat catalog.ModelCatalog
}

func NewCatalogController(cat catalog.ModelCatalog) *CatalogController {
	return &CatalogController{cat: cat}
}

func (cc *CatalogController) Models(c echo.Context) error {
	return c.JSON(http.StatusOK, cc.cat.GetModels())
}
