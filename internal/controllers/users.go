package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/promptgate/promptgate/internal/router"
	"github.com/promptgate/promptgate/internal/services/users"
	"github.com/promptgate/promptgate/pkg/dto"
	"github.com/promptgate/promptgate/pkg/models"
)

type UsersController struct {
	srv users.UserService
}

func NewUsersController(srv users.UserService) *UsersController {
	return &UsersController{srv: srv}
}

func (u *UsersController) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(errors.Wrap(err, "malformed register request"))
	}
	n, err := u.srv.Register(c.Request().Context(), req.Users)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &dto.RegisterResponse{Registered: n})
}

func (u *UsersController) GetUser(c echo.Context) error {
	info, err := u.srv.Get(c.Request().Context(), c.Param(router.EmailParam))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

func (u *UsersController) DeleteUser(c echo.Context) error {
	deleted, err := u.srv.Delete(c.Request().Context(), c.Param(router.EmailParam))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &dto.DeleteResponse{Deleted: deleted})
}
