package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agbrain/pkg/apperr"
	"agbrain/pkg/crop/controller"
	"agbrain/pkg/crop/service"
)

type CropCtrl struct{ s service.CropService }

func New(s service.CropService) *CropCtrl { return &CropCtrl{s} }

var _ controller.CropController = (*CropCtrl)(nil)

func (h *CropCtrl) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/count/by-name", h.CountByName)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Patch)
	g.DELETE("/:id", h.Delete)
}

func (h *CropCtrl) Create(c echo.Context) error {
	var in service.CreateCropInput
	if err := c.Bind(&in); err != nil {
		return apperr.InvalidInput("invalid json")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}
	out, err := h.s.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CropCtrl) List(c echo.Context) error {
	out, err := h.s.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Get(c echo.Context) error {
	out, err := h.s.FindOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Patch(c echo.Context) error {
	var in service.CropPatch
	if err := c.Bind(&in); err != nil {
		return apperr.InvalidInput("invalid json")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}
	out, err := h.s.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	if err := h.s.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CropCtrl) CountByName(c echo.Context) error {
	out, err := h.s.CountByName(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
