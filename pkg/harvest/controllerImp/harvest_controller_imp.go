package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agbrain/pkg/apperr"
	"agbrain/pkg/harvest/controller"
	"agbrain/pkg/harvest/service"
)

type HarvestCtrl struct{ s service.HarvestService }

func New(s service.HarvestService) *HarvestCtrl { return &HarvestCtrl{s} }

var _ controller.HarvestController = (*HarvestCtrl)(nil)

func (h *HarvestCtrl) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Patch)
	g.DELETE("/:id", h.Delete)
}

func (h *HarvestCtrl) Create(c echo.Context) error {
	var in service.CreateHarvestInput
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

func (h *HarvestCtrl) List(c echo.Context) error {
	out, err := h.s.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HarvestCtrl) Get(c echo.Context) error {
	out, err := h.s.FindOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HarvestCtrl) Patch(c echo.Context) error {
	var in service.HarvestPatch
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

func (h *HarvestCtrl) Delete(c echo.Context) error {
	if err := h.s.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
