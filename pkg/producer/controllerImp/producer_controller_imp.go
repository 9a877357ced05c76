package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agbrain/pkg/apperr"
	"agbrain/pkg/producer/controller"
	"agbrain/pkg/producer/service"
)

type ProducerCtrl struct{ s service.ProducerService }

func New(s service.ProducerService) *ProducerCtrl { return &ProducerCtrl{s} }

var _ controller.ProducerController = (*ProducerCtrl)(nil)

func (h *ProducerCtrl) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Patch)
	g.DELETE("/:id", h.Delete)
}

func (h *ProducerCtrl) Create(c echo.Context) error {
	var in service.CreateProducerInput
	if err := c.Bind(&in); err != nil {
		return apperr.InvalidInput("invalid json")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}
	p, err := h.s.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProducerCtrl) List(c echo.Context) error {
	out, err := h.s.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProducerCtrl) Get(c echo.Context) error {
	p, err := h.s.FindOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProducerCtrl) Patch(c echo.Context) error {
	var in service.ProducerPatch
	if err := c.Bind(&in); err != nil {
		return apperr.InvalidInput("invalid json")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}
	p, err := h.s.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProducerCtrl) Delete(c echo.Context) error {
	if err := h.s.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
