package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agbrain/pkg/apperr"
	"agbrain/pkg/farm/controller"
	"agbrain/pkg/farm/service"
)

type FarmCtrl struct{ s service.FarmService }

func New(s service.FarmService) *FarmCtrl { return &FarmCtrl{s} }

var _ controller.FarmController = (*FarmCtrl)(nil)

// Register mounts the farm routes. Static dashboard paths win over /:id in
// echo's router, so their order here does not matter.
func (h *FarmCtrl) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/count", h.Count)
	g.GET("/count/by-state", h.CountByState)
	g.GET("/areas", h.TotalArea)
	g.GET("/areas/by-type", h.AreaByType)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Patch)
	g.DELETE("/:id", h.Delete)
}

func (h *FarmCtrl) Create(c echo.Context) error {
	var in service.CreateFarmInput
	if err := c.Bind(&in); err != nil {
		return apperr.InvalidInput("invalid json")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}
	f, err := h.s.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmCtrl) List(c echo.Context) error {
	out, err := h.s.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) Get(c echo.Context) error {
	f, err := h.s.FindOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Patch(c echo.Context) error {
	var in service.FarmPatch
	if err := c.Bind(&in); err != nil {
		return apperr.InvalidInput("invalid json")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}
	f, err := h.s.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Delete(c echo.Context) error {
	if err := h.s.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *FarmCtrl) Count(c echo.Context) error {
	out, err := h.s.TotalCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) CountByState(c echo.Context) error {
	out, err := h.s.CountByState(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) TotalArea(c echo.Context) error {
	out, err := h.s.TotalArea(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) AreaByType(c echo.Context) error {
	out, err := h.s.AreaByType(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
