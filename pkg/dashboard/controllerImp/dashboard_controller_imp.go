package controllerImp

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"agbrain/pkg/dashboard/controller"
	"agbrain/pkg/dashboard/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardCtrl struct{ s service.DashboardService }

func New(s service.DashboardService) *DashboardCtrl { return &DashboardCtrl{s} }

var _ controller.DashboardController = (*DashboardCtrl)(nil)

func (h *DashboardCtrl) Register(g *echo.Group) {
	g.GET("", h.Summary)
	g.GET("/export.xlsx", h.Export)
}

func (h *DashboardCtrl) Summary(c echo.Context) error {
	out, err := h.s.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Export buffers the workbook so a failed build still gets a JSON error.
func (h *DashboardCtrl) Export(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.s.ExportXLSX(c.Request().Context(), &buf); err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="dashboard.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
