package controller

import "github.com/labstack/echo/v4"

type FarmController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Patch(c echo.Context) error
	Delete(c echo.Context) error

	Count(c echo.Context) error
	CountByState(c echo.Context) error
	TotalArea(c echo.Context) error
	AreaByType(c echo.Context) error
}
