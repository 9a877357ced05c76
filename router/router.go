package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"agbrain/pkg/logger"
	"agbrain/pkg/middleware"

	cropCtrlImp "agbrain/pkg/crop/controllerImp"
	cropRepoImp "agbrain/pkg/crop/repositoryImp"
	cropSvcImp "agbrain/pkg/crop/serviceImp"

	dashCtrlImp "agbrain/pkg/dashboard/controllerImp"
	dashSvcImp "agbrain/pkg/dashboard/serviceImp"

	farmCtrlImp "agbrain/pkg/farm/controllerImp"
	farmRepoImp "agbrain/pkg/farm/repositoryImp"
	farmSvcImp "agbrain/pkg/farm/serviceImp"

	harvestCtrlImp "agbrain/pkg/harvest/controllerImp"
	harvestRepoImp "agbrain/pkg/harvest/repositoryImp"
	harvestSvcImp "agbrain/pkg/harvest/serviceImp"

	healthCtrlImp "agbrain/pkg/health/controllerImp"

	producerCtrlImp "agbrain/pkg/producer/controllerImp"
	producerRepoImp "agbrain/pkg/producer/repositoryImp"
	producerSvcImp "agbrain/pkg/producer/serviceImp"
)

type registrar interface{ Register(g *echo.Group) }

func New(
	e *echo.Echo,
	producerCtrl registrar,
	farmCtrl registrar,
	harvestCtrl registrar,
	cropCtrl registrar,
	dashCtrl registrar,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	producerCtrl.Register(e.Group("/producers"))
	farmCtrl.Register(e.Group("/farms"))
	harvestCtrl.Register(e.Group("/harvests"))
	cropCtrl.Register(e.Group("/crops"))
	dashCtrl.Register(e.Group("/dashboard"))
	return e
}

// Setup builds the whole HTTP stack on top of an already migrated db.
func Setup(db *gorm.DB, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = middleware.NewValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler(log)
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLog(log))

	farmSvc := farmSvcImp.NewFarmService(farmRepoImp.New(db), log)
	cropSvc := cropSvcImp.NewCropService(cropRepoImp.New(db))

	return New(
		e,
		producerCtrlImp.New(producerSvcImp.NewProducerService(producerRepoImp.New(db), log)),
		farmCtrlImp.New(farmSvc),
		harvestCtrlImp.New(harvestSvcImp.NewHarvestService(harvestRepoImp.New(db))),
		cropCtrlImp.New(cropSvc),
		dashCtrlImp.New(dashSvcImp.NewDashboardService(farmSvc, cropSvc, log)),
		healthCtrlImp.NewHealthCtrl(db),
	)
}
