package routes

import (
	"github.com/labstack/echo/v4"

	"rigtrack/internal/controllers"
)

func runInspectionRouter(g *echo.Group, ctrl *controllers.InspectionController) {
	g.POST("/inspections", ctrl.RecordInspection)
	g.GET("/equipment/:type/:seq/inspections", ctrl.GetEquipmentInspections)
}
