package routes

import (
	"github.com/labstack/echo/v4"

	"rigtrack/internal/controllers"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reports/compliance", ctrl.GetComplianceReport)
	g.GET("/reports/stats", ctrl.GetStats)
	g.GET("/reports/export", ctrl.ExportEquipment)
}
