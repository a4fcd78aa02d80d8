package routes

import (
	"github.com/labstack/echo/v4"

	"rigtrack/internal/controllers"
)

// Equipment IDs look like H/001, so the identifier occupies two path
// segments: /:type/:seq.
func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController) {
	g.GET("/equipment", ctrl.GetEquipmentList)
	g.POST("/equipment", ctrl.CreateEquipment)
	g.POST("/equipment/batch", ctrl.CreateBatch)
	g.GET("/equipment/:type/:seq", ctrl.FindEquipment)
	g.PUT("/equipment/:type/:seq", ctrl.UpdateEquipmentInfo)
	g.PUT("/equipment/:type/:seq/service-date", ctrl.UpdateServiceDate)
	g.PUT("/equipment/:type/:seq/status", ctrl.ChangeStatus)
	g.GET("/equipment/:type/:seq/status-history", ctrl.GetStatusChanges)
	g.DELETE("/equipment/:type/:seq", ctrl.DeleteEquipment)
}
