package routes

import (
	"github.com/labstack/echo/v4"

	"rigtrack/internal/controllers"
)

func runEquipmentTypeRouter(g *echo.Group, ctrl *controllers.EquipmentTypeController) {
	g.GET("/equipment-types", ctrl.GetEquipmentTypes)
	g.POST("/equipment-types", ctrl.CreateEquipmentType)
	g.GET("/equipment-types/:code", ctrl.FindEquipmentType)
	g.PUT("/equipment-types/:code", ctrl.UpdateEquipmentType)
	g.DELETE("/equipment-types/:code", ctrl.DeactivateEquipmentType)
}
