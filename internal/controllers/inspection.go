package controllers

import (
	"net/http"

	"rigtrack/internal/dto"
	"rigtrack/internal/services"
	"rigtrack/pkg/api"
	"rigtrack/pkg/apperrors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type InspectionController struct {
	inspectionService services.InspectionServiceInterface
	reportService     services.ReportServiceInterface
	logger            *zap.Logger
}

func NewInspectionController(
	inspectionService services.InspectionServiceInterface,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
) *InspectionController {
	return &InspectionController{
		inspectionService: inspectionService,
		reportService:     reportService,
		logger:            logger,
	}
}

func (c *InspectionController) RecordInspection(ctx echo.Context) error {
	var payload dto.CreateInspectionDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.inspectionService.RecordInspection(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("inspection recording failed",
			zap.String("equipment_id", payload.EquipmentID), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	// A FAIL result red-tags the item, which shifts the status counters.
	if res.RedTagged {
		c.reportService.InvalidateStats(ctx.Request().Context())
	}
	return api.SuccessOne(ctx, http.StatusCreated, "inspection recorded", res)
}

func (c *InspectionController) GetEquipmentInspections(ctx echo.Context) error {
	equipmentID := equipmentIDParam(ctx)
	res, err := c.inspectionService.GetEquipmentInspections(ctx.Request().Context(), equipmentID)
	if err != nil {
		c.logger.Error("inspection history lookup failed", zap.String("equipment_id", equipmentID), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "OK", res)
}
