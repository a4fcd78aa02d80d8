package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"rigtrack/internal/dto"
	"rigtrack/internal/services"
	"rigtrack/pkg/api"
	"rigtrack/pkg/apperrors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	reportService    services.ReportServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		reportService:    reportService,
		logger:           logger,
	}
}

// equipmentIDParam reassembles the TYPE/NNN identifier from two path
// segments, since the slash inside the ID cannot live in one param.
func equipmentIDParam(ctx echo.Context) string {
	return strings.ToUpper(strings.TrimSpace(ctx.Param("type"))) + "/" + strings.TrimSpace(ctx.Param("seq"))
}

func parseListFilter(ctx echo.Context) dto.EquipmentListFilter {
	filter := dto.EquipmentListFilter{
		Status: strings.TrimSpace(ctx.QueryParam("status")),
		Type:   strings.TrimSpace(ctx.QueryParam("type")),
		Search: strings.TrimSpace(ctx.QueryParam("search")),
		Limit:  defaultListLimit,
	}
	if v, err := strconv.ParseUint(ctx.QueryParam("limit"), 10, 64); err == nil && v > 0 && v <= maxListLimit {
		filter.Limit = v
	}
	if v, err := strconv.ParseUint(ctx.QueryParam("offset"), 10, 64); err == nil && v > 0 {
		filter.Offset = v
	}
	return filter
}

func (c *EquipmentController) GetEquipmentList(ctx echo.Context) error {
	filter := parseListFilter(ctx)
	list, total, err := c.equipmentService.GetEquipmentList(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("equipment list failed", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList(ctx, "OK", list, total, int(filter.Limit), int(filter.Offset))
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	equipmentID := equipmentIDParam(ctx)
	res, err := c.equipmentService.FindEquipment(ctx.Request().Context(), equipmentID)
	if err != nil {
		c.logger.Error("equipment lookup failed", zap.String("equipment_id", equipmentID), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "OK", res)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("equipment creation failed", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	c.reportService.InvalidateStats(ctx.Request().Context())
	return api.SuccessOne(ctx, http.StatusCreated, "equipment created", res)
}

func (c *EquipmentController) CreateBatch(ctx echo.Context) error {
	var payload dto.CreateBatchDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.equipmentService.CreateBatch(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("batch creation failed", zap.String("type", payload.EquipmentType), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	c.reportService.InvalidateStats(ctx.Request().Context())
	return api.SuccessOne(ctx, http.StatusCreated, "batch created", dto.BatchResultDTO{Created: res})
}

func (c *EquipmentController) ChangeStatus(ctx echo.Context) error {
	equipmentID := equipmentIDParam(ctx)
	var payload dto.ChangeStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.equipmentService.ChangeStatus(ctx.Request().Context(), equipmentID, payload)
	if err != nil {
		c.logger.Error("status change failed", zap.String("equipment_id", equipmentID), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	c.reportService.InvalidateStats(ctx.Request().Context())
	return api.SuccessOne(ctx, http.StatusOK, "status changed", res)
}

func (c *EquipmentController) UpdateEquipmentInfo(ctx echo.Context) error {
	equipmentID := equipmentIDParam(ctx)
	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.equipmentService.UpdateEquipmentInfo(ctx.Request().Context(), equipmentID, payload); err != nil {
		c.logger.Error("equipment update failed", zap.String("equipment_id", equipmentID), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne[any](ctx, http.StatusOK, "equipment updated", nil)
}

func (c *EquipmentController) UpdateServiceDate(ctx echo.Context) error {
	equipmentID := equipmentIDParam(ctx)
	var payload dto.UpdateServiceDateDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.equipmentService.UpdateServiceDate(ctx.Request().Context(), equipmentID, payload); err != nil {
		c.logger.Error("service date update failed", zap.String("equipment_id", equipmentID), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne[any](ctx, http.StatusOK, "service date updated", nil)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	equipmentID := equipmentIDParam(ctx)
	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), equipmentID); err != nil {
		c.logger.Error("equipment deletion failed", zap.String("equipment_id", equipmentID), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	c.reportService.InvalidateStats(ctx.Request().Context())
	return api.SuccessOne[any](ctx, http.StatusOK, "equipment deleted", nil)
}

func (c *EquipmentController) GetStatusChanges(ctx echo.Context) error {
	equipmentID := equipmentIDParam(ctx)
	res, err := c.equipmentService.GetStatusChanges(ctx.Request().Context(), equipmentID)
	if err != nil {
		c.logger.Error("status history lookup failed", zap.String("equipment_id", equipmentID), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "OK", res)
}
