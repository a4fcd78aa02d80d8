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

type EquipmentTypeController struct {
	typeService services.EquipmentTypeServiceInterface
	logger      *zap.Logger
}

func NewEquipmentTypeController(typeService services.EquipmentTypeServiceInterface, logger *zap.Logger) *EquipmentTypeController {
	return &EquipmentTypeController{typeService: typeService, logger: logger}
}

func (c *EquipmentTypeController) GetEquipmentTypes(ctx echo.Context) error {
	activeOnly := ctx.QueryParam("include_inactive") != "true"
	res, err := c.typeService.GetEquipmentTypes(ctx.Request().Context(), activeOnly)
	if err != nil {
		c.logger.Error("equipment type list failed", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "OK", res)
}

func (c *EquipmentTypeController) FindEquipmentType(ctx echo.Context) error {
	code := ctx.Param("code")
	res, err := c.typeService.FindEquipmentType(ctx.Request().Context(), code)
	if err != nil {
		c.logger.Error("equipment type lookup failed", zap.String("code", code), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "OK", res)
}

func (c *EquipmentTypeController) CreateEquipmentType(ctx echo.Context) error {
	var payload dto.CreateEquipmentTypeDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.typeService.CreateEquipmentType(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("equipment type creation failed", zap.String("code", payload.TypeCode), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "equipment type created", res)
}

func (c *EquipmentTypeController) UpdateEquipmentType(ctx echo.Context) error {
	code := ctx.Param("code")
	var payload dto.UpdateEquipmentTypeDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.typeService.UpdateEquipmentType(ctx.Request().Context(), code, payload); err != nil {
		c.logger.Error("equipment type update failed", zap.String("code", code), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne[any](ctx, http.StatusOK, "equipment type updated", nil)
}

func (c *EquipmentTypeController) DeactivateEquipmentType(ctx echo.Context) error {
	code := ctx.Param("code")
	if err := c.typeService.DeactivateEquipmentType(ctx.Request().Context(), code); err != nil {
		c.logger.Error("equipment type deactivation failed", zap.String("code", code), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne[any](ctx, http.StatusOK, "equipment type deactivated", nil)
}
