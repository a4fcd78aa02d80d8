package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"rigtrack/internal/entities"
	"rigtrack/internal/services"
	"rigtrack/pkg/api"
	"rigtrack/pkg/apperrors"
	"rigtrack/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetComplianceReport(ctx echo.Context) error {
	res, err := c.reportService.GetComplianceReport(ctx.Request().Context())
	if err != nil {
		c.logger.Error("compliance report failed", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "OK", res)
}

func (c *ReportController) GetStats(ctx echo.Context) error {
	res, err := c.reportService.GetStats(ctx.Request().Context())
	if err != nil {
		c.logger.Error("stats lookup failed", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "OK", res)
}

func (c *ReportController) ExportEquipment(ctx echo.Context) error {
	format := strings.ToLower(ctx.QueryParam("format"))
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "format must be xlsx or csv", nil,
			map[string]interface{}{"format": format}))
	}

	rows, err := c.reportService.GetEquipmentSummary(ctx.Request().Context())
	if err != nil {
		c.logger.Error("equipment export failed", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	if format == "csv" {
		return c.respondWithCSV(ctx, rows)
	}
	return c.respondWithXLSX(ctx, rows)
}

var exportHeaders = []string{
	"Equipment ID", "Type", "Type Description", "Name", "Serial Number",
	"Date Added", "Service Date", "Status", "Last Inspection", "Last Result",
}

func summaryToStrings(row entities.SummaryRow) []string {
	name, serial, lastResult := "", "", ""
	if row.Name != nil {
		name = *row.Name
	}
	if row.SerialNumber != nil {
		serial = *row.SerialNumber
	}
	if row.LastInspectionResult != nil {
		lastResult = *row.LastInspectionResult
	}
	serviceDate, lastInspection := "", ""
	if v := utils.FormatDatePtr(row.ServiceDate); v != nil {
		serviceDate = *v
	}
	if v := utils.FormatDatePtr(row.LastInspectionDate); v != nil {
		lastInspection = *v
	}

	return []string{
		row.EquipmentID, row.EquipmentType, row.TypeDescription, name, serial,
		utils.FormatDate(row.DateAdded), serviceDate, row.Status, lastInspection, lastResult,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []entities.SummaryRow) error {
	f := excelize.NewFile()
	sheet := "Equipment"
	f.SetSheetName("Sheet1", sheet)

	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	f.SetSheetRow(sheet, "A1", &header)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "J1", style)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := summaryToStrings(row)
		out := make([]interface{}, len(values))
		for j, v := range values {
			out[j] = v
		}
		f.SetSheetRow(sheet, cell, &out)
	}
	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "C", "E", 22)
	f.SetColWidth(sheet, "F", "J", 16)

	fileName := fmt.Sprintf("equipment_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func (c *ReportController) respondWithCSV(ctx echo.Context, rows []entities.SummaryRow) error {
	fileName := fmt.Sprintf("equipment_%s.csv", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(ctx.Response().Writer)
	if err := w.Write(exportHeaders); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(summaryToStrings(row)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
