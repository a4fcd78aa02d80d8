package services

import (
	"context"
	"encoding/json"
	"time"

	"rigtrack/internal/dto"
	"rigtrack/internal/entities"
	"rigtrack/internal/lifecycle"
	"rigtrack/internal/repositories"
	"rigtrack/pkg/utils"

	"go.uber.org/zap"
)

const statsCacheKey = "rigtrack:equipment_stats"

type ReportServiceInterface interface {
	GetComplianceReport(ctx context.Context) (*dto.ComplianceReportDTO, error)
	GetStats(ctx context.Context) (*dto.StatsDTO, error)
	GetEquipmentSummary(ctx context.Context) ([]entities.SummaryRow, error)
	InvalidateStats(ctx context.Context)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	cache      repositories.CacheRepositoryInterface
	statsTTL   time.Duration
	logger     *zap.Logger
}

func NewReportService(
	reportRepo repositories.ReportRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	statsTTL time.Duration,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, cache: cache, statsTTL: statsTTL, logger: logger}
}

func (s *ReportService) GetComplianceReport(ctx context.Context) (*dto.ComplianceReportDTO, error) {
	today := lifecycle.Date(time.Now())

	overdueCandidates, err := s.reportRepo.GetOverdueCandidates(ctx)
	if err != nil {
		return nil, err
	}
	redTagged, err := s.reportRepo.GetRedTagged(ctx)
	if err != nil {
		return nil, err
	}
	expiring, err := s.reportRepo.GetExpiringCandidates(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ComplianceReportDTO{
		OverdueInspections: classifyOverdue(overdueCandidates, today),
		RedTagged:          classifyRedTagged(redTagged, today),
		Expiring:           classifyExpiring(expiring, today),
		Stats:              *stats,
	}, nil
}

// classifyOverdue filters the ACTIVE equipment candidates down to those
// whose next inspection due date has passed. Never-inspected equipment
// is due from its inventory date and so always overdue.
func classifyOverdue(items []entities.OverdueInspectionItem, today time.Time) []dto.OverdueInspectionDTO {
	result := make([]dto.OverdueInspectionDTO, 0, len(items))
	for _, it := range items {
		due := lifecycle.NextInspectionDue(it.LastInspectionDate, it.DateAdded, it.InspectionIntervalMonths)
		if !today.After(due) {
			continue
		}
		result = append(result, dto.OverdueInspectionDTO{
			EquipmentID:        it.EquipmentID,
			EquipmentType:      it.EquipmentType,
			TypeDescription:    it.TypeDescription,
			LastInspectionDate: utils.FormatDatePtr(it.LastInspectionDate),
			NextDueDate:        utils.FormatDate(due),
			DaysOverdue:        lifecycle.DaysBetween(due, today),
		})
	}
	return result
}

func classifyRedTagged(items []entities.RedTaggedItem, today time.Time) []dto.RedTaggedDTO {
	result := make([]dto.RedTaggedDTO, 0, len(items))
	for _, it := range items {
		days := lifecycle.RedTagDaysRemaining(it.RedTagDate, today)
		result = append(result, dto.RedTaggedDTO{
			EquipmentID:     it.EquipmentID,
			EquipmentType:   it.EquipmentType,
			TypeDescription: it.TypeDescription,
			RedTagDate:      utils.FormatDate(it.RedTagDate),
			DestroyByDate:   utils.FormatDate(lifecycle.DestroyByDate(it.RedTagDate)),
			DaysRemaining:   days,
			Priority:        string(lifecycle.RedTagTier(days)),
		})
	}
	return result
}

func classifyExpiring(items []entities.ExpiringItem, today time.Time) []dto.ExpiringDTO {
	result := make([]dto.ExpiringDTO, 0, len(items))
	for _, it := range items {
		expiry := lifecycle.ExpiryDate(&it.ServiceDate, true, &it.LifespanYears)
		if expiry == nil {
			continue
		}
		days := lifecycle.DaysBetween(today, *expiry)
		result = append(result, dto.ExpiringDTO{
			EquipmentID:     it.EquipmentID,
			EquipmentType:   it.EquipmentType,
			TypeDescription: it.TypeDescription,
			ServiceDate:     utils.FormatDate(it.ServiceDate),
			ExpiryDate:      utils.FormatDate(*expiry),
			DaysRemaining:   days,
			Priority:        string(lifecycle.ExpiryTier(days)),
		})
	}
	return result
}

// GetStats serves the dashboard counters from Redis when fresh. Cache
// failures fall through to the database.
func (s *ReportService) GetStats(ctx context.Context) (*dto.StatsDTO, error) {
	if cached, err := s.cache.Get(ctx, statsCacheKey); err == nil && cached != "" {
		var stats dto.StatsDTO
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	raw, err := s.reportRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	stats := &dto.StatsDTO{
		Total:     raw.Total,
		Active:    raw.Active,
		RedTagged: raw.RedTagged,
		Destroyed: raw.Destroyed,
	}

	if encoded, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, statsCacheKey, string(encoded), s.statsTTL); err != nil {
			s.logger.Warn("stats cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

// InvalidateStats drops the cached counters after a write that changed
// equipment counts or statuses.
func (s *ReportService) InvalidateStats(ctx context.Context) {
	if err := s.cache.Del(ctx, statsCacheKey); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}

func (s *ReportService) GetEquipmentSummary(ctx context.Context) ([]entities.SummaryRow, error) {
	return s.reportRepo.GetEquipmentSummary(ctx)
}
