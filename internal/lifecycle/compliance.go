package lifecycle

import "time"

const (
	// RedTagMaxDays is how long red-tagged equipment may sit before
	// destruction is overdue.
	RedTagMaxDays = 30

	DefaultInspectionIntervalMonths = 6
)

// Priority tiers used by the compliance reports.
type Tier string

const (
	TierCritical Tier = "CRITICAL"
	TierHigh     Tier = "HIGH"
	TierMedium   Tier = "MEDIUM"
	TierLow      Tier = "LOW"
	TierExpired  Tier = "EXPIRED"
)

// Date truncates t to a calendar date in UTC. All compliance arithmetic
// works on dates, not instants.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns to - from in whole days. Negative when to is in
// the past relative to from.
func DaysBetween(from, to time.Time) int {
	return int(Date(to).Sub(Date(from)).Hours() / 24)
}

// NextInspectionDue computes the next due date from the last inspection,
// adding whole calendar months rather than a fixed day count. When the
// equipment has never been inspected the due date is the date it was
// added to inventory, which has already elapsed.
func NextInspectionDue(lastInspection *time.Time, dateAdded time.Time, intervalMonths int) time.Time {
	if intervalMonths <= 0 {
		intervalMonths = DefaultInspectionIntervalMonths
	}
	if lastInspection == nil {
		return Date(dateAdded)
	}
	return Date(*lastInspection).AddDate(0, intervalMonths, 0)
}

// InspectionOverdue reports whether today is strictly past the next due
// date. Informational only: overdue equipment is never blocked from use.
func InspectionOverdue(lastInspection *time.Time, dateAdded time.Time, intervalMonths int, today time.Time) bool {
	return Date(today).After(NextInspectionDue(lastInspection, dateAdded, intervalMonths))
}

// DestroyByDate is the deadline for destroying red-tagged equipment.
func DestroyByDate(redTagDate time.Time) time.Time {
	return Date(redTagDate).AddDate(0, 0, RedTagMaxDays)
}

// RedTagDaysRemaining counts days until the destroy-by deadline. Goes
// negative once destruction is overdue.
func RedTagDaysRemaining(redTagDate, today time.Time) int {
	return DaysBetween(today, DestroyByDate(redTagDate))
}

// ExpiryDate computes the fixed-lifespan expiry of soft goods from the
// date the item entered service. Returns nil for hardware or when the
// service date is unknown; hardware has no fixed expiration.
func ExpiryDate(serviceDate *time.Time, isSoftGoods bool, lifespanYears *int) *time.Time {
	if !isSoftGoods || serviceDate == nil || lifespanYears == nil || *lifespanYears <= 0 {
		return nil
	}
	d := Date(*serviceDate).AddDate(*lifespanYears, 0, 0)
	return &d
}

// RedTagTier tiers red-tagged equipment by days remaining until the
// destroy-by deadline.
func RedTagTier(daysRemaining int) Tier {
	switch {
	case daysRemaining <= 0:
		return TierCritical
	case daysRemaining <= 7:
		return TierHigh
	case daysRemaining <= 14:
		return TierMedium
	default:
		return TierLow
	}
}

// ExpiryTier tiers expiring soft goods by days remaining until expiry.
func ExpiryTier(daysRemaining int) Tier {
	switch {
	case daysRemaining <= 0:
		return TierExpired
	case daysRemaining <= 90:
		return TierHigh
	case daysRemaining <= 180:
		return TierMedium
	default:
		return TierLow
	}
}
