package pricing

import (
	"fmt"
	"math"
	"time"

	"rentdesk-backend/internal/domain"
)

// Average-length constants used by the estimation formulas. Calendar-exact
// arithmetic lives in AddCalendarPeriod and must not be folded into these.
const (
	avgDaysPerMonth = 30.44
	avgDaysPerYear  = 365.25
)

// Duration is the billed duration of a rental span, expressed in units of
// the chosen period. Units is fractional for monthly and yearly tiers.
type Duration struct {
	Period domain.RentalPeriod
	Units  float64
}

// EstimateDuration derives the billed duration from the span between two
// instants. Sub-unit spans bill a minimum of one unit; a span of zero is
// tolerated and treated the same way. Monthly and yearly durations use
// fixed average-day constants, not calendar-field arithmetic.
func EstimateDuration(period domain.RentalPeriod, start, end time.Time) (Duration, error) {
	if !domain.ValidPeriod(period) {
		return Duration{}, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, period)
	}
	if end.Before(start) {
		return Duration{}, fmt.Errorf("%w: %s before %s", domain.ErrInvalidRange,
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	span := end.Sub(start)
	hours := span.Hours()
	days := math.Ceil(hours / 24)
	if days < 1 {
		days = 1
	}

	var units float64
	switch period {
	case domain.PeriodHourly:
		units = math.Max(1, math.Ceil(hours))
	case domain.PeriodDaily:
		units = days
	case domain.PeriodWeekly:
		units = math.Ceil(days / 7)
	case domain.PeriodMonthly:
		units = math.Max(1, hours/24/avgDaysPerMonth)
	case domain.PeriodYearly:
		units = math.Max(1, hours/24/avgDaysPerYear)
	}
	return Duration{Period: period, Units: units}, nil
}

// Calculate prices a rental line: rate for the chosen tier times the billed
// duration, times quantity. The result is rounded to the nearest cent and
// is never less than one billing unit's worth of rent. Pure function.
func Calculate(rates domain.RentalRates, period domain.RentalPeriod, quantity int32, start, end time.Time) (int64, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("%w: quantity %d", domain.ErrInvalidAmount, quantity)
	}
	d, err := EstimateDuration(period, start, end)
	if err != nil {
		return 0, err
	}

	var rate int64
	switch period {
	case domain.PeriodHourly:
		rate = rates.HourlyCents
	case domain.PeriodDaily:
		rate = rates.DailyCents
	case domain.PeriodWeekly:
		rate = rates.WeeklyCents
	case domain.PeriodMonthly:
		rate = rates.MonthlyCents
	case domain.PeriodYearly:
		rate = rates.YearlyCents
	}

	perPeriod := int64(math.Round(float64(rate) * d.Units))
	return perPeriod * int64(quantity), nil
}

// AddCalendarPeriod advances a date by n whole billing periods using
// calendar-field arithmetic. This is the return-date computation: adding a
// month to Jan 31 lands on the civil calendar's answer, which an
// average-day constant cannot reproduce. Distinct from EstimateDuration by
// design.
func AddCalendarPeriod(start time.Time, period domain.RentalPeriod, n int) (time.Time, error) {
	if n < 1 {
		return time.Time{}, fmt.Errorf("%w: %d periods", domain.ErrInvalidAmount, n)
	}
	switch period {
	case domain.PeriodHourly:
		return start.Add(time.Duration(n) * time.Hour), nil
	case domain.PeriodDaily:
		return start.AddDate(0, 0, n), nil
	case domain.PeriodWeekly:
		return start.AddDate(0, 0, 7*n), nil
	case domain.PeriodMonthly:
		return start.AddDate(0, n, 0), nil
	case domain.PeriodYearly:
		return start.AddDate(n, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, period)
	}
}

// LateFee computes the flat daily penalty for a late return. Any part of a
// day late counts as a full day; on-time or early returns owe nothing.
func LateFee(scheduledReturn, actualReturn time.Time, perDayCents int64) int64 {
	if !actualReturn.After(scheduledReturn) {
		return 0
	}
	hoursLate := actualReturn.Sub(scheduledReturn).Hours()
	daysLate := int64(math.Ceil(hoursLate / 24))
	if daysLate < 1 {
		daysLate = 1
	}
	return daysLate * perDayCents
}

// SecurityDeposit computes the refundable hold collected at pickup as a
// percentage of the order total, rounded to the nearest cent.
func SecurityDeposit(totalCents int64, percent float64) int64 {
	return int64(math.Round(float64(totalCents) * percent / 100))
}

// Tax computes the tax amount on a subtotal, rounded to the nearest cent.
func Tax(subtotalCents int64, ratePercent float64) int64 {
	return int64(math.Round(float64(subtotalCents) * ratePercent / 100))
}
