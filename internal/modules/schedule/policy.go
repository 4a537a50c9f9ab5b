package schedule

import (
	"time"

	"deskbooker/internal/domain"
)

const dateLayout = "2006-01-02"

// midnight strips the time-of-day so policy decisions never depend on
// wall-clock drift.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether the date matches any holiday. Recurring holidays
// match on month+day every year, fixed ones on the exact ISO date.
func IsHoliday(date time.Time, holidays []domain.CompanyHoliday) bool {
	d := midnight(date)
	iso := d.Format(dateLayout)
	for _, h := range holidays {
		if !h.Active {
			continue
		}
		if h.Recurring {
			hd, err := time.Parse(dateLayout, h.Date)
			if err != nil {
				continue
			}
			if hd.Month() == d.Month() && hd.Day() == d.Day() {
				return true
			}
		} else if h.Date == iso {
			return true
		}
	}
	return false
}

func IsWorkingDay(date time.Time, holidays []domain.CompanyHoliday) bool {
	return !IsWeekend(date) && !IsHoliday(date, holidays)
}

// ComputeMaxSelectableDate returns the furthest date a booking may be
// placed on: the limit-th working day strictly after today. Weekends and
// holidays do not consume the allowance.
func ComputeMaxSelectableDate(today time.Time, holidays []domain.CompanyHoliday, workingDaysLimit int) time.Time {
	d := midnight(today)
	if workingDaysLimit <= 0 {
		return d
	}

	counted := 0
	for {
		d = d.AddDate(0, 0, 1)
		if IsWorkingDay(d, holidays) {
			counted++
			if counted == workingDaysLimit {
				return d
			}
		}
	}
}
