package domain

type HolidayType string

const (
	HolidayFestivity      HolidayType = "FESTIVITY"
	HolidayCompanyClosure HolidayType = "COMPANY_CLOSURE"
	HolidayMaintenance    HolidayType = "MAINTENANCE"
	HolidayOther          HolidayType = "OTHER"
)

// CompanyHoliday blocks booking on a calendar date. Recurring holidays match
// month and day every year, fixed holidays match the exact date.
type CompanyHoliday struct {
	ID          int64       `json:"id"`
	Date        string      `json:"date"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Type        HolidayType `json:"type"`
	Recurring   bool        `json:"recurring"`
	Active      bool        `json:"active"`
}
