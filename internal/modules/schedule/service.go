package schedule

import (
	"context"
	"time"

	"deskbooker/internal/client"
	"deskbooker/internal/domain"
)

// How far ahead we fetch holidays when computing the selection window. Wide
// enough that the working-day walk never runs past the fetched range.
const holidayLookahead = 6 * 30 * 24 * time.Hour

// Window is the date range the UI may offer for booking.
type Window struct {
	MinDate string `json:"minDate"`
	MaxDate string `json:"maxDate"`

	Holidays []domain.CompanyHoliday `json:"holidays"`

	// Degraded is set when the holiday fetch failed and the window was
	// computed from weekends alone.
	Degraded bool `json:"degraded,omitempty"`
}

type Service struct {
	holidays         HolidayAPI
	workingDaysLimit int
	now              func() time.Time
}

func NewService(holidays HolidayAPI, workingDaysLimit int) *Service {
	return &Service{
		holidays:         holidays,
		workingDaysLimit: workingDaysLimit,
		now:              time.Now,
	}
}

// SelectionWindow computes [today, max selectable date] where the maximum is
// the workingDaysLimit-th working day counting from today.
func (s *Service) SelectionWindow(ctx context.Context) (*Window, error) {
	today := midnight(s.now().UTC())
	from := today.Format(dateLayout)
	to := today.Add(holidayLookahead).Format(dateLayout)

	holidays, err := s.holidays.HolidaysBetween(ctx, from, to)
	degraded := false
	if err != nil {
		// Keep the window usable without holiday data.
		holidays = nil
		degraded = true
	}

	maxDate := ComputeMaxSelectableDate(today, holidays, s.workingDaysLimit)
	return &Window{
		MinDate:  from,
		MaxDate:  maxDate.Format(dateLayout),
		Holidays: holidays,
		Degraded: degraded,
	}, nil
}

// IsSelectable reports whether the date may be booked: inside the window and
// a working day.
func (s *Service) IsSelectable(ctx context.Context, date string) (bool, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false, ErrValidation
	}

	w, err := s.SelectionWindow(ctx)
	if err != nil {
		return false, err
	}
	if date < w.MinDate || date > w.MaxDate {
		return false, nil
	}
	return IsWorkingDay(d, w.Holidays), nil
}

func (s *Service) ListHolidays(ctx context.Context) ([]domain.CompanyHoliday, error) {
	return s.holidays.AllHolidays(ctx)
}

func (s *Service) CreateHoliday(ctx context.Context, role domain.UserRole, req client.HolidayRequest) (*domain.CompanyHoliday, error) {
	if role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	if err := validateHoliday(req); err != nil {
		return nil, err
	}
	return s.holidays.CreateHoliday(ctx, req)
}

func (s *Service) UpdateHoliday(ctx context.Context, role domain.UserRole, id int64, req client.HolidayRequest) (*domain.CompanyHoliday, error) {
	if role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	if err := validateHoliday(req); err != nil {
		return nil, err
	}
	return s.holidays.UpdateHoliday(ctx, id, req)
}

func (s *Service) DeleteHoliday(ctx context.Context, role domain.UserRole, id int64) error {
	if role != domain.RoleAdmin {
		return ErrForbidden
	}
	return s.holidays.DeleteHoliday(ctx, id)
}

func validateHoliday(req client.HolidayRequest) error {
	if req.Name == "" {
		return ErrValidation
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return ErrValidation
	}
	return nil
}
