package schedule

import (
	"context"

	"deskbooker/internal/client"
	"deskbooker/internal/domain"
)

// HolidayAPI is the backend's holiday surface.
type HolidayAPI interface {
	HolidaysBetween(ctx context.Context, startDate, endDate string) ([]domain.CompanyHoliday, error)
	AllHolidays(ctx context.Context) ([]domain.CompanyHoliday, error)
	CreateHoliday(ctx context.Context, req client.HolidayRequest) (*domain.CompanyHoliday, error)
	UpdateHoliday(ctx context.Context, id int64, req client.HolidayRequest) (*domain.CompanyHoliday, error)
	DeleteHoliday(ctx context.Context, id int64) error
}
