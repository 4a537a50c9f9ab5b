package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"deskbooker/internal/domain"
)

type HolidayRequest struct {
	Date        string             `json:"date"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Type        domain.HolidayType `json:"type"`
	Recurring   bool               `json:"recurring"`
}

func (c *Client) HolidaysBetween(ctx context.Context, startDate, endDate string) ([]domain.CompanyHoliday, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	var out []domain.CompanyHoliday
	err := c.do(ctx, http.MethodGet, "/holidays/range", q, nil, &out)
	return out, err
}

func (c *Client) AllHolidays(ctx context.Context) ([]domain.CompanyHoliday, error) {
	var out []domain.CompanyHoliday
	err := c.do(ctx, http.MethodGet, "/holidays", nil, nil, &out)
	return out, err
}

func (c *Client) CreateHoliday(ctx context.Context, req HolidayRequest) (*domain.CompanyHoliday, error) {
	var out domain.CompanyHoliday
	if err := c.do(ctx, http.MethodPost, "/holidays", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateHoliday(ctx context.Context, id int64, req HolidayRequest) (*domain.CompanyHoliday, error) {
	var out domain.CompanyHoliday
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/holidays/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteHoliday(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/holidays/%d", id), nil, nil, nil)
}
