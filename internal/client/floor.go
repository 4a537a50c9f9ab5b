package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"deskbooker/internal/domain"
)

func (c *Client) ActiveFloors(ctx context.Context) ([]domain.Floor, error) {
	var out []domain.Floor
	err := c.do(ctx, http.MethodGet, "/floors/active", nil, nil, &out)
	return out, err
}

func (c *Client) FloorStatistics(ctx context.Context, floorID int64, date string) (*domain.FloorStatistics, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	var out domain.FloorStatistics
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/floors/%d/statistics", floorID), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
