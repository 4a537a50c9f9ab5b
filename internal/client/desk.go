package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"deskbooker/internal/domain"
)

func (c *Client) DesksByFloor(ctx context.Context, floorID int64) ([]domain.Desk, error) {
	var out []domain.Desk
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/desks/floor/%d", floorID), nil, nil, &out)
	return out, err
}

func (c *Client) AvailableDesks(ctx context.Context, date string, floorID int64) ([]domain.Desk, error) {
	q := url.Values{}
	q.Set("date", date)
	if floorID > 0 {
		q.Set("floorId", strconv.FormatInt(floorID, 10))
	}
	var out []domain.Desk
	err := c.do(ctx, http.MethodGet, "/desks/available", q, nil, &out)
	return out, err
}
