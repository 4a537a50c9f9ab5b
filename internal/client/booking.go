package client

import (
	"context"
	"fmt"
	"net/http"

	"deskbooker/internal/domain"
)

type CreateBookingRequest struct {
	DeskID      int64              `json:"deskId"`
	BookingDate string             `json:"bookingDate"`
	Type        domain.BookingType `json:"type"`
	Notes       string             `json:"notes,omitempty"`
}

type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

func (c *Client) UserUpcomingBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/user/%d/upcoming", userID), nil, nil, &out)
	return out, err
}

func (c *Client) BookingByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", bookingID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BookingsForDateAndFloor(ctx context.Context, date string, floorID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/date/%s/floor/%d", date, floorID), nil, nil, &out)
	return out, err
}

func (c *Client) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/user/%d", userID), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelBooking(ctx context.Context, bookingID int64, reason string) error {
	if reason == "" {
		return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", bookingID), nil, nil, nil)
	}
	body := CancelBookingRequest{CancellationReason: reason}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", bookingID), nil, body, nil)
}

func (c *Client) CheckIn(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/%d/check-in", bookingID), nil, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CheckOut(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/%d/check-out", bookingID), nil, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
