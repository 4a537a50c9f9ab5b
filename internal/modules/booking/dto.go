package booking

type CreateRequest struct {
	DeskID      int64  `json:"deskId" binding:"required"`
	BookingDate string `json:"bookingDate" binding:"required"`
}

type MoveRequest struct {
	BookingID   int64  `json:"bookingId" binding:"required"`
	DeskID      int64  `json:"deskId" binding:"required"`
	BookingDate string `json:"bookingDate" binding:"required"`
}

type CancelRequest struct {
	CancellationReason string `json:"cancellationReason"`
}
