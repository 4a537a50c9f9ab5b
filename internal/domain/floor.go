package domain

type Floor struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	FloorNumber    int    `json:"floorNumber"`
	Code           string `json:"code"`
	SquareMeters   int    `json:"squareMeters,omitempty"`
	TotalDesks     int    `json:"totalDesks"`
	Description    string `json:"description,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
	Active         bool   `json:"active"`
}

type FloorStatistics struct {
	TotalDesks     int     `json:"totalDesks"`
	AvailableDesks int     `json:"availableDesks"`
	OccupiedDesks  int     `json:"occupiedDesks"`
	OccupancyRate  float64 `json:"occupancyRate"`
}
