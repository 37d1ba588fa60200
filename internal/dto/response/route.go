package response

type BusSearchResponse struct {
	Provider       string   `json:"provider"`
	FromDistrict   string   `json:"from_district"`
	ToDistrict     string   `json:"to_district"`
	Fare           float64  `json:"fare"`
	SeatClass      string   `json:"seat_class"`
	AvailableSeats int      `json:"available_seats"`
	TotalSeats     int      `json:"total_seats"`
	DepartureTimes []string `json:"departure_times"`
	DurationHours  float64  `json:"duration_hours"`
	DistanceKM     float64  `json:"distance_km"`
	Rating         float64  `json:"rating"`
	Contact        string   `json:"contact"`
}
