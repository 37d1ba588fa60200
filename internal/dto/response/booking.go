package response

import "time"

type BookingResponse struct {
	ID               string    `json:"id"`
	BookingReference string    `json:"booking_reference"`
	CustomerName     string    `json:"customer_name"`
	CustomerPhone    string    `json:"customer_phone"`
	FromDistrict     string    `json:"from_district"`
	ToDistrict       string    `json:"to_district"`
	BusProvider      string    `json:"bus_provider"`
	DroppingPoint    string    `json:"dropping_point"`
	TravelDate       string    `json:"travel_date"`
	Fare             float64   `json:"fare"`
	TotalFare        float64   `json:"total_fare"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	BookingDate      time.Time `json:"booking_date"`
}

type CancelBookingResponse struct {
	Message          string `json:"message"`
	BookingReference string `json:"booking_reference"`
}
