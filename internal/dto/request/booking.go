package request

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"required,min=6,max=20"`
	FromDistrict  string `json:"from_district" validate:"required,max=100"`
	ToDistrict    string `json:"to_district" validate:"required,max=100"`
	BusProvider   string `json:"bus_provider" validate:"required,max=100"`
	DroppingPoint string `json:"dropping_point,omitempty" validate:"max=200"`
	TravelDate    string `json:"travel_date" validate:"required,max=20"`
}
