package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, reference string) (*response.CancelBookingResponse, error)
	ListBookings(ctx context.Context, phone string) ([]*response.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	routes RouteService
	config utils.BookingConfig
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, routes RouteService, config utils.BookingConfig, log *zap.Logger) BookingService {
	if config.ReferenceAttempts <= 0 {
		config.ReferenceAttempts = 5
	}
	return &bookingService{
		repo:   repo,
		routes: routes,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Resolve districts and provider by exact name
	fromDist, err := s.repo.District.FindByName(ctx, req.FromDistrict)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	toDist, err := s.repo.District.FindByName(ctx, req.ToDistrict)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	provider, err := s.repo.Provider.FindByName(ctx, req.BusProvider)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if fromDist == nil || toDist == nil || provider == nil {
		return nil, fmt.Errorf("district or provider: %w", ErrNotFound)
	}

	// Route may legitimately be nil, the booking then uses the flat
	// fallback fare
	route, err := s.routes.FindRoute(ctx, provider.ID, fromDist.ID, toDist.ID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if route != nil && route.AvailableSeats <= 0 && s.config.RejectWhenFull {
		return nil, fmt.Errorf("route %s->%s: %w", req.FromDistrict, req.ToDistrict, ErrRouteFull)
	}

	baseFare, totalFare := s.routes.ResolveFare(route, req.DroppingPoint, toDist)

	reference, err := s.uniqueReference(ctx)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingReference: reference,
		ProviderID:       &provider.ID,
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		FromDistrict:     req.FromDistrict,
		ToDistrict:       req.ToDistrict,
		BusProvider:      req.BusProvider,
		DroppingPoint:    req.DroppingPoint,
		TravelDate:       req.TravelDate,
		NumSeats:         1,
		Fare:             baseFare,
		TotalFare:        totalFare,
		Status:           entity.BookingStatusActive,
		PaymentStatus:    entity.PaymentStatusPending,
		BookingDate:      now,
	}
	if route != nil {
		booking.RouteID = &route.ID
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_reference", reference),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// A full route does not block the booking, the conditional decrement
	// simply leaves the counter at zero.
	if route != nil {
		decremented, err := s.repo.Route.DecrementSeat(ctx, route.ID)
		if err != nil {
			return nil, fmt.Errorf("create booking: %w", err)
		}
		if !decremented {
			s.log.Warn("Booking accepted on route with no seats left",
				zap.String("booking_reference", reference),
				zap.String("route_id", route.ID.String()),
			)
		}
	}

	s.log.Info("Booking created",
		zap.String("booking_reference", reference),
		zap.String("customer_phone", req.CustomerPhone),
		zap.String("from", req.FromDistrict),
		zap.String("to", req.ToDistrict),
		zap.Float64("total_fare", totalFare),
	)

	return buildBookingResponse(booking), nil
}

// uniqueReference regenerates until the reference is unused, bounded by the
// configured attempt count.
func (s *bookingService) uniqueReference(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.config.ReferenceAttempts; attempt++ {
		reference := utils.GenerateBookingReference()

		exists, err := s.repo.Booking.ReferenceExists(ctx, reference)
		if err != nil {
			return "", fmt.Errorf("check reference: %w", err)
		}
		if !exists {
			return reference, nil
		}

		s.log.Warn("Booking reference collision, regenerating",
			zap.String("booking_reference", reference),
			zap.Int("attempt", attempt+1),
		)
	}

	return "", fmt.Errorf("exhausted %d booking reference attempts", s.config.ReferenceAttempts)
}

func (s *bookingService) CancelBooking(ctx context.Context, reference string) (*response.CancelBookingResponse, error) {
	booking, err := s.repo.Booking.FindByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", reference, ErrNotFound)
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, fmt.Errorf("booking %s: %w", reference, ErrAlreadyCancelled)
	}

	cancelled, err := s.repo.Booking.MarkCancelled(ctx, booking.ID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if !cancelled {
		// Lost the race against a concurrent cancellation.
		return nil, fmt.Errorf("booking %s: %w", reference, ErrAlreadyCancelled)
	}

	// Seats are intentionally not restored on cancellation.
	s.log.Info("Booking cancelled", zap.String("booking_reference", reference))

	return &response.CancelBookingResponse{
		Message:          "Booking cancelled successfully",
		BookingReference: reference,
	}, nil
}

func (s *bookingService) ListBookings(ctx context.Context, phone string) ([]*response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	responses := make([]*response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, buildBookingResponse(booking))
	}
	return responses, nil
}

func buildBookingResponse(booking *entity.Booking) *response.BookingResponse {
	return &response.BookingResponse{
		ID:               booking.ID.String(),
		BookingReference: booking.BookingReference,
		CustomerName:     booking.CustomerName,
		CustomerPhone:    booking.CustomerPhone,
		FromDistrict:     booking.FromDistrict,
		ToDistrict:       booking.ToDistrict,
		BusProvider:      booking.BusProvider,
		DroppingPoint:    booking.DroppingPoint,
		TravelDate:       booking.TravelDate,
		Fare:             booking.Fare,
		TotalFare:        booking.TotalFare,
		Status:           string(booking.Status),
		PaymentStatus:    booking.PaymentStatus,
		BookingDate:      booking.BookingDate,
	}
}
