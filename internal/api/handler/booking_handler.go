package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sessionhub/booking-system/internal/core/domain"
	"github.com/sessionhub/booking-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for session bookings. Domain errors
// propagate to the central error handler for status mapping.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /bookings — a guest books a session with a host.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "start_time must be an RFC3339 timestamp"})
	}

	booking, err := h.service.CreateBooking(c.Request().Context(), ports.CreateBookingInput{
		Actor:     identity,
		HostID:    req.HostID,
		StartTime: startTime,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, bookingEnvelope{Booking: toBookingResponse(booking)})
}

// ListMine handles GET /bookings/me — all bookings where the caller is host
// or guest, ascending by start time.
//
// @Summary      List own bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  bookingListEnvelope
// @Failure      401  {object}  errorResponse
// @Router       /bookings/me [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListMyBookings(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookingListEnvelope{Bookings: toBookingList(bookings)})
}

// UpdateStatus handles PATCH /bookings/:id/status — host-only transition of
// the booking's status.
//
// @Summary      Update booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Booking id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  bookingEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	booking, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		Actor:     identity,
		BookingID: c.Param("id"),
		Status:    domain.BookingStatus(req.Status),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookingEnvelope{Booking: toBookingResponse(booking)})
}
