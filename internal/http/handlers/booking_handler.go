// README: Booking handlers for create/get/confirm/ticket/cancel.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyfare/internal/modules/booking"
	"skyfare/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

type createBookingReq struct {
	UserID     string   `json:"user_id"`
	Path       []string `json:"path"`
	FareClass  string   `json:"fare_class"`
	Passengers int      `json:"passengers"`
	TotalFare  int64    `json:"total_fare"`
	Currency   string   `json:"currency"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	for _, code := range req.Path {
		if !isValidCode(code) {
			writeError(c, http.StatusBadRequest, "airport codes must be 3 uppercase letters")
			return
		}
	}
	id, err := h.booking.Create(c.Request.Context(), booking.CreateCommand{
		UserID:     types.ID(req.UserID),
		Path:       req.Path,
		FareClass:  req.FareClass,
		Passengers: req.Passengers,
		TotalFare:  types.Money{Amount: req.TotalFare, Currency: req.Currency},
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"booking_id": id, "status": booking.StatusReserved})
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return
	}
	b, err := h.booking.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"booking_id": b.ID,
		"status":     b.Status,
		"path":       b.Path,
		"fare_class": b.FareClass,
		"passengers": b.Passengers,
		"total_fare": b.TotalFare,
	})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	id := c.Param("id")
	if err := h.booking.Confirm(c.Request.Context(), booking.ConfirmCommand{BookingID: types.ID(id)}); err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": booking.StatusConfirmed})
}

func (h *BookingHandler) Ticket(c *gin.Context) {
	id := c.Param("id")
	if err := h.booking.Ticket(c.Request.Context(), booking.TicketCommand{BookingID: types.ID(id)}); err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": booking.StatusTicketed})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if err := h.booking.Cancel(c.Request.Context(), booking.CancelCommand{
		BookingID: types.ID(id),
		ActorType: "passenger",
		Reason:    "user_cancel",
	}); err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": booking.StatusCancelled})
}
