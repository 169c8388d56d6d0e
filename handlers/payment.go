package handlers

import (
	"errors"
	"net/http"
	"time"

	"fixeify/gateway"
	"fixeify/models"
	"fixeify/services/invoice"
	"fixeify/services/payment"
	"fixeify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler owns the payment surface of a booking-detail view: the
// reconciled status shown to the user and the attempt lifecycle behind the
// pay/retry buttons.
type PaymentHandler struct {
	Backend   gateway.BackendClient
	Attempts  *payment.AttemptStore
	Processor payment.Processor
	Logger    *zap.Logger
}

func NewPaymentHandler(backend gateway.BackendClient, attempts *payment.AttemptStore, processor payment.Processor, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		Backend:   backend,
		Attempts:  attempts,
		Processor: processor,
		Logger:    logger,
	}
}

// GetPaymentStateHandler computes what the booking-detail view renders: the
// reconciled payment status, whether the payment window is open, and which
// actions to offer. Safe to call on every render; everything here is a pure
// function of the latest snapshots plus the caller's attempt state.
func (h *PaymentHandler) GetPaymentStateHandler(c *gin.Context) {
	bookingID := c.Param("id")
	attemptID := c.Query("attemptId")
	ctx := c.Request.Context()

	booking, err := h.Backend.GetBooking(ctx, bookingID)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	quota, err := h.Backend.GetQuota(ctx, bookingID)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	attempt, err := h.Attempts.Get(ctx, bookingID, attemptID)
	if err != nil {
		h.Logger.Error("Failed to read payment attempt", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read payment state", err.Error())
		return
	}

	windowOpen := payment.WindowOpen(booking.PreferredDate, booking.PreferredTime, time.Now())
	displayed := payment.Merge(quota.PaymentStatus, attempt.State)
	actions := payment.Actions(displayed, windowOpen)
	if actions == nil {
		actions = []payment.Action{}
	}

	c.JSON(http.StatusOK, gin.H{
		"bookingId":     bookingID,
		"paymentStatus": displayed,
		"windowOpen":    windowOpen,
		"actions":       actions,
		"attemptState":  attempt.State,
		"total":         quota.TotalCost,
		"totalDisplay":  invoice.FormatINR(quota.TotalCost),
	})
}

// BeginPaymentAttemptHandler opens a payment intent for the quota total and
// records a pending local attempt. Refused while the window is closed or once
// payment has completed.
func (h *PaymentHandler) BeginPaymentAttemptHandler(c *gin.Context) {
	bookingID := c.Param("id")
	ctx := c.Request.Context()

	booking, err := h.Backend.GetBooking(ctx, bookingID)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	quota, err := h.Backend.GetQuota(ctx, bookingID)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	if !payment.WindowOpen(booking.PreferredDate, booking.PreferredTime, time.Now()) {
		utils.JSONError(c, http.StatusForbidden, "Payment window closed",
			"payment unlocks after the last booked time slot has ended")
		return
	}
	if displayed := payment.Merge(quota.PaymentStatus, payment.StateUnknown); displayed == models.PaymentCompleted {
		utils.JSONError(c, http.StatusConflict, "Payment already completed", "")
		return
	}

	intentID, clientSecret, err := h.Processor.CreateIntent(ctx, booking.ID, quota.TotalCost)
	if err != nil {
		h.Logger.Error("Failed to create payment intent", zap.String("bookingId", bookingID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Payment processor unavailable", err.Error())
		return
	}

	attempt, err := h.Attempts.Begin(ctx, bookingID, intentID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record payment attempt", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"attemptId":    attempt.ID,
		"clientSecret": clientSecret,
		"state":        attempt.State,
	})
}

// ConfirmPaymentAttemptHandler checks the processor for the attempt's outcome
// and settles the local state. A still-processing intent leaves the attempt
// pending; the caller polls again.
func (h *PaymentHandler) ConfirmPaymentAttemptHandler(c *gin.Context) {
	bookingID := c.Param("id")
	attemptID := c.Param("attemptId")
	ctx := c.Request.Context()

	attempt, err := h.Attempts.Get(ctx, bookingID, attemptID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read payment attempt", err.Error())
		return
	}
	if attempt.State == payment.StateUnknown {
		utils.JSONError(c, http.StatusNotFound, "Payment attempt not found", "the attempt may have expired")
		return
	}

	quota, err := h.Backend.GetQuota(ctx, bookingID)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	if attempt.State == payment.StateLocalPending {
		outcome, err := h.Processor.ConfirmOutcome(ctx, attempt.IntentID)
		if err != nil {
			h.Logger.Error("Failed to confirm payment outcome", zap.String("attemptId", attemptID), zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "Payment processor unavailable", err.Error())
			return
		}
		if ev, settled := outcome.Event(); settled {
			attempt, err = h.Attempts.Resolve(ctx, bookingID, attemptID, ev)
			if err != nil {
				utils.JSONError(c, http.StatusInternalServerError, "Failed to update payment attempt", err.Error())
				return
			}
		}
	}

	displayed := payment.Merge(quota.PaymentStatus, attempt.State)
	c.JSON(http.StatusOK, gin.H{
		"attemptId":     attempt.ID,
		"state":         attempt.State,
		"paymentStatus": displayed,
	})
}

// respondGatewayError maps backend read failures onto HTTP statuses.
func respondGatewayError(c *gin.Context, err error) {
	var gwErr *gateway.GatewayError
	if errors.As(err, &gwErr) && gwErr.Code == "notFound" {
		utils.JSONError(c, http.StatusNotFound, "Not found", gwErr.Message)
		return
	}
	utils.JSONError(c, http.StatusBadGateway, "Booking backend unavailable", err.Error())
}
