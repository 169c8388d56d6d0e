package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fixeify/gateway"
	"fixeify/services/invoice"
	"fixeify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler serves invoice downloads for completed bookings.
type InvoiceHandler struct {
	Backend gateway.BackendClient
	Logger  *zap.Logger
}

func NewInvoiceHandler(backend gateway.BackendClient, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{Backend: backend, Logger: logger}
}

// DownloadInvoiceHandler regenerates the invoice for a booking and streams it
// as a PDF attachment. Nothing is persisted; every download is a fresh render.
func (h *InvoiceHandler) DownloadInvoiceHandler(c *gin.Context) {
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

	doc, err := invoice.Generate(*booking, *quota, time.Now())
	if err != nil {
		var genErr *invoice.GenerationError
		if errors.As(err, &genErr) {
			// One-shot failure notice; the user may re-trigger manually.
			utils.JSONError(c, http.StatusUnprocessableEntity, "Invoice generation failed", genErr.Message)
			return
		}
		h.Logger.Error("Invoice rendering error", zap.String("bookingId", bookingID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Invoice generation failed", "unexpected rendering error")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, "application/pdf", doc.Bytes)
}
