package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects the handler functions route registration needs.
type HandlerBundle struct {
	// Invoice endpoints.
	DownloadInvoiceHandler gin.HandlerFunc

	// Payment endpoints.
	GetPaymentStateHandler       gin.HandlerFunc
	BeginPaymentAttemptHandler   gin.HandlerFunc
	ConfirmPaymentAttemptHandler gin.HandlerFunc
}
