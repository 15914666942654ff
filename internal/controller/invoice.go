package controller

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/japb1998/atelier/internal/dto"
)

// CreateInvoice add an invoice to a client.
// @Tags INVOICE
// @Summary add an invoice to a client.
// @Schemes
// @Description the client is found by name, case insensitive. Totals are computed from the lines.
// @Param request body dto.CreateInvoice true "create invoice dto"
// @Accept json
// @Produce json
// @Success 201 {object} dto.InvoiceDto
// @Router /factures [post]
func CreateInvoice(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "create-invoice-controller")
	defer span.End()

	var invoiceDto dto.CreateInvoice

	if err := c.ShouldBindJSON(&invoiceDto); err != nil {
		clientLogger.Error("CreateInvoice validation error", slog.String("error", err.Error()))
		abortWithBindingError(c, err)
		return
	}

	invoice, err := clientService.AddInvoice(ctx, invoiceDto)

	if err != nil {
		clientLogger.Error("Error creating invoice", slog.String("error", err.Error()))
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// SendInvoice email an invoice to its client.
// @Tags INVOICE
// @Summary email an invoice to its client.
// @Schemes
// @Description send a text summary of the invoice to the client email. Not retried on failure.
// @Param id path int true "Client ID"
// @Param factureId path int true "Invoice ID"
// @Produce json
// @Success 200
// @Router /clients/{id}/factures/{factureId}/envoyer [post]
func SendInvoice(c *gin.Context) {
	clientId, ok := clientIdParam(c)
	if !ok {
		return
	}
	invoiceId, err := strconv.Atoi(c.Param("factureId"))
	if err != nil || invoiceId < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}

	if invoiceMailer == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "email delivery is not configured"})
		return
	}

	ctx, span := tracer.Start(c.Request.Context(), "send-invoice-controller")
	defer span.End()

	if err := invoiceMailer.SendInvoice(ctx, clientId, invoiceId); err != nil {
		mailLogger.Error("Error sending invoice", slog.String("error", err.Error()))
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "invoice sent"})
}
