package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/japb1998/atelier/internal/dto"
)

// CreateRepairTicket add a repair ticket to a client.
// @Tags REPAIR
// @Summary add a repair ticket to a client.
// @Schemes
// @Description the client is found by name, case insensitive. A blank date is today.
// @Param request body dto.CreateRepairTicket true "create repair dto"
// @Accept json
// @Produce json
// @Success 201 {object} dto.RepairTicketDto
// @Router /reparations [post]
func CreateRepairTicket(c *gin.Context) {
	var repairDto dto.CreateRepairTicket

	if err := c.ShouldBind(&repairDto); err != nil {
		clientLogger.Error("CreateRepairTicket validation error", slog.String("error", err.Error()))
		abortWithBindingError(c, err)
		return
	}

	repair, err := clientService.AddRepairTicket(c.Request.Context(), repairDto)

	if err != nil {
		clientLogger.Error("Error creating repair ticket", slog.String("error", err.Error()))
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, repair)
}
