package controller

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/japb1998/atelier/internal/dto"
)

func clientIdParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return 0, false
	}
	return id, true
}

// GetClients list every client.
// @Tags CLIENT
// @Summary list clients.
// @Schemes
// @Description list every client with its invoices and repairs.
// @Produce json
// @Success 200 {object} dto.ClientListDto
// @Router /clients [get]
func GetClients(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "get-clients-controller")
	defer span.End()

	if clientDtoList, err := clientService.GetClients(ctx); err != nil {

		clientLogger.Error("GetClients", slog.String("error", err.Error()))
		abortWithServiceError(c, err)

	} else {

		c.JSON(http.StatusOK, dto.ClientListDto{
			Records: clientDtoList,
			Count:   len(clientDtoList),
		})
	}
}

// CreateClient create client.
// @Tags CLIENT
// @Summary create client.
// @Schemes
// @Description create client. The id is the next position in the client list.
// @Param request body dto.CreateClient true "create client dto"
// @Accept json
// @Produce json
// @Success 201 {object} dto.ClientDto
// @Router /clients [post]
func CreateClient(c *gin.Context) {
	var clientDto dto.CreateClient

	if err := c.ShouldBind(&clientDto); err != nil {
		clientLogger.Error("CreateClient validation error", slog.String("error", err.Error()))
		abortWithBindingError(c, err)
		return
	}

	if client, err := clientService.CreateClient(c.Request.Context(), clientDto); err != nil {
		clientLogger.Error("Error creating client", slog.String("error", err.Error()))
		abortWithServiceError(c, err)
		return
	} else {
		c.JSON(http.StatusCreated, client)
	}
}

// UpdateClient update client.
// @Tags CLIENT
// @Summary update client.
// @Schemes
// @Description overwrite the fields present in the body.
// @Param id path int true "Client ID"
// @Param request body dto.PatchClient true "patch client dto"
// @Produce json
// @Success 200 {object} dto.ClientDto
// @Router /clients/{id} [patch]
func UpdateClient(c *gin.Context) {
	clientId, ok := clientIdParam(c)
	if !ok {
		return
	}
	var clientDto dto.PatchClient

	if err := c.ShouldBind(&clientDto); err != nil {
		clientLogger.Error("Error validating UpdateClient payload", slog.String("error", err.Error()))
		abortWithBindingError(c, err)
		return
	}

	if client, err := clientService.UpdateClient(c.Request.Context(), clientId, clientDto); err != nil {
		clientLogger.Error("Error updating client", slog.String("error", err.Error()))
		abortWithServiceError(c, err)
	} else {
		c.JSON(http.StatusOK, client)
	}
}

// GetClientByID Get client by ID
// @Tags CLIENT
// @Summary Get client by ID
// @Schemes
// @Description Get client by ID
// @Param id path int true "Client ID"
// @Produce json
// @Success 200 {object} dto.ClientDto
// @Router /clients/{id} [get]
func GetClientByID(c *gin.Context) {
	clientId, ok := clientIdParam(c)
	if !ok {
		return
	}

	client, err := clientService.GetClientById(c.Request.Context(), clientId)

	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient delete client by ID.
// @Tags CLIENT
// @Summary delete client by ID.
// @Schemes
// @Description delete client by ID. Clients after it are renumbered unless stable ids are enabled.
// @Param id path int true "Client ID"
// @Success 204
// @Router /clients/{id} [delete]
func DeleteClient(c *gin.Context) {
	clientId, ok := clientIdParam(c)
	if !ok {
		return
	}

	err := clientService.DeleteClient(c.Request.Context(), clientId)

	if err != nil {
		clientLogger.Error("Error deleting client", slog.String("error", err.Error()))
		abortWithServiceError(c, err)
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}
