package http

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jekoram/reelshorter/domain/dto"
	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/infrastructure/logger"
	"github.com/jekoram/reelshorter/usecase"
)

type IConnectionHandler interface {
	List(c *gin.Context)
	Disconnect(c *gin.Context)
}

type ConnectionHandler struct {
	connectionUsecase usecase.IConnectionUsecase
}

func NewConnectionHandler(connectionUsecase usecase.IConnectionUsecase) IConnectionHandler {
	return &ConnectionHandler{connectionUsecase: connectionUsecase}
}

// List handles GET /api/connections.
func (h *ConnectionHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	infos, err := h.connectionUsecase.List(c.Request.Context(), userID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing connections")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "Success", Data: infos})
}

// Disconnect handles DELETE /api/connections?platform=.
func (h *ConnectionHandler) Disconnect(c *gin.Context) {
	userID := c.GetString("user_id")

	raw := c.Query("platform")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "Platform parameter is required"})
		return
	}
	platform, known := model.ParsePlatform(raw)
	if !known {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "Unknown platform"})
		return
	}

	if err := h.connectionUsecase.Disconnect(c.Request.Context(), userID, platform); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, dto.Res{ResponseCode: "404", ResponseMessage: "Connection not found"})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error while disconnecting platform")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "Disconnected"})
}
