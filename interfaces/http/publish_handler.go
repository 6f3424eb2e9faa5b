package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jekoram/reelshorter/domain/dto"
	"github.com/jekoram/reelshorter/infrastructure/logger"
	"github.com/jekoram/reelshorter/usecase"
)

type IPublishHandler interface {
	Publish(c *gin.Context)
	Logs(c *gin.Context)
}

type PublishHandler struct {
	publishUsecase usecase.IPublishUsecase
}

func NewPublishHandler(publishUsecase usecase.IPublishUsecase) IPublishHandler {
	return &PublishHandler{publishUsecase: publishUsecase}
}

// Publish handles POST /api/publish. The body is multipart form data with
// "file", "title", "description" and repeated "platforms" fields.
func (h *PublishHandler) Publish(c *gin.Context) {
	userID := c.GetString("user_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "No file provided"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while opening uploaded file")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "Failed to read upload"})
		return
	}
	defer f.Close()
	fileBytes, err := io.ReadAll(f)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while reading uploaded file")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "Failed to read upload"})
		return
	}

	req := &dto.PublishRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		FileName:    fileHeader.Filename,
		MimeType:    fileHeader.Header.Get("Content-Type"),
		File:        fileBytes,
		Platforms:   c.PostFormArray("platforms"),
	}

	res, err := h.publishUsecase.Publish(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error while publishing")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "Success", Data: res})
}

// Logs handles GET /api/logs?page=&limit=.
func (h *PublishHandler) Logs(c *gin.Context) {
	userID := c.GetString("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	res, err := h.publishUsecase.History(c.Request.Context(), userID, page, limit)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing publish logs")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "Success", Data: res})
}
