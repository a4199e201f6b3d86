package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message   string `json:"message" example:"pong"`                                   // Response message
	RequestID string `json:"requestId" example:"0b8f3c1e-5d2a-4f7e-9a61-3c2d9e7b1f40"` // ID assigned by the request logger
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message:   "pong",
		RequestID: c.GetString("request_id"),
	})
}
