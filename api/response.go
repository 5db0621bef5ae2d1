package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the success envelope: payloads always sit under "data".
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse is the failure envelope. Every error, client- or
// server-caused, is a single "error" message; nothing is retried server-side.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success writes a 200 response with the payload under "data".
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Data: data})
}

// SuccessWithMessage writes a 200 response with a message and optional payload.
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Message: message, Data: data})
}

// Error writes an error response with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// BadRequest writes a 400 response (validation failures, bad references).
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound writes a 404 response (row/category/budget entry absent).
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict writes a 409 response (duplicate names, stale versions,
// still-referenced categories).
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError writes a 500 response (storage or unexpected failures).
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
