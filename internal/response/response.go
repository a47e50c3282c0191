// Package response defines the API envelope shared by every endpoint.
package response

import "github.com/gin-gonic/gin"

// Body is the response envelope. Data, Errors and Meta are omitted when absent.
type Body struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  string `json:"errors,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Body{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string, errs string) {
	c.JSON(code, Body{
		Status:  "error",
		Message: message,
		Errors:  errs,
	})
}
