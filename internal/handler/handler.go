// Package handler exposes the REST surface. Handlers bind and validate the
// request, call a usecase through a narrow interface, and write the response
// envelope.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yasinqurni/m-app-server/internal/apperror"
	"github.com/Yasinqurni/m-app-server/internal/response"
)

// respondError maps the error taxonomy onto status codes. Database and
// internal failures surface as a generic message; details stay in the logs.
func respondError(c *gin.Context, err error) {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		response.Error(c, http.StatusNotFound, err.Error(), "not_found")
	case apperror.KindBadRequest:
		response.Error(c, http.StatusBadRequest, err.Error(), "bad_request")
	case apperror.KindValidation:
		response.Error(c, http.StatusBadRequest, "Invalid request data", err.Error())
	case apperror.KindAuthentication:
		response.Error(c, http.StatusUnauthorized, err.Error(), "authentication")
	default:
		response.Error(c, http.StatusInternalServerError, "internal server error", "internal")
	}
}

// parseIDParam reads the :id path segment; anything that is not a positive
// integer is a 400.
func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "ID must be positive", "bad_request")
		return 0, false
	}
	return id, true
}
