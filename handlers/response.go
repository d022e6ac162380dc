package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicesalon/utils"
)

// apiError is a client error with the exact body to send back. Tools see only
// its message.
type apiError struct {
	Status int
	Body   gin.H
}

func (e *apiError) Error() string {
	if msg, ok := e.Body["error"].(string); ok {
		return msg
	}
	return http.StatusText(e.Status)
}

func badRequest(message string, extra gin.H) *apiError {
	body := gin.H{"success": false, "error": message}
	for k, v := range extra {
		body[k] = v
	}
	return &apiError{Status: http.StatusBadRequest, Body: body}
}

func notFound(message string, extra gin.H) *apiError {
	e := badRequest(message, extra)
	e.Status = http.StatusNotFound
	return e
}

// respond writes a payload, an apiError body, or a logged 500.
func respond(c *gin.Context, payload gin.H, err error, failure string) {
	var apiErr *apiError
	switch {
	case errors.As(err, &apiErr):
		c.JSON(apiErr.Status, apiErr.Body)
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, failure, fmt.Errorf("%s: %w", c.FullPath(), err))
	default:
		c.JSON(http.StatusOK, payload)
	}
}

func dataBody(data any) gin.H {
	return gin.H{"success": true, "data": data}
}
