package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// serverError pushes the real cause onto the gin error list for the logging
// middleware and answers with an opaque route-specific message. No SQL text or
// stack detail ever reaches the caller.
func serverError(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
