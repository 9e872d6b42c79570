package handlers

import (
	"retrofit-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the user placed on the context by middleware.InjectUser.
func currentUser(c *gin.Context) (models.User, bool) {
	uVal, ok := c.Get("CurrentUser")
	if !ok {
		return models.User{}, false
	}
	switch u := uVal.(type) {
	case models.User:
		return u, true
	case *models.User:
		return *u, true
	}
	return models.User{}, false
}
