package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// accountFromContext reads the identity the JWT middleware stored on
// the request context.
func accountFromContext(c *gin.Context) (uuid.UUID, string, bool) {
	raw, ok := c.Get("user_id")
	if !ok {
		return uuid.Nil, "", false
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, "", false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, "", false
	}
	name := c.GetString("user_name")
	return id, name, true
}
