package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medsystem/internal/transport/http/ez"
	mdw "medsystem/internal/transport/http/middleware"
)

// currentUser reads the doctor id the auth middleware stored on the
// context.
func currentUser(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.GetString(mdw.KeyUserID))
	if err != nil {
		return uuid.Nil, ez.Unauthorized("unauthorized")
	}
	return id, nil
}
