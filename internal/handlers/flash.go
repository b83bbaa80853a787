package handlers

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker/internal/dto"
)

const (
	flashSuccess = "success"
	flashWarning = "warning"
)

func init() {
	// session stores encode values with gob
	gob.Register(dto.FlashDTO{})
}

// addFlash queues a message for the next screen. A failed save only loses
// the message.
func addFlash(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(dto.FlashDTO{Level: level, Message: message})
	_ = session.Save()
}

// popFlashes returns and clears the queued messages.
func popFlashes(c *gin.Context) []dto.FlashDTO {
	session := sessions.Default(c)
	raw := session.Flashes()
	flashes := make([]dto.FlashDTO, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(dto.FlashDTO); ok {
			flashes = append(flashes, flash)
		}
	}
	if len(raw) > 0 {
		_ = session.Save()
	}
	return flashes
}
