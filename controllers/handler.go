package controllers

import (
	"gorm.io/gorm"

	"drillhub/services"
	"drillhub/tasks"
)

// Handler carries the store handle and the media/queue collaborators into
// every endpoint.
type Handler struct {
	DB        *gorm.DB
	Media     *services.MediaStore
	Queue     *tasks.Queue
	Delimiter rune
}
