package models

import "time"

// Image is a stored file reference. Path is relative to the media root;
// UUID identifies the record independently of the display filename.
type Image struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UUID        string    `json:"uuid" gorm:"uniqueIndex;not null"`
	DrillholeID uint      `json:"drillhole_id" gorm:"not null;index"`
	ProjectName string    `json:"project" gorm:"not null"`
	Path        string    `json:"path" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
