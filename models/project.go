package models

import "time"

type Project struct {
	Name      string    `json:"name" gorm:"primaryKey"`
	Comments  string    `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Drillholes []Drillhole `json:"drillholes,omitempty" gorm:"foreignKey:ProjectName;constraint:OnDelete:CASCADE"`
}
