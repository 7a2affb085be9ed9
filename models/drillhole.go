package models

import "time"

// Drillhole is the header record of a single hole. HoleID is unique across
// all projects, not per project.
type Drillhole struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProjectName string    `json:"project" gorm:"not null;index"`
	HoleID      string    `json:"hole_id" gorm:"uniqueIndex;not null"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`

	TeoAzimuth  float64 `json:"teo_azimuth" gorm:"check:teo_azimuth >= 0 AND teo_azimuth <= 360"`
	TeoIncl     float64 `json:"teo_incl" gorm:"check:teo_incl >= -90 AND teo_incl <= 90"`
	RealAzimuth float64 `json:"real_azimuth" gorm:"check:real_azimuth >= 0 AND real_azimuth <= 360"`
	RealIncl    float64 `json:"real_incl" gorm:"check:real_incl >= -90 AND real_incl <= 90"`

	UTMZone   string  `json:"utm_zone" gorm:"size:3;not null"`
	Northing  float64 `json:"northing" gorm:"check:northing >= 0"`
	Easting   float64 `json:"easting" gorm:"check:easting >= 0"`
	Elevation float64 `json:"elevation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Samples    []Sample            `json:"samples,omitempty" gorm:"foreignKey:DrillholeID;constraint:OnDelete:CASCADE"`
	Deviations []Deviation         `json:"deviations,omitempty" gorm:"foreignKey:DrillholeID;constraint:OnDelete:CASCADE"`
	Intervals  []LithologyInterval `json:"intervals,omitempty" gorm:"foreignKey:DrillholeID;constraint:OnDelete:CASCADE"`
	Images     []Image             `json:"images,omitempty" gorm:"foreignKey:DrillholeID;constraint:OnDelete:CASCADE"`
}
