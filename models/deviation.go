package models

// Deviation is one downhole survey interval.
type Deviation struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	DrillholeID uint    `json:"drillhole_id" gorm:"not null;index"`
	DepthFrom   float64 `json:"from" gorm:"check:depth_from >= 0"`
	DepthTo     float64 `json:"to" gorm:"check:depth_to >= 0"`
	Inclination float64 `json:"inclination" gorm:"check:inclination >= -90 AND inclination <= 90"`
	Azimuth     float64 `json:"azimuth" gorm:"check:azimuth >= 0 AND azimuth <= 360"`
}
