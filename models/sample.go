package models

// Sample is one assay interval. Element concentrations are optional and
// non-negative when present.
type Sample struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	DrillholeID uint     `json:"drillhole_id" gorm:"not null;index"`
	DepthFrom   float64  `json:"from" gorm:"check:depth_from >= 0"`
	DepthTo     float64  `json:"to" gorm:"check:depth_to >= 0"`
	Element1    *float64 `json:"element_1" gorm:"column:element_1;check:element_1 >= 0"`
	Element2    *float64 `json:"element_2" gorm:"column:element_2;check:element_2 >= 0"`
}
