package models

// Lithology is a catalogue entry, admin managed. Intervals reference it by
// code.
type Lithology struct {
	Code        string `json:"code" gorm:"primaryKey;size:10"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
}

type LithologyInterval struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	DrillholeID   uint    `json:"drillhole_id" gorm:"not null;index"`
	DepthFrom     float64 `json:"from" gorm:"check:depth_from >= 0"`
	DepthTo       float64 `json:"to" gorm:"check:depth_to >= 0"`
	LithologyCode string  `json:"litho_code" gorm:"not null;size:10"`

	Lithology Lithology `json:"lithology,omitempty" gorm:"foreignKey:LithologyCode"`
}
