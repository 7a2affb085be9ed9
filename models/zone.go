package models

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"drillhub/api/errs"
)

// UTMZones holds the 120 valid collar grid zones: UTM zones 1-60, each in
// the northern or southern hemisphere.
var UTMZones = func() map[string]bool {
	zones := make(map[string]bool, 120)
	for i := 1; i <= 60; i++ {
		zones[strconv.Itoa(i)+"N"] = true
		zones[strconv.Itoa(i)+"S"] = true
	}
	return zones
}()

// ValidateZone rejects any code outside the fixed zone set, carrying the
// offending value.
func ValidateZone(code string) error {
	if !UTMZones[code] {
		return fmt.Errorf("%q is not a valid UTM zone: %w", code, errs.ErrInvalidZone)
	}
	return nil
}

// ZoneRule is the "utmzone" binding rule registered on gin's validator.
func ZoneRule(fl validator.FieldLevel) bool {
	return ValidateZone(fl.Field().String()) == nil
}
