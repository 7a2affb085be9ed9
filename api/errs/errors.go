package errs

import (
	"errors"
	"net/http"
)

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrDrillholeNotFound = errors.New("drillhole not found")
	ErrLithologyNotFound = errors.New("lithology not found")

	ErrInvalidZone      = errors.New("not a valid UTM zone")
	ErrUnknownDrillhole = errors.New("drillhole is not in the database")
	ErrUnknownLithology = errors.New("lithology code is not in the catalogue")
	ErrMalformedRow     = errors.New("row contains an invalid value")
	ErrConstraint       = errors.New("record rejected by the store")

	ErrMissingFile   = errors.New("no file provided to import")
	ErrNoImages      = errors.New("no images for this drillhole")
	ErrModelNotFound = errors.New("detection model artifact not found")
)

var ErrStatusMap = map[error]int{
	ErrProjectNotFound:   http.StatusNotFound,
	ErrDrillholeNotFound: http.StatusNotFound,
	ErrLithologyNotFound: http.StatusNotFound,
	ErrInvalidZone:       http.StatusUnprocessableEntity,
	ErrUnknownDrillhole:  http.StatusUnprocessableEntity,
	ErrUnknownLithology:  http.StatusUnprocessableEntity,
	ErrMalformedRow:      http.StatusUnprocessableEntity,
	ErrConstraint:        http.StatusUnprocessableEntity,
	ErrMissingFile:       http.StatusBadRequest,
	ErrNoImages:          http.StatusBadRequest,
	ErrModelNotFound:     http.StatusInternalServerError,
}
