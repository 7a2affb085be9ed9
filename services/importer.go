package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gorm.io/gorm"

	"drillhub/api/errs"
	"drillhub/models"
)

// RowFunc builds the entity for one parsed row. fields excludes the
// leading drillhole column.
type RowFunc func(dh *models.Drillhole, fields []string) (any, error)

// ImportResult reports how far an import got. FailedRow is the 0-based
// data row index of the row that stopped the import, or -1.
type ImportResult struct {
	Imported  int `json:"imported"`
	FailedRow int `json:"failed_row"`
}

// ImportRows runs the row-wise pipeline: discard the header, resolve
// column 0 to an existing drillhole, map the remaining fields, persist.
// Rows are read one at a time, so each well-formed row is persisted
// before the next is parsed. Any failure stops the import at that row;
// rows already persisted stay persisted, and the caller must treat
// anything but a nil error as a partial import.
func ImportRows(db *gorm.DB, r io.Reader, delimiter rune, row RowFunc) (ImportResult, error) {
	res := ImportResult{FailedRow: -1}

	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		return res, fmt.Errorf("header: %v: %w", err, errs.ErrMalformedRow)
	}

	for i := 0; ; i++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			res.FailedRow = i
			return res, fmt.Errorf("row %d: %v: %w", i, err, errs.ErrMalformedRow)
		}
		if len(record) < 2 {
			res.FailedRow = i
			return res, fmt.Errorf("row %d has %d columns: %w", i, len(record), errs.ErrMalformedRow)
		}
		var dh models.Drillhole
		if err := db.First(&dh, "hole_id = ?", record[0]).Error; err != nil {
			res.FailedRow = i
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return res, fmt.Errorf("row %d references %q: %w", i, record[0], errs.ErrUnknownDrillhole)
			}
			return res, err
		}

		entity, err := row(&dh, record[1:])
		if err != nil {
			res.FailedRow = i
			return res, fmt.Errorf("row %d: %w", i, err)
		}
		if err := models.Persist(db, entity); err != nil {
			res.FailedRow = i
			return res, fmt.Errorf("row %d: %w", i, err)
		}
		res.Imported++
	}
	return res, nil
}

// SampleRow maps [From, To, element_1, element_2]. Elements may be blank.
func SampleRow(dh *models.Drillhole, fields []string) (any, error) {
	if len(fields) < 4 {
		return nil, fmt.Errorf("expected 4 columns, got %d: %w", len(fields), errs.ErrMalformedRow)
	}
	from, err := parseFloat(fields[0])
	if err != nil {
		return nil, err
	}
	to, err := parseFloat(fields[1])
	if err != nil {
		return nil, err
	}
	e1, err := parseOptFloat(fields[2])
	if err != nil {
		return nil, err
	}
	e2, err := parseOptFloat(fields[3])
	if err != nil {
		return nil, err
	}
	return &models.Sample{
		DrillholeID: dh.ID,
		DepthFrom:   from,
		DepthTo:     to,
		Element1:    e1,
		Element2:    e2,
	}, nil
}

// DeviationRow maps [From, To, inclination, azimuth].
func DeviationRow(dh *models.Drillhole, fields []string) (any, error) {
	if len(fields) < 4 {
		return nil, fmt.Errorf("expected 4 columns, got %d: %w", len(fields), errs.ErrMalformedRow)
	}
	vals := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := parseFloat(fields[i])
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &models.Deviation{
		DrillholeID: dh.ID,
		DepthFrom:   vals[0],
		DepthTo:     vals[1],
		Inclination: vals[2],
		Azimuth:     vals[3],
	}, nil
}

// LithologyRow maps [From, To, litho_code]; the code must already exist in
// the catalogue.
func LithologyRow(db *gorm.DB) RowFunc {
	return func(dh *models.Drillhole, fields []string) (any, error) {
		if len(fields) < 3 {
			return nil, fmt.Errorf("expected 3 columns, got %d: %w", len(fields), errs.ErrMalformedRow)
		}
		from, err := parseFloat(fields[0])
		if err != nil {
			return nil, err
		}
		to, err := parseFloat(fields[1])
		if err != nil {
			return nil, err
		}
		code := fields[2]
		if err := db.First(&models.Lithology{}, "code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%q: %w", code, errs.ErrUnknownLithology)
			}
			return nil, err
		}
		return &models.LithologyInterval{
			DrillholeID:   dh.ID,
			DepthFrom:     from,
			DepthTo:       to,
			LithologyCode: code,
		}, nil
	}
}

func parseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", raw, errs.ErrMalformedRow)
	}
	return v, nil
}

func parseOptFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := parseFloat(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
