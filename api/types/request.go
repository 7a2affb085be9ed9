package types

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ProjectRequest struct {
	Name     string `json:"name" binding:"required"`
	Comments string `json:"comments"`
}

type DrillholeRequest struct {
	Project     string   `json:"project" binding:"required"`
	HoleID      string   `json:"hole_id" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string   `json:"end_date" binding:"required,datetime=2006-01-02"`
	TeoAzimuth  float64  `json:"teo_azimuth" binding:"gte=0,lte=360"`
	TeoIncl     float64  `json:"teo_incl" binding:"gte=-90,lte=90"`
	RealAzimuth float64  `json:"real_azimuth" binding:"gte=0,lte=360"`
	RealIncl    float64  `json:"real_incl" binding:"gte=-90,lte=90"`
	UTMZone     string   `json:"utm_zone" binding:"required,utmzone"`
	Northing    *float64 `json:"northing" binding:"required,gte=0"`
	Easting     *float64 `json:"easting" binding:"required,gte=0"`
	Elevation   float64  `json:"elevation"`
}

// DrillholeUpdateRequest carries the mutable drillhole fields. A hole
// cannot move between projects, so there is no project field.
type DrillholeUpdateRequest struct {
	HoleID      string   `json:"hole_id" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string   `json:"end_date" binding:"required,datetime=2006-01-02"`
	TeoAzimuth  float64  `json:"teo_azimuth" binding:"gte=0,lte=360"`
	TeoIncl     float64  `json:"teo_incl" binding:"gte=-90,lte=90"`
	RealAzimuth float64  `json:"real_azimuth" binding:"gte=0,lte=360"`
	RealIncl    float64  `json:"real_incl" binding:"gte=-90,lte=90"`
	UTMZone     string   `json:"utm_zone" binding:"required,utmzone"`
	Northing    *float64 `json:"northing" binding:"required,gte=0"`
	Easting     *float64 `json:"easting" binding:"required,gte=0"`
	Elevation   float64  `json:"elevation"`
}

type LithologyRequest struct {
	Code        string `json:"code" binding:"required,max=10"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
