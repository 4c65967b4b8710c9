package model

// Placeholder marks an absent text field on a canonical record.
const Placeholder = "-"

// CatchAllBucket is the ranking bucket used when an entity field holds the placeholder.
const CatchAllBucket = "기타"

// Sentinel filter values meaning "all years" / "all months".
const (
	YearAll  = 0
	MonthAll = 0
)

// RawRecord is one decoded spreadsheet row: arbitrary header keys in source
// column order mapped to untyped cell values. Key order is preserved so that
// alias resolution is deterministic when several headers normalize alike.
type RawRecord struct {
	keys   []string
	values map[string]any
}

// NewRawRecord creates an empty raw record.
func NewRawRecord() *RawRecord {
	return &RawRecord{
		values: make(map[string]any),
	}
}

// Set stores a cell value under the given header key.
// Setting an existing key overwrites the value but keeps its original position.
func (r *RawRecord) Set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Keys returns the header keys in source column order.
func (r *RawRecord) Keys() []string {
	return r.keys
}

// Value returns the cell value for a header key.
func (r *RawRecord) Value(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of cells in the row.
func (r *RawRecord) Len() int {
	return len(r.keys)
}

// CanonicalRecord is one normalized procurement/delivery line item.
// Created once during normalization; only the coordinate pair may be filled
// in afterwards by enrichment.
type CanonicalRecord struct {
	ID          string   `json:"id"`
	ProjectName string   `json:"projectName"`
	Year        int      `json:"year"`
	Month       int      `json:"month"`
	Progress    string   `json:"progress"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Designer    string   `json:"designer"`
	Constructor string   `json:"constructor"`
	ProductName string   `json:"productName"`
	Quantity    float64  `json:"quantity"`
	SpecAmount  float64  `json:"specAmount"`
}

// HasCoordinates reports whether both coordinates are present.
// Latitude and longitude are always set or cleared together.
func (r *CanonicalRecord) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// SetCoordinates fills both coordinates at once.
func (r *CanonicalRecord) SetCoordinates(lat, lon float64) {
	r.Latitude = &lat
	r.Longitude = &lon
}

// ClearCoordinates drops both coordinates at once.
func (r *CanonicalRecord) ClearCoordinates() {
	r.Latitude = nil
	r.Longitude = nil
}
