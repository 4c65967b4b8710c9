package parser

import (
	"github.com/google/uuid"

	"fieldmap/internal/model"
)

// NormalizeResult carries the canonical set plus row accounting for the report.
type NormalizeResult struct {
	Records     []*model.CanonicalRecord
	TotalRows   int
	DroppedRows int // rows without a project name
}

// Normalize maps raw rows onto canonical records via the alias table.
// The sole filtering rule at this stage: a row whose project name coerces to
// empty is dropped. A parse failure on either coordinate forces both absent.
func Normalize(rawRecords []*model.RawRecord) NormalizeResult {
	result := NormalizeResult{
		Records:   make([]*model.CanonicalRecord, 0, len(rawRecords)),
		TotalRows: len(rawRecords),
	}

	for _, raw := range rawRecords {
		record := normalizeOne(raw)
		if record == nil {
			result.DroppedRows++
			continue
		}
		result.Records = append(result.Records, record)
	}
	return result
}

// normalizeOne builds one canonical record, or nil when the row has no project name.
func normalizeOne(raw *model.RawRecord) *model.CanonicalRecord {
	nameRaw, _ := ResolveField(raw, FieldProjectName)
	name := ToText(nameRaw, "")
	if name == "" {
		return nil
	}

	yearRaw, _ := ResolveField(raw, FieldYear)
	monthRaw, _ := ResolveField(raw, FieldMonth)
	progressRaw, _ := ResolveField(raw, FieldProgress)
	addressRaw, _ := ResolveField(raw, FieldAddress)
	designerRaw, _ := ResolveField(raw, FieldDesigner)
	constructorRaw, _ := ResolveField(raw, FieldConstructor)
	productRaw, _ := ResolveField(raw, FieldProductName)
	quantityRaw, _ := ResolveField(raw, FieldQuantity)
	amountRaw, _ := ResolveField(raw, FieldSpecAmount)

	record := &model.CanonicalRecord{
		ID:          uuid.NewString(),
		ProjectName: name,
		Year:        int(ToNumber(yearRaw)),
		Month:       int(ToNumber(monthRaw)),
		Progress:    ToText(progressRaw, model.Placeholder),
		Address:     ToText(addressRaw, model.Placeholder),
		Designer:    ToText(designerRaw, model.Placeholder),
		Constructor: ToText(constructorRaw, model.Placeholder),
		ProductName: ToText(productRaw, model.Placeholder),
		Quantity:    ToNumber(quantityRaw),
		SpecAmount:  ToNumber(amountRaw),
	}

	// Coordinates are paired: if either fails to parse, both stay absent.
	latRaw, _ := ResolveField(raw, FieldLatitude)
	lonRaw, _ := ResolveField(raw, FieldLongitude)
	lat, latOK := ToFloat(latRaw)
	lon, lonOK := ToFloat(lonRaw)
	if latOK && lonOK {
		record.SetCoordinates(lat, lon)
	}

	return record
}
