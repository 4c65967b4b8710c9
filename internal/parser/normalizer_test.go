package parser

import (
	"testing"

	"fieldmap/internal/model"
)

func rawRow(cells map[string]any, order []string) *model.RawRecord {
	record := model.NewRawRecord()
	for _, key := range order {
		record.Set(key, cells[key])
	}
	return record
}

func TestNormalize_DropsRowsWithoutProjectName(t *testing.T) {
	t.Parallel()

	order := []string{"현장명", "연도", "월", "위도", "경도", "합계"}
	row := rawRow(map[string]any{
		"현장명": "",
		"연도":  "2024",
		"월":   "3",
		"위도":  "37.1",
		"경도":  "127.1",
		"합계":  "500",
	}, order)

	result := Normalize([]*model.RawRecord{row})
	if len(result.Records) != 0 {
		t.Fatalf("want 0 records, got %d", len(result.Records))
	}
	if result.DroppedRows != 1 || result.TotalRows != 1 {
		t.Fatalf("unexpected accounting: dropped=%d total=%d", result.DroppedRows, result.TotalRows)
	}
}

func TestNormalize_FullRow(t *testing.T) {
	t.Parallel()

	order := []string{"현장명", "연도", "월", "진행상태", "주소", "위도", "경도", "설계사", "시공사", "제품명", "수량", "합계"}
	row := rawRow(map[string]any{
		"현장명":  "서울역 리모델링",
		"연도":   "2024",
		"월":    "11",
		"진행상태": "시공중",
		"주소":   "서울특별시 중구 세종대로 110",
		"위도":   "37.5665",
		"경도":   "126.9780",
		"설계사":  "정림건축",
		"시공사":  "대림산업",
		"제품명":  "방화문 A형",
		"수량":   "24",
		"합계":   "1,200,000",
	}, order)

	result := Normalize([]*model.RawRecord{row})
	if len(result.Records) != 1 {
		t.Fatalf("want 1 record, got %d", len(result.Records))
	}

	r := result.Records[0]
	if r.ID == "" {
		t.Fatalf("missing record id")
	}
	if r.ProjectName != "서울역 리모델링" || r.Year != 2024 || r.Month != 11 {
		t.Fatalf("unexpected identity fields: %+v", r)
	}
	if !r.HasCoordinates() || *r.Latitude != 37.5665 || *r.Longitude != 126.978 {
		t.Fatalf("unexpected coordinates: %+v", r)
	}
	if r.Quantity != 24 || r.SpecAmount != 1200000 {
		t.Fatalf("unexpected measures: qty=%v amount=%v", r.Quantity, r.SpecAmount)
	}
}

func TestNormalize_DefaultsWhenAbsent(t *testing.T) {
	t.Parallel()

	row := rawRow(map[string]any{"현장명": "부산 물류센터"}, []string{"현장명"})

	result := Normalize([]*model.RawRecord{row})
	if len(result.Records) != 1 {
		t.Fatalf("want 1 record, got %d", len(result.Records))
	}

	r := result.Records[0]
	if r.Year != 0 || r.Month != 0 {
		t.Fatalf("unparsable year/month must default to 0: %+v", r)
	}
	for name, got := range map[string]string{
		"progress":    r.Progress,
		"address":     r.Address,
		"designer":    r.Designer,
		"constructor": r.Constructor,
		"product":     r.ProductName,
	} {
		if got != model.Placeholder {
			t.Fatalf("%s want placeholder, got %q", name, got)
		}
	}
	if r.HasCoordinates() {
		t.Fatalf("coordinates must be absent")
	}
}

func TestNormalize_PartialCoordinateForcesBothAbsent(t *testing.T) {
	t.Parallel()

	order := []string{"현장명", "위도", "경도"}

	latOnly := rawRow(map[string]any{"현장명": "A", "위도": "37.5", "경도": "없음"}, order)
	lonOnly := rawRow(map[string]any{"현장명": "B", "위도": "", "경도": "127.0"}, order)

	result := Normalize([]*model.RawRecord{latOnly, lonOnly})
	if len(result.Records) != 2 {
		t.Fatalf("want 2 records, got %d", len(result.Records))
	}
	for _, r := range result.Records {
		if (r.Latitude == nil) != (r.Longitude == nil) {
			t.Fatalf("record %s: coordinate pairing violated: %+v", r.ProjectName, r)
		}
		if r.HasCoordinates() {
			t.Fatalf("record %s: want both coordinates absent", r.ProjectName)
		}
	}
}

func TestNormalize_UniqueIDs(t *testing.T) {
	t.Parallel()

	rows := []*model.RawRecord{
		rawRow(map[string]any{"현장명": "A"}, []string{"현장명"}),
		rawRow(map[string]any{"현장명": "A"}, []string{"현장명"}),
	}
	result := Normalize(rows)
	if len(result.Records) != 2 {
		t.Fatalf("want 2 records, got %d", len(result.Records))
	}
	if result.Records[0].ID == result.Records[1].ID {
		t.Fatalf("record ids must be unique per run")
	}
}
