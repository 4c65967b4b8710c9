package parser

import (
	"testing"

	"fieldmap/internal/model"
)

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"현장명":        "현장명",
		" 현장 명 ":      "현장명",
		"Project Name": "projectname",
		"LAT.":         "lat",
		"(합계)":        "합계",
		"---":          "",
	}
	for in, want := range cases {
		if got := NormalizeKey(in); got != want {
			t.Fatalf("NormalizeKey(%q) want=%q got=%q", in, want, got)
		}
	}
}

func TestResolve_CaseAndPunctuationInsensitive(t *testing.T) {
	t.Parallel()

	spellings := []string{"현장명", "현장 명", " 현장명 ", "(현장명)"}
	for _, spelling := range spellings {
		record := model.NewRawRecord()
		record.Set(spelling, "서울역 리모델링")

		v, ok := Resolve(record, Aliases(FieldProjectName))
		if !ok {
			t.Fatalf("spelling %q: expected match", spelling)
		}
		if v != "서울역 리모델링" {
			t.Fatalf("spelling %q: unexpected value %v", spelling, v)
		}
	}
}

func TestResolve_EnglishAliases(t *testing.T) {
	t.Parallel()

	record := model.NewRawRecord()
	record.Set("Project Name", "Terminal B")
	record.Set("Qty", "12")

	if v, ok := Resolve(record, Aliases(FieldProjectName)); !ok || v != "Terminal B" {
		t.Fatalf("project name: ok=%v v=%v", ok, v)
	}
	if v, ok := Resolve(record, Aliases(FieldQuantity)); !ok || v != "12" {
		t.Fatalf("quantity: ok=%v v=%v", ok, v)
	}
}

func TestResolve_FirstDeclaredKeyWins(t *testing.T) {
	t.Parallel()

	// Two headers normalize onto the same alias set; insertion order decides.
	record := model.NewRawRecord()
	record.Set("현장명", "first")
	record.Set("현장 명", "second")

	v, ok := Resolve(record, Aliases(FieldProjectName))
	if !ok {
		t.Fatalf("expected match")
	}
	if v != "first" {
		t.Fatalf("want first-declared key, got %v", v)
	}
}

func TestResolve_NoMatchReturnsAbsent(t *testing.T) {
	t.Parallel()

	record := model.NewRawRecord()
	record.Set("비고", "메모")

	if v, ok := Resolve(record, Aliases(FieldProjectName)); ok || v != nil {
		t.Fatalf("want absent, got ok=%v v=%v", ok, v)
	}
	if _, ok := Resolve(nil, Aliases(FieldProjectName)); ok {
		t.Fatalf("nil record must resolve to absent")
	}
}
