package parser

// Field is a canonical record field name.
type Field string

const (
	FieldProjectName Field = "project_name"
	FieldYear        Field = "year"
	FieldMonth       Field = "month"
	FieldProgress    Field = "progress"
	FieldAddress     Field = "address"
	FieldLatitude    Field = "latitude"
	FieldLongitude   Field = "longitude"
	FieldDesigner    Field = "designer"
	FieldConstructor Field = "constructor"
	FieldProductName Field = "product_name"
	FieldQuantity    Field = "quantity"
	FieldSpecAmount  Field = "spec_amount"
)

// fieldAliases maps each canonical field to its closed list of recognized
// header spellings. Matching is insensitive to case, spacing and punctuation
// (see NormalizeKey), so spellings here are the human forms seen in uploads.
var fieldAliases = map[Field][]string{
	FieldProjectName: {"현장명", "현장 명", "현장", "프로젝트명", "프로젝트", "공사명", "사업명", "site name", "site", "project name", "project"},
	FieldYear:        {"연도", "년도", "년", "year"},
	FieldMonth:       {"월", "납품월", "month"},
	FieldProgress:    {"진행상태", "진행현황", "진행", "상태", "progress", "status"},
	FieldAddress:     {"주소", "현장주소", "소재지", "위치", "address", "location"},
	FieldLatitude:    {"위도", "latitude", "lat"},
	FieldLongitude:   {"경도", "longitude", "lon", "lng"},
	FieldDesigner:    {"설계사", "설계사무소", "설계", "designer", "design firm"},
	FieldConstructor: {"시공사", "시공", "건설사", "constructor", "builder", "contractor"},
	FieldProductName: {"제품명", "품명", "제품", "자재명", "product name", "product", "item"},
	FieldQuantity:    {"수량", "물량", "quantity", "qty"},
	FieldSpecAmount:  {"합계", "금액", "사양금액", "납품금액", "spec amount", "amount", "total"},
}

// Aliases returns the recognized header spellings for a canonical field.
func Aliases(field Field) []string {
	return fieldAliases[field]
}
