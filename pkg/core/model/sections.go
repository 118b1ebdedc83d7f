package model

// Section is one of the four fixed reporting buckets every event category maps onto.
type Section string

const (
	SectionAreaBased1 Section = "Area Based - 1"
	SectionAreaBased2 Section = "Area Based - 2"
	SectionUniversity Section = "University Based"
	SectionCollege    Section = "College Based"
)

// SectionOrder is the fixed emission order of report sections.
var SectionOrder = []Section{
	SectionAreaBased1,
	SectionAreaBased2,
	SectionUniversity,
	SectionCollege,
}

// sectionByCategoryCode is the static category -> section lookup. It is not
// stored per participation row; the category code alone decides the bucket.
var sectionByCategoryCode = map[string]Section{
	"area_based_1":     SectionAreaBased1,
	"village_adoption": SectionAreaBased1,
	"area_based_2":     SectionAreaBased2,
	"community_drive":  SectionAreaBased2,
	"university_based": SectionUniversity,
	"university_event": SectionUniversity,
	"college_based":    SectionCollege,
	"college_event":    SectionCollege,
}

// SectionForCategory maps a category code to its report section. Unknown
// codes fall back to College Based so no event silently drops out of the report.
func SectionForCategory(code string) Section {
	if s, ok := sectionByCategoryCode[code]; ok {
		return s
	}
	return SectionCollege
}
