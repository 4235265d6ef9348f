package food

// DataType is the provenance category of a food record.
type DataType string

const (
	DataTypeFoundation DataType = "Foundation"
	DataTypeSRLegacy   DataType = "SR Legacy"
	DataTypeBranded    DataType = "Branded"
	DataTypeSurvey     DataType = "Survey (FNDDS)"

	// DataTypeSurveyShort is the short survey tag some payloads carry.
	// It is accepted when mapping but not sent as a filter.
	DataTypeSurveyShort DataType = "Survey"

	// DataTypeSample tags sample records nested inside Foundation input foods.
	DataTypeSample DataType = "Sample"
)

// IsValid reports whether d is accepted by the API as a dataType filter.
func (d DataType) IsValid() bool {
	switch d {
	case DataTypeFoundation, DataTypeSRLegacy, DataTypeBranded, DataTypeSurvey:
		return true
	default:
		return false
	}
}

// IsSurvey reports whether d is either spelling of the survey tag.
func (d DataType) IsSurvey() bool {
	return d == DataTypeSurvey || d == DataTypeSurveyShort
}

func (d DataType) String() string {
	return string(d)
}

// SupportedDataTypes returns the filterable data types.
func SupportedDataTypes() []DataType {
	return []DataType{DataTypeFoundation, DataTypeSRLegacy, DataTypeBranded, DataTypeSurvey}
}

// ReportFormat selects the detail level of a food report.
type ReportFormat string

const (
	FormatAbridged ReportFormat = "abridged"
	FormatFull     ReportFormat = "full"
)

// IsValid reports whether f is a known report format.
func (f ReportFormat) IsValid() bool {
	return f == FormatAbridged || f == FormatFull
}

func (f ReportFormat) String() string {
	return string(f)
}

// Sorting is a sort field accepted by the list and search endpoints.
type Sorting string

const (
	SortByDataType      Sorting = "dataType.keyword"
	SortByDescription   Sorting = "lowercaseDescription.keyword"
	SortByFdcID         Sorting = "fdcId"
	SortByPublishedDate Sorting = "publishedDate"
)

// IsValid reports whether s is a known sort field.
func (s Sorting) IsValid() bool {
	switch s {
	case SortByDataType, SortByDescription, SortByFdcID, SortByPublishedDate:
		return true
	default:
		return false
	}
}

func (s Sorting) String() string {
	return string(s)
}

// ParseSorting maps a short name (dataType, description, fdcId,
// publishedDate) or a raw sort field to a Sorting.
func ParseSorting(name string) (Sorting, bool) {
	switch name {
	case "dataType":
		return SortByDataType, true
	case "description":
		return SortByDescription, true
	case "fdcId":
		return SortByFdcID, true
	case "publishedDate", "pubDate":
		return SortByPublishedDate, true
	}

	s := Sorting(name)

	return s, s.IsValid()
}

// Kind identifies the concrete record type behind a [Food].
type Kind string

const (
	KindAbridged     Kind = "abridged"
	KindSearchResult Kind = "search_result"
	KindBranded      Kind = "branded"
	KindFoundation   Kind = "foundation"
	KindSRLegacy     Kind = "sr_legacy"
	KindSurvey       Kind = "survey"
	KindSample       Kind = "sample"
)
