package food

// Placeholder texts carried by Defaulted fields when the API omits them.
const (
	NoNutrientData        = "No Nutrient Data for Item"
	NoPublicationData     = "No Publication Data for Item"
	NoDataSource          = "No data source available"
	NoFoodClass           = "Food class is undefined"
	NoHouseholdServing    = "House serving text is undefined"
	NoIngredients         = "No ingredients available"
	NoServingSize         = "No Serving Size defined"
	NoBrandedCategory     = "No category defined"
	NoFoodCategory        = "No FoodCategory defined"
	NoFoodComponents      = "No FoodComponents defined"
	NoFoodPortions        = "No FoodPortions defined"
	NoFoundationInputFood = "No InputFoods defined"
)

// FoodItem is the base record shared by every food variant.
type FoodItem struct {
	FdcID       int      `json:"fdcId"       yaml:"fdcId"`
	DataType    DataType `json:"dataType"    yaml:"dataType"`
	Description string   `json:"description" yaml:"description"`
}

// Base returns the record itself so that embedding variants satisfy [Food].
func (f FoodItem) Base() FoodItem { return f }

func (f FoodItem) baseFields() Fields {
	return Fields{
		{"fdcId", f.FdcID},
		{"dataType", f.DataType},
		{"description", f.Description},
	}
}

// Food is any mapped food record. Switch on Kind, or use a type switch, to
// reach the concrete variant.
type Food interface {
	Fielder
	Base() FoodItem
	Kind() Kind
}

var (
	_ Food = AbridgedFoodItem{}
	_ Food = SearchResultFoodItem{}
	_ Food = BrandedFoodItem{}
	_ Food = FoundationFoodItem{}
	_ Food = SRLegacyFoodItem{}
	_ Food = SurveyFoodItem{}
	_ Food = SampleFoodItem{}
)

// AbridgedFoodItem is the compact food shape returned by abridged reports
// and the list endpoint. Brand and GtinUpc are set only for Branded foods,
// NdbID only for Foundation and SR Legacy, FoodCode only for Survey foods.
type AbridgedFoodItem struct {
	FoodItem `yaml:",inline"`

	Nutrients       Defaulted[[]AbridgedFoodNutrient] `json:"foodNutrients"       yaml:"foodNutrients"`
	PublicationDate Defaulted[string]                 `json:"publicationDate"     yaml:"publicationDate"`
	Brand           *string                           `json:"brandOwner,omitempty" yaml:"brandOwner,omitempty"`
	GtinUpc         *string                           `json:"gtinUpc,omitempty"   yaml:"gtinUpc,omitempty"`
	NdbID           *string                           `json:"ndbNumber,omitempty" yaml:"ndbNumber,omitempty"`
	FoodCode        *string                           `json:"foodCode,omitempty"  yaml:"foodCode,omitempty"`
}

func (AbridgedFoodItem) Kind() Kind { return KindAbridged }

func (f AbridgedFoodItem) Fields() Fields {
	return append(f.baseFields(),
		Field{"nutrients", f.Nutrients},
		Field{"publicationDate", f.PublicationDate},
		Field{"brand", opt(f.Brand)},
		Field{"gtinUpc", opt(f.GtinUpc)},
		Field{"ndbId", opt(f.NdbID)},
		Field{"foodCode", opt(f.FoodCode)},
	)
}

func (f AbridgedFoodItem) String() string {
	if f.Brand != nil {
		return *f.Brand + ": " + f.Description
	}

	return f.Description
}

// SearchResultFoodItem is an abridged food carrying search relevance data.
type SearchResultFoodItem struct {
	AbridgedFoodItem `yaml:",inline"`

	ScientificName         *string  `json:"scientificName,omitempty"         yaml:"scientificName,omitempty"`
	AdditionalDescriptions *string  `json:"additionalDescriptions,omitempty" yaml:"additionalDescriptions,omitempty"`
	AllHighlightFields     *string  `json:"allHighlightFields,omitempty"     yaml:"allHighlightFields,omitempty"`
	Score                  *float64 `json:"score,omitempty"                  yaml:"score,omitempty"`
}

func (SearchResultFoodItem) Kind() Kind { return KindSearchResult }

func (f SearchResultFoodItem) Fields() Fields {
	return append(f.AbridgedFoodItem.Fields(),
		Field{"scientificName", opt(f.ScientificName)},
		Field{"additionalDescriptions", opt(f.AdditionalDescriptions)},
		Field{"allHighlightFields", opt(f.AllHighlightFields)},
		Field{"score", opt(f.Score)},
	)
}

// BrandedFoodItem is the full report of a branded, label-based food.
type BrandedFoodItem struct {
	FoodItem `yaml:",inline"`

	Nutrients        []FoodNutrient     `json:"foodNutrients"               yaml:"foodNutrients"`
	Brand            string             `json:"brandOwner"                  yaml:"brandOwner"`
	GtinUpc          string             `json:"gtinUpc"                     yaml:"gtinUpc"`
	UpdateLog        []FoodUpdateLog    `json:"foodUpdateLog,omitempty"     yaml:"foodUpdateLog,omitempty"`
	LabelNutrients   LabeledNutrients   `json:"labelNutrients"              yaml:"labelNutrients"`
	DataSource       Defaulted[string]  `json:"dataSource"                  yaml:"dataSource"`
	FoodClass        Defaulted[string]  `json:"foodClass"                   yaml:"foodClass"`
	HouseholdServing Defaulted[string]  `json:"householdServingFullText"    yaml:"householdServingFullText"`
	Ingredients      Defaulted[string]  `json:"ingredients"                 yaml:"ingredients"`
	ModifiedDate     *string            `json:"modifiedDate,omitempty"      yaml:"modifiedDate,omitempty"`
	PublicationDate  *string            `json:"publicationDate,omitempty"   yaml:"publicationDate,omitempty"`
	ServingSize      Defaulted[float64] `json:"servingSize"                 yaml:"servingSize"`
	ServingSizeUnit  *string            `json:"servingSizeUnit,omitempty"   yaml:"servingSizeUnit,omitempty"`
	Category         Defaulted[string]  `json:"brandedFoodCategory"         yaml:"brandedFoodCategory"`
	AvailableDate    *string            `json:"availableDate,omitempty"     yaml:"availableDate,omitempty"`
}

func (BrandedFoodItem) Kind() Kind { return KindBranded }

func (f BrandedFoodItem) Fields() Fields {
	return append(f.baseFields(),
		Field{"nutrients", recordList(f.Nutrients)},
		Field{"brand", f.Brand},
		Field{"gtinUpc", f.GtinUpc},
		Field{"updateLog", recordList(f.UpdateLog)},
		Field{"labelNutrients", f.LabelNutrients.Fields()},
		Field{"dataSource", f.DataSource},
		Field{"foodClass", f.FoodClass},
		Field{"householdServing", f.HouseholdServing},
		Field{"ingredients", f.Ingredients},
		Field{"modifiedDate", opt(f.ModifiedDate)},
		Field{"publicationDate", opt(f.PublicationDate)},
		Field{"servingSize", f.ServingSize},
		Field{"servingSizeUnit", opt(f.ServingSizeUnit)},
		Field{"category", f.Category},
		Field{"availableDate", opt(f.AvailableDate)},
	)
}

func (f BrandedFoodItem) String() string {
	return f.Brand + ": " + f.Description
}

// FoundationFoodItem is the full report of a Foundation food.
type FoundationFoodItem struct {
	FoodItem `yaml:",inline"`

	Nutrients             []FoodNutrient                   `json:"foodNutrients,omitempty"            yaml:"foodNutrients,omitempty"`
	FoodClass             Defaulted[string]                `json:"foodClass"                          yaml:"foodClass"`
	FootNote              *string                          `json:"footNote,omitempty"                 yaml:"footNote,omitempty"`
	IsHistoricalReference bool                             `json:"isHistoricalReference"              yaml:"isHistoricalReference"`
	NdbID                 *string                          `json:"ndbNumber,omitempty"                yaml:"ndbNumber,omitempty"`
	PublicationDate       *string                          `json:"publicationDate,omitempty"          yaml:"publicationDate,omitempty"`
	ScientificName        *string                          `json:"scientificName,omitempty"           yaml:"scientificName,omitempty"`
	Category              Defaulted[FoodCategory]          `json:"foodCategory"                       yaml:"foodCategory"`
	Components            Defaulted[[]FoodComponent]       `json:"foodComponents"                     yaml:"foodComponents"`
	Portions              Defaulted[[]FoodPortion]         `json:"foodPortions"                       yaml:"foodPortions"`
	InputFoods            Defaulted[[]InputFoodFoundation] `json:"inputFoods"                         yaml:"inputFoods"`
	ConversionFactors     []NutrientConversionFactor       `json:"nutrientConversionFactors,omitempty" yaml:"nutrientConversionFactors,omitempty"`
}

func (FoundationFoodItem) Kind() Kind { return KindFoundation }

func (f FoundationFoodItem) Fields() Fields {
	return append(f.baseFields(),
		Field{"nutrients", recordList(f.Nutrients)},
		Field{"foodClass", f.FoodClass},
		Field{"footNote", opt(f.FootNote)},
		Field{"isHistoricalReference", f.IsHistoricalReference},
		Field{"ndbId", opt(f.NdbID)},
		Field{"publicationDate", opt(f.PublicationDate)},
		Field{"scientificName", opt(f.ScientificName)},
		Field{"category", f.Category},
		Field{"components", f.Components},
		Field{"portions", f.Portions},
		Field{"inputFoods", f.InputFoods},
		Field{"conversionFactors", recordList(f.ConversionFactors)},
	)
}

func (f FoundationFoodItem) String() string { return f.Description }

// SRLegacyFoodItem is the full report of a Standard Reference Legacy food.
type SRLegacyFoodItem struct {
	FoodItem `yaml:",inline"`

	Nutrients             []FoodNutrient             `json:"foodNutrients,omitempty"             yaml:"foodNutrients,omitempty"`
	Portions              []FoodPortion              `json:"foodPortions,omitempty"              yaml:"foodPortions,omitempty"`
	FoodClass             Defaulted[string]          `json:"foodClass"                           yaml:"foodClass"`
	IsHistoricalReference bool                       `json:"isHistoricalReference"               yaml:"isHistoricalReference"`
	NdbID                 *string                    `json:"ndbNumber,omitempty"                 yaml:"ndbNumber,omitempty"`
	PublicationDate       *string                    `json:"publicationDate,omitempty"           yaml:"publicationDate,omitempty"`
	ScientificName        *string                    `json:"scientificName,omitempty"            yaml:"scientificName,omitempty"`
	Category              Defaulted[FoodCategory]    `json:"foodCategory"                        yaml:"foodCategory"`
	ConversionFactors     []NutrientConversionFactor `json:"nutrientConversionFactors,omitempty" yaml:"nutrientConversionFactors,omitempty"`
}

func (SRLegacyFoodItem) Kind() Kind { return KindSRLegacy }

func (f SRLegacyFoodItem) Fields() Fields {
	return append(f.baseFields(),
		Field{"nutrients", recordList(f.Nutrients)},
		Field{"portions", recordList(f.Portions)},
		Field{"foodClass", f.FoodClass},
		Field{"isHistoricalReference", f.IsHistoricalReference},
		Field{"ndbId", opt(f.NdbID)},
		Field{"publicationDate", opt(f.PublicationDate)},
		Field{"scientificName", opt(f.ScientificName)},
		Field{"category", f.Category},
		Field{"conversionFactors", recordList(f.ConversionFactors)},
	)
}

func (f SRLegacyFoodItem) String() string { return f.Description }

// SurveyFoodItem is the full report of a survey (FNDDS) food.
type SurveyFoodItem struct {
	FoodItem `yaml:",inline"`

	Nutrients       []FoodNutrient     `json:"foodNutrients,omitempty"     yaml:"foodNutrients,omitempty"`
	EndDate         *string            `json:"endDate,omitempty"           yaml:"endDate,omitempty"`
	FoodClass       *string            `json:"foodClass,omitempty"         yaml:"foodClass,omitempty"`
	FoodCode        *string            `json:"foodCode,omitempty"          yaml:"foodCode,omitempty"`
	PublicationDate *string            `json:"publicationDate,omitempty"   yaml:"publicationDate,omitempty"`
	StartDate       *string            `json:"startDate,omitempty"         yaml:"startDate,omitempty"`
	Attributes      []FoodAttribute    `json:"foodAttributes,omitempty"    yaml:"foodAttributes,omitempty"`
	Portions        []FoodPortion      `json:"foodPortions,omitempty"      yaml:"foodPortions,omitempty"`
	InputFoods      []InputFoodSurvey  `json:"inputFoods,omitempty"        yaml:"inputFoods,omitempty"`
	WWeiaCategory   *WWeiaFoodCategory `json:"wweiaFoodCategory,omitempty" yaml:"wweiaFoodCategory,omitempty"`
}

func (SurveyFoodItem) Kind() Kind { return KindSurvey }

func (f SurveyFoodItem) Fields() Fields {
	return append(f.baseFields(),
		Field{"nutrients", recordList(f.Nutrients)},
		Field{"endDate", opt(f.EndDate)},
		Field{"foodClass", opt(f.FoodClass)},
		Field{"foodCode", opt(f.FoodCode)},
		Field{"publicationDate", opt(f.PublicationDate)},
		Field{"startDate", opt(f.StartDate)},
		Field{"attributes", recordList(f.Attributes)},
		Field{"portions", recordList(f.Portions)},
		Field{"inputFoods", recordList(f.InputFoods)},
		Field{"wweiaCategory", optRecord(f.WWeiaCategory)},
	)
}

func (f SurveyFoodItem) String() string { return f.Description }

// SampleFoodItem is a lab sample that feeds a Foundation food.
type SampleFoodItem struct {
	FoodItem `yaml:",inline"`

	FoodClass       *string         `json:"foodClass,omitempty"       yaml:"foodClass,omitempty"`
	PublicationDate *string         `json:"publicationDate,omitempty" yaml:"publicationDate,omitempty"`
	Attributes      []FoodAttribute `json:"foodAttributes,omitempty"  yaml:"foodAttributes,omitempty"`
}

func (SampleFoodItem) Kind() Kind { return KindSample }

func (f SampleFoodItem) Fields() Fields {
	return append(f.baseFields(),
		Field{"foodClass", opt(f.FoodClass)},
		Field{"publicationDate", opt(f.PublicationDate)},
		Field{"attributes", recordList(f.Attributes)},
	)
}

func (f SampleFoodItem) String() string { return f.Description }
