package acl

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// External DTOs for FoodData Central payloads. Never exposed outside the ACL.
// Pointer fields distinguish an absent key from a zero value.

// flexString decodes a JSON string or number into text. FDC sends codes
// such as ndbNumber and gtinUpc either way depending on the endpoint.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}

		*s = flexString(v)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}

	*s = flexString(n.String())

	return nil
}

// oneOrMany decodes either a single object or an array of objects.
type oneOrMany[T any] []T

func (o *oneOrMany[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}

		*o = items

		return nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}

	*o = []T{item}

	return nil
}

// labelValue decodes a label amount given as a bare number or {"value": n}.
type labelValue struct {
	Value *float64
}

func (l *labelValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			Value *float64 `json:"value"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}

		l.Value = wrapped.Value

		return nil
	}

	return json.Unmarshal(data, &l.Value)
}

type foodItemDTO struct {
	FdcID       *int    `json:"fdcId"`
	DataType    *string `json:"dataType"`
	Description *string `json:"description"`
}

type abridgedNutrientDTO struct {
	Number                *flexString `json:"number"`
	NutrientNumber        *flexString `json:"nutrientNumber"`
	Name                  *string     `json:"name"`
	NutrientName          *string     `json:"nutrientName"`
	Amount                *float64    `json:"amount"`
	Value                 *float64    `json:"value"`
	UnitName              *string     `json:"unitName"`
	DerivationCode        *flexString `json:"derivationCode"`
	DerivationDescription *string     `json:"derivationDescription"`
}

type nutrientDTO struct {
	ID             *int        `json:"id"`
	NutrientID     *int        `json:"nutrientId"`
	Number         *flexString `json:"number"`
	NutrientNumber *flexString `json:"nutrientNumber"`
	Name           *string     `json:"name"`
	NutrientName   *string     `json:"nutrientName"`
	Rank           *int        `json:"rank"`
	UnitName       *string     `json:"unitName"`
}

type nutrientSourceDTO struct {
	ID          *int        `json:"id"`
	Code        *flexString `json:"code"`
	Description *string     `json:"description"`
}

type nutrientDerivationDTO struct {
	ID          *int               `json:"id"`
	Code        *flexString        `json:"code"`
	Description *string            `json:"description"`
	Source      *nutrientSourceDTO `json:"foodNutrientSource"`
}

type acquisitionDetailsDTO struct {
	SampleUnitID *int    `json:"sampleUnitId"`
	PurchaseDate *string `json:"purchaseDate"`
	StoreCity    *string `json:"storeCity"`
	StoreState   *string `json:"storeState"`
}

type analysisDetailsDTO struct {
	SubSampleID                  *int                             `json:"subSampleId"`
	Amount                       *float64                         `json:"amount"`
	NutrientID                   *int                             `json:"nutrientId"`
	LabMethodDescription         *string                          `json:"labMethodDescription"`
	LabMethodOriginalDescription *string                          `json:"labMethodOriginalDescription"`
	LabMethodTechnique           *string                          `json:"labMethodTechnique"`
	AcquisitionDetails           oneOrMany[acquisitionDetailsDTO] `json:"nutrientAcquisitionDetails"`
}

type foodNutrientDTO struct {
	ID              *int                          `json:"id"`
	Amount          *float64                      `json:"amount"`
	DataPoints      *int                          `json:"dataPoints"`
	Min             *float64                      `json:"min"`
	Max             *float64                      `json:"max"`
	Median          *float64                      `json:"median"`
	Type            *string                       `json:"type"`
	Nutrient        *nutrientDTO                  `json:"nutrient"`
	Derivation      *nutrientDerivationDTO        `json:"foodNutrientDerivation"`
	AnalysisDetails oneOrMany[analysisDetailsDTO] `json:"nutrientAnalysisDetails"`
}

type labelNutrientsDTO struct {
	Fat           *labelValue `json:"fat"`
	SaturatedFat  *labelValue `json:"saturatedFat"`
	TransFat      *labelValue `json:"transFat"`
	Cholesterol   *labelValue `json:"cholesterol"`
	Sodium        *labelValue `json:"sodium"`
	Carbohydrates *labelValue `json:"carbohydrates"`
	Fiber         *labelValue `json:"fiber"`
	Sugars        *labelValue `json:"sugars"`
	Protein       *labelValue `json:"protein"`
	Calcium       *labelValue `json:"calcium"`
	Iron          *labelValue `json:"iron"`
	Potassium     *labelValue `json:"potassium"`
	Calories      *labelValue `json:"calories"`
}

type conversionFactorDTO struct {
	ID                *int     `json:"id"`
	Name              *string  `json:"name"`
	Type              *string  `json:"type"`
	Value             *float64 `json:"value"`
	ProteinValue      *float64 `json:"proteinValue"`
	CarbohydrateValue *float64 `json:"carbohydrateValue"`
	FatValue          *float64 `json:"fatValue"`
}

type foodCategoryDTO struct {
	ID          *int        `json:"id"`
	Code        *flexString `json:"code"`
	Description *string     `json:"description"`
}

type foodComponentDTO struct {
	ID              *int     `json:"id"`
	Name            *string  `json:"name"`
	DataPoints      *int     `json:"dataPoints"`
	GramWeight      *float64 `json:"gramWeight"`
	IsRefuse        *bool    `json:"isRefuse"`
	MinYearAcquired *int     `json:"minYearAcquired"`
	PercentWeight   *float64 `json:"percentWeight"`
}

type measureUnitDTO struct {
	ID           *int        `json:"id"`
	Abbreviation *flexString `json:"abbreviation"`
	Name         *string     `json:"name"`
}

type foodPortionDTO struct {
	ID                 *int            `json:"id"`
	Amount             *float64        `json:"amount"`
	DataPoints         *int            `json:"dataPoints"`
	GramWeight         *float64        `json:"gramWeight"`
	MinYearAcquired    *int            `json:"minYearAcquired"`
	Modifier           *flexString     `json:"modifier"`
	PortionDescription *string         `json:"portionDescription"`
	SequenceNumber     *int            `json:"sequenceNumber"`
	MeasureUnit        *measureUnitDTO `json:"measureUnit"`
}

type foodAttributeTypeDTO struct {
	ID          *int    `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type foodAttributeDTO struct {
	ID             *int                  `json:"id"`
	SequenceNumber *int                  `json:"sequenceNumber"`
	Value          *flexString           `json:"value"`
	Type           *foodAttributeTypeDTO `json:"foodAttributeType"`
	LegacyType     *foodAttributeTypeDTO `json:"FoodAttributeType"`
}

type foodUpdateLogDTO struct {
	FdcID            *int               `json:"fdcId"`
	AvailableDate    *string            `json:"availableDate"`
	BrandOwner       *string            `json:"brandOwner"`
	DataSource       *string            `json:"dataSource"`
	DataType         *string            `json:"dataType"`
	Description      *string            `json:"description"`
	FoodClass        *string            `json:"foodClass"`
	GtinUpc          *flexString        `json:"gtinUpc"`
	HouseholdServing *string            `json:"householdServingFullText"`
	Ingredients      *string            `json:"ingredients"`
	ModifiedDate     *string            `json:"modifiedDate"`
	PublicationDate  *string            `json:"publicationDate"`
	ServingSize      *float64           `json:"servingSize"`
	ServingSizeUnit  *string            `json:"servingSizeUnit"`
	Category         *string            `json:"brandedFoodCategory"`
	Changes          *string            `json:"changes"`
	Attributes       []foodAttributeDTO `json:"foodAttributes"`
}

type wweiaCategoryDTO struct {
	Code        *int    `json:"wweiaFoodCategoryCode"`
	Description *string `json:"wweiaFoodCategoryDescription"`
}

type retentionFactorDTO struct {
	ID          *int        `json:"id"`
	Code        *flexString `json:"code"`
	Description *string     `json:"description"`
}

type inputFoodFoundationDTO struct {
	ID              *int           `json:"id"`
	FoodDescription *string        `json:"foodDescription"`
	InputFood       *sampleFoodDTO `json:"inputFood"`
}

type inputFoodSurveyDTO struct {
	ID                    *int                `json:"id"`
	Amount                *float64            `json:"amount"`
	FoodDescription       *string             `json:"foodDescription"`
	IngredientCode        *flexString         `json:"ingredientCode"`
	IngredientDescription *string             `json:"ingredientDescription"`
	IngredientWeight      *float64            `json:"ingredientWeight"`
	PortionCode           *flexString         `json:"portionCode"`
	PortionDescription    *string             `json:"portionDescription"`
	SequenceNumber        *int                `json:"sequenceNumber"`
	SurveyFlag            *int                `json:"surveyFlag"`
	Unit                  *string             `json:"unit"`
	InputFood             *surveyFoodDTO      `json:"inputFood"`
	RetentionFactor       *retentionFactorDTO `json:"retentionFactor"`
}

type abridgedFoodDTO struct {
	foodItemDTO

	Nutrients       []abridgedNutrientDTO `json:"foodNutrients"`
	PublicationDate *string               `json:"publicationDate"`
	BrandOwner      *string               `json:"brandOwner"`
	GtinUpc         *flexString           `json:"gtinUpc"`
	NdbNumber       *flexString           `json:"ndbNumber"`
	FoodCode        *flexString           `json:"foodCode"`
}

type searchResultFoodDTO struct {
	abridgedFoodDTO

	ScientificName         *string  `json:"scientificName"`
	AdditionalDescriptions *string  `json:"additionalDescriptions"`
	AllHighlightFields     *string  `json:"allHighlightFields"`
	Score                  *float64 `json:"score"`
}

type brandedFoodDTO struct {
	foodItemDTO

	Nutrients        *[]foodNutrientDTO `json:"foodNutrients"`
	BrandOwner       *string            `json:"brandOwner"`
	GtinUpc          *flexString        `json:"gtinUpc"`
	UpdateLog        []foodUpdateLogDTO `json:"foodUpdateLog"`
	LabelNutrients   *labelNutrientsDTO `json:"labelNutrients"`
	DataSource       *string            `json:"dataSource"`
	FoodClass        *string            `json:"foodClass"`
	HouseholdServing *string            `json:"householdServingFullText"`
	Ingredients      *string            `json:"ingredients"`
	ModifiedDate     *string            `json:"modifiedDate"`
	PublicationDate  *string            `json:"publicationDate"`
	ServingSize      *float64           `json:"servingSize"`
	ServingSizeUnit  *string            `json:"servingSizeUnit"`
	Category         *string            `json:"brandedFoodCategory"`
	AvailableDate    *string            `json:"availableDate"`
}

type foundationFoodDTO struct {
	foodItemDTO

	Nutrients             []foodNutrientDTO        `json:"foodNutrients"`
	FoodClass             *string                  `json:"foodClass"`
	FootNote              *string                  `json:"footNote"`
	IsHistoricalReference *bool                    `json:"isHistoricalReference"`
	NdbNumber             *flexString              `json:"ndbNumber"`
	PublicationDate       *string                  `json:"publicationDate"`
	ScientificName        *string                  `json:"scientificName"`
	Category              *foodCategoryDTO         `json:"foodCategory"`
	Components            []foodComponentDTO       `json:"foodComponents"`
	Portions              []foodPortionDTO         `json:"foodPortions"`
	InputFoods            []inputFoodFoundationDTO `json:"inputFoods"`
	ConversionFactors     []conversionFactorDTO    `json:"nutrientConversionFactors"`
}

type srLegacyFoodDTO struct {
	foodItemDTO

	Nutrients             []foodNutrientDTO     `json:"foodNutrients"`
	Portions              []foodPortionDTO      `json:"foodPortions"`
	FoodClass             *string               `json:"foodClass"`
	IsHistoricalReference *bool                 `json:"isHistoricalReference"`
	NdbNumber             *flexString           `json:"ndbNumber"`
	PublicationDate       *string               `json:"publicationDate"`
	ScientificName        *string               `json:"scientificName"`
	Category              *foodCategoryDTO      `json:"foodCategory"`
	ConversionFactors     []conversionFactorDTO `json:"nutrientConversionFactors"`
}

type surveyFoodDTO struct {
	foodItemDTO

	Nutrients       []foodNutrientDTO    `json:"foodNutrients"`
	EndDate         *string              `json:"endDate"`
	FoodClass       *string              `json:"foodClass"`
	FoodCode        *flexString          `json:"foodCode"`
	PublicationDate *string              `json:"publicationDate"`
	StartDate       *string              `json:"startDate"`
	Attributes      []foodAttributeDTO   `json:"foodAttributes"`
	Portions        []foodPortionDTO     `json:"foodPortions"`
	InputFoods      []inputFoodSurveyDTO `json:"inputFoods"`
	WWeiaCategory   *wweiaCategoryDTO    `json:"wweiaFoodCategory"`
}

type sampleFoodDTO struct {
	foodItemDTO

	FoodClass       *string            `json:"foodClass"`
	LegacyFoodClass *string            `json:"food_class"`
	PublicationDate *string            `json:"publicationDate"`
	Attributes      []foodAttributeDTO `json:"foodAttributes"`
}

type searchCriteriaDTO struct {
	Query      *string  `json:"query"`
	DataType   []string `json:"dataType"`
	PageSize   *int     `json:"pageSize"`
	PageNumber *int     `json:"pageNumber"`
	SortBy     *string  `json:"sortBy"`
	SortOrder  *string  `json:"sortOrder"`
	BrandOwner *string  `json:"brandOwner"`
}

type searchResultDTO struct {
	Criteria    *searchCriteriaDTO    `json:"foodSearchCriteria"`
	TotalHits   *int                  `json:"totalHits"`
	CurrentPage *int                  `json:"currentPage"`
	TotalPages  *int                  `json:"totalPages"`
	Foods       *[]searchResultFoodDTO `json:"foods"`
}
