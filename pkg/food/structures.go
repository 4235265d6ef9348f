package food

// FoodCategory is the category a Foundation or SR Legacy food belongs to.
type FoodCategory struct {
	ID          *int    `json:"id,omitempty"          yaml:"id,omitempty"`
	Code        *string `json:"code,omitempty"        yaml:"code,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (c FoodCategory) Fields() Fields {
	return Fields{
		{"id", opt(c.ID)},
		{"code", opt(c.Code)},
		{"description", opt(c.Description)},
	}
}

func (c FoodCategory) String() string {
	if c.Description != nil {
		return *c.Description
	}

	return c.Fields().String()
}

// FoodComponent is a physical constituent of a food, such as bone or skin.
type FoodComponent struct {
	ID              *int     `json:"id,omitempty"              yaml:"id,omitempty"`
	Name            *string  `json:"name,omitempty"            yaml:"name,omitempty"`
	DataPoints      *int     `json:"dataPoints,omitempty"      yaml:"dataPoints,omitempty"`
	GramWeight      *float64 `json:"gramWeight,omitempty"      yaml:"gramWeight,omitempty"`
	IsRefuse        *bool    `json:"isRefuse,omitempty"        yaml:"isRefuse,omitempty"`
	MinYearAcquired *int     `json:"minYearAcquired,omitempty" yaml:"minYearAcquired,omitempty"`
	PercentWeight   *float64 `json:"percentWeight,omitempty"   yaml:"percentWeight,omitempty"`
}

func (c FoodComponent) Fields() Fields {
	return Fields{
		{"id", opt(c.ID)},
		{"name", opt(c.Name)},
		{"dataPoints", opt(c.DataPoints)},
		{"gramWeight", opt(c.GramWeight)},
		{"isRefuse", opt(c.IsRefuse)},
		{"minYearAcquired", opt(c.MinYearAcquired)},
		{"percentWeight", opt(c.PercentWeight)},
	}
}

func (c FoodComponent) String() string { return c.Fields().String() }

// MeasureUnit is the unit of a food portion.
type MeasureUnit struct {
	ID           *int    `json:"id,omitempty"           yaml:"id,omitempty"`
	Abbreviation *string `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	Name         *string `json:"name,omitempty"         yaml:"name,omitempty"`
}

func (u MeasureUnit) Fields() Fields {
	return Fields{
		{"id", opt(u.ID)},
		{"abbreviation", opt(u.Abbreviation)},
		{"name", opt(u.Name)},
	}
}

func (u MeasureUnit) String() string { return u.Fields().String() }

// FoodPortion is a household measure and its gram weight.
type FoodPortion struct {
	ID                 *int         `json:"id,omitempty"                 yaml:"id,omitempty"`
	Amount             *float64     `json:"amount,omitempty"             yaml:"amount,omitempty"`
	DataPoints         *int         `json:"dataPoints,omitempty"         yaml:"dataPoints,omitempty"`
	GramWeight         *float64     `json:"gramWeight,omitempty"         yaml:"gramWeight,omitempty"`
	MinYearAcquired    *int         `json:"minYearAcquired,omitempty"    yaml:"minYearAcquired,omitempty"`
	Modifier           *string      `json:"modifier,omitempty"           yaml:"modifier,omitempty"`
	PortionDescription *string      `json:"portionDescription,omitempty" yaml:"portionDescription,omitempty"`
	SequenceNumber     *int         `json:"sequenceNumber,omitempty"     yaml:"sequenceNumber,omitempty"`
	MeasureUnit        *MeasureUnit `json:"measureUnit,omitempty"        yaml:"measureUnit,omitempty"`
}

func (p FoodPortion) Fields() Fields {
	return Fields{
		{"id", opt(p.ID)},
		{"amount", opt(p.Amount)},
		{"dataPoints", opt(p.DataPoints)},
		{"gramWeight", opt(p.GramWeight)},
		{"minYearAcquired", opt(p.MinYearAcquired)},
		{"modifier", opt(p.Modifier)},
		{"portionDescription", opt(p.PortionDescription)},
		{"sequenceNumber", opt(p.SequenceNumber)},
		{"measureUnit", optRecord(p.MeasureUnit)},
	}
}

func (p FoodPortion) String() string { return p.Fields().String() }

// FoodAttributeType classifies a food attribute.
type FoodAttributeType struct {
	ID          *int    `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (t FoodAttributeType) Fields() Fields {
	return Fields{
		{"id", opt(t.ID)},
		{"name", opt(t.Name)},
		{"description", opt(t.Description)},
	}
}

func (t FoodAttributeType) String() string { return t.Fields().String() }

// FoodAttribute is a free-form attribute attached to a food.
type FoodAttribute struct {
	ID             *int               `json:"id,omitempty"                yaml:"id,omitempty"`
	SequenceNumber *int               `json:"sequenceNumber,omitempty"    yaml:"sequenceNumber,omitempty"`
	Value          *string            `json:"value,omitempty"             yaml:"value,omitempty"`
	Type           *FoodAttributeType `json:"foodAttributeType,omitempty" yaml:"foodAttributeType,omitempty"`
}

func (a FoodAttribute) Fields() Fields {
	return Fields{
		{"id", opt(a.ID)},
		{"sequenceNumber", opt(a.SequenceNumber)},
		{"value", opt(a.Value)},
		{"type", optRecord(a.Type)},
	}
}

func (a FoodAttribute) String() string { return a.Fields().String() }

// FoodUpdateLog is one historical revision of a branded food.
type FoodUpdateLog struct {
	FdcID            *int            `json:"fdcId,omitempty"                    yaml:"fdcId,omitempty"`
	AvailableDate    *string         `json:"availableDate,omitempty"            yaml:"availableDate,omitempty"`
	BrandOwner       *string         `json:"brandOwner,omitempty"               yaml:"brandOwner,omitempty"`
	DataSource       *string         `json:"dataSource,omitempty"               yaml:"dataSource,omitempty"`
	DataType         *string         `json:"dataType,omitempty"                 yaml:"dataType,omitempty"`
	Description      *string         `json:"description,omitempty"              yaml:"description,omitempty"`
	FoodClass        *string         `json:"foodClass,omitempty"                yaml:"foodClass,omitempty"`
	GtinUpc          *string         `json:"gtinUpc,omitempty"                  yaml:"gtinUpc,omitempty"`
	HouseholdServing *string         `json:"householdServingFullText,omitempty" yaml:"householdServingFullText,omitempty"`
	Ingredients      *string         `json:"ingredients,omitempty"              yaml:"ingredients,omitempty"`
	ModifiedDate     *string         `json:"modifiedDate,omitempty"             yaml:"modifiedDate,omitempty"`
	PublicationDate  *string         `json:"publicationDate,omitempty"          yaml:"publicationDate,omitempty"`
	ServingSize      *float64        `json:"servingSize,omitempty"              yaml:"servingSize,omitempty"`
	ServingSizeUnit  *string         `json:"servingSizeUnit,omitempty"          yaml:"servingSizeUnit,omitempty"`
	Category         *string         `json:"brandedFoodCategory,omitempty"      yaml:"brandedFoodCategory,omitempty"`
	Changes          *string         `json:"changes,omitempty"                  yaml:"changes,omitempty"`
	Attributes       []FoodAttribute `json:"foodAttributes,omitempty"           yaml:"foodAttributes,omitempty"`
}

func (l FoodUpdateLog) Fields() Fields {
	return Fields{
		{"fdcId", opt(l.FdcID)},
		{"availableDate", opt(l.AvailableDate)},
		{"brandOwner", opt(l.BrandOwner)},
		{"dataSource", opt(l.DataSource)},
		{"dataType", opt(l.DataType)},
		{"description", opt(l.Description)},
		{"foodClass", opt(l.FoodClass)},
		{"gtinUpc", opt(l.GtinUpc)},
		{"householdServing", opt(l.HouseholdServing)},
		{"ingredients", opt(l.Ingredients)},
		{"modifiedDate", opt(l.ModifiedDate)},
		{"publicationDate", opt(l.PublicationDate)},
		{"servingSize", opt(l.ServingSize)},
		{"servingSizeUnit", opt(l.ServingSizeUnit)},
		{"category", opt(l.Category)},
		{"changes", opt(l.Changes)},
		{"attributes", recordList(l.Attributes)},
	}
}

func (l FoodUpdateLog) String() string { return l.Fields().String() }

// WWeiaFoodCategory is the What We Eat In America category of a survey food.
type WWeiaFoodCategory struct {
	Code        *int    `json:"wweiaFoodCategoryCode,omitempty"        yaml:"wweiaFoodCategoryCode,omitempty"`
	Description *string `json:"wweiaFoodCategoryDescription,omitempty" yaml:"wweiaFoodCategoryDescription,omitempty"`
}

func (c WWeiaFoodCategory) Fields() Fields {
	return Fields{
		{"code", opt(c.Code)},
		{"description", opt(c.Description)},
	}
}

func (c WWeiaFoodCategory) String() string { return c.Fields().String() }

// RetentionFactor is the nutrient retention factor applied to a survey
// ingredient.
type RetentionFactor struct {
	ID          *int    `json:"id,omitempty"          yaml:"id,omitempty"`
	Code        *string `json:"code,omitempty"        yaml:"code,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (r RetentionFactor) Fields() Fields {
	return Fields{
		{"id", opt(r.ID)},
		{"code", opt(r.Code)},
		{"description", opt(r.Description)},
	}
}

func (r RetentionFactor) String() string { return r.Fields().String() }

// InputFoodFoundation is a sample food that contributed to a Foundation food.
type InputFoodFoundation struct {
	ID              *int            `json:"id,omitempty"              yaml:"id,omitempty"`
	FoodDescription *string         `json:"foodDescription,omitempty" yaml:"foodDescription,omitempty"`
	InputFood       *SampleFoodItem `json:"inputFood,omitempty"       yaml:"inputFood,omitempty"`
}

func (f InputFoodFoundation) Fields() Fields {
	return Fields{
		{"id", opt(f.ID)},
		{"foodDescription", opt(f.FoodDescription)},
		{"inputFood", optRecord(f.InputFood)},
	}
}

func (f InputFoodFoundation) String() string { return f.Fields().String() }

// InputFoodSurvey is an ingredient of a survey food.
type InputFoodSurvey struct {
	ID                    *int             `json:"id,omitempty"                    yaml:"id,omitempty"`
	Amount                *float64         `json:"amount,omitempty"                yaml:"amount,omitempty"`
	FoodDescription       *string          `json:"foodDescription,omitempty"       yaml:"foodDescription,omitempty"`
	IngredientCode        *string          `json:"ingredientCode,omitempty"        yaml:"ingredientCode,omitempty"`
	IngredientDescription *string          `json:"ingredientDescription,omitempty" yaml:"ingredientDescription,omitempty"`
	IngredientWeight      *float64         `json:"ingredientWeight,omitempty"      yaml:"ingredientWeight,omitempty"`
	PortionCode           *string          `json:"portionCode,omitempty"           yaml:"portionCode,omitempty"`
	PortionDescription    *string          `json:"portionDescription,omitempty"    yaml:"portionDescription,omitempty"`
	SequenceNumber        *int             `json:"sequenceNumber,omitempty"        yaml:"sequenceNumber,omitempty"`
	SurveyFlag            *int             `json:"surveyFlag,omitempty"            yaml:"surveyFlag,omitempty"`
	Unit                  *string          `json:"unit,omitempty"                  yaml:"unit,omitempty"`
	InputFood             *SurveyFoodItem  `json:"inputFood,omitempty"             yaml:"inputFood,omitempty"`
	RetentionFactor       *RetentionFactor `json:"retentionFactor,omitempty"       yaml:"retentionFactor,omitempty"`
}

func (f InputFoodSurvey) Fields() Fields {
	return Fields{
		{"id", opt(f.ID)},
		{"amount", opt(f.Amount)},
		{"foodDescription", opt(f.FoodDescription)},
		{"ingredientCode", opt(f.IngredientCode)},
		{"ingredientDescription", opt(f.IngredientDescription)},
		{"ingredientWeight", opt(f.IngredientWeight)},
		{"portionCode", opt(f.PortionCode)},
		{"portionDescription", opt(f.PortionDescription)},
		{"sequenceNumber", opt(f.SequenceNumber)},
		{"surveyFlag", opt(f.SurveyFlag)},
		{"unit", opt(f.Unit)},
		{"inputFood", optRecord(f.InputFood)},
		{"retentionFactor", optRecord(f.RetentionFactor)},
	}
}

func (f InputFoodSurvey) String() string { return f.Fields().String() }
