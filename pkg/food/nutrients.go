package food

import "fmt"

// AbridgedFoodNutrient is the compact nutrient form used by abridged
// reports, list and search results.
type AbridgedFoodNutrient struct {
	Number                *string  `json:"number,omitempty"                yaml:"number,omitempty"`
	Name                  *string  `json:"name,omitempty"                  yaml:"name,omitempty"`
	Amount                *float64 `json:"amount,omitempty"                yaml:"amount,omitempty"`
	UnitName              *string  `json:"unitName,omitempty"              yaml:"unitName,omitempty"`
	DerivationCode        *string  `json:"derivationCode,omitempty"        yaml:"derivationCode,omitempty"`
	DerivationDescription *string  `json:"derivationDescription,omitempty" yaml:"derivationDescription,omitempty"`
}

func (n AbridgedFoodNutrient) Fields() Fields {
	return Fields{
		{"number", opt(n.Number)},
		{"name", opt(n.Name)},
		{"amount", opt(n.Amount)},
		{"unitName", opt(n.UnitName)},
		{"derivationCode", opt(n.DerivationCode)},
		{"derivationDescription", opt(n.DerivationDescription)},
	}
}

func (n AbridgedFoodNutrient) String() string {
	if n.Name != nil && n.Amount != nil {
		unit := ""
		if n.UnitName != nil {
			unit = " " + *n.UnitName
		}

		return fmt.Sprintf("%s: %g%s", *n.Name, *n.Amount, unit)
	}

	return n.Fields().String()
}

// Nutrient describes a nutrient independent of any food.
type Nutrient struct {
	ID       *int    `json:"id,omitempty"       yaml:"id,omitempty"`
	Number   *string `json:"number,omitempty"   yaml:"number,omitempty"`
	Name     *string `json:"name,omitempty"     yaml:"name,omitempty"`
	Rank     *int    `json:"rank,omitempty"     yaml:"rank,omitempty"`
	UnitName *string `json:"unitName,omitempty" yaml:"unitName,omitempty"`
}

func (n Nutrient) Fields() Fields {
	return Fields{
		{"id", opt(n.ID)},
		{"number", opt(n.Number)},
		{"name", opt(n.Name)},
		{"rank", opt(n.Rank)},
		{"unitName", opt(n.UnitName)},
	}
}

func (n Nutrient) String() string { return n.Fields().String() }

// FoodNutrientSource is the source behind a nutrient derivation.
type FoodNutrientSource struct {
	ID          int    `json:"id"          yaml:"id"`
	Code        string `json:"code"        yaml:"code"`
	Description string `json:"description" yaml:"description"`
}

func (s FoodNutrientSource) Fields() Fields {
	return Fields{
		{"id", s.ID},
		{"code", s.Code},
		{"description", s.Description},
	}
}

func (s FoodNutrientSource) String() string { return s.Fields().String() }

// FoodNutrientDerivation describes how a nutrient value was obtained.
type FoodNutrientDerivation struct {
	ID          int                 `json:"id"                   yaml:"id"`
	Code        string              `json:"code"                 yaml:"code"`
	Description string              `json:"description"          yaml:"description"`
	Source      *FoodNutrientSource `json:"foodNutrientSource,omitempty" yaml:"foodNutrientSource,omitempty"`
}

func (d FoodNutrientDerivation) Fields() Fields {
	return Fields{
		{"id", d.ID},
		{"code", d.Code},
		{"description", d.Description},
		{"source", optRecord(d.Source)},
	}
}

func (d FoodNutrientDerivation) String() string { return d.Fields().String() }

// NutrientAcquisitionDetails describes where an analyzed sample was bought.
type NutrientAcquisitionDetails struct {
	SampleUnitID int    `json:"sampleUnitId" yaml:"sampleUnitId"`
	PurchaseDate string `json:"purchaseDate" yaml:"purchaseDate"`
	StoreCity    string `json:"storeCity"    yaml:"storeCity"`
	StoreState   string `json:"storeState"   yaml:"storeState"`
}

func (a NutrientAcquisitionDetails) Fields() Fields {
	return Fields{
		{"sampleUnitId", a.SampleUnitID},
		{"purchaseDate", a.PurchaseDate},
		{"storeCity", a.StoreCity},
		{"storeState", a.StoreState},
	}
}

func (a NutrientAcquisitionDetails) String() string { return a.Fields().String() }

// NutrientAnalysisDetails describes the lab analysis of a nutrient value.
type NutrientAnalysisDetails struct {
	SubSampleID                  int                          `json:"subSampleId"                  yaml:"subSampleId"`
	Amount                       float64                      `json:"amount"                       yaml:"amount"`
	NutrientID                   int                          `json:"nutrientId"                   yaml:"nutrientId"`
	LabMethodDescription         string                       `json:"labMethodDescription"         yaml:"labMethodDescription"`
	LabMethodOriginalDescription string                       `json:"labMethodOriginalDescription" yaml:"labMethodOriginalDescription"`
	LabMethodTechnique           string                       `json:"labMethodTechnique"           yaml:"labMethodTechnique"`
	AcquisitionDetails           []NutrientAcquisitionDetails `json:"nutrientAcquisitionDetails,omitempty" yaml:"nutrientAcquisitionDetails,omitempty"`
}

func (a NutrientAnalysisDetails) Fields() Fields {
	return Fields{
		{"subSampleId", a.SubSampleID},
		{"amount", a.Amount},
		{"nutrientId", a.NutrientID},
		{"labMethodDescription", a.LabMethodDescription},
		{"labMethodOriginalDescription", a.LabMethodOriginalDescription},
		{"labMethodTechnique", a.LabMethodTechnique},
		{"acquisitionDetails", recordList(a.AcquisitionDetails)},
	}
}

func (a NutrientAnalysisDetails) String() string { return a.Fields().String() }

// FoodNutrient is the full nutrient form used by full reports.
type FoodNutrient struct {
	ID              *int                      `json:"id,omitempty"                      yaml:"id,omitempty"`
	Amount          *float64                  `json:"amount,omitempty"                  yaml:"amount,omitempty"`
	DataPoints      *int                      `json:"dataPoints,omitempty"              yaml:"dataPoints,omitempty"`
	Min             *float64                  `json:"min,omitempty"                     yaml:"min,omitempty"`
	Max             *float64                  `json:"max,omitempty"                     yaml:"max,omitempty"`
	Median          *float64                  `json:"median,omitempty"                  yaml:"median,omitempty"`
	Type            *string                   `json:"type,omitempty"                    yaml:"type,omitempty"`
	Nutrient        *Nutrient                 `json:"nutrient,omitempty"                yaml:"nutrient,omitempty"`
	Derivation      *FoodNutrientDerivation   `json:"foodNutrientDerivation,omitempty"  yaml:"foodNutrientDerivation,omitempty"`
	AnalysisDetails []NutrientAnalysisDetails `json:"nutrientAnalysisDetails,omitempty" yaml:"nutrientAnalysisDetails,omitempty"`
}

func (n FoodNutrient) Fields() Fields {
	return Fields{
		{"id", opt(n.ID)},
		{"amount", opt(n.Amount)},
		{"dataPoints", opt(n.DataPoints)},
		{"min", opt(n.Min)},
		{"max", opt(n.Max)},
		{"median", opt(n.Median)},
		{"type", opt(n.Type)},
		{"nutrient", optRecord(n.Nutrient)},
		{"derivation", optRecord(n.Derivation)},
		{"analysisDetails", recordList(n.AnalysisDetails)},
	}
}

func (n FoodNutrient) String() string {
	if n.Nutrient != nil && n.Nutrient.Name != nil && n.Amount != nil {
		unit := ""
		if n.Nutrient.UnitName != nil {
			unit = " " + *n.Nutrient.UnitName
		}

		return fmt.Sprintf("%s: %g%s", *n.Nutrient.Name, *n.Amount, unit)
	}

	return n.Fields().String()
}

// LabeledNutrients holds the nutrition-label amounts of a branded food.
// Each amount falls back to a "No '<name>' data available" placeholder.
type LabeledNutrients struct {
	Fat           Defaulted[float64] `json:"fat"           yaml:"fat"`
	SaturatedFat  Defaulted[float64] `json:"saturatedFat"  yaml:"saturatedFat"`
	TransFat      Defaulted[float64] `json:"transFat"      yaml:"transFat"`
	Cholesterol   Defaulted[float64] `json:"cholesterol"   yaml:"cholesterol"`
	Sodium        Defaulted[float64] `json:"sodium"        yaml:"sodium"`
	Carbohydrates Defaulted[float64] `json:"carbohydrates" yaml:"carbohydrates"`
	Fiber         Defaulted[float64] `json:"fiber"         yaml:"fiber"`
	Sugars        Defaulted[float64] `json:"sugars"        yaml:"sugars"`
	Protein       Defaulted[float64] `json:"protein"       yaml:"protein"`
	Calcium       Defaulted[float64] `json:"calcium"       yaml:"calcium"`
	Iron          Defaulted[float64] `json:"iron"          yaml:"iron"`
	Potassium     Defaulted[float64] `json:"potassium"     yaml:"potassium"`
	Calories      Defaulted[float64] `json:"calories"      yaml:"calories"`
}

// LabelNutrientPlaceholder returns the placeholder for an absent label amount.
func LabelNutrientPlaceholder(name string) string {
	return fmt.Sprintf("No '%s' data available", name)
}

func (l LabeledNutrients) Fields() Fields {
	return Fields{
		{"fat", l.Fat},
		{"saturatedFat", l.SaturatedFat},
		{"transFat", l.TransFat},
		{"cholesterol", l.Cholesterol},
		{"sodium", l.Sodium},
		{"carbohydrates", l.Carbohydrates},
		{"fiber", l.Fiber},
		{"sugars", l.Sugars},
		{"protein", l.Protein},
		{"calcium", l.Calcium},
		{"iron", l.Iron},
		{"potassium", l.Potassium},
		{"calories", l.Calories},
	}
}

func (l LabeledNutrients) String() string { return l.Fields().String() }

// NutrientConversionFactor converts nitrogen or energy values for a food.
type NutrientConversionFactor struct {
	ID                int      `json:"id"                          yaml:"id"`
	Name              string   `json:"name"                        yaml:"name"`
	Type              *string  `json:"type,omitempty"              yaml:"type,omitempty"`
	Value             *float64 `json:"value,omitempty"             yaml:"value,omitempty"`
	ProteinValue      *float64 `json:"proteinValue,omitempty"      yaml:"proteinValue,omitempty"`
	CarbohydrateValue *float64 `json:"carbohydrateValue,omitempty" yaml:"carbohydrateValue,omitempty"`
	FatValue          *float64 `json:"fatValue,omitempty"          yaml:"fatValue,omitempty"`
}

func (c NutrientConversionFactor) Fields() Fields {
	return Fields{
		{"id", c.ID},
		{"name", c.Name},
		{"type", opt(c.Type)},
		{"value", opt(c.Value)},
		{"proteinValue", opt(c.ProteinValue)},
		{"carbohydrateValue", opt(c.CarbohydrateValue)},
		{"fatValue", opt(c.FatValue)},
	}
}

func (c NutrientConversionFactor) String() string { return c.Name }
