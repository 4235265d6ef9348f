package acl

import (
	"strings"

	"github.com/jsamuelsen/go-fdc/pkg/food"
)

func translateAbridgedNutrient(d *abridgedNutrientDTO) (food.AbridgedFoodNutrient, error) {
	return food.AbridgedFoodNutrient{
		Number:                text(firstOf(d.Number, d.NutrientNumber)),
		Name:                  firstOf(d.Name, d.NutrientName),
		Amount:                firstOf(d.Amount, d.Value),
		UnitName:              d.UnitName,
		DerivationCode:        text(d.DerivationCode),
		DerivationDescription: d.DerivationDescription,
	}, nil
}

func translateNutrient(d *nutrientDTO) (food.Nutrient, error) {
	return food.Nutrient{
		ID:       firstOf(d.ID, d.NutrientID),
		Number:   text(firstOf(d.Number, d.NutrientNumber)),
		Name:     firstOf(d.Name, d.NutrientName),
		Rank:     d.Rank,
		UnitName: d.UnitName,
	}, nil
}

func translateNutrientSource(d *nutrientSourceDTO) (food.FoodNutrientSource, error) {
	r := newFieldReader("FoodNutrientSource")
	src := food.FoodNutrientSource{
		ID:          need(r, "id", d.ID),
		Code:        string(need(r, "code", d.Code)),
		Description: need(r, "description", d.Description),
	}

	return src, r.err
}

func translateNutrientDerivation(d *nutrientDerivationDTO) (food.FoodNutrientDerivation, error) {
	r := newFieldReader("FoodNutrientDerivation")
	der := food.FoodNutrientDerivation{
		ID:          need(r, "id", d.ID),
		Code:        string(need(r, "code", d.Code)),
		Description: need(r, "description", d.Description),
	}
	if r.err != nil {
		return food.FoodNutrientDerivation{}, r.err
	}

	src, err := translateOptional(d.Source, translateNutrientSource)
	if err != nil {
		return food.FoodNutrientDerivation{}, err
	}

	der.Source = src

	return der, nil
}

func translateAcquisitionDetails(d *acquisitionDetailsDTO) (food.NutrientAcquisitionDetails, error) {
	r := newFieldReader("NutrientAcquisitionDetails")
	acq := food.NutrientAcquisitionDetails{
		SampleUnitID: need(r, "sampleUnitId", d.SampleUnitID),
		PurchaseDate: need(r, "purchaseDate", d.PurchaseDate),
		StoreCity:    need(r, "storeCity", d.StoreCity),
		StoreState:   need(r, "storeState", d.StoreState),
	}

	return acq, r.err
}

func translateAnalysisDetails(d *analysisDetailsDTO) (food.NutrientAnalysisDetails, error) {
	r := newFieldReader("NutrientAnalysisDetails")
	det := food.NutrientAnalysisDetails{
		SubSampleID:                  need(r, "subSampleId", d.SubSampleID),
		Amount:                       need(r, "amount", d.Amount),
		NutrientID:                   need(r, "nutrientId", d.NutrientID),
		LabMethodDescription:         need(r, "labMethodDescription", d.LabMethodDescription),
		LabMethodOriginalDescription: need(r, "labMethodOriginalDescription", d.LabMethodOriginalDescription),
		LabMethodTechnique:           need(r, "labMethodTechnique", d.LabMethodTechnique),
	}
	if r.err != nil {
		return food.NutrientAnalysisDetails{}, r.err
	}

	acq, err := TranslateSlice([]acquisitionDetailsDTO(d.AcquisitionDetails), translateAcquisitionDetails)
	if err != nil {
		return food.NutrientAnalysisDetails{}, err
	}

	det.AcquisitionDetails = acq

	return det, nil
}

func translateFoodNutrient(d *foodNutrientDTO) (food.FoodNutrient, error) {
	fn := food.FoodNutrient{
		ID:         d.ID,
		Amount:     d.Amount,
		DataPoints: d.DataPoints,
		Min:        d.Min,
		Max:        d.Max,
		Median:     d.Median,
		Type:       d.Type,
	}

	var err error

	if fn.Nutrient, err = translateOptional(d.Nutrient, translateNutrient); err != nil {
		return food.FoodNutrient{}, err
	}

	if fn.Derivation, err = translateOptional(d.Derivation, translateNutrientDerivation); err != nil {
		return food.FoodNutrient{}, err
	}

	if fn.AnalysisDetails, err = TranslateSlice([]analysisDetailsDTO(d.AnalysisDetails), translateAnalysisDetails); err != nil {
		return food.FoodNutrient{}, err
	}

	return fn, nil
}

func translateConversionFactor(d *conversionFactorDTO) (food.NutrientConversionFactor, error) {
	r := newFieldReader("NutrientConversionFactor")
	cf := food.NutrientConversionFactor{
		ID:                need(r, "id", d.ID),
		Name:              strings.TrimSpace(need(r, "name", d.Name)),
		Type:              d.Type,
		Value:             d.Value,
		ProteinValue:      d.ProteinValue,
		CarbohydrateValue: d.CarbohydrateValue,
		FatValue:          d.FatValue,
	}

	return cf, r.err
}

// translateLabelNutrients fills every absent label amount with its
// "No '<name>' data available" placeholder.
func translateLabelNutrients(d *labelNutrientsDTO) food.LabeledNutrients {
	if d == nil {
		d = &labelNutrientsDTO{}
	}

	amount := func(v *labelValue, name string) food.Defaulted[float64] {
		if v == nil || v.Value == nil {
			return food.Missing[float64](food.LabelNutrientPlaceholder(name))
		}

		return food.Value(*v.Value)
	}

	return food.LabeledNutrients{
		Fat:           amount(d.Fat, "fat"),
		SaturatedFat:  amount(d.SaturatedFat, "saturated fat"),
		TransFat:      amount(d.TransFat, "trans fat"),
		Cholesterol:   amount(d.Cholesterol, "cholesterol"),
		Sodium:        amount(d.Sodium, "sodium"),
		Carbohydrates: amount(d.Carbohydrates, "carbohydrates"),
		Fiber:         amount(d.Fiber, "fiber"),
		Sugars:        amount(d.Sugars, "sugars"),
		Protein:       amount(d.Protein, "protein"),
		Calcium:       amount(d.Calcium, "calcium"),
		Iron:          amount(d.Iron, "iron"),
		Potassium:     amount(d.Potassium, "potassium"),
		Calories:      amount(d.Calories, "calories"),
	}
}
