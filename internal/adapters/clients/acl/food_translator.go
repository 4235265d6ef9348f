package acl

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// TranslateFood maps a full-format food payload to the variant selected by
// its dataType. An unknown dataType is a *food.MappingError.
func TranslateFood(raw json.RawMessage) (food.Food, error) {
	probe, err := DecodeResponse[foodItemDTO](raw, "Food")
	if err != nil {
		return nil, err
	}

	if probe.DataType == nil {
		return nil, food.NewMissingKeyError("Food", "dataType")
	}

	switch dt := food.DataType(*probe.DataType); {
	case dt == food.DataTypeBranded:
		return decodeAndTranslate(raw, "BrandedFoodItem", translateBrandedFood)
	case dt == food.DataTypeFoundation:
		return decodeAndTranslate(raw, "FoundationFoodItem", translateFoundationFood)
	case dt == food.DataTypeSRLegacy:
		return decodeAndTranslate(raw, "SRLegacyFoodItem", translateSRLegacyFood)
	case dt.IsSurvey():
		return decodeAndTranslate(raw, "SurveyFoodItem", translateSurveyFood)
	case dt == food.DataTypeSample:
		return decodeAndTranslate(raw, "SampleFoodItem", translateSampleFood)
	default:
		return nil, food.NewMappingError("Food", fmt.Sprintf("unknown dataType %q", dt))
	}
}

// TranslateAbridgedFood maps any food payload to the abridged shape,
// regardless of its dataType.
func TranslateAbridgedFood(raw json.RawMessage) (food.AbridgedFoodItem, error) {
	d, err := DecodeResponse[abridgedFoodDTO](raw, "AbridgedFoodItem")
	if err != nil {
		return food.AbridgedFoodItem{}, err
	}

	return translateAbridgedFood(d)
}

// TranslateFoods maps the array returned by the foods endpoint, keeping the
// response order. Abridged format always yields AbridgedFoodItem values.
func TranslateFoods(raw json.RawMessage, format food.ReportFormat) ([]food.Food, error) {
	items, err := DecodeResponse[[]json.RawMessage](raw, "Foods")
	if err != nil {
		return nil, err
	}

	out := make([]food.Food, 0, len(*items))

	for i, item := range *items {
		var (
			f   food.Food
			err error
		)

		if format == food.FormatFull {
			f, err = TranslateFood(item)
		} else {
			f, err = TranslateAbridgedFood(item)
		}

		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		out = append(out, f)
	}

	return out, nil
}

// TranslateFoodList maps the array returned by the list endpoint.
func TranslateFoodList(raw json.RawMessage) ([]food.AbridgedFoodItem, error) {
	items, err := DecodeResponse[[]abridgedFoodDTO](raw, "FoodList")
	if err != nil {
		return nil, err
	}

	list, err := TranslateSlice(*items, translateAbridgedFood)
	if err != nil {
		return nil, err
	}

	if list == nil {
		list = []food.AbridgedFoodItem{}
	}

	return list, nil
}

func decodeAndTranslate[E any, D food.Food](raw json.RawMessage, entity string, translate Translator[E, D]) (food.Food, error) {
	d, err := DecodeResponse[E](raw, entity)
	if err != nil {
		return nil, err
	}

	f, err := translate(d)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func translateAbridgedFood(d *abridgedFoodDTO) (food.AbridgedFoodItem, error) {
	r := newFieldReader("AbridgedFoodItem")

	base := readBase(r, &d.foodItemDTO)
	if r.err != nil {
		return food.AbridgedFoodItem{}, r.err
	}

	nutrients, err := TranslateSlice(d.Nutrients, translateAbridgedNutrient)
	if err != nil {
		return food.AbridgedFoodItem{}, err
	}

	item := food.AbridgedFoodItem{
		FoodItem:        base,
		Nutrients:       listOr(nutrients, food.NoNutrientData),
		PublicationDate: textOr(d.PublicationDate, food.NoPublicationData),
	}

	// Identifier fields apply only to the data types that define them.
	switch {
	case base.DataType == food.DataTypeBranded:
		item.Brand = d.BrandOwner
		item.GtinUpc = text(d.GtinUpc)
	case base.DataType == food.DataTypeFoundation, base.DataType == food.DataTypeSRLegacy:
		item.NdbID = text(d.NdbNumber)
	case base.DataType.IsSurvey():
		item.FoodCode = text(d.FoodCode)
	}

	return item, nil
}

func translateSearchResultFood(d *searchResultFoodDTO) (food.SearchResultFoodItem, error) {
	abridged, err := translateAbridgedFood(&d.abridgedFoodDTO)
	if err != nil {
		return food.SearchResultFoodItem{}, err
	}

	return food.SearchResultFoodItem{
		AbridgedFoodItem:       abridged,
		ScientificName:         d.ScientificName,
		AdditionalDescriptions: d.AdditionalDescriptions,
		AllHighlightFields:     d.AllHighlightFields,
		Score:                  d.Score,
	}, nil
}

func translateBrandedFood(d *brandedFoodDTO) (food.BrandedFoodItem, error) {
	r := newFieldReader("BrandedFoodItem")

	base := readBase(r, &d.foodItemDTO)
	nutrientDTOs := need(r, "foodNutrients", d.Nutrients)
	brand := need(r, "brandOwner", d.BrandOwner)
	gtin := need(r, "gtinUpc", d.GtinUpc)

	if r.err != nil {
		return food.BrandedFoodItem{}, r.err
	}

	nutrients, err := TranslateSlice(nutrientDTOs, translateFoodNutrient)
	if err != nil {
		return food.BrandedFoodItem{}, err
	}

	updateLog, err := TranslateSlice(d.UpdateLog, translateFoodUpdateLog)
	if err != nil {
		return food.BrandedFoodItem{}, err
	}

	item := food.BrandedFoodItem{
		FoodItem:         base,
		Nutrients:        nutrients,
		Brand:            brand,
		GtinUpc:          string(gtin),
		UpdateLog:        updateLog,
		LabelNutrients:   translateLabelNutrients(d.LabelNutrients),
		DataSource:       textOr(d.DataSource, food.NoDataSource),
		FoodClass:        textOr(d.FoodClass, food.NoFoodClass),
		HouseholdServing: textOr(d.HouseholdServing, food.NoHouseholdServing),
		Ingredients:      textOr(d.Ingredients, food.NoIngredients),
		ModifiedDate:     d.ModifiedDate,
		PublicationDate:  d.PublicationDate,
		ServingSize:      numberOr(d.ServingSize, food.NoServingSize),
		Category:         textOr(d.Category, food.NoBrandedCategory),
		AvailableDate:    d.AvailableDate,
	}

	// A unit without a size is meaningless.
	if item.ServingSize.IsPresent() && d.ServingSizeUnit != nil && *d.ServingSizeUnit != "" {
		item.ServingSizeUnit = d.ServingSizeUnit
	}

	return item, nil
}

func translateFoundationFood(d *foundationFoodDTO) (food.FoundationFoodItem, error) {
	r := newFieldReader("FoundationFoodItem")

	base := readBase(r, &d.foodItemDTO)
	if r.err != nil {
		return food.FoundationFoodItem{}, r.err
	}

	nutrients, err := TranslateSlice(d.Nutrients, translateFoodNutrient)
	if err != nil {
		return food.FoundationFoodItem{}, err
	}

	components, err := TranslateSlice(d.Components, translateFoodComponent)
	if err != nil {
		return food.FoundationFoodItem{}, err
	}

	portions, err := TranslateSlice(d.Portions, translateFoodPortion)
	if err != nil {
		return food.FoundationFoodItem{}, err
	}

	inputs, err := TranslateSlice(d.InputFoods, translateInputFoodFoundation)
	if err != nil {
		return food.FoundationFoodItem{}, err
	}

	factors, err := TranslateSlice(d.ConversionFactors, translateConversionFactor)
	if err != nil {
		return food.FoundationFoodItem{}, err
	}

	category, err := translateCategoryOr(d.Category)
	if err != nil {
		return food.FoundationFoodItem{}, err
	}

	return food.FoundationFoodItem{
		FoodItem:              base,
		Nutrients:             nutrients,
		FoodClass:             textOr(d.FoodClass, food.NoFoodClass),
		FootNote:              d.FootNote,
		IsHistoricalReference: d.IsHistoricalReference != nil && *d.IsHistoricalReference,
		NdbID:                 text(d.NdbNumber),
		PublicationDate:       d.PublicationDate,
		ScientificName:        d.ScientificName,
		Category:              category,
		Components:            listOr(components, food.NoFoodComponents),
		Portions:              listOr(portions, food.NoFoodPortions),
		InputFoods:            listOr(inputs, food.NoFoundationInputFood),
		ConversionFactors:     factors,
	}, nil
}

func translateSRLegacyFood(d *srLegacyFoodDTO) (food.SRLegacyFoodItem, error) {
	r := newFieldReader("SRLegacyFoodItem")

	base := readBase(r, &d.foodItemDTO)
	if r.err != nil {
		return food.SRLegacyFoodItem{}, r.err
	}

	nutrients, err := TranslateSlice(d.Nutrients, translateFoodNutrient)
	if err != nil {
		return food.SRLegacyFoodItem{}, err
	}

	portions, err := TranslateSlice(d.Portions, translateFoodPortion)
	if err != nil {
		return food.SRLegacyFoodItem{}, err
	}

	factors, err := TranslateSlice(d.ConversionFactors, translateConversionFactor)
	if err != nil {
		return food.SRLegacyFoodItem{}, err
	}

	category, err := translateCategoryOr(d.Category)
	if err != nil {
		return food.SRLegacyFoodItem{}, err
	}

	return food.SRLegacyFoodItem{
		FoodItem:              base,
		Nutrients:             nutrients,
		Portions:              portions,
		FoodClass:             textOr(d.FoodClass, food.NoFoodClass),
		IsHistoricalReference: d.IsHistoricalReference != nil && *d.IsHistoricalReference,
		NdbID:                 text(d.NdbNumber),
		PublicationDate:       d.PublicationDate,
		ScientificName:        d.ScientificName,
		Category:              category,
		ConversionFactors:     factors,
	}, nil
}

func translateSurveyFood(d *surveyFoodDTO) (food.SurveyFoodItem, error) {
	r := newFieldReader("SurveyFoodItem")

	base := readBase(r, &d.foodItemDTO)
	if r.err != nil {
		return food.SurveyFoodItem{}, r.err
	}

	nutrients, err := TranslateSlice(d.Nutrients, translateFoodNutrient)
	if err != nil {
		return food.SurveyFoodItem{}, err
	}

	attrs, err := TranslateSlice(d.Attributes, translateFoodAttribute)
	if err != nil {
		return food.SurveyFoodItem{}, err
	}

	portions, err := TranslateSlice(d.Portions, translateFoodPortion)
	if err != nil {
		return food.SurveyFoodItem{}, err
	}

	inputs, err := TranslateSlice(d.InputFoods, translateInputFoodSurvey)
	if err != nil {
		return food.SurveyFoodItem{}, err
	}

	wweia, err := translateOptional(d.WWeiaCategory, translateWWeiaCategory)
	if err != nil {
		return food.SurveyFoodItem{}, err
	}

	return food.SurveyFoodItem{
		FoodItem:        base,
		Nutrients:       nutrients,
		EndDate:         d.EndDate,
		FoodClass:       d.FoodClass,
		FoodCode:        text(d.FoodCode),
		PublicationDate: d.PublicationDate,
		StartDate:       d.StartDate,
		Attributes:      attrs,
		Portions:        portions,
		InputFoods:      inputs,
		WWeiaCategory:   wweia,
	}, nil
}

func translateSampleFood(d *sampleFoodDTO) (food.SampleFoodItem, error) {
	if d.DataType == nil {
		sample := string(food.DataTypeSample)
		d.DataType = &sample
	}

	r := newFieldReader("SampleFoodItem")

	base := readBase(r, &d.foodItemDTO)
	if r.err != nil {
		return food.SampleFoodItem{}, r.err
	}

	attrs, err := TranslateSlice(d.Attributes, translateFoodAttribute)
	if err != nil {
		return food.SampleFoodItem{}, err
	}

	return food.SampleFoodItem{
		FoodItem:        base,
		FoodClass:       firstOf(d.FoodClass, d.LegacyFoodClass),
		PublicationDate: d.PublicationDate,
		Attributes:      attrs,
	}, nil
}

func translateCategoryOr(d *foodCategoryDTO) (food.Defaulted[food.FoodCategory], error) {
	if d == nil {
		return food.Missing[food.FoodCategory](food.NoFoodCategory), nil
	}

	category, err := translateFoodCategory(d)
	if err != nil {
		return food.Defaulted[food.FoodCategory]{}, err
	}

	return food.Value(category), nil
}
