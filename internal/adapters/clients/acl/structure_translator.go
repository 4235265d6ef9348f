package acl

import (
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

func translateFoodCategory(d *foodCategoryDTO) (food.FoodCategory, error) {
	return food.FoodCategory{
		ID:          d.ID,
		Code:        text(d.Code),
		Description: d.Description,
	}, nil
}

func translateFoodComponent(d *foodComponentDTO) (food.FoodComponent, error) {
	return food.FoodComponent{
		ID:              d.ID,
		Name:            d.Name,
		DataPoints:      d.DataPoints,
		GramWeight:      d.GramWeight,
		IsRefuse:        d.IsRefuse,
		MinYearAcquired: d.MinYearAcquired,
		PercentWeight:   d.PercentWeight,
	}, nil
}

func translateMeasureUnit(d *measureUnitDTO) (food.MeasureUnit, error) {
	return food.MeasureUnit{
		ID:           d.ID,
		Abbreviation: text(d.Abbreviation),
		Name:         d.Name,
	}, nil
}

func translateFoodPortion(d *foodPortionDTO) (food.FoodPortion, error) {
	unit, err := translateOptional(d.MeasureUnit, translateMeasureUnit)
	if err != nil {
		return food.FoodPortion{}, err
	}

	return food.FoodPortion{
		ID:                 d.ID,
		Amount:             d.Amount,
		DataPoints:         d.DataPoints,
		GramWeight:         d.GramWeight,
		MinYearAcquired:    d.MinYearAcquired,
		Modifier:           text(d.Modifier),
		PortionDescription: d.PortionDescription,
		SequenceNumber:     d.SequenceNumber,
		MeasureUnit:        unit,
	}, nil
}

func translateFoodAttributeType(d *foodAttributeTypeDTO) (food.FoodAttributeType, error) {
	return food.FoodAttributeType{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
	}, nil
}

func translateFoodAttribute(d *foodAttributeDTO) (food.FoodAttribute, error) {
	attrType, err := translateOptional(firstOf(d.Type, d.LegacyType), translateFoodAttributeType)
	if err != nil {
		return food.FoodAttribute{}, err
	}

	return food.FoodAttribute{
		ID:             d.ID,
		SequenceNumber: d.SequenceNumber,
		Value:          text(d.Value),
		Type:           attrType,
	}, nil
}

func translateFoodUpdateLog(d *foodUpdateLogDTO) (food.FoodUpdateLog, error) {
	attrs, err := TranslateSlice(d.Attributes, translateFoodAttribute)
	if err != nil {
		return food.FoodUpdateLog{}, err
	}

	return food.FoodUpdateLog{
		FdcID:            d.FdcID,
		AvailableDate:    d.AvailableDate,
		BrandOwner:       d.BrandOwner,
		DataSource:       d.DataSource,
		DataType:         d.DataType,
		Description:      d.Description,
		FoodClass:        d.FoodClass,
		GtinUpc:          text(d.GtinUpc),
		HouseholdServing: d.HouseholdServing,
		Ingredients:      d.Ingredients,
		ModifiedDate:     d.ModifiedDate,
		PublicationDate:  d.PublicationDate,
		ServingSize:      d.ServingSize,
		ServingSizeUnit:  d.ServingSizeUnit,
		Category:         d.Category,
		Changes:          d.Changes,
		Attributes:       attrs,
	}, nil
}

func translateWWeiaCategory(d *wweiaCategoryDTO) (food.WWeiaFoodCategory, error) {
	return food.WWeiaFoodCategory{
		Code:        d.Code,
		Description: d.Description,
	}, nil
}

func translateRetentionFactor(d *retentionFactorDTO) (food.RetentionFactor, error) {
	return food.RetentionFactor{
		ID:          d.ID,
		Code:        text(d.Code),
		Description: d.Description,
	}, nil
}

func translateInputFoodFoundation(d *inputFoodFoundationDTO) (food.InputFoodFoundation, error) {
	sample, err := translateOptional(d.InputFood, translateSampleFood)
	if err != nil {
		return food.InputFoodFoundation{}, err
	}

	return food.InputFoodFoundation{
		ID:              d.ID,
		FoodDescription: d.FoodDescription,
		InputFood:       sample,
	}, nil
}

func translateInputFoodSurvey(d *inputFoodSurveyDTO) (food.InputFoodSurvey, error) {
	survey, err := translateOptional(d.InputFood, translateSurveyFood)
	if err != nil {
		return food.InputFoodSurvey{}, err
	}

	retention, err := translateOptional(d.RetentionFactor, translateRetentionFactor)
	if err != nil {
		return food.InputFoodSurvey{}, err
	}

	return food.InputFoodSurvey{
		ID:                    d.ID,
		Amount:                d.Amount,
		FoodDescription:       d.FoodDescription,
		IngredientCode:        text(d.IngredientCode),
		IngredientDescription: d.IngredientDescription,
		IngredientWeight:      d.IngredientWeight,
		PortionCode:           text(d.PortionCode),
		PortionDescription:    d.PortionDescription,
		SequenceNumber:        d.SequenceNumber,
		SurveyFlag:            d.SurveyFlag,
		Unit:                  d.Unit,
		InputFood:             survey,
		RetentionFactor:       retention,
	}, nil
}
