// Package food contains the FoodData Central domain model: food item
// variants, nutrient records, structural sub-objects, search results and the
// error taxonomy shared by the client, CLI and service.
//
// Records are immutable values built once from one API payload. Every food
// variant embeds [FoodItem] and satisfies [Food], whose [Food.Kind] tag
// identifies the concrete type:
//
//	item, err := client.GetFood(ctx, 534358, food.FormatFull)
//	if err != nil {
//	    return err
//	}
//	switch v := item.(type) {
//	case food.BrandedFoodItem:
//	    fmt.Println(v.Brand, v.GtinUpc)
//	case food.FoundationFoodItem:
//	    fmt.Println(v.NdbID)
//	}
//
// A few fields carry a human-readable placeholder instead of a null when the
// API omits them. Those fields use [Defaulted] so callers can tell a real
// value from a placeholder while JSON and YAML output keep the placeholder
// text.
package food
