// Package fdc is a client for the USDA FoodData Central API.
//
// Each method performs exactly one GET request. Arguments are validated
// before anything is sent, and responses are mapped into the records of
// package food:
//
//	client, err := fdc.New(os.Getenv("FDC_API_KEY"))
//	if err != nil {
//	    return err
//	}
//
//	item, err := client.GetFood(ctx, 534358, food.FormatFull)
//	if err != nil {
//	    return err
//	}
//
//	if branded, ok := item.(food.BrandedFoodItem); ok {
//	    fmt.Println(branded.Brand, branded.GtinUpc)
//	}
//
// Errors belong to the taxonomy in package food and can be told apart with
// errors.Is or helpers such as food.IsRateLimited. Nothing is retried.
//
// Every mapped call has a Raw twin returning the API payload after error
// envelope inspection but before mapping.
package fdc
