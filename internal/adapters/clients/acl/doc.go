// Package acl is the anti-corruption layer between the FoodData Central
// REST API and the records in pkg/food.
//
// Nothing outside this package sees the wire format. Requests flow through
// three steps:
//
//   - [QueryParams.Encode] validates arguments against the documented API
//     limits and serializes them, reporting non-fatal [Advisory] notices.
//   - [FoodDataClient.Fetch] issues one GET and runs the body through
//     [ParseEnvelope], which classifies the two FDC error shapes.
//   - The Translate functions decode unexported DTOs and build the typed
//     records, failing with a *food.MappingError when a required key is
//     absent or the dataType is unknown.
//
// Payload fields that the API sends as either numbers or strings are read
// leniently, and alternative key spellings are tried in priority order.
package acl
