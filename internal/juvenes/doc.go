// Package juvenes provides an HTTP client for the Juvenes lunch menu service.
//
// # Overview
//
// The service publishes one menu per kitchen, menu type and day through the
// GetMenuByWeekday endpoint. A kitchen is addressed by two opaque numeric
// codes (KitchenId, MenuTypeId); the day by its ISO week and ISO weekday.
//
// # Response Format
//
// The endpoint answers with a JavaScript expression rather than plain JSON:
//
//	({"d": "{\"MealOptions\": [...]}"});
//
// Unwrap strips the surrounding parentheses and semicolon, decodes the
// wrapper object and then decodes the string held in "d" a second time. The
// quirk lives entirely in Unwrap so it can be tested and replaced on its own.
//
// A null "d" or a null inner payload means the kitchen has nothing for the
// requested day; Unwrap reports that as (nil, nil).
//
// # Error Handling
//
//   - Network errors: "execute request: ..."
//   - Non-200 responses: "menu service returned status 503"
//   - Bad wrapper: errors wrapping ErrMalformedWrapper
//   - Bad payload: "decode payload: ..."
//
// The client never retries; callers decide whether one failing kitchen
// aborts the run.
package juvenes
