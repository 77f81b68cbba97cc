package juvenes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMalformedWrapper is returned when the response is not of the form
// ({"d": "<payload>"});
var ErrMalformedWrapper = errors.New("malformed response wrapper")

// Menu mirrors the payload of GetMenuByWeekday.
type Menu struct {
	MealOptions []MealOption `json:"MealOptions"`
}

// MealOption is one service-side category with its dishes.
type MealOption struct {
	Name      string     `json:"Name"`
	MenuItems []MenuItem `json:"MenuItems"`
}

// MenuItem is a single dish.
type MenuItem struct {
	Name string `json:"Name"`
}

// ItemNames returns the dish names in service order.
func (o MealOption) ItemNames() []string {
	names := make([]string, 0, len(o.MenuItems))
	for _, item := range o.MenuItems {
		names = append(names, item.Name)
	}
	return names
}

// MenuQuery selects one kitchen's menu for one day.
type MenuQuery struct {
	KitchenID  int
	MenuTypeID int
	Week       int // ISO week
	Weekday    int // ISO weekday, Monday = 1
	Language   string
}

// QueryFor builds a MenuQuery for the ISO week and weekday of day.
func QueryFor(kitchenID, menuTypeID int, day time.Time, lang string) MenuQuery {
	_, week := day.ISOWeek()
	return MenuQuery{
		KitchenID:  kitchenID,
		MenuTypeID: menuTypeID,
		Week:       week,
		Weekday:    isoWeekday(day),
		Language:   lang,
	}
}

func isoWeekday(day time.Time) int {
	if wd := day.Weekday(); wd != time.Sunday {
		return int(wd)
	}
	return 7
}

// Unwrap decodes a raw response body. The service returns a JavaScript
// expression of the form ({"d": "<json-encoded payload>"}); whose payload is
// itself JSON. A null or empty payload yields (nil, nil).
func Unwrap(body []byte) (*Menu, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) < 3 {
		return nil, ErrMalformedWrapper
	}
	var outer struct {
		D *string `json:"d"`
	}
	if err := json.Unmarshal(trimmed[1:len(trimmed)-2], &outer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWrapper, err)
	}
	if outer.D == nil {
		return nil, nil
	}
	inner := bytes.TrimSpace([]byte(*outer.D))
	if len(inner) == 0 {
		return nil, nil
	}
	var menu *Menu
	if err := json.Unmarshal(inner, &menu); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return menu, nil
}
