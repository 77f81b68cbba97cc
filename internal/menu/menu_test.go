package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/ruoka/internal/filter"
	"github.com/five82/ruoka/internal/juvenes"
)

var newton = Restaurant{Name: "Newton", KitchenID: 6, MenuTypeID: 60}

func option(name string, items ...string) juvenes.MealOption {
	opt := juvenes.MealOption{Name: name}
	for _, item := range items {
		opt.MenuItems = append(opt.MenuItems, juvenes.MenuItem{Name: item})
	}
	return opt
}

func TestEntry_MainAndExtras(t *testing.T) {
	single := Entry{Items: []string{"Soup"}}
	assert.Equal(t, "Soup", single.Main())
	assert.Empty(t, single.Extras())

	multi := Entry{Items: []string{"Chicken curry", "Rice", "Salad"}}
	assert.Equal(t, "Chicken curry, ", multi.Main())
	assert.Equal(t, "Rice, Salad", multi.Extras())

	assert.Empty(t, Entry{}.Main())
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Salad bar", Capitalize("SALAD BAR"))
	assert.Equal(t, "Äyriäiset", Capitalize("äYRIÄISET"))
	assert.Equal(t, "Lounas kasvis-", Capitalize("LOUNAS Kasvis-"))
	assert.Empty(t, Capitalize(""))
}

func TestEffectiveOptions_AppendsUnknownInEncounterOrder(t *testing.T) {
	defs := DefaultOptions()
	got := EffectiveOptions(defs, []juvenes.MealOption{
		option("SALAD BAR"),
		option("LOUNAS1"),
		option("JÄLKIRUOKA"),
		option("SALAD BAR"),
	})

	require.Len(t, got, len(defs)+2)
	assert.Equal(t, defs, got[:len(defs)])
	assert.Equal(t, OptionDef{Key: "SALAD BAR", Name: "Salad bar"}, got[len(defs)])
	assert.Equal(t, OptionDef{Key: "JÄLKIRUOKA", Name: "Jälkiruoka"}, got[len(defs)+1])
}

func TestArrange_CanonicalOrderThenSynthesized(t *testing.T) {
	entries := Arrange(DefaultOptions(), []juvenes.MealOption{
		option("SALAD BAR", "Greens"),
		option("KEVYTKEITTO", "Tomato soup", "Bread"),
		option("LOUNAS1", "Chicken curry", "Rice"),
	})

	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Key: "LOUNAS1", Name: "Rohee", Items: []string{"Chicken curry", "Rice"}}, entries[0])
	assert.Equal(t, "Reilu kevyt", entries[1].Name)
	assert.Equal(t, Entry{Key: "SALAD BAR", Name: "Salad bar", Items: []string{"Greens"}}, entries[2])
}

func TestArrange_ConsumesEachCategoryOnce(t *testing.T) {
	defs := []OptionDef{
		{Key: "LOUNAS1", Name: "Rohee"},
		{Key: "LOUNAS1", Name: "Again"},
	}
	entries := Arrange(defs, []juvenes.MealOption{
		option("LOUNAS1", "First"),
		option("LOUNAS1", "Second"),
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "Rohee", entries[0].Name)
	assert.Equal(t, []string{"Second"}, entries[0].Items, "last duplicate wins")
}

func TestArrange_SkipsCategoriesWithoutItems(t *testing.T) {
	entries := Arrange(DefaultOptions(), []juvenes.MealOption{option("LOUNAS2")})
	assert.Empty(t, entries)
}

func TestBuild_NilMenu(t *testing.T) {
	board := Build(newton, DefaultOptions(), nil, filter.Query{})
	assert.True(t, board.Empty())
	assert.Equal(t, newton, board.Restaurant)
}

func TestBuild_Filters(t *testing.T) {
	m := &juvenes.Menu{MealOptions: []juvenes.MealOption{
		option("LOUNAS1", "Chicken curry", "Rice"),
		option("RUOKAISA KEITTO", "Salmon soup"),
	}}

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"no filter", "", []string{"LOUNAS1", "RUOKAISA KEITTO"}},
		{"inclusion on item", "salmon", []string{"RUOKAISA KEITTO"}},
		{"inclusion on display name", "rohee", []string{"LOUNAS1"}},
		{"inclusion on restaurant", "NEWTON", []string{"LOUNAS1", "RUOKAISA KEITTO"}},
		{"exclusion", "-curry", []string{"RUOKAISA KEITTO"}},
		{"exclusion on restaurant", "-newton", nil},
		{"inclusion and exclusion", "soup -salmon", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := Build(newton, DefaultOptions(), m, filter.ParseLine(tt.line))
			var keys []string
			for _, e := range board.Entries {
				keys = append(keys, e.Key)
			}
			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestBuild_OnlyEntryExcludedLeavesBoardEmpty(t *testing.T) {
	m := &juvenes.Menu{MealOptions: []juvenes.MealOption{option("LOUNAS1", "Chicken curry", "Rice")}}
	board := Build(newton, DefaultOptions(), m, filter.ParseLine("-curry"))
	assert.True(t, board.Empty())
}
