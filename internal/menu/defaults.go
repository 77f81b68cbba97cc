package menu

// DefaultRestaurants are the kitchens listed when no config overrides them.
func DefaultRestaurants() []Restaurant {
	return []Restaurant{
		{Name: "Newton", KitchenID: 6, MenuTypeID: 60},
		{Name: "Zip", KitchenID: 12, MenuTypeID: 60},
		{Name: "Edison", KitchenID: 2, MenuTypeID: 60},
		{Name: "Pastabaari", KitchenID: 26, MenuTypeID: 11},
		{Name: "Fast Voltti", KitchenID: 25, MenuTypeID: 4},
		{Name: "Fusion Kitchen", KitchenID: 6, MenuTypeID: 3},
	}
}

// DefaultOptions is the canonical category order and naming.
func DefaultOptions() []OptionDef {
	return []OptionDef{
		{Key: "LOUNAS1", Name: "Rohee"},
		{Key: "LOUNAS2", Name: "Rohee"},
		{Key: "LOUNAS Kasvis-", Name: "Rohee"},
		{Key: "RUOKAISA KEITTO", Name: "Reilu"},
		{Key: "KEVYTKEITTO", Name: "Reilu kevyt"},
		{Key: "RUOKAISA KOMPONENTTI", Name: "Reilu kevyt"},
	}
}
