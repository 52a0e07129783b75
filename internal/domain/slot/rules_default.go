package slot

func DefaultRules() RuleSet {
	return RuleSet{
		Additive: []BuffRule{
			{Name: "rain_waters_plants", Self: TagIs("plant"), Neighbor: IDIs("rain"), Amount: 1},
			{Name: "water_feeds_plants", Self: TagIs("plant"), Neighbor: IDIs("water"), Amount: 1},
			{Name: "water_feeds_fish", Self: IDIs("fish"), Neighbor: IDIs("water"), Amount: 3},
			{Name: "dog_guards_humans", Self: TagIs("human"), Neighbor: IDIs("dog"), Amount: 2},
			{Name: "chef_cooks_food", Self: TagIs("food"), Neighbor: IDIs("chef"), Amount: 2},
			{Name: "farmer_tends_plants", Self: TagIs("plant"), Neighbor: IDIs("farmer"), Amount: 2},
			{Name: "moon_glow", Self: AnySymbol, Neighbor: IDIs("moon"), Amount: 2},
			{Name: "bee_pollinates", Self: IDIs("bee"), Neighbor: IDIs("blossom"), Amount: 1},
			{Name: "seed_sprouts", Self: IDIs("seed"), Neighbor: IDIs("sun", "rain"), Amount: 3, Once: true},
		},
		Multiplicative: []BuffRule{
			{Name: "sun_ripens_plants", Self: TagIs("plant"), Neighbor: IDIs("sun"), Amount: 2},
			{Name: "joker_doubles", Self: AnySymbol, Neighbor: IDIs("joker"), Amount: 2},
			{Name: "genie_doubles", Self: AnySymbol, Neighbor: IDIs("genie"), Amount: 2},
			{Name: "king_rules_humans", Self: TagIs("human"), Neighbor: IDIs("king"), Amount: 2},
			{Name: "mushroom_rain", Self: IDIs("mushroom"), Neighbor: IDIs("rain"), Amount: 3, Once: true},
		},
		Consumers: []ConsumeRule{
			{Name: "cat_eats_mouse", Consumer: "cat", Target: IDIs("mouse", "milk"), Flat: 20},
			{Name: "rabbit_eats_carrot", Consumer: "rabbit", Target: IDIs("carrot"), Flat: 8},
			{Name: "monkey_eats_fruit", Consumer: "monkey", Target: TagIs("fruit"), Multiplier: 6},
			{Name: "fox_eats_rabbit", Consumer: "fox", Target: IDIs("rabbit"), Multiplier: 8},
			{Name: "miner_mines", Consumer: "miner", Target: IDIs("rock", "diamond"), Multiplier: 10},
			{Name: "fire_burns_tree", Consumer: "fire", Target: IDIs("tree"), Multiplier: 5},
			{Name: "lightning_burns_tree", Consumer: "lightning", Target: IDIs("tree"), Flat: 5},
			{Name: "fisherman_catches_fish", Consumer: "fisherman", Target: IDIs("fish"), Multiplier: 6},
			{Name: "key_opens_safe", Consumer: "key", Target: IDIs("safe"), Flat: 50},
			{Name: "key_opens_lockbox", Consumer: "key", Target: IDIs("lockbox"), Flat: 20},
		},
		Specials: []SpecialRule{
			{Name: "vase_shatters", Symbol: "vase", Kind: SpecialShatter, Hazard: IDIs("fire", "lightning")},
			{Name: "slotmachine_jackpot", Symbol: "slotmachine", Kind: SpecialRandomPayout, Min: 0, Max: 50},
			{Name: "rainbow_spectrum", Symbol: "rainbow", Kind: SpecialBoardTagCount, Weight: 3},
			{Name: "wizard_echo", Symbol: "wizard", Kind: SpecialNeighborEcho},
		},
	}
}
