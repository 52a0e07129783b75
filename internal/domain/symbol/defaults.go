package symbol

// StartingDeck is the deck every new game begins with.
var StartingDeck = []string{"coin", "coin", "cherry", "flower", "mouse"}

func DefaultCatalog() Catalog {
	return NewCatalog(defaultDefinitions())
}

func defaultDefinitions() []Definition {
	return []Definition{
		{ID: "coin", Name: "Coin", Icon: "🪙", Rarity: RarityCommon, BaseValue: 1, Effect: "Pays 1."},
		{ID: "cherry", Name: "Cherry", Icon: "🍒", Rarity: RarityCommon, BaseValue: 1, Tags: []string{"fruit"}, Effect: "Pays 1."},
		{ID: "flower", Name: "Flower", Icon: "🌻", Rarity: RarityCommon, BaseValue: 1, Tags: []string{"plant"}, Effect: "Pays 1."},
		{ID: "mouse", Name: "Mouse", Icon: "🐭", Rarity: RarityCommon, BaseValue: 1, Tags: []string{"animal"}, Effect: "Pays 1. Cats love it."},
		{ID: "milk", Name: "Milk", Icon: "🥛", Rarity: RarityCommon, BaseValue: 1, Tags: []string{"food", "drink"}, Effect: "Pays 1."},
		{ID: "rock", Name: "Rock", Icon: "🪨", Rarity: RarityCommon, BaseValue: 0, Tags: []string{"mineral"}, Effect: "Pays 0. Miners break it."},
		{ID: "seed", Name: "Seed", Icon: "🌱", Rarity: RarityCommon, BaseValue: 0, Tags: []string{"plant"}, Effect: "+3 if near Sun/Rain."},
		{ID: "carrot", Name: "Carrot", Icon: "🥕", Rarity: RarityCommon, BaseValue: 1, Tags: []string{"plant", "food"}, Effect: "Rabbit food."},
		{ID: "rabbit", Name: "Rabbit", Icon: "🐰", Rarity: RarityCommon, BaseValue: 1, Tags: []string{"animal"}, Effect: "Eats Carrot +8."},
		{ID: "apple", Name: "Apple", Icon: "🍎", Rarity: RarityCommon, BaseValue: 1, Tags: []string{"fruit", "food"}, Effect: "A fruit."},
		{ID: "bee", Name: "Bee", Icon: "🐝", Rarity: RarityCommon, BaseValue: 1, Tags: []string{"animal"}, Effect: "Each Blossom +1."},
		{ID: "blossom", Name: "Blossom", Icon: "🌸", Rarity: RarityCommon, BaseValue: 1, Tags: []string{"plant"}, Effect: "A flower."},

		{ID: "rain", Name: "Rain", Icon: "🌧️", Rarity: RarityUncommon, BaseValue: 1, Effect: "Adjacent Plants +1."},
		{ID: "dog", Name: "Dog", Icon: "🐶", Rarity: RarityUncommon, BaseValue: 2, Tags: []string{"animal"}, Effect: "Adjacent Humans +2."},
		{ID: "key", Name: "Key", Icon: "🔑", Rarity: RarityUncommon, BaseValue: 1, Effect: "Opens locks/safes."},
		{ID: "monkey", Name: "Monkey", Icon: "🐒", Rarity: RarityUncommon, BaseValue: 1, Tags: []string{"animal"}, Effect: "Eats Fruits for big bonus."},
		{ID: "banana", Name: "Banana", Icon: "🍌", Rarity: RarityUncommon, BaseValue: 1, Tags: []string{"fruit"}, Effect: "Pays 1."},
		{ID: "lockbox", Name: "Lockbox", Icon: "🔒", Rarity: RarityUncommon, BaseValue: 1, Tags: []string{"box"}, Effect: "Pays 20 when opened."},
		{ID: "beer", Name: "Beer", Icon: "🍺", Rarity: RarityUncommon, BaseValue: 1, Tags: []string{"drink"}, Effect: "Pays 1."},
		{ID: "farmer", Name: "Farmer", Icon: "👨‍🌾", Rarity: RarityUncommon, BaseValue: 2, Tags: []string{"human"}, Effect: "Adjacent Plants +2."},
		{ID: "mushroom", Name: "Mushroom", Icon: "🍄", Rarity: RarityUncommon, BaseValue: 2, Tags: []string{"plant"}, Effect: "x3 if near Rain."},
		{ID: "fish", Name: "Fish", Icon: "🐟", Rarity: RarityUncommon, BaseValue: 2, Tags: []string{"animal", "food"}, Effect: "+3 if near Water."},
		{ID: "water", Name: "Water", Icon: "💧", Rarity: RarityUncommon, BaseValue: 1, Effect: "Adjacent Plants +1, Fish +3."},
		{ID: "fire", Name: "Fire", Icon: "🔥", Rarity: RarityUncommon, BaseValue: 1, Effect: "Burns Tree for x5."},
		{ID: "tree", Name: "Tree", Icon: "🌲", Rarity: RarityUncommon, BaseValue: 3, Tags: []string{"plant"}, Effect: "A tree."},

		{ID: "cat", Name: "Cat", Icon: "🐱", Rarity: RarityRare, BaseValue: 2, Tags: []string{"animal"}, Effect: "Eats Mouse/Milk for +20."},
		{ID: "sun", Name: "Sun", Icon: "☀️", Rarity: RarityRare, BaseValue: 2, Effect: "Adjacent Plants x2."},
		{ID: "miner", Name: "Miner", Icon: "⛏️", Rarity: RarityRare, BaseValue: 2, Tags: []string{"human"}, Effect: "Mines Rock/Diamond for 10x value."},
		{ID: "diamond", Name: "Diamond", Icon: "💎", Rarity: RarityRare, BaseValue: 5, Tags: []string{"mineral"}, Effect: "Pays 5."},
		{ID: "safe", Name: "Safe", Icon: "🗝️", Rarity: RarityRare, BaseValue: 1, Tags: []string{"box"}, Effect: "Pays 50 when opened."},
		{ID: "chef", Name: "Chef", Icon: "👨‍🍳", Rarity: RarityRare, BaseValue: 2, Tags: []string{"human"}, Effect: "Adjacent Food +2."},
		{ID: "fox", Name: "Fox", Icon: "🦊", Rarity: RarityRare, BaseValue: 3, Tags: []string{"animal"}, Effect: "Eats Rabbit x8."},
		{ID: "moon", Name: "Moon", Icon: "🌙", Rarity: RarityRare, BaseValue: 3, Effect: "Adjacent +2."},
		{ID: "lightning", Name: "Lightning", Icon: "⚡", Rarity: RarityRare, BaseValue: 2, Effect: "Burns Tree, AOE +5."},
		{ID: "vase", Name: "Antique Vase", Icon: "🏺", Rarity: RarityRare, BaseValue: 5, Tags: []string{"treasure"}, Effect: "Breaks if near Fire/Lightning."},
		{ID: "fisherman", Name: "Fisherman", Icon: "🎣", Rarity: RarityRare, BaseValue: 3, Tags: []string{"human"}, Effect: "Catches Fish x6."},
		{ID: "wizard", Name: "Wizard", Icon: "🧙", Rarity: RarityRare, BaseValue: 4, Tags: []string{"human"}, Effect: "Random adjacent x2."},

		{ID: "joker", Name: "Joker", Icon: "🃏", Rarity: RarityLegendary, BaseValue: 3, Effect: "Adjacent x2."},
		{ID: "king", Name: "King", Icon: "👑", Rarity: RarityLegendary, BaseValue: 2, Tags: []string{"human"}, Effect: "Adjacent Humans x2."},
		{ID: "dragon", Name: "Dragon", Icon: "🐲", Rarity: RarityLegendary, BaseValue: 3, Tags: []string{"animal"}, Effect: "Symbol of power."},
		{ID: "rainbow", Name: "Rainbow", Icon: "🌈", Rarity: RarityLegendary, BaseValue: 5, Effect: "Each unique tag +3."},
		{ID: "slotmachine", Name: "Slot Machine", Icon: "🎰", Rarity: RarityLegendary, BaseValue: 0, Effect: "Random 0-50 coins."},
		{ID: "genie", Name: "Genie", Icon: "🧞", Rarity: RarityLegendary, BaseValue: 10, Effect: "Adjacent x2."},
		{ID: "wishingstar", Name: "Wishing Star", Icon: "⭐", Rarity: RarityLegendary, BaseValue: 8, Effect: "Copy best effect."},
	}
}
