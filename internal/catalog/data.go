package catalog

import "github.com/yishak-cs/tea_alchemy/internal/models"

// Recognized alignment/contribution axes.
const (
	AxisSleep     = "Sleep"
	AxisCalm      = "Calm"
	AxisFocus     = "Focus"
	AxisAlertness = "Alertness"
)

// Recognized flavor categories.
const (
	CategoryFloral = "Floral"
	CategoryCitrus = "Citrus"
	CategoryEarthy = "Earthy"
	CategorySpicy  = "Spicy"
	CategorySweet  = "Sweet"
)

func axes(sleep, calm, focus, alertness int) models.AxisScores {
	return models.AxisScores{
		AxisSleep:     sleep,
		AxisCalm:      calm,
		AxisFocus:     focus,
		AxisAlertness: alertness,
	}
}

// Default returns the built-in tea catalog.
// Every call builds a fresh Definition so callers may modify it before New.
func Default() Definition {
	return Definition{
		Axes:             []string{AxisSleep, AxisCalm, AxisFocus, AxisAlertness},
		FlavorCategories: []string{CategoryFloral, CategoryCitrus, CategoryEarthy, CategorySpicy, CategorySweet},
		// The outcome labels and the axis vocabulary diverged: "Energy" is ranked on Alertness.
		RankingAxisOverrides: map[string]string{"energy": AxisAlertness},
		Products:             defaultProducts(),
		Outcomes: []models.BlendOutcome{
			sleepOutcome(),
			calmOutcome(),
			focusOutcome(),
			energyOutcome(),
		},
		BlendSizes: []models.ProductSize{
			{Label: "50g", Grams: 50, Price: 22.0},
			{Label: "100g", Grams: 100, Price: 40.0},
			{Label: "250g", Grams: 250, Price: 88.0},
		},
	}
}

func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          "solstice-rest",
			Name:        "Solstice Rest",
			Description: "A dreamy evening blend with rooibos, vanilla, and chamomile for winding down.",
			Outcomes:    []string{"Sleep", "Calm"},
			Sizes: []models.ProductSize{
				{Label: "50g", Grams: 50, Price: 18.0},
				{Label: "100g", Grams: 100, Price: 32.0},
			},
		},
		{
			ID:          "coastal-focus",
			Name:        "Coastal Focus",
			Description: "Bright sencha, lemon myrtle, and ginkgo to keep the mind clear and steady.",
			Outcomes:    []string{"Focus", "Calm"},
			Sizes: []models.ProductSize{
				{Label: "50g", Grams: 50, Price: 20.0},
				{Label: "100g", Grams: 100, Price: 36.0},
			},
		},
		{
			ID:          "morning-spark",
			Name:        "Morning Spark",
			Description: "A lively black tea base with cacao nibs and orange peel for uplifting energy.",
			Outcomes:    []string{"Energy", "Alertness"},
			Sizes: []models.ProductSize{
				{Label: "50g", Grams: 50, Price: 19.0},
				{Label: "100g", Grams: 100, Price: 34.0},
			},
		},
		{
			ID:          "quiet-glow",
			Name:        "Quiet Glow",
			Description: "White tea with lavender and rose petals for a soft, soothing glow.",
			Outcomes:    []string{"Calm", "Sleep"},
			Sizes: []models.ProductSize{
				{Label: "50g", Grams: 50, Price: 21.0},
				{Label: "100g", Grams: 100, Price: 38.0},
			},
		},
	}
}

func sleepOutcome() models.BlendOutcome {
	return models.BlendOutcome{
		ID:          "sleep",
		Title:       AxisSleep,
		Description: "Caffeine-light bases and soft botanicals to ease into a restful night.",
		Bases: []models.Base{
			{ID: "rooibos", Title: "Rooibos", Description: "Naturally caffeine-free red bush with honeyed depth.", Alignment: axes(5, 4, 1, 0)},
			{ID: "chamomile", Title: "Chamomile", Description: "Whole Egyptian chamomile flowers, apple-sweet and gentle.", Alignment: axes(5, 5, 1, 0)},
			{ID: "honeybush", Title: "Honeybush", Description: "Rooibos' sweeter cousin with a stone-fruit finish.", Alignment: axes(4, 4, 1, 0)},
			{ID: "white-peony", Title: "White Peony", Description: "Delicate bai mu dan with low caffeine and a floral lift.", Alignment: axes(3, 4, 2, 1)},
			{ID: "lemon-balm-leaf", Title: "Lemon Balm Leaf", Description: "Soft lemony mint leaf traditionally taken before bed.", Alignment: axes(4, 5, 2, 0)},
			{ID: "hojicha", Title: "Hojicha", Description: "Roasted Japanese green tea, toasty and low in caffeine.", Alignment: axes(3, 3, 2, 1)},
			{ID: "decaf-ceylon", Title: "Decaf Ceylon", Description: "CO2 decaffeinated black tea for a classic evening cup.", Alignment: axes(2, 2, 2, 1)},
			{ID: "genmaicha", Title: "Genmaicha", Description: "Green tea with toasted rice, nutty and mellow.", Alignment: axes(2, 3, 3, 2)},
		},
		Botanicals: []models.Botanical{
			{ID: "lavender", Title: "Lavender", Attributes: []string{"floral", "soothing"}, Contributions: models.AxisScores{AxisSleep: 3, AxisCalm: 2}, BaseIDs: []string{"rooibos", "chamomile", "white-peony"}},
			{ID: "passionflower", Title: "Passionflower", Attributes: []string{"grassy", "relaxing"}, Contributions: models.AxisScores{AxisSleep: 3, AxisCalm: 1}, BaseIDs: []string{"rooibos", "honeybush", "decaf-ceylon"}},
			{ID: "valerian-root", Title: "Valerian Root", Attributes: []string{"earthy", "sedative"}, Contributions: models.AxisScores{AxisSleep: 4}, BaseIDs: []string{"rooibos", "honeybush"}},
			{ID: "linden-flower", Title: "Linden Flower", Attributes: []string{"honeyed", "gentle"}, Contributions: models.AxisScores{AxisSleep: 2, AxisCalm: 2}, BaseIDs: []string{"white-peony", "hojicha", "chamomile"}},
			{ID: "lemon-verbena", Title: "Lemon Verbena", Attributes: []string{"citrus", "bright"}, Contributions: models.AxisScores{AxisSleep: 1, AxisCalm: 1}, BaseIDs: []string{"lemon-balm-leaf", "genmaicha"}},
		},
		Flavors: []models.Flavor{
			{ID: "vanilla-bean", Title: "Vanilla Bean", Category: CategorySweet, Notes: []string{"creamy", "warm"}, Spectrum: map[string]int{CategorySweet: 3, CategoryFloral: 1}, BaseIDs: []string{"rooibos", "honeybush", "decaf-ceylon"}, IncompatibleWith: []string{"smoked-ginger"}},
			{ID: "cocoa-husk", Title: "Cocoa Husk", Category: CategoryEarthy, Notes: []string{"chocolate", "toasty"}, Spectrum: map[string]int{CategoryEarthy: 2, CategorySweet: 2}, BaseIDs: []string{"rooibos", "hojicha", "decaf-ceylon"}},
			{ID: "smoked-ginger", Title: "Smoked Ginger", Category: CategorySpicy, Notes: []string{"smoky", "warming"}, Spectrum: map[string]int{CategorySpicy: 3, CategoryEarthy: 1}, BaseIDs: []string{"hojicha", "decaf-ceylon", "genmaicha"}, IncompatibleWith: []string{"vanilla-bean", "rose-petal"}},
			{ID: "rose-petal", Title: "Rose Petal", Category: CategoryFloral, Notes: []string{"perfumed", "soft"}, Spectrum: map[string]int{CategoryFloral: 3, CategorySweet: 1}, BaseIDs: []string{"white-peony", "chamomile", "rooibos"}, IncompatibleWith: []string{"smoked-ginger"}},
			{ID: "orange-blossom", Title: "Orange Blossom", Category: CategoryCitrus, Notes: []string{"zesty", "floral"}, Spectrum: map[string]int{CategoryCitrus: 2, CategoryFloral: 2}, BaseIDs: []string{"white-peony", "lemon-balm-leaf", "chamomile"}},
		},
	}
}

func calmOutcome() models.BlendOutcome {
	return models.BlendOutcome{
		ID:          "calm",
		Title:       AxisCalm,
		Description: "Balanced, grounding cups for a steady, unhurried afternoon.",
		Bases: []models.Base{
			{ID: "jasmine-green", Title: "Jasmine Green", Description: "Green tea scented over fresh jasmine blossoms.", Alignment: axes(1, 4, 3, 2)},
			{ID: "white-peony", Title: "White Peony", Description: "Silvery leaf and bud with a hay-sweet finish.", Alignment: axes(3, 5, 2, 1)},
			{ID: "tieguanyin", Title: "Tieguanyin", Description: "Rolled Anxi oolong, buttery and orchid-like.", Alignment: axes(1, 4, 3, 2)},
			{ID: "tulsi", Title: "Tulsi", Description: "Holy basil, clove-bright and restorative.", Alignment: axes(2, 5, 2, 1)},
			{ID: "gaba-oolong", Title: "GABA Oolong", Description: "Nitrogen-fermented oolong rich in GABA.", Alignment: axes(2, 5, 2, 1)},
			{ID: "rooibos", Title: "Rooibos", Description: "Naturally caffeine-free red bush with honeyed depth.", Alignment: axes(5, 4, 1, 0)},
		},
		Botanicals: []models.Botanical{
			{ID: "lemon-balm", Title: "Lemon Balm", Attributes: []string{"lemony", "uplifting"}, Contributions: models.AxisScores{AxisCalm: 3, AxisSleep: 1}, BaseIDs: []string{"jasmine-green", "tulsi", "white-peony"}},
			{ID: "ashwagandha", Title: "Ashwagandha", Attributes: []string{"earthy", "adaptogen"}, Contributions: models.AxisScores{AxisCalm: 4}, BaseIDs: []string{"tulsi", "rooibos", "gaba-oolong"}},
			{ID: "rose-bud", Title: "Rose Bud", Attributes: []string{"floral", "tender"}, Contributions: models.AxisScores{AxisCalm: 2, AxisSleep: 1}, BaseIDs: []string{"white-peony", "tieguanyin", "jasmine-green"}},
			{ID: "licorice-root", Title: "Licorice Root", Attributes: []string{"sweet", "rounded"}, Contributions: models.AxisScores{AxisCalm: 2}, BaseIDs: []string{"rooibos", "tulsi"}},
		},
		Flavors: []models.Flavor{
			{ID: "bergamot", Title: "Bergamot", Category: CategoryCitrus, Notes: []string{"citrus oil", "bright"}, Spectrum: map[string]int{CategoryCitrus: 3, CategoryFloral: 1}, BaseIDs: []string{"jasmine-green", "tieguanyin", "rooibos"}, IncompatibleWith: []string{"lapsang-smoke"}},
			{ID: "lapsang-smoke", Title: "Lapsang Smoke", Category: CategoryEarthy, Notes: []string{"pine smoke", "resin"}, Spectrum: map[string]int{CategoryEarthy: 3, CategorySpicy: 1}, BaseIDs: []string{"tieguanyin", "rooibos"}, IncompatibleWith: []string{"bergamot", "honey-pear"}},
			{ID: "honey-pear", Title: "Honey Pear", Category: CategorySweet, Notes: []string{"juicy", "nectar"}, Spectrum: map[string]int{CategorySweet: 3, CategoryFloral: 1}, BaseIDs: []string{"white-peony", "gaba-oolong", "tulsi"}, IncompatibleWith: []string{"lapsang-smoke"}},
			{ID: "cardamom", Title: "Cardamom", Category: CategorySpicy, Notes: []string{"cooling", "aromatic"}, Spectrum: map[string]int{CategorySpicy: 2, CategoryCitrus: 1}, BaseIDs: []string{"tulsi", "rooibos", "tieguanyin"}},
		},
	}
}

func focusOutcome() models.BlendOutcome {
	return models.BlendOutcome{
		ID:          "focus",
		Title:       AxisFocus,
		Description: "Clear-headed greens and bright botanicals for deep work.",
		Bases: []models.Base{
			{ID: "sencha", Title: "Sencha", Description: "Steamed Japanese green tea, grassy and clean.", Alignment: axes(1, 3, 4, 3)},
			{ID: "gyokuro", Title: "Gyokuro", Description: "Shade-grown green tea with deep umami.", Alignment: axes(0, 3, 5, 3)},
			{ID: "matcha", Title: "Matcha", Description: "Stone-ground tencha for sustained attention.", Alignment: axes(0, 2, 5, 4)},
			{ID: "dragonwell", Title: "Dragonwell", Description: "Pan-fired Longjing, chestnut-sweet.", Alignment: axes(1, 3, 4, 2)},
			{ID: "darjeeling-first-flush", Title: "Darjeeling First Flush", Description: "Muscatel spring black tea, light and brisk.", Alignment: axes(0, 2, 3, 3)},
			{ID: "yerba-mate", Title: "Yerba Mate", Description: "South American holly leaf with a smooth lift.", Alignment: axes(0, 1, 4, 5)},
			{ID: "silver-needle", Title: "Silver Needle", Description: "Downy white buds, sweet and quietly alert.", Alignment: axes(2, 4, 3, 2)},
		},
		Botanicals: []models.Botanical{
			{ID: "ginkgo-leaf", Title: "Ginkgo Leaf", Attributes: []string{"green", "herbaceous"}, Contributions: models.AxisScores{AxisFocus: 3}, BaseIDs: []string{"sencha", "gyokuro", "dragonwell"}},
			{ID: "lemon-myrtle", Title: "Lemon Myrtle", Attributes: []string{"citrus", "native"}, Contributions: models.AxisScores{AxisFocus: 2, AxisAlertness: 1}, BaseIDs: []string{"sencha", "silver-needle", "darjeeling-first-flush"}},
			{ID: "rosemary", Title: "Rosemary", Attributes: []string{"piney", "clarifying"}, Contributions: models.AxisScores{AxisFocus: 3, AxisAlertness: 1}, BaseIDs: []string{"yerba-mate", "matcha", "dragonwell"}},
			{ID: "gotu-kola", Title: "Gotu Kola", Attributes: []string{"grassy", "adaptogen"}, Contributions: models.AxisScores{AxisFocus: 2, AxisCalm: 1}, BaseIDs: []string{"gyokuro", "silver-needle"}},
		},
		Flavors: []models.Flavor{
			{ID: "yuzu", Title: "Yuzu", Category: CategoryCitrus, Notes: []string{"tart", "aromatic"}, Spectrum: map[string]int{CategoryCitrus: 3}, BaseIDs: []string{"sencha", "gyokuro", "matcha"}, IncompatibleWith: []string{"toasted-sesame"}},
			{ID: "toasted-sesame", Title: "Toasted Sesame", Category: CategoryEarthy, Notes: []string{"nutty", "savory"}, Spectrum: map[string]int{CategoryEarthy: 3}, BaseIDs: []string{"dragonwell", "matcha"}, IncompatibleWith: []string{"yuzu"}},
			{ID: "peppermint", Title: "Peppermint", Category: CategorySpicy, Notes: []string{"cool", "sharp"}, Spectrum: map[string]int{CategorySpicy: 2, CategoryCitrus: 1}, BaseIDs: []string{"yerba-mate", "sencha", "darjeeling-first-flush"}},
			{ID: "elderflower", Title: "Elderflower", Category: CategoryFloral, Notes: []string{"lychee", "honeyed"}, Spectrum: map[string]int{CategoryFloral: 3, CategorySweet: 1}, BaseIDs: []string{"silver-needle", "darjeeling-first-flush", "dragonwell"}},
		},
	}
}

func energyOutcome() models.BlendOutcome {
	return models.BlendOutcome{
		ID:          "energy",
		Title:       "Energy",
		Description: "Bold, brisk bases and warming spice for a lasting lift.",
		Bases: []models.Base{
			{ID: "assam", Title: "Assam", Description: "Malty second flush black tea with real backbone.", Alignment: axes(0, 1, 3, 5)},
			{ID: "yerba-mate", Title: "Yerba Mate", Description: "South American holly leaf with a smooth lift.", Alignment: axes(0, 1, 4, 5)},
			{ID: "guayusa", Title: "Guayusa", Description: "Amazonian leaf, earthy and naturally energizing.", Alignment: axes(0, 2, 4, 4)},
			{ID: "ceylon-breakfast", Title: "Ceylon Breakfast", Description: "High-grown Sri Lankan black tea, bright and brisk.", Alignment: axes(0, 1, 3, 4)},
			{ID: "shou-puerh", Title: "Shou Pu-erh", Description: "Ripe fermented pu-erh, deep and grounding.", Alignment: axes(0, 2, 3, 3)},
			{ID: "matcha", Title: "Matcha", Description: "Stone-ground tencha for sustained attention.", Alignment: axes(0, 2, 5, 4)},
			{ID: "black-chai", Title: "Black Chai", Description: "CTC black tea built for spice and milk.", Alignment: axes(0, 1, 2, 4)},
		},
		Botanicals: []models.Botanical{
			{ID: "cacao-nibs", Title: "Cacao Nibs", Attributes: []string{"chocolate", "roasty"}, Contributions: models.AxisScores{AxisAlertness: 2, AxisFocus: 1}, BaseIDs: []string{"assam", "shou-puerh", "black-chai"}},
			{ID: "ginseng", Title: "Ginseng", Attributes: []string{"bitter-sweet", "adaptogen"}, Contributions: models.AxisScores{AxisAlertness: 3, AxisFocus: 1}, BaseIDs: []string{"guayusa", "yerba-mate", "ceylon-breakfast"}},
			{ID: "orange-peel", Title: "Orange Peel", Attributes: []string{"citrus", "sunny"}, Contributions: models.AxisScores{AxisAlertness: 1}, BaseIDs: []string{"assam", "ceylon-breakfast", "black-chai"}},
			{ID: "guarana", Title: "Guarana", Attributes: []string{"caffeinated", "nutty"}, Contributions: models.AxisScores{AxisAlertness: 4}, BaseIDs: []string{"yerba-mate", "guayusa", "matcha"}},
		},
		Flavors: []models.Flavor{
			{ID: "cinnamon", Title: "Cinnamon", Category: CategorySpicy, Notes: []string{"woody", "sweet heat"}, Spectrum: map[string]int{CategorySpicy: 3, CategorySweet: 1}, BaseIDs: []string{"assam", "black-chai", "shou-puerh"}},
			{ID: "blood-orange", Title: "Blood Orange", Category: CategoryCitrus, Notes: []string{"juicy", "bittersweet"}, Spectrum: map[string]int{CategoryCitrus: 3, CategorySweet: 1}, BaseIDs: []string{"ceylon-breakfast", "assam", "guayusa"}, IncompatibleWith: []string{"smoked-chipotle"}},
			{ID: "smoked-chipotle", Title: "Smoked Chipotle", Category: CategorySpicy, Notes: []string{"smoky", "fiery"}, Spectrum: map[string]int{CategorySpicy: 3, CategoryEarthy: 2}, BaseIDs: []string{"shou-puerh", "black-chai"}, IncompatibleWith: []string{"blood-orange", "hibiscus"}},
			{ID: "hibiscus", Title: "Hibiscus", Category: CategoryFloral, Notes: []string{"tart", "ruby"}, Spectrum: map[string]int{CategoryFloral: 2, CategoryCitrus: 2}, BaseIDs: []string{"yerba-mate", "guayusa", "ceylon-breakfast"}, IncompatibleWith: []string{"smoked-chipotle"}},
			{ID: "maple-caramel", Title: "Maple Caramel", Category: CategorySweet, Notes: []string{"buttery", "toffee"}, Spectrum: map[string]int{CategorySweet: 3}, BaseIDs: []string{"assam", "black-chai", "matcha"}},
		},
	}
}
