package catalog

// referenceSynonyms maps informal, lowercase food terms to canonical categories.
var referenceSynonyms = map[string]string{
	"cake":      Desserts,
	"cakes":     Desserts,
	"cookie":    Desserts,
	"cookies":   Desserts,
	"ice cream": Desserts,
	"icecream":  Desserts,
	"pie":       Desserts,
	"pies":      Desserts,
	"brownie":   Desserts,
	"brownies":  Desserts,
	"sweet":     Desserts,
	"sweets":    Desserts,
	"dessert":   Desserts,
	"desserts":  Desserts,

	"burger":       "Burgers",
	"burgers":      "Burgers",
	"hamburger":    "Burgers",
	"cheeseburger": "Burgers",

	"pizza":  "Pizza",
	"pizzas": "Pizza",
	"slice":  "Pizza",

	"salad":  "Salad",
	"salads": "Salad",

	"vegan":      "Vegan",
	"vegetarian": "Vegetarian",
	"veggie":     "Vegetarian",

	"wing":          "Wings",
	"wings":         "Wings",
	"chicken wings": "Wings",

	"taco":  "Tacos",
	"tacos": "Tacos",

	"pasta":     "Pasta",
	"spaghetti": "Pasta",
	"noodles":   "Pasta",

	"soup":  "Soup",
	"soups": "Soup",

	"stir fry": "Stir Fry",
	"stirfry":  "Stir Fry",
	"stir-fry": "Stir Fry",

	"grill":   "Grill",
	"grilled": "Grill",
}
