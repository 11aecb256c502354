// Package taxonomy is the static food vocabulary the content generator draws
// from. Pure data plus uniform picks over an explicit random source.
package taxonomy

import "math/rand"

// Categories maps a category name to its lowercase terms.
var Categories = map[string][]string{
	"vegetables": {"tomato", "onion", "potato", "carrot", "pepper", "garlic", "ginger", "cabbage", "spinach", "broccoli", "mushroom", "cucumber", "eggplant", "zucchini", "celery", "kale", "lettuce", "corn", "peas", "beans", "asparagus"},
	"proteins":   {"chicken", "beef", "mutton", "fish", "egg", "shrimp", "prawn", "crab", "salmon", "tuna", "tofu", "paneer", "sausage", "bacon", "duck", "turkey", "lamb", "pork", "lobster"},
	"dairy":      {"milk", "cheese", "butter", "cream", "yogurt"},
	"fruits":     {"banana", "apple", "orange", "lemon", "mango", "avocado", "coconut", "strawberry", "blueberry", "grape", "watermelon", "pineapple", "peach"},
	"grains":     {"rice", "bread", "flour", "noodles", "pasta", "oats"},
	"spices":     {"salt", "sugar", "chili", "cilantro", "basil", "mint", "thyme", "oregano", "paprika", "cumin", "turmeric", "cinnamon"},
	"others":     {"oil", "honey", "soy sauce", "vinegar", "chocolate", "vanilla"},
}

// categoryOrder keeps All() deterministic regardless of map iteration order.
var categoryOrder = []string{"vegetables", "proteins", "dairy", "fruits", "grains", "spices", "others"}

var (
	Cuisines     = []string{"Asian", "Indian", "Italian", "Mexican", "Thai", "Chinese", "Japanese", "Mediterranean", "American", "French"}
	Difficulties = []string{"Easy", "Medium", "Hard"}
	Styles       = []string{"Spicy", "Grilled", "Crispy", "Creamy", "Garlic", "Honey", "Tangy", "Smoky", "Zesty", "Buttery"}
	DishTypes    = []string{"Stir-Fry", "Curry", "Bowl", "Salad", "Roast", "Soup", "Pasta", "Rice", "Noodles", "Wrap"}
)

// All returns the flattened union of every category's terms.
func All() []string {
	var all []string
	for _, cat := range categoryOrder {
		all = append(all, Categories[cat]...)
	}
	return all
}

// Pick returns one uniformly random element of list.
func Pick(r *rand.Rand, list []string) string {
	return list[r.Intn(len(list))]
}

// PickN returns n distinct uniformly random elements of list. When n exceeds
// the list length the whole list is returned, shuffled.
func PickN(r *rand.Rand, list []string, n int) []string {
	shuffled := make([]string, len(list))
	copy(shuffled, list)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
