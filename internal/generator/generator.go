// Package generator produces the stand-in scan results: a plausible
// ingredient set and synthesized recipe records composed from the food
// taxonomy. No image signal is consumed; this is the placeholder for a future
// detection step.
package generator

import (
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/smartchef/smartchef-v4/backend/internal/model"
	"github.com/smartchef/smartchef-v4/backend/internal/taxonomy"
)

var (
	fats         = []string{"oil", "butter"}
	vessels      = []string{"pan", "wok", "pot"}
	heatLevels   = []string{"medium", "high", "medium-high"}
	doneness     = []string{"golden", "tender", "fragrant"}
	seasonings   = []string{"salt", "pepper", "spices"}
	garnishes    = []string{"fresh herbs", "green onions", "sesame seeds"}
	servingTemps = []string{"hot", "warm"}
	sides        = []string{"rice", "bread", "naan", "salad"}
	citrus       = []string{"lemon", "lime"}
)

// Generator composes random scan output from an explicit seedable source.
type Generator struct {
	// rand.Rand is not safe for concurrent use; scan requests share one
	// Generator, so picks are serialized.
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator seeded with the given value.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// DetectIngredients returns 4-8 distinct terms from the flattened taxonomy,
// with no regard to category balance.
func (g *Generator) DetectIngredients() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	count := 4 + g.rng.Intn(5)
	return taxonomy.PickN(g.rng, taxonomy.All(), count)
}

// ComposeRecipes builds 2-3 independent recipes for one ingredient set.
func (g *Generator) ComposeRecipes(ingredients []string) []model.Recipe {
	g.mu.Lock()
	n := 2 + g.rng.Intn(2)
	g.mu.Unlock()

	recipes := make([]model.Recipe, 0, n)
	for i := 0; i < n; i++ {
		recipes = append(recipes, g.ComposeRecipe(ingredients))
	}
	return recipes
}

// ComposeRecipe synthesizes one recipe record around the given ingredients.
// The output is well-formed prose with no semantic relation to the input
// beyond interpolation.
func (g *Generator) ComposeRecipe(ingredients []string) model.Recipe {
	g.mu.Lock()
	defer g.mu.Unlock()

	r := g.rng
	main := ingredients[0]
	style := taxonomy.Pick(r, taxonomy.Styles)
	dishType := taxonomy.Pick(r, taxonomy.DishTypes)
	cuisine := taxonomy.Pick(r, taxonomy.Cuisines)

	cookTime := 15 + r.Intn(45)
	lead := firstN(ingredients, 3)

	steps := model.JSONBStringArray{
		fmt.Sprintf("Prepare all ingredients: wash and chop %s.", strings.Join(lead, ", ")),
		fmt.Sprintf("Heat %s in a %s over %s heat.", taxonomy.Pick(r, fats), taxonomy.Pick(r, vessels), taxonomy.Pick(r, heatLevels)),
		fmt.Sprintf("Add %s and cook for %d minutes until %s.", main, 2+r.Intn(4), taxonomy.Pick(r, doneness)),
		fmt.Sprintf("Add %s and stir well.", strings.Join(middle(ingredients), " and ")),
		fmt.Sprintf("Season with %s to taste.", taxonomy.Pick(r, seasonings)),
		fmt.Sprintf("Cook for another %d minutes.", 5+r.Intn(10)),
		fmt.Sprintf("Garnish with %s and serve %s.", taxonomy.Pick(r, garnishes), taxonomy.Pick(r, servingTemps)),
	}

	tips := model.JSONBStringArray{
		fmt.Sprintf("Best served with %s.", taxonomy.Pick(r, sides)),
		fmt.Sprintf("You can substitute %s with %s.", taxonomy.Pick(r, ingredients), taxonomy.Pick(r, taxonomy.All())),
		fmt.Sprintf("For extra flavor, add a squeeze of %s before serving.", taxonomy.Pick(r, citrus)),
	}

	return model.Recipe{
		Slug:        slug(r),
		Title:       fmt.Sprintf("%s %s %s", style, capitalize(main), dishType),
		Short:       fmt.Sprintf("A delicious %s %s featuring %s", strings.ToLower(cuisine), strings.ToLower(dishType), strings.Join(lead, ", ")),
		CookTime:    fmt.Sprintf("%dm", cookTime),
		Servings:    2 + r.Intn(4),
		Difficulty:  taxonomy.Pick(r, taxonomy.Difficulties),
		Cuisine:     cuisine,
		Kcal:        250 + r.Intn(400),
		Protein:     15 + r.Intn(30),
		Carbs:       20 + r.Intn(40),
		Fats:        10 + r.Intn(25),
		Ingredients: model.JSONBStringArray(ingredients),
		Steps:       steps,
		Tips:        tips,
		Image:       fmt.Sprintf("https://source.unsplash.com/800x600/?%s", url.QueryEscape(main+" food")),
		AIGenerated: false,
		CreatedAt:   time.Now().UTC(),
	}
}

// slug combines the current time with a short random base36 suffix. A
// collision silently overwrites through the upsert path; the probability is
// negligible but not zero.
func slug(r *rand.Rand) string {
	suffix := strconv.FormatInt(r.Int63n(2176782336), 36) // 36^6
	for len(suffix) < 6 {
		suffix = "0" + suffix
	}
	return fmt.Sprintf("recipe-%d-%s", time.Now().UnixMilli(), suffix)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func firstN(list []string, n int) []string {
	if len(list) < n {
		n = len(list)
	}
	return list[:n]
}

// middle returns the second and third ingredients where available.
func middle(list []string) []string {
	if len(list) <= 1 {
		return list
	}
	end := 3
	if len(list) < end {
		end = len(list)
	}
	return list[1:end]
}
