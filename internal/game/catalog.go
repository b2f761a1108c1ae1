package game

import "strings"

// fusionIDBase is where fusion result IDs start, well clear of the
// sequential IDs handed out to regular cards.
const fusionIDBase = 9000

// FusionRecipe pairs two material names with the card their fusion
// produces.
type FusionRecipe struct {
	MaterialA string
	MaterialB string
	Result    *Card
}

// Catalog holds the card definitions and fusion recipes available to a
// duel. Duels reference a catalog explicitly rather than a shared
// global table, so tests can build small catalogs without interfering
// with each other.
type Catalog struct {
	cards   []*Card
	byName  map[string]*Card
	byID    map[int]*Card
	recipes []FusionRecipe
}

func NewCatalog() *Catalog {
	return &Catalog{
		byName: make(map[string]*Card),
		byID:   make(map[int]*Card),
	}
}

// AddCard registers a card definition. A zero ID gets the next
// sequential ID, and the card's guardian stars are derived from its
// attribute and type. Registering a name twice leaves both cards in
// the pool but points name lookup at the later one.
func (cat *Catalog) AddCard(c *Card) *Card {
	if c.ID == 0 {
		c.ID = len(cat.cards) + 1
	}
	c.Star1, c.Star2 = DeriveStars(c.Attribute, c.Type)
	cat.cards = append(cat.cards, c)
	cat.byName[strings.ToLower(c.Name)] = c
	cat.byID[c.ID] = c
	return c
}

// AddFusion registers a fusion recipe. The result is fixed at level 7
// with an ID in the fusion range and stars derived from its attribute
// and type.
func (cat *Catalog) AddFusion(materialA, materialB string, result Card) *Card {
	result.ID = fusionIDBase + len(cat.recipes)
	result.Level = 7
	result.Star1, result.Star2 = DeriveStars(result.Attribute, result.Type)
	r := &result
	cat.recipes = append(cat.recipes, FusionRecipe{MaterialA: materialA, MaterialB: materialB, Result: r})
	return r
}

// CardByName looks up a card definition by name, case-insensitively.
// Returns nil when no card has that name.
func (cat *Catalog) CardByName(name string) *Card {
	return cat.byName[strings.ToLower(name)]
}

// CardByID looks up a card definition by ID. Returns nil when unknown.
func (cat *Catalog) CardByID(id int) *Card {
	return cat.byID[id]
}

// Fusion returns the card produced by fusing a and b, or nil when no
// recipe matches. Material order does not matter; recipes are tried in
// registration order and the first match wins.
func (cat *Catalog) Fusion(a, b string) *Card {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	for _, r := range cat.recipes {
		ra, rb := strings.ToLower(r.MaterialA), strings.ToLower(r.MaterialB)
		if (ra == la && rb == lb) || (ra == lb && rb == la) {
			return r.Result
		}
	}
	return nil
}

// Cards returns the registered card definitions in registration order.
func (cat *Catalog) Cards() []*Card {
	out := make([]*Card, len(cat.cards))
	copy(out, cat.cards)
	return out
}

// Recipes returns the registered fusion recipes in registration order.
func (cat *Catalog) Recipes() []FusionRecipe {
	out := make([]FusionRecipe, len(cat.recipes))
	copy(out, cat.recipes)
	return out
}

func (cat *Catalog) NumCards() int {
	return len(cat.cards)
}

func (cat *Catalog) NumFusions() int {
	return len(cat.recipes)
}
