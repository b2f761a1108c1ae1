package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure of a decks file.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ParseDeckFile parses a YAML deck file and returns a map of deck name → card slice.
// Card names are resolved against cat; a missing count means one copy.
func ParseDeckFile(path string, cat *Catalog) (map[string][]*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	decks := make(map[string][]*Card)
	for _, deck := range df.Decks {
		var cards []*Card
		for _, entry := range deck.Cards {
			c := cat.CardByName(entry.Name)
			if c == nil {
				return nil, fmt.Errorf("deck %q: unknown card %q", deck.Name, entry.Name)
			}
			count := entry.Count
			if count <= 0 {
				count = 1
			}
			for i := 0; i < count; i++ {
				cards = append(cards, c)
			}
		}
		decks[deck.Name] = cards
	}

	return decks, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from the deck file.
func DeckByNumber(path string, cat *Catalog, n int) (string, []*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return "", nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	if n < 1 || n > len(df.Decks) {
		return "", nil, fmt.Errorf("deck %d not found (have %d decks)", n, len(df.Decks))
	}

	deck := df.Decks[n-1]
	var cards []*Card
	for _, entry := range deck.Cards {
		c := cat.CardByName(entry.Name)
		if c == nil {
			return "", nil, fmt.Errorf("deck %q: unknown card %q", deck.Name, entry.Name)
		}
		count := entry.Count
		if count <= 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			cards = append(cards, c)
		}
	}

	return deck.Name, cards, nil
}

// CatalogFile represents the top-level YAML structure of a catalog file.
type CatalogFile struct {
	Monsters []MonsterEntry `yaml:"monsters"`
	Fusions  []FusionEntry  `yaml:"fusions"`
}

// MonsterEntry describes one card definition in a catalog file.
type MonsterEntry struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Attribute string `yaml:"attribute"`
	Level     int    `yaml:"level"`
	ATK       int    `yaml:"atk"`
	DEF       int    `yaml:"def"`
}

// FusionEntry describes one fusion recipe in a catalog file.
type FusionEntry struct {
	Material1 string       `yaml:"material1"`
	Material2 string       `yaml:"material2"`
	Result    MonsterEntry `yaml:"result"`
}

// LoadCatalogFile parses a YAML catalog file into a Catalog. Guardian
// stars are derived from each entry's attribute and type; fusion
// materials must name an earlier monster or fusion result.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cf CatalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}

	if len(cf.Monsters) == 0 {
		return nil, fmt.Errorf("catalog: no monsters defined")
	}

	cat := NewCatalog()
	seen := make(map[string]bool)
	for i, m := range cf.Monsters {
		if m.Name == "" {
			return nil, fmt.Errorf("catalog: monster %d has no name", i+1)
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("catalog: duplicate monster %q", m.Name)
		}
		if m.ATK < 0 || m.DEF < 0 {
			return nil, fmt.Errorf("catalog: monster %q has negative stats", m.Name)
		}
		seen[m.Name] = true
		cat.AddCard(&Card{
			Name:      m.Name,
			Type:      m.Type,
			Attribute: ParseAttribute(m.Attribute),
			Level:     m.Level,
			ATK:       m.ATK,
			DEF:       m.DEF,
		})
	}

	for i, f := range cf.Fusions {
		if f.Result.Name == "" {
			return nil, fmt.Errorf("catalog: fusion %d has no result name", i+1)
		}
		if f.Result.ATK < 0 || f.Result.DEF < 0 {
			return nil, fmt.Errorf("catalog: fusion result %q has negative stats", f.Result.Name)
		}
		for _, mat := range []string{f.Material1, f.Material2} {
			if !knownFusionMaterial(cat, mat) {
				return nil, fmt.Errorf("catalog: fusion material %q not defined", mat)
			}
		}
		cat.AddFusion(f.Material1, f.Material2, Card{
			Name:      f.Result.Name,
			Type:      f.Result.Type,
			Attribute: ParseAttribute(f.Result.Attribute),
			ATK:       f.Result.ATK,
			DEF:       f.Result.DEF,
		})
	}

	return cat, nil
}
