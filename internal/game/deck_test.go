package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const sampleDecks = `
decks:
  - name: Emberlings
    cards:
      - name: Emberscale Wyrmling
        count: 3
      - name: Cinderling
        count: 2
      - name: Searing Salamander
  - name: Tidewall
    cards:
      - name: Tidepool Guardian
        count: 2
      - name: Razorfin Barracuda
        count: 2
`

func TestParseDeckFile(t *testing.T) {
	path := writeTempFile(t, "decks.yaml", sampleDecks)
	cat := DefaultCatalog()

	decks, err := ParseDeckFile(path, cat)
	if err != nil {
		t.Fatalf("ParseDeckFile: %v", err)
	}
	if len(decks) != 2 {
		t.Fatalf("parsed %d decks, want 2", len(decks))
	}

	// A missing count means one copy.
	if got := len(decks["Emberlings"]); got != 6 {
		t.Errorf("Emberlings has %d cards, want 6", got)
	}
	if got := len(decks["Tidewall"]); got != 4 {
		t.Errorf("Tidewall has %d cards, want 4", got)
	}
	if decks["Emberlings"][0].Name != "Emberscale Wyrmling" {
		t.Errorf("first card = %s, want Emberscale Wyrmling", decks["Emberlings"][0].Name)
	}
}

func TestParseDeckFileUnknownCard(t *testing.T) {
	path := writeTempFile(t, "decks.yaml", `
decks:
  - name: Broken
    cards:
      - name: Card That Does Not Exist
`)
	if _, err := ParseDeckFile(path, DefaultCatalog()); err == nil {
		t.Fatal("expected an error for an unknown card name")
	}
}

func TestDeckByNumber(t *testing.T) {
	path := writeTempFile(t, "decks.yaml", sampleDecks)
	cat := DefaultCatalog()

	name, cards, err := DeckByNumber(path, cat, 2)
	if err != nil {
		t.Fatalf("DeckByNumber: %v", err)
	}
	if name != "Tidewall" {
		t.Errorf("deck 2 name = %s, want Tidewall", name)
	}
	if len(cards) != 4 {
		t.Errorf("deck 2 has %d cards, want 4", len(cards))
	}

	if _, _, err := DeckByNumber(path, cat, 3); err == nil {
		t.Error("expected an error for a deck number out of range")
	}
	if _, _, err := DeckByNumber(path, cat, 0); err == nil {
		t.Error("expected an error for deck number 0")
	}
}

const sampleCatalog = `
monsters:
  - name: Cinder Pup
    type: Pyro
    attribute: FIRE
    level: 2
    atk: 800
    def: 600
  - name: Mire Crawler
    type: Aqua
    attribute: WATER
    level: 3
    atk: 900
    def: 700
fusions:
  - material1: Cinder Pup
    material2: Mire Crawler
    result:
      name: Steam Colossus
      type: Machine
      attribute: WATER
      atk: 2100
      def: 1800
`

func TestLoadCatalogFile(t *testing.T) {
	path := writeTempFile(t, "catalog.yaml", sampleCatalog)

	cat, err := LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile: %v", err)
	}
	if cat.NumCards() != 2 || cat.NumFusions() != 1 {
		t.Fatalf("loaded %d cards and %d fusions, want 2 and 1", cat.NumCards(), cat.NumFusions())
	}

	pup := cat.CardByName("Cinder Pup")
	if pup == nil {
		t.Fatal("Cinder Pup not found")
	}
	if pup.Attribute != AttrFIRE {
		t.Errorf("Cinder Pup attribute = %s, want FIRE", pup.Attribute)
	}
	if pup.Star1 != StarMars || pup.Star2 != StarSun {
		t.Errorf("Cinder Pup stars = %s/%s, want Mars/Sun", pup.Star1, pup.Star2)
	}

	result := cat.Fusion("Mire Crawler", "Cinder Pup")
	if result == nil || result.Name != "Steam Colossus" {
		t.Fatalf("fusion lookup = %v, want Steam Colossus", result)
	}
	if result.Level != 7 {
		t.Errorf("fusion result level = %d, want 7", result.Level)
	}
}

func TestLoadCatalogFileValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no monsters",
			content: "monsters: []\n",
			wantErr: "no monsters",
		},
		{
			name: "duplicate monster",
			content: `
monsters:
  - name: Cinder Pup
    type: Pyro
    attribute: FIRE
    atk: 800
    def: 600
  - name: Cinder Pup
    type: Pyro
    attribute: FIRE
    atk: 800
    def: 600
`,
			wantErr: "duplicate",
		},
		{
			name: "unknown fusion material",
			content: `
monsters:
  - name: Cinder Pup
    type: Pyro
    attribute: FIRE
    atk: 800
    def: 600
fusions:
  - material1: Cinder Pup
    material2: Nobody Home
    result:
      name: Steam Colossus
      type: Machine
      attribute: WATER
      atk: 2100
      def: 1800
`,
			wantErr: "not defined",
		},
		{
			name: "negative stats",
			content: `
monsters:
  - name: Cinder Pup
    type: Pyro
    attribute: FIRE
    atk: -5
    def: 600
`,
			wantErr: "negative",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempFile(t, "catalog.yaml", tc.content)
			_, err := LoadCatalogFile(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}
