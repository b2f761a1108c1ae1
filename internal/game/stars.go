package game

// GuardianStar identifies one of the ten celestial signs a monster can
// fight under. Every star dominates exactly one other star and is
// dominated by exactly one, shifting battle values by StarBonus.
type GuardianStar int

const (
	StarNone GuardianStar = iota
	StarSun
	StarMoon
	StarVenus
	StarMercury
	StarMars
	StarJupiter
	StarSaturn
	StarUranus
	StarPluto
	StarNeptune
)

func (g GuardianStar) String() string {
	switch g {
	case StarSun:
		return "Sun"
	case StarMoon:
		return "Moon"
	case StarVenus:
		return "Venus"
	case StarMercury:
		return "Mercury"
	case StarMars:
		return "Mars"
	case StarJupiter:
		return "Jupiter"
	case StarSaturn:
		return "Saturn"
	case StarUranus:
		return "Uranus"
	case StarPluto:
		return "Pluto"
	case StarNeptune:
		return "Neptune"
	default:
		return "None"
	}
}

// StarBonus is the battle value shift applied when one guardian star
// dominates another.
const StarBonus = 500

type starEdge struct {
	strong GuardianStar // star this one dominates
	weak   GuardianStar // star this one is dominated by
}

// starTable encodes the two dominance cycles:
// Sun > Moon > Venus > Mercury > Sun, and
// Mars > Jupiter > Saturn > Uranus > Pluto > Neptune > Mars.
var starTable = map[GuardianStar]starEdge{
	StarSun:     {strong: StarMoon, weak: StarMercury},
	StarMoon:    {strong: StarVenus, weak: StarSun},
	StarVenus:   {strong: StarMercury, weak: StarMoon},
	StarMercury: {strong: StarSun, weak: StarVenus},
	StarMars:    {strong: StarJupiter, weak: StarNeptune},
	StarJupiter: {strong: StarSaturn, weak: StarMars},
	StarSaturn:  {strong: StarUranus, weak: StarJupiter},
	StarUranus:  {strong: StarPluto, weak: StarSaturn},
	StarPluto:   {strong: StarNeptune, weak: StarUranus},
	StarNeptune: {strong: StarMars, weak: StarPluto},
}

// CombatBonus returns the battle value adjustment for a card fighting
// under attacker against one under defender: +StarBonus when attacker
// dominates defender, -StarBonus when dominated, 0 otherwise.
func CombatBonus(attacker, defender GuardianStar) int {
	edge, ok := starTable[attacker]
	if !ok {
		return 0
	}
	if edge.strong == defender {
		return StarBonus
	}
	if edge.weak == defender {
		return -StarBonus
	}
	return 0
}

// attributeStars maps a monster attribute to its candidate star pair.
var attributeStars = map[Attribute][2]GuardianStar{
	AttrLIGHT:  {StarSun, StarMercury},
	AttrDARK:   {StarMoon, StarVenus},
	AttrFIRE:   {StarMars, StarSun},
	AttrWATER:  {StarNeptune, StarMoon},
	AttrEARTH:  {StarUranus, StarJupiter},
	AttrWIND:   {StarSaturn, StarJupiter},
	AttrDIVINE: {StarSun, StarMoon},
}

// typeStars maps a monster type to its candidate star pair.
var typeStars = map[string][2]GuardianStar{
	"Dragon":        {StarMars, StarMoon},
	"Spellcaster":   {StarMercury, StarVenus},
	"Warrior":       {StarUranus, StarSun},
	"Beast":         {StarJupiter, StarSaturn},
	"Beast-Warrior": {StarJupiter, StarUranus},
	"Winged-Beast":  {StarSaturn, StarJupiter},
	"Fiend":         {StarMoon, StarVenus},
	"Zombie":        {StarMoon, StarPluto},
	"Machine":       {StarPluto, StarUranus},
	"Aqua":          {StarNeptune, StarMoon},
	"Fish":          {StarNeptune, StarSaturn},
	"Sea-Serpent":   {StarNeptune, StarMars},
	"Reptile":       {StarUranus, StarNeptune},
	"Pyro":          {StarMars, StarSun},
	"Thunder":       {StarPluto, StarSaturn},
	"Rock":          {StarUranus, StarMars},
	"Plant":         {StarJupiter, StarSun},
	"Insect":        {StarJupiter, StarMoon},
	"Fairy":         {StarSun, StarVenus},
	"Dinosaur":      {StarUranus, StarMars},
}

// defaultStarPair covers attributes and types with no table entry.
var defaultStarPair = [2]GuardianStar{StarUranus, StarJupiter}

// DeriveStars computes a monster's two guardian stars from its
// attribute and type. The primary star comes from the attribute, the
// secondary from the type; when they clash the attribute's alternate
// is used instead, so the pair is always distinct.
func DeriveStars(attr Attribute, monsterType string) (GuardianStar, GuardianStar) {
	attrPair, ok := attributeStars[attr]
	if !ok {
		attrPair = defaultStarPair
	}
	typePair, ok := typeStars[monsterType]
	if !ok {
		typePair = defaultStarPair
	}
	star1 := attrPair[0]
	star2 := typePair[1]
	if star1 == star2 {
		star1 = attrPair[1]
	}
	return star1, star2
}
