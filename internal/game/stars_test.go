package game

import "testing"

var allStars = []GuardianStar{
	StarSun, StarMoon, StarVenus, StarMercury,
	StarMars, StarJupiter, StarSaturn, StarUranus, StarPluto, StarNeptune,
}

func TestCombatBonusCycles(t *testing.T) {
	cases := []struct {
		attacker, defender GuardianStar
		want               int
	}{
		// Celestial cycle: Sun > Moon > Venus > Mercury > Sun
		{StarSun, StarMoon, StarBonus},
		{StarMoon, StarVenus, StarBonus},
		{StarVenus, StarMercury, StarBonus},
		{StarMercury, StarSun, StarBonus},
		{StarMoon, StarSun, -StarBonus},
		{StarSun, StarMercury, -StarBonus},

		// Planetary cycle: Mars > Jupiter > Saturn > Uranus > Pluto > Neptune > Mars
		{StarMars, StarJupiter, StarBonus},
		{StarJupiter, StarSaturn, StarBonus},
		{StarSaturn, StarUranus, StarBonus},
		{StarUranus, StarPluto, StarBonus},
		{StarPluto, StarNeptune, StarBonus},
		{StarNeptune, StarMars, StarBonus},
		{StarMars, StarNeptune, -StarBonus},
		{StarJupiter, StarMars, -StarBonus},

		// Across cycles, non-adjacent, and unset stars: no bonus
		{StarSun, StarMars, 0},
		{StarPluto, StarVenus, 0},
		{StarMars, StarUranus, 0},
		{StarSun, StarSun, 0},
		{StarNone, StarSun, 0},
		{StarSun, StarNone, 0},
	}

	for _, tc := range cases {
		if got := CombatBonus(tc.attacker, tc.defender); got != tc.want {
			t.Errorf("CombatBonus(%s, %s) = %d, want %d", tc.attacker, tc.defender, got, tc.want)
		}
	}
}

func TestCombatBonusAntisymmetric(t *testing.T) {
	for _, a := range allStars {
		for _, b := range allStars {
			if got, mirror := CombatBonus(a, b), CombatBonus(b, a); got != -mirror {
				t.Errorf("CombatBonus(%s, %s) = %d but CombatBonus(%s, %s) = %d", a, b, got, b, a, mirror)
			}
		}
	}
}

func TestEveryStarDominatesExactlyOne(t *testing.T) {
	for _, a := range allStars {
		strong, weak := 0, 0
		for _, b := range allStars {
			switch CombatBonus(a, b) {
			case StarBonus:
				strong++
			case -StarBonus:
				weak++
			}
		}
		if strong != 1 || weak != 1 {
			t.Errorf("%s dominates %d stars and is dominated by %d, want 1 and 1", a, strong, weak)
		}
	}
}

func TestDeriveStars(t *testing.T) {
	cases := []struct {
		attr        Attribute
		monsterType string
		star1       GuardianStar
		star2       GuardianStar
	}{
		// Primary from the attribute, secondary from the type
		{AttrFIRE, "Dragon", StarMars, StarMoon},
		{AttrWATER, "Aqua", StarNeptune, StarMoon},
		{AttrEARTH, "Rock", StarUranus, StarMars},
		{AttrWIND, "Winged-Beast", StarSaturn, StarJupiter},

		// Clash with the type star falls back to the attribute's alternate
		{AttrLIGHT, "Warrior", StarMercury, StarSun},
		{AttrDARK, "Dragon", StarVenus, StarMoon},
		{AttrFIRE, "Sea-Serpent", StarSun, StarMars},
		{AttrEARTH, "Machine", StarJupiter, StarUranus},

		// Unknown attribute or type uses the default pair
		{AttrNone, "Dragon", StarUranus, StarMoon},
		{AttrLIGHT, "Cyberse", StarSun, StarJupiter},
		{AttrNone, "Cyberse", StarUranus, StarJupiter},
	}

	for _, tc := range cases {
		s1, s2 := DeriveStars(tc.attr, tc.monsterType)
		if s1 != tc.star1 || s2 != tc.star2 {
			t.Errorf("DeriveStars(%s, %s) = (%s, %s), want (%s, %s)",
				tc.attr, tc.monsterType, s1, s2, tc.star1, tc.star2)
		}
	}
}

func TestDeriveStarsAlwaysDistinct(t *testing.T) {
	attrs := []Attribute{AttrNone, AttrLIGHT, AttrDARK, AttrEARTH, AttrWATER, AttrFIRE, AttrWIND, AttrDIVINE}
	types := []string{
		"Dragon", "Spellcaster", "Warrior", "Beast", "Beast-Warrior", "Winged-Beast",
		"Fiend", "Zombie", "Machine", "Aqua", "Fish", "Sea-Serpent", "Reptile",
		"Pyro", "Thunder", "Rock", "Plant", "Insect", "Fairy", "Dinosaur", "Cyberse",
	}
	for _, attr := range attrs {
		for _, mt := range types {
			s1, s2 := DeriveStars(attr, mt)
			if s1 == s2 {
				t.Errorf("DeriveStars(%s, %s) = (%s, %s): stars must differ", attr, mt, s1, s2)
			}
		}
	}
}
