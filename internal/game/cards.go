package game

// --- Dragons ---

func EmberscaleWyrmling() *Card {
	return &Card{
		Name:        "Emberscale Wyrmling",
		Description: "A hatchling dragon whose scales still glow from the forge-heat of its egg. It nips at anything that moves, leaving small scorch marks as warnings.",
		Type:        "Dragon",
		Level:       3,
		Attribute:   AttrFIRE,
		ATK:         1200,
		DEF:         900,
	}
}

func GalewingDrake() *Card {
	return &Card{
		Name:        "Galewing Drake",
		Description: "A lean drake that rides mountain updrafts for days without landing. Hunters know it only by the sudden shriek of wind before the strike.",
		Type:        "Dragon",
		Level:       4,
		Attribute:   AttrWIND,
		ATK:         1500,
		DEF:         1100,
	}
}

func DuskhornDragon() *Card {
	return &Card{
		Name:        "Duskhorn Dragon",
		Description: "A crag-dwelling dragon crowned with horns that drink the evening light. It descends at dusk to claim whatever the day has left unguarded.",
		Type:        "Dragon",
		Level:       5,
		Attribute:   AttrDARK,
		ATK:         1900,
		DEF:         1400,
	}
}

func PyreheartDragon() *Card {
	return &Card{
		Name:        "Pyreheart Dragon",
		Description: "Its chest glows like a furnace door about to burst. Old soldiers say you smell the battle before you ever see the flame.",
		Type:        "Dragon",
		Level:       6,
		Attribute:   AttrFIRE,
		ATK:         2250,
		DEF:         1600,
	}
}

// --- Spellcasters ---

func NoviceRuneweaver() *Card {
	return &Card{
		Name:        "Novice Runeweaver",
		Description: "An apprentice who stitches minor runes into the air with trembling fingers. The patterns rarely hold, but when they do, they bite.",
		Type:        "Spellcaster",
		Level:       3,
		Attribute:   AttrLIGHT,
		ATK:         1000,
		DEF:         900,
	}
}

func MidnightConjurer() *Card {
	return &Card{
		Name:        "Midnight Conjurer",
		Description: "A robed figure who calls shapes out of the dark between candle flames. What it summons never looks quite the same twice.",
		Type:        "Spellcaster",
		Level:       4,
		Attribute:   AttrDARK,
		ATK:         1550,
		DEF:         1200,
	}
}

func TidalSage() *Card {
	return &Card{
		Name:        "Tidal Sage",
		Description: "A hermit who reads tomorrow's weather in the pull of the tide. Its staff drips seawater even a hundred leagues inland.",
		Type:        "Spellcaster",
		Level:       4,
		Attribute:   AttrWATER,
		ATK:         1450,
		DEF:         1300,
	}
}

// --- Warriors ---

func StonegateSentinel() *Card {
	return &Card{
		Name:        "Stonegate Sentinel",
		Description: "A watchman sworn to a gate that no longer leads anywhere. Its shield has worn smooth from centuries of holding the line.",
		Type:        "Warrior",
		Level:       4,
		Attribute:   AttrEARTH,
		ATK:         1400,
		DEF:         1600,
	}
}

func DawnbladeSquire() *Card {
	return &Card{
		Name:        "Dawnblade Squire",
		Description: "A young squire who polishes his blade until it catches the first light. Eagerness makes up for what training has not yet supplied.",
		Type:        "Warrior",
		Level:       3,
		Attribute:   AttrLIGHT,
		ATK:         1150,
		DEF:         1000,
	}
}

func CinderDuelist() *Card {
	return &Card{
		Name:        "Cinder Duelist",
		Description: "A duelist who quenched her sword in volcano ash and never looked back. Each parry scatters sparks that linger on the ground.",
		Type:        "Warrior",
		Level:       4,
		Attribute:   AttrFIRE,
		ATK:         1500,
		DEF:         1000,
	}
}

func MoonveilAssassin() *Card {
	return &Card{
		Name:        "Moonveil Assassin",
		Description: "It steps out of moonlight as if through an open door. Few targets ever learn which shadow was the wrong one to stand near.",
		Type:        "Warrior",
		Level:       4,
		Attribute:   AttrDARK,
		ATK:         1650,
		DEF:         1200,
	}
}

func MirrorplatePaladin() *Card {
	return &Card{
		Name:        "Mirrorplate Paladin",
		Description: "A knight armored in mirror-bright plate that throws an attacker's own face back at them. Many falter at the sight, and that moment is enough.",
		Type:        "Warrior",
		Level:       5,
		Attribute:   AttrLIGHT,
		ATK:         1850,
		DEF:         1700,
	}
}

// --- Beasts ---

func ThornmaneLion() *Card {
	return &Card{
		Name:        "Thornmane Lion",
		Description: "A lion whose mane has grown through with living briars. Prides of lesser beasts give its hunting grounds a wide berth.",
		Type:        "Beast",
		Level:       4,
		Attribute:   AttrEARTH,
		ATK:         1600,
		DEF:         1100,
	}
}

func MistfangWolf() *Card {
	return &Card{
		Name:        "Mistfang Wolf",
		Description: "A wolf that hunts inside the fog it breathes. Shepherds on the high moors count their flocks twice when the valleys go white.",
		Type:        "Beast",
		Level:       3,
		Attribute:   AttrWIND,
		ATK:         1200,
		DEF:         800,
	}
}

func FrostbiteYeti() *Card {
	return &Card{
		Name:        "Frostbite Yeti",
		Description: "A shaggy mountain dweller whose grip leaves frost burns on stone. It hurls snowdrifts the way other brutes hurl boulders.",
		Type:        "Beast",
		Level:       4,
		Attribute:   AttrWATER,
		ATK:         1550,
		DEF:         1350,
	}
}

func CoralhornStag() *Card {
	return &Card{
		Name:        "Coralhorn Stag",
		Description: "A stag crowned with branching coral that hums near water. Pilgrims follow it to springs no map has ever marked.",
		Type:        "Beast",
		Level:       3,
		Attribute:   AttrLIGHT,
		ATK:         1250,
		DEF:         1100,
	}
}

// --- Beast-Warriors ---

func IronhoofMinotaur() *Card {
	return &Card{
		Name:        "Ironhoof Minotaur",
		Description: "A minotaur shod with iron plates of its own forging. The sound of its charge has ended some battles before contact.",
		Type:        "Beast-Warrior",
		Level:       5,
		Attribute:   AttrEARTH,
		ATK:         1800,
		DEF:         1300,
	}
}

func BlazemaneCentaur() *Card {
	return &Card{
		Name:        "Blazemane Centaur",
		Description: "A centaur whose mane streams embers at full gallop. It circles enemies until the grass fire does half the work.",
		Type:        "Beast-Warrior",
		Level:       4,
		Attribute:   AttrFIRE,
		ATK:         1450,
		DEF:         1250,
	}
}

// --- Winged-Beasts ---

func ZephyrFalcon() *Card {
	return &Card{
		Name:        "Zephyr Falcon",
		Description: "A falcon so light the wind hardly notices carrying it. It folds and dives before its shadow gives warning.",
		Type:        "Winged-Beast",
		Level:       3,
		Attribute:   AttrWIND,
		ATK:         1100,
		DEF:         700,
	}
}

func AuroraRoc() *Card {
	return &Card{
		Name:        "Aurora Roc",
		Description: "A vast bird whose wingbeats smear the sky with color. Mountain folk read its passing as an omen of upheaval.",
		Type:        "Winged-Beast",
		Level:       5,
		Attribute:   AttrLIGHT,
		ATK:         1850,
		DEF:         1500,
	}
}

func SunsparkChick() *Card {
	return &Card{
		Name:        "Sunspark Chick",
		Description: "A round chick that sheds sparks when startled, which is often. Keeping it caged is mostly a matter of fireproofing.",
		Type:        "Winged-Beast",
		Level:       2,
		Attribute:   AttrFIRE,
		ATK:         900,
		DEF:         700,
	}
}

// --- Fiends ---

func GloomlurkImp() *Card {
	return &Card{
		Name:        "Gloomlurk Imp",
		Description: "A small fiend that hoards misfortune like coin. It trips travelers and pockets whatever luck they drop.",
		Type:        "Fiend",
		Level:       3,
		Attribute:   AttrDARK,
		ATK:         1000,
		DEF:         800,
	}
}

func PitbornRavager() *Card {
	return &Card{
		Name:        "Pitborn Ravager",
		Description: "A fiend clawed up from the bottom of an old pit that has no recorded bottom. It does not rage so much as collect grievances.",
		Type:        "Fiend",
		Level:       5,
		Attribute:   AttrDARK,
		ATK:         1900,
		DEF:         1200,
	}
}

// --- Zombies ---

func GravemarshGhoul() *Card {
	return &Card{
		Name:        "Gravemarsh Ghoul",
		Description: "It shambles out of drowned graveyards where the coffins float free. The marsh refuses to keep what it is given.",
		Type:        "Zombie",
		Level:       3,
		Attribute:   AttrDARK,
		ATK:         1100,
		DEF:         900,
	}
}

func BarrowKnight() *Card {
	return &Card{
		Name:        "Barrow Knight",
		Description: "A knight interred with honors who mistook the burial for a posting. It still patrols the barrow as ordered, armor and all.",
		Type:        "Zombie",
		Level:       4,
		Attribute:   AttrDARK,
		ATK:         1450,
		DEF:         1000,
	}
}

func AshenRevenant() *Card {
	return &Card{
		Name:        "Ashen Revenant",
		Description: "The remains of a soldier who burned with his watchtower and kept the watch anyway. Embers drift from the gaps in its armor.",
		Type:        "Zombie",
		Level:       5,
		Attribute:   AttrFIRE,
		ATK:         1750,
		DEF:         1100,
	}
}

// --- Machines ---

func CogworkBruiser() *Card {
	return &Card{
		Name:        "Cogwork Bruiser",
		Description: "A squat machine built from mill parts and spite. Its punches land with the patience of a flywheel.",
		Type:        "Machine",
		Level:       4,
		Attribute:   AttrEARTH,
		ATK:         1500,
		DEF:         1300,
	}
}

func LuminousAutomaton() *Card {
	return &Card{
		Name:        "Luminous Automaton",
		Description: "An automaton lit from within by a captured sunbeam. It was built to tend lamps and learned to defend them.",
		Type:        "Machine",
		Level:       4,
		Attribute:   AttrLIGHT,
		ATK:         1400,
		DEF:         1500,
	}
}

func ChronogearCustodian() *Card {
	return &Card{
		Name:        "Chronogear Custodian",
		Description: "A tall machine that winds a clock no one else can see. It corrects whatever runs ahead of schedule, enemies included.",
		Type:        "Machine",
		Level:       6,
		Attribute:   AttrLIGHT,
		ATK:         2000,
		DEF:         1800,
	}
}

// --- Aquas ---

func TidepoolGuardian() *Card {
	return &Card{
		Name:        "Tidepool Guardian",
		Description: "A barnacled warden that stands hip-deep where the tide turns. Crabs shelter in its armor between skirmishes.",
		Type:        "Aqua",
		Level:       4,
		Attribute:   AttrWATER,
		ATK:         1300,
		DEF:         1600,
	}
}

func BrinecallNaiad() *Card {
	return &Card{
		Name:        "Brinecall Naiad",
		Description: "A naiad whose song carries the taste of salt far upriver. Sailors argue whether following it has ever ended well.",
		Type:        "Aqua",
		Level:       3,
		Attribute:   AttrWATER,
		ATK:         1100,
		DEF:         1000,
	}
}

func DeepmireToad() *Card {
	return &Card{
		Name:        "Deepmire Toad",
		Description: "A toad broad as a rowboat that naps beneath the bog. Things that step on it rarely get a second step.",
		Type:        "Aqua",
		Level:       3,
		Attribute:   AttrWATER,
		ATK:         1000,
		DEF:         1300,
	}
}

// --- Fish ---

func RazorfinBarracuda() *Card {
	return &Card{
		Name:        "Razorfin Barracuda",
		Description: "It strikes from open water with fins honed to a gleam. The wound is clean enough that prey swims on a while, confused.",
		Type:        "Fish",
		Level:       3,
		Attribute:   AttrWATER,
		ATK:         1250,
		DEF:         700,
	}
}

func AbysslightAngler() *Card {
	return &Card{
		Name:        "Abysslight Angler",
		Description: "An angler fish whose lure burns cold and blue in the black deep. What gathers at the light never leaves it.",
		Type:        "Fish",
		Level:       4,
		Attribute:   AttrWATER,
		ATK:         1400,
		DEF:         1100,
	}
}

// --- Sea-Serpents ---

func TidecoilSerpent() *Card {
	return &Card{
		Name:        "Tidecoil Serpent",
		Description: "A serpent that coils through riptides the way rope moves through a sailor's hands. Whole currents bend when it turns.",
		Type:        "Sea-Serpent",
		Level:       5,
		Attribute:   AttrWATER,
		ATK:         1750,
		DEF:         1350,
	}
}

func FoamcrestWyrm() *Card {
	return &Card{
		Name:        "Foamcrest Wyrm",
		Description: "A wyrm that surfaces only in rough weather, wearing the whitecaps like a crown. Harbormasters log it as a storm.",
		Type:        "Sea-Serpent",
		Level:       4,
		Attribute:   AttrWATER,
		ATK:         1500,
		DEF:         1200,
	}
}

// --- Reptiles ---

func DunebackBasilisk() *Card {
	return &Card{
		Name:        "Duneback Basilisk",
		Description: "A basilisk that sleeps under a dune of its own shed scales. Caravans navigate around the stare, not the sand.",
		Type:        "Reptile",
		Level:       4,
		Attribute:   AttrEARTH,
		ATK:         1350,
		DEF:         1250,
	}
}

func VenomscaleLurker() *Card {
	return &Card{
		Name:        "Venomscale Lurker",
		Description: "It waits in leaf litter with the patience of dusk. Its venom does not kill quickly, and it knows this.",
		Type:        "Reptile",
		Level:       3,
		Attribute:   AttrDARK,
		ATK:         1150,
		DEF:         900,
	}
}

func SearingSalamander() *Card {
	return &Card{
		Name:        "Searing Salamander",
		Description: "A salamander that basks in coals the way others bask in sun. Its touch brands wood and warps steel.",
		Type:        "Reptile",
		Level:       4,
		Attribute:   AttrFIRE,
		ATK:         1400,
		DEF:         1050,
	}
}

// --- Pyros ---

func Cinderling() *Card {
	return &Card{
		Name:        "Cinderling",
		Description: "A fist-sized spirit of banked embers. Harmless looking until someone gives it something to burn.",
		Type:        "Pyro",
		Level:       2,
		Attribute:   AttrFIRE,
		ATK:         800,
		DEF:         600,
	}
}

func FlarecoreElemental() *Card {
	return &Card{
		Name:        "Flarecore Elemental",
		Description: "A walking knot of fire around a core that never cools. Rain annoys it into burning hotter.",
		Type:        "Pyro",
		Level:       5,
		Attribute:   AttrFIRE,
		ATK:         1800,
		DEF:         1100,
	}
}

// --- Thunders ---

func StormcallDjinn() *Card {
	return &Card{
		Name:        "Stormcall Djinn",
		Description: "A djinn that answers summons with weather instead of wishes. It considers lightning a form of conversation.",
		Type:        "Thunder",
		Level:       4,
		Attribute:   AttrLIGHT,
		ATK:         1600,
		DEF:         1000,
	}
}

func VoltspireHatchling() *Card {
	return &Card{
		Name:        "Voltspire Hatchling",
		Description: "A hatchling raised on a lightning-struck spire. Its feathers stand on end, and so does everything near it.",
		Type:        "Thunder",
		Level:       3,
		Attribute:   AttrWIND,
		ATK:         1050,
		DEF:         850,
	}
}

func BoltfangChimera() *Card {
	return &Card{
		Name:        "Boltfang Chimera",
		Description: "A chimera stitched together by a storm with opinions. Each head snaps at a different target, and each bite carries a charge.",
		Type:        "Thunder",
		Level:       5,
		Attribute:   AttrDARK,
		ATK:         1800,
		DEF:         1300,
	}
}

// --- Rocks ---

func GranitebackGolem() *Card {
	return &Card{
		Name:        "Graniteback Golem",
		Description: "A golem quarried whole from a cliff face. Moving it was the hard part; stopping it is harder.",
		Type:        "Rock",
		Level:       5,
		Attribute:   AttrEARTH,
		ATK:         1500,
		DEF:         2000,
	}
}

func PebblekinScout() *Card {
	return &Card{
		Name:        "Pebblekin Scout",
		Description: "A knee-high golem that reports back to the mountain. What it lacks in reach it makes up in stubbornness.",
		Type:        "Rock",
		Level:       2,
		Attribute:   AttrEARTH,
		ATK:         700,
		DEF:         1000,
	}
}

// --- Plants ---

func BriarwhipRose() *Card {
	return &Card{
		Name:        "Briarwhip Rose",
		Description: "A rose that bred thorns long enough to use. Gardeners speak of it in the past tense, carefully.",
		Type:        "Plant",
		Level:       3,
		Attribute:   AttrEARTH,
		ATK:         1150,
		DEF:         950,
	}
}

func SporesprayFungling() *Card {
	return &Card{
		Name:        "Sporespray Fungling",
		Description: "A waddling fungus that sneezes clouds of spores. The ground it crosses fruits strangely for a season.",
		Type:        "Plant",
		Level:       2,
		Attribute:   AttrWIND,
		ATK:         800,
		DEF:         900,
	}
}

func NightbloomOrchid() *Card {
	return &Card{
		Name:        "Nightbloom Orchid",
		Description: "An orchid that opens only when no one is watching. Its perfume makes sentries dream on their feet.",
		Type:        "Plant",
		Level:       4,
		Attribute:   AttrDARK,
		ATK:         1300,
		DEF:         1200,
	}
}

// --- Insects ---

func ChitinbladeMantis() *Card {
	return &Card{
		Name:        "Chitinblade Mantis",
		Description: "A mantis with forelimbs honed to a smith's envy. It measures twice and cuts exactly once.",
		Type:        "Insect",
		Level:       4,
		Attribute:   AttrEARTH,
		ATK:         1350,
		DEF:         1000,
	}
}

func HiveheartQueen() *Card {
	return &Card{
		Name:        "Hiveheart Queen",
		Description: "A queen whose drumming abdomen is a marching order. The swarm arrives in the cadence she sets.",
		Type:        "Insect",
		Level:       5,
		Attribute:   AttrWIND,
		ATK:         1700,
		DEF:         1400,
	}
}

func RustclawScarab() *Card {
	return &Card{
		Name:        "Rustclaw Scarab",
		Description: "A scarab that chews through hinges for the iron. Fortress doors fail from the bottom up.",
		Type:        "Insect",
		Level:       3,
		Attribute:   AttrEARTH,
		ATK:         1000,
		DEF:         1200,
	}
}

// --- Fairies ---

func GlimmerdustSprite() *Card {
	return &Card{
		Name:        "Glimmerdust Sprite",
		Description: "A sprite that sheds motes of light when it laughs, which is constantly. Catching one in a jar is considered bad manners and worse luck.",
		Type:        "Fairy",
		Level:       2,
		Attribute:   AttrLIGHT,
		ATK:         800,
		DEF:         1000,
	}
}

func HaloWarden() *Card {
	return &Card{
		Name:        "Halo Warden",
		Description: "A fairy knight whose halo doubles as a drawn circle of sanctuary. It asks intruders to leave exactly once.",
		Type:        "Fairy",
		Level:       5,
		Attribute:   AttrLIGHT,
		ATK:         1700,
		DEF:         1600,
	}
}

func WhisperwindHarpist() *Card {
	return &Card{
		Name:        "Whisperwind Harpist",
		Description: "A harpist whose strings are strands of high wind. Listeners a valley away drift off mid-task.",
		Type:        "Fairy",
		Level:       3,
		Attribute:   AttrWIND,
		ATK:         1050,
		DEF:         1150,
	}
}

func SolarParagon() *Card {
	return &Card{
		Name:        "Solar Paragon",
		Description: "A radiant figure said to be a splinter of the noon sun given purpose. Its judgment arrives bright and without appeal.",
		Type:        "Fairy",
		Level:       7,
		Attribute:   AttrDIVINE,
		ATK:         2300,
		DEF:         2000,
	}
}

// --- Dinosaurs ---

func RidgebackRaptor() *Card {
	return &Card{
		Name:        "Ridgeback Raptor",
		Description: "A raptor with a sail of bone along its spine. It hunts in long arcs, patient as a closing gate.",
		Type:        "Dinosaur",
		Level:       4,
		Attribute:   AttrEARTH,
		ATK:         1500,
		DEF:         1050,
	}
}

func MagmatailTitanosaur() *Card {
	return &Card{
		Name:        "Magmatail Titanosaur",
		Description: "A titanosaur whose dragging tail splits stone and leaves a cooling seam. Valleys mark where it changed course.",
		Type:        "Dinosaur",
		Level:       6,
		Attribute:   AttrFIRE,
		ATK:         2100,
		DEF:         1700,
	}
}

// --- Fusion results ---

func CinderstormDragon() *Card {
	return &Card{
		Name:        "Cinderstorm Dragon",
		Description: "A drake reborn inside a storm that caught fire. It arrives on winds too hot to breathe.",
		Type:        "Dragon",
		Level:       7,
		Attribute:   AttrFIRE,
		ATK:         2050,
		DEF:         1500,
	}
}

func EclipsefangDragon() *Card {
	return &Card{
		Name:        "Eclipsefang Dragon",
		Description: "Born where dusk swallowed a pyre whole. Its shadow falls first, and the fangs follow.",
		Type:        "Dragon",
		Level:       7,
		Attribute:   AttrDARK,
		ATK:         2900,
		DEF:         2100,
	}
}

func SkysunderWyvern() *Card {
	return &Card{
		Name:        "Skysunder Wyvern",
		Description: "A wyvern that splits the air with a crack heard counties away. The sky takes a moment to close behind it.",
		Type:        "Dragon",
		Level:       7,
		Attribute:   AttrWIND,
		ATK:         1950,
		DEF:         1400,
	}
}

func MaelstromLeviathan() *Card {
	return &Card{
		Name:        "Maelstrom Leviathan",
		Description: "Two tides braided into a single hunger. Ships log the whirlpool and never what waits at its center.",
		Type:        "Sea-Serpent",
		Level:       7,
		Attribute:   AttrWATER,
		ATK:         2450,
		DEF:         1900,
	}
}

func AshveilDrake() *Card {
	return &Card{
		Name:        "Ashveil Drake",
		Description: "A drake that trails a veil of warm ash across the battlefield. What the veil touches stops mattering shortly after.",
		Type:        "Dragon",
		Level:       7,
		Attribute:   AttrFIRE,
		ATK:         1700,
		DEF:         1200,
	}
}

func ArchruneMagus() *Card {
	return &Card{
		Name:        "Archrune Magus",
		Description: "An apprentice's clumsy runes annealed in midnight craft. The patterns hold now, and the air bends around them.",
		Type:        "Spellcaster",
		Level:       7,
		Attribute:   AttrDARK,
		ATK:         2100,
		DEF:         1700,
	}
}

func AbysscallOracle() *Card {
	return &Card{
		Name:        "Abysscall Oracle",
		Description: "A sage whose tidal charts go deeper than water. It speaks in soundings, and the deep answers.",
		Type:        "Spellcaster",
		Level:       7,
		Attribute:   AttrWATER,
		ATK:         1900,
		DEF:         1500,
	}
}

func SunforgeChampion() *Card {
	return &Card{
		Name:        "Sunforge Champion",
		Description: "A squire's dawn light tempered in a duelist's ash. The blade comes out of the forge already swinging.",
		Type:        "Warrior",
		Level:       7,
		Attribute:   AttrFIRE,
		ATK:         2050,
		DEF:         1500,
	}
}

func BastionColossus() *Card {
	return &Card{
		Name:        "Bastion Colossus",
		Description: "A gate and its mountain, persuaded to walk. Sieges are scheduled around it.",
		Type:        "Rock",
		Level:       7,
		Attribute:   AttrEARTH,
		ATK:         2000,
		DEF:         2350,
	}
}

func DuskrendExecutioner() *Card {
	return &Card{
		Name:        "Duskrend Executioner",
		Description: "An assassin's patience given an imp's delight in ruin. Sentences are carried out before they are read.",
		Type:        "Warrior",
		Level:       7,
		Attribute:   AttrDARK,
		ATK:         2200,
		DEF:         1500,
	}
}

func RadiantJusticar() *Card {
	return &Card{
		Name:        "Radiant Justicar",
		Description: "Mirror plate sanctified under a warden's halo. Attackers face their own reflection and its verdict at once.",
		Type:        "Warrior",
		Level:       7,
		Attribute:   AttrLIGHT,
		ATK:         2550,
		DEF:         2100,
	}
}

func FeralheartAlpha() *Card {
	return &Card{
		Name:        "Feralheart Alpha",
		Description: "The briar pride and the fog pack answer one howl now. The hunt crosses terrain a single beast could not.",
		Type:        "Beast",
		Level:       7,
		Attribute:   AttrEARTH,
		ATK:         2050,
		DEF:         1400,
	}
}

func WarpathTauren() *Card {
	return &Card{
		Name:        "Warpath Tauren",
		Description: "Iron hooves shod in a centaur's wildfire. The charge leaves a road where there was none.",
		Type:        "Beast-Warrior",
		Level:       7,
		Attribute:   AttrFIRE,
		ATK:         2350,
		DEF:         1700,
	}
}

func GlacierBehemoth() *Card {
	return &Card{
		Name:        "Glacier Behemoth",
		Description: "A mountain cold joined to a guiding grace. It advances at the pace of winter, which always arrives.",
		Type:        "Beast",
		Level:       7,
		Attribute:   AttrWATER,
		ATK:         2000,
		DEF:         1750,
	}
}

func TempestSovereign() *Card {
	return &Card{
		Name:        "Tempest Sovereign",
		Description: "A falcon's dive stretched across a roc's wingspan. Weather answers to it out of old habit.",
		Type:        "Winged-Beast",
		Level:       7,
		Attribute:   AttrWIND,
		ATK:         2400,
		DEF:         1800,
	}
}

func DawnfirePhoenix() *Card {
	return &Card{
		Name:        "Dawnfire Phoenix",
		Description: "A spark that finally found enough to burn. It rises each dawn a little less patient than before.",
		Type:        "Winged-Beast",
		Level:       7,
		Attribute:   AttrFIRE,
		ATK:         2500,
		DEF:         1600,
	}
}

func AbyssalTyrant() *Card {
	return &Card{
		Name:        "Abyssal Tyrant",
		Description: "A pit fiend crowned by hoarded misfortune. Its court convenes wherever luck runs out.",
		Type:        "Fiend",
		Level:       7,
		Attribute:   AttrDARK,
		ATK:         2450,
		DEF:         1600,
	}
}

func CryptlordMarshal() *Card {
	return &Card{
		Name:        "Cryptlord Marshal",
		Description: "A drowned ghoul drilled into rank by a buried knight. The dead march better with orders.",
		Type:        "Zombie",
		Level:       7,
		Attribute:   AttrDARK,
		ATK:         1950,
		DEF:         1300,
	}
}

func DoompyreLich() *Card {
	return &Card{
		Name:        "Doompyre Lich",
		Description: "A revenant's vigil fed to a ravager's grievance. Its fire remembers every watch it kept.",
		Type:        "Zombie",
		Level:       7,
		Attribute:   AttrFIRE,
		ATK:         2450,
		DEF:         1500,
	}
}

func TitanplateJuggernaut() *Card {
	return &Card{
		Name:        "Titanplate Juggernaut",
		Description: "Mill-forged muscle behind lamplit armor. It advances one flywheel turn at a time, and nothing returns the push.",
		Type:        "Machine",
		Level:       7,
		Attribute:   AttrEARTH,
		ATK:         2100,
		DEF:         1900,
	}
}

func AeonworkColossus() *Card {
	return &Card{
		Name:        "Aeonwork Colossus",
		Description: "A custodian's clock rebuilt around a djinn's storm. It keeps time by striking.",
		Type:        "Machine",
		Level:       7,
		Attribute:   AttrLIGHT,
		ATK:         2600,
		DEF:         2200,
	}
}

func RiptideWarden() *Card {
	return &Card{
		Name:        "Riptide Warden",
		Description: "A tidepool sentry with open-water speed grafted on. The shallows are no longer the safe route.",
		Type:        "Aqua",
		Level:       7,
		Attribute:   AttrWATER,
		ATK:         1800,
		DEF:         1700,
	}
}

func LanternjawDepthcaller() *Card {
	return &Card{
		Name:        "Lanternjaw Depthcaller",
		Description: "A cold blue lure set in a jaw the size of a skiff. The deep comes when called, hungry.",
		Type:        "Fish",
		Level:       7,
		Attribute:   AttrWATER,
		ATK:         1850,
		DEF:         1400,
	}
}

func VoltcrownDjinn() *Card {
	return &Card{
		Name:        "Voltcrown Djinn",
		Description: "A hatchling's static crowned with a djinn's thunder. Its commands arrive as weather.",
		Type:        "Thunder",
		Level:       7,
		Attribute:   AttrLIGHT,
		ATK:         2150,
		DEF:         1600,
	}
}

func MagmaheartIfrit() *Card {
	return &Card{
		Name:        "Magmaheart Ifrit",
		Description: "An ember spirit fed until it learned a salamander's patience. Now it banks its own coals for later.",
		Type:        "Pyro",
		Level:       7,
		Attribute:   AttrFIRE,
		ATK:         1900,
		DEF:         1300,
	}
}

func ThornqueenDryad() *Card {
	return &Card{
		Name:        "Thornqueen Dryad",
		Description: "Briar and nightbloom grown into one royal intent. Her garden expands by conquest.",
		Type:        "Plant",
		Level:       7,
		Attribute:   AttrDARK,
		ATK:         1850,
		DEF:         1450,
	}
}

func SwarmlordDevourer() *Card {
	return &Card{
		Name:        "Swarmlord Devourer",
		Description: "A mantis general marching to the queen's cadence. The swarm cuts where it points.",
		Type:        "Insect",
		Level:       7,
		Attribute:   AttrEARTH,
		ATK:         2250,
		DEF:         1600,
	}
}

func CelestineMuse() *Card {
	return &Card{
		Name:        "Celestine Muse",
		Description: "A sprite's laughter set to a harpist's wind. Armies have missed their marching orders listening.",
		Type:        "Fairy",
		Level:       7,
		Attribute:   AttrLIGHT,
		ATK:         1600,
		DEF:         1500,
	}
}

func EmpyreanArchon() *Card {
	return &Card{
		Name:        "Empyrean Archon",
		Description: "A warden's sanctuary raised to the sun's own authority. Its circle now encloses the field.",
		Type:        "Fairy",
		Level:       7,
		Attribute:   AttrDIVINE,
		ATK:         2850,
		DEF:         2400,
	}
}

func CataclysmRex() *Card {
	return &Card{
		Name:        "Cataclysm Rex",
		Description: "A raptor's patience scaled to a titanosaur's tread. Terrain is a suggestion.",
		Type:        "Dinosaur",
		Level:       7,
		Attribute:   AttrFIRE,
		ATK:         2700,
		DEF:         1900,
	}
}

func PyroclasmElderDragon() *Card {
	return &Card{
		Name:        "Pyroclasm Elder Dragon",
		Description: "A firestorm drake aged into dusk-crowned tyranny. Where it banks, the horizon glows wrong.",
		Type:        "Dragon",
		Level:       7,
		Attribute:   AttrFIRE,
		ATK:         2750,
		DEF:         2000,
	}
}
