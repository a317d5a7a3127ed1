package condition

// Dimension identifies a world dimension. Renders without a namespace.
type Dimension string

const (
	Overworld Dimension = "overworld"
	TheNether Dimension = "the_nether"
	TheEnd    Dimension = "the_end"
)

// Feature identifies a generated structure by its structure name.
type Feature string

const (
	FeatureEndCity    Feature = "EndCity"
	FeatureFortress   Feature = "Fortress"
	FeatureMansion    Feature = "Mansion"
	FeatureMineshaft  Feature = "Mineshaft"
	FeatureMonument   Feature = "Monument"
	FeatureStronghold Feature = "Stronghold"
	FeatureTemple     Feature = "Temple"
	FeatureVillage    Feature = "Village"
)

// Biome is a biome name without namespace (e.g. "desert").
type Biome string

const (
	BiomeOcean          Biome = "ocean"
	BiomePlains         Biome = "plains"
	BiomeDesert         Biome = "desert"
	BiomeExtremeHills   Biome = "extreme_hills"
	BiomeForest         Biome = "forest"
	BiomeTaiga          Biome = "taiga"
	BiomeSwampland      Biome = "swampland"
	BiomeRiver          Biome = "river"
	BiomeHell           Biome = "hell"
	BiomeSky            Biome = "sky"
	BiomeIcePlains      Biome = "ice_plains"
	BiomeMushroomIsland Biome = "mushroom_island"
	BiomeBeaches        Biome = "beaches"
	BiomeJungle         Biome = "jungle"
	BiomeDeepOcean      Biome = "deep_ocean"
	BiomeBirchForest    Biome = "birch_forest"
	BiomeRoofedForest   Biome = "roofed_forest"
	BiomeTaigaCold      Biome = "taiga_cold"
	BiomeTaigaColdHills Biome = "taiga_cold_hills"
	BiomeSavanna        Biome = "savanna"
	BiomeMesa           Biome = "mesa"
	BiomeVoid           Biome = "void"
)

// ID returns the namespaced biome id.
func (b Biome) ID() string {
	return minecraftID(string(b))
}

// Effect is a status effect name without namespace (e.g. "speed").
type Effect string

const (
	Speed          Effect = "speed"
	Slowness       Effect = "slowness"
	Haste          Effect = "haste"
	MiningFatigue  Effect = "mining_fatigue"
	Strength       Effect = "strength"
	InstantHealth  Effect = "instant_health"
	InstantDamage  Effect = "instant_damage"
	JumpBoost      Effect = "jump_boost"
	Nausea         Effect = "nausea"
	Regeneration   Effect = "regeneration"
	Resistance     Effect = "resistance"
	FireResistance Effect = "fire_resistance"
	WaterBreathing Effect = "water_breathing"
	Invisibility   Effect = "invisibility"
	Blindness      Effect = "blindness"
	NightVision    Effect = "night_vision"
	Hunger         Effect = "hunger"
	Weakness       Effect = "weakness"
	Poison         Effect = "poison"
	Wither         Effect = "wither"
	HealthBoost    Effect = "health_boost"
	Absorption     Effect = "absorption"
	Saturation     Effect = "saturation"
	Glowing        Effect = "glowing"
	Levitation     Effect = "levitation"
	Luck           Effect = "luck"
	Unluck         Effect = "unluck"
	SlowFalling    Effect = "slow_falling"
)

// ID returns the namespaced effect id.
func (e Effect) ID() string {
	return minecraftID(string(e))
}

// Potion is a potion type name without namespace (e.g. "long_swiftness").
type Potion string

const (
	PotionWater              Potion = "water"
	PotionThick              Potion = "thick"
	PotionMundane            Potion = "mundane"
	PotionAwkward            Potion = "awkward"
	PotionFireResistance     Potion = "fire_resistance"
	PotionLongFireResistance Potion = "long_fire_resistance"
	PotionLuck               Potion = "luck"
	PotionHealing            Potion = "healing"
	PotionStrongHealing      Potion = "strong_healing"
	PotionNightVision        Potion = "night_vision"
	PotionLongNightVision    Potion = "long_night_vision"
	PotionRegeneration       Potion = "regeneration"
	PotionLongRegeneration   Potion = "long_regeneration"
	PotionStrongRegeneration Potion = "strong_regeneration"
	PotionSwiftness          Potion = "swiftness"
	PotionLongSwiftness      Potion = "long_swiftness"
	PotionStrongSwiftness    Potion = "strong_swiftness"
	PotionLeaping            Potion = "leaping"
	PotionLongLeaping        Potion = "long_leaping"
	PotionStrongLeaping      Potion = "strong_leaping"
	PotionStrength           Potion = "strength"
	PotionLongStrength       Potion = "long_strength"
	PotionStrongStrength     Potion = "strong_strength"
	PotionInvisibility       Potion = "invisibility"
	PotionLongInvisibility   Potion = "long_invisibility"
	PotionWaterBreathing     Potion = "water_breathing"
	PotionLongWaterBreathing Potion = "long_water_breathing"
	PotionSlowness           Potion = "slowness"
	PotionLongSlowness       Potion = "long_slowness"
	PotionStrongSlowness     Potion = "strong_slowness"
	PotionHarming            Potion = "harming"
	PotionStrongHarming      Potion = "strong_harming"
	PotionWeakness           Potion = "weakness"
	PotionLongWeakness       Potion = "long_weakness"
	PotionPoison             Potion = "poison"
	PotionLongPoison         Potion = "long_poison"
	PotionStrongPoison       Potion = "strong_poison"
	PotionTurtleMaster       Potion = "turtle_master"
	PotionLongTurtleMaster   Potion = "long_turtle_master"
	PotionStrongTurtleMaster Potion = "strong_turtle_master"
)

// ID returns the namespaced potion id.
func (p Potion) ID() string {
	return minecraftID(string(p))
}
