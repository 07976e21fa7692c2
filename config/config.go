package config

import "image/color"

// Config holds the logical playfield size. The renderer scales it to the window.
type Config struct {
	Width  int
	Height int
}

// SimConfig contains timing values shared by every system
type SimConfig struct {
	ReferenceFPS float64 // speeds are authored in pixels per reference frame
	MaxDT        float64 // clamp for a single tick, seconds
}

// ChartConfig contains scheduler admission values
type ChartConfig struct {
	LeadTime        float64 // seconds a note is admitted ahead of its cue
	InitialDelay    float64 // seconds of playback before the first admission
	MaxPerTick      int
	MaxSpan         float64 // seconds between first and last admitted note in one tick
	FallbackSeconds float64 // base interval of the fallback spawn timer
	SpawnMinY       float64 // fraction of field height
	SpawnMaxY       float64
}

// CombatConfig contains swipe and damage-admission values
type CombatConfig struct {
	AttackReach     float64 // attack origin distance ahead of the player
	AttackLift      float64 // attack origin height above the player center
	ComboMultiplier float64 // score bonus per combo step
	MilestoneEvery  int
	HeartChance     float64

	DamageCooldown float64 // seconds, shared by every damage source
	EscapeCooldown float64 // seconds since the last loss before an escape may cost a life
	GracePeriod    float64 // seconds of run time before escapes cost lives
	InvincibleTime float64 // cosmetic blink window after a loss
	HurtTime       float64

	LungeDistance float64
	LungeDuration float32
}

// PlayerConfig contains player pose values
type PlayerConfig struct {
	StartX      float64 // fraction of field width
	StartY      float64 // fraction of field height
	Radius      float64
	Smoothing   float64 // fraction of the remaining distance covered per reference frame
	MaxRotation float64 // radians
	Color       color.RGBA
}

// MeleeConfig drives the melee attacker sub-state machine
type MeleeConfig struct {
	AttackRange     float64
	AttackCooldown  float64 // seconds
	InitialCooldown float64 // seconds before the first swing
	AttackFrames    int
	AttackFPS       float64
	HitFrame        int
}

// MovementConfig contains pattern shape values
type MovementConfig struct {
	WaveAmplitude  float64
	WaveFrequency  float64 // radians per reference frame
	SineAmplitude  float64
	DashSlowTime   float64 // seconds
	DashBurstTime  float64 // seconds
	DashSlowFactor float64
	DashBurstBoost float64
	DiveRise       float64 // fraction of travel spent climbing
	DiveHeight     float64 // pixels climbed before the descent
	GuardRadius    float64
	GuardStep      float64 // radians per reference frame
}

// BossConfig contains boss encounter values
type BossConfig struct {
	TriggerFraction float64 // fraction of the chart duration
	SpawnX          float64 // fraction of field width
	SpawnY          float64 // fraction of field height
	HitFlash        float64
}

// FeedbackConfig contains cosmetic effect values
type FeedbackConfig struct {
	HitParticlesMin   int
	HitParticlesMax   int
	ComboParticleBase int
	ComboParticleStep int
	ComboParticleMax  int
	ParticleSpeed     float64
	ParticleGravity   float64 // pixels per reference frame squared
	ParticleLife      float64 // seconds
	ParticleSize      float64

	TextLife  float32
	TextRise  float32
	TrailLife float64

	ShakeBase        float64
	ShakePerCombo    float64
	ShakeMax         float64
	ShakeDuration    float32
	DamageShake      float64
	DamageShakeTime  float32
	HeartLife        float64
	HeartSpeed       float64
	HeartRadius      float64
	HeartHealAmount  int
	LevelUpTextColor color.RGBA
}

// DifficultyConfig scales spawn rate, speed and boss escort size
type DifficultyConfig struct {
	SpeedMultiplier   float64
	DensityMultiplier float64
	Guards            int
}

var C *Config
var Sim SimConfig
var Chart ChartConfig
var Combat CombatConfig
var Player PlayerConfig
var Melee MeleeConfig
var Movement MovementConfig
var Boss BossConfig
var Feedback FeedbackConfig
var Difficulties map[string]DifficultyConfig

// Default is the difficulty used when a chart or flag names an unknown one.
const Default = "normal"

// FrameDT is one reference frame in seconds.
const FrameDT = 1.0 / 60.0

// DifficultyFor returns the tuning for name, falling back to the default difficulty.
func DifficultyFor(name string) DifficultyConfig {
	if d, ok := Difficulties[name]; ok {
		return d
	}
	return Difficulties[Default]
}

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Sim = SimConfig{
		ReferenceFPS: 60,
		MaxDT:        0.1,
	}

	Chart = ChartConfig{
		LeadTime:        1.5,
		InitialDelay:    1.0,
		MaxPerTick:      3,
		MaxSpan:         0.2,
		FallbackSeconds: 1.0,
		SpawnMinY:       0.15,
		SpawnMaxY:       0.8,
	}

	Combat = CombatConfig{
		AttackReach:     80,
		AttackLift:      20,
		ComboMultiplier: 0.1,
		MilestoneEvery:  5,
		HeartChance:     0.2,

		DamageCooldown: 1.5,
		EscapeCooldown: 0.5,
		GracePeriod:    15,
		InvincibleTime: 1.5,
		HurtTime:       0.4,

		LungeDistance: 40,
		LungeDuration: 0.12,
	}

	Player = PlayerConfig{
		StartX:      0.18,
		StartY:      0.55,
		Radius:      28,
		Smoothing:   0.2,
		MaxRotation: 30 * 3.141592653589793 / 180,
		Color:       color.RGBA{R: 220, G: 220, B: 240, A: 255},
	}

	Melee = MeleeConfig{
		AttackRange:     120,
		AttackCooldown:  2.0,
		InitialCooldown: 0.5,
		AttackFrames:    8,
		AttackFPS:       12,
		HitFrame:        5,
	}

	Movement = MovementConfig{
		WaveAmplitude:  30,
		WaveFrequency:  0.05,
		SineAmplitude:  50,
		DashSlowTime:   1.0,
		DashBurstTime:  0.3,
		DashSlowFactor: 0.5,
		DashBurstBoost: 3,
		DiveRise:       0.3,
		DiveHeight:     80,
		GuardRadius:    150,
		GuardStep:      0.03,
	}

	Boss = BossConfig{
		TriggerFraction: 0.5,
		SpawnX:          0.85,
		SpawnY:          0.5,
		HitFlash:        0.1,
	}

	Feedback = FeedbackConfig{
		HitParticlesMin:   20,
		HitParticlesMax:   30,
		ComboParticleBase: 10,
		ComboParticleStep: 2,
		ComboParticleMax:  50,
		ParticleSpeed:     6,
		ParticleGravity:   0.2,
		ParticleLife:      0.8,
		ParticleSize:      3,

		TextLife:  0.9,
		TextRise:  40,
		TrailLife: 0.15,

		ShakeBase:        2,
		ShakePerCombo:    0.2,
		ShakeMax:         10,
		ShakeDuration:    0.3,
		DamageShake:      8,
		DamageShakeTime:  0.4,
		HeartLife:        6,
		HeartSpeed:       1.2,
		HeartRadius:      24,
		HeartHealAmount:  1,
		LevelUpTextColor: color.RGBA{R: 255, G: 215, B: 0, A: 255},
	}

	Difficulties = map[string]DifficultyConfig{
		"easy":   {SpeedMultiplier: 0.8, DensityMultiplier: 0.7, Guards: 1},
		"normal": {SpeedMultiplier: 1.0, DensityMultiplier: 1.0, Guards: 2},
		"hard":   {SpeedMultiplier: 1.3, DensityMultiplier: 1.5, Guards: 3},
	}
}
