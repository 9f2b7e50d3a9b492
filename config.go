package sprint

import (
	"errors"
	"fmt"
	"time"
)

// Config holds every tuning constant of the scene. Distances are in logical
// stage units, speeds in units per tick.
type Config struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Kitty bounds: x in [MarginX, W-MarginX], y in [MarginTop, H-MarginBottom].
	MarginX      float64 `toml:"margin_x"`
	MarginTop    float64 `toml:"margin_top"`
	MarginBottom float64 `toml:"margin_bottom"`

	// Rest point as a fraction of the stage size.
	RestX float64 `toml:"rest_x"`
	RestY float64 `toml:"rest_y"`

	// Kitty position on first mount (the pointer starts here too).
	StartX float64 `toml:"start_x"`
	StartY float64 `toml:"start_y"`

	Damping        float64       `toml:"damping"`
	Gain           float64       `toml:"gain"`
	MaxSpeed       float64       `toml:"max_speed"`
	KittyRadius    float64       `toml:"kitty_radius"`
	KittyBobAmp    float64       `toml:"kitty_bob_amplitude"`
	KittyBobPeriod time.Duration `toml:"kitty_bob_period"`

	// Spawn area: x in [SpawnInsetX, W-SpawnInsetX], y in [SpawnTop, H-SpawnBottom].
	SpawnInsetX    float64       `toml:"spawn_inset_x"`
	SpawnTop       float64       `toml:"spawn_top"`
	SpawnBottom    float64       `toml:"spawn_bottom"`
	BerryRadius    float64       `toml:"berry_radius"`
	BerryScale     float64       `toml:"berry_scale"`
	BerryBobAmp    float64       `toml:"berry_bob_amplitude"`
	BerryBobMin    time.Duration `toml:"berry_bob_min"`
	BerryBobJitter time.Duration `toml:"berry_bob_jitter"`

	SpawnCooldown    time.Duration `toml:"spawn_cooldown"`
	LiveCap          int           `toml:"live_cap"`
	CompactThreshold int           `toml:"compact_threshold"`
	InitialBerries   int           `toml:"initial_berries"`

	PopDuration time.Duration `toml:"pop_duration"`
	PopAlpha    float64       `toml:"pop_alpha"`
	PopGrow     float64       `toml:"pop_grow"`

	Title string `toml:"title"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Width:  1000,
		Height: 562,

		MarginX:      80,
		MarginTop:    90,
		MarginBottom: 120,

		RestX: 0.5,
		RestY: 0.62,

		StartX: 200,
		StartY: 200,

		Damping:        0.82,
		Gain:           0.02,
		MaxSpeed:       14,
		KittyRadius:    36,
		KittyBobAmp:    2.6,
		KittyBobPeriod: 120 * time.Millisecond,

		SpawnInsetX:    80,
		SpawnTop:       90,
		SpawnBottom:    80,
		BerryRadius:    75,
		BerryScale:     0.42,
		BerryBobAmp:    6,
		BerryBobMin:    900 * time.Millisecond,
		BerryBobJitter: 600 * time.Millisecond,

		SpawnCooldown:    1200 * time.Millisecond,
		LiveCap:          9,
		CompactThreshold: 40,
		InitialBerries:   4,

		PopDuration: 220 * time.Millisecond,
		PopAlpha:    0.1,
		PopGrow:     1.6,

		Title: "Strawberry Sprint",
	}
}

// Validate reports geometry and tuning values the scene cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("stage size %vx%v must be positive", c.Width, c.Height))
	}
	if c.MarginX < 0 || 2*c.MarginX > c.Width {
		errs = append(errs, fmt.Errorf("margin_x %v does not fit width %v", c.MarginX, c.Width))
	}
	if c.MarginTop < 0 || c.MarginBottom < 0 || c.MarginTop+c.MarginBottom > c.Height {
		errs = append(errs, fmt.Errorf("vertical margins %v/%v do not fit height %v", c.MarginTop, c.MarginBottom, c.Height))
	}
	if c.SpawnInsetX < 0 || 2*c.SpawnInsetX > c.Width {
		errs = append(errs, fmt.Errorf("spawn_inset_x %v does not fit width %v", c.SpawnInsetX, c.Width))
	}
	if c.SpawnTop < 0 || c.SpawnBottom < 0 || c.SpawnTop+c.SpawnBottom > c.Height {
		errs = append(errs, fmt.Errorf("spawn band %v/%v does not fit height %v", c.SpawnTop, c.SpawnBottom, c.Height))
	}
	if !c.inKittyBounds(c.StartX, c.StartY) {
		errs = append(errs, fmt.Errorf("start point (%v, %v) is outside the kitty bounds", c.StartX, c.StartY))
	}
	if rx, ry := c.restPoint(); !c.inKittyBounds(rx, ry) {
		errs = append(errs, fmt.Errorf("rest point (%v, %v) is outside the kitty bounds", rx, ry))
	}
	if c.MaxSpeed <= 0 {
		errs = append(errs, errors.New("max_speed must be positive"))
	}
	if c.LiveCap < 0 || c.InitialBerries < 0 || c.CompactThreshold < 0 {
		errs = append(errs, errors.New("berry counts must not be negative"))
	}
	return errors.Join(errs...)
}

// inKittyBounds reports whether (x, y) lies in the area steering clamps the
// kitty to.
func (c Config) inKittyBounds(x, y float64) bool {
	return x >= c.MarginX && x <= c.Width-c.MarginX &&
		y >= c.MarginTop && y <= c.Height-c.MarginBottom
}

// restPoint returns the kitty's default target in stage coordinates.
func (c Config) restPoint() (x, y float64) {
	return c.Width * c.RestX, c.Height * c.RestY
}
