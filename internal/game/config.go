package game

import (
	"fmt"
	"strconv"

	"github.com/samdwyer/townmap/internal/gamedata"
	"github.com/samdwyer/townmap/internal/world"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed          = "TOWNMAP_SEED"
	EnvBuildings     = "TOWNMAP_BUILDINGS"
	EnvBuildingCount = "TOWNMAP_BUILDING_COUNT"
	EnvMaxAttempts   = "TOWNMAP_MAX_ATTEMPTS"
	EnvTraders       = "TOWNMAP_TRADERS"
	EnvCatalog       = "TOWNMAP_CATALOG"
)

// Config holds session configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible towns.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Buildings lists the building kinds to place, one room each. When empty,
	// BuildingCount kinds are drawn from the catalog by spawn weight. Setting
	// a count from env or flags clears the list.
	Buildings     []gamedata.BuildingKind
	BuildingCount int

	MaxAttempts int // Full regenerations before giving up
	Traders     int // Trader NPCs placed in the first trading post

	// CatalogPath points at an on-disk buildings.json. Empty uses the embedded catalog.
	CatalogPath string
}

// DefaultConfig returns a Config with sensible defaults: a two-building
// town with trading posts and a couple of traders.
func DefaultConfig() Config {
	return Config{
		Buildings:     []gamedata.BuildingKind{gamedata.KindTradingPost, gamedata.KindTradingPost},
		BuildingCount: 2,
		MaxAttempts:   world.DefaultMaxAttempts,
		Traders:       2,
	}
}

// ApplyEnv overrides fields from environment variables found through lookup
// (normally os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	// A count alone asks for weighted random buildings; an explicit list wins.
	if v, ok := lookup(EnvBuildingCount); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBuildingCount, err)
		}
		c.BuildingCount = n
		c.Buildings = nil
	}
	if v, ok := lookup(EnvBuildings); ok {
		c.Buildings = gamedata.ParseBuildingKinds(v)
	}
	if v, ok := lookup(EnvMaxAttempts); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxAttempts, err)
		}
		c.MaxAttempts = n
	}
	if v, ok := lookup(EnvTraders); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTraders, err)
		}
		c.Traders = n
	}
	if v, ok := lookup(EnvCatalog); ok {
		c.CatalogPath = v
	}
	return nil
}

// Merge applies environment-loaded values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromEnv *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromEnv.Seed
	}
	// The building list and count are one choice: a flag for either one
	// overrides both env values.
	switch {
	case explicitFlags["buildings"]:
	case explicitFlags["count"]:
		cfg.Buildings = nil
	default:
		cfg.Buildings = fromEnv.Buildings
		cfg.BuildingCount = fromEnv.BuildingCount
	}
	if !explicitFlags["max-attempts"] {
		cfg.MaxAttempts = fromEnv.MaxAttempts
	}
	if !explicitFlags["traders"] {
		cfg.Traders = fromEnv.Traders
	}
	if !explicitFlags["catalog"] {
		cfg.CatalogPath = fromEnv.CatalogPath
	}
}
