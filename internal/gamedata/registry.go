package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
)

// ErrUnknownBuilding indicates a building kind missing from the registry.
var ErrUnknownBuilding = errors.New("gamedata: unknown building kind")

// BuildingRegistry holds loaded building definitions and provides lookup utilities.
type BuildingRegistry struct {
	buildings   []BuildingDef
	byKind      map[BuildingKind]*BuildingDef
	totalWeight int
}

// NewBuildingRegistry creates a registry from loaded building definitions.
func NewBuildingRegistry(buildings []BuildingDef) *BuildingRegistry {
	registry := &BuildingRegistry{
		buildings: buildings,
		byKind:    make(map[BuildingKind]*BuildingDef, len(buildings)),
	}
	for i := range buildings {
		registry.byKind[buildings[i].Kind] = &buildings[i]
		registry.totalWeight += buildings[i].SpawnWeight
	}
	return registry
}

// LoadBuildingRegistry loads and creates a registry from the embedded buildings.json.
func LoadBuildingRegistry() (*BuildingRegistry, error) {
	buildings, err := LoadBuildings()
	if err != nil {
		return nil, err
	}
	if len(buildings) == 0 {
		return nil, errors.New("no buildings loaded from buildings.json")
	}
	return NewBuildingRegistry(buildings), nil
}

// LoadBuildingRegistryFrom creates a registry from a catalog file in fsys.
func LoadBuildingRegistryFrom(fsys fs.FS, filename string) (*BuildingRegistry, error) {
	buildings, err := LoadBuildingsFrom(fsys, filename)
	if err != nil {
		return nil, err
	}
	if len(buildings) == 0 {
		return nil, fmt.Errorf("no buildings loaded from %s", filename)
	}
	return NewBuildingRegistry(buildings), nil
}

// MustLoadBuildingRegistry loads a registry, panicking on error.
func MustLoadBuildingRegistry() *BuildingRegistry {
	registry, err := LoadBuildingRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByKind returns the building definition for kind, or nil if not found.
func (r *BuildingRegistry) GetByKind(kind BuildingKind) *BuildingDef {
	return r.byKind[kind]
}

// Resolve maps a list of kinds to their definitions, in order.
func (r *BuildingRegistry) Resolve(kinds []BuildingKind) ([]*BuildingDef, error) {
	result := make([]*BuildingDef, 0, len(kinds))
	for _, kind := range kinds {
		def := r.byKind[kind]
		if def == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBuilding, kind)
		}
		result = append(result, def)
	}
	return result, nil
}

// Random selects a building definition using weighted probability.
// Buildings with higher spawnWeight are more likely to be selected.
func (r *BuildingRegistry) Random(rng *rand.Rand) *BuildingDef {
	if r.totalWeight <= 0 || len(r.buildings) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.buildings {
		cumulative += r.buildings[i].SpawnWeight
		if roll < cumulative {
			return &r.buildings[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.buildings[0]
}

// Count returns the number of building kinds in the registry.
func (r *BuildingRegistry) Count() int {
	return len(r.buildings)
}
