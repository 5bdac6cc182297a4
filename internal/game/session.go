// Package game owns a play session: the generated town and the occupants in it.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/townmap/internal/entity"
	"github.com/samdwyer/townmap/internal/gamedata"
	"github.com/samdwyer/townmap/internal/telemetry"
	"github.com/samdwyer/townmap/internal/world"
)

// Session holds the state of one town visit. It replaces shared globals:
// callers pass the session to whatever needs the current town or player.
type Session struct {
	cfg      Config
	log      *slog.Logger
	rng      *rand.Rand
	registry *gamedata.BuildingRegistry
	town     *world.Town
	player   *entity.Player
	npcs     []*entity.NPC
}

// NewSession loads the building catalog, generates a town and places the
// player at its spawn point and traders in its trading post.
func NewSession(ctx context.Context, cfg Config, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.Default()
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.init")
	defer span.End()

	registry, err := loadRegistry(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("building catalog loaded", "kinds", registry.Count(), "path", cfg.CatalogPath)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	buildings, err := chooseBuildings(registry, cfg, rng)
	if err != nil {
		return nil, err
	}

	town := world.NewTown(buildings, rng, world.Options{
		MaxAttempts: cfg.MaxAttempts,
		Logger:      log,
	})
	if err := town.Generate(ctx); err != nil {
		return nil, fmt.Errorf("generate town: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		log:      log,
		rng:      rng,
		registry: registry,
		town:     town,
	}

	s.player = entity.NewPlayer(town.Spawn.X, town.Spawn.Y)
	if err := town.Grid.Register(town.Spawn, s.player); err != nil {
		return nil, err
	}
	s.placeTraders(cfg.Traders)

	span.SetAttributes(
		attribute.Int64("session.seed", seed),
		attribute.String("town.name", town.Name),
		attribute.Int("town.rooms", len(town.Rooms)),
		attribute.Int("session.npcs", len(s.npcs)),
		attribute.Int("player.start_x", town.Spawn.X),
		attribute.Int("player.start_y", town.Spawn.Y),
	)
	return s, nil
}

func loadRegistry(cfg Config) (*gamedata.BuildingRegistry, error) {
	if cfg.CatalogPath == "" {
		return gamedata.LoadBuildingRegistry()
	}
	return gamedata.LoadBuildingRegistryFrom(os.DirFS(cfg.CatalogPath), gamedata.BuildingsFilename)
}

// chooseBuildings resolves the configured kinds, or draws BuildingCount
// weighted kinds when none are listed.
func chooseBuildings(registry *gamedata.BuildingRegistry, cfg Config, rng *rand.Rand) ([]*gamedata.BuildingDef, error) {
	if len(cfg.Buildings) > 0 {
		return registry.Resolve(cfg.Buildings)
	}
	if cfg.BuildingCount <= 0 {
		return nil, world.ErrNoBuildings
	}
	buildings := make([]*gamedata.BuildingDef, 0, cfg.BuildingCount)
	for i := 0; i < cfg.BuildingCount; i++ {
		def := registry.Random(rng)
		if def == nil {
			return nil, world.ErrNoBuildings
		}
		buildings = append(buildings, def)
	}
	return buildings, nil
}

// placeTraders puts up to n trader NPCs on free tiles of the trading post.
func (s *Session) placeTraders(n int) {
	post := s.registry.GetByKind(gamedata.KindTradingPost)
	for i := 0; i < n; i++ {
		p, ok := s.town.PlaceInBuilding(gamedata.KindTradingPost)
		if !ok {
			return
		}
		npc := entity.NewNPC(fmt.Sprintf("Trader %d", i+1), p.X, p.Y, entity.ActionTrade, post)
		if err := s.town.Grid.Register(p, npc); err != nil {
			s.log.Warn("trader not placed", "error", err)
			continue
		}
		s.npcs = append(s.npcs, npc)
	}
}

// Town returns the generated town.
func (s *Session) Town() *world.Town {
	return s.town
}

// Player returns the player.
func (s *Session) Player() *entity.Player {
	return s.player
}

// NPCs returns the NPCs placed in the town.
func (s *Session) NPCs() []*entity.NPC {
	return s.npcs
}

// Move attempts to move the player by the given delta and returns the
// messages produced by the destination tile.
func (s *Session) Move(ctx context.Context, dx, dy int) ([]string, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "player.move")
	defer span.End()

	from := world.Point{X: s.player.X, Y: s.player.Y}
	to := from.Add(dx, dy)
	span.SetAttributes(
		attribute.Int("from_x", from.X),
		attribute.Int("from_y", from.Y),
		attribute.Int("to_x", to.X),
		attribute.Int("to_y", to.Y),
	)

	msgs, err := s.town.Grid.MoveOccupant(s.player, from, to)
	if err != nil {
		span.SetAttributes(attribute.Bool("refused", true))
		return nil, err
	}
	s.player.MoveTo(to.X, to.Y)
	return msgs, nil
}

// Interact runs the action of every NPC standing next to the player.
func (s *Session) Interact() []string {
	var msgs []string
	here := world.Point{X: s.player.X, Y: s.player.Y}
	for _, npc := range s.npcs {
		if here.Manhattan(s.npcPosition(npc)) != 1 {
			continue
		}
		action, ok := npcActions[npc.Action]
		if !ok {
			continue
		}
		msgs = append(msgs, action(s, npc))
	}
	return msgs
}

func (s *Session) npcPosition(npc *entity.NPC) world.Point {
	x, y := npc.Position()
	return world.Point{X: x, Y: y}
}
