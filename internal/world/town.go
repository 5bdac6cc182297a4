package world

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/townmap/internal/gamedata"
)

// Town map sizes, chosen from the building count.
const (
	SmallTownSize  = 50 // Up to 4 buildings
	MediumTownSize = 65 // 5 or 6 buildings
	LargeTownSize  = 80 // More than 6 buildings
)

// GridSize returns the side of the square map for a town with n buildings.
func GridSize(n int) int {
	switch {
	case n <= 4:
		return SmallTownSize
	case n <= 6:
		return MediumTownSize
	default:
		return LargeTownSize
	}
}

// GenerationState is a step of the town generation pipeline.
type GenerationState int

const (
	StateIdle GenerationState = iota
	StateSynthesizingTerrain
	StatePlacingRooms
	StateConnecting
	StateDecorating
	StateDone
	StateFailed
)

// String returns a human-readable state name.
func (s GenerationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSynthesizingTerrain:
		return "synthesizing_terrain"
	case StatePlacingRooms:
		return "placing_rooms"
	case StateConnecting:
		return "connecting"
	case StateDecorating:
		return "decorating"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Town is a generated town map: terrain, building rooms and the corridors
// between them. A town must only be touched by one caller at a time.
type Town struct {
	ID          string
	Name        string
	Buildings   []*gamedata.BuildingDef
	Grid        *Grid
	Rooms       []*Room
	Connections []Connection
	Spawn       Point // Default player start
	State       GenerationState
	Attempts    int

	rng    *rand.Rand
	opts   Options
	log    *slog.Logger
	tracer trace.Tracer
}

// NewTown creates an ungenerated town sized for its building list.
// One room is placed per building, in order.
func NewTown(buildings []*gamedata.BuildingDef, rng *rand.Rand, opts Options) *Town {
	opts = opts.withDefaults()
	size := GridSize(len(buildings))
	return &Town{
		ID:        uuid.NewString(),
		Name:      townName(rng),
		Buildings: buildings,
		Grid:      NewGrid(size, size),
		State:     StateIdle,
		rng:       rng,
		opts:      opts,
		log:       opts.Logger,
		tracer:    opts.Tracer,
	}
}

// Generate builds the map, regenerating from scratch whenever room placement
// or door connection fails. It returns a *GenerationFailedError once the
// attempt budget is spent, or the context error if ctx is done first. On
// failure the town is left in StateFailed with a blank grid and no rooms.
func (t *Town) Generate(ctx context.Context) error {
	if len(t.Buildings) == 0 {
		return ErrNoBuildings
	}

	ctx, span := t.tracer.Start(ctx, "town.generate")
	defer span.End()

	startTime := time.Now()
	span.SetAttributes(
		attribute.String("town.id", t.ID),
		attribute.Int("town.width", t.Grid.Width),
		attribute.Int("town.height", t.Grid.Height),
		attribute.Int("town.building_count", len(t.Buildings)),
	)

	var last error
	for attempt := 1; attempt <= t.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return t.fail(span, err)
		}
		t.Attempts = attempt
		last = t.attempt(ctx, attempt)
		if last == nil {
			span.SetAttributes(
				attribute.Int("town.attempts", attempt),
				attribute.Int("town.room_count", len(t.Rooms)),
				attribute.Int("town.connection_count", len(t.Connections)),
				attribute.Int64("town.generation_ms", time.Since(startTime).Milliseconds()),
			)
			t.log.Info("town generated",
				"town", t.Name,
				"size", t.Grid.Width,
				"rooms", len(t.Rooms),
				"attempts", attempt,
				"spawn", t.Spawn.String(),
			)
			return nil
		}
		t.log.Info("regenerating town", "town", t.Name, "attempt", attempt, "cause", last)
	}

	return t.fail(span, &GenerationFailedError{Attempts: t.opts.MaxAttempts, Last: last})
}

// fail clears any half-built attempt and marks the town and span as failed.
func (t *Town) fail(span trace.Span, err error) error {
	t.reset()
	t.setState(StateFailed)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// attempt runs the pipeline once on a freshly reset grid.
func (t *Town) attempt(ctx context.Context, n int) (err error) {
	_, span := t.tracer.Start(ctx, "town.attempt", trace.WithAttributes(attribute.Int("attempt", n)))
	defer func() {
		if err != nil {
			span.SetAttributes(attribute.String("failure", err.Error()))
		}
		span.End()
	}()

	t.reset()

	t.setState(StateSynthesizingTerrain)
	SynthesizeTerrain(t.Grid, t.rng)

	t.setState(StatePlacingRooms)
	rooms, err := placeRooms(t.Grid, t.rng, t.Buildings, t.opts.PlacementTrials)
	if err != nil {
		return err
	}
	t.Rooms = rooms

	t.setState(StateConnecting)
	connections, spawn, ok, err := connectRooms(t.Grid, t.rng, rooms)
	if err != nil {
		return err
	}
	t.Connections = connections
	if ok {
		t.Spawn = spawn
	} else {
		t.Spawn = rooms[0].Door().Pos
	}

	t.setState(StateDecorating)
	for _, room := range rooms {
		room.decorate(t.Grid, t.rng, t.opts.MinDecorationDraws, t.opts.MaxDecorationDraws)
	}

	t.setState(StateDone)
	return nil
}

func (t *Town) reset() {
	t.Grid.Reset()
	t.Rooms = nil
	t.Connections = nil
	t.Spawn = Point{}
}

func (t *Town) setState(s GenerationState) {
	t.log.Debug("town state", "town", t.Name, "from", t.State.String(), "to", s.String())
	t.State = s
}

// PlaceInBuilding returns a free floor tile inside the first room of the
// given kind. If there is no such room, or no free tile turns up after a
// fixed number of draws, it logs a warning and returns (0,0) and false.
func (t *Town) PlaceInBuilding(kind gamedata.BuildingKind) (Point, bool) {
	for _, room := range t.Rooms {
		if room.Kind() != kind {
			continue
		}
		for i := 0; i < placeInBuildingTrials; i++ {
			p := room.randomPlace(t.rng)
			tile := t.Grid.At(p)
			if tile.Terrain == TerrainFloor && !tile.Blocking() {
				return p, true
			}
		}
		t.log.Warn("no free place in building", "town", t.Name, "kind", string(kind))
		return Point{}, false
	}
	t.log.Warn("building kind not found", "town", t.Name, "kind", string(kind))
	return Point{}, false
}

// RoomAt returns the room owning p, or nil.
func (t *Town) RoomAt(p Point) *Room {
	tile := t.Grid.At(p)
	if tile == nil {
		return nil
	}
	return tile.Room
}

// Connected re-checks that every door can reach every other door over
// tiles whose terrain and decoration do not block. Occupants are ignored.
func (t *Town) Connected() bool {
	if len(t.Rooms) == 0 {
		return false
	}
	doors := mapset.New[Point]()
	for _, room := range t.Rooms {
		for _, door := range room.Doors {
			doors.Put(door.Pos)
		}
	}
	if doors.Size() == 0 {
		return false
	}

	start := t.Rooms[0].Door().Pos
	visited := mapset.New[Point]()
	visited.Put(start)
	queue := []Point{start}
	reached := 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if doors.Has(current) {
			reached++
		}
		for _, next := range current.Neighbors() {
			tile := t.Grid.At(next)
			if tile == nil || visited.Has(next) {
				continue
			}
			if !doors.Has(next) && (tile.Terrain.IsBlocking() || tile.DecorationBlocking) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return reached == doors.Size()
}

// Dump renders the town map for debugging.
func (t *Town) Dump() string {
	return t.Grid.String()
}
