package world

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// pathNode is an open-set entry for the A* search.
type pathNode struct {
	pos  Point
	cost int // g: steps from start
	est  int // f: cost + heuristic
}

// FindPath runs A* over the 4-connected grid with unit step cost and a
// Manhattan heuristic. Blocking tiles are impassable, except start and goal
// which are always traversable. It returns the steps after start up to and
// including goal, so the path length equals the number of moves.
func FindPath(g *Grid, start, goal Point) ([]Point, bool) {
	if !g.InBounds(start.X, start.Y) || !g.InBounds(goal.X, goal.Y) {
		return nil, false
	}

	open := heap.New(func(a, b pathNode) bool {
		if a.est == b.est {
			return a.cost > b.cost // Prefer nodes closer to the goal on ties
		}
		return a.est < b.est
	})
	closed := mapset.New[Point]()
	cost := map[Point]int{start: 0}
	cameFrom := make(map[Point]Point)

	open.Push(pathNode{pos: start, cost: 0, est: start.Manhattan(goal)})

	for open.Size() > 0 {
		current, _ := open.Pop()
		if closed.Has(current.pos) {
			continue // Stale entry superseded by a cheaper push
		}
		if current.pos == goal {
			return reconstructPath(cameFrom, start, goal), true
		}
		closed.Put(current.pos)

		for _, next := range current.pos.Neighbors() {
			if !g.InBounds(next.X, next.Y) || closed.Has(next) {
				continue
			}
			if next != goal && next != start && g.IsBlocking(next.X, next.Y) {
				continue
			}
			tentative := current.cost + 1
			if known, ok := cost[next]; ok && tentative >= known {
				continue
			}
			cost[next] = tentative
			cameFrom[next] = current.pos
			open.Push(pathNode{pos: next, cost: tentative, est: tentative + next.Manhattan(goal)})
		}
	}

	return nil, false
}

// reconstructPath walks parent pointers back from goal and returns the
// steps in start-to-goal order, start excluded.
func reconstructPath(cameFrom map[Point]Point, start, goal Point) []Point {
	var path []Point
	for current := goal; current != start; current = cameFrom[current] {
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Connection records a validated corridor between two room doors.
type Connection struct {
	From, To *Room
	Path     []Point
}

// connectRooms links every room's door to the door of another, randomly
// chosen room and carves the corridors as path terrain. The spawn point is a
// random newly carved tile from the last connection that carved anything.
func connectRooms(g *Grid, rng *rand.Rand, rooms []*Room) ([]Connection, Point, bool, error) {
	var (
		connections []Connection
		spawn       Point
		hasSpawn    bool
	)
	if len(rooms) < 2 {
		return nil, spawn, false, nil
	}

	for _, room := range rooms {
		other := rooms[rng.Intn(len(rooms))]
		for other == room {
			other = rooms[rng.Intn(len(rooms))]
		}

		from, to := room.Door().Pos, other.Door().Pos
		path, ok := FindPath(g, from, to)
		if !ok {
			return connections, spawn, hasSpawn, fmt.Errorf("%s to %s: %w", from, to, ErrPathNotFound)
		}

		var carved []Point
		for _, p := range path {
			switch g.Terrain(p.X, p.Y) {
			case TerrainFloor, TerrainDoor, TerrainPath:
			default:
				g.SetTerrain(p.X, p.Y, TerrainPath)
				carved = append(carved, p)
			}
		}
		if len(carved) > 0 {
			spawn = carved[rng.Intn(len(carved))]
			hasSpawn = true
		}
		connections = append(connections, Connection{From: room, To: other, Path: path})
	}
	return connections, spawn, hasSpawn, nil
}
