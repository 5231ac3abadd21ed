package dungeon

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestGenerateFloorIsDeterministicPerSeed(t *testing.T) {
	a := GenerateFloor(rand.New(rand.NewSource(21)), 4)
	b := GenerateFloor(rand.New(rand.NewSource(21)), 4)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different floors")
	}
	c := GenerateFloor(rand.New(rand.NewSource(22)), 4)
	if reflect.DeepEqual(a.Rooms, c.Rooms) {
		t.Fatalf("different seeds produced identical room layouts")
	}
}

func TestGenerateFloorCarvesRoomsAndExit(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		m := GenerateFloor(rand.New(rand.NewSource(seed)), 1)
		if len(m.Rooms) < 2 {
			t.Fatalf("seed %d: expected at least two rooms, got %d", seed, len(m.Rooms))
		}
		last := m.Rooms[len(m.Rooms)-1]
		if m.ExitRoomID != last.ID {
			t.Fatalf("seed %d: exit must be the generation-order-last room, got %d want %d", seed, m.ExitRoomID, last.ID)
		}
		ex, ey := last.Bounds.Center()
		if m.Tiles[ey][ex] != TileExit {
			t.Fatalf("seed %d: exit tile not set at (%d,%d)", seed, ex, ey)
		}
		for _, room := range m.Rooms {
			for y := room.Bounds.Y1; y <= room.Bounds.Y2; y++ {
				for x := room.Bounds.X1; x <= room.Bounds.X2; x++ {
					if m.Tiles[y][x] == TileWall {
						t.Fatalf("seed %d: wall inside room %d at (%d,%d)", seed, room.ID, x, y)
					}
				}
			}
		}
	}
}

func TestAdjacencyConnectsEveryRoom(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		m := GenerateFloor(rand.New(rand.NewSource(seed)), 6)
		visited := map[int]bool{}
		queue := []int{m.Rooms[0].ID}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			if visited[id] {
				continue
			}
			visited[id] = true
			queue = append(queue, m.Adjacency[id]...)
		}
		for _, room := range m.Rooms {
			if !visited[room.ID] {
				t.Fatalf("seed %d: room %d unreachable from entrance", seed, room.ID)
			}
		}
	}
}

func TestDeeperFloorsGrow(t *testing.T) {
	shallow := GenerateFloor(rand.New(rand.NewSource(1)), 1)
	deep := GenerateFloor(rand.New(rand.NewSource(1)), 9)
	if deep.Width <= shallow.Width || deep.Height <= shallow.Height {
		t.Fatalf("expected depth 9 floor larger than depth 1: %dx%d vs %dx%d",
			deep.Width, deep.Height, shallow.Width, shallow.Height)
	}
}

func TestRoomLookup(t *testing.T) {
	m := GenerateFloor(rand.New(rand.NewSource(3)), 2)
	if _, ok := m.RoomByID(m.Rooms[0].ID); !ok {
		t.Fatalf("expected lookup of an existing room to succeed")
	}
	if _, ok := m.RoomByID(9999); ok {
		t.Fatalf("expected lookup of a missing room to fail")
	}
}
