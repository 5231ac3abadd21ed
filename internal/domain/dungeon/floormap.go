package dungeon

type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileExit
)

type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

type Room struct {
	ID     int  `json:"id"`
	Bounds Rect `json:"bounds"`
}

// FloorMap is one dungeon level: the carved tile grid, rooms in generation
// order, and the corridor adjacency between them. The generation-order-last
// room holds the exit.
type FloorMap struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Tiles      [][]TileKind  `json:"tiles"`
	Rooms      []Room        `json:"rooms"`
	ExitRoomID int           `json:"exit_room_id"`
	Adjacency  map[int][]int `json:"adjacency"`
}

func newFloorMap(width, height int) *FloorMap {
	tiles := make([][]TileKind, height)
	for y := range tiles {
		tiles[y] = make([]TileKind, width)
	}
	return &FloorMap{Width: width, Height: height, Tiles: tiles, Adjacency: map[int][]int{}}
}

func (m *FloorMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

func (m *FloorMap) setTile(x, y int, t TileKind) {
	if m.InBounds(x, y) {
		m.Tiles[y][x] = t
	}
}

func (m *FloorMap) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x] != TileWall
}

func (m *FloorMap) RoomByID(id int) (Room, bool) {
	for _, r := range m.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

func (m *FloorMap) addEdge(a, b int) {
	if a == b {
		return
	}
	for _, n := range m.Adjacency[a] {
		if n == b {
			return
		}
	}
	m.Adjacency[a] = append(m.Adjacency[a], b)
	m.Adjacency[b] = append(m.Adjacency[b], a)
}
