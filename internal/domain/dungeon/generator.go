package dungeon

import "math/rand"

type bspLeaf struct {
	x, y, w, h  int
	left, right *bspLeaf
	roomID      int
}

// GenerateFloor carves one level: binary space partition, a room per
// terminal leaf, L-corridors between sibling subtrees. The last room in
// generation order becomes the exit. Deeper floors grow a little.
func GenerateFloor(r *rand.Rand, depth int) *FloorMap {
	width := MapWidth + 2*minInt(depth-1, 8)
	height := MapHeight + minInt(depth-1, 6)
	m := newFloorMap(width, height)
	root := &bspLeaf{x: 0, y: 0, w: width, h: height, roomID: -1}
	splitLeaf(root, r)
	carveRooms(root, m, r)
	connectSiblings(root, m, r)

	if n := len(m.Rooms); n > 0 {
		exit := m.Rooms[n-1]
		m.ExitRoomID = exit.ID
		ex, ey := exit.Bounds.Center()
		m.setTile(ex, ey, TileExit)
	}
	return m
}

func splitLeaf(l *bspLeaf, r *rand.Rand) {
	// Oversized leaves always split; the rest keep splitting three times
	// out of four until they run out of room.
	if l.w <= MaxLeafSize && l.h <= MaxLeafSize && r.Float64() < 0.25 {
		return
	}
	horizontal := r.Intn(2) == 0
	if l.w > l.h && float64(l.w)/float64(l.h) >= 1.25 {
		horizontal = false
	} else if l.h > l.w && float64(l.h)/float64(l.w) >= 1.25 {
		horizontal = true
	}
	span := l.w
	if horizontal {
		span = l.h
	}
	if span <= MinLeafSize*2 {
		return
	}
	cut := MinLeafSize + r.Intn(span-MinLeafSize*2+1)
	if horizontal {
		l.left = &bspLeaf{x: l.x, y: l.y, w: l.w, h: cut, roomID: -1}
		l.right = &bspLeaf{x: l.x, y: l.y + cut, w: l.w, h: l.h - cut, roomID: -1}
	} else {
		l.left = &bspLeaf{x: l.x, y: l.y, w: cut, h: l.h, roomID: -1}
		l.right = &bspLeaf{x: l.x + cut, y: l.y, w: l.w - cut, h: l.h, roomID: -1}
	}
	splitLeaf(l.left, r)
	splitLeaf(l.right, r)
}

func carveRooms(l *bspLeaf, m *FloorMap, r *rand.Rand) {
	if l.left != nil {
		carveRooms(l.left, m, r)
		carveRooms(l.right, m, r)
		return
	}
	availW := l.w - 2*RoomPadding
	availH := l.h - 2*RoomPadding
	if availW < MinRoomSize || availH < MinRoomSize {
		return
	}
	rw := MinRoomSize + r.Intn(availW-MinRoomSize+1)
	rh := MinRoomSize + r.Intn(availH-MinRoomSize+1)
	rx := l.x + RoomPadding + r.Intn(availW-rw+1)
	ry := l.y + RoomPadding + r.Intn(availH-rh+1)

	// Keep a one-tile wall border around the whole map.
	if rx < 1 {
		rx = 1
	}
	if ry < 1 {
		ry = 1
	}
	if rx+rw >= m.Width {
		rw = m.Width - rx - 1
	}
	if ry+rh >= m.Height {
		rh = m.Height - ry - 1
	}
	if rw < 3 || rh < 3 {
		return
	}

	room := Room{ID: len(m.Rooms) + 1, Bounds: Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}}
	for y := room.Bounds.Y1; y <= room.Bounds.Y2; y++ {
		for x := room.Bounds.X1; x <= room.Bounds.X2; x++ {
			m.setTile(x, y, TileFloor)
		}
	}
	m.Rooms = append(m.Rooms, room)
	l.roomID = room.ID
}

func (l *bspLeaf) anyRoomID() int {
	if l == nil {
		return -1
	}
	if l.roomID > 0 {
		return l.roomID
	}
	if id := l.left.anyRoomID(); id > 0 {
		return id
	}
	return l.right.anyRoomID()
}

func connectSiblings(l *bspLeaf, m *FloorMap, r *rand.Rand) {
	if l.left == nil {
		return
	}
	connectSiblings(l.left, m, r)
	connectSiblings(l.right, m, r)

	a := l.left.anyRoomID()
	b := l.right.anyRoomID()
	if a < 0 || b < 0 {
		return
	}
	ra, _ := m.RoomByID(a)
	rb, _ := m.RoomByID(b)
	ax, ay := ra.Bounds.Center()
	bx, by := rb.Bounds.Center()
	if r.Intn(2) == 0 {
		carveH(m, ax, bx, ay)
		carveV(m, ay, by, bx)
	} else {
		carveV(m, ay, by, ax)
		carveH(m, ax, bx, by)
	}
	m.addEdge(a, b)
}

func carveH(m *FloorMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if m.InBounds(x, y) && m.Tiles[y][x] == TileWall {
			m.setTile(x, y, TileFloor)
		}
	}
}

func carveV(m *FloorMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if m.InBounds(x, y) && m.Tiles[y][x] == TileWall {
			m.setTile(x, y, TileFloor)
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

