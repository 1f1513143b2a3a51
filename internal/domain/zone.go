package domain

// Rect - прямоугольная комната (для построителей на комнатах).
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Zone - одна подземная зона (текущий уровень).
// Все параллельные векторы имеют длину Width*Height и индексируются
// как y*Width+x.
type Zone struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Depth  int `json:"depth"`

	Tiles []TileKind `json:"tiles"`

	// Производные слои. Blocked и TileContent перестраиваются каждый тик
	// с нуля; читать их "с прошлого тика" нельзя.
	Revealed []bool      `json:"revealed"`
	Visible  []bool      `json:"visible"`
	Lit      []bool      `json:"lit"`
	Blocked  []bool      `json:"-"`
	Water    []bool      `json:"-"`
	Decals   []DecalKind `json:"decals"`

	// TileContent: мультимножество сущностей на тайле.
	TileContent [][]*Entity `json:"-"`

	// Точки спавна, размеченные построителем.
	PlayerSpawnIdx int   `json:"-"`
	MonsterSpawns  []int `json:"-"`
	ItemSpawns     []int `json:"-"`
	FaunaSpawns    []int `json:"-"`

	Rooms []Rect `json:"-"`
}

// NewZone создает пустую зону, целиком заполненную стенами.
func NewZone(width, height, depth int) *Zone {
	size := width * height
	z := &Zone{
		Width:       width,
		Height:      height,
		Depth:       depth,
		Tiles:       make([]TileKind, size),
		Revealed:    make([]bool, size),
		Visible:     make([]bool, size),
		Lit:         make([]bool, size),
		Blocked:     make([]bool, size),
		Water:       make([]bool, size),
		Decals:      make([]DecalKind, size),
		TileContent: make([][]*Entity, size),
	}
	for i := range z.Tiles {
		z.Tiles[i] = TileWall
	}
	return z
}

func (z *Zone) GetIndex(x, y int) int {
	return y*z.Width + x
}

// Coords - обратное преобразование индекса в (x, y).
func (z *Zone) Coords(idx int) (int, int) {
	return idx % z.Width, idx / z.Width
}

func (z *Zone) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < z.Width && y < z.Height
}

// IsOpaque: блокирует ли тайл взгляд. Выход за границы непрозрачен.
func (z *Zone) IsOpaque(x, y int) bool {
	if !z.InBounds(x, y) {
		return true
	}
	return z.Tiles[z.GetIndex(x, y)].IsOpaque()
}

// PopulateBlocked пересчитывает слой проходимости: стена ИЛИ
// сущность с BlocksTile.
func (z *Zone) PopulateBlocked() {
	for i, t := range z.Tiles {
		z.Blocked[i] = t.IsSolid()
	}
	for i, stack := range z.TileContent {
		if z.Blocked[i] {
			continue
		}
		for _, e := range stack {
			if e.BlocksTile != nil {
				z.Blocked[i] = true
				break
			}
		}
	}
}

// PopulateWater пересчитывает водный слой по тайлам.
func (z *Zone) PopulateWater() {
	for i, t := range z.Tiles {
		z.Water[i] = t == TileWater
	}
}

// ClearContent опустошает TileContent перед перестройкой тика.
func (z *Zone) ClearContent() {
	for i := range z.TileContent {
		z.TileContent[i] = z.TileContent[i][:0]
	}
}

// ClearVisible гасит слой видимости перед пересчетом FOV игрока.
func (z *Zone) ClearVisible() {
	for i := range z.Visible {
		z.Visible[i] = false
	}
}

// ClearLit гасит слой освещенности перед пересборкой индекса света.
func (z *Zone) ClearLit() {
	for i := range z.Lit {
		z.Lit[i] = false
	}
}

// GetEntitiesAt возвращает сущности на клетке (быстро, из индекса).
func (z *Zone) GetEntitiesAt(x, y int) []*Entity {
	if !z.InBounds(x, y) {
		return nil
	}
	return z.TileContent[z.GetIndex(x, y)]
}

// GetAdjacentPassableTiles возвращает индексы соседних проходимых тайлов.
// manhattan=true ограничивает соседство четырьмя сторонами (ИИ ходит
// без диагоналей), waterOnly=true пускает только по воде (водные твари).
func (z *Zone) GetAdjacentPassableTiles(x, y int, manhattan, waterOnly bool) []int {
	deltas := [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	if !manhattan {
		deltas = append(deltas, [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}...)
	}

	var result []int
	for _, d := range deltas {
		nx, ny := x+d[0], y+d[1]
		if !z.InBounds(nx, ny) {
			continue
		}
		idx := z.GetIndex(nx, ny)
		if z.Blocked[idx] {
			continue
		}
		if waterOnly && !z.Water[idx] {
			continue
		}
		result = append(result, idx)
	}
	return result
}

// SetDecal ставит накладку на тайл (последняя побеждает).
func (z *Zone) SetDecal(idx int, d DecalKind) {
	if idx >= 0 && idx < len(z.Decals) {
		z.Decals[idx] = d
	}
}
