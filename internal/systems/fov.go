package systems

import (
	"sort"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibleTiles выполняет симметричный shadowcasting и возвращает
// индексы видимых тайлов, отсортированные по дистанции от наблюдателя
// (ИИ полагается на этот порядок при переборе целей).
// Взгляд блокируют только сплошные стены.
func ComputeVisibleTiles(z *domain.Zone, pos domain.Position, radius int) []int {
	if radius <= 0 {
		return []int{z.GetIndex(pos.X, pos.Y)}
	}

	visibleMap := make(map[int]bool)

	// Центр всегда виден
	visibleMap[z.GetIndex(pos.X, pos.Y)] = true

	// Рекурсивный shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(z, pos.X, pos.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visibleMap)
	}

	result := make([]int, 0, len(visibleMap))
	for idx := range visibleMap {
		result = append(result, idx)
	}
	sort.Slice(result, func(i, j int) bool {
		xi, yi := z.Coords(result[i])
		xj, yj := z.Coords(result[j])
		di := (xi-pos.X)*(xi-pos.X) + (yi-pos.Y)*(yi-pos.Y)
		dj := (xj-pos.X)*(xj-pos.X) + (yj-pos.Y)*(yj-pos.Y)
		if di != dj {
			return di < dj
		}
		return result[i] < result[j]
	})
	return result
}

func castLight(z *domain.Zone, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visibleMap map[int]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			gx := cx + dx*xx + dy*xy
			gy := cy + dx*yx + dy*yy

			if z.InBounds(gx, gy) && float64(dx*dx+dy*dy) < radiusSq {
				visibleMap[z.GetIndex(gx, gy)] = true
			}

			// Логика теней
			if blocked {
				// Идем вдоль стены
				if z.IsOpaque(gx, gy) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else {
				// Шли по пустоте и наткнулись на стену
				if z.IsOpaque(gx, gy) && j < radius {
					blocked = true
					castLight(z, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visibleMap)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}

// ProcessViewsheds пересчитывает грязные поля зрения.
// Слепые видят только собственный тайл. Для игрока дополнительно
// обновляются слои зоны: Visible (с нуля) и Revealed - тайл виден и
// запоминается, только если он освещен или лежит вплотную
// (самоподсветка, дистанция < 2).
func ProcessViewsheds(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.Viewshed == nil || e.Pos == nil || !e.Viewshed.Dirty {
			continue
		}

		if e.Blind != nil {
			e.Viewshed.VisibleTiles = []int{ctx.Zone.GetIndex(e.Pos.X, e.Pos.Y)}
		} else {
			e.Viewshed.VisibleTiles = ComputeVisibleTiles(ctx.Zone, *e.Pos, e.Viewshed.Radius)
		}
		e.Viewshed.Dirty = false

		if e.ID != ctx.PlayerID {
			continue
		}

		ctx.Zone.ClearVisible()
		for _, idx := range e.Viewshed.VisibleTiles {
			x, y := ctx.Zone.Coords(idx)
			dx, dy := x-e.Pos.X, y-e.Pos.Y
			selfLit := dx*dx+dy*dy < 4 // дистанция < 2

			// Неосвещенный дальний тайл не виден и не запоминается:
			// так сохраняется правило "видимое всегда разведано".
			if ctx.Zone.Lit[idx] || selfLit {
				ctx.Zone.Visible[idx] = true
				ctx.Zone.Revealed[idx] = true
			}
		}
	}
}

// TickBlindness уменьшает счетчики слепоты; по нулю зрение возвращается.
func TickBlindness(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.Blind == nil {
			continue
		}
		e.Blind.TicksLeft--
		if e.Blind.TicksLeft <= 0 {
			e.Blind = nil
			if e.Viewshed != nil {
				e.Viewshed.Dirty = true
			}
			if e.ID == ctx.PlayerID {
				ctx.Log.Append("You can see again!")
			}
		}
	}
}
