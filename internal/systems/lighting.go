package systems

import (
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

// RebuildLighting пересобирает индекс освещенности зоны с нуля.
// Lit-тайлы - производная: тайл освещен, если попадает в FOV хоть
// одного активного источника света с его эффективной позиции. Для
// носимых источников эффективная позиция - позиция носителя: фонарь
// светит оттуда, где он сейчас живет.
func RebuildLighting(ctx *Context) {
	ctx.Zone.ClearLit()

	for _, e := range ctx.Entities {
		if !e.IsLit() {
			continue
		}

		pos := lightPosition(ctx, e)
		if pos == nil {
			continue
		}

		for _, idx := range ComputeVisibleTiles(ctx.Zone, *pos, e.ProducesLight.Radius) {
			ctx.Zone.Lit[idx] = true
		}
	}
}

// lightPosition возвращает эффективную позицию источника света:
// собственную для лежащих на земле, позицию владельца для носимых.
func lightPosition(ctx *Context, e *domain.Entity) *domain.Position {
	if e.Pos != nil {
		return e.Pos
	}
	if e.InBackpack != nil {
		if owner := ctx.GetEntity(e.InBackpack.OwnerID); owner != nil && owner.Pos != nil {
			return owner.Pos
		}
	}
	return nil
}
