package systems

// AnyParticles: есть ли живые анимации (движок по этому признаку
// переключается в состояние отрисовки частиц).
func AnyParticles(ctx *Context) bool {
	for _, e := range ctx.Entities {
		if e.ParticleAnimation != nil {
			return true
		}
	}
	return false
}

// AdvanceParticles продвигает каждую анимацию на один кадр;
// доигравшие сущности-частицы исчезают.
func AdvanceParticles(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.ParticleAnimation == nil {
			continue
		}
		e.ParticleAnimation.CurrentFrame++
		if e.ParticleAnimation.CurrentFrame >= len(e.ParticleAnimation.Frames) {
			ctx.Despawn(e.ID)
		}
	}
}

// ParticleTiles собирает тайлы текущих кадров для снапшота рендера.
func ParticleTiles(ctx *Context) []int {
	var tiles []int
	for _, e := range ctx.Entities {
		p := e.ParticleAnimation
		if p == nil || p.CurrentFrame >= len(p.Frames) {
			continue
		}
		tiles = append(tiles, p.Frames[p.CurrentFrame]...)
	}
	return tiles
}
