package systems

import (
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/utils"
)

// EmitTrails - существа со следом (слизь, кровь) оставляют на своем
// тайле метку-заглушку с временем жизни; метка держит декаль.
func EmitTrails(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.LeaveTrail == nil || e.Pos == nil || e.MyTurn == nil {
			continue
		}
		idx := ctx.Zone.GetIndex(e.Pos.X, e.Pos.Y)
		ctx.Zone.SetDecal(idx, e.LeaveTrail.Decal)

		ctx.Spawn(&domain.Entity{
			ID:   domain.EntityID(utils.GenerateID()),
			Name: "trail",
			Pos:  &domain.Position{X: e.Pos.X, Y: e.Pos.Y},
			TrailPlaceholder: &domain.TrailPlaceholderComponent{
				TicksLeft: e.LeaveTrail.Lifetime,
			},
		})
	}
}

// ExpireTrails гасит отжившие метки и их декали.
func ExpireTrails(ctx *Context) {
	for _, e := range ctx.Entities {
		if e.TrailPlaceholder == nil {
			continue
		}
		e.TrailPlaceholder.TicksLeft--
		if e.TrailPlaceholder.TicksLeft > 0 {
			continue
		}
		if e.Pos != nil {
			ctx.Zone.SetDecal(ctx.Zone.GetIndex(e.Pos.X, e.Pos.Y), domain.DecalNone)
		}
		ctx.Despawn(e.ID)
	}
}
