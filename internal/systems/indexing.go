package systems

// MapIndexing перестраивает производные слои зоны с нуля: мультимножество
// сущностей по тайлам и слой проходимости. Содержимое тайлов никогда
// не читается с прошлого тика.
func MapIndexing(ctx *Context) {
	z := ctx.Zone
	z.ClearContent()

	for _, e := range ctx.Entities {
		if e.Pos == nil {
			continue
		}
		if !z.InBounds(e.Pos.X, e.Pos.Y) {
			// Сущность за пределами зоны - баг конвейера, не игровая ситуация.
			panic("map indexing: entity " + string(e.ID) + " out of zone bounds")
		}
		idx := z.GetIndex(e.Pos.X, e.Pos.Y)
		z.TileContent[idx] = append(z.TileContent[idx], e)
	}

	z.PopulateBlocked()
}
