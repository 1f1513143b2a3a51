package systems

import (
	"container/heap"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
)

// pathNode - элемент очереди приоритетов Дейкстры.
type pathNode struct {
	idx     int
	cost    int
	heapIdx int
}

type pathQueue []*pathNode

func (pq pathQueue) Len() int           { return len(pq) }
func (pq pathQueue) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].heapIdx = i
	pq[j].heapIdx = j
}

func (pq *pathQueue) Push(x interface{}) {
	n := len(*pq)
	node := x.(*pathNode)
	node.heapIdx = n
	*pq = append(*pq, node)
}

func (pq *pathQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.heapIdx = -1
	*pq = old[0 : n-1]
	return node
}

// FindPath ищет кратчайший путь Дейкстрой по манхэттенскому соседству.
// waterOnly ограничивает движение водными тайлами (водные твари).
// Целевой тайл допускается занятым (там стоит жертва). Возвращает
// последовательность индексов от старта до цели включительно, либо nil.
func FindPath(z *domain.Zone, fromX, fromY, toX, toY int, waterOnly bool) []int {
	if !z.InBounds(fromX, fromY) || !z.InBounds(toX, toY) {
		return nil
	}
	start := z.GetIndex(fromX, fromY)
	goal := z.GetIndex(toX, toY)
	if start == goal {
		return []int{start}
	}

	dist := make(map[int]int, 64)
	prev := make(map[int]int, 64)
	dist[start] = 0

	pq := make(pathQueue, 0, 64)
	heap.Push(&pq, &pathNode{idx: start, cost: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*pathNode)
		if cur.idx == goal {
			break
		}
		if cur.cost > dist[cur.idx] {
			continue // устаревшая запись
		}

		x, y := z.Coords(cur.idx)
		for _, next := range z.GetAdjacentPassableTiles(x, y, true, waterOnly) {
			nextCost := cur.cost + 1
			if old, seen := dist[next]; seen && old <= nextCost {
				continue
			}
			dist[next] = nextCost
			prev[next] = cur.idx
			heap.Push(&pq, &pathNode{idx: next, cost: nextCost})
		}

		// Целевой тайл обычно заблокирован стоящей там жертвой, поэтому
		// шаг в него разрешаем отдельно от проходимости.
		if neighbourOfGoal(z, cur.idx, goal) {
			nextCost := cur.cost + 1
			if old, seen := dist[goal]; !seen || old > nextCost {
				dist[goal] = nextCost
				prev[goal] = cur.idx
				heap.Push(&pq, &pathNode{idx: goal, cost: nextCost})
			}
		}
	}

	if _, found := dist[goal]; !found {
		return nil
	}

	// Разворачиваем путь
	var path []int
	for idx := goal; ; idx = prev[idx] {
		path = append(path, idx)
		if idx == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func neighbourOfGoal(z *domain.Zone, idx, goal int) bool {
	x, y := z.Coords(idx)
	gx, gy := z.Coords(goal)
	dx, dy := x-gx, y-gy
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}
