// Package network содержит рассылку снимков подписчикам. Хаб ничего
// не знает о движке: только сессии и их личные каналы.
package network

import (
	"sync"

	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/api"
)

// Hub - реестр подписчиков на снимки мира.
type Hub struct {
	mu sync.RWMutex
	// sessionID -> личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для сессии. Старый канал той же
// сессии закрывается (переподключение).
func (h *Hub) Register(sessionID string) chan api.ServerResponse {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	h.subscribers[sessionID] = ch
	return ch
}

// Unregister удаляет подписчика и закрывает его канал.
func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[sessionID]; ok {
		close(ch)
		delete(h.subscribers, sessionID)
	}
}

// SendTo отправляет снимок конкретной сессии. Полный канал не
// блокирует рассылку: медленный клиент теряет кадры, не тормозя тик.
func (h *Hub) SendTo(sessionID string, msg api.ServerResponse) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if ch, ok := h.subscribers[sessionID]; ok {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Broadcast отправляет снимок всем подписчикам.
func (h *Hub) Broadcast(msg api.ServerResponse) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SubscriberCount возвращает число активных подписчиков.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
