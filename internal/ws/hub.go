// Package ws реализует рассылку уведомлений подключённым клиентам
// по WebSocket. Hub держит множество соединений и транслирует каждому
// сообщения об операциях пользователей.
package ws

import (
	"context"
	"fmt"
	"log/slog"
)

// Hub управляет множеством WebSocket-клиентов и рассылкой сообщений.
// Все изменения множества клиентов проходят через каналы и выполняются
// в единственной горутине Run.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	log        *slog.Logger
}

// NewHub создает новый Hub.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		log:        log,
	}
}

// Run обрабатывает регистрацию, отключение клиентов и рассылку сообщений
// до отмены контекста.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
			h.log.Info("client connected", slog.String("client_id", client.id))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Info("client disconnected", slog.String("client_id", client.id))
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Клиент не успевает читать, отключаем его.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Notify рассылает всем клиентам сообщение о выполненной операции.
func (h *Hub) Notify(phone, operation string) {
	message := fmt.Sprintf("The user %s performed the operation %s", phone, operation)
	h.log.Info(message)
	select {
	case h.broadcast <- []byte(message):
	default:
		h.log.Warn("notification dropped, broadcast buffer full")
	}
}
