package server

import (
	"cognitive-tactics/internal/domain"
	"cognitive-tactics/pkg/api"
	"cognitive-tactics/pkg/logger"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и игровым циклом.
// Получает снимки через Hub, отдает команды игрока в CommandSink.
type Client struct {
	ID     string
	Server *Server
	Conn   *websocket.Conn
	Send   chan api.ServerResponse
	log    *logrus.Entry
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	id := uuid.NewString()
	client := &Client{
		ID:     id,
		Server: s,
		Conn:   conn,
		Send:   s.Hub.Register(id),
		log:    logger.Log.WithFields(logrus.Fields{"component": "ws_client", "client_id": id}),
	}
	client.log.Info("Client connected")

	// Сразу отдаём текущее состояние (триггер первой отрисовки)
	s.Hub.SendTo(id, s.State())

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Server.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg api.ClientCommand
		if err := c.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS Error")
			}
			return
		}
		c.handleCommand(msg)
	}
}

func (c *Client) handleCommand(msg api.ClientCommand) {
	if err := msg.Validate(); err != nil {
		c.reject(err.Error())
		return
	}
	cmd, err := domain.ParseCommand(msg.Text())
	if err != nil {
		c.reject(err.Error())
		return
	}
	if c.Server.Commands == nil {
		c.reject("human is not controlled over the network")
		return
	}
	if !c.Server.Commands.Submit(cmd) {
		c.reject("command queue is full")
		return
	}
	c.log.WithField("command", cmd.String()).Debug("Command queued")
}

func (c *Client) reject(reason string) {
	c.log.WithField("reason", reason).Info("Command rejected")
	c.Server.Hub.SendTo(c.ID, api.ServerResponse{Type: "ERROR", Error: reason})
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
