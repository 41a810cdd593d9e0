package server

import (
	"net/http"
	"time"

	"tunnel-server/internal/domain"
	"tunnel-server/internal/engine"
	"tunnel-server/pkg/api"
	"tunnel-server/pkg/logger"

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

// Client - посредник между Websocket и GameService.
// Клиент только смотрит и шлет команды: игрок на сервере один.
type Client struct {
	Game    *engine.GameService
	Conn    *websocket.Conn
	Send    chan api.ServerResponse
	Session string

	log *logrus.Entry
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	session := uuid.NewString()
	return &Client{
		Game:    game,
		Conn:    conn,
		Session: session,
		// Канал подписки хаба: закрывается при Unregister
		Send: game.Hub.Register(session),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "ws_client",
			"session":   session,
		}),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Game.Hub.Unregister(c.Session)
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
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	c.log.Info("Client connected")

	// Первая отрисовка: снимок сразу, не дожидаясь тика
	c.Game.Hub.SendTo(c.Session, c.Game.Snapshot())

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS error")
			}
			break
		}

		cmd, err := api.DecodeClientCommand(raw)
		if err != nil {
			c.reject(err.Error())
			continue
		}
		cmd.Token = c.Session

		if c.Game.Config.Autopilot && domain.ParseAction(cmd.Action) != domain.ActionInit {
			c.reject("autopilot is driving, commands are ignored")
			continue
		}

		if err := c.Game.ProcessCommand(cmd); err != nil {
			c.reject(err.Error())
		}
	}
}

// reject отвечает только этой сессии.
func (c *Client) reject(text string) {
	c.log.WithField("reason", text).Debug("Command rejected")
	c.Game.Hub.SendTo(c.Session, api.ServerResponse{
		Type: "ERROR",
		Logs: []api.LogEntry{{
			ID:        c.Session + "_" + time.Now().Format("150405.000"),
			Text:      text,
			Type:      "ERROR",
			Timestamp: time.Now().UnixMilli(),
		}},
	})
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
