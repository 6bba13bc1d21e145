package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pborman/uuid"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = 54 * time.Second
	wsMaxMessageSize = 512
	wsSendBufferSize = 128
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsClient is one subscribed websocket connection
type wsClient struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

var (
	wsRegister   = make(chan *wsClient)
	wsUnregister = make(chan *wsClient)
	wsBroadcast  = make(chan []byte, 256)
)

// runWsHub owns the subscriber set. Slow subscribers are dropped so a
// stuck connection can not delay the feed.
func runWsHub() {
	clients := make(map[*wsClient]struct{})
	for {
		select {
		case client := <-wsRegister:
			clients[client] = struct{}{}
			log.Info("[websocket] client subscribed", "id", client.id, "clients", len(clients))
		case client := <-wsUnregister:
			if _, exist := clients[client]; exist {
				delete(clients, client)
				close(client.send)
				log.Info("[websocket] client unsubscribed", "id", client.id, "clients", len(clients))
			}
		case message := <-wsBroadcast:
			for client := range clients {
				select {
				case client.send <- message:
				default:
					delete(clients, client)
					close(client.send)
					log.Warn("[websocket] drop slow client", "id", client.id)
				}
			}
		}
	}
}

// BroadcastEvent push an applied operation event to all subscribers.
// Never blocks the caller, the event is dropped if the queue is full.
func BroadcastEvent(ev *trustlines.Event) {
	message, err := json.Marshal(ev)
	if err != nil {
		log.Error("[websocket] marshal event failed", "seq", ev.Seq, "err", err)
		return
	}
	select {
	case wsBroadcast <- message:
	default:
		log.Warn("[websocket] broadcast queue is full, drop event", "seq", ev.Seq)
	}
}

// ServeWebsocket upgrade the connection and register the subscriber
func ServeWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("[websocket] upgrade failed", "err", err)
		return
	}
	client := &wsClient{
		id:   uuid.New(),
		conn: conn,
		send: make(chan []byte, wsSendBufferSize),
	}
	wsRegister <- client
	go client.writePump()
	go client.readPump()
}

// readPump drains the connection so control frames are processed, any
// read error tears the subscriber down.
func (c *wsClient) readPump() {
	defer func() {
		wsUnregister <- c
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(wsMaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
