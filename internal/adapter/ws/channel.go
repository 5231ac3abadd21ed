package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"github.com/hertz-contrib/websocket"
	"golang.org/x/sync/errgroup"

	"gloomhold/internal/app/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 16
)

// Channel upgrades connections and runs one read loop per connection, so a
// connection's commands resolve strictly in arrival order. That ordering is
// what lets sessions go lock-free.
type Channel struct {
	Game session.UseCase
	Log  *slog.Logger

	upgrader websocket.HertzUpgrader
}

func NewChannel(game session.UseCase, log *slog.Logger) *Channel {
	return &Channel{
		Game: game,
		Log:  log,
		upgrader: websocket.HertzUpgrader{
			ReadBufferSize:  maxMessageSize,
			WriteBufferSize: maxMessageSize,
			CheckOrigin:     func(_ *app.RequestContext) bool { return true },
		},
	}
}

// Serve is the /ws route handler.
func (ch *Channel) Serve(c context.Context, ctx *app.RequestContext) {
	err := ch.upgrader.Upgrade(ctx, func(conn *websocket.Conn) {
		ch.run(c, conn)
	})
	if err != nil {
		ch.log().Error("websocket upgrade", "err", err)
	}
}

func (ch *Channel) run(ctx context.Context, conn *websocket.Conn) {
	connID := uuid.NewString()
	log := ch.log().With("conn_id", connID)
	log.Info("channel open")

	send := make(chan []byte, sendBuffer)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer conn.Close()
		return ch.writePump(gctx, conn, send)
	})
	g.Go(func() error {
		defer close(send)
		return ch.readPump(gctx, conn, connID, send)
	})

	err := g.Wait()
	if err != nil && websocket.IsUnexpectedCloseError(err,
		websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
		log.Warn("channel closed", "err", err)
	} else {
		log.Info("channel closed")
	}

	// The drop must outlive the connection context: a live run is archived
	// as abandoned even when the peer just vanished.
	ch.Game.Drop(context.Background(), connID)
}

func (ch *Channel) readPump(ctx context.Context, conn *websocket.Conn, connID string, send chan<- []byte) error {
	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return err
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		select {
		case send <- ch.handleRaw(ctx, connID, raw):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// handleRaw turns one inbound frame into one outbound frame. Malformed
// frames get a dungeon-error reply instead of tearing the channel down.
func (ch *Channel) handleRaw(ctx context.Context, connID string, raw []byte) []byte {
	var req session.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return mustMarshal(session.Reply{Type: session.ReplyError, Error: "malformed message"})
	}
	return mustMarshal(ch.Game.Execute(ctx, connID, req))
}

func (ch *Channel) writePump(ctx context.Context, conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				deadline := time.Now().Add(writeWait)
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (ch *Channel) log() *slog.Logger {
	if ch.Log != nil {
		return ch.Log
	}
	return slog.Default()
}

// mustMarshal panics only on marshal bugs in our own reply types; replies
// are plain data structs with no custom marshalers.
func mustMarshal(reply session.Reply) []byte {
	b, err := json.Marshal(reply)
	if err != nil {
		panic(err)
	}
	return b
}
