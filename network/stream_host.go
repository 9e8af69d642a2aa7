package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/rocket-range/core"
	"github.com/lixenwraith/rocket-range/engine"
	"github.com/lixenwraith/rocket-range/events"
	"github.com/lixenwraith/rocket-range/logging"
)

// StreamHost presents a live view to websocket viewers. The scene advances
// on the presenting goroutine; peers only receive encoded frames.
type StreamHost struct {
	config   *Config
	peers    *PeerManager
	upgrader websocket.Upgrader
	log      logging.Logger
	clock    *engine.PausableClock

	frames uint64 // presenting goroutine only
}

// NewStreamHost creates a stream host; cfg nil uses DefaultConfig
func NewStreamHost(cfg *Config, log logging.Logger) *StreamHost {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logging.Noop()
	}
	h := &StreamHost{
		config: cfg,
		peers:  NewPeerManager(cfg),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log:   log,
		clock: engine.NewPausableClock(),
	}
	h.peers.SetHandlers(h.onConnect, h.onDisconnect)
	return h
}

// ServeHTTP upgrades the request and registers the viewer
func (h *StreamHost) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn(r.Context(), "websocket upgrade failed", logging.Any("error", err))
		return
	}
	if _, err := h.peers.AddConnection(conn); err != nil {
		h.log.Warn(r.Context(), "viewer rejected",
			logging.String("addr", r.RemoteAddr),
			logging.Any("error", err),
		)
	}
}

func (h *StreamHost) onConnect(p *Peer) {
	p.Send(Message{Type: MsgHello, Peer: p.ID})
	h.log.Info(context.Background(), "viewer connected",
		logging.Int("peer", int(p.ID)),
		logging.String("addr", p.Addr),
	)
}

func (h *StreamHost) onDisconnect(id PeerID) {
	h.log.Info(context.Background(), "viewer disconnected", logging.Int("peer", int(id)))
}

// Present advances lv in real time scaled by TimeScale, broadcasting a frame
// every FrameInterval and a done message once the scene is idle
func (h *StreamHost) Present(ctx context.Context, lv *engine.LiveView) error {
	h.broadcast(MsgFrame, lv, lv.Dispatch())

	if !lv.Idle() {
		sched := engine.NewClockScheduler(h.clock, h.config.FrameInterval, h.config.TimeScale)
		err := sched.Run(ctx, func(dt time.Duration) bool {
			h.broadcast(MsgFrame, lv, lv.Step(dt))
			return !lv.Idle()
		})
		if err != nil {
			return err
		}
	}

	h.broadcast(MsgDone, lv, lv.Dispatch())
	return nil
}

func (h *StreamHost) broadcast(t MessageType, lv *engine.LiveView, evs []events.SceneEvent) {
	h.frames++
	h.peers.Broadcast(Message{Type: t, Frame: NewFrame(lv, evs)})
}

// Frames returns the number of frames broadcast so far
func (h *StreamHost) Frames() uint64 {
	return h.frames
}

// Peers returns the connected viewer count
func (h *StreamHost) Peers() int {
	return h.peers.PeerCount()
}

// Clock returns the host clock so callers can pause the stream
func (h *StreamHost) Clock() *engine.PausableClock {
	return h.clock
}

// Handler returns a mux serving the websocket endpoint at config.Path
func (h *StreamHost) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(h.config.Path, h)
	return mux
}

// ListenAndServe serves Handler on config.Address until ctx is done
func (h *StreamHost) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.config.Address)
	if err != nil {
		return fmt.Errorf("stream listen %s: %w", h.config.Address, err)
	}
	return h.Serve(ctx, ln, h.Handler())
}

// Serve serves handler on ln until ctx is done, then disconnects every viewer
func (h *StreamHost) Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{Handler: handler}

	errCh := make(chan error, 1)
	core.Go(func() { errCh <- srv.Serve(ln) })
	h.log.Info(ctx, "stream host listening", logging.String("addr", ln.Addr().String()))

	select {
	case <-ctx.Done():
	case err := <-errCh:
		h.peers.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("stream serve: %w", err)
	}

	h.peers.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.config.WriteTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("stream shutdown: %w", err)
	}
	return nil
}
