package hal

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// StreamConfig controls the websocket frame streamer.
type StreamConfig struct {
	Addr     string
	Interval time.Duration
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Streamer serves PNG-encoded frames of a display's framebuffer to
// websocket clients. It reads completed frames only, through the
// framebuffer snapshot, so it can run beside either host runner.
type Streamer struct {
	fb  *hostFramebuffer
	log Logger
	cfg StreamConfig

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex
}

// NewStreamer builds a streamer for the given HAL's display.
func NewStreamer(h HAL, cfg StreamConfig) (*Streamer, error) {
	hh, ok := h.(*hostHAL)
	if !ok {
		return nil, ErrNotImplemented
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 100 * time.Millisecond
	}
	return &Streamer{
		fb:      hh.fb,
		log:     hh.logger,
		cfg:     cfg,
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}, nil
}

// Run serves until ctx is cancelled.
func (s *Streamer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	srv := &http.Server{Addr: s.cfg.Addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.log.WriteLineString("stream: listening on " + s.cfg.Addr)
	go s.broadcastLoop(ctx)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (s *Streamer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WriteLineString("stream: upgrade error: " + err.Error())
		return
	}
	defer conn.Close()

	connMu := &sync.Mutex{}
	s.clientsMu.Lock()
	s.clients[conn] = connMu
	s.clientsMu.Unlock()
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
	}()

	// Drain control frames until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Streamer) broadcastLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	snap := make([]byte, len(s.fb.buf))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		s.clientsMu.RLock()
		idle := len(s.clients) == 0
		s.clientsMu.RUnlock()
		if idle {
			continue
		}

		frame, err := s.encodeFrame(snap)
		if err != nil {
			s.log.WriteLineString("stream: encode error: " + err.Error())
			continue
		}
		s.broadcast(frame)
	}
}

func (s *Streamer) encodeFrame(snap []byte) ([]byte, error) {
	s.fb.SnapshotRGBA(snap)

	img := &image.RGBA{
		Pix:    snap,
		Stride: s.fb.stride,
		Rect:   image.Rect(0, 0, s.fb.width, s.fb.height),
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Streamer) broadcast(frame []byte) {
	s.clientsMu.RLock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(s.clients))
	for c, mu := range s.clients {
		conns[c] = mu
	}
	s.clientsMu.RUnlock()

	for conn, mu := range conns {
		mu.Lock()
		err := conn.WriteMessage(websocket.BinaryMessage, frame)
		mu.Unlock()
		if err != nil {
			conn.Close()
		}
	}
}
