// growthimage-stream runs a growth driver headlessly and broadcasts its
// raster to any number of connected websocket clients as it fills in,
// as a supplemental live-viewing surface alongside the ebiten GUI build.
// Unlike the CLI's PNG output, this is explicitly a network stream, not
// disk persistence, so it sits outside the "no output file writer"
// non-goal the core engine carries.
package main

import (
	"encoding/binary"
	"flag"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"growthimage/internal/app"
	"growthimage/internal/core"
	"growthimage/internal/growth"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1 << 20,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	log     *logrus.Logger
}

func newHub(log *logrus.Logger) *hub {
	return &hub{clients: make(map[*websocket.Conn]struct{}), log: log}
}

func (h *hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// broadcast sends frame, a width/height-prefixed RGBA raster, to every
// connected client, dropping any client whose write fails.
func (h *hub) broadcast(frame []byte) {
	h.mu.Lock()
	dead := make([]*websocket.Conn, 0)
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			dead = append(dead, conn)
		}
	}
	h.mu.Unlock()

	for _, conn := range dead {
		h.remove(conn)
	}
}

func encodeFrame(w, h int, rgba []byte) []byte {
	frame := make([]byte, 8+len(rgba))
	binary.BigEndian.PutUint32(frame[0:4], uint32(w))
	binary.BigEndian.PutUint32(frame[4:8], uint32(h))
	copy(frame[8:], rgba)
	return frame
}

func main() {
	log := logrus.New()

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	addr := flag.String("addr", ":8088", "HTTP listen address")
	fps := flag.Int("fps", 30, "broadcast rate in frames per second")
	flag.Parse()

	growthCfg := growth.FromMap(cfg.GrowthParams())
	driver, err := growth.New(growthCfg)
	if err != nil {
		log.WithError(err).Fatal("failed to build growth run")
	}
	preset := growth.NewPreset(driver)

	h := newHub(log)
	pacer := core.NewFixedStep(*fps)

	go runGrowth(driver, preset, h, pacer, log)

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Warn("websocket upgrade failed")
			return
		}
		h.add(conn)
		log.WithField("remote", r.RemoteAddr).Info("client connected")
	})

	log.WithField("addr", *addr).Info("serving growth stream")
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func runGrowth(driver *growth.Driver, preset core.Grower, h *hub, pacer *core.FixedStep, log *logrus.Logger) {
	size := preset.Size()
	for {
		more := driver.Iterate()
		if pacer.ShouldStep() {
			h.broadcast(encodeFrame(size.W, size.H, preset.RasterRGBA()))
		}
		if !more {
			h.broadcast(encodeFrame(size.W, size.H, preset.RasterRGBA()))
			log.Info("growth run complete, holding final frame")
			select {}
		}
	}
}
