package server

import (
	"net/http"
	"time"

	"github.com/club59/pongking/internal/app/club"
	"github.com/club59/pongking/internal/domains/dtos"
	"github.com/club59/pongking/internal/metrics"
	"github.com/club59/pongking/pkg/logging"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const pingInterval = 30 * time.Second

// handleLive upgrades the connection and streams full snapshots: one
// immediately, then one on every change to either collection.
func (s *server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("failed to upgrade connection", zap.Error(err))
		return
	}
	defer conn.Close()

	metrics.LiveSubscribers.Inc()
	defer metrics.LiveSubscribers.Dec()

	snapshots, cancel := s.service.Subscribe()
	defer cancel()

	initial, err := s.service.CurrentSnapshot(r.Context())
	if err != nil {
		logging.Error("failed to read initial snapshot", zap.Error(err))
		return
	}
	if err := writeSnapshot(conn, initial); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case snapshot, ok := <-snapshots:
				if !ok {
					return
				}
				if err := writeSnapshot(conn, snapshot); err != nil {
					logging.Info("live subscriber dropped", zap.Error(err))
					conn.Close()
					return
				}
			case <-ticker.C:
				deadline := time.Now().Add(10 * time.Second)
				if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
					conn.Close()
					return
				}
			}
		}
	}()

	// Inbound messages are ignored; the read loop only detects close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logging.Info("connection closed",
				zap.String("remote_address", conn.RemoteAddr().String()),
				zap.Error(err),
			)
			break
		}
	}
	cancel()
	<-done
}

func writeSnapshot(conn *websocket.Conn, snapshot club.Snapshot) error {
	return conn.WriteJSON(dtos.SnapshotResponseFromEntities(snapshot.Players, snapshot.Matches))
}
