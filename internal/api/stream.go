package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/logging"
)

const (
	streamBuffer     = 8
	streamPingPeriod = 30 * time.Second
	streamWriteWait  = 10 * time.Second
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// streamMsg is the envelope written to websocket subscribers.
type streamMsg struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// StreamHub fans encounter updates out to websocket subscribers, keyed by
// encounter id. Slow subscribers drop updates rather than block publishers;
// every message carries the full state so the next one catches them up.
// Each subscriber only forwards revisions newer than the last it sent.
type StreamHub struct {
	mu   sync.Mutex
	subs map[string]map[chan *game.EncounterRecord]struct{}
}

func NewStreamHub() *StreamHub {
	return &StreamHub{subs: map[string]map[chan *game.EncounterRecord]struct{}{}}
}

// Publish sends rec to every subscriber of its encounter. A nil hub or
// record is ignored.
func (h *StreamHub) Publish(rec *game.EncounterRecord) {
	if h == nil || rec == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[rec.ID] {
		select {
		case ch <- rec:
		default:
		}
	}
}

func (h *StreamHub) subscribe(id string) (<-chan *game.EncounterRecord, func()) {
	ch := make(chan *game.EncounterRecord, streamBuffer)
	h.mu.Lock()
	if h.subs[id] == nil {
		h.subs[id] = map[chan *game.EncounterRecord]struct{}{}
	}
	h.subs[id][ch] = struct{}{}
	h.mu.Unlock()
	return ch, func() {
		h.mu.Lock()
		delete(h.subs[id], ch)
		if len(h.subs[id]) == 0 {
			delete(h.subs, id)
		}
		h.mu.Unlock()
	}
}

func (h *StreamHub) subscribers(id string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[id])
}

// Stream upgrades to a websocket and pushes the encounter state on every
// change, starting with the current one.
func (h *EncounterHandler) Stream(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEncounterNotFound})
		return
	}
	id, ok := encounterIDParam(c)
	if !ok {
		return
	}
	// Subscribe before loading so no commit falls between the two.
	updates, cancel := h.hub.subscribe(id)
	defer cancel()
	rec, ok := h.load(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Warn("websocket upgrade failed", err, logging.Fields{constants.LogFieldEncounterID: rec.ID})
		return
	}
	defer conn.Close()
	fields := logging.Fields{constants.LogFieldEncounterID: rec.ID, constants.LogFieldAddr: c.ClientIP()}
	logging.Debug("stream subscriber connected", fields)

	// Reads only exist to notice the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	write := func(msg streamMsg) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteJSON(msg); err != nil {
			logging.Debug("stream write failed", fields)
			return false
		}
		return true
	}
	if !write(streamMsg{Type: "state", Data: rec}) {
		return
	}
	sent := rec.Revision

	ping := time.NewTicker(streamPingPeriod)
	defer ping.Stop()
	for {
		select {
		case <-closed:
			logging.Debug("stream subscriber left", fields)
			return
		case next := <-updates:
			// Publishers race once the encounter lock is released; never
			// send a state older than one the client already has.
			if next.Revision <= sent {
				continue
			}
			if !write(streamMsg{Type: "state", Data: next}) {
				return
			}
			sent = next.Revision
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return
			}
		}
	}
}
