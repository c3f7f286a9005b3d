package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"cleansweep-backend/internal/events"
	"cleansweep-backend/internal/logger"
)

// StreamHandler pushes dashboard events to clients over server-sent
// events. Each connection holds one broker subscription, released when the
// client goes away.
type StreamHandler struct {
	broker *events.Broker
}

func NewStreamHandler(broker *events.Broker) *StreamHandler {
	return &StreamHandler{broker: broker}
}

func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch, cancel := h.broker.Subscribe(16)
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-ch:
			if !open {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				logger.Error("Failed to encode dashboard event", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data)
			flusher.Flush()
		}
	}
}
