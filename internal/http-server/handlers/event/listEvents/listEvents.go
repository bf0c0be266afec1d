package listEvents

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventBoard/internal/lib/api/response"
	"eventBoard/internal/lib/logger/sl"
	"eventBoard/internal/models"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsProvider
type EventsProvider interface {
	Events() ([]models.Event, error)
}

// New builds the JSON events endpoint. Responses carry a strong ETag over
// the encoded body and a short public cache window; a matching
// If-None-Match short-circuits to 304.
func New(log *slog.Logger, provider EventsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log = log.With(slog.String("op", op))

		events, err := provider.Events()
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		body, err := json.Marshal(EventsResponse{
			Response: response.OK(),
			Events:   events,
		})
		if err != nil {
			log.Error("failed to encode events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to encode events"))
			return
		}

		etag := fmt.Sprintf("%x", sha1.Sum(body))

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=30")
		w.Header().Set("Vary", "Accept-Encoding")

		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		log.Info("events served", slog.Int("count", len(events)))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)

		if _, err = w.Write(body); err != nil {
			log.Error("failed to write response", sl.Err(err))
		}
	}
}
