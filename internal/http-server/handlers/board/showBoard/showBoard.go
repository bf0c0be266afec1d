package showBoard

import (
	"log/slog"
	"net/http"

	"eventBoard/internal/catalog"
	"eventBoard/internal/lib/logger/sl"
	"eventBoard/internal/metrics"
	"eventBoard/internal/models"
	"eventBoard/internal/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsProvider
type EventsProvider interface {
	Events() ([]models.Event, error)
}

// New builds the board page handler. Every request recomputes the tag
// index and the filtered card list from the full snapshot; nothing is
// kept between requests.
func New(log *slog.Logger, renderer *render.Renderer, provider EventsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.board.showBoard.New"

		log = log.With(slog.String("op", op))

		query := r.URL.Query().Get("q")
		tag := r.URL.Query().Get("tag")

		events, err := provider.Events()
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusBadGateway)
			if err = renderer.Error(w, "Could not load events: "+err.Error()); err != nil {
				log.Error("failed to render error page", sl.Err(err))
			}
			return
		}

		filtered := catalog.Filter(events, query, tag)

		log.Info("board rendered",
			slog.Int("total", len(events)),
			slog.Int("shown", len(filtered)),
			slog.String("query", catalog.Normalize(query)),
			slog.String("tag", tag),
		)

		metrics.BoardRenders.Inc()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = renderer.Board(w, render.BoardData{
			Query:       query,
			SelectedTag: tag,
			Tags:        catalog.Tags(events),
			Events:      filtered,
		})
		if err != nil {
			log.Error("failed to render board", sl.Err(err))
		}
	}
}
