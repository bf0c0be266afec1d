package status

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type StatusResponse struct {
	Status    string `json:"status"`
	Time      string `json:"time"`
	LastFetch string `json:"last_fetch,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SnapshotInfo
type SnapshotInfo interface {
	FetchedAt() (time.Time, bool)
}

func New(log *slog.Logger, info SnapshotInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.status.New"

		log.Debug("status requested", slog.String("op", op))

		resp := StatusResponse{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		}

		if fetchedAt, ok := info.FetchedAt(); ok {
			resp.LastFetch = fetchedAt.UTC().Format(time.RFC3339)
		}

		render.JSON(w, r, resp)
	}
}
