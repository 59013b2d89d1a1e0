package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"pokedex/core"
)

type recordReply struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Sprite    string   `json:"sprite"`
	Types     []string `json:"types"`
	HeightM   float64  `json:"height_m"`
	WeightKG  float64  `json:"weight_kg"`
	Abilities []string `json:"abilities"`
}

type batchReply struct {
	Records []recordReply `json:"records"`
	Total   int           `json:"total"`
}

type pingReply struct {
	Replies map[string]string `json:"replies"`
}

type Looker interface {
	Lookup(ctx context.Context, query string) (core.Record, error)
	LookupBatch(ctx context.Context, queries []string) ([]core.Record, error)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func toReply(rec core.Record) recordReply {
	return recordReply{
		ID:        rec.ID,
		Name:      rec.Name,
		Sprite:    rec.SpriteURL,
		Types:     rec.Types,
		HeightM:   rec.HeightM,
		WeightKG:  rec.WeightKG,
		Abilities: rec.Abilities,
	}
}

func NewLookupHandler(log *slog.Logger, looker Looker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if strings.TrimSpace(q) == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		rec, err := looker.Lookup(r.Context(), q)
		if err != nil {
			switch {
			case errors.Is(err, core.ErrBadQuery):
				http.Error(w, "bad request", http.StatusBadRequest)
			case errors.Is(err, core.ErrNotFound):
				http.Error(w, "not found", http.StatusNotFound)
			default:
				log.Error("lookup failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toReply(rec))
	}
}

func NewBatchHandler(log *slog.Logger, looker Looker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		queries := r.URL.Query()["q"]
		if len(queries) == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		records, err := looker.LookupBatch(r.Context(), queries)
		if err != nil {
			log.Error("batch lookup failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := batchReply{
			Records: make([]recordReply, 0, len(records)),
			Total:   len(records),
		}
		for _, rec := range records {
			out.Records = append(out.Records, toReply(rec))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func NewPingHandler(log *slog.Logger, pingers map[string]core.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := pingReply{Replies: map[string]string{}}
		for name, p := range pingers {
			if err := p.Ping(r.Context()); err != nil {
				log.Warn("ping failed", "service", name, "error", err)
				resp.Replies[name] = "unavailable"
				continue
			}
			resp.Replies[name] = "ok"
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
