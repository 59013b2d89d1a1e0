package pokeapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pokedex/core"
)

const pikachuJSON = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"sprites": {"front_default": "https://img.example/pikachu.png"},
	"types": [{"type": {"name": "electric"}}],
	"abilities": [{"ability": {"name": "static"}}, {"ability": {"name": "lightning-rod"}}]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := NewClient(server.URL, time.Second, 1000, log)
	require.NoError(t, err)
	client.retryDelay = time.Millisecond
	return client
}

func TestNewClient_EmptyBaseURL(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := NewClient("", time.Second, 1, log)
	require.Error(t, err)
}

func TestGet_MapsRecord(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(pikachuJSON))
	})

	rec, err := client.Get(context.Background(), "pikachu")
	require.NoError(t, err)
	require.Equal(t, "/pokemon/pikachu", gotPath)
	require.Equal(t, 25, rec.ID)
	require.Equal(t, "pikachu", rec.Name)
	require.Equal(t, "https://img.example/pikachu.png", rec.SpriteURL)
	require.Equal(t, []string{"electric"}, rec.Types)
	require.InDelta(t, 0.4, rec.HeightM, 1e-9)
	require.InDelta(t, 6.0, rec.WeightKG, 1e-9)
	require.Equal(t, []string{"static", "lightning-rod"}, rec.Abilities)
}

func TestGet_NotFound(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Get(context.Background(), "not-a-pokemon")
	require.ErrorIs(t, err, core.ErrNotFound)
	require.Equal(t, int32(1), calls.Load(), "404 must not be retried")
}

func TestGet_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(pikachuJSON))
	})

	rec, err := client.Get(context.Background(), "pikachu")
	require.NoError(t, err)
	require.Equal(t, 25, rec.ID)
	require.Equal(t, int32(3), calls.Load())
}

func TestGet_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Get(context.Background(), "pikachu")
	require.Error(t, err)
	require.Equal(t, int32(maxAttempts), calls.Load())
}

func TestGet_MalformedPayload(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id": `))
	})

	_, err := client.Get(context.Background(), "pikachu")
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load(), "malformed payload must not be retried")
}

func TestGet_EscapesQuery(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Get(context.Background(), "mr mime")
	require.ErrorIs(t, err, core.ErrNotFound)
	require.Equal(t, "/pokemon/mr%20mime", gotPath)
}

func TestPing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pokemon/1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(pikachuJSON))
	})

	require.NoError(t, client.Ping(context.Background()))
}
