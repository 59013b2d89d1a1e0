package core

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
)

const maxQueryLen = 256

type Service struct {
	log         *slog.Logger
	catalog     Catalog
	concurrency int
}

func NewService(log *slog.Logger, catalog Catalog, concurrency int) (*Service, error) {
	if log == nil || catalog == nil {
		return nil, ErrNilDependency
	}
	if concurrency < 1 {
		return nil, errors.New("wrong concurrency specified")
	}
	return &Service{
		log:         log,
		catalog:     catalog,
		concurrency: concurrency,
	}, nil
}

// NormalizeQuery prepares a free-form query for the catalog. The
// upstream API accepts only lowercase names.
func NormalizeQuery(query string) (string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", ErrBadQuery
	}
	if len(q) > maxQueryLen {
		return "", ErrBadQuery
	}
	return q, nil
}

func (s *Service) Lookup(ctx context.Context, query string) (Record, error) {
	q, err := NormalizeQuery(query)
	if err != nil {
		return Record{}, err
	}
	rec, err := s.catalog.Get(ctx, q)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("catalog get failed", "query", q, "error", err)
		}
		return Record{}, err
	}
	return rec, nil
}

// LookupBatch resolves queries in parallel with bounded concurrency.
// Each query resolves independently; failed ones are logged and
// skipped. Results keep the request order.
func (s *Service) LookupBatch(ctx context.Context, queries []string) ([]Record, error) {
	if len(queries) == 0 {
		return nil, nil
	}

	records := make([]Record, len(queries))
	found := make([]bool, len(queries))

	jobs := make(chan int, s.concurrency*2)
	var wg sync.WaitGroup
	worker := func() {
		for i := range jobs {
			select {
			case <-ctx.Done():
				return
			default:
			}

			rec, err := s.Lookup(ctx, queries[i])
			if err != nil {
				s.log.Warn("batch lookup failed", "query", queries[i], "error", err)
				continue
			}
			records[i] = rec
			found[i] = true
		}
	}

	for i := 0; i < s.concurrency; i++ {
		wg.Go(worker)
	}
	for i := range queries {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	out := make([]Record, 0, len(queries))
	for i, ok := range found {
		if ok {
			out = append(out, records[i])
		}
	}
	return out, nil
}
