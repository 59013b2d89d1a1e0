package core

import "context"

type Catalog interface {
	Get(ctx context.Context, query string) (Record, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
