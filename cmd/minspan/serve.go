package main

import (
	"context"

	"github.com/katalvlaran/minspan/server"
	"github.com/katalvlaran/minspan/store"
)

func serve(ctx context.Context, e *env) error {
	opts := []server.Option{server.WithLogger(e.log)}
	if e.cfg.CacheDSN != "" {
		st, err := openStore(ctx, e)
		if err != nil {
			return err
		}
		defer st.Close()
		opts = append(opts, server.WithCache(st))
	}

	srv, err := server.New(e.cfg, opts...)
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}

func openStore(ctx context.Context, e *env) (*store.Store, error) {
	codec, err := store.ParseCodec(e.cfg.CacheCodec)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, e.cfg.CacheDSN, store.WithCodec(codec))
	if err != nil {
		return nil, err
	}
	e.log.InfoContext(ctx, "cache opened", "dsn", e.cfg.CacheDSN, "codec", codec.String())

	return st, nil
}
