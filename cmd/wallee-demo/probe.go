package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/eluv-io/wallee-go"
)

// probe opens and stats all paths concurrently and returns the first failure.
func probe(ctx context.Context, paths []string, logger zerolog.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return wallee.Context(err, "probe cancelled")
			}
			f, err := os.Open(path)
			if err != nil {
				return wallee.WithContext(err, func() string {
					return fmt.Sprintf("failed to open %s", path)
				})
			}
			defer wallee.Log(f.Close, &logger)

			info, err := f.Stat()
			if err != nil {
				return wallee.Context(err, "stat failed")
			}
			logger.Debug().
				Str("path", path).
				Int64("size", info.Size()).
				Bool("dir", info.IsDir()).
				Msg("probed")
			return nil
		})
	}
	return g.Wait()
}

// deepen adds depth context layers to err.
func deepen(err error, depth int) error {
	for i := 1; i <= depth; i++ {
		err = wallee.Context(err, fmt.Sprintf("layer %d", i))
	}
	return err
}

func render(err error, format string) string {
	e := wallee.FromBoxed(err)
	switch format {
	case "display":
		return fmt.Sprintf("%v", e)
	case "alternate":
		return fmt.Sprintf("%+s", e)
	case "debug":
		return fmt.Sprintf("%#v", e)
	}
	return fmt.Sprintf("%+v", e)
}
