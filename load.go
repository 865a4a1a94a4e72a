package pngchunk

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// defaultLoadConcurrency bounds the number of files LoadAll reads at once.
const defaultLoadConcurrency = 8

// LoadAll reads and parses every path concurrently.
//
// Results are returned in the order of paths. The first failure cancels the
// remaining reads and is returned.
func LoadAll(ctx context.Context, paths []string, opts ...Option) ([]*Container, error) {
	out := make([]*Container, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultLoadConcurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := ReadFile(path, opts...)
			if err != nil {
				return err
			}
			out[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
