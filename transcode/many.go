package transcode

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/madig/readwrite-ufo-glif/ufo"
	"github.com/madig/readwrite-ufo-glif/value"
)

// Many transcodes glyphs on up to workers goroutines. Results are in input
// order. The first failure cancels the remaining work and is returned.
func Many(ctx context.Context, glyphs []*ufo.Glyph, workers int) ([]*value.Value, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]*value.Value, len(glyphs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, g := range glyphs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := Glyph(g)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
