package resource

import "golang.org/x/sync/errgroup"

// DecodeAll decodes each element of raws concurrently using decode,
// preserving input order in the result and returning the first error
// encountered (errgroup's standard first-error-wins semantics). Decoding is
// pure CPU-bound unmarshaling with no shared mutable state, so this is safe
// regardless of how many documents are given.
func DecodeAll[T any](raws [][]byte, decode func([]byte) (T, error)) ([]T, error) {
	out := make([]T, len(raws))

	var g errgroup.Group
	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			v, err := decode(raw)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
