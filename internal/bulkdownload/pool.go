package bulkdownload

import "golang.org/x/sync/errgroup"

// DefaultConcurrency bounds concurrent backend calls per request.
const DefaultConcurrency = 100

// fanOut runs task for every index in [0, n) with at most limit running at
// once. Tasks record their own results; none of them fail the group.
func fanOut(limit, n int, task func(i int)) {
	if limit < 1 {
		limit = DefaultConcurrency
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			task(i)
			return nil
		})
	}
	_ = g.Wait()
}
