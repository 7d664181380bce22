package mesh

// Deferred sizing requests.
//
// CountToSize and GradeToSize depend on the final block geometry (vertex
// merging across blocks, neighbour counts), which is only known after
// [Mesh.Prepare] has indexed the whole mesh. The requests are therefore
// recorded as plain tagged values and executed later, FIFO, exactly once
// each, during the prepare pass. Failures propagate to the caller of the
// drain; nothing is retried or re-queued.

// deferredCount is a queued count-to-size request for one axis.
type deferredCount struct {
	axis     Axis
	cellSize float64
}

// deferredGrading is a queued grade-to-size request for one axis.
type deferredGrading struct {
	axis     Axis
	cellSize float64
	inverse  bool
}

// DrainCounts executes all queued count-to-size requests in insertion
// order and empties the queue. The first failure stops the drain and is
// returned.
func (b *Block) DrainCounts() error {
	queue := b.deferredCounts
	b.deferredCounts = nil
	for _, d := range queue {
		if _, err := b.resolveCount(d.axis, d.cellSize); err != nil {
			return err
		}
	}
	return nil
}

// DrainGradings executes all queued grade-to-size requests in insertion
// order and empties the queue. The first failure stops the drain and is
// returned.
func (b *Block) DrainGradings() error {
	queue := b.deferredGradings
	b.deferredGradings = nil
	for _, d := range queue {
		if err := b.resolveGrading(d.axis, d.cellSize, d.inverse); err != nil {
			return err
		}
	}
	return nil
}
