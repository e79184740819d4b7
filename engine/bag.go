package engine

import "math/rand/v2"

// RandFunc returns a uniformly distributed value in [0, 1).
type RandFunc func() float64

// SeededRand returns a deterministic RandFunc for replays and tests.
func SeededRand(seed uint64) RandFunc {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)).Float64
}

// queue is the upcoming-piece sequence, refilled one bag at a time.
type queue struct {
	kinds []Kind
	rand  RandFunc
}

func newQueue(r RandFunc) *queue {
	if r == nil {
		r = rand.Float64
	}
	return &queue{
		kinds: make([]Kind, 0, 2*BagSize),
		rand:  r,
	}
}

// refill appends one Fisher-Yates shuffled permutation of every kind.
func (q *queue) refill() {
	bag := Kinds
	for i := len(bag) - 1; i > 0; i-- {
		j := int(q.rand() * float64(i+1))
		bag[i], bag[j] = bag[j], bag[i]
	}
	q.kinds = append(q.kinds, bag[:]...)
}

// pop returns the front kind, refilling first when fewer than a bag remain.
func (q *queue) pop() Kind {
	if len(q.kinds) < BagSize {
		q.refill()
	}
	kind := q.kinds[0]
	q.kinds = q.kinds[1:]
	return kind
}

// peek returns up to n upcoming kinds without consuming them.
func (q *queue) peek(n int) []Kind {
	n = min(n, len(q.kinds))
	return append([]Kind(nil), q.kinds[:n]...)
}

func (q *queue) reset() {
	q.kinds = q.kinds[:0]
}

func (q *queue) len() int {
	return len(q.kinds)
}
