package framedata

import "iter"

// Sharded is the supported pattern for concurrent producers: one
// independent FrameData per producer goroutine and a merge step at read
// time, instead of internal locking that would serialize the bump
// allocation hot path.
//
// Each producer pushes to the shard it obtained via Shard with no
// synchronization. Gather, Clear and the aggregate accessors must not run
// concurrently with pushes; call them at the frame boundary after all
// producers have quiesced.
type Sharded struct {
	shards []*FrameData
}

// NewSharded creates n independent FrameData shards, each with the
// specified chunk size. If n <= 0, a single shard is created.
func NewSharded(n, chunkSize int) *Sharded {
	if n <= 0 {
		n = 1
	}
	s := &Sharded{shards: make([]*FrameData, n)}
	for i := range s.shards {
		s.shards[i] = New(chunkSize)
	}
	return s
}

// NumShards returns the number of shards.
func (s *Sharded) NumShards() int {
	return len(s.shards)
}

// Shard returns the i-th container. Hand each producer goroutine its own
// shard and let it push without locking.
func (s *Sharded) Shard(i int) *FrameData {
	return s.shards[i]
}

// Clear resets every shard with the same slack.
func (s *Sharded) Clear(slack int) {
	for _, f := range s.shards {
		f.Clear(slack)
	}
}

// Len returns the total number of values pushed across all shards.
func (s *Sharded) Len() int {
	n := 0
	for _, f := range s.shards {
		n += f.Len()
	}
	return n
}

// NumChunks returns the total chunk count across all shards.
func (s *Sharded) NumChunks() int {
	n := 0
	for _, f := range s.shards {
		n += f.NumChunks()
	}
	return n
}

// Gather iterates every shard's values of type T: shards in index order,
// values within a shard in push order. This is the merge step that turns
// per-producer containers back into one sequence.
func Gather[T any](s *Sharded) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, f := range s.shards {
			for p := range Data[T](f).All() {
				if !yield(p) {
					return
				}
			}
		}
	}
}
