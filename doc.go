// Package framedata implements a transient, type-indexed bump allocator
// (a "frame arena") for Go.
//
// # Overview
//
// A frame arena accepts values of arbitrary pointer-free types during one
// logical cycle (a frame), stores them contiguously in fixed-size chunks,
// and lets consumers iterate all stored values of a chosen type in push
// order. At the frame boundary the whole container is cleared in O(number
// of chunks) and its chunks are retained for the next frame. This is the
// canonical shape for per-tick event and command buffers in simulation
// loops, renderers, and network dispatch, where heap-allocating many small
// heterogeneous objects every tick would dominate cost.
//
// # Basic Usage
//
//	fd := framedata.New(0) // Use default chunk size
//
//	// Producers push typed values
//	framedata.Push(fd, MoveEvent{X: 1, Y: 2})
//	framedata.Push(fd, DamageEvent{Amount: 10})
//	framedata.Push(fd, MoveEvent{X: 3, Y: 4})
//
//	// Consumers iterate per type, in push order
//	for ev := range framedata.Data[MoveEvent](fd).All() {
//		apply(ev)
//	}
//
//	// Frame boundary: drop everything, keep 2 chunks warm
//	fd.Clear(2)
//
// # Supported Types
//
// Chunk memory is untyped bytes the garbage collector does not scan, so a
// pushed type must not contain Go pointers (pointer, slice, map, chan,
// func, interface, string, unsafe.Pointer) at any nesting level. Push
// panics on the first push of an unsupported type; Supports reports the
// constraint ahead of time. The type must also fit in a single chunk.
//
// # Clearing and Slack
//
// Clear(slack) discards every value and resizes the chunk pool to exactly
// slack chunks: the tail is freed when the pool is larger, new chunks are
// pre-warmed when it is smaller. Clear(0) releases all memory. Stored bytes
// are never wiped or finalized; values simply become dead and their memory
// is reused next frame. Views obtained before a Clear must not be used
// afterward.
//
// # Thread Safety
//
// FrameData is not goroutine-safe, deliberately: the single-writer bump
// cursor is the entire performance profile. For concurrent producers use
// Sharded, which gives each producer its own container and merges at read
// time:
//
//	s := framedata.NewSharded(numWorkers, 0)
//	// worker i pushes to s.Shard(i) without locking
//	for ev := range framedata.Gather[MoveEvent](s) {
//		apply(ev)
//	}
//
// # Performance Characteristics
//
//   - Push: O(1) amortized; no per-value heap allocation
//   - Data: O(1); iteration O(values of that type)
//   - Clear: O(number of chunks)
//   - Per-type push order is preserved exactly; order across types is not
//
// # Important Notes
//
//   - Values are copied in; the container never takes ownership of
//     anything requiring cleanup
//   - No individual removal - use Clear for bulk cleanup
//   - Views and pointers into the container are valid only until the next
//     Clear or Take
//   - Chunk allocation failure is fatal, as with any Go allocation
package framedata
