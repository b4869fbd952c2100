package framedata

import (
	"reflect"
	"unsafe"
)

// FrameData is a transient, type-indexed bump allocator. Values of
// arbitrary pointer-free types are copied into fixed-size chunks during one
// frame and can be iterated per type, in push order, until the next Clear.
// Clearing runs in O(number of chunks) and never touches individual values.
//
// FrameData is not goroutine-safe. Use one container per producer and merge
// at the frame boundary; see Sharded.
type FrameData struct {
	pool  chunkPool
	types map[reflect.Type][]unsafe.Pointer
}

// New creates an empty FrameData with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used. No chunks are allocated
// until the first push.
func New(chunkSize int) *FrameData {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &FrameData{
		pool:  chunkPool{chunkSize: uintptr(chunkSize)},
		types: make(map[reflect.Type][]unsafe.Pointer),
	}
}

// zerobase backs every zero-size value, mirroring the runtime's own
// treatment of zero-size allocations.
var zerobase byte

// Push copies v into chunk memory and records its address under T.
// Data[T] later yields values of the same type in push order.
//
// T must be pointer-free and must fit in a single chunk; either violation
// panics on the first push of that type. Push never returns an error:
// failure to obtain a new chunk from the Go allocator is fatal.
func Push[T any](f *FrameData, v T) {
	key := reflect.TypeFor[T]()
	addrs, seen := f.types[key]
	if !seen {
		checkPushable(key, unsafe.Sizeof(v), f.pool.chunkSize)
	}

	var ptr unsafe.Pointer
	if unsafe.Sizeof(v) == 0 {
		ptr = unsafe.Pointer(&zerobase)
	} else {
		ptr = f.pool.allocate(unsafe.Sizeof(v), unsafe.Alignof(v))
		*(*T)(ptr) = v
	}
	f.types[key] = append(addrs, ptr)
}

// Data returns a view over every value of type T pushed since the last
// Clear, in push order, or an empty view if none were pushed. The view
// borrows chunk memory and is invalidated by the next Clear or Take.
func Data[T any](f *FrameData) View[T] {
	return View[T]{addrs: f.types[reflect.TypeFor[T]()]}
}

// Clear discards all stored values and type associations, then resizes the
// chunk pool to exactly slack chunks: excess chunks are freed, missing ones
// are pre-warmed. Clear(0) releases all chunk memory. The container remains
// usable after any Clear; stored bytes are not wiped, merely dead.
func (f *FrameData) Clear(slack int) {
	clear(f.types)
	f.pool.reset(slack)
}

// Take transfers ownership of the chunks and recorded values to a new
// FrameData and leaves the receiver empty. The receiver's cursors are
// zeroed explicitly, so its next push goes through the normal empty-pool
// path and it remains valid for reuse.
func (f *FrameData) Take() *FrameData {
	out := &FrameData{pool: f.pool, types: f.types}
	f.pool.chunks = nil
	f.pool.active = 0
	f.pool.head = 0
	f.types = make(map[reflect.Type][]unsafe.Pointer)
	return out
}
