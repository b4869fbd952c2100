// Package framedata implements a transient, type-indexed bump allocator.
// Typical usage: push many small heterogeneous values during one frame or
// tick, iterate them per type, then Clear() at the frame boundary for O(1)
// cleanup with the backing chunks retained for the next frame.
package framedata

import "unsafe"

// DefaultChunkSize is the chunk size used when New is given a non-positive
// size (64 KiB).
const DefaultChunkSize = 1 << 16

// ChunkAlignment is the guaranteed alignment of every chunk's base address.
// A type whose alignment does not exceed this ceiling can be placed at any
// suitably aligned offset within a chunk.
const ChunkAlignment = 64

// chunkPool is a growable pool of fixed-size, ChunkAlignment-aligned chunks
// with bump-cursor allocation. Exactly one chunk (the active one) receives
// new allocations; chunks beyond the active index are pre-warmed spares
// waiting to be rolled into.
type chunkPool struct {
	chunks    [][]byte
	chunkSize uintptr
	active    int     // index of the chunk receiving allocations
	head      uintptr // next free byte offset within the active chunk
}

// newChunk returns a size-byte slice whose base address is
// ChunkAlignment-aligned. Go has no aligned allocator, so the buffer is
// over-allocated and resliced at the first aligned byte.
func newChunk(size uintptr) []byte {
	buf := make([]byte, size+ChunkAlignment)
	base := uintptr(unsafe.Pointer(&buf[0]))
	off := alignUp(base, ChunkAlignment) - base
	return buf[off : off+size : off+size]
}

// pushChunk appends a fresh chunk to the pool.
func (p *chunkPool) pushChunk() {
	p.chunks = append(p.chunks, newChunk(p.chunkSize))
}

// allocate returns a pointer to size bytes at the given alignment within the
// active chunk. When the active chunk cannot fit the request, allocation
// rolls over to the next chunk in the pool, appending a new one only if no
// pre-warmed chunk remains. The caller guarantees 0 < size <= chunkSize and
// align <= ChunkAlignment.
func (p *chunkPool) allocate(size, align uintptr) unsafe.Pointer {
	if len(p.chunks) == 0 {
		// Base chunk, allocated on first use.
		p.pushChunk()
	}

	off := alignUp(p.head, align)
	if off+size > p.chunkSize {
		// Active chunk is full. The next chunk starts at an aligned base
		// address, so offset 0 satisfies any permitted alignment.
		off = 0
		p.active++
		if p.active >= len(p.chunks) {
			p.pushChunk()
		}
	}
	p.head = off + size
	return unsafe.Pointer(&p.chunks[p.active][off])
}

// reset zeroes both cursors and resizes the pool to exactly slack chunks:
// excess chunks are released to the garbage collector, missing ones are
// allocated eagerly so the next frame starts pre-warmed.
func (p *chunkPool) reset(slack int) {
	if slack < 0 {
		slack = 0
	}
	p.head = 0
	p.active = 0
	if slack < len(p.chunks) {
		for i := slack; i < len(p.chunks); i++ {
			p.chunks[i] = nil
		}
		p.chunks = p.chunks[:slack]
		return
	}
	for len(p.chunks) < slack {
		p.pushChunk()
	}
}

// sizeInUse counts the bytes consumed this frame. Chunks before the active
// one count in full: their unused tails were abandoned at rollover and are
// unreachable until the next reset.
func (p *chunkPool) sizeInUse() uintptr {
	if len(p.chunks) == 0 {
		return 0
	}
	return uintptr(p.active)*p.chunkSize + p.head
}

// alignUp rounds v up to the next multiple of align (a power of two).
func alignUp(v, align uintptr) uintptr {
	return (v + align - 1) &^ (align - 1)
}
