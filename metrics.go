package framedata

// SizeInUse returns the number of chunk bytes consumed this frame.
// Chunks abandoned at rollover count in full, so alignment padding and
// unused chunk tails are included.
func (f *FrameData) SizeInUse() int {
	return int(f.pool.sizeInUse())
}

// NumChunks returns the number of chunks currently in the pool, including
// pre-warmed chunks not yet written to.
func (f *FrameData) NumChunks() int {
	return len(f.pool.chunks)
}

// Capacity returns the total capacity (in bytes) of all chunks in the pool.
func (f *FrameData) Capacity() int {
	return len(f.pool.chunks) * int(f.pool.chunkSize)
}

// ChunkSize returns the fixed size of every chunk in the pool.
func (f *FrameData) ChunkSize() int {
	return int(f.pool.chunkSize)
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to
// 1.0). Returns 0.0 if the pool is empty.
func (f *FrameData) Utilization() float64 {
	capacity := f.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(f.SizeInUse()) / float64(capacity)
}

// NumTypes returns the number of distinct types pushed since the last Clear.
func (f *FrameData) NumTypes() int {
	return len(f.types)
}

// Len returns the total number of values pushed since the last Clear,
// across all types.
func (f *FrameData) Len() int {
	n := 0
	for _, addrs := range f.types {
		n += len(addrs)
	}
	return n
}

// Metrics returns a snapshot of container statistics.
func (f *FrameData) Metrics() FrameMetrics {
	return FrameMetrics{
		SizeInUse:   f.SizeInUse(),
		Capacity:    f.Capacity(),
		NumChunks:   f.NumChunks(),
		ChunkSize:   f.ChunkSize(),
		Utilization: f.Utilization(),
		NumTypes:    f.NumTypes(),
		NumValues:   f.Len(),
	}
}

// FrameMetrics contains statistical information about a FrameData.
type FrameMetrics struct {
	SizeInUse   int     // Bytes currently consumed, padding included
	Capacity    int     // Total capacity in bytes
	NumChunks   int     // Number of chunks in the pool
	ChunkSize   int     // Fixed chunk size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
	NumTypes    int     // Distinct types pushed this frame
	NumValues   int     // Total values pushed this frame
}
