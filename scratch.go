package lsp

import "sync"

// scratchBuf holds pooled scratch memory for the transform hot paths.
// Buffers never carry transform state between calls: every slice handed
// out is either fully overwritten or explicitly zeroed by the caller.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (data []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	} else {
		buf.data = buf.data[:n]
	}
	return buf.data, buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}
