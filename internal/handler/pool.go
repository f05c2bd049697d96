package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a full state view without growing
const initialBufferSize = 1024

// bufferPool recycles the buffers respondJSON encodes into
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
