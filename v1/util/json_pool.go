// Copyright 2025 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"sync"
)

// bufferPool holds reusable buffers for encoding and code generation.
var bufferPool = sync.Pool{
	New: func() any {
		// 4KB fits the generated table source without growing
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// GetBuffer returns an empty buffer from the shared pool. Return it with
// PutBuffer once its contents are no longer referenced.
func GetBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// PutBuffer resets buf and returns it to the shared pool.
func PutBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
