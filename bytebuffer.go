package fasturi

import (
	"io"

	"braces.dev/errtrace"
	"github.com/valyala/bytebufferpool"
)

var dumpBufferPool bytebufferpool.Pool

// AcquireByteBuffer returns an empty byte buffer from the pool.
//
// Acquired byte buffer may be returned to the pool via ReleaseByteBuffer call.
// This reduces the number of memory allocations required for rendering
// many URIs.
func AcquireByteBuffer() *bytebufferpool.ByteBuffer {
	return dumpBufferPool.Get()
}

// ReleaseByteBuffer returns byte buffer to the pool.
//
// ByteBuffer.B mustn't be touched after returning it to the pool.
// Otherwise data races occur.
func ReleaseByteBuffer(b *bytebufferpool.ByteBuffer) {
	dumpBufferPool.Put(b)
}

// AppendDump appends u parts to dst, one "name: value" line per part,
// and returns the extended dst.
func (u *URI) AppendDump(dst []byte) []byte {
	dst = appendDumpLine(dst, "uri", u.buf)
	dst = appendDumpLine(dst, "scheme", u.Scheme())
	dst = appendDumpLine(dst, "authority", u.Authority())
	dst = appendDumpLine(dst, "host", u.Host())
	dst = append(dst, "port: "...)
	dst = AppendUint(dst, u.port)
	dst = append(dst, '\n')
	dst = appendDumpLine(dst, "path", u.Path())
	dst = appendDumpLine(dst, "query_string", u.QueryString())
	dst = appendDumpLine(dst, "path_and_query", u.PathAndQuery())
	return dst
}

// WriteDump writes AppendDump output to w.
func (u *URI) WriteDump(w io.Writer) (int64, error) {
	bb := AcquireByteBuffer()
	defer ReleaseByteBuffer(bb)
	bb.B = u.AppendDump(bb.B)
	return errtrace.Wrap2(bb.WriteTo(w))
}

func appendDumpLine(dst []byte, name string, value []byte) []byte {
	dst = append(dst, name...)
	dst = append(dst, ": "...)
	dst = append(dst, value...)
	return append(dst, '\n')
}
