package rifl

import (
	"encoding/binary"
	"io"
)

// Writer writes pulse/duration pairs to a RIFL stream.
//
// Pairs are varint-encoded and greedily packed into an accumulating
// buffer: before a pair would push the buffer past the header's
// MaxBufferSize, the buffer is flushed with its length prefix and a new
// one started. Close flushes the final partial buffer. A pair is never
// split across buffers.
type Writer struct {
	w      io.Writer
	header Header
	buf    []byte
	pair   []byte // scratch for one encoded pair
	closed bool
}

// NewWriter writes the header to w and returns a Writer accepting pairs.
// The header's MaxBufferSize must be able to hold at least one maximally
// encoded pair (2 * 10 bytes), otherwise ErrBufferTooSmall is returned.
func NewWriter(w io.Writer, h Header) (*Writer, error) {
	if h.MaxBufferSize < 2*maxVarintLen {
		return nil, ErrBufferTooSmall
	}
	if _, err := w.Write(h.Encode()); err != nil {
		return nil, err
	}
	return &Writer{w: w, header: h}, nil
}

// WritePair appends one pulse/duration pair, flushing the current buffer
// first if the pair would not fit.
func (w *Writer) WritePair(p Pair) error {
	w.pair = AppendUvarint(w.pair[:0], p.Pulse)
	w.pair = AppendUvarint(w.pair, p.Duration)

	if len(w.buf)+len(w.pair) > int(w.header.MaxBufferSize) {
		if err := w.flush(); err != nil {
			return err
		}
	}
	w.buf = append(w.buf, w.pair...)
	return nil
}

// Close flushes the final non-empty buffer. It does not close the
// underlying io.Writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if len(w.buf) == 0 {
		return nil
	}
	return w.flush()
}

// flush writes the accumulated buffer with its length prefix and resets
// the accumulator.
func (w *Writer) flush() error {
	var prefix [4]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(w.buf)))
	if _, err := w.w.Write(prefix[:]); err != nil {
		return err
	}
	if _, err := w.w.Write(w.buf); err != nil {
		return err
	}
	w.buf = w.buf[:0]
	return nil
}
