package rifl

import (
	"encoding/binary"
	"io"
)

// Pair is one decoded carrier cycle: the signal is high for Pulse samples
// and the whole cycle spans Duration samples. Duration >= Pulse.
type Pair struct {
	Pulse    uint64
	Duration uint64
}

// Low is the low period of the cycle, Duration - Pulse.
func (p Pair) Low() uint64 { return p.Duration - p.Pulse }

// Reader reads pulse/duration pairs from a RIFL stream.
//
// The same Reader supports two consumption modes backed by the same buffer
// walk: ReadPair streams one pair at a time, ReadAll drains the remainder
// into a slice that is computed once and cached. The Reader does not own
// the underlying io.Reader; closing it is the caller's responsibility.
type Reader struct {
	r      io.Reader
	offset int64 // stream bytes consumed, for error context

	// Header is the parsed file header (set by NewReader).
	Header Header

	pending []Pair // pairs from the current buffer not yet returned
	eof     bool

	all    []Pair // ReadAll cache, populated at most once
	allSet bool
}

// NewReader parses the RIFL header from r and returns a Reader positioned
// at the first buffer. Returns a *FormatError if the stream is not a
// version-1 RIFL stream.
func NewReader(r io.Reader) (*Reader, error) {
	head := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, head)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, &FormatError{Offset: int64(n), Err: ErrTruncated}
	}
	if err != nil {
		return nil, err
	}
	h, err := ParseHeader(head)
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, offset: HeaderSize, Header: h}, nil
}

// ReadPair returns the next pulse/duration pair. It returns io.EOF once
// the stream ends cleanly at a buffer boundary, and a *FormatError for any
// framing violation.
func (r *Reader) ReadPair() (Pair, error) {
	for len(r.pending) == 0 {
		if r.eof {
			return Pair{}, io.EOF
		}
		if err := r.readBuffer(); err != nil {
			return Pair{}, err
		}
	}
	p := r.pending[0]
	r.pending = r.pending[1:]
	return p, nil
}

// ReadAll drains the remaining pairs into memory and returns them. The
// result is computed once: repeated calls return the same slice, so a
// whole-file decode can hand the sequence around without re-reading.
func (r *Reader) ReadAll() ([]Pair, error) {
	if r.allSet {
		return r.all, nil
	}
	var pairs []Pair
	for {
		p, err := r.ReadPair()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	r.all = pairs
	r.allSet = true
	return pairs, nil
}

// readBuffer reads one length-prefixed buffer and queues its pairs.
// A clean end of stream at the length prefix sets r.eof; an empty buffer
// queues nothing and the caller loops to the next prefix.
func (r *Reader) readBuffer() error {
	var prefix [4]byte
	n, err := io.ReadFull(r.r, prefix[:])
	if err == io.EOF {
		r.eof = true
		return nil
	}
	if err == io.ErrUnexpectedEOF {
		return &FormatError{Offset: r.offset + int64(n), Err: ErrTruncated}
	}
	if err != nil {
		return err
	}
	size := binary.LittleEndian.Uint32(prefix[:])
	r.offset += 4
	if size > r.Header.MaxBufferSize {
		return &FormatError{Offset: r.offset - 4, Err: ErrBufferTooLarge}
	}

	payload := make([]byte, size)
	n, err = io.ReadFull(r.r, payload)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &FormatError{Offset: r.offset + int64(n), Err: ErrTruncated}
	}
	if err != nil {
		return err
	}
	r.offset += int64(size)

	// Values pair up two at a time; an odd leftover is dropped, mirroring
	// how pairs are read. The writer never splits a pair across buffers.
	values := DecodeUvarints(payload)
	for i := 0; i+1 < len(values); i += 2 {
		r.pending = append(r.pending, Pair{Pulse: values[i], Duration: values[i+1]})
	}
	return nil
}
