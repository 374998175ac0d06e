// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package elij reads and writes external connection lists: a sequence of fixed
12-byte big-endian records, each giving a source cell, target cell, weight and
1-based connection type number, sorted ascending by (target cell, type).

The Reader presents the records for one (cell, type) at a time.  Records for
cells or types not yet reached are held back, records for earlier ones are
discarded.  Interpreting sentinel source values is left to the caller, which
knows the size of the source layer.
*/
package elij

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// RecSize is the size of one record in bytes
const RecSize = 12

const (
	// SkipOne as a source value skips one connection
	SkipOne int32 = -1

	// SkipRest as a source value skips all remaining connections of the type
	SkipRest int32 = -2
)

var (
	// ErrOrder is returned when an earlier (cell, type) is requested from a
	// stream that cannot be rewound
	ErrOrder = errors.New("elij: earlier cell requested from a stream that cannot seek")

	// ErrShort is returned when the stream ends inside a record
	ErrShort = errors.New("elij: truncated record")
)

// Record is one external connection
type Record struct {
	Src int32 `desc:"source cell number, or a sentinel"`
	Tgt int32 `desc:"target cell number"`
	Wt  int16 `desc:"weight, S15 -- used only when the connection type takes its weights from the list"`
	Ict int16 `desc:"connection type number within the target layer, 1-based"`
}

// Key returns the sort key of the record
func (rc *Record) Key() int64 {
	return Key(rc.Tgt, int(rc.Ict))
}

// Key returns the sort key for a target cell and 1-based type number
func Key(cell int32, ict int) int64 {
	return int64(cell)<<16 | int64(uint16(ict))
}

// Decode fills the record from RecSize bytes
func (rc *Record) Decode(b []byte) {
	rc.Src = int32(binary.BigEndian.Uint32(b[0:4]))
	rc.Tgt = int32(binary.BigEndian.Uint32(b[4:8]))
	rc.Wt = int16(binary.BigEndian.Uint16(b[8:10]))
	rc.Ict = int16(binary.BigEndian.Uint16(b[10:12]))
}

// Encode writes the record into RecSize bytes
func (rc *Record) Encode(b []byte) {
	binary.BigEndian.PutUint32(b[0:4], uint32(rc.Src))
	binary.BigEndian.PutUint32(b[4:8], uint32(rc.Tgt))
	binary.BigEndian.PutUint16(b[8:10], uint16(rc.Wt))
	binary.BigEndian.PutUint16(b[10:12], uint16(rc.Ict))
}

func (rc *Record) String() string {
	return fmt.Sprintf("src: %d tgt: %d wt: %d ict: %d", rc.Src, rc.Tgt, rc.Wt, rc.Ict)
}

// Reader presents an external connection list one (cell, type) at a time
type Reader struct {
	NRead    int64 `desc:"number of records read from the stream"`
	NDiscard int64 `desc:"number of records discarded as belonging to earlier cells or as extras"`

	src     io.Reader
	sk      io.Seeker
	origin  int64
	buf     [RecSize]byte
	pend    Record
	hasPend bool
	eof     bool
	key     int64
	started bool
}

// NewReader returns a Reader on r.  If r is also an io.Seeker, earlier cells
// can be revisited by rewinding.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{src: r}
	if sk, ok := r.(io.Seeker); ok {
		if off, err := sk.Seek(0, io.SeekCurrent); err == nil {
			rd.sk = sk
			rd.origin = off
		}
	}
	return rd
}

// Load reads the whole stream into memory and returns a Reader on it,
// which can always be rewound.
func Load(r io.Reader) (*Reader, []byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return NewReader(bytes.NewReader(b)), b, nil
}

// CanSeek returns true if the reader can revisit earlier cells
func (rd *Reader) CanSeek() bool {
	return rd.sk != nil
}

// Rewind positions the reader back at the start of the stream
func (rd *Reader) Rewind() error {
	if rd.sk == nil {
		return ErrOrder
	}
	if _, err := rd.sk.Seek(rd.origin, io.SeekStart); err != nil {
		return err
	}
	rd.hasPend = false
	rd.eof = false
	rd.started = false
	return nil
}

// peek returns the next unconsumed record, or nil at end of stream
func (rd *Reader) peek() (*Record, error) {
	if rd.hasPend {
		return &rd.pend, nil
	}
	if rd.eof {
		return nil, nil
	}
	_, err := io.ReadFull(rd.src, rd.buf[:])
	switch {
	case err == io.EOF:
		rd.eof = true
		return nil, nil
	case err == io.ErrUnexpectedEOF:
		rd.eof = true
		return nil, ErrShort
	case err != nil:
		return nil, err
	}
	rd.NRead++
	rd.pend.Decode(rd.buf[:])
	rd.hasPend = true
	return &rd.pend, nil
}

// Begin positions the reader on the records for the given target cell and
// 1-based type number.  Records for earlier keys are discarded.  Requesting a
// key at or before the current one rewinds the stream, which is ErrOrder when
// the stream cannot seek.
func (rd *Reader) Begin(cell int32, ict int) error {
	key := Key(cell, ict)
	if rd.started && key <= rd.key {
		if err := rd.Rewind(); err != nil {
			return err
		}
	}
	rd.key = key
	rd.started = true
	for {
		p, err := rd.peek()
		if p == nil || err != nil {
			return err
		}
		if p.Key() >= key {
			return nil
		}
		rd.hasPend = false
		rd.NDiscard++
	}
}

// Next returns the next record for the current key, with false when there are
// no more.  Records for later keys are left in place.
func (rd *Reader) Next() (Record, bool, error) {
	p, err := rd.peek()
	if p == nil || err != nil {
		return Record{}, false, err
	}
	if p.Key() != rd.key {
		return Record{}, false, nil
	}
	rd.hasPend = false
	return *p, true, nil
}

// Finish discards any records left for the current key, returning how many
func (rd *Reader) Finish() (int, error) {
	n := 0
	for {
		_, ok, err := rd.Next()
		if !ok || err != nil {
			rd.NDiscard += int64(n)
			return n, err
		}
		n++
	}
}

// Writer writes an external connection list
type Writer struct {
	NWrit int64 `desc:"number of records written"`

	w   *bufio.Writer
	buf [RecSize]byte
}

// NewWriter returns a Writer on w.  Flush must be called when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes one record
func (wr *Writer) Write(rc Record) error {
	rc.Encode(wr.buf[:])
	_, err := wr.w.Write(wr.buf[:])
	if err == nil {
		wr.NWrit++
	}
	return err
}

// Flush writes any buffered data
func (wr *Writer) Flush() error {
	return wr.w.Flush()
}
