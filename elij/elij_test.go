// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elij

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, recs []Record) []byte {
	var b bytes.Buffer
	wr := NewWriter(&b)
	for _, rc := range recs {
		require.NoError(t, wr.Write(rc))
	}
	require.NoError(t, wr.Flush())
	require.Equal(t, int64(len(recs)), wr.NWrit)
	require.Equal(t, len(recs)*RecSize, b.Len())
	return b.Bytes()
}

// noSeek hides the Seek method of a bytes.Reader
type noSeek struct {
	r io.Reader
}

func (ns *noSeek) Read(p []byte) (int, error) { return ns.r.Read(p) }

func collect(t *testing.T, rd *Reader, cell int32, ict int) []int32 {
	require.NoError(t, rd.Begin(cell, ict))
	var srcs []int32
	for {
		rc, ok, err := rd.Next()
		require.NoError(t, err)
		if !ok {
			return srcs
		}
		srcs = append(srcs, rc.Src)
	}
}

func TestRecordLayout(t *testing.T) {
	rc := Record{Src: -2, Tgt: 0x01020304, Wt: -3, Ict: 2}
	var b [RecSize]byte
	rc.Encode(b[:])
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xfe, 1, 2, 3, 4, 0xff, 0xfd, 0, 2}, b[:])
}

func TestReaderDeferDiscard(t *testing.T) {
	data := writeList(t, []Record{
		{Src: 10, Tgt: 1, Ict: 1},
		{Src: 11, Tgt: 1, Ict: 1},
		{Src: 20, Tgt: 3, Ict: 1},
		{Src: 21, Tgt: 3, Ict: 2},
		{Src: 22, Tgt: 3, Ict: 2},
		{Src: 30, Tgt: 5, Ict: 1},
	})
	rd := NewReader(&noSeek{bytes.NewReader(data)})
	assert.False(t, rd.CanSeek())

	assert.Empty(t, collect(t, rd, 0, 1), "no records for cell 0")
	assert.Equal(t, []int32{10, 11}, collect(t, rd, 1, 1))
	assert.Empty(t, collect(t, rd, 2, 1), "cell 3 records held back")
	// cell 3 type 1 skipped by caller: its record is discarded
	assert.Equal(t, []int32{21, 22}, collect(t, rd, 3, 2))
	assert.Equal(t, []int32{30}, collect(t, rd, 5, 1))
	assert.Equal(t, int64(1), rd.NDiscard)

	err := rd.Begin(1, 1)
	assert.ErrorIs(t, err, ErrOrder)
}

func TestReaderRewind(t *testing.T) {
	data := writeList(t, []Record{
		{Src: 10, Tgt: 1, Ict: 1},
		{Src: 30, Tgt: 5, Ict: 1},
		{Src: 31, Tgt: 5, Ict: 1},
	})
	rd := NewReader(bytes.NewReader(data))
	require.True(t, rd.CanSeek())
	assert.Equal(t, []int32{30, 31}, collect(t, rd, 5, 1))
	assert.Equal(t, []int32{10}, collect(t, rd, 1, 1))
	assert.Equal(t, []int32{30, 31}, collect(t, rd, 5, 1), "same key again rewinds")
}

func TestReaderFinish(t *testing.T) {
	data := writeList(t, []Record{
		{Src: 1, Tgt: 0, Ict: 1},
		{Src: 2, Tgt: 0, Ict: 1},
		{Src: 3, Tgt: 0, Ict: 1},
		{Src: 4, Tgt: 1, Ict: 1},
	})
	rd, raw, err := Load(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, data, raw)
	require.NoError(t, rd.Begin(0, 1))
	rc, ok, err := rd.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(1), rc.Src)
	n, err := rd.Finish()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int32{4}, collect(t, rd, 1, 1))
}

func TestReaderShort(t *testing.T) {
	data := writeList(t, []Record{{Src: 1, Tgt: 0, Ict: 1}})
	data = append(data, 0, 0, 0)
	rd := NewReader(bytes.NewReader(data))
	require.NoError(t, rd.Begin(0, 1))
	_, ok, err := rd.Next()
	require.NoError(t, err)
	require.True(t, ok)
	_, ok, err = rd.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrShort)
}
