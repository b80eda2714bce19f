package lut

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// writeChunk is the number of bytes buffered between writes.
const writeChunk = 64 << 10

// WriteTable writes the raw contents of t to w and returns the number of
// bytes written, which equals t.Size() on success.
//
// The layout is flat and little-endian: one byte per channel entry, three
// bytes (r, g, b) per RGB888 entry, and two bytes per packed 16-bit entry.
// This is the layout of the precomputed .bin files firmware toolchains embed
// as read-only data.
func WriteTable(w io.Writer, t Table) (int64, error) {
	if !t.IsValid() {
		return 0, fmt.Errorf("lut: write %v: %w", t, ErrUnknownTable)
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriterSize(cw, writeChunk)

	var err error
	switch t {
	case SwapComponents:
		err = writeUint16s(bw, SwapComponentsTable()[:])
	case L5ToL8:
		_, err = bw.Write(L5ToL8Table()[:])
	case L6ToL8:
		_, err = bw.Write(L6ToL8Table()[:])
	case L5ToS8:
		_, err = bw.Write(L5ToS8Table()[:])
	case L6ToS8:
		_, err = bw.Write(L6ToS8Table()[:])
	case L565ToL888:
		err = writeTriples(bw, L565ToL888Table()[:])
	case L565ToS888:
		err = writeTriples(bw, L565ToS888Table()[:])
	case L8ToL5:
		_, err = bw.Write(L8ToL5Table()[:])
	case L8ToL6:
		_, err = bw.Write(L8ToL6Table()[:])
	case S8ToL5:
		_, err = bw.Write(S8ToL5Table()[:])
	case S8ToL6:
		_, err = bw.Write(S8ToL6Table()[:])
	case L888ToL565:
		err = writeUint16s(bw, L888ToL565Table()[:])
	case S888ToL565:
		err = writeUint16s(bw, S888ToL565Table()[:])
	}
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return cw.n, fmt.Errorf("lut: write %v: %w", t, err)
	}
	return cw.n, nil
}

func writeUint16s(w io.Writer, tab []uint16) error {
	buf := make([]byte, 0, writeChunk)
	for _, v := range tab {
		buf = binary.LittleEndian.AppendUint16(buf, v)
		if len(buf) == cap(buf) {
			if _, err := w.Write(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	_, err := w.Write(buf)
	return err
}

func writeTriples(w io.Writer, tab [][3]uint8) error {
	for i := range tab {
		if _, err := w.Write(tab[i][:]); err != nil {
			return err
		}
	}
	return nil
}

// countingWriter tracks how many bytes reached the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
