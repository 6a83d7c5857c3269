package codec

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"sort"
)

// encoder appends length-prefixed primitives to an in-memory buffer. Map
// keys are always written in sorted order so that encoding the same Index
// twice produces byte-identical output regardless of Go's randomized map
// iteration order.
type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) writeUint32(n uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], n)
	e.buf.Write(tmp[:])
}

func (e *encoder) writeInt(n int) {
	e.writeUint32(uint32(int32(n)))
}

func (e *encoder) writeByte(b byte) {
	e.buf.WriteByte(b)
}

func (e *encoder) writeFloat64(f float64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], math.Float64bits(f))
	e.buf.Write(tmp[:])
}

func (e *encoder) writeString(s string) {
	e.writeUint32(uint32(len(s)))
	e.buf.WriteString(s)
}

func (e *encoder) writeStringSlice(ss []string) {
	e.writeUint32(uint32(len(ss)))
	for _, s := range ss {
		e.writeString(s)
	}
}

func (e *encoder) writeStringMap(m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	e.writeUint32(uint32(len(keys)))
	for _, k := range keys {
		e.writeString(k)
		e.writeString(m[k])
	}
}

// decoder reads primitives back out, latching the first error so callers
// can chain reads and check err once at the end.
type decoder struct {
	r   *bytes.Reader
	err error
}

func newDecoder(b []byte) *decoder {
	return &decoder{r: bytes.NewReader(b)}
}

func (d *decoder) readUint32() uint32 {
	if d.err != nil {
		return 0
	}
	var tmp [4]byte
	if _, err := io.ReadFull(d.r, tmp[:]); err != nil {
		d.err = err
		return 0
	}
	return binary.BigEndian.Uint32(tmp[:])
}

func (d *decoder) readInt() int {
	return int(int32(d.readUint32()))
}

func (d *decoder) readByte() byte {
	if d.err != nil {
		return 0
	}
	b, err := d.r.ReadByte()
	if err != nil {
		d.err = err
		return 0
	}
	return b
}

func (d *decoder) readFloat64() float64 {
	if d.err != nil {
		return 0
	}
	var tmp [8]byte
	if _, err := io.ReadFull(d.r, tmp[:]); err != nil {
		d.err = err
		return 0
	}
	return math.Float64frombits(binary.BigEndian.Uint64(tmp[:]))
}

func (d *decoder) readString() string {
	n := d.readUint32()
	if d.err != nil || n == 0 {
		return ""
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		d.err = err
		return ""
	}
	return string(buf)
}

func (d *decoder) readStringSlice() []string {
	n := d.readUint32()
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = d.readString()
	}
	return out
}

func (d *decoder) readStringMap() map[string]string {
	n := d.readUint32()
	if d.err != nil {
		return nil
	}
	out := make(map[string]string, n)
	for i := uint32(0); i < n; i++ {
		k := d.readString()
		v := d.readString()
		out[k] = v
	}
	return out
}
