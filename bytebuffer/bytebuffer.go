// Package bytebuffer implements a fixed-capacity byte region with a
// cursor, generalizing the ad hoc big-endian byte-address construction
// the Mochimo tooling otherwise repeats inline (see addrToBytes/ullToBytes
// in the reference WOTS+ tools this module's wotshash package replaces).
// It is used both as a general serialization helper and as the carrier
// for the 32-byte WOTS+ hash-address structure.
package bytebuffer

import (
	"encoding/binary"

	"github.com/wagleanuj/mochimo-wots/mochierr"
)

// Order selects the byte order used by PutInt32/GetInt32.
type Order int

const (
	// BigEndian is the default order.
	BigEndian Order = iota
	LittleEndian
)

// ByteBuffer is a fixed-capacity byte region with a cursor and a
// configurable integer byte order.
type ByteBuffer struct {
	buf   []byte
	pos   int
	order Order
}

// Allocate returns a new zero-filled ByteBuffer with the given capacity
// and big-endian order.
func Allocate(capacity int) *ByteBuffer {
	return &ByteBuffer{buf: make([]byte, capacity)}
}

// Wrap returns a new ByteBuffer that owns a copy of data, with the cursor
// at 0.
func Wrap(data []byte) *ByteBuffer {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &ByteBuffer{buf: buf}
}

// SetOrder changes the byte order used by PutInt32/GetInt32.
func (b *ByteBuffer) SetOrder(o Order) {
	b.order = o
}

// Capacity returns the fixed size of the underlying region.
func (b *ByteBuffer) Capacity() int {
	return len(b.buf)
}

// Position returns the current cursor offset.
func (b *ByteBuffer) Position() int {
	return b.pos
}

// SetPosition moves the cursor to i. i must satisfy 0 <= i <= Capacity().
func (b *ByteBuffer) SetPosition(i int) error {
	if i < 0 || i > len(b.buf) {
		return &mochierr.InvalidPosition{Position: i, Capacity: len(b.buf)}
	}
	b.pos = i
	return nil
}

// Rewind sets the cursor back to 0.
func (b *ByteBuffer) Rewind() {
	b.pos = 0
}

// Put writes a single byte at the cursor and advances it by 1.
func (b *ByteBuffer) Put(v byte) error {
	if b.pos+1 > len(b.buf) {
		return &mochierr.BufferOverflow{Position: b.pos, Capacity: len(b.buf), Size: 1}
	}
	b.buf[b.pos] = v
	b.pos++
	return nil
}

// PutBytes writes all of src at the cursor and advances it by len(src).
func (b *ByteBuffer) PutBytes(src []byte) error {
	return b.PutBytesRange(src, 0, len(src))
}

// PutBytesRange writes src[offset:offset+length] at the cursor and
// advances it by length.
func (b *ByteBuffer) PutBytesRange(src []byte, offset, length int) error {
	if offset < 0 || length < 0 || offset+length > len(src) {
		return &mochierr.InvalidPosition{Position: offset + length, Capacity: len(src)}
	}
	if b.pos+length > len(b.buf) {
		return &mochierr.BufferOverflow{Position: b.pos, Capacity: len(b.buf), Size: length}
	}
	copy(b.buf[b.pos:], src[offset:offset+length])
	b.pos += length
	return nil
}

// PutInt32 writes a 32-bit integer at the cursor honoring the configured
// byte order, and advances the cursor by 4.
func (b *ByteBuffer) PutInt32(v int32) error {
	if b.pos+4 > len(b.buf) {
		return &mochierr.BufferOverflow{Position: b.pos, Capacity: len(b.buf), Size: 4}
	}
	if b.order == LittleEndian {
		binary.LittleEndian.PutUint32(b.buf[b.pos:], uint32(v))
	} else {
		binary.BigEndian.PutUint32(b.buf[b.pos:], uint32(v))
	}
	b.pos += 4
	return nil
}

// GetInt32 reads a 32-bit integer at the cursor honoring the configured
// byte order, and advances the cursor by 4.
func (b *ByteBuffer) GetInt32() (int32, error) {
	if b.pos+4 > len(b.buf) {
		return 0, &mochierr.BufferUnderflow{Position: b.pos, Capacity: len(b.buf), Size: 4}
	}
	var v uint32
	if b.order == LittleEndian {
		v = binary.LittleEndian.Uint32(b.buf[b.pos:])
	} else {
		v = binary.BigEndian.Uint32(b.buf[b.pos:])
	}
	b.pos += 4
	return int32(v), nil
}

// Get reads len(dst) bytes from the cursor into dst and advances the
// cursor by len(dst).
func (b *ByteBuffer) Get(dst []byte) error {
	if b.pos+len(dst) > len(b.buf) {
		return &mochierr.BufferUnderflow{Position: b.pos, Capacity: len(b.buf), Size: len(dst)}
	}
	copy(dst, b.buf[b.pos:b.pos+len(dst)])
	b.pos += len(dst)
	return nil
}

// GetOne reads a single byte at the cursor and advances it by 1.
func (b *ByteBuffer) GetOne() (byte, error) {
	if b.pos+1 > len(b.buf) {
		return 0, &mochierr.BufferUnderflow{Position: b.pos, Capacity: len(b.buf), Size: 1}
	}
	v := b.buf[b.pos]
	b.pos++
	return v, nil
}

// Array returns a copy of the entire underlying region.
func (b *ByteBuffer) Array() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}
