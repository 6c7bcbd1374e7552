package bytebuffer

import (
	"bytes"
	"testing"

	"github.com/wagleanuj/mochimo-wots/mochierr"
)

func TestAllocateAndPut(t *testing.T) {
	b := Allocate(8)
	if err := b.Put(0x01); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := b.PutBytes([]byte{0x02, 0x03, 0x04}); err != nil {
		t.Fatalf("PutBytes: %v", err)
	}
	if b.Position() != 4 {
		t.Fatalf("position = %d, want 4", b.Position())
	}
	want := []byte{0x01, 0x02, 0x03, 0x04, 0, 0, 0, 0}
	if !bytes.Equal(b.Array(), want) {
		t.Fatalf("array = %x, want %x", b.Array(), want)
	}
}

func TestOverflow(t *testing.T) {
	b := Allocate(2)
	if err := b.PutBytes([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected overflow error")
	} else if _, ok := err.(*mochierr.BufferOverflow); !ok {
		t.Fatalf("expected *BufferOverflow, got %T", err)
	}
}

func TestUnderflow(t *testing.T) {
	b := Wrap([]byte{1, 2})
	b.Rewind()
	dst := make([]byte, 4)
	if err := b.Get(dst); err == nil {
		t.Fatal("expected underflow error")
	} else if _, ok := err.(*mochierr.BufferUnderflow); !ok {
		t.Fatalf("expected *BufferUnderflow, got %T", err)
	}
}

func TestPositionBounds(t *testing.T) {
	b := Allocate(4)

	if err := b.SetPosition(-1); err == nil {
		t.Fatal("expected error for position -1")
	}
	if err := b.SetPosition(5); err == nil {
		t.Fatal("expected error for position > capacity")
	}
	if err := b.SetPosition(4); err != nil {
		t.Fatalf("position == capacity should succeed: %v", err)
	}
}

func TestWrapCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	b := Wrap(src)
	src[0] = 0xff
	if b.Array()[0] == 0xff {
		t.Fatal("Wrap must copy, not alias, its input")
	}
}

func TestPutInt32Orders(t *testing.T) {
	be := Allocate(4)
	if err := be.PutInt32(1); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(be.Array(), []byte{0, 0, 0, 1}) {
		t.Fatalf("big-endian PutInt32 = %x", be.Array())
	}

	le := Allocate(4)
	le.SetOrder(LittleEndian)
	if err := le.PutInt32(1); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(le.Array(), []byte{1, 0, 0, 0}) {
		t.Fatalf("little-endian PutInt32 = %x", le.Array())
	}
}

func TestRewind(t *testing.T) {
	b := Allocate(4)
	_ = b.Put(1)
	_ = b.Put(2)
	b.Rewind()
	if b.Position() != 0 {
		t.Fatalf("position after rewind = %d, want 0", b.Position())
	}
}
