package wire

import (
	"encoding/binary"
)

// Decoder reads fields from an in-memory buffer.
type Decoder struct {
	buf []byte

	consumed uint64

	err error
}

// NewDecoder returns a decoder positioned at the start of buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{
		buf: buf,
	}
}

// take advances past n bytes and returns them.
func (d *Decoder) take(n uint64) (data []byte, err error) {
	if d.err != nil {
		return nil, d.err
	}

	if n > uint64(len(d.buf)) {
		d.err = Error.New(
			"short input: offset=%d need=%d have=%d",
			d.consumed,
			n,
			len(d.buf),
		)

		return nil, d.err
	}

	data = d.buf[:n:n]
	d.buf = d.buf[n:]
	d.consumed += n

	return data, nil
}

// Uint32 reads a big-endian u32.
func (d *Decoder) Uint32() (_ uint32, err error) {
	data, err := d.take(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(data), nil
}

// Uint64 reads a big-endian u64.
func (d *Decoder) Uint64() (_ uint64, err error) {
	data, err := d.take(8)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(data), nil
}

// Fixed fills dst completely from the input.
func (d *Decoder) Fixed(dst []byte) (err error) {
	data, err := d.take(uint64(len(dst)))
	if err != nil {
		return err
	}

	copy(dst, data)

	return nil
}

// Bytes reads a u32 length prefixed byte string. The returned slice aliases
// the input buffer.
func (d *Decoder) Bytes() (data []byte, err error) {
	size, err := d.Uint32()
	if err != nil {
		return nil, err
	}

	return d.take(uint64(size))
}

// Tag reads a u32 and fails unless it equals want.
func (d *Decoder) Tag(want uint32) (err error) {
	got, err := d.Uint32()
	if err != nil {
		return err
	}

	if got != want {
		d.err = Error.New("unexpected type id: want=%#08x got=%#08x", want, got)

		return d.err
	}

	return nil
}

// PeekUint32 returns the next u32 without consuming it.
func (d *Decoder) PeekUint32() (_ uint32, err error) {
	if d.err != nil {
		return 0, d.err
	}

	if len(d.buf) < 4 {
		return 0, Error.New(
			"short input: offset=%d need=4 have=%d",
			d.consumed,
			len(d.buf),
		)
	}

	return binary.BigEndian.Uint32(d.buf), nil
}

// Count reads a u32 list length and fails when it exceeds limit. Each element
// must take at least min bytes, so counts that cannot possibly fit in the
// remaining input are rejected before the caller allocates for them.
func (d *Decoder) Count(limit uint32, min int) (n int, err error) {
	count, err := d.Uint32()
	if err != nil {
		return 0, err
	}

	if count > limit {
		d.err = Error.New("list too long: count=%d limit=%d", count, limit)

		return 0, d.err
	}

	if min > 0 && uint64(count)*uint64(min) > uint64(len(d.buf)) {
		d.err = Error.New(
			"short input: offset=%d count=%d elem=%d have=%d",
			d.consumed,
			count,
			min,
			len(d.buf),
		)

		return 0, d.err
	}

	return int(count), nil
}

// Fail records err as the decoder's sticky error and returns it. Schemas use
// it for semantic failures discovered after the bytes were read.
func (d *Decoder) Fail(err error) error {
	if d.err == nil {
		d.err = err
	}

	return d.err
}

// Err returns the first error encountered.
func (d *Decoder) Err() error {
	return d.err
}

// Remaining returns the unread part of the input.
func (d *Decoder) Remaining() []byte {
	return d.buf
}
