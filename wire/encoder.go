package wire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/calebcase/oops"
)

// Encoder writes fields in the layout the Decoder reads. It exists so that
// fixtures can be produced from values instead of hand-written hex.
type Encoder struct {
	w io.Writer

	scratch [8]byte

	err error
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

func (e *Encoder) write(data []byte) {
	if e.err != nil {
		return
	}

	_, err := e.w.Write(data)
	if err != nil {
		e.err = Error.Wrap(err)
	}
}

// Uint32 writes a big-endian u32.
func (e *Encoder) Uint32(v uint32) *Encoder {
	binary.BigEndian.PutUint32(e.scratch[:4], v)
	e.write(e.scratch[:4])

	return e
}

// Uint64 writes a big-endian u64.
func (e *Encoder) Uint64(v uint64) *Encoder {
	binary.BigEndian.PutUint64(e.scratch[:8], v)
	e.write(e.scratch[:8])

	return e
}

// Fixed writes data as is.
func (e *Encoder) Fixed(data []byte) *Encoder {
	e.write(data)

	return e
}

// Bytes writes a u32 length prefix followed by data.
func (e *Encoder) Bytes(data []byte) *Encoder {
	if uint64(len(data)) > math.MaxUint32 {
		if e.err == nil {
			e.err = oops.Trace(ErrInvalidOperation)
		}

		return e
	}

	e.Uint32(uint32(len(data)))
	e.write(data)

	return e
}

// Count writes a u32 list length.
func (e *Encoder) Count(n int) *Encoder {
	if n < 0 || uint64(n) > math.MaxUint32 {
		if e.err == nil {
			e.err = oops.Trace(ErrInvalidOperation)
		}

		return e
	}

	return e.Uint32(uint32(n))
}

// Err returns the first error encountered.
func (e *Encoder) Err() error {
	return e.err
}
