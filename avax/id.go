package avax

import (
	"crypto/sha256"

	"github.com/mr-tron/base58"

	"github.com/calebcase/stakeview/wire"
)

// ID is a 32 byte identifier (transaction, asset, blockchain, subnet).
type ID [32]byte

// ShortID is a 20 byte identifier.
type ShortID [20]byte

// Empty is the all-zero ID.
var Empty ID

// String returns the CB58 form of the id.
func (id ID) String() string {
	return cb58(id[:])
}

// IsEmpty reports whether every byte is zero.
func (id ID) IsEmpty() bool {
	return id == Empty
}

// Decode reads the id.
func (id *ID) Decode(d *wire.Decoder) error {
	return d.Fixed(id[:])
}

// String returns the CB58 form of the id.
func (id ShortID) String() string {
	return cb58(id[:])
}

// cb58 is base58 over the payload followed by the last four bytes of its
// SHA-256.
func cb58(payload []byte) string {
	var buf [32 + 4]byte

	sum := sha256.Sum256(payload)

	n := copy(buf[:], payload)
	n += copy(buf[n:], sum[len(sum)-4:])

	return base58.Encode(buf[:n])
}
