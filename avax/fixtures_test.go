package avax_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/stakeview/avax"
	"github.com/calebcase/stakeview/wire"
)

type encodable interface {
	Encode(e *wire.Encoder)
}

func encode(t *testing.T, vs ...encodable) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	e := wire.NewEncoder(buf)

	for _, v := range vs {
		v.Encode(e)
	}

	require.NoError(t, e.Err())

	return buf.Bytes()
}

func addr(b byte) avax.Address {
	var a avax.Address
	for i := range a {
		a[i] = b
	}

	return a
}

func id(b byte) avax.ID {
	var v avax.ID
	for i := range v {
		v[i] = b
	}

	return v
}

func output(amount uint64, addrs ...avax.Address) avax.TransferableOutput {
	return avax.TransferableOutput{
		AssetID: id(0xaa),
		Output: avax.Output{
			Transfer: avax.SECPTransferOutput{
				Amount:    amount,
				Threshold: 1,
				Addresses: addrs,
			},
		},
	}
}

func input(amount uint64) avax.TransferableInput {
	return avax.TransferableInput{
		TxID:    id(0x01),
		AssetID: id(0xaa),
		Input: avax.Input{
			Transfer: avax.SECPTransferInput{
				Amount:     amount,
				SigIndices: []uint32{0},
			},
		},
	}
}

var labels = avax.Labels{
	Header: avax.Header{NetworkID: avax.FujiID},
}
