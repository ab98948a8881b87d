package delegator_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/stakeview/avax"
	"github.com/calebcase/stakeview/delegator"
	"github.com/calebcase/stakeview/wire"
)

// sample is the value form of a transaction, encoded by bytes.
type sample struct {
	Header       avax.Header
	Base         avax.BaseTxFields
	Validator    avax.Validator
	Subnet       avax.SubnetID
	Stake        []avax.TransferableOutput
	RewardsOwner avax.OutputOwners
}

func (s sample) bytes(t require.TestingT) []byte {
	buf := &bytes.Buffer{}
	e := wire.NewEncoder(buf)

	e.Uint32(delegator.TypeID)
	s.Header.Encode(e)
	s.Base.Encode(e)
	s.Validator.Encode(e)
	e.Fixed(s.Subnet[:])

	e.Count(len(s.Stake))
	for _, o := range s.Stake {
		o.Encode(e)
	}

	s.RewardsOwner.Encode(e)

	require.NoError(t, e.Err())

	return buf.Bytes()
}

func (s sample) decode(t testing.TB) *delegator.Tx {
	t.Helper()

	rem, tx, err := delegator.Decode(s.bytes(t))
	require.NoError(t, err)
	require.Empty(t, rem)

	return tx
}

func fill(b byte) (v [32]byte) {
	for i := range v {
		v[i] = b
	}

	return v
}

func address(b byte) (a avax.Address) {
	for i := range a {
		a[i] = b
	}

	return a
}

var (
	avaxAsset = avax.ID(fill(0x3d))

	changeAddr = address(0xc1)
	otherAddr  = address(0x0e)

	sampleSubnet = avax.SubnetID{
		243, 8, 109, 123, 252, 53, 190, 28, 104, 219, 102, 75, 169, 206, 97, 162,
		6, 1, 38, 176, 214, 180, 191, 176, 159, 215, 165, 251, 118, 120, 202, 218,
	}

	customSubnet = avax.SubnetID{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
		0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28,
		0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38,
	}

	customAsset = avax.ID{
		0x99, 0x77, 0x55, 0x77, 0x11, 0x33, 0x55, 0x31,
		0x99, 0x77, 0x55, 0x77, 0x11, 0x33, 0x55, 0x31,
		0x99, 0x77, 0x55, 0x77, 0x11, 0x33, 0x55, 0x31,
		0x99, 0x77, 0x55, 0x77, 0x11, 0x33, 0x55, 0x31,
	}
)

func out(asset avax.ID, amount uint64, addrs ...avax.Address) avax.TransferableOutput {
	return avax.TransferableOutput{
		AssetID: asset,
		Output: avax.Output{
			Transfer: avax.SECPTransferOutput{
				Amount:    amount,
				Threshold: 1,
				Addresses: addrs,
			},
		},
	}
}

func locked(o avax.TransferableOutput, until uint64) avax.TransferableOutput {
	o.Output.Stakeable = true
	o.Output.StakeLocktime = until

	return o
}

func in(asset avax.ID, amount uint64) avax.TransferableInput {
	return avax.TransferableInput{
		TxID:    avax.ID(fill(0x7a)),
		AssetID: asset,
		Input: avax.Input{
			Transfer: avax.SECPTransferInput{
				Amount:     amount,
				SigIndices: []uint32{0},
			},
		},
	}
}

func rewards(addrs ...avax.Address) avax.OutputOwners {
	return avax.OutputOwners{
		Threshold: 1,
		Addresses: addrs,
	}
}

func validator(weight uint64) avax.Validator {
	return avax.Validator{
		NodeID: avax.NodeID{0xde, 0xad, 0xbe, 0xef},
		Start:  1_622_496_480,
		End:    1_622_496_480 + 14*86_400,
		Weight: weight,
	}
}

// sampleTx delegates 2000 AVAX to a validator of a custom subnet, paying the
// change back to changeAddr.
func sampleTx() sample {
	return sample{
		Header: avax.Header{NetworkID: avax.FujiID, BlockchainID: avax.Empty},
		Base: avax.BaseTxFields{
			Outputs: []avax.TransferableOutput{
				out(avaxAsset, 998_000_000, changeAddr),
			},
			Inputs: []avax.TransferableInput{
				in(avaxAsset, 2_001_000_000_000),
			},
			Memo: []byte{},
		},
		Validator: validator(2_000_000_000_000),
		Subnet:    sampleSubnet,
		Stake: []avax.TransferableOutput{
			out(avaxAsset, 2_000_000_000_000, changeAddr),
		},
		RewardsOwner: rewards(changeAddr),
	}
}

func simpleTx() sample {
	s := sampleTx()
	s.Header.NetworkID = avax.MainnetID
	s.Subnet = avax.PrimaryNetwork
	s.Base.Outputs = []avax.TransferableOutput{
		out(avaxAsset, 999_000_000, otherAddr),
	}

	return s
}

func complexTx() sample {
	second := out(avaxAsset, 3_000_000_000_000, changeAddr, otherAddr)
	second.Output.Transfer.Locktime = 87_654_321
	second.Output.Transfer.Threshold = 2

	return sample{
		Header: avax.Header{NetworkID: avax.LocalID},
		Base: avax.BaseTxFields{
			Outputs: []avax.TransferableOutput{
				out(avaxAsset, 1_000_000_000, changeAddr),
				locked(out(avaxAsset, 2_000_000_000, otherAddr), 1_700_000_000),
			},
			Inputs: []avax.TransferableInput{
				in(avaxAsset, 0xffff_ffff_ffff_ff00),
				in(avaxAsset, 0x1000),
			},
			Memo: []byte("complex"),
		},
		Validator: validator(5_000_000_000_000),
		Subnet:    avax.PrimaryNetwork,
		Stake: []avax.TransferableOutput{
			out(avaxAsset, 2_000_000_000_000, changeAddr),
			second,
		},
		RewardsOwner: rewards(changeAddr, otherAddr),
	}
}

func simpleSubnetTx() sample {
	return sample{
		Header: avax.Header{NetworkID: avax.LocalID},
		Base: avax.BaseTxFields{
			Outputs: []avax.TransferableOutput{
				out(avaxAsset, 1_000_000, changeAddr),
			},
			Inputs: []avax.TransferableInput{
				in(avaxAsset, 2_000_000),
				in(customAsset, 1),
			},
		},
		Validator: validator(1),
		Subnet:    customSubnet,
		Stake: []avax.TransferableOutput{
			out(customAsset, 1, changeAddr),
		},
		RewardsOwner: rewards(changeAddr),
	}
}

func complexSubnetTx() sample {
	return sample{
		Header: avax.Header{NetworkID: avax.LocalID},
		Base: avax.BaseTxFields{
			Outputs: []avax.TransferableOutput{
				out(avaxAsset, 1_000_000, changeAddr),
				out(customAsset, 16, otherAddr),
				out(customAsset, 0xffff_ffff_ffff_fff0, changeAddr, otherAddr),
			},
			Inputs: []avax.TransferableInput{
				in(avaxAsset, 2_000_000),
				in(customAsset, 0xffff_ffff_ffff_fff0),
				in(customAsset, 25),
			},
		},
		Validator: validator(9),
		Subnet:    customSubnet,
		Stake: []avax.TransferableOutput{
			out(customAsset, 4, changeAddr),
			locked(out(customAsset, 5, otherAddr), 1_700_000_000),
		},
		RewardsOwner: rewards(changeAddr),
	}
}
