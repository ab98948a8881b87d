package avax

import (
	"math"
	"time"

	"github.com/calebcase/stakeview/decimal"
	"github.com/calebcase/stakeview/display"
)

// NativeAsset is the label of the chain's native asset.
const NativeAsset = "AVAX"

const timeLayout = "2006-01-02 15:04:05 UTC"

// Labels turns raw transaction values into display text.
type Labels struct {
	Header Header

	// AssetID is the native asset. When empty every asset is shown as the
	// native one.
	AssetID ID
}

// Asset returns the display name of an asset.
func (l Labels) Asset(id ID) string {
	if l.AssetID.IsEmpty() || id == l.AssetID {
		return NativeAsset
	}

	return id.String()
}

// Address returns the bech32 form of a under the header's prefix.
func (l Labels) Address(a Address) (_ string, err error) {
	hrp, err := l.Header.HRP()
	if err != nil {
		return "", err
	}

	return a.Encode(hrp)
}

// Amount returns "<amount> <asset>".
func (l Labels) Amount(nano uint64, asset ID) string {
	return decimal.AVAX(nano).String() + " " + l.Asset(asset)
}

// Time renders a unix timestamp in UTC.
func Time(unix uint64) (string, error) {
	if unix > math.MaxInt64 {
		return "", display.ErrUnknown
	}

	return time.Unix(int64(unix), 0).UTC().Format(timeLayout), nil
}
