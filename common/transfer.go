package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
)

// One-byte prefixes of token transfer details. Every transfer the marketplace
// performs carries details describing its cause, so an external observer can
// attribute balance changes without tracking contract storage.
var (
	mintPrefix          = []byte{0x01}
	datasetStakePrefix  = []byte{0x02}
	stakeReleasePrefix  = []byte{0x03}
	reviewerStakePrefix = []byte{0x04}
	withdrawalPrefix    = []byte{0x05}
	purchasePrefix      = []byte{0x10}
	revenuePrefix       = []byte{0x11}
)

func MintTransferDetails(txDetails []byte) []byte {
	return append(mintPrefix, txDetails...)
}

func DatasetStakeDetails(datasetID int) []byte {
	return append(datasetStakePrefix, convert.ToBytes(datasetID)...)
}

func StakeReleaseDetails(datasetID int) []byte {
	return append(stakeReleasePrefix, convert.ToBytes(datasetID)...)
}

func ReviewerStakeDetails(reviewer interop.Hash160) []byte {
	return append(reviewerStakePrefix, reviewer...)
}

func WithdrawalDetails(reviewer interop.Hash160) []byte {
	return append(withdrawalPrefix, reviewer...)
}

func PurchaseDetails(bundleID int) []byte {
	return append(purchasePrefix, convert.ToBytes(bundleID)...)
}

func RevenueShareDetails(bundleID, datasetID int) []byte {
	details := append(revenuePrefix, convert.ToBytes(bundleID)...)
	return append(details, convert.ToBytes(datasetID)...)
}
