/*
Package bundle implements the Bundle contract of the DataMarket suite.

Bundle contract composes reviewed datasets into priced bundles and sells each
bundle exactly once. The purchase price lands on the contract account and is
split between the attributed dataset owners pro rata to their weights with
floor division, rounding dust stays on the contract account. The sale mints
a one-off ownership certificate, certificate views follow the NEP-11 shape
but certificates never move after the mint.

Dataset attribution is supplied by the marketplace admin when composing the
bundle, the contract does not derive it from the Review contract.

# Contract notifications

BundleCreated notification. Produced when a new bundle is registered.

	BundleCreated:
	  - name: id
	    type: Integer
	  - name: name
	    type: String
	  - name: price
	    type: Integer

DatasetAdded notification. Produced when a dataset joins a bundle.

	DatasetAdded:
	  - name: bundleID
	    type: Integer
	  - name: datasetID
	    type: Integer
	  - name: weight
	    type: Integer
	  - name: datasetOwner
	    type: Hash160

Transfer notification. Produced on sale, it is the NEP-11 style certificate
mint with a null sender.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: tokenId
	    type: ByteArray

BundleSold notification. Produced when a buyer purchases the bundle.

	BundleSold:
	  - name: bundleID
	    type: Integer
	  - name: buyer
	    type: Hash160
	  - name: price
	    type: Integer

RevenueShare notification. Produced for every non-zero revenue payout.

	RevenueShare:
	  - name: bundleID
	    type: Integer
	  - name: datasetID
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: share
	    type: Integer
*/
package bundle

/*
Contract storage model.

# Summary
Key-value storage format:
 - b<id int> -> std.Serialize(Bundle)
   bundle records (Bundle is a structure defined in current package)
 - 'i' -> int
   bundle counter, ids start at 1
 - o<datasetID int> -> interop.Hash160
   dataset owner attribution for revenue shares
 - 'c' -> int
   number of minted ownership certificates
 - n<interop.Hash160> -> int
   ownership certificates per holder
 - 't' -> interop.Hash160
   token contract reference
 - 'm' -> interop.Hash160
   marketplace admin account, may be absent

# Revenue
Purchase funds flow through the contract account, the floor-division
remainder of the split stays there.
*/
