package bundle

import (
	"github.com/datamarket/datamarket-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Bundle is a curated collection of datasets sold as a whole. DatasetIDs and
// Weights are parallel slices keeping insertion order, revenue shares are
// paid out in that order.
type Bundle struct {
	Name        string
	Price       int
	DatasetIDs  []int
	Weights     []int
	TotalWeight int
	Owner       interop.Hash160
}

const (
	certSymbol   = "DMB"
	certDecimals = 0

	bundlePrefix      = 'b'
	attributionPrefix = 'o'
	certBalancePrefix = 'n'

	bundleCountKey   = 'i'
	certSupplyKey    = 'c'
	tokenContractKey = 't'
	adminKey         = 'm'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	tokenContract := args[0].(interop.Hash160)
	admin := args[1].(interop.Hash160)

	if len(tokenContract) != interop.Hash160Len {
		panic("incorrect token contract hash")
	}

	storage.Put(ctx, []byte{tokenContractKey}, tokenContract)
	if len(admin) == interop.Hash160Len {
		storage.Put(ctx, []byte{adminKey}, admin)
	}

	runtime.Log("bundle contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("bundle contract updated")
}

// CreateBundle registers a new empty bundle and returns its id, ids start at
// 1 and grow strictly. It can be invoked only by the marketplace admin.
//
// It produces BundleCreated notification.
func CreateBundle(name string, price int) int {
	ctx := storage.GetContext()
	common.CheckAdminWitness(admin(ctx))

	if len(name) == 0 || price <= 0 {
		panic("invalid bundle parameters")
	}

	id := common.GetInt(ctx, []byte{bundleCountKey}) + 1
	storage.Put(ctx, []byte{bundleCountKey}, id)

	b := Bundle{
		Name:        name,
		Price:       price,
		DatasetIDs:  []int{},
		Weights:     []int{},
		TotalWeight: 0,
	}
	common.SetSerialized(ctx, bundleKey(id), b)

	runtime.Notify("BundleCreated", id, name, price)
	return id
}

// AddDataset appends a dataset with a revenue weight to a bundle and records
// the dataset owner for revenue attribution. It can be invoked only by the
// marketplace admin.
//
// It produces DatasetAdded notification.
func AddDataset(bundleID, datasetID, weight int, datasetOwner interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(admin(ctx))

	b := getBundle(ctx, bundleID)
	if weight <= 0 || len(datasetOwner) != interop.Hash160Len {
		panic("invalid dataset parameters")
	}

	for i := range b.DatasetIDs {
		if b.DatasetIDs[i] == datasetID {
			panic("dataset already in bundle")
		}
	}

	b.DatasetIDs = append(b.DatasetIDs, datasetID)
	b.Weights = append(b.Weights, weight)
	b.TotalWeight += weight
	common.SetSerialized(ctx, bundleKey(bundleID), b)

	storage.Put(ctx, attributionKey(datasetID), datasetOwner)

	runtime.Notify("DatasetAdded", bundleID, datasetID, weight, datasetOwner)
}

// Buy sells the bundle to the buyer for the bundle price and mints a one-off
// ownership certificate. The price is first collected on the contract
// account, then split between the dataset owners pro rata to their weights
// with floor division, in insertion order. The rounding remainder stays on
// the contract account. It must be invoked with the buyer witness, the token
// contract enforces it during the payment transfer.
//
// It produces Transfer (certificate mint), BundleSold and per-dataset
// RevenueShare notifications.
func Buy(bundleID int, buyer interop.Hash160) {
	ctx := storage.GetContext()
	b := getBundle(ctx, bundleID)

	if len(b.Owner) == interop.Hash160Len {
		panic("bundle already sold")
	}
	if b.TotalWeight == 0 {
		panic("bundle is empty")
	}

	tokenContract := tokenHash(ctx)
	self := runtime.GetExecutingScriptHash()

	if balanceOf(tokenContract, buyer) < b.Price {
		panic("insufficient token balance")
	}

	details := common.PurchaseDetails(bundleID)
	transferred := contract.Call(tokenContract, "transfer", contract.All,
		buyer, self, b.Price, details).(bool)
	if !transferred {
		panic("token transfer failed")
	}

	b.Owner = buyer
	common.SetSerialized(ctx, bundleKey(bundleID), b)

	mintCertificate(ctx, buyer, bundleID)
	runtime.Notify("BundleSold", bundleID, buyer, b.Price)

	for i := range b.DatasetIDs {
		datasetID := b.DatasetIDs[i]
		share := b.Price * b.Weights[i] / b.TotalWeight
		if share == 0 {
			continue
		}

		ownerData := storage.Get(ctx, attributionKey(datasetID))
		if ownerData == nil {
			continue
		}
		datasetOwner := ownerData.(interop.Hash160)

		shareDetails := common.RevenueShareDetails(bundleID, datasetID)
		paid := contract.Call(tokenContract, "transfer", contract.All,
			self, datasetOwner, share, shareDetails).(bool)
		if !paid {
			panic("revenue transfer failed")
		}

		runtime.Notify("RevenueShare", bundleID, datasetID, datasetOwner, share)
	}
}

// BundleOwner returns the buyer of the bundle or nil while it is unsold.
func BundleOwner(id int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	b := getBundle(ctx, id)
	if len(b.Owner) != interop.Hash160Len {
		return nil
	}

	return b.Owner
}

// Get returns the bundle record by id.
func Get(id int) Bundle {
	ctx := storage.GetReadOnlyContext()
	return getBundle(ctx, id)
}

// BundleCount returns the number of created bundles.
func BundleCount() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, []byte{bundleCountKey})
}

// Symbol returns the ownership certificate symbol.
func Symbol() string {
	return certSymbol
}

// Decimals returns the ownership certificate precision. Certificates are
// indivisible.
func Decimals() int {
	return certDecimals
}

// TotalSupply returns the number of minted ownership certificates.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, []byte{certSupplyKey})
}

// BalanceOf returns the number of ownership certificates held by the
// account.
func BalanceOf(owner interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, append([]byte{certBalancePrefix}, owner...))
}

// OwnerOf returns the holder of the bundle ownership certificate, it is the
// same account as BundleOwner. Certificates are minted on sale and never
// move afterwards.
func OwnerOf(id int) interop.Hash160 {
	return BundleOwner(id)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// mintCertificate issues the one-off bundle ownership certificate. The mint
// Transfer notification has a null sender, NEP-11 wallets track it.
func mintCertificate(ctx storage.Context, to interop.Hash160, bundleID int) {
	balKey := append([]byte{certBalancePrefix}, to...)
	storage.Put(ctx, balKey, common.GetInt(ctx, balKey)+1)
	storage.Put(ctx, []byte{certSupplyKey},
		common.GetInt(ctx, []byte{certSupplyKey})+1)

	runtime.Notify("Transfer", interop.Hash160(nil), to, 1, convert.ToBytes(bundleID))
}

func getBundle(ctx storage.Context, id int) Bundle {
	data := storage.Get(ctx, bundleKey(id))
	if data == nil {
		panic("bundle not found")
	}

	return std.Deserialize(data.([]byte)).(Bundle)
}

func bundleKey(id int) []byte {
	return append([]byte{bundlePrefix}, convert.ToBytes(id)...)
}

func attributionKey(datasetID int) []byte {
	return append([]byte{attributionPrefix}, convert.ToBytes(datasetID)...)
}

func tokenHash(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, []byte{tokenContractKey}).(interop.Hash160)
}

func admin(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, []byte{adminKey}).(interop.Hash160)
}

func balanceOf(tokenContract, account interop.Hash160) int {
	return contract.Call(tokenContract, "balanceOf", contract.ReadOnly,
		account).(int)
}
