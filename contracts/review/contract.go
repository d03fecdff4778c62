package review

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

// Dataset is a submitted dataset record under review.
type Dataset struct {
	Owner         interop.Hash160
	MetadataURI   string
	Stake         int
	Reviewed      bool
	TotalScore    int
	NumReviews    int
	StakeReleased bool
}

const (
	// reviewQuorum is the number of accepted reviews that finalizes a
	// dataset.
	reviewQuorum = 3
	// maxScore is the upper bound of a single review score.
	maxScore = 100

	datasetPrefix = 'd'

	datasetCountKey     = 'i'
	forfeitedTotalKey   = 'f'
	tokenContractKey    = 't'
	reviewerContractKey = 'r'
	adminKey            = 'm'
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
	reviewerContract := args[1].(interop.Hash160)
	admin := args[2].(interop.Hash160)

	if len(tokenContract) != interop.Hash160Len {
		panic("incorrect token contract hash")
	}
	if len(reviewerContract) != interop.Hash160Len {
		panic("incorrect reviewer contract hash")
	}

	storage.Put(ctx, []byte{tokenContractKey}, tokenContract)
	storage.Put(ctx, []byte{reviewerContractKey}, reviewerContract)
	if len(admin) == interop.Hash160Len {
		storage.Put(ctx, []byte{adminKey}, admin)
	}

	runtime.Log("review contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("review contract updated")
}

// SubmitDataset registers a dataset for review and locks the owner stake on
// the contract account. It returns the allocated dataset id, ids start at 1
// and grow strictly. It must be invoked with the owner witness, the token
// contract enforces it during the stake transfer.
//
// It produces DatasetSubmitted notification.
func SubmitDataset(owner interop.Hash160, metadataURI string, stakeAmount int) int {
	if stakeAmount <= 0 {
		panic("invalid stake amount")
	}

	ctx := storage.GetContext()
	tokenContract := tokenHash(ctx)
	self := runtime.GetExecutingScriptHash()

	if balanceOf(tokenContract, owner) < stakeAmount {
		panic("insufficient token balance")
	}

	id := common.GetInt(ctx, []byte{datasetCountKey}) + 1
	storage.Put(ctx, []byte{datasetCountKey}, id)

	details := common.DatasetStakeDetails(id)
	transferred := contract.Call(tokenContract, "transfer", contract.All,
		owner, self, stakeAmount, details).(bool)
	if !transferred {
		panic("token transfer failed")
	}

	d := Dataset{
		Owner:       owner,
		MetadataURI: metadataURI,
		Stake:       stakeAmount,
	}
	common.SetSerialized(ctx, datasetKey(id), d)

	runtime.Notify("DatasetSubmitted", id, owner, stakeAmount)
	return id
}

// SubmitReview records a review score for the dataset. The reviewer must be
// eligible in the reviewer contract and witness the transaction. The score
// is forwarded to the reviewer contract as reputation. The third accepted
// review finalizes the dataset and releases the stake to the owner in the
// same transaction.
//
// It produces ReviewSubmitted notification and, on the finalizing review,
// DatasetReviewed and StakeReleased notifications.
func SubmitReview(id int, reviewer interop.Hash160, score int) {
	ctx := storage.GetContext()
	d := getDataset(ctx, id)

	if d.Reviewed {
		panic("dataset already reviewed")
	}

	common.CheckOwnerWitness(reviewer)

	reviewerContract := reviewerHash(ctx)
	eligible := contract.Call(reviewerContract, "isEligibleReviewer",
		contract.ReadOnly, reviewer).(bool)
	if !eligible {
		panic("reviewer is not eligible")
	}

	if score < 0 || score > maxScore {
		panic("score out of range")
	}

	d.TotalScore += score
	d.NumReviews += 1

	contract.Call(reviewerContract, "recordScore", contract.All,
		reviewer, score)

	runtime.Notify("ReviewSubmitted", id, reviewer, score, d.NumReviews)

	if d.NumReviews >= reviewQuorum {
		d.Reviewed = true
		runtime.Notify("DatasetReviewed", id, d.TotalScore/d.NumReviews)

		if !d.StakeReleased {
			d.StakeReleased = true
			releaseTo(ctx, id, d.Owner, d.Stake)
		}
	}

	common.SetSerialized(ctx, datasetKey(id), d)
}

// ReleaseStake returns the dataset stake to its owner. It is allowed once
// the dataset is fully reviewed, or earlier on the owner or marketplace
// admin witness.
//
// It produces StakeReleased notification.
func ReleaseStake(id int) {
	ctx := storage.GetContext()
	d := getDataset(ctx, id)

	if d.StakeReleased {
		panic("stake already released")
	}

	if !d.Reviewed && !runtime.CheckWitness(d.Owner) && !common.IsAdminWitness(admin(ctx)) {
		panic("not authorized to release stake")
	}

	d.StakeReleased = true
	common.SetSerialized(ctx, datasetKey(id), d)

	releaseTo(ctx, id, d.Owner, d.Stake)
}

// ResolveDispute settles a disputed dataset. It can be invoked only by the
// marketplace admin. A legitimate dataset gets the stake back, otherwise the
// stake is forfeited and stays on the contract account.
//
// It produces DisputeResolved notification and, for a legitimate dataset,
// StakeReleased notification.
func ResolveDispute(id int, isLegit bool) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(admin(ctx))

	d := getDataset(ctx, id)
	if d.StakeReleased {
		panic("stake already released")
	}

	d.StakeReleased = true
	common.SetSerialized(ctx, datasetKey(id), d)

	if isLegit {
		releaseTo(ctx, id, d.Owner, d.Stake)
	} else {
		forfeited := common.GetInt(ctx, []byte{forfeitedTotalKey}) + d.Stake
		storage.Put(ctx, []byte{forfeitedTotalKey}, forfeited)
	}

	runtime.Notify("DisputeResolved", id, isLegit)
}

// Get returns the dataset record by id.
func Get(id int) Dataset {
	ctx := storage.GetReadOnlyContext()
	return getDataset(ctx, id)
}

// DatasetCount returns the number of submitted datasets.
func DatasetCount() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, []byte{datasetCountKey})
}

// AverageScore returns the integer average of the recorded scores. It is
// zero while the dataset has no reviews.
func AverageScore(id int) int {
	ctx := storage.GetReadOnlyContext()
	d := getDataset(ctx, id)
	if d.NumReviews == 0 {
		return 0
	}

	return d.TotalScore / d.NumReviews
}

// ForfeitedTotal returns the total amount of stakes forfeited through
// dispute resolution. Forfeited funds stay on the contract account.
func ForfeitedTotal() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, []byte{forfeitedTotalKey})
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func releaseTo(ctx storage.Context, id int, owner interop.Hash160, amount int) {
	tokenContract := tokenHash(ctx)
	self := runtime.GetExecutingScriptHash()
	details := common.StakeReleaseDetails(id)
	transferred := contract.Call(tokenContract, "transfer", contract.All,
		self, owner, amount, details).(bool)
	if !transferred {
		panic("stake transfer failed")
	}

	runtime.Notify("StakeReleased", id, owner, amount)
}

func getDataset(ctx storage.Context, id int) Dataset {
	data := storage.Get(ctx, datasetKey(id))
	if data == nil {
		panic("dataset not found")
	}

	return std.Deserialize(data.([]byte)).(Dataset)
}

func datasetKey(id int) []byte {
	return append([]byte{datasetPrefix}, convert.ToBytes(id)...)
}

func tokenHash(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, []byte{tokenContractKey}).(interop.Hash160)
}

func reviewerHash(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, []byte{reviewerContractKey}).(interop.Hash160)
}

func admin(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, []byte{adminKey}).(interop.Hash160)
}

func balanceOf(tokenContract, account interop.Hash160) int {
	return contract.Call(tokenContract, "balanceOf", contract.ReadOnly,
		account).(int)
}
