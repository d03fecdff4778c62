package reviewer

import (
	"github.com/datamarket/datamarket-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	stakePrefix      = 's'
	reputationPrefix = 'r'

	tokenContractKey  = 't'
	reviewContractKey = 'c'
	adminKey          = 'm'
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
	reviewContract := args[1].(interop.Hash160)
	admin := args[2].(interop.Hash160)

	if len(tokenContract) != interop.Hash160Len {
		panic("incorrect token contract hash")
	}
	if len(reviewContract) != interop.Hash160Len {
		panic("incorrect review contract hash")
	}

	storage.Put(ctx, []byte{tokenContractKey}, tokenContract)
	storage.Put(ctx, []byte{reviewContractKey}, reviewContract)
	if len(admin) == interop.Hash160Len {
		storage.Put(ctx, []byte{adminKey}, admin)
	}

	runtime.Log("reviewer contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("reviewer contract updated")
}

// Stake locks the specified amount of marketplace tokens on the contract
// account, making the reviewer eligible to review datasets. Repeated stakes
// accumulate. It must be invoked with the reviewer witness, the token
// contract enforces it during the transfer.
//
// It produces ReviewerStaked notification.
func Stake(reviewer interop.Hash160, amount int) {
	if amount <= 0 {
		panic("invalid amount")
	}

	ctx := storage.GetContext()
	tokenContract := tokenHash(ctx)
	self := runtime.GetExecutingScriptHash()

	if balanceOf(tokenContract, reviewer) < amount {
		panic("insufficient token balance")
	}

	details := common.ReviewerStakeDetails(reviewer)
	transferred := contract.Call(tokenContract, "transfer", contract.All,
		reviewer, self, amount, details).(bool)
	if !transferred {
		panic("token transfer failed")
	}

	key := append([]byte{stakePrefix}, reviewer...)
	total := common.GetInt(ctx, key) + amount
	storage.Put(ctx, key, total)

	runtime.Notify("ReviewerStaked", reviewer, amount, total)
}

// Withdraw returns the whole reviewer stake back to the reviewer account and
// removes eligibility. The stake record is cleared before the funds move.
//
// It produces ReviewerWithdrawn notification.
func Withdraw(reviewer interop.Hash160) {
	common.CheckOwnerWitness(reviewer)

	ctx := storage.GetContext()
	key := append([]byte{stakePrefix}, reviewer...)
	amount := common.GetInt(ctx, key)
	if amount == 0 {
		panic("nothing to withdraw")
	}

	storage.Delete(ctx, key)

	tokenContract := tokenHash(ctx)
	self := runtime.GetExecutingScriptHash()
	details := common.WithdrawalDetails(reviewer)
	transferred := contract.Call(tokenContract, "transfer", contract.All,
		self, reviewer, amount, details).(bool)
	if !transferred {
		panic("stake transfer failed")
	}

	runtime.Notify("ReviewerWithdrawn", reviewer, amount)
}

// IsEligibleReviewer returns true if the reviewer has a non-zero stake.
func IsEligibleReviewer(reviewer interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, append([]byte{stakePrefix}, reviewer...)) > 0
}

// RecordScore adds the review score to the reviewer reputation. It can be
// invoked only by the review contract, reputation grows exactly with the
// reviews actually accepted there.
//
// It produces ScoreRecorded notification.
func RecordScore(reviewer interop.Hash160, score int) {
	ctx := storage.GetContext()

	reviewContract := storage.Get(ctx, []byte{reviewContractKey}).(interop.Hash160)
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(reviewContract) {
		panic("recordScore must be invoked by the review contract")
	}

	key := append([]byte{reputationPrefix}, reviewer...)
	reputation := common.GetInt(ctx, key) + score
	storage.Put(ctx, key, reputation)

	runtime.Notify("ScoreRecorded", reviewer, score, reputation)
}

// ReputationOf returns the accumulated reputation of the reviewer. Unknown
// reviewers have zero reputation.
func ReputationOf(reviewer interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, append([]byte{reputationPrefix}, reviewer...))
}

// StakeOf returns the currently staked amount of the reviewer.
func StakeOf(reviewer interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, append([]byte{stakePrefix}, reviewer...))
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func tokenHash(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, []byte{tokenContractKey}).(interop.Hash160)
}

func balanceOf(tokenContract, account interop.Hash160) int {
	return contract.Call(tokenContract, "balanceOf", contract.ReadOnly,
		account).(int)
}
