package token

import (
	"github.com/datamarket/datamarket-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol.
	Symbol string
	// Amount of decimals.
	Decimals int
	// Storage key for circulation value.
	CirculationKey []byte
}

const (
	symbol   = "DMT"
	decimals = 0

	balancePrefix = 'a'
	supplyKey     = 's'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: []byte{supplyKey},
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	if data != nil {
		// Optional initial supply: [amount, holder]. Mirrors token
		// issuance done on marketplace bootstrap.
		args := data.([]any)
		if len(args) == 2 {
			amount := args[0].(int)
			holder := args[1].(interop.Hash160)
			token.mint(storage.GetContext(), holder, amount, []byte{})
		}
	}

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Symbol is a NEP-17 standard method that returns DataMarket token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of DataMarket
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// minted DataMarket tokens.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns DataMarket balance of
// the specified account. Unknown accounts have zero balance.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers DataMarket tokens from
// one account to another. It can be invoked by the account owner or by a
// contract moving funds off its own account.
//
// Byte-array data is attached to the TransferX notification as transfer
// details; marketplace contracts use it to describe the cause of the
// transfer.
//
// Zero-amount transfers succeed without touching storage; callers decide
// whether a zero amount is meaningful at their layer.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()

	var details []byte
	if data != nil {
		details = data.([]byte)
	}

	return token.transfer(ctx, from, to, amount, details)
}

// Mint issues tokens to the given account. It can be invoked only by
// committee.
//
// It produces Transfer, TransferX and Mint notifications.
func Mint(to interop.Hash160, amount int, txDetails []byte) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	token.mint(ctx, to, amount, txDetails)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	return common.GetInt(ctx, t.CirculationKey)
}

func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	return common.GetInt(ctx, append([]byte{balancePrefix}, holder...))
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, details []byte) bool {
	if amount < 0 {
		panic("negative amount")
	}

	balanceFrom, ok := t.canTransfer(ctx, from, to, amount)
	if !ok {
		return false
	}

	fromKey := append([]byte{balancePrefix}, from...)
	if balanceFrom == amount {
		storage.Delete(ctx, fromKey)
	} else {
		storage.Put(ctx, fromKey, balanceFrom-amount)
	}

	toKey := append([]byte{balancePrefix}, to...)
	storage.Put(ctx, toKey, t.balanceOf(ctx, to)+amount)

	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, details)

	return true
}

// canTransfer returns the balance it can transfer from.
func (t Token) canTransfer(ctx storage.Context, from, to interop.Hash160, amount int) (int, bool) {
	if len(to) != interop.Hash160Len || !isUsableAddress(from) {
		runtime.Log("bad script hashes")
		return 0, false
	}

	balanceFrom := t.balanceOf(ctx, from)
	if balanceFrom < amount {
		runtime.Log("not enough tokens")
		return 0, false
	}

	return balanceFrom, true
}

func (t Token) mint(ctx storage.Context, to interop.Hash160, amount int, txDetails []byte) {
	if amount < 0 {
		panic("negative amount")
	}
	if len(to) != interop.Hash160Len {
		panic("invalid account")
	}

	key := append([]byte{balancePrefix}, to...)
	storage.Put(ctx, key, t.balanceOf(ctx, to)+amount)
	storage.Put(ctx, t.CirculationKey, t.getSupply(ctx)+amount)

	runtime.Notify("Transfer", interop.Hash160(nil), to, amount)
	runtime.Notify("TransferX", interop.Hash160(nil), to, amount, common.MintTransferDetails(txDetails))
	runtime.Notify("Mint", to, amount)
	runtime.Log("tokens minted")
}

// isUsableAddress checks if the sender is either a correct account address or
// the calling contract moving funds off its own account.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}
