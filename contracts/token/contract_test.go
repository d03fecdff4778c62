package token_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const tokenPath = "."

func deployTokenContract(t *testing.T, e *neotest.Executor, data any) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, "config.yml")
	e.DeployContract(t, c, data)
	return c.Hash
}

func newTokenInvoker(t *testing.T, data any) *neotest.ContractInvoker {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)
	h := deployTokenContract(t, e, data)
	return e.CommitteeInvoker(h)
}

func TestToken_Info(t *testing.T) {
	e := newTokenInvoker(t, nil)

	e.Invoke(t, stackitem.NewByteArray([]byte("DMT")), "symbol")
	e.Invoke(t, 0, "decimals")
	e.Invoke(t, 0, "totalSupply")
}

func TestToken_InitialSupply(t *testing.T) {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	holder := e.NewAccount(t)
	h := deployTokenContract(t, e, []any{1_000_000, holder.ScriptHash()})
	inv := e.CommitteeInvoker(h)

	inv.Invoke(t, 1_000_000, "totalSupply")
	inv.Invoke(t, 1_000_000, "balanceOf", holder.ScriptHash())
}

func TestToken_Mint(t *testing.T) {
	e := newTokenInvoker(t, nil)

	acc := e.NewAccount(t)
	e.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), 500, []byte{})
	e.Invoke(t, 500, "balanceOf", acc.ScriptHash())
	e.Invoke(t, 500, "totalSupply")

	t.Run("not committee", func(t *testing.T) {
		accInvoker := e.WithSigners(acc)
		accInvoker.InvokeFail(t, "not witnessed by committee",
			"mint", acc.ScriptHash(), 100, []byte{})
	})

	t.Run("negative amount", func(t *testing.T) {
		e.InvokeFail(t, "negative amount", "mint", acc.ScriptHash(), -1, []byte{})
	})
}

func TestToken_BalanceOfUnknown(t *testing.T) {
	e := newTokenInvoker(t, nil)

	acc := e.NewAccount(t)
	e.Invoke(t, 0, "balanceOf", acc.ScriptHash())
}

func TestToken_Transfer(t *testing.T) {
	e := newTokenInvoker(t, nil)

	from := e.NewAccount(t)
	to := e.NewAccount(t)
	e.Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), 100, []byte{})

	fromInvoker := e.WithSigners(from)
	fromInvoker.Invoke(t, true, "transfer",
		from.ScriptHash(), to.ScriptHash(), 40, nil)

	e.Invoke(t, 60, "balanceOf", from.ScriptHash())
	e.Invoke(t, 40, "balanceOf", to.ScriptHash())

	t.Run("no witness", func(t *testing.T) {
		toInvoker := e.WithSigners(to)
		toInvoker.Invoke(t, false, "transfer",
			from.ScriptHash(), to.ScriptHash(), 10, nil)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		fromInvoker.Invoke(t, false, "transfer",
			from.ScriptHash(), to.ScriptHash(), 1000, nil)
	})

	t.Run("zero amount", func(t *testing.T) {
		fromInvoker.Invoke(t, true, "transfer",
			from.ScriptHash(), to.ScriptHash(), 0, nil)
		e.Invoke(t, 60, "balanceOf", from.ScriptHash())
	})

	t.Run("whole balance removes storage entry", func(t *testing.T) {
		fromInvoker.Invoke(t, true, "transfer",
			from.ScriptHash(), to.ScriptHash(), 60, nil)
		e.Invoke(t, 0, "balanceOf", from.ScriptHash())
		e.Invoke(t, 100, "balanceOf", to.ScriptHash())
	})
}
