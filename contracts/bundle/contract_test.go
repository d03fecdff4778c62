package bundle_test

import (
	"path"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	bundlePath = "."
	tokenPath  = "../token"
)

type bundleEnv struct {
	e      *neotest.Executor
	token  *neotest.ContractInvoker
	bundle *neotest.ContractInvoker
	admin  neotest.Signer

	bundles int
}

func newBundleEnv(t *testing.T) *bundleEnv {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	ctrToken := neotest.CompileFile(t, e.CommitteeHash, tokenPath,
		path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, ctrToken, nil)

	admin := e.NewAccount(t)

	ctrBundle := neotest.CompileFile(t, e.CommitteeHash, bundlePath, "config.yml")
	e.DeployContract(t, ctrBundle, []any{ctrToken.Hash, admin.ScriptHash()})

	return &bundleEnv{
		e:      e,
		token:  e.CommitteeInvoker(ctrToken.Hash),
		bundle: e.CommitteeInvoker(ctrBundle.Hash),
		admin:  admin,
	}
}

func (env *bundleEnv) fundedAccount(t *testing.T, amount int) neotest.Signer {
	acc := env.e.NewAccount(t)
	env.token.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), amount, []byte{})
	return acc
}

func (env *bundleEnv) createBundle(t *testing.T, name string, price int) int {
	env.bundles++
	env.bundle.WithSigners(env.admin).Invoke(t, env.bundles,
		"createBundle", name, price)
	return env.bundles
}

// bundleName builds a CID-looking fixture name.
func bundleName(seed byte) string {
	return "bundle-" + base58.Encode([]byte{seed, 0xde, 0xad, 0xbe, 0xef})
}

func TestBundle_Create(t *testing.T) {
	env := newBundleEnv(t)

	id := env.createBundle(t, bundleName(1), 50)
	require.Equal(t, 1, id)
	env.bundle.Invoke(t, 1, "bundleCount")

	t.Run("ids grow strictly", func(t *testing.T) {
		id2 := env.createBundle(t, bundleName(2), 10)
		require.Equal(t, 2, id2)
	})

	t.Run("not admin", func(t *testing.T) {
		stranger := env.fundedAccount(t, 1)
		env.bundle.WithSigners(stranger).InvokeFail(t,
			"not witnessed by marketplace admin",
			"createBundle", bundleName(3), 10)
	})

	t.Run("empty name", func(t *testing.T) {
		env.bundle.WithSigners(env.admin).InvokeFail(t, "invalid bundle parameters",
			"createBundle", "", 10)
	})

	t.Run("zero price", func(t *testing.T) {
		env.bundle.WithSigners(env.admin).InvokeFail(t, "invalid bundle parameters",
			"createBundle", bundleName(4), 0)
	})
}

func TestBundle_AddDataset(t *testing.T) {
	env := newBundleEnv(t)
	owner := env.e.NewAccount(t)
	adm := env.bundle.WithSigners(env.admin)

	id := env.createBundle(t, bundleName(1), 50)
	adm.Invoke(t, stackitem.Null{}, "addDataset", id, 7, 70, owner.ScriptHash())

	t.Run("duplicate", func(t *testing.T) {
		adm.InvokeFail(t, "dataset already in bundle",
			"addDataset", id, 7, 30, owner.ScriptHash())

		// The failed addition must not have touched the weight.
		s, err := env.bundle.TestInvoke(t, "get", id)
		require.NoError(t, err)
		fields := s.Pop().Array()
		total, err := fields[4].TryInteger()
		require.NoError(t, err)
		require.EqualValues(t, 70, total.Int64())
	})

	t.Run("bundle not found", func(t *testing.T) {
		adm.InvokeFail(t, "bundle not found",
			"addDataset", 42, 1, 10, owner.ScriptHash())
	})

	t.Run("zero weight", func(t *testing.T) {
		adm.InvokeFail(t, "invalid dataset parameters",
			"addDataset", id, 8, 0, owner.ScriptHash())
	})

	t.Run("null owner", func(t *testing.T) {
		adm.InvokeFail(t, "invalid dataset parameters",
			"addDataset", id, 8, 10, []byte{})
	})

	t.Run("not admin", func(t *testing.T) {
		stranger := env.fundedAccount(t, 1)
		env.bundle.WithSigners(stranger).InvokeFail(t,
			"not witnessed by marketplace admin",
			"addDataset", id, 9, 10, owner.ScriptHash())
	})
}

func TestBundle_Buy(t *testing.T) {
	env := newBundleEnv(t)
	owner1 := env.e.NewAccount(t)
	owner2 := env.e.NewAccount(t)
	buyer := env.fundedAccount(t, 100)
	adm := env.bundle.WithSigners(env.admin)

	id := env.createBundle(t, bundleName(1), 50)
	adm.Invoke(t, stackitem.Null{}, "addDataset", id, 1, 70, owner1.ScriptHash())
	adm.Invoke(t, stackitem.Null{}, "addDataset", id, 2, 30, owner2.ScriptHash())

	env.bundle.Invoke(t, stackitem.Null{}, "bundleOwner", id)

	env.bundle.WithSigners(buyer).Invoke(t, stackitem.Null{}, "buy", id,
		buyer.ScriptHash())

	// 50 * 70/100 = 35, 50 * 30/100 = 15, no remainder.
	env.token.Invoke(t, 35, "balanceOf", owner1.ScriptHash())
	env.token.Invoke(t, 15, "balanceOf", owner2.ScriptHash())
	env.token.Invoke(t, 50, "balanceOf", buyer.ScriptHash())
	env.token.Invoke(t, 0, "balanceOf", env.bundle.Hash)

	env.bundle.Invoke(t,
		stackitem.NewByteArray(buyer.ScriptHash().BytesBE()), "bundleOwner", id)

	t.Run("certificate", func(t *testing.T) {
		env.bundle.Invoke(t, stackitem.NewByteArray([]byte("DMB")), "symbol")
		env.bundle.Invoke(t, 0, "decimals")
		env.bundle.Invoke(t, 1, "totalSupply")
		env.bundle.Invoke(t, 1, "balanceOf", buyer.ScriptHash())
		env.bundle.Invoke(t,
			stackitem.NewByteArray(buyer.ScriptHash().BytesBE()), "ownerOf", id)
	})

	t.Run("already sold", func(t *testing.T) {
		env.bundle.WithSigners(buyer).InvokeFail(t, "bundle already sold",
			"buy", id, buyer.ScriptHash())
	})
}

func TestBundle_BuyValidation(t *testing.T) {
	env := newBundleEnv(t)
	buyer := env.fundedAccount(t, 5)
	owner := env.e.NewAccount(t)
	adm := env.bundle.WithSigners(env.admin)

	t.Run("not found", func(t *testing.T) {
		env.bundle.WithSigners(buyer).InvokeFail(t, "bundle not found",
			"buy", 42, buyer.ScriptHash())
	})

	t.Run("empty bundle", func(t *testing.T) {
		id := env.createBundle(t, bundleName(1), 10)
		env.bundle.WithSigners(buyer).InvokeFail(t, "bundle is empty",
			"buy", id, buyer.ScriptHash())
	})

	t.Run("insufficient funds", func(t *testing.T) {
		id := env.createBundle(t, bundleName(2), 10)
		adm.Invoke(t, stackitem.Null{}, "addDataset", id, 1, 10, owner.ScriptHash())
		env.bundle.WithSigners(buyer).InvokeFail(t, "insufficient token balance",
			"buy", id, buyer.ScriptHash())
	})
}

func TestBundle_BuyRemainder(t *testing.T) {
	env := newBundleEnv(t)
	buyer := env.fundedAccount(t, 10)
	adm := env.bundle.WithSigners(env.admin)

	owners := make([]neotest.Signer, 3)
	id := env.createBundle(t, bundleName(1), 10)
	for i := range owners {
		owners[i] = env.e.NewAccount(t)
		adm.Invoke(t, stackitem.Null{}, "addDataset", id, i+1, 3,
			owners[i].ScriptHash())
	}

	env.bundle.WithSigners(buyer).Invoke(t, stackitem.Null{}, "buy", id,
		buyer.ScriptHash())

	// 10 * 3/9 = 3 each, dust of 1 stays on the contract account.
	for i := range owners {
		env.token.Invoke(t, 3, "balanceOf", owners[i].ScriptHash())
	}
	env.token.Invoke(t, 1, "balanceOf", env.bundle.Hash)
	env.token.Invoke(t, 0, "balanceOf", buyer.ScriptHash())
}
