package deploy

import (
	"errors"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestContractAddress(t *testing.T) {
	sender := util.Uint160{1, 2, 3}
	prm := CommonDeployPrm{
		NEF:      nef.File{Checksum: 42},
		Manifest: manifest.Manifest{Name: "DataMarket Token"},
	}

	addr := contractAddress(sender, prm)
	require.Equal(t, state.CreateContractHash(sender, 42, "DataMarket Token"), addr)

	t.Run("sender changes address", func(t *testing.T) {
		other := contractAddress(util.Uint160{3, 2, 1}, prm)
		require.NotEqual(t, addr, other)
	})

	t.Run("name changes address", func(t *testing.T) {
		prm2 := prm
		prm2.Manifest.Name = "DataMarket Review"
		require.NotEqual(t, addr, contractAddress(sender, prm2))
	})
}

func TestIsErrContractNotFound(t *testing.T) {
	require.False(t, isErrContractNotFound(nil))
	require.False(t, isErrContractNotFound(errors.New("connection reset")))
	require.True(t, isErrContractNotFound(errors.New("Unknown contract")))
	require.True(t, isErrContractNotFound(errors.New("RPC error: Unknown contract (-102)")))
}
