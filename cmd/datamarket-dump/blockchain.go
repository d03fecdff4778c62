package main

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

// wrapper over the Neo RPC client providing read-only calls needed for the
// current command.
type remoteBlockchain struct {
	rpc   *rpcclient.Client
	actor *actor.Actor

	currentBlock uint32
}

// newRemoteBlockchain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within 15s
// timeout.
func newRemoteBlockchain(blockChainRPCEndpoint string) (*remoteBlockchain, error) {
	acc, err := wallet.NewAccount()
	if err != nil {
		return nil, fmt.Errorf("generate new Neo account: %w", err)
	}

	c, err := rpcclient.New(context.Background(), blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		return nil, fmt.Errorf("init actor: %w", err)
	}

	nLatestBlock, err := act.GetBlockCount()
	if err != nil {
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	return &remoteBlockchain{
		rpc:          c,
		actor:        act,
		currentBlock: nLatestBlock,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// intCall performs a test invocation of the parameterless contract method
// returning an integer.
func (x *remoteBlockchain) intCall(contract util.Uint160, method string) (*big.Int, error) {
	return unwrap.BigInt(x.actor.Call(contract, method))
}

// intCallWith is intCall with a single argument.
func (x *remoteBlockchain) intCallWith(contract util.Uint160, method string, arg any) (*big.Int, error) {
	return unwrap.BigInt(x.actor.Call(contract, method, arg))
}
