// Package deploy provides DataMarket contract suite deployment routines.
package deploy

import (
	"context"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// required for the DataMarket suite deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns an error with 'Unknown
	// contract' substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of a smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// TokenContractPrm groups deployment parameters of the Token contract.
type TokenContractPrm struct {
	Common CommonDeployPrm

	// Optional initial token issue minted to InitialHolder on the fresh
	// deployment.
	InitialSupply int64
	InitialHolder util.Uint160
}

// ReviewerContractPrm groups deployment parameters of the Reviewer contract.
type ReviewerContractPrm struct {
	Common CommonDeployPrm
}

// ReviewContractPrm groups deployment parameters of the Review contract.
type ReviewContractPrm struct {
	Common CommonDeployPrm
}

// BundleContractPrm groups deployment parameters of the Bundle contract.
type BundleContractPrm struct {
	Common CommonDeployPrm
}

// Prm groups all parameters of the DataMarket suite deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance hosting the marketplace.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	// Marketplace admin account authorized for owner-gated operations of
	// the deployed contracts. May be zero, then only the committee
	// qualifies.
	Admin util.Uint160

	TokenContract    TokenContractPrm
	ReviewerContract ReviewerContractPrm
	ReviewContract   ReviewContractPrm
	BundleContract   BundleContractPrm
}

// Contracts collects addresses of the deployed DataMarket suite.
type Contracts struct {
	Token    util.Uint160
	Reviewer util.Uint160
	Review   util.Uint160
	Bundle   util.Uint160
}

// Deploy deploys the DataMarket contract suite on the Neo network
// represented by the given Prm.Blockchain and returns the contract
// addresses. Contracts already present on the chain are kept as is, so
// Deploy is safe to re-run.
//
// The Reviewer and Review contracts reference each other, so both addresses
// are precomputed from the compiled artifacts and the deployment account
// before anything is sent.
func Deploy(ctx context.Context, prm Prm) (Contracts, error) {
	var res Contracts

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init actor: %w", err)
	}

	sender := act.Sender()
	res.Token = contractAddress(sender, prm.TokenContract.Common)
	res.Reviewer = contractAddress(sender, prm.ReviewerContract.Common)
	res.Review = contractAddress(sender, prm.ReviewContract.Common)
	res.Bundle = contractAddress(sender, prm.BundleContract.Common)

	var tokenData any
	if prm.TokenContract.InitialSupply > 0 {
		tokenData = []any{prm.TokenContract.InitialSupply, prm.TokenContract.InitialHolder}
	}

	for _, c := range []struct {
		name string
		prm  CommonDeployPrm
		addr util.Uint160
		data any
	}{
		{"token", prm.TokenContract.Common, res.Token, tokenData},
		{"reviewer", prm.ReviewerContract.Common, res.Reviewer,
			[]any{res.Token, res.Review, prm.Admin}},
		{"review", prm.ReviewContract.Common, res.Review,
			[]any{res.Token, res.Reviewer, prm.Admin}},
		{"bundle", prm.BundleContract.Common, res.Bundle,
			[]any{res.Token, prm.Admin}},
	} {
		err := deployContract(ctx, prm, act, c.name, c.prm, c.addr, c.data)
		if err != nil {
			return res, fmt.Errorf("deploy %s contract: %w", c.name, err)
		}
	}

	return res, nil
}

// contractAddress computes the address the contract gets when deployed by
// the sender account.
func contractAddress(sender util.Uint160, prm CommonDeployPrm) util.Uint160 {
	return state.CreateContractHash(sender, prm.NEF.Checksum, prm.Manifest.Name)
}

func deployContract(ctx context.Context, prm Prm, act *actor.Actor,
	name string, c CommonDeployPrm, addr util.Uint160, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l := prm.Logger.With(zap.String("contract", name), zap.Stringer("address", addr))

	deployed, err := isDeployed(prm.Blockchain, addr)
	if err != nil {
		return fmt.Errorf("check contract state: %w", err)
	}
	if deployed {
		l.Info("contract is already deployed, skip")
		return nil
	}

	l.Info("contract is missing, deploying...")

	mgmt := management.New(act)
	txHash, vub, err := mgmt.Deploy(&c.NEF, &c.Manifest, data)
	if err != nil {
		return fmt.Errorf("send deployment transaction: %w", err)
	}

	l.Info("deployment transaction sent, waiting...",
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	res, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for deployment transaction: %w", err)
	}
	if res.VMState.HasFlag(vmstate.Fault) {
		return fmt.Errorf("deployment transaction failed: %s", res.FaultException)
	}

	l.Info("contract deployed successfully")
	return nil
}

func isDeployed(b Blockchain, addr util.Uint160) (bool, error) {
	_, err := b.GetContractStateByHash(addr)
	if err == nil {
		return true, nil
	}
	if isErrContractNotFound(err) {
		return false, nil
	}

	return false, err
}

// isErrContractNotFound checks if the error returned by
// Blockchain.GetContractStateByHash means that the contract is missing.
func isErrContractNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Unknown contract")
}
