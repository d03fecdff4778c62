/*
Package contracts provides access to compiled DataMarket contracts.

Contracts are compiled with the neo-go compiler into contract.nef and
manifest.json files inside each contract directory, this package reads them
back for deployment.
*/
package contracts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	// TokenDir is the directory of the Token contract sources and build
	// artifacts, relative to the contracts root.
	TokenDir = "token"
	// ReviewerDir is the Reviewer contract directory.
	ReviewerDir = "reviewer"
	// ReviewDir is the Review contract directory.
	ReviewDir = "review"
	// BundleDir is the Bundle contract directory.
	BundleDir = "bundle"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about a compiled Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Suite is the complete set of compiled DataMarket contracts in deployment
// order.
type Suite struct {
	Token    Contract
	Reviewer Contract
	Review   Contract
	Bundle   Contract
}

// ReadSuite reads all compiled DataMarket contracts from the given contracts
// root directory. Each contract directory must hold contract.nef and
// manifest.json built by the neo-go compiler.
func ReadSuite(rootDir string) (*Suite, error) {
	var (
		s   Suite
		err error
	)

	for _, c := range []struct {
		dir string
		dst *Contract
	}{
		{TokenDir, &s.Token},
		{ReviewerDir, &s.Reviewer},
		{ReviewDir, &s.Review},
		{BundleDir, &s.Bundle},
	} {
		*c.dst, err = readContract(filepath.Join(rootDir, c.dir))
		if err != nil {
			return nil, fmt.Errorf("read %s contract: %w", c.dir, err)
		}
	}

	return &s, nil
}

func readContract(dir string) (Contract, error) {
	var c Contract

	nefBytes, err := os.ReadFile(filepath.Join(dir, nefName))
	if err != nil {
		return c, fmt.Errorf("read NEF file: %w", err)
	}

	c.NEF, err = nef.FileFromBytes(nefBytes)
	if err != nil {
		return c, fmt.Errorf("parse NEF: %w", err)
	}

	manifestBytes, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return c, fmt.Errorf("read manifest file: %w", err)
	}

	err = json.Unmarshal(manifestBytes, &c.Manifest)
	if err != nil {
		return c, fmt.Errorf("parse manifest: %w", err)
	}

	return c, nil
}
