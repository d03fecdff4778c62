// Command datamarket-dump prints the observable state of a deployed
// DataMarket contract suite.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	tokenHash := flag.String("token", "", "Token contract address (LE hex)")
	reviewHash := flag.String("review", "", "Review contract address (LE hex)")
	bundleHash := flag.String("bundle", "", "Bundle contract address (LE hex)")

	flag.Parse()

	if *neoRPCEndpoint == "" {
		log.Fatal("missing Neo RPC endpoint")
	}

	err := dump(*neoRPCEndpoint, *tokenHash, *reviewHash, *bundleHash)
	if err != nil {
		log.Fatal(err)
	}
}

func dump(neoRPCEndpoint, tokenHash, reviewHash, bundleHash string) error {
	b, err := newRemoteBlockchain(neoRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	log.Printf("Connected, current block #%d\n", b.currentBlock)

	if tokenHash != "" {
		h, err := util.Uint160DecodeStringLE(tokenHash)
		if err != nil {
			return fmt.Errorf("decode token contract address: %w", err)
		}

		supply, err := b.intCall(h, "totalSupply")
		if err != nil {
			return fmt.Errorf("get token supply: %w", err)
		}

		log.Printf("Token: total supply %s\n", supply)
	}

	if reviewHash != "" {
		h, err := util.Uint160DecodeStringLE(reviewHash)
		if err != nil {
			return fmt.Errorf("decode review contract address: %w", err)
		}

		datasets, err := b.intCall(h, "datasetCount")
		if err != nil {
			return fmt.Errorf("get dataset count: %w", err)
		}

		forfeited, err := b.intCall(h, "forfeitedTotal")
		if err != nil {
			return fmt.Errorf("get forfeited total: %w", err)
		}

		log.Printf("Review: %s datasets, %s forfeited\n", datasets, forfeited)

		for id := int64(1); id <= datasets.Int64(); id++ {
			avg, err := b.intCallWith(h, "averageScore", id)
			if err != nil {
				return fmt.Errorf("get average score of dataset %d: %w", id, err)
			}

			log.Printf("  dataset %d: average score %s\n", id, avg)
		}
	}

	if bundleHash != "" {
		h, err := util.Uint160DecodeStringLE(bundleHash)
		if err != nil {
			return fmt.Errorf("decode bundle contract address: %w", err)
		}

		bundles, err := b.intCall(h, "bundleCount")
		if err != nil {
			return fmt.Errorf("get bundle count: %w", err)
		}

		sold, err := b.intCall(h, "totalSupply")
		if err != nil {
			return fmt.Errorf("get certificate supply: %w", err)
		}

		log.Printf("Bundle: %s bundles, %s sold\n", bundles, sold)
	}

	return nil
}
