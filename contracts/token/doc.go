/*
Package token implements the Token contract of the DataMarket suite.

Token contract stores all DataMarket account balances. It is a NEP-17
compatible contract, so it can be tracked and controlled by N3 compatible
network monitors and wallet software.

All marketplace payments go through this contract: dataset stakes, reviewer
stakes, bundle purchases and revenue shares. Marketplace contracts move funds
off their own accounts, so escrowed amounts stay visible as regular balances.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This is an enhanced transfer notification with details
describing the cause of the transfer.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray

Mint notification. This notification is produced when the committee issues new
tokens.

	Mint:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package token

/*
Contract storage model.

# Summary
Key-value storage format:
 - 's' -> int
   total amount of minted tokens
 - a<interop.Hash160> -> int
   balances of all DataMarket accounts, exact-zero balances are removed

# Accounting
Contract stores information about all DataMarket accounts.
*/
