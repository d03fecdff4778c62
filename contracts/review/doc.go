/*
Package review implements the Review contract of the DataMarket suite.

Review contract is the escrow registry of submitted datasets. A dataset owner
locks a stake on the contract account at submission time. Eligible reviewers
score the dataset, the third accepted review finalizes it and releases the
stake back to the owner. The marketplace admin settles disputed datasets,
forfeited stakes stay on the contract account.

Review scores are forwarded to the Reviewer contract, so reviewer reputation
grows exactly with the reviews accepted here.

# Contract notifications

DatasetSubmitted notification. Produced when a dataset enters review.

	DatasetSubmitted:
	  - name: id
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: stake
	    type: Integer

ReviewSubmitted notification. Produced for every accepted review.

	ReviewSubmitted:
	  - name: id
	    type: Integer
	  - name: reviewer
	    type: Hash160
	  - name: score
	    type: Integer
	  - name: numReviews
	    type: Integer

DatasetReviewed notification. Produced when the review quorum is reached.

	DatasetReviewed:
	  - name: id
	    type: Integer
	  - name: averageScore
	    type: Integer

StakeReleased notification. Produced when the dataset stake returns to the
owner.

	StakeReleased:
	  - name: id
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: amount
	    type: Integer

DisputeResolved notification. Produced when the marketplace admin settles a
dispute.

	DisputeResolved:
	  - name: id
	    type: Integer
	  - name: isLegit
	    type: Boolean
*/
package review

/*
Contract storage model.

# Summary
Key-value storage format:
 - d<id int> -> std.Serialize(Dataset)
   submitted dataset records (Dataset is a structure defined in current package)
 - 'i' -> int
   dataset counter, ids start at 1
 - 'f' -> int
   total amount of forfeited stakes
 - 't' -> interop.Hash160
   token contract reference
 - 'r' -> interop.Hash160
   reviewer contract reference
 - 'm' -> interop.Hash160
   marketplace admin account, may be absent

# Escrow
Dataset stakes are held on the contract account of this contract until
release or forfeiture.
*/
