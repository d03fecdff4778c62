/*
Package reviewer implements the Reviewer contract of the DataMarket suite.

Reviewer contract keeps the register of dataset reviewers. A reviewer locks
marketplace tokens on the contract account to become eligible, the stake can
be withdrawn in full at any time. Accepted reviews accumulate into a
reputation counter which only the Review contract is allowed to advance.

# Contract notifications

ReviewerStaked notification. Produced when a reviewer locks tokens.

	ReviewerStaked:
	  - name: reviewer
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: total
	    type: Integer

ReviewerWithdrawn notification. Produced when a reviewer takes the whole
stake back.

	ReviewerWithdrawn:
	  - name: reviewer
	    type: Hash160
	  - name: amount
	    type: Integer

ScoreRecorded notification. Produced when the Review contract forwards an
accepted review score.

	ScoreRecorded:
	  - name: reviewer
	    type: Hash160
	  - name: score
	    type: Integer
	  - name: reputation
	    type: Integer
*/
package reviewer

/*
Contract storage model.

# Summary
Key-value storage format:
 - s<interop.Hash160> -> int
   staked amount per reviewer, removed on withdrawal
 - r<interop.Hash160> -> int
   accumulated reputation per reviewer
 - 't' -> interop.Hash160
   token contract reference
 - 'c' -> interop.Hash160
   review contract reference, the only authorized recordScore caller
 - 'm' -> interop.Hash160
   marketplace admin account, may be absent

# Staking
Stakes are held on the contract account of this contract, so the escrowed
amount is observable through the token contract as a regular balance.
*/
