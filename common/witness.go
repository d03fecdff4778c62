package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

var (
	// ErrOwnerWitnessFailed appears when the method must be called
	// by an owner of some assets but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using certain account but was not.
	ErrWitnessFailed = "witness check failed"
	// ErrCommitteeWitnessFailed appears when the method must be
	// called by the chain committee but was not.
	ErrCommitteeWitnessFailed = "not witnessed by committee"
	// ErrAdminWitnessFailed appears when the method must be called
	// by the marketplace admin but was not.
	ErrAdminWitnessFailed = "not witnessed by marketplace admin"
)

// CommitteeAddress returns the M-out-of-N multisig account address of the
// chain committee, M = N/2+1.
func CommitteeAddress() interop.Hash160 {
	committee := neo.GetCommittee()
	return contract.CreateMultisigAccount(len(committee)/2+1, committee)
}

// CheckCommitteeWitness checks that the carrier transaction is witnessed by
// the chain committee. It panics with ErrCommitteeWitnessFailed message on
// fail.
func CheckCommitteeWitness() {
	if !runtime.CheckWitness(CommitteeAddress()) {
		panic(ErrCommitteeWitnessFailed)
	}
}

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller interop.Hash160) {
	checkWitnessWithPanic(caller, ErrOwnerWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller interop.Hash160) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

// IsAdminWitness returns true if the carrier transaction is witnessed by the
// given marketplace admin account or by the chain committee. The admin
// account may be unset (zero-length), then only the committee qualifies.
func IsAdminWitness(admin interop.Hash160) bool {
	if len(admin) == interop.Hash160Len && runtime.CheckWitness(admin) {
		return true
	}

	return runtime.CheckWitness(CommitteeAddress())
}

// CheckAdminWitness is like IsAdminWitness but panics with
// ErrAdminWitnessFailed message on fail.
func CheckAdminWitness(admin interop.Hash160) {
	if !IsAdminWitness(admin) {
		panic(ErrAdminWitnessFailed)
	}
}

func checkWitnessWithPanic(caller interop.Hash160, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
