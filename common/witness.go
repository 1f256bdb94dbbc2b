package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrCommitteeWitnessFailed appears when the method must be
	// called by the committee but was not.
	ErrCommitteeWitnessFailed = "committee witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using certain account but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckCommitteeWitness checks witness of the committee multi-signature
// account. It panics with ErrCommitteeWitnessFailed message on fail.
func CheckCommitteeWitness() {
	if !runtime.CheckWitness(CommitteeAddress()) {
		panic(ErrCommitteeWitnessFailed)
	}
}
