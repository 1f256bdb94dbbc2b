package olive

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/olive-network/olive-contract/common"
	"github.com/olive-network/olive-contract/contracts/olive/oliveconst"
)

func personKey(owner interop.Hash160, code string) []byte {
	key := append([]byte{oliveconst.PersonPrefix}, owner...)
	return append(key, []byte(code)...)
}

func getPerson(ctx storage.Context, owner interop.Hash160, code string) (Person, bool) {
	data := storage.Get(ctx, personKey(owner, code))
	if data == nil {
		return Person{}, false
	}

	return std.Deserialize(data.([]byte)).(Person), true
}

func putPerson(ctx storage.Context, owner interop.Hash160, code string, p Person) {
	common.SetSerialized(ctx, personKey(owner, code), p)
}

// openPerson creates person record with default proof-of-personhood and the
// balance row paired with it.
func openPerson(ctx storage.Context, owner interop.Hash160, code string, score, lastClaimDay int, payer interop.Hash160) {
	putPerson(ctx, owner, code, Person{
		Score:             score,
		LastClaimDay:      lastClaimDay,
		ProofOfPersonhood: oliveconst.DefaultProofOfPersonhood,
	})

	_, found := getAccount(ctx, owner, code)
	if !found {
		createAccount(ctx, owner, code, payer)
	}
}

// isEmptyProof reports whether proof-of-personhood has never been set.
func isEmptyProof(value string) bool {
	return len(value) == 0 || common.StringsEqual(value, oliveconst.DefaultProofOfPersonhood)
}

func clampScore(score int) int {
	if score > oliveconst.MaxScore {
		return oliveconst.MaxScore
	}
	if score < oliveconst.MinScore {
		return oliveconst.MinScore
	}

	return score
}

// checkActor ensures the account is reputable enough to endorse or drain
// others.
func checkActor(ctx storage.Context, acc interop.Hash160, code string, mult int) {
	p, found := getPerson(ctx, acc, code)
	if !found {
		panic("account has not been endorsed yet")
	}
	if p.Score < oliveconst.EndorseMinimumScore*mult {
		panic("account score is too low")
	}
	if isEmptyProof(p.ProofOfPersonhood) {
		panic("account proof-of-personhood is not set")
	}
}

func setProof(ctx storage.Context, owner interop.Hash160, code string, value string) {
	if len(value) > oliveconst.MaxMemoLength {
		panic("proof-of-personhood has more than 256 bytes")
	}
	if common.StringsEqual(value, oliveconst.DefaultProofOfPersonhood) {
		panic("reserved proof-of-personhood value")
	}

	p, found := getPerson(ctx, owner, code)
	if !found {
		panic("this account has not been endorsed yet")
	}

	p.ProofOfPersonhood = value
	putPerson(ctx, owner, code, p)

	runtime.Notify("ProofOfPersonhood", owner, code, value)
}
