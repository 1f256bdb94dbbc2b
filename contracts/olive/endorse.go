package olive

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/olive-network/olive-contract/contracts/olive/oliveconst"
)

// endorse burns amount from the sender to raise the score of the recipient.
// Endorsement of the contract account endorses the sender. The contract
// account itself endorses without reputation requirements and without burn.
func endorse(ctx storage.Context, from, to interop.Hash160, amount int, sym Symbol, payer interop.Hash160) {
	if amount <= 0 {
		panic("must burn a positive quantity to endorse an account")
	}

	if isSelf(to) {
		to = from
	}
	privileged := isSelf(from)

	mult := precisionMultiplier(sym.Precision)
	if !privileged {
		checkActor(ctx, from, sym.Code, mult)
	}

	var score int

	p, found := getPerson(ctx, to, sym.Code)
	if !found {
		score = amount
		if !privileged {
			fee := oliveconst.FirstEndorsementFee * mult
			if amount <= fee {
				panic("first endorsement quantity must exceed the endorsement fee")
			}
			score -= fee
		}
		score = clampScore(score)

		openPerson(ctx, to, sym.Code, score, today()+1, payer)
	} else {
		old := p.Score
		p.Score = clampScore(old + amount)
		if old <= 0 && p.Score > 0 {
			restart := today() - 1
			if p.LastClaimDay < restart {
				p.LastClaimDay = restart
			}
		}
		putPerson(ctx, to, sym.Code, p)
		score = p.Score
	}

	if !privileged {
		burnFrom(ctx, from, sym.Code, amount)
	}

	runtime.Notify("Endorse", from, to, amount, sym.Code, score)
}

// drain burns amount from the sender to lower the score of the recipient.
// When the score stops being positive, accrued basic income is paid out
// first.
func drain(ctx storage.Context, from, to interop.Hash160, amount int, sym Symbol) {
	if amount <= 0 {
		panic("must burn a positive quantity to drain an account")
	}

	if isSelf(to) {
		to = from
	}
	privileged := isSelf(from)

	if !privileged {
		checkActor(ctx, from, sym.Code, precisionMultiplier(sym.Precision))
	}

	p, found := getPerson(ctx, to, sym.Code)
	if !found {
		panic("to account has not been endorsed yet")
	}

	old := p.Score
	p.Score = clampScore(old - amount)
	putPerson(ctx, to, sym.Code, p)

	if old > 0 && p.Score <= 0 {
		settle(ctx, to, sym, true)
	}

	if !privileged {
		burnFrom(ctx, from, sym.Code, amount)
	}

	runtime.Notify("Drain", from, to, amount, sym.Code, p.Score)
}
