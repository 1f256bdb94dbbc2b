package olive

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/lib/address"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/olive-network/olive-contract/contracts/olive/oliveconst"
)

// today returns the number of whole days since the Unix epoch of the current
// block.
func today() int {
	return runtime.GetTime() / oliveconst.MillisecondsPerDay
}

// settle pays basic income accrued by the owner since the last claim: one
// whole token per day, at most MaxPastClaimDays days back plus today, bounded
// by the remaining supply. Days beyond the limit are forfeited. Forced
// settlement skips the positive score requirement and is used when the score
// is about to stop accruing.
func settle(ctx storage.Context, owner interop.Hash160, sym Symbol, forced bool) {
	p, found := getPerson(ctx, owner, sym.Code)
	if !found {
		return
	}
	if p.Score <= 0 && !forced {
		return
	}
	if isEmptyProof(p.ProofOfPersonhood) {
		return
	}

	day := today()
	if p.LastClaimDay >= day {
		return
	}

	pending := day - p.LastClaimDay - 1
	lost := 0
	if pending > oliveconst.MaxPastClaimDays {
		lost = pending - oliveconst.MaxPastClaimDays
		pending = oliveconst.MaxPastClaimDays
	}

	mult := precisionMultiplier(sym.Precision)
	amount := (pending + 1) * mult

	st := mustGetStats(ctx, sym.Code)
	available := st.MaxSupply - st.Supply
	if amount > available {
		amount = available
	}
	if amount <= 0 {
		return
	}

	p.LastClaimDay += lost + amount/mult
	putPerson(ctx, owner, sym.Code, p)

	mint(ctx, sym.Code, amount)
	addBalance(ctx, owner, sym.Code, amount, owner)

	if forced {
		runtime.Log("forced basic income settlement of drained account")
	}

	runtime.Notify("Claim", owner, amount, sym.Code, p.LastClaimDay, lost,
		claimMemo(owner, amount, sym, p.LastClaimDay, lost))
}

func claimMemo(owner interop.Hash160, amount int, sym Symbol, lastClaimDay, lost int) string {
	memo := "[UBI] " + address.FromHash160(owner) + " +" + formatAmount(amount, sym) +
		" (next: " + formatDate(lastClaimDay+1) + ")"
	if lost > 0 {
		memo = memo + " (lost: " + std.Itoa(lost, 10) + " days of income)"
	}

	return string([]byte(memo))
}

// formatDate renders day number since the Unix epoch as DD-MM-YYYY of the
// proleptic Gregorian calendar.
func formatDate(days int) string {
	days += 719468
	era := days / 146097
	doe := days - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153

	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	y := yoe + era*400
	if m <= 2 {
		y++
	}

	return twoDigits(d) + "-" + twoDigits(m) + "-" + std.Itoa(y, 10)
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + std.Itoa(n, 10)
	}

	return std.Itoa(n, 10)
}
