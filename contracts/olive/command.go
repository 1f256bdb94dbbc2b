package olive

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/olive-network/olive-contract/contracts/olive/oliveconst"
)

// Memo command kinds.
const (
	cmdTransfer = iota
	cmdProofOfPersonhood
	cmdEndorse
	cmdDrain
)

type command struct {
	Kind int
	Arg  string
}

// parseCommand recognizes memo commands. A command is either the whole memo
// or the memo prefix followed by a space. Argument of "--pop" is the rest of
// the memo after the space.
func parseCommand(memo string) command {
	if memo == oliveconst.PopCommand {
		return command{Kind: cmdProofOfPersonhood, Arg: ""}
	}
	if hasCommandPrefix(memo, oliveconst.PopCommand) {
		b := []byte(memo)
		return command{Kind: cmdProofOfPersonhood, Arg: string(b[len(oliveconst.PopCommand)+1:])}
	}
	if memo == oliveconst.EndorseCommand || hasCommandPrefix(memo, oliveconst.EndorseCommand) {
		return command{Kind: cmdEndorse, Arg: ""}
	}
	if memo == oliveconst.DrainCommand || hasCommandPrefix(memo, oliveconst.DrainCommand) {
		return command{Kind: cmdDrain, Arg: ""}
	}

	return command{Kind: cmdTransfer, Arg: ""}
}

func hasCommandPrefix(memo, cmd string) bool {
	if len(memo) <= len(cmd) {
		return false
	}

	return std.MemorySearch([]byte(memo), []byte(cmd+" ")) == 0
}

// transfer routes transfer-shaped operation by its memo.
func transfer(ctx storage.Context, from, to interop.Hash160, amount int, sym Symbol, memo string, payer interop.Hash160) {
	cmd := parseCommand(memo)

	switch cmd.Kind {
	case cmdProofOfPersonhood:
		if !to.Equals(from) && !isSelf(to) {
			panic("from and to must be the same account or the contract account to set proof-of-personhood")
		}
		setProof(ctx, from, sym.Code, cmd.Arg)
	case cmdEndorse:
		endorse(ctx, from, to, amount, sym, payer)
	case cmdDrain:
		drain(ctx, from, to, amount, sym)
	default:
		plainTransfer(ctx, from, to, amount, sym, memo, payer)
	}
}

// plainTransfer settles basic income of the sender and moves tokens. Transfer
// to self moves nothing and only settles.
func plainTransfer(ctx storage.Context, from, to interop.Hash160, amount int, sym Symbol, memo string, payer interop.Hash160) {
	if from.Equals(to) {
		if amount < 0 {
			panic("must transfer non-negative quantity")
		}
		settle(ctx, from, sym, false)
	} else {
		if amount <= 0 {
			panic("must transfer positive quantity")
		}
		settle(ctx, from, sym, false)
		subBalance(ctx, from, sym.Code, amount)
		addBalance(ctx, to, sym.Code, amount, payer)
	}

	runtime.Notify("Transfer", from, to, amount, sym.Code, memo)
}
