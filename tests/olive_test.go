package tests

import (
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/olive-network/olive-contract/common"
	"github.com/stretchr/testify/require"
)

const (
	tokSymbol = "4,TOK"
	tokCode   = "TOK"
	// Units in one whole TOK.
	unit = 10_000

	tokMaxSupply = 1_000_000 * unit
)

type oliveFixture struct {
	e *neotest.Executor
	// c is signed by the committee which acts as the contract account.
	c      *neotest.ContractInvoker
	issuer neotest.Signer
}

func newOliveFixture(t *testing.T) *oliveFixture {
	c := newOliveInvoker(t)
	issuer := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "create", issuer.ScriptHash(), tokSymbol, int64(tokMaxSupply))

	return &oliveFixture{e: c.Executor, c: c, issuer: issuer}
}

func (f *oliveFixture) as(signers ...neotest.Signer) *neotest.ContractInvoker {
	return f.c.WithSigners(signers...)
}

func (f *oliveFixture) issue(t *testing.T, to util.Uint160, amount int64) util.Uint256 {
	return f.as(f.issuer).Invoke(t, stackitem.Null{}, "issue", to, amount, tokSymbol, "")
}

func (f *oliveFixture) balance(t *testing.T, owner util.Uint160) int64 {
	return testInvokeInt(t, f.c, "getBalance", owner, tokCode)
}

func (f *oliveFixture) supply(t *testing.T) int64 {
	return testInvokeInt(t, f.c, "getSupply", tokCode)
}

// grant endorses the account on behalf of the contract account.
func (f *oliveFixture) grant(t *testing.T, to util.Uint160, amount int64) util.Uint256 {
	return f.c.Invoke(t, stackitem.Null{}, "endorse", f.c.Hash, to, amount, tokSymbol, "")
}

func (f *oliveFixture) setPop(t *testing.T, acc neotest.Signer, value string) util.Uint256 {
	return f.as(acc).Invoke(t, stackitem.Null{}, "setProofOfPersonhood", acc.ScriptHash(), tokSymbol, value)
}

// newReputable returns an account that has the given score and balance and
// has proof-of-personhood set.
func (f *oliveFixture) newReputable(t *testing.T, score, balance int64) neotest.Signer {
	acc := f.e.NewAccount(t)
	f.grant(t, acc.ScriptHash(), score)
	f.setPop(t, acc, "id:"+acc.ScriptHash().StringLE())
	if balance > 0 {
		f.issue(t, acc.ScriptHash(), balance)
	}
	return acc
}

type person struct {
	score        int64
	lastClaimDay int64
	pop          string
}

func (f *oliveFixture) person(t *testing.T, owner util.Uint160) person {
	s, err := f.c.TestInvoke(t, "getPerson", owner, tokCode)
	require.NoError(t, err)

	fields := s.Pop().Array()
	require.Len(t, fields, 3)

	score, err := fields[0].TryInteger()
	require.NoError(t, err)
	last, err := fields[1].TryInteger()
	require.NoError(t, err)
	pop, err := fields[2].TryBytes()
	require.NoError(t, err)

	return person{score: score.Int64(), lastClaimDay: last.Int64(), pop: string(pop)}
}

func (f *oliveFixture) hasPerson(t *testing.T, owner util.Uint160) bool {
	_, err := f.c.TestInvoke(t, "getPerson", owner, tokCode)
	return err == nil
}

func (f *oliveFixture) hasBalance(t *testing.T, owner util.Uint160) bool {
	_, err := f.c.TestInvoke(t, "getBalance", owner, tokCode)
	return err == nil
}

func TestOlive_Version(t *testing.T) {
	c := newOliveInvoker(t)
	c.Invoke(t, common.Version, "version")
}

func TestOlive_Create(t *testing.T) {
	f := newOliveFixture(t)

	s, err := f.c.TestInvoke(t, "getStats", tokCode)
	require.NoError(t, err)
	fields := s.Pop().Array()
	require.Len(t, fields, 4)
	requireItemInt(t, 0, fields[0])
	requireItemInt(t, tokMaxSupply, fields[1])
	requireItemInt(t, 4, fields[2])
	requireItemBytes(t, f.issuer.ScriptHash().BytesBE(), fields[3])

	t.Run("notification", func(t *testing.T) {
		h := f.c.Invoke(t, stackitem.Null{}, "create", f.issuer.ScriptHash(), "2,NEW", int64(1000))
		evs := events(t, f.e, h, "Create")
		require.Len(t, evs, 1)
		requireItemBytes(t, f.issuer.ScriptHash().BytesBE(), evs[0][0])
		requireItemString(t, "NEW", evs[0][1])
		requireItemInt(t, 1000, evs[0][2])
	})

	t.Run("duplicate", func(t *testing.T) {
		f.c.InvokeFail(t, "token with symbol already exists", "create",
			f.issuer.ScriptHash(), tokSymbol, int64(1))
		f.c.InvokeFail(t, "token with symbol already exists", "create",
			f.issuer.ScriptHash(), "2,TOK", int64(1))
	})

	t.Run("no committee witness", func(t *testing.T) {
		f.as(f.issuer).InvokeFail(t, common.ErrCommitteeWitnessFailed, "create",
			f.issuer.ScriptHash(), "4,ABC", int64(1))
	})

	t.Run("invalid symbol", func(t *testing.T) {
		for _, sym := range []string{"TOK", "4,tok", "4,TOOLONGX", "4,", ",TOK", "x,TOK", "4,TOK,1", "4,T0K"} {
			f.c.InvokeFail(t, "invalid symbol", "create", f.issuer.ScriptHash(), sym, int64(1))
		}
		f.c.InvokeFail(t, "invalid symbol precision", "create", f.issuer.ScriptHash(), "19,ABC", int64(1))
	})

	t.Run("invalid supply", func(t *testing.T) {
		f.c.InvokeFail(t, "max-supply must be positive", "create", f.issuer.ScriptHash(), "4,ABC", int64(0))
		f.c.InvokeFail(t, "invalid supply", "create", f.issuer.ScriptHash(), "4,ABC", int64(1)<<62)
	})

	t.Run("invalid issuer", func(t *testing.T) {
		f.c.InvokeFail(t, "invalid issuer account", "create", []byte{1, 2, 3}, "4,ABC", int64(1))
	})

	t.Run("list symbols", func(t *testing.T) {
		s, err := f.c.TestInvoke(t, "listSymbols")
		require.NoError(t, err)

		iter := s.Pop().Value().(*storage.Iterator)
		require.Equal(t, []stackitem.Item{
			stackitem.NewByteArray([]byte("NEW")),
			stackitem.NewByteArray([]byte("TOK")),
		}, iteratorToArray(iter))
	})
}

func TestOlive_Issue(t *testing.T) {
	f := newOliveFixture(t)
	issuer := f.issuer.ScriptHash()

	h := f.issue(t, issuer, 100*unit)
	require.EqualValues(t, 100*unit, f.supply(t))
	require.EqualValues(t, 100*unit, f.balance(t, issuer))
	require.Equal(t, []string{"Open", "Issue"}, eventNames(t, f.e, h))

	t.Run("to other account", func(t *testing.T) {
		acc := f.e.NewAccount(t).ScriptHash()

		h := f.as(f.issuer).Invoke(t, stackitem.Null{}, "issue", acc, int64(5*unit), tokSymbol, "hello")
		require.Equal(t, []string{"Issue", "Open", "Transfer"}, eventNames(t, f.e, h))

		tr := events(t, f.e, h, "Transfer")[0]
		requireItemBytes(t, issuer.BytesBE(), tr[0])
		requireItemBytes(t, acc.BytesBE(), tr[1])
		requireItemInt(t, 5*unit, tr[2])
		requireItemString(t, tokCode, tr[3])
		requireItemString(t, "hello", tr[4])

		op := events(t, f.e, h, "Open")[0]
		requireItemBytes(t, issuer.BytesBE(), op[2])

		require.EqualValues(t, 105*unit, f.supply(t))
		require.EqualValues(t, 100*unit, f.balance(t, issuer))
		require.EqualValues(t, 5*unit, f.balance(t, acc))
	})

	t.Run("endorse command", func(t *testing.T) {
		f.grant(t, issuer, 20*unit)
		f.setPop(t, f.issuer, "id:issuer")

		acc := f.e.NewAccount(t).ScriptHash()
		supply := f.supply(t)
		balance := f.balance(t, issuer)

		h := f.as(f.issuer).Invoke(t, stackitem.Null{}, "issue", acc, int64(5*unit), tokSymbol, "--endorse welcome")
		require.Equal(t, []string{"Issue", "Open", "Endorse"}, eventNames(t, f.e, h))

		ev := events(t, f.e, h, "Endorse")[0]
		requireItemBytes(t, issuer.BytesBE(), ev[0])
		requireItemBytes(t, acc.BytesBE(), ev[1])
		requireItemInt(t, 5*unit, ev[2])
		requireItemInt(t, 4*unit, ev[4])

		require.EqualValues(t, 4*unit, f.person(t, acc).score)
		require.EqualValues(t, 0, f.balance(t, acc))
		require.Equal(t, balance, f.balance(t, issuer), "issued amount is burned by the endorsement")
		require.Equal(t, supply, f.supply(t))
	})

	t.Run("pop command", func(t *testing.T) {
		supply := f.supply(t)
		balance := f.balance(t, issuer)

		h := f.as(f.issuer).Invoke(t, stackitem.Null{}, "issue", f.c.Hash, int64(unit), tokSymbol, "--pop passport:issuer")
		require.Equal(t, []string{"Issue", "ProofOfPersonhood"}, eventNames(t, f.e, h))

		ev := events(t, f.e, h, "ProofOfPersonhood")[0]
		requireItemBytes(t, issuer.BytesBE(), ev[0])
		requireItemString(t, "passport:issuer", ev[2])

		require.Equal(t, "passport:issuer", f.person(t, issuer).pop)
		require.Equal(t, balance+unit, f.balance(t, issuer))
		require.Equal(t, supply+unit, f.supply(t))
		require.False(t, f.hasBalance(t, f.c.Hash))
	})

	t.Run("not an issuer", func(t *testing.T) {
		acc := f.e.NewAccount(t)
		f.as(acc).InvokeFail(t, common.ErrWitnessFailed, "issue", acc.ScriptHash(), int64(1), tokSymbol, "")
	})

	t.Run("invalid arguments", func(t *testing.T) {
		inv := f.as(f.issuer)
		inv.InvokeFail(t, "must issue positive quantity", "issue", issuer, int64(0), tokSymbol, "")
		inv.InvokeFail(t, "must issue positive quantity", "issue", issuer, int64(-1), tokSymbol, "")
		inv.InvokeFail(t, "symbol precision mismatch", "issue", issuer, int64(1), "2,TOK", "")
		inv.InvokeFail(t, "token with symbol does not exist", "issue", issuer, int64(1), "4,NOPE", "")
		inv.InvokeFail(t, "memo has more than 256 bytes", "issue", issuer, int64(1), tokSymbol, strings.Repeat("a", 257))
		inv.InvokeFail(t, "quantity exceeds available supply", "issue", issuer, int64(tokMaxSupply), tokSymbol, "")
	})

	t.Run("whole supply", func(t *testing.T) {
		rest := tokMaxSupply - f.supply(t)
		f.issue(t, issuer, rest)
		require.EqualValues(t, tokMaxSupply, f.supply(t))
		f.as(f.issuer).InvokeFail(t, "quantity exceeds available supply", "issue", issuer, int64(1), tokSymbol, "")
	})
}

func TestOlive_Retire(t *testing.T) {
	f := newOliveFixture(t)
	issuer := f.issuer.ScriptHash()
	f.issue(t, issuer, 100*unit)

	h := f.as(f.issuer).Invoke(t, stackitem.Null{}, "retire", int64(40*unit), tokSymbol, "burn")
	require.EqualValues(t, 60*unit, f.supply(t))
	require.EqualValues(t, 60*unit, f.balance(t, issuer))

	evs := events(t, f.e, h, "Retire")
	require.Len(t, evs, 1)
	requireItemBytes(t, issuer.BytesBE(), evs[0][0])
	requireItemInt(t, 40*unit, evs[0][1])
	requireItemString(t, "burn", evs[0][3])

	t.Run("not an issuer", func(t *testing.T) {
		acc := f.e.NewAccount(t)
		f.as(acc).InvokeFail(t, common.ErrWitnessFailed, "retire", int64(1), tokSymbol, "")
	})

	t.Run("overdrawn", func(t *testing.T) {
		f.as(f.issuer).InvokeFail(t, "overdrawn balance", "retire", int64(61*unit), tokSymbol, "")
	})

	t.Run("non-positive", func(t *testing.T) {
		f.as(f.issuer).InvokeFail(t, "must retire positive quantity", "retire", int64(0), tokSymbol, "")
	})

	t.Run("issued by contract", func(t *testing.T) {
		f.c.Invoke(t, stackitem.Null{}, "create", f.c.Hash, "2,SLF", int64(1000))
		f.c.Invoke(t, stackitem.Null{}, "issue", f.c.Hash, int64(100), "2,SLF", "")

		acc := f.e.NewAccount(t)
		f.as(acc).Invoke(t, stackitem.Null{}, "retire", int64(30), "2,SLF", "")

		require.EqualValues(t, 70, testInvokeInt(t, f.c, "getSupply", "SLF"))
		require.EqualValues(t, 70, testInvokeInt(t, f.c, "getBalance", f.c.Hash, "SLF"))
	})
}

func TestOlive_Transfer(t *testing.T) {
	f := newOliveFixture(t)

	a := f.e.NewAccount(t)
	b := f.e.NewAccount(t)
	f.issue(t, a.ScriptHash(), 10*unit)

	h := f.as(a).Invoke(t, stackitem.Null{}, "transfer", a.ScriptHash(), b.ScriptHash(), int64(3*unit), tokSymbol, "rent")
	require.EqualValues(t, 7*unit, f.balance(t, a.ScriptHash()))
	require.EqualValues(t, 3*unit, f.balance(t, b.ScriptHash()))
	require.EqualValues(t, 10*unit, f.supply(t))

	op := events(t, f.e, h, "Open")
	require.Len(t, op, 1)
	requireItemBytes(t, b.ScriptHash().BytesBE(), op[0][0])
	requireItemBytes(t, a.ScriptHash().BytesBE(), op[0][2])

	t.Run("recipient pays when signed", func(t *testing.T) {
		c := f.e.NewAccount(t)

		h := f.as(a, c).Invoke(t, stackitem.Null{}, "transfer", a.ScriptHash(), c.ScriptHash(), int64(unit), tokSymbol, "")
		op := events(t, f.e, h, "Open")
		require.Len(t, op, 1)
		requireItemBytes(t, c.ScriptHash().BytesBE(), op[0][2])
	})

	t.Run("existing balance", func(t *testing.T) {
		h := f.as(a).Invoke(t, stackitem.Null{}, "transfer", a.ScriptHash(), b.ScriptHash(), int64(1), tokSymbol, "")
		require.Equal(t, []string{"Transfer"}, eventNames(t, f.e, h))
	})

	t.Run("to self", func(t *testing.T) {
		before := f.balance(t, a.ScriptHash())
		f.as(a).Invoke(t, stackitem.Null{}, "transfer", a.ScriptHash(), a.ScriptHash(), int64(0), tokSymbol, "")
		f.as(a).Invoke(t, stackitem.Null{}, "transfer", a.ScriptHash(), a.ScriptHash(), int64(unit), tokSymbol, "")
		require.Equal(t, before, f.balance(t, a.ScriptHash()))
	})

	t.Run("invalid", func(t *testing.T) {
		inv := f.as(a)
		inv.InvokeFail(t, "overdrawn balance", "transfer", a.ScriptHash(), b.ScriptHash(), int64(100*unit), tokSymbol, "")
		inv.InvokeFail(t, "must transfer positive quantity", "transfer", a.ScriptHash(), b.ScriptHash(), int64(0), tokSymbol, "")
		inv.InvokeFail(t, "must transfer non-negative quantity", "transfer", a.ScriptHash(), a.ScriptHash(), int64(-1), tokSymbol, "")
		inv.InvokeFail(t, "invalid to account", "transfer", a.ScriptHash(), []byte{1, 2, 3}, int64(1), tokSymbol, "")
		inv.InvokeFail(t, "symbol precision mismatch", "transfer", a.ScriptHash(), b.ScriptHash(), int64(1), "3,TOK", "")
		inv.InvokeFail(t, "token with symbol does not exist", "transfer", a.ScriptHash(), b.ScriptHash(), int64(1), "4,ABC", "")
		inv.InvokeFail(t, "invalid quantity", "transfer", a.ScriptHash(), b.ScriptHash(), int64(1)<<62, tokSymbol, "")
		inv.InvokeFail(t, "memo has more than 256 bytes", "transfer", a.ScriptHash(), b.ScriptHash(), int64(1), tokSymbol, strings.Repeat("m", 257))
	})

	t.Run("no witness", func(t *testing.T) {
		f.as(b).InvokeFail(t, common.ErrWitnessFailed, "transfer", a.ScriptHash(), b.ScriptHash(), int64(1), tokSymbol, "")
	})

	t.Run("no balance", func(t *testing.T) {
		d := f.e.NewAccount(t)
		f.as(d).InvokeFail(t, "no balance object found", "transfer", d.ScriptHash(), a.ScriptHash(), int64(1), tokSymbol, "")
	})
}

func TestOlive_Open(t *testing.T) {
	f := newOliveFixture(t)

	payer := f.e.NewAccount(t)
	owner := f.e.NewAccount(t).ScriptHash()

	require.False(t, f.hasBalance(t, owner))

	h := f.as(payer).Invoke(t, stackitem.Null{}, "open", owner, tokSymbol, payer.ScriptHash())
	require.EqualValues(t, 0, f.balance(t, owner))

	op := events(t, f.e, h, "Open")
	require.Len(t, op, 1)
	requireItemBytes(t, owner.BytesBE(), op[0][0])
	requireItemString(t, tokCode, op[0][1])
	requireItemBytes(t, payer.ScriptHash().BytesBE(), op[0][2])

	h = f.as(payer).Invoke(t, stackitem.Null{}, "open", owner, tokSymbol, payer.ScriptHash())
	require.Empty(t, eventNames(t, f.e, h))

	f.as(payer).InvokeFail(t, common.ErrWitnessFailed, "open", owner, tokSymbol, owner)
	f.as(payer).InvokeFail(t, "symbol does not exist", "open", owner, "4,ABC", payer.ScriptHash())
	f.as(payer).InvokeFail(t, "symbol precision mismatch", "open", owner, "0,TOK", payer.ScriptHash())
}

func TestOlive_Close(t *testing.T) {
	f := newOliveFixture(t)

	x := f.e.NewAccount(t)
	f.grant(t, x.ScriptHash(), 5*unit)
	f.issue(t, x.ScriptHash(), unit)

	f.as(x).InvokeFail(t, "cannot close because the balance is not zero", "close", x.ScriptHash(), tokSymbol)
	f.as(f.issuer).InvokeFail(t, common.ErrWitnessFailed, "close", x.ScriptHash(), tokSymbol)

	f.as(x).Invoke(t, stackitem.Null{}, "transfer", x.ScriptHash(), f.issuer.ScriptHash(), int64(unit), tokSymbol, "")
	require.EqualValues(t, 0, f.balance(t, x.ScriptHash()))
	require.True(t, f.hasPerson(t, x.ScriptHash()))

	h := f.as(x).Invoke(t, stackitem.Null{}, "close", x.ScriptHash(), tokSymbol)
	evs := events(t, f.e, h, "Close")
	require.Len(t, evs, 1)
	requireItemBytes(t, x.ScriptHash().BytesBE(), evs[0][0])
	requireItemString(t, tokCode, evs[0][1])

	require.False(t, f.hasBalance(t, x.ScriptHash()))
	require.False(t, f.hasPerson(t, x.ScriptHash()))

	f.as(x).InvokeFail(t, "balance row already deleted or never existed", "close", x.ScriptHash(), tokSymbol)
}
