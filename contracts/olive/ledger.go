package olive

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/olive-network/olive-contract/common"
	"github.com/olive-network/olive-contract/contracts/olive/oliveconst"
)

func statsKey(code string) []byte {
	return append([]byte{oliveconst.StatsPrefix}, []byte(code)...)
}

func accountKey(owner interop.Hash160, code string) []byte {
	key := append([]byte{oliveconst.AccountPrefix}, owner...)
	return append(key, []byte(code)...)
}

func getStats(ctx storage.Context, code string) (Stats, bool) {
	data := storage.Get(ctx, statsKey(code))
	if data == nil {
		return Stats{}, false
	}

	return std.Deserialize(data.([]byte)).(Stats), true
}

func mustGetStats(ctx storage.Context, code string) Stats {
	st, found := getStats(ctx, code)
	if !found {
		panic("token with symbol does not exist")
	}

	return st
}

func putStats(ctx storage.Context, code string, st Stats) {
	common.SetSerialized(ctx, statsKey(code), st)
}

// mint increases supply, never beyond the cap.
func mint(ctx storage.Context, code string, amount int) {
	st := mustGetStats(ctx, code)
	if amount > st.MaxSupply-st.Supply {
		panic("quantity exceeds available supply")
	}

	st.Supply += amount
	putStats(ctx, code, st)
}

func burn(ctx storage.Context, code string, amount int) {
	st := mustGetStats(ctx, code)
	if amount > st.Supply {
		panic("supply can't be negative")
	}

	st.Supply -= amount
	putStats(ctx, code, st)
}

// burnFrom removes amount from both the owner balance and the supply.
func burnFrom(ctx storage.Context, owner interop.Hash160, code string, amount int) {
	subBalance(ctx, owner, code, amount)
	burn(ctx, code, amount)
}

func getAccount(ctx storage.Context, owner interop.Hash160, code string) (Account, bool) {
	data := storage.Get(ctx, accountKey(owner, code))
	if data == nil {
		return Account{}, false
	}

	return std.Deserialize(data.([]byte)).(Account), true
}

func putAccount(ctx storage.Context, owner interop.Hash160, code string, acc Account) {
	common.SetSerialized(ctx, accountKey(owner, code), acc)
}

// createAccount stores zero balance row. Payer is reported in the
// notification only, storage fees are always paid by the transaction sender.
func createAccount(ctx storage.Context, owner interop.Hash160, code string, payer interop.Hash160) {
	putAccount(ctx, owner, code, Account{Balance: 0})
	runtime.Notify("Open", owner, code, payer)
}

func subBalance(ctx storage.Context, owner interop.Hash160, code string, amount int) {
	acc, found := getAccount(ctx, owner, code)
	if !found {
		panic("no balance object found")
	}
	if acc.Balance < amount {
		panic("overdrawn balance")
	}

	acc.Balance -= amount
	putAccount(ctx, owner, code, acc)
}

func addBalance(ctx storage.Context, owner interop.Hash160, code string, amount int, payer interop.Hash160) {
	acc, found := getAccount(ctx, owner, code)
	if !found {
		createAccount(ctx, owner, code, payer)
		acc = Account{Balance: 0}
	}

	acc.Balance += amount
	putAccount(ctx, owner, code, acc)
}

// closeAccount deletes zero balance row together with the paired person
// record.
func closeAccount(ctx storage.Context, owner interop.Hash160, code string) {
	acc, found := getAccount(ctx, owner, code)
	if !found {
		panic("balance row already deleted or never existed")
	}
	if acc.Balance != 0 {
		panic("cannot close because the balance is not zero")
	}

	storage.Delete(ctx, accountKey(owner, code))
	storage.Delete(ctx, personKey(owner, code))
}
