package olive

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/olive-network/olive-contract/common"
	"github.com/olive-network/olive-contract/contracts/olive/oliveconst"
)

type (
	// Stats is a supply record of the symbol.
	Stats struct {
		// Amount of tokens in circulation
		Supply int
		// Supply cap, immutable after creation
		MaxSupply int
		// Amount of decimals
		Precision int
		Issuer    interop.Hash160
	}

	// Account is a balance record of the owner for the symbol.
	Account struct {
		Balance int
	}

	// Person is a reputation record of the owner for the symbol. It
	// exists only together with the Account record of the same owner and
	// symbol.
	Person struct {
		// Reputation, saturated within signed 32-bit range
		Score int
		// Day number through which basic income has been paid
		LastClaimDay int
		// Opaque identity claim, empty or default means unset
		ProofOfPersonhood string
	}
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("olive contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("olive contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Create registers a new symbol with the given issuer and supply cap. Symbol
// has "<precision>,<CODE>" format, e.g. "4,OLIVE". It can be invoked only by
// committee acting as the contract account.
//
// It produces Create notification.
func Create(issuer interop.Hash160, symbol string, maxSupply int) {
	common.CheckCommitteeWitness()
	checkAccount(issuer, "issuer")

	sym := parseSymbol(symbol)
	if !isValidAmount(maxSupply) {
		panic("invalid supply")
	}
	if maxSupply <= 0 {
		panic("max-supply must be positive")
	}

	ctx := storage.GetContext()
	if _, found := getStats(ctx, sym.Code); found {
		panic("token with symbol already exists")
	}

	putStats(ctx, sym.Code, Stats{
		Supply:    0,
		MaxSupply: maxSupply,
		Precision: sym.Precision,
		Issuer:    issuer,
	})

	runtime.Notify("Create", issuer, sym.Code, maxSupply)
}

// Issue mints amount of tokens to the symbol issuer and then transfers them
// to the recipient with the given memo, so memo commands apply to issued
// tokens too. It can be invoked only by the issuer.
//
// It produces Issue notification followed by notifications of the transfer.
func Issue(to interop.Hash160, amount int, symbol string, memo string) {
	checkMemo(memo)
	checkAccount(to, "to")

	ctx := storage.GetContext()
	sym := parseSymbol(symbol)

	st, found := getStats(ctx, sym.Code)
	if !found {
		panic("token with symbol does not exist, create token before issue")
	}

	checkAuthority(st.Issuer)
	checkAmount(amount)
	if amount <= 0 {
		panic("must issue positive quantity")
	}
	checkPrecision(st, sym)
	if amount > st.MaxSupply-st.Supply {
		panic("quantity exceeds available supply")
	}

	mint(ctx, sym.Code, amount)
	addBalance(ctx, st.Issuer, sym.Code, amount, st.Issuer)

	runtime.Notify("Issue", to, amount, sym.Code, memo)

	if !to.Equals(st.Issuer) {
		transfer(ctx, st.Issuer, to, amount, sym, memo, st.Issuer)
	}
}

// Retire burns amount of tokens from the issuer balance. It can be invoked
// only by the issuer unless the issuer is the contract itself, then anyone
// can retire.
//
// It produces Retire notification.
func Retire(amount int, symbol string, memo string) {
	checkMemo(memo)

	ctx := storage.GetContext()
	sym := parseSymbol(symbol)

	st, found := getStats(ctx, sym.Code)
	if !found {
		panic("token with symbol does not exist")
	}

	if !isSelf(st.Issuer) {
		checkAuthority(st.Issuer)
	}

	checkAmount(amount)
	if amount <= 0 {
		panic("must retire positive quantity")
	}
	checkPrecision(st, sym)

	burnFrom(ctx, st.Issuer, sym.Code, amount)

	runtime.Notify("Retire", st.Issuer, amount, sym.Code, memo)
}

// Transfer is the transfer entry point. Memo starting with one of the
// commands ("--pop", "--endorse", "--drain") routes the call to the
// proof-of-personhood update, endorsement or drain, otherwise tokens are
// moved after the basic income of the sender is settled. Transfer to self
// with zero amount only settles basic income. It can be invoked only by
// the sender.
//
// It produces Transfer, Endorse, Drain or ProofOfPersonhood notification
// depending on the memo. Claim notification is produced when basic income is
// paid.
func Transfer(from, to interop.Hash160, amount int, symbol string, memo string) {
	ctx := storage.GetContext()
	sym := checkTransferArgs(ctx, from, to, amount, symbol, memo)

	transfer(ctx, from, to, amount, sym, memo, selectPayer(from, to))
}

// Open creates zero balance of the owner for the symbol if it does not exist
// yet. It can be invoked only by the payer.
//
// It produces Open notification when the balance is created.
func Open(owner interop.Hash160, symbol string, payer interop.Hash160) {
	checkAccount(owner, "owner")
	checkAccount(payer, "payer")
	checkAuthority(payer)

	ctx := storage.GetContext()
	sym := parseSymbol(symbol)

	st, found := getStats(ctx, sym.Code)
	if !found {
		panic("symbol does not exist")
	}
	checkPrecision(st, sym)

	if _, found := getAccount(ctx, owner, sym.Code); !found {
		createAccount(ctx, owner, sym.Code, payer)
	}
}

// Close removes zero balance of the owner together with the reputation record
// of the owner. It can be invoked only by the owner.
//
// It produces Close notification.
func Close(owner interop.Hash160, symbol string) {
	checkAccount(owner, "owner")
	checkAuthority(owner)

	sym := parseSymbol(symbol)
	closeAccount(storage.GetContext(), owner, sym.Code)

	runtime.Notify("Close", owner, sym.Code)
}

// Endorse raises the reputation score of the recipient, see Transfer with
// "--endorse" memo.
func Endorse(from, to interop.Hash160, amount int, symbol string, memo string) {
	ctx := storage.GetContext()
	sym := checkTransferArgs(ctx, from, to, amount, symbol, memo)

	endorse(ctx, from, to, amount, sym, selectPayer(from, to))
}

// Drain lowers the reputation score of the recipient, see Transfer with
// "--drain" memo.
func Drain(from, to interop.Hash160, amount int, symbol string, memo string) {
	ctx := storage.GetContext()
	sym := checkTransferArgs(ctx, from, to, amount, symbol, memo)

	drain(ctx, from, to, amount, sym)
}

// SetProofOfPersonhood sets proof-of-personhood of the already endorsed
// owner. It can be invoked only by the owner.
//
// It produces ProofOfPersonhood notification.
func SetProofOfPersonhood(owner interop.Hash160, symbol string, value string) {
	checkAccount(owner, "owner")
	checkAuthority(owner)

	sym := parseSymbol(symbol)
	setProof(storage.GetContext(), owner, sym.Code, value)
}

// GetSupply returns the current supply of the symbol with the given code.
func GetSupply(code string) int {
	return mustGetStats(storage.GetReadOnlyContext(), code).Supply
}

// GetStats returns the supply record of the symbol with the given code.
func GetStats(code string) Stats {
	return mustGetStats(storage.GetReadOnlyContext(), code)
}

// ListSymbols returns iterator over codes of all registered symbols.
func ListSymbols() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{oliveconst.StatsPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// GetBalance returns the balance of the owner for the symbol with the given
// code. It fails if the owner has no balance record.
func GetBalance(owner interop.Hash160, code string) int {
	acc, found := getAccount(storage.GetReadOnlyContext(), owner, code)
	if !found {
		panic("no balance object found")
	}

	return acc.Balance
}

// GetPerson returns the reputation record of the owner for the symbol with
// the given code. It fails if the owner has not been endorsed.
func GetPerson(owner interop.Hash160, code string) Person {
	p, found := getPerson(storage.GetReadOnlyContext(), owner, code)
	if !found {
		panic("this account has not been endorsed yet")
	}

	return p
}

// checkTransferArgs validates arguments shared by the transfer-shaped methods
// and returns parsed symbol.
func checkTransferArgs(ctx storage.Context, from, to interop.Hash160, amount int, symbol string, memo string) Symbol {
	checkAccount(from, "from")
	checkAuthority(from)
	checkAccount(to, "to")

	sym := parseSymbol(symbol)

	st, found := getStats(ctx, sym.Code)
	if !found {
		panic("token with symbol does not exist")
	}

	checkAmount(amount)
	checkPrecision(st, sym)
	checkMemo(memo)

	return sym
}

func checkMemo(memo string) {
	if len(memo) > oliveconst.MaxMemoLength {
		panic("memo has more than 256 bytes")
	}
}

func checkAccount(acc interop.Hash160, role string) {
	if len(acc) != interop.Hash160Len {
		panic("invalid " + role + " account")
	}
}

// isSelf checks whether acc is the contract account.
func isSelf(acc interop.Hash160) bool {
	return acc.Equals(runtime.GetExecutingScriptHash())
}

// hasAuthority checks witness of acc. The contract account is represented by
// the committee.
func hasAuthority(acc interop.Hash160) bool {
	if isSelf(acc) {
		return runtime.CheckWitness(common.CommitteeAddress())
	}

	return runtime.CheckWitness(acc)
}

func checkAuthority(acc interop.Hash160) {
	if !hasAuthority(acc) {
		panic(common.ErrWitnessFailed)
	}
}

// selectPayer returns the party charged for records created by the
// transfer: the recipient if it has signed the transaction, the sender
// otherwise.
func selectPayer(from, to interop.Hash160) interop.Hash160 {
	if hasAuthority(to) {
		return to
	}

	return from
}
