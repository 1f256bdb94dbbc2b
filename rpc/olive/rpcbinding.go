// Package olive contains RPC wrappers for Olive contract.
package olive

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// OlivePerson is a contract-specific olive.Person type used by its methods.
type OlivePerson struct {
	Score *big.Int
	LastClaimDay *big.Int
	ProofOfPersonhood string
}

// OliveStats is a contract-specific olive.Stats type used by its methods.
type OliveStats struct {
	Supply *big.Int
	MaxSupply *big.Int
	Precision *big.Int
	Issuer util.Uint160
}
// CreateEvent represents "Create" event emitted by the contract.
type CreateEvent struct {
	Issuer util.Uint160
	Symbol string
	MaxSupply *big.Int
}

// IssueEvent represents "Issue" event emitted by the contract.
type IssueEvent struct {
	To util.Uint160
	Amount *big.Int
	Symbol string
	Memo string
}

// RetireEvent represents "Retire" event emitted by the contract.
type RetireEvent struct {
	Issuer util.Uint160
	Amount *big.Int
	Symbol string
	Memo string
}

// TransferEvent represents "Transfer" event emitted by the contract.
type TransferEvent struct {
	From util.Uint160
	To util.Uint160
	Amount *big.Int
	Symbol string
	Memo string
}

// OpenEvent represents "Open" event emitted by the contract.
type OpenEvent struct {
	Owner util.Uint160
	Symbol string
	Payer util.Uint160
}

// CloseEvent represents "Close" event emitted by the contract.
type CloseEvent struct {
	Owner util.Uint160
	Symbol string
}

// EndorseEvent represents "Endorse" event emitted by the contract.
type EndorseEvent struct {
	From util.Uint160
	To util.Uint160
	Amount *big.Int
	Symbol string
	Score *big.Int
}

// DrainEvent represents "Drain" event emitted by the contract.
type DrainEvent struct {
	From util.Uint160
	To util.Uint160
	Amount *big.Int
	Symbol string
	Score *big.Int
}

// ProofOfPersonhoodEvent represents "ProofOfPersonhood" event emitted by the contract.
type ProofOfPersonhoodEvent struct {
	Owner util.Uint160
	Symbol string
	Value string
}

// ClaimEvent represents "Claim" event emitted by the contract.
type ClaimEvent struct {
	Account util.Uint160
	Amount *big.Int
	Symbol string
	LastClaimDay *big.Int
	LostDays *big.Int
	Memo string
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetBalance invokes `getBalance` method of contract.
func (c *ContractReader) GetBalance(owner util.Uint160, code string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getBalance", owner, code))
}

// GetPerson invokes `getPerson` method of contract.
func (c *ContractReader) GetPerson(owner util.Uint160, code string) (*OlivePerson, error) {
	return itemToOlivePerson(unwrap.Item(c.invoker.Call(c.hash, "getPerson", owner, code)))
}

// GetStats invokes `getStats` method of contract.
func (c *ContractReader) GetStats(code string) (*OliveStats, error) {
	return itemToOliveStats(unwrap.Item(c.invoker.Call(c.hash, "getStats", code)))
}

// GetSupply invokes `getSupply` method of contract.
func (c *ContractReader) GetSupply(code string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getSupply", code))
}

// ListSymbols invokes `listSymbols` method of contract.
func (c *ContractReader) ListSymbols() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listSymbols"))
}

// ListSymbolsExpanded is similar to ListSymbols (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListSymbolsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listSymbols", _numOfIteratorItems))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Close creates a transaction invoking `close` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Close(owner util.Uint160, symbol string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "close", owner, symbol)
}

// CloseTransaction creates a transaction invoking `close` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CloseTransaction(owner util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "close", owner, symbol)
}

// CloseUnsigned creates a transaction invoking `close` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CloseUnsigned(owner util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "close", nil, owner, symbol)
}

// Create creates a transaction invoking `create` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Create(issuer util.Uint160, symbol string, maxSupply *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "create", issuer, symbol, maxSupply)
}

// CreateTransaction creates a transaction invoking `create` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateTransaction(issuer util.Uint160, symbol string, maxSupply *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "create", issuer, symbol, maxSupply)
}

// CreateUnsigned creates a transaction invoking `create` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateUnsigned(issuer util.Uint160, symbol string, maxSupply *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "create", nil, issuer, symbol, maxSupply)
}

// Drain creates a transaction invoking `drain` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Drain(from util.Uint160, to util.Uint160, amount *big.Int, symbol string, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "drain", from, to, amount, symbol, memo)
}

// DrainTransaction creates a transaction invoking `drain` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DrainTransaction(from util.Uint160, to util.Uint160, amount *big.Int, symbol string, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "drain", from, to, amount, symbol, memo)
}

// DrainUnsigned creates a transaction invoking `drain` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DrainUnsigned(from util.Uint160, to util.Uint160, amount *big.Int, symbol string, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "drain", nil, from, to, amount, symbol, memo)
}

// Endorse creates a transaction invoking `endorse` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Endorse(from util.Uint160, to util.Uint160, amount *big.Int, symbol string, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "endorse", from, to, amount, symbol, memo)
}

// EndorseTransaction creates a transaction invoking `endorse` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EndorseTransaction(from util.Uint160, to util.Uint160, amount *big.Int, symbol string, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "endorse", from, to, amount, symbol, memo)
}

// EndorseUnsigned creates a transaction invoking `endorse` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EndorseUnsigned(from util.Uint160, to util.Uint160, amount *big.Int, symbol string, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "endorse", nil, from, to, amount, symbol, memo)
}

// Issue creates a transaction invoking `issue` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Issue(to util.Uint160, amount *big.Int, symbol string, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "issue", to, amount, symbol, memo)
}

// IssueTransaction creates a transaction invoking `issue` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) IssueTransaction(to util.Uint160, amount *big.Int, symbol string, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "issue", to, amount, symbol, memo)
}

// IssueUnsigned creates a transaction invoking `issue` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) IssueUnsigned(to util.Uint160, amount *big.Int, symbol string, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "issue", nil, to, amount, symbol, memo)
}

// Open creates a transaction invoking `open` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Open(owner util.Uint160, symbol string, payer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "open", owner, symbol, payer)
}

// OpenTransaction creates a transaction invoking `open` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OpenTransaction(owner util.Uint160, symbol string, payer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "open", owner, symbol, payer)
}

// OpenUnsigned creates a transaction invoking `open` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OpenUnsigned(owner util.Uint160, symbol string, payer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "open", nil, owner, symbol, payer)
}

// Retire creates a transaction invoking `retire` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Retire(amount *big.Int, symbol string, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "retire", amount, symbol, memo)
}

// RetireTransaction creates a transaction invoking `retire` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RetireTransaction(amount *big.Int, symbol string, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "retire", amount, symbol, memo)
}

// RetireUnsigned creates a transaction invoking `retire` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RetireUnsigned(amount *big.Int, symbol string, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "retire", nil, amount, symbol, memo)
}

// SetProofOfPersonhood creates a transaction invoking `setProofOfPersonhood` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetProofOfPersonhood(owner util.Uint160, symbol string, value string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setProofOfPersonhood", owner, symbol, value)
}

// SetProofOfPersonhoodTransaction creates a transaction invoking `setProofOfPersonhood` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetProofOfPersonhoodTransaction(owner util.Uint160, symbol string, value string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setProofOfPersonhood", owner, symbol, value)
}

// SetProofOfPersonhoodUnsigned creates a transaction invoking `setProofOfPersonhood` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetProofOfPersonhoodUnsigned(owner util.Uint160, symbol string, value string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setProofOfPersonhood", nil, owner, symbol, value)
}

// Transfer creates a transaction invoking `transfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Transfer(from util.Uint160, to util.Uint160, amount *big.Int, symbol string, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transfer", from, to, amount, symbol, memo)
}

// TransferTransaction creates a transaction invoking `transfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferTransaction(from util.Uint160, to util.Uint160, amount *big.Int, symbol string, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transfer", from, to, amount, symbol, memo)
}

// TransferUnsigned creates a transaction invoking `transfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferUnsigned(from util.Uint160, to util.Uint160, amount *big.Int, symbol string, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transfer", nil, from, to, amount, symbol, memo)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToOlivePerson converts stack item into *OlivePerson.
func itemToOlivePerson(item stackitem.Item, err error) (*OlivePerson, error) {
	if err != nil {
		return nil, err
	}
	var res = new(OlivePerson)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of OlivePerson from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *OlivePerson) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Score, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}

	index++
	res.LastClaimDay, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastClaimDay: %w", err)
	}

	index++
	res.ProofOfPersonhood, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ProofOfPersonhood: %w", err)
	}

	return nil
}

// itemToOliveStats converts stack item into *OliveStats.
func itemToOliveStats(item stackitem.Item, err error) (*OliveStats, error) {
	if err != nil {
		return nil, err
	}
	var res = new(OliveStats)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of OliveStats from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *OliveStats) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Supply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Supply: %w", err)
	}

	index++
	res.MaxSupply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxSupply: %w", err)
	}

	index++
	res.Precision, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Precision: %w", err)
	}

	index++
	res.Issuer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Issuer: %w", err)
	}

	return nil
}

// CreateEventsFromApplicationLog retrieves a set of all emitted events
// with "Create" name from the provided [result.ApplicationLog].
func CreateEventsFromApplicationLog(log *result.ApplicationLog) ([]*CreateEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CreateEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Create" {
				continue
			}
			event := new(CreateEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CreateEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CreateEvent or
// returns an error if it's not possible to do to so.
func (e *CreateEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Issuer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Issuer: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.MaxSupply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxSupply: %w", err)
	}

	return nil
}

// IssueEventsFromApplicationLog retrieves a set of all emitted events
// with "Issue" name from the provided [result.ApplicationLog].
func IssueEventsFromApplicationLog(log *result.ApplicationLog) ([]*IssueEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*IssueEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Issue" {
				continue
			}
			event := new(IssueEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize IssueEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to IssueEvent or
// returns an error if it's not possible to do to so.
func (e *IssueEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Memo, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Memo: %w", err)
	}

	return nil
}

// RetireEventsFromApplicationLog retrieves a set of all emitted events
// with "Retire" name from the provided [result.ApplicationLog].
func RetireEventsFromApplicationLog(log *result.ApplicationLog) ([]*RetireEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RetireEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Retire" {
				continue
			}
			event := new(RetireEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RetireEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RetireEvent or
// returns an error if it's not possible to do to so.
func (e *RetireEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Issuer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Issuer: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Memo, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Memo: %w", err)
	}

	return nil
}

// TransferEventsFromApplicationLog retrieves a set of all emitted events
// with "Transfer" name from the provided [result.ApplicationLog].
func TransferEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Transfer" {
				continue
			}
			event := new(TransferEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferEvent or
// returns an error if it's not possible to do to so.
func (e *TransferEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Memo, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Memo: %w", err)
	}

	return nil
}

// OpenEventsFromApplicationLog retrieves a set of all emitted events
// with "Open" name from the provided [result.ApplicationLog].
func OpenEventsFromApplicationLog(log *result.ApplicationLog) ([]*OpenEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OpenEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Open" {
				continue
			}
			event := new(OpenEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OpenEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OpenEvent or
// returns an error if it's not possible to do to so.
func (e *OpenEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Payer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Payer: %w", err)
	}

	return nil
}

// CloseEventsFromApplicationLog retrieves a set of all emitted events
// with "Close" name from the provided [result.ApplicationLog].
func CloseEventsFromApplicationLog(log *result.ApplicationLog) ([]*CloseEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CloseEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Close" {
				continue
			}
			event := new(CloseEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CloseEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CloseEvent or
// returns an error if it's not possible to do to so.
func (e *CloseEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	return nil
}

// EndorseEventsFromApplicationLog retrieves a set of all emitted events
// with "Endorse" name from the provided [result.ApplicationLog].
func EndorseEventsFromApplicationLog(log *result.ApplicationLog) ([]*EndorseEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*EndorseEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Endorse" {
				continue
			}
			event := new(EndorseEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize EndorseEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to EndorseEvent or
// returns an error if it's not possible to do to so.
func (e *EndorseEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Score, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}

	return nil
}

// DrainEventsFromApplicationLog retrieves a set of all emitted events
// with "Drain" name from the provided [result.ApplicationLog].
func DrainEventsFromApplicationLog(log *result.ApplicationLog) ([]*DrainEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DrainEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Drain" {
				continue
			}
			event := new(DrainEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DrainEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DrainEvent or
// returns an error if it's not possible to do to so.
func (e *DrainEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Score, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}

	return nil
}

// ProofOfPersonhoodEventsFromApplicationLog retrieves a set of all emitted events
// with "ProofOfPersonhood" name from the provided [result.ApplicationLog].
func ProofOfPersonhoodEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProofOfPersonhoodEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProofOfPersonhoodEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProofOfPersonhood" {
				continue
			}
			event := new(ProofOfPersonhoodEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProofOfPersonhoodEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProofOfPersonhoodEvent or
// returns an error if it's not possible to do to so.
func (e *ProofOfPersonhoodEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Value, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	return nil
}

// ClaimEventsFromApplicationLog retrieves a set of all emitted events
// with "Claim" name from the provided [result.ApplicationLog].
func ClaimEventsFromApplicationLog(log *result.ApplicationLog) ([]*ClaimEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ClaimEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Claim" {
				continue
			}
			event := new(ClaimEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ClaimEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ClaimEvent or
// returns an error if it's not possible to do to so.
func (e *ClaimEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.LastClaimDay, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastClaimDay: %w", err)
	}

	index++
	e.LostDays, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LostDays: %w", err)
	}

	index++
	e.Memo, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Memo: %w", err)
	}

	return nil
}
