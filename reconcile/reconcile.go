// Package reconcile checks consistency of the Olive contract storage dumped
// from the chain.
package reconcile

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/olive-network/olive-contract/contracts/olive/oliveconst"
	"github.com/olive-network/olive-contract/rpc/olive"
	"go.uber.org/zap"
)

// ErrUnknownKey is returned by Snapshot.Add for keys the contract never
// writes.
var ErrUnknownKey = errors.New("unknown storage key")

// Snapshot is a decoded state of the Olive contract storage. Records are
// grouped by symbol code and then by owner.
type Snapshot struct {
	Stats    map[string]*olive.OliveStats
	Balances map[string]map[util.Uint160]*big.Int
	Persons  map[string]map[util.Uint160]*olive.OlivePerson
}

// NewSnapshot returns empty Snapshot ready to be filled with Add.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Stats:    make(map[string]*olive.OliveStats),
		Balances: make(map[string]map[util.Uint160]*big.Int),
		Persons:  make(map[string]map[util.Uint160]*olive.OlivePerson),
	}
}

// Add decodes storage item and puts it into the snapshot. Its signature
// allows to pass it directly as a storage iteration callback.
func (s *Snapshot) Add(key, value []byte) error {
	if len(key) == 0 {
		return ErrUnknownKey
	}

	item, err := stackitem.Deserialize(value)
	if err != nil {
		return fmt.Errorf("deserialize value of key %x: %w", key, err)
	}

	switch key[0] {
	case oliveconst.StatsPrefix:
		code := string(key[1:])
		st := new(olive.OliveStats)
		if err := st.FromStackItem(item); err != nil {
			return fmt.Errorf("decode stats of %s: %w", code, err)
		}
		s.Stats[code] = st
	case oliveconst.AccountPrefix:
		owner, code, err := splitOwnerKey(key)
		if err != nil {
			return err
		}
		balance, err := decodeBalance(item)
		if err != nil {
			return fmt.Errorf("decode balance of %s in %s: %w", owner.StringLE(), code, err)
		}
		if s.Balances[code] == nil {
			s.Balances[code] = make(map[util.Uint160]*big.Int)
		}
		s.Balances[code][owner] = balance
	case oliveconst.PersonPrefix:
		owner, code, err := splitOwnerKey(key)
		if err != nil {
			return err
		}
		p := new(olive.OlivePerson)
		if err := p.FromStackItem(item); err != nil {
			return fmt.Errorf("decode person %s in %s: %w", owner.StringLE(), code, err)
		}
		if s.Persons[code] == nil {
			s.Persons[code] = make(map[util.Uint160]*olive.OlivePerson)
		}
		s.Persons[code][owner] = p
	default:
		return fmt.Errorf("%w: %x", ErrUnknownKey, key)
	}

	return nil
}

func splitOwnerKey(key []byte) (util.Uint160, string, error) {
	if len(key) <= 1+util.Uint160Size {
		return util.Uint160{}, "", fmt.Errorf("%w: %x", ErrUnknownKey, key)
	}

	owner, err := util.Uint160DecodeBytesBE(key[1 : 1+util.Uint160Size])
	if err != nil {
		return util.Uint160{}, "", err
	}

	return owner, string(key[1+util.Uint160Size:]), nil
}

func decodeBalance(item stackitem.Item) (*big.Int, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	if len(arr) != 1 {
		return nil, errors.New("wrong number of structure elements")
	}

	return arr[0].TryInteger()
}

// Violation describes broken invariant of the contract state.
type Violation struct {
	Symbol string
	// Account is zero for symbol-wide violations.
	Account util.Uint160
	Reason  string
}

func (v Violation) String() string {
	if v.Account.Equals(util.Uint160{}) {
		return v.Symbol + ": " + v.Reason
	}
	return v.Symbol + "/" + v.Account.StringLE() + ": " + v.Reason
}

// Check verifies the snapshot and returns all found violations sorted by
// symbol. Every violation is logged with warning level.
func Check(s *Snapshot, log *zap.Logger) []Violation {
	var res []Violation

	report := func(code string, acc util.Uint160, format string, args ...any) {
		v := Violation{Symbol: code, Account: acc, Reason: fmt.Sprintf(format, args...)}
		log.Warn("invariant violation",
			zap.String("symbol", code),
			zap.Stringer("account", acc),
			zap.String("reason", v.Reason))
		res = append(res, v)
	}

	for _, code := range symbols(s) {
		st, ok := s.Stats[code]
		if !ok {
			report(code, util.Uint160{}, "records of unregistered symbol")
			continue
		}

		if st.Supply.Sign() < 0 {
			report(code, util.Uint160{}, "negative supply %s", st.Supply)
		}
		if st.Supply.Cmp(st.MaxSupply) > 0 {
			report(code, util.Uint160{}, "supply %s exceeds max supply %s", st.Supply, st.MaxSupply)
		}

		sum := new(big.Int)
		for _, owner := range owners(s.Balances[code]) {
			b := s.Balances[code][owner]
			if b.Sign() < 0 {
				report(code, owner, "negative balance %s", b)
			}
			sum.Add(sum, b)
		}
		if sum.Cmp(st.Supply) != 0 {
			report(code, util.Uint160{}, "balances sum up to %s, supply is %s", sum, st.Supply)
		}

		for _, owner := range owners(s.Persons[code]) {
			p := s.Persons[code][owner]
			if _, ok := s.Balances[code][owner]; !ok {
				report(code, owner, "person record without balance")
			}
			if !p.Score.IsInt64() || p.Score.Int64() > math.MaxInt32 || p.Score.Int64() < math.MinInt32 {
				report(code, owner, "score %s is out of range", p.Score)
			}
			if len(p.ProofOfPersonhood) > oliveconst.MaxMemoLength {
				report(code, owner, "proof-of-personhood is too long")
			}
		}

		log.Debug("symbol checked",
			zap.String("symbol", code),
			zap.Stringer("supply", st.Supply),
			zap.Int("balances", len(s.Balances[code])),
			zap.Int("persons", len(s.Persons[code])))
	}

	return res
}

func symbols(s *Snapshot) []string {
	seen := make(map[string]struct{})
	for code := range s.Stats {
		seen[code] = struct{}{}
	}
	for code := range s.Balances {
		seen[code] = struct{}{}
	}
	for code := range s.Persons {
		seen[code] = struct{}{}
	}

	res := make([]string, 0, len(seen))
	for code := range seen {
		res = append(res, code)
	}
	sort.Strings(res)
	return res
}

func owners[V any](m map[util.Uint160]V) []util.Uint160 {
	res := make([]util.Uint160, 0, len(m))
	for owner := range m {
		res = append(res, owner)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Less(res[j]) })
	return res
}
