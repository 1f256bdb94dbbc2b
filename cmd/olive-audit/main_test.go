package main

import (
	"context"
	"errors"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestParseHash(t *testing.T) {
	h := util.Uint160{1, 2, 3, 4, 5}

	res, err := parseHash(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = parseHash(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)

	_, err = parseHash("not a hash")
	require.Error(t, err)
}

type testStates struct {
	root    util.Uint256
	rootErr error
	pages   []result.FindStates
	findErr error

	height   uint32
	contract util.Uint160
	starts   [][]byte
}

func (x *testStates) GetStateRootByHeight(height uint32) (*state.MPTRoot, error) {
	x.height = height
	if x.rootErr != nil {
		return nil, x.rootErr
	}
	return &state.MPTRoot{Index: height, Root: x.root}, nil
}

func (x *testStates) FindStates(root util.Uint256, contract util.Uint160, _ []byte, start []byte, _ *int) (result.FindStates, error) {
	if x.findErr != nil {
		return result.FindStates{}, x.findErr
	}
	if !root.Equals(x.root) {
		return result.FindStates{}, errors.New("unexpected state root")
	}

	x.contract = contract
	x.starts = append(x.starts, start)

	page := x.pages[0]
	x.pages = x.pages[1:]
	return page, nil
}

func kv(key, value string) result.KeyValue {
	return result.KeyValue{Key: []byte(key), Value: []byte(value)}
}

func TestRemoteBlockchain_IterateContractStorage(t *testing.T) {
	contract := util.Uint160{9, 9, 9}

	newChain := func(s *testStates) *remoteBlockchain {
		return &remoteBlockchain{states: s, currentBlock: 100}
	}

	t.Run("pages", func(t *testing.T) {
		s := &testStates{
			root: util.Uint256{1},
			pages: []result.FindStates{
				{Results: []result.KeyValue{kv("a1", "x"), kv("a2", "y")}, Truncated: true},
				{Results: []result.KeyValue{kv("p1", "z")}, Truncated: true},
				{Results: []result.KeyValue{kv("s1", "w")}},
			},
		}

		var keys []string
		err := newChain(s).iterateContractStorage(contract, func(key, value []byte) error {
			keys = append(keys, string(key)+"="+string(value))
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"a1=x", "a2=y", "p1=z", "s1=w"}, keys)
		require.EqualValues(t, 99, s.height, "storage is read at the penult block")
		require.Equal(t, contract, s.contract)
		require.Equal(t, [][]byte{nil, []byte("a2"), []byte("p1")}, s.starts)
		require.Empty(t, s.pages)
	})

	t.Run("empty truncated page", func(t *testing.T) {
		s := &testStates{
			root:  util.Uint256{1},
			pages: []result.FindStates{{Truncated: true}},
		}
		require.NoError(t, newChain(s).iterateContractStorage(contract, func(_, _ []byte) error {
			return errors.New("unexpected item")
		}))
	})

	t.Run("callback error", func(t *testing.T) {
		stop := errors.New("stop")
		s := &testStates{
			root: util.Uint256{1},
			pages: []result.FindStates{
				{Results: []result.KeyValue{kv("a1", "x"), kv("a2", "y")}, Truncated: true},
			},
		}

		var n int
		err := newChain(s).iterateContractStorage(contract, func(_, _ []byte) error {
			n++
			return stop
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 1, n)
	})

	t.Run("state root failure", func(t *testing.T) {
		s := &testStates{rootErr: errors.New("state service disabled")}
		err := newChain(s).iterateContractStorage(contract, nil)
		require.ErrorContains(t, err, "state service disabled")
	})

	t.Run("find failure", func(t *testing.T) {
		s := &testStates{root: util.Uint256{1}, findErr: errors.New("unknown contract")}
		err := newChain(s).iterateContractStorage(contract, nil)
		require.ErrorContains(t, err, "unknown contract")
	})
}

func TestRun_Config(t *testing.T) {
	for name, cfg := range map[string]config{
		"no endpoint":     {contract: "x"},
		"no contract":     {rpcEndpoint: "http://localhost:30333"},
		"no symbol":       {rpcEndpoint: "http://localhost:30333", contract: "x", account: "y"},
		"invalid address": {rpcEndpoint: "http://localhost:30333", contract: "x"},
	} {
		t.Run(name, func(t *testing.T) {
			require.Error(t, run(context.Background(), zaptest.NewLogger(t), cfg))
		})
	}
}
