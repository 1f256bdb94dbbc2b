package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

// stateReader reads historical contract storage through the state service.
type stateReader interface {
	GetStateRootByHeight(height uint32) (*state.MPTRoot, error)
	FindStates(stateroot util.Uint256, historicalContractHash util.Uint160, historicalPrefix []byte,
		start []byte, maxCount *int) (result.FindStates, error)
}

// remoteBlockchain is a connection to the Neo RPC server audited Olive
// contract is deployed to.
type remoteBlockchain struct {
	rpc    *rpcclient.Client
	states stateReader
	// actor sends read-only invocations only, its account is random.
	actor *actor.Actor

	// height storage is audited at.
	currentBlock uint32
}

// newRemoteBlockChain dials Neo RPC server with 15s dial and request
// timeouts and remembers its current height.
func newRemoteBlockChain(ctx context.Context, endpoint string) (*remoteBlockchain, error) {
	acc, err := wallet.NewAccount()
	if err != nil {
		return nil, fmt.Errorf("generate random Neo account: %w", err)
	}

	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init actor: %w", err)
	}

	height, err := act.GetBlockCount()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("get block count: %w", err)
	}

	return &remoteBlockchain{
		rpc:          c,
		states:       c,
		actor:        act,
		currentBlock: height,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// iterateContractStorage passes every storage item of the contract as of
// the penult block into f, page by page. It stops at the first f's error and
// returns it.
func (x *remoteBlockchain) iterateContractStorage(contract util.Uint160, f func(key, value []byte) error) error {
	height := x.currentBlock - 1

	root, err := x.states.GetStateRootByHeight(height)
	if err != nil {
		return fmt.Errorf("get state root at block #%d: %w", height, err)
	}

	var start []byte

	for {
		page, err := x.states.FindStates(root.Root, contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("find storage items at state root %s: %w", root.Root, err)
		}

		for _, kv := range page.Results {
			if err = f(kv.Key, kv.Value); err != nil {
				return err
			}
		}

		if !page.Truncated || len(page.Results) == 0 {
			return nil
		}

		start = page.Results[len(page.Results)-1].Key
	}
}
