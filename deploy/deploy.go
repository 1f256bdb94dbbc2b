package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/olive-network/olive-contract/common"
	"github.com/olive-network/olive-contract/rpc/olive"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for Olive contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns error with 'Unknown
	// contract' substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// TokenPrm groups parameters of the symbol created right after the contract
// deployment.
type TokenPrm struct {
	Issuer util.Uint160
	// Symbol in "<precision>,<CODE>" format.
	Symbol    string
	MaxSupply *big.Int
}

// Prm groups all parameters of the Olive contract deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy the contract to.
	Blockchain Blockchain

	// Account authorized by the committee to deploy and update the contract
	// (must be unlocked). Contract address depends on it.
	LocalAccount *wallet.Account

	NEF      nef.File
	Manifest manifest.Manifest

	// Symbols to create if missing.
	Tokens []TokenPrm
}

// Deploy makes Olive contract available on the chain represented by
// Prm.Blockchain and returns its address.
//
// Summary of stages:
//  1. deployment of the contract if it is missing
//  2. update of the contract if the on-chain version is lower than the local one
//  3. creation of the missing symbols listed in Prm.Tokens
//
// Deploy is idempotent: it can be called repeatedly with the same Prm.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	addr := state.CreateContractHash(act.Sender(), prm.NEF.Checksum, prm.Manifest.Name)
	log := prm.Logger.With(zap.Stringer("address", addr))

	_, err = prm.Blockchain.GetContractStateByHash(addr)
	switch {
	case err == nil:
		err = updateContract(ctx, log, act, addr, prm)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("update Olive contract: %w", err)
		}
	case isErrContractNotFound(err):
		log.Info("Olive contract is missing on the chain, deploying...")

		h, vub, err := management.New(act).Deploy(&prm.NEF, &prm.Manifest, nil)
		err = waitTx(ctx, act, h, vub, err)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("deploy Olive contract: %w", err)
		}

		log.Info("Olive contract successfully deployed", zap.Stringer("tx", h))
	default:
		return util.Uint160{}, fmt.Errorf("get Olive contract state: %w", err)
	}

	err = createTokens(ctx, log, act, addr, prm.Tokens)
	if err != nil {
		return util.Uint160{}, err
	}

	return addr, nil
}

func updateContract(ctx context.Context, log *zap.Logger, act *actor.Actor, addr util.Uint160, prm Prm) error {
	v, err := olive.NewReader(act, addr).Version()
	if err != nil {
		return fmt.Errorf("get on-chain version: %w", err)
	}

	if v.Cmp(big.NewInt(common.Version)) >= 0 {
		log.Info("Olive contract is already of the latest version",
			zap.Stringer("version", v))
		return nil
	}

	bNEF, err := prm.NEF.Bytes()
	if err != nil {
		return fmt.Errorf("encode NEF: %w", err)
	}

	jManifest, err := json.Marshal(prm.Manifest)
	if err != nil {
		return fmt.Errorf("encode manifest into JSON: %w", err)
	}

	log.Info("updating Olive contract...",
		zap.Stringer("from", v), zap.Int("to", common.Version))

	h, vub, err := olive.New(act, addr).Update(bNEF, jManifest, nil)
	err = waitTx(ctx, act, h, vub, err)
	if err != nil {
		return err
	}

	log.Info("Olive contract successfully updated", zap.Stringer("tx", h))

	return nil
}

func createTokens(ctx context.Context, log *zap.Logger, act *actor.Actor, addr util.Uint160, tokens []TokenPrm) error {
	reader := olive.NewReader(act, addr)
	contract := olive.New(act, addr)

	for i := range tokens {
		code, err := symbolCode(tokens[i].Symbol)
		if err != nil {
			return err
		}

		l := log.With(zap.String("symbol", tokens[i].Symbol))

		_, err = reader.GetStats(code)
		if err == nil {
			l.Debug("symbol already exists")
			continue
		}

		l.Info("symbol is missing, creating...")

		h, vub, err := contract.Create(tokens[i].Issuer, tokens[i].Symbol, tokens[i].MaxSupply)
		err = waitTx(ctx, act, h, vub, err)
		if err != nil {
			return fmt.Errorf("create symbol %s: %w", tokens[i].Symbol, err)
		}

		l.Info("symbol successfully created", zap.Stringer("tx", h))
	}

	return nil
}

// symbolCode returns code part of the "<precision>,<CODE>" symbol.
func symbolCode(symbol string) (string, error) {
	_, code, ok := strings.Cut(symbol, ",")
	if !ok || code == "" {
		return "", fmt.Errorf("invalid symbol %q", symbol)
	}
	return code, nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

type txWaiter interface {
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

// waitTx waits for the transaction sent with given result to be accepted
// and checks its execution state. waitTx aborts by context without waiting
// for the transaction further.
func waitTx(ctx context.Context, w txWaiter, h util.Uint256, vub uint32, err error) error {
	if err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}

	type waitRes struct {
		res *state.AppExecResult
		err error
	}

	ch := make(chan waitRes, 1)

	go func() {
		res, err := w.Wait(h, vub, nil)
		ch <- waitRes{res, err}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return fmt.Errorf("wait for transaction %s: %w", h.StringLE(), r.err)
		}
		if r.res.VMState != vmstate.Halt {
			return fmt.Errorf("transaction %s failed: %w", h.StringLE(), errors.New(r.res.FaultException))
		}
		return nil
	}
}
