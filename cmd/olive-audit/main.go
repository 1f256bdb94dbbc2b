package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/olive-network/olive-contract/reconcile"
	"github.com/olive-network/olive-contract/rpc/olive"
	"go.uber.org/zap"
)

// maxSymbols limits the number of symbols listed in a single invocation.
const maxSymbols = 1024

type config struct {
	rpcEndpoint string
	contract    string
	account     string
	symbol      string
}

func main() {
	var cfg config

	flag.StringVar(&cfg.rpcEndpoint, "rpc", "", "Network address of the Neo RPC server")
	flag.StringVar(&cfg.contract, "contract", "", "Olive contract script hash (LE) or address")
	flag.StringVar(&cfg.account, "account", "", "Address of the account to show instead of the storage audit")
	flag.StringVar(&cfg.symbol, "symbol", "", "Symbol code of the account records, required with -account")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = run(context.Background(), log, cfg)
	_ = log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *zap.Logger, cfg config) error {
	switch {
	case cfg.rpcEndpoint == "":
		return errors.New("missing Neo RPC endpoint")
	case cfg.contract == "":
		return errors.New("missing Olive contract")
	case cfg.account != "" && cfg.symbol == "":
		return errors.New("missing symbol code of the account")
	}

	contract, err := parseHash(cfg.contract)
	if err != nil {
		return fmt.Errorf("invalid contract: %w", err)
	}

	var acc util.Uint160
	if cfg.account != "" {
		acc, err = address.StringToUint160(cfg.account)
		if err != nil {
			return fmt.Errorf("invalid account address: %w", err)
		}
	}

	b, err := newRemoteBlockChain(ctx, cfg.rpcEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}
	defer b.close()

	log.Info("connected to the blockchain",
		zap.String("endpoint", cfg.rpcEndpoint),
		zap.Uint32("height", b.currentBlock))

	reader := olive.NewReader(b.actor, contract)

	if cfg.account != "" {
		err = showAccount(log, reader, acc, cfg.symbol)
		if err != nil {
			return fmt.Errorf("account lookup failed: %w", err)
		}
		return nil
	}

	err = audit(log, b, reader, contract)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	log.Info("Olive contract storage is consistent")

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

// parseHash accepts both Neo address and little-endian script hash.
func parseHash(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	h, err2 := util.Uint160DecodeStringLE(s)
	if err2 != nil {
		return util.Uint160{}, fmt.Errorf("neither address (%v) nor script hash (%w)", err, err2)
	}

	return h, nil
}

var errViolations = errors.New("invariant violations found")

func audit(log *zap.Logger, b *remoteBlockchain, reader *olive.ContractReader, contract util.Uint160) error {
	snap := reconcile.NewSnapshot()

	err := b.iterateContractStorage(contract, snap.Add)
	if err != nil {
		return fmt.Errorf("read contract storage: %w", err)
	}

	violations := reconcile.Check(snap, log)

	listed, err := reader.ListSymbolsExpanded(maxSymbols)
	if err != nil {
		return fmt.Errorf("list symbols: %w", err)
	}

	for i := range listed {
		code, err := listed[i].TryBytes()
		if err != nil {
			return fmt.Errorf("symbol #%d: %w", i, err)
		}

		st, ok := snap.Stats[string(code)]
		if !ok {
			log.Info("symbol registered after the audited block", zap.ByteString("symbol", code))
			continue
		}

		log.Info("symbol",
			zap.ByteString("symbol", code),
			zap.Stringer("issuer", st.Issuer),
			zap.Stringer("supply", st.Supply),
			zap.Stringer("max supply", st.MaxSupply),
			zap.Int("accounts", len(snap.Balances[string(code)])),
			zap.Int("persons", len(snap.Persons[string(code)])))
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %d", errViolations, len(violations))
	}

	return nil
}

func showAccount(log *zap.Logger, reader *olive.ContractReader, acc util.Uint160, code string) error {
	balance, err := reader.GetBalance(acc, code)
	if err != nil {
		return fmt.Errorf("get balance: %w", err)
	}

	fields := []zap.Field{
		zap.String("address", address.Uint160ToString(acc)),
		zap.String("symbol", code),
		zap.Stringer("balance", balance),
	}

	p, err := reader.GetPerson(acc, code)
	if err != nil {
		log.Debug("no person record", zap.Error(err))
		log.Info("account", fields...)
		return nil
	}

	log.Info("account", append(fields,
		zap.Stringer("score", p.Score),
		zap.Stringer("last claim day", p.LastClaimDay),
		zap.String("proof-of-personhood", p.ProofOfPersonhood))...)

	return nil
}
