package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/olive-network/olive-contract/deploy"
	"go.uber.org/zap"
)

// passwordEnv names environment variable with the wallet account password.
const passwordEnv = "OLIVE_WALLET_PASSWORD"

type tokenList []deploy.TokenPrm

func (x *tokenList) String() string {
	ss := make([]string, len(*x))
	for i, t := range *x {
		ss[i] = address.Uint160ToString(t.Issuer) + ":" + t.Symbol + ":" + t.MaxSupply.String()
	}
	return strings.Join(ss, " ")
}

func (x *tokenList) Set(s string) error {
	t, err := parseToken(s)
	if err != nil {
		return err
	}
	*x = append(*x, t)
	return nil
}

type config struct {
	rpcEndpoint  string
	walletPath   string
	account      string
	password     string
	nefPath      string
	manifestPath string
	tokens       tokenList
}

func main() {
	var cfg config

	flag.StringVar(&cfg.rpcEndpoint, "rpc", "", "Network address of the Neo RPC server")
	flag.StringVar(&cfg.walletPath, "wallet", "", "Path to the wallet with committee account")
	flag.StringVar(&cfg.account, "account", "", "Address of the wallet account, default one is used if empty")
	flag.StringVar(&cfg.nefPath, "nef", "", "Path to the compiled Olive contract")
	flag.StringVar(&cfg.manifestPath, "manifest", "", "Path to the Olive contract manifest")
	flag.Var(&cfg.tokens, "token", "Symbol to create in ISSUER:PRECISION,CODE:MAX_SUPPLY format, can be repeated")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	cfg.password = os.Getenv(passwordEnv)

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err = run(ctx, log, cfg)
	cancel()
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
	case cfg.walletPath == "":
		return errors.New("missing wallet")
	case cfg.nefPath == "":
		return errors.New("missing NEF file")
	case cfg.manifestPath == "":
		return errors.New("missing manifest file")
	}

	nefFile, m, err := readContract(cfg.nefPath, cfg.manifestPath)
	if err != nil {
		return fmt.Errorf("read contract: %w", err)
	}

	acc, err := openAccount(cfg.walletPath, cfg.account, cfg.password)
	if err != nil {
		return fmt.Errorf("open wallet account: %w", err)
	}

	c, err := rpcclient.New(ctx, cfg.rpcEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("RPC client dial: %w", err)
	}
	defer c.Close()

	err = c.Init()
	if err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}

	addr, err := deploy.Deploy(ctx, deploy.Prm{
		Logger:       log,
		Blockchain:   c,
		LocalAccount: acc,
		NEF:          nefFile,
		Manifest:     m,
		Tokens:       cfg.tokens,
	})
	if err != nil {
		return fmt.Errorf("deploy Olive contract: %w", err)
	}

	fmt.Println(addr.StringLE())

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.Encoding = "console"
	if debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return c.Build()
}

// parseToken parses ISSUER:PRECISION,CODE:MAX_SUPPLY string.
func parseToken(s string) (deploy.TokenPrm, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return deploy.TokenPrm{}, fmt.Errorf("invalid token %q, expected ISSUER:PRECISION,CODE:MAX_SUPPLY", s)
	}

	issuer, err := address.StringToUint160(parts[0])
	if err != nil {
		return deploy.TokenPrm{}, fmt.Errorf("invalid issuer address: %w", err)
	}

	if !strings.Contains(parts[1], ",") {
		return deploy.TokenPrm{}, fmt.Errorf("invalid symbol %q", parts[1])
	}

	maxSupply, ok := new(big.Int).SetString(parts[2], 10)
	if !ok || maxSupply.Sign() <= 0 {
		return deploy.TokenPrm{}, fmt.Errorf("invalid max supply %q", parts[2])
	}

	return deploy.TokenPrm{
		Issuer:    issuer,
		Symbol:    parts[1],
		MaxSupply: maxSupply,
	}, nil
}

func openAccount(walletPath, accountStr, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("read wallet: %w", err)
	}
	defer w.Close()

	var acc *wallet.Account
	if accountStr == "" {
		if len(w.Accounts) == 0 {
			return nil, errors.New("wallet has no accounts")
		}
		acc = w.Accounts[0]
	} else {
		h, err := address.StringToUint160(accountStr)
		if err != nil {
			return nil, fmt.Errorf("invalid account address: %w", err)
		}
		acc = w.GetAccount(h)
		if acc == nil {
			return nil, fmt.Errorf("account %s is missing in the wallet", accountStr)
		}
	}

	err = acc.Decrypt(password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}

	return acc, nil
}

func readContract(nefPath, manifestPath string) (nef.File, manifest.Manifest, error) {
	var m manifest.Manifest

	b, err := os.ReadFile(nefPath)
	if err != nil {
		return nef.File{}, m, fmt.Errorf("read NEF file: %w", err)
	}

	f, err := nef.FileFromBytes(b)
	if err != nil {
		return nef.File{}, m, fmt.Errorf("decode NEF file: %w", err)
	}

	b, err = os.ReadFile(manifestPath)
	if err != nil {
		return nef.File{}, m, fmt.Errorf("read manifest file: %w", err)
	}

	err = json.Unmarshal(b, &m)
	if err != nil {
		return nef.File{}, m, fmt.Errorf("decode manifest: %w", err)
	}

	return f, m, nil
}
