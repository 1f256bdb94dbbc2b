package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestParseToken(t *testing.T) {
	issuer := address.Uint160ToString(util.Uint160{1, 2, 3})

	tok, err := parseToken(issuer + ":4,OLIVE:1000000000")
	require.NoError(t, err)
	require.Equal(t, util.Uint160{1, 2, 3}, tok.Issuer)
	require.Equal(t, "4,OLIVE", tok.Symbol)
	require.Equal(t, int64(1000000000), tok.MaxSupply.Int64())

	for _, s := range []string{
		"",
		issuer + ":4,OLIVE",
		"NotAnAddress:4,OLIVE:100",
		issuer + ":OLIVE:100",
		issuer + ":4,OLIVE:ten",
		issuer + ":4,OLIVE:0",
	} {
		_, err = parseToken(s)
		require.Error(t, err, s)
	}
}

func TestTokenList(t *testing.T) {
	issuer := address.Uint160ToString(util.Uint160{1, 2, 3})

	var l tokenList
	require.NoError(t, l.Set(issuer+":4,OLIVE:100"))
	require.NoError(t, l.Set(issuer+":0,CAP:5"))
	require.Error(t, l.Set("bad"))
	require.Len(t, l, 2)
	require.Equal(t, issuer+":4,OLIVE:100 "+issuer+":0,CAP:5", l.String())
}

func TestRun_Config(t *testing.T) {
	const endpoint = "http://localhost:30333"

	missing := filepath.Join(t.TempDir(), "missing")

	for name, cfg := range map[string]config{
		"no endpoint": {walletPath: "w.json", nefPath: "c.nef", manifestPath: "m.json"},
		"no wallet":   {rpcEndpoint: endpoint, nefPath: "c.nef", manifestPath: "m.json"},
		"no NEF":      {rpcEndpoint: endpoint, walletPath: "w.json", manifestPath: "m.json"},
		"no manifest": {rpcEndpoint: endpoint, walletPath: "w.json", nefPath: "c.nef"},
		"missing NEF": {rpcEndpoint: endpoint, walletPath: "w.json", nefPath: missing, manifestPath: missing},
	} {
		t.Run(name, func(t *testing.T) {
			require.Error(t, run(context.Background(), zaptest.NewLogger(t), cfg))
		})
	}
}

func TestReadContract(t *testing.T) {
	dir := t.TempDir()

	nefPath := filepath.Join(dir, "contract.nef")
	require.NoError(t, os.WriteFile(nefPath, []byte("not a NEF"), 0o600))

	_, _, err := readContract(nefPath, filepath.Join(dir, "manifest.json"))
	require.ErrorContains(t, err, "decode NEF file")

	_, _, err = readContract(filepath.Join(dir, "missing.nef"), filepath.Join(dir, "manifest.json"))
	require.ErrorContains(t, err, "read NEF file")
}
