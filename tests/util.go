package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	olivePath = "../contracts/olive"

	msPerDay = 24 * 60 * 60 * 1000
)

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func deployOliveContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, olivePath,
		path.Join(olivePath, "config.yml"))

	e.DeployContract(t, c, nil)
	return c.Hash
}

func newOliveInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployOliveContract(t, e)
	return e.CommitteeInvoker(h)
}

// currentDay returns the day number the next transaction is executed at.
func currentDay(t *testing.T, e *neotest.Executor) int64 {
	return int64((e.TopBlock(t).Timestamp + 1) / msPerDay)
}

// skipDays moves the chain clock to the middle of the day n days later.
func skipDays(t *testing.T, e *neotest.Executor, n int64) {
	require.Positive(t, n)

	target := currentDay(t, e) + n

	b := e.NewUnsignedBlock(t)
	b.Timestamp = uint64(target*msPerDay + msPerDay/2)
	e.SignBlock(b)
	require.NoError(t, e.Chain.AddBlock(b))
}

func testInvokeInt(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) int64 {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	return s.Pop().BigInt().Int64()
}

// events returns parameters of notifications with the given name in order
// of emission.
func events(t *testing.T, e *neotest.Executor, h util.Uint256, name string) [][]stackitem.Item {
	aer := e.GetTxExecResult(t, h)

	var res [][]stackitem.Item
	for _, ev := range aer.Events {
		if ev.Name == name {
			res = append(res, ev.Item.Value().([]stackitem.Item))
		}
	}
	return res
}

// eventNames returns names of all notifications of the transaction.
func eventNames(t *testing.T, e *neotest.Executor, h util.Uint256) []string {
	aer := e.GetTxExecResult(t, h)

	res := make([]string, 0, len(aer.Events))
	for _, ev := range aer.Events {
		res = append(res, ev.Name)
	}
	return res
}

func requireItemInt(t *testing.T, expected int64, item stackitem.Item) {
	n, err := item.TryInteger()
	require.NoError(t, err)
	require.Equal(t, expected, n.Int64())
}

func requireItemBytes(t *testing.T, expected []byte, item stackitem.Item) {
	b, err := item.TryBytes()
	require.NoError(t, err)
	require.Equal(t, expected, b)
}

func requireItemString(t *testing.T, expected string, item stackitem.Item) {
	requireItemBytes(t, []byte(expected), item)
}
