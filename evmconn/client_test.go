package evmconn

import (
	"context"
	"errors"
	"testing"

	"contract-state-checker/internal/fakenode"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDial(t *testing.T) {
	node := fakenode.Start(1234)
	defer node.Close()

	client, err := Dial(context.Background(), node.URL())
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, uint64(1234), client.BlockNumber())
	assert.Empty(t, node.Calls())
}

func TestDial_Unreachable(t *testing.T) {
	node := fakenode.Start(1)
	node.FailBlockNumber(errors.New("node is syncing"))
	defer node.Close()

	_, err := Dial(context.Background(), node.URL())
	require.Error(t, err)
	assert.ErrorIs(t, err, ConnectError)
	assert.ErrorIs(t, err, UnreachableError)
	assert.Contains(t, err.Error(), "node is syncing")
	assert.NotContains(t, err.Error(), ConnectError.Error())
}

func TestDial_BadURL(t *testing.T) {
	_, err := Dial(context.Background(), "ftp://testnet-rpc.invalid")
	require.Error(t, err)
	assert.ErrorIs(t, err, ConnectError)
	assert.NotErrorIs(t, err, UnreachableError)
	assert.Contains(t, err.Error(), "ftp")
	assert.NotContains(t, err.Error(), ConnectError.Error())
}

func TestCallContract(t *testing.T) {
	pool := common.HexToAddress("0xC2c7c8E1325Ec049302F225c8A0151E561F446Ed")
	node := fakenode.Start(7)
	node.SetPaused(pool, true)
	defer node.Close()

	client, err := Dial(context.Background(), node.URL())
	require.NoError(t, err)
	defer client.Close()

	var caller ethereum.ContractCaller = client
	data, err := caller.CallContract(context.Background(), ethereum.CallMsg{
		To:   &pool,
		Data: hexutil.MustDecode(fakenode.Selector("paused()")),
	}, nil)
	require.NoError(t, err)
	require.Len(t, data, 32)
	assert.Equal(t, byte(1), data[31])

	_, err = caller.CallContract(context.Background(), ethereum.CallMsg{
		To:   &pool,
		Data: hexutil.MustDecode(fakenode.Selector("depositsPaused()")),
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fakenode.ErrReverted.Error())
	assert.NotErrorIs(t, err, ConnectError)

	assert.Equal(t, []string{
		pool.Hex() + " " + fakenode.Selector("paused()"),
		pool.Hex() + " " + fakenode.Selector("depositsPaused()"),
	}, node.Calls())
}

func TestCall(t *testing.T) {
	node := fakenode.Start(99)
	defer node.Close()

	client, err := Dial(context.Background(), node.URL())
	require.NoError(t, err)
	defer client.Close()

	var latest uint64
	err = client.Call(func(ec *ethclient.Client, rc *rpc.Client) error {
		require.NotNil(t, rc)
		var err error
		latest, err = ec.BlockNumber(context.Background())
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(99), latest)
}
