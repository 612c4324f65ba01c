package evmconn

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	ConnectError     = errors.New("connect error")
	UnreachableError = errors.New("rpc unreachable")
)

// connectError 可以用 errors.Is 匹配 ConnectError，Error() 只输出底层原因
type connectError struct {
	kinds []error
	cause error
}

func (e *connectError) Error() string {
	return e.cause.Error()
}

func (e *connectError) Unwrap() []error {
	return append(append([]error(nil), e.kinds...), e.cause)
}

// Client 单个 evm rpc 连接。
// 检查流程是串行的，所以不需要连接池。
type Client struct {
	rpcClient   *rpc.Client
	ethClient   *ethclient.Client
	blockNumber uint64
}

// Dial 建立连接并用 eth_blockNumber 确认节点可用。
// http 的 DialContext 不会真的发请求，不探测一次就无法知道节点是否可达。
func Dial(ctx context.Context, rawUrl string) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, rawUrl)
	if err != nil {
		return nil, &connectError{kinds: []error{ConnectError}, cause: err}
	}
	ethClient := ethclient.NewClient(rpcClient)
	blockNumber, err := ethClient.BlockNumber(ctx)
	if err != nil {
		rpcClient.Close()
		return nil, &connectError{kinds: []error{ConnectError, UnreachableError}, cause: err}
	}
	return &Client{
		rpcClient:   rpcClient,
		ethClient:   ethClient,
		blockNumber: blockNumber,
	}, nil
}

// BlockNumber 连接时节点的最新区块
func (c *Client) BlockNumber() uint64 {
	return c.blockNumber
}

func (c *Client) Call(f func(*ethclient.Client, *rpc.Client) error) error {
	return f(c.ethClient, c.rpcClient)
}

// CallContract 实现 ethereum.ContractCaller
func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var result []byte
	err := c.Call(func(ec *ethclient.Client, _ *rpc.Client) error {
		var err error
		result, err = ec.CallContract(ctx, msg, blockNumber)
		return err
	})
	return result, err
}

func (c *Client) Close() {
	c.rpcClient.Close()
}
