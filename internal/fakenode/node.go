// Package fakenode 测试用的最小 eth JSON-RPC 节点（http）。
// 只响应 eth_blockNumber 和 paused / depositsPaused / activeVaultsList 的 eth_call，
// 没有预设结果的调用一律 revert。
package fakenode

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
)

var ErrReverted = errors.New("execution reverted")

var (
	boolOutput         = mustArguments("bool")
	addressArrayOutput = mustArguments("address[]")
)

func mustArguments(typ string) abi.Arguments {
	t, err := abi.NewType(typ, "", nil)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Type: t}}
}

// Selector 函数签名的 4 字节 selector，带 0x 前缀
func Selector(signature string) string {
	return hexutil.Encode(crypto.Keccak256([]byte(signature))[:4])
}

type answer struct {
	data []byte
	err  error
}

type Node struct {
	server *httptest.Server
	rpc    *rpc.Server

	mu          sync.Mutex
	blockNumber uint64
	blockErr    error
	answers     map[common.Address]map[string]answer
	calls       []string
}

func Start(blockNumber uint64) *Node {
	n := &Node{
		blockNumber: blockNumber,
		answers:     make(map[common.Address]map[string]answer),
		rpc:         rpc.NewServer(),
	}
	if err := n.rpc.RegisterName("eth", &ethService{node: n}); err != nil {
		panic(err)
	}
	n.server = httptest.NewServer(n.rpc)
	return n
}

func (n *Node) URL() string {
	return n.server.URL
}

func (n *Node) Close() {
	n.server.Close()
	n.rpc.Stop()
}

// FailBlockNumber 让 eth_blockNumber 返回 err
func (n *Node) FailBlockNumber(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.blockErr = err
}

func (n *Node) SetPaused(contract common.Address, paused bool) {
	n.setBool(contract, "paused()", paused)
}

func (n *Node) SetDepositsPaused(contract common.Address, paused bool) {
	n.setBool(contract, "depositsPaused()", paused)
}

func (n *Node) SetVaults(contract common.Address, vaults []common.Address) {
	data, err := addressArrayOutput.Pack(vaults)
	if err != nil {
		panic(err)
	}
	n.set(contract, "activeVaultsList()", answer{data: data})
}

// Fail 让 contract 上 signature 的调用返回 err
func (n *Node) Fail(contract common.Address, signature string, err error) {
	n.set(contract, signature, answer{err: err})
}

// Calls 按顺序返回收到的每个 eth_call，格式 "<address> <selector>"
func (n *Node) Calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.calls...)
}

func (n *Node) setBool(contract common.Address, signature string, v bool) {
	data, err := boolOutput.Pack(v)
	if err != nil {
		panic(err)
	}
	n.set(contract, signature, answer{data: data})
}

func (n *Node) set(contract common.Address, signature string, a answer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.answers[contract] == nil {
		n.answers[contract] = make(map[string]answer)
	}
	n.answers[contract][Selector(signature)] = a
}

type callArgs struct {
	From  *common.Address `json:"from"`
	To    *common.Address `json:"to"`
	Data  *hexutil.Bytes  `json:"data"`
	Input *hexutil.Bytes  `json:"input"`
}

func (a callArgs) payload() []byte {
	if a.Input != nil {
		return *a.Input
	}
	if a.Data != nil {
		return *a.Data
	}
	return nil
}

type ethService struct {
	node *Node
}

func (s *ethService) BlockNumber() (hexutil.Uint64, error) {
	s.node.mu.Lock()
	defer s.node.mu.Unlock()
	if s.node.blockErr != nil {
		return 0, s.node.blockErr
	}
	return hexutil.Uint64(s.node.blockNumber), nil
}

func (s *ethService) Call(_ context.Context, args callArgs, _ string) (hexutil.Bytes, error) {
	if args.To == nil {
		return nil, fmt.Errorf("missing call target")
	}
	payload := args.payload()
	if len(payload) < 4 {
		return nil, ErrReverted
	}
	sel := hexutil.Encode(payload[:4])

	s.node.mu.Lock()
	defer s.node.mu.Unlock()
	s.node.calls = append(s.node.calls, args.To.Hex()+" "+sel)
	a, ok := s.node.answers[*args.To][sel]
	if !ok {
		return nil, ErrReverted
	}
	if a.err != nil {
		return nil, a.err
	}
	return a.data, nil
}
