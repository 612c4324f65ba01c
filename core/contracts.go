package core

import (
	"bytes"
	"context"
	_ "embed"
	"errors"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const (
	methodPaused           = "paused"
	methodDepositsPaused   = "depositsPaused"
	methodActiveVaultsList = "activeVaultsList"
)

var (
	//go:embed abi/pausable.json
	pausableAbiJson []byte
	//go:embed abi/yield_aggregator.json
	yieldAggregatorAbiJson []byte

	pausableAbi        *abi.ABI
	yieldAggregatorAbi *abi.ABI
)

func init() {
	initAbi(&pausableAbi, pausableAbiJson)
	initAbi(&yieldAggregatorAbi, yieldAggregatorAbiJson)
}

func initAbi(a **abi.ABI, data []byte) {
	tmpAbi, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		panic(err)
	}
	*a = &tmpAbi
}

type baseContract struct {
	Address common.Address
	Abi     *abi.ABI
}

// call 只读调用，在 latest 区块上执行
func (c *baseContract) call(ctx context.Context, caller ethereum.ContractCaller, out interface{}, methodName string) error {
	msg, err := packInput(c.Abi, common.Address{}, c.Address, methodName)
	if err != nil {
		return err
	}
	resData, err := caller.CallContract(ctx, msg, nil)
	if err != nil {
		return err
	}
	return unpackOutput(out, c.Abi, methodName, resData)
}

// PausableContract IndividualPool / CooperativePool
type PausableContract struct {
	baseContract
}

func newPausableContract(address common.Address) *PausableContract {
	return &PausableContract{
		baseContract{
			Address: address,
			Abi:     pausableAbi,
		},
	}
}

func (c *PausableContract) Paused(ctx context.Context, caller ethereum.ContractCaller) (bool, error) {
	var paused bool
	err := c.call(ctx, caller, &paused, methodPaused)
	return paused, err
}

type YieldAggregatorContract struct {
	baseContract
}

func newYieldAggregatorContract(address common.Address) *YieldAggregatorContract {
	return &YieldAggregatorContract{
		baseContract{
			Address: address,
			Abi:     yieldAggregatorAbi,
		},
	}
}

func (c *YieldAggregatorContract) Paused(ctx context.Context, caller ethereum.ContractCaller) (bool, error) {
	var paused bool
	err := c.call(ctx, caller, &paused, methodPaused)
	return paused, err
}

func (c *YieldAggregatorContract) DepositsPaused(ctx context.Context, caller ethereum.ContractCaller) (bool, error) {
	var paused bool
	err := c.call(ctx, caller, &paused, methodDepositsPaused)
	return paused, err
}

func (c *YieldAggregatorContract) ActiveVaultsList(ctx context.Context, caller ethereum.ContractCaller) ([]common.Address, error) {
	var vaults []common.Address
	err := c.call(ctx, caller, &vaults, methodActiveVaultsList)
	return vaults, err
}

func packInput(pabi *abi.ABI, from, to common.Address, methodName string, args ...interface{}) (ethereum.CallMsg, error) {
	inputParams, err := pabi.Pack(methodName, args...)
	if err != nil {
		return ethereum.CallMsg{}, err
	}
	return ethereum.CallMsg{From: from, To: &to, Data: inputParams}, nil
}

func unpackOutput(out interface{}, pabi *abi.ABI, methodName string, data []byte) error {
	method, ok := pabi.Methods[methodName]
	if !ok {
		return errors.New("not found method:" + methodName)
	}
	a, err := method.Outputs.Unpack(data)
	if err != nil {
		return err
	}
	return method.Outputs.Copy(out, a)
}
