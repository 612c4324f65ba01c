package core

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
)

type PauseStatus int

const (
	PauseUnknown PauseStatus = iota
	PauseActive
	PausePaused
)

func pauseStatusOf(paused bool) PauseStatus {
	if paused {
		return PausePaused
	}
	return PauseActive
}

func (s PauseStatus) String() string {
	switch s {
	case PauseActive:
		return "ACTIVE"
	case PausePaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// AggregatorState YieldAggregator 的一次完整读取结果
type AggregatorState struct {
	Paused         bool
	DepositsPaused bool
	VaultCount     int
	Vaults         []common.Address
}

// Checker 对合约做只读检查，单个调用失败不会中断后续检查
type Checker struct {
	caller ethereum.ContractCaller
	logger logrus.FieldLogger
}

func NewChecker(caller ethereum.ContractCaller, logger logrus.FieldLogger) *Checker {
	return &Checker{
		caller: caller,
		logger: logger,
	}
}

// CheckPaused 调用 paused()，失败时记录错误并返回 PauseUnknown
func (c *Checker) CheckPaused(ctx context.Context, ref ContractRef) PauseStatus {
	paused, err := newPausableContract(ref.Address).Paused(ctx, c.caller)
	if err != nil {
		c.logFailure(ref, err)
		return PauseUnknown
	}
	return pauseStatusOf(paused)
}

// InspectAggregator 依次调用 paused / depositsPaused / activeVaultsList。
// 任意一步失败都视为整体失败，返回 nil，不返回部分结果。
func (c *Checker) InspectAggregator(ctx context.Context, ref ContractRef) *AggregatorState {
	state, err := c.inspectAggregator(ctx, ref)
	if err != nil {
		c.logFailure(ref, err)
		return nil
	}
	return state
}

func (c *Checker) inspectAggregator(ctx context.Context, ref ContractRef) (*AggregatorState, error) {
	contract := newYieldAggregatorContract(ref.Address)
	paused, err := contract.Paused(ctx, c.caller)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPaused, err)
	}
	depositsPaused, err := contract.DepositsPaused(ctx, c.caller)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDepositsPaused, err)
	}
	vaults, err := contract.ActiveVaultsList(ctx, c.caller)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodActiveVaultsList, err)
	}
	return &AggregatorState{
		Paused:         paused,
		DepositsPaused: depositsPaused,
		VaultCount:     len(vaults),
		Vaults:         vaults,
	}, nil
}

func (c *Checker) logFailure(ref ContractRef, err error) {
	c.logger.WithFields(logrus.Fields{
		"contract": ref.Name,
		"address":  ref.Address.Hex(),
	}).WithError(err).Errorf("Error checking %s", ref.Name)
}
