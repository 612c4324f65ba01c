package core

import "context"

const (
	IssueIndividualPoolPaused  = "IndividualPool is paused"
	IssueAggregatorPaused      = "YieldAggregator is paused"
	IssueAggregatorDepositsOff = "YieldAggregator deposits are paused"
	IssueNoVaults              = "No vaults configured in YieldAggregator"
)

type Verdict struct {
	CanDeposit bool
	Issues     []string
}

// Report 一次检查的全部结果，交给 display 输出
type Report struct {
	Network         Network
	BlockNumber     uint64
	IndividualPool  PauseStatus
	CooperativePool PauseStatus
	Aggregator      *AggregatorState
	Verdict         Verdict
}

// Evaluate 根据检查结果判断当前能否存款。
// CooperativePool 的状态只用于展示，不参与判断；aggregator 为 nil 时不产生 aggregator 相关问题。
// 状态未知的 IndividualPool 不算暂停。
func Evaluate(individualPool, cooperativePool PauseStatus, aggregator *AggregatorState) Verdict {
	v := Verdict{CanDeposit: true}
	block := func(issue string) {
		v.CanDeposit = false
		v.Issues = append(v.Issues, issue)
	}

	if individualPool == PausePaused {
		block(IssueIndividualPoolPaused)
	}

	if aggregator != nil {
		if aggregator.Paused {
			block(IssueAggregatorPaused)
		}
		if aggregator.DepositsPaused {
			block(IssueAggregatorDepositsOff)
		}
		if aggregator.VaultCount == 0 {
			block(IssueNoVaults)
		}
	}
	return v
}

// Inspect 顺序执行全部检查：IndividualPool、CooperativePool、YieldAggregator
func Inspect(ctx context.Context, checker *Checker, cfg Config, blockNumber uint64) Report {
	r := Report{
		Network:     cfg.Network,
		BlockNumber: blockNumber,
	}
	r.IndividualPool = checker.CheckPaused(ctx, cfg.IndividualPool())
	r.CooperativePool = checker.CheckPaused(ctx, cfg.CooperativePool())
	r.Aggregator = checker.InspectAggregator(ctx, cfg.YieldAggregator())
	r.Verdict = Evaluate(r.IndividualPool, r.CooperativePool, r.Aggregator)
	return r
}
