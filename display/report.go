package display

import (
	"fmt"
	"io"
	"strings"

	"contract-state-checker/core"

	"github.com/fatih/color"
)

var (
	heavyLine = strings.Repeat("=", 60)
	lightLine = strings.Repeat("-", 60)

	red    = color.New(color.FgHiRed).SprintFunc()
	green  = color.New(color.FgHiGreen).SprintFunc()
	yellow = color.New(color.FgHiYellow).SprintFunc()
)

func PrintBanner(w io.Writer, network core.Network) {
	fmt.Fprintln(w, heavyLine)
	fmt.Fprintln(w, "🔍 Contract State Checker - KhipuVault")
	fmt.Fprintln(w, heavyLine)
	fmt.Fprintf(w, "Network: %s (Chain ID: %d)\n", network.Name, network.ChainId)
	fmt.Fprintf(w, "RPC: %s\n", network.Rpc)
	fmt.Fprintln(w)
}

// PrintConnectFailed 节点探测失败（eth_blockNumber 无响应）
func PrintConnectFailed(w io.Writer, network core.Network) {
	fmt.Fprintln(w, red(fmt.Sprintf("❌ Failed to connect to %s RPC", network.Name)))
}

func PrintConnectionError(w io.Writer, err error) {
	fmt.Fprintln(w, red(fmt.Sprintf("❌ Connection error: %v", err)))
}

// PrintReport 输出连接成功之后的全部内容
func PrintReport(w io.Writer, r core.Report) {
	fmt.Fprintln(w, green(fmt.Sprintf("✓ Connected to %s (Block: %d)", r.Network.Name, r.BlockNumber)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Contract Status:")
	fmt.Fprintln(w, lightLine)
	printPoolStatus(w, "IndividualPool", r.IndividualPool)
	printPoolStatus(w, "CooperativePool", r.CooperativePool)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "YieldAggregator Details:")
	fmt.Fprintln(w, lightLine)
	if r.Aggregator != nil {
		printAggregator(w, r.Aggregator)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, heavyLine)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintln(w, lightLine)
	printVerdict(w, r.Verdict)
	fmt.Fprintln(w, heavyLine)
}

func printPoolStatus(w io.Writer, name string, status core.PauseStatus) {
	if status == core.PauseUnknown {
		fmt.Fprintln(w, yellow(fmt.Sprintf("❓ %s: Status unknown", name)))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", name, pausedMarker(status == core.PausePaused, "ACTIVE"))
}

func printAggregator(w io.Writer, state *core.AggregatorState) {
	fmt.Fprintf(w, "  Status: %s\n", pausedMarker(state.Paused, "ACTIVE"))
	fmt.Fprintf(w, "  Deposits: %s\n", pausedMarker(state.DepositsPaused, "ENABLED"))
	fmt.Fprintf(w, "  Configured Vaults: %d\n", state.VaultCount)

	if state.VaultCount == 0 {
		fmt.Fprintln(w, yellow("  ⚠️  WARNING: No vaults configured!"))
		return
	}
	fmt.Fprintln(w, "  Vaults:")
	for _, vault := range state.Vaults {
		fmt.Fprintf(w, "    - %s\n", vault.Hex())
	}
}

func printVerdict(w io.Writer, v core.Verdict) {
	if v.CanDeposit {
		fmt.Fprintln(w, green("✅ All checks passed - Deposits should work!"))
		return
	}
	fmt.Fprintln(w, yellow("⚠️  Issues found preventing deposits:"))
	for _, issue := range v.Issues {
		fmt.Fprintf(w, "  %s\n", red("❌ "+issue))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To fix:")
	fmt.Fprintln(w, "  1. Run: bash scripts/unpause-contracts.sh")
	fmt.Fprintln(w, "  2. Ensure DEPLOYER_PRIVATE_KEY environment variable is set")
	fmt.Fprintln(w, "  3. Ensure MEZO_TESTNET_RPC environment variable is set (optional)")
}

func pausedMarker(paused bool, okLabel string) string {
	if paused {
		return red("🔴 PAUSED")
	}
	return green("🟢 " + okLabel)
}
