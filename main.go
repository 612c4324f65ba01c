package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"contract-state-checker/core"
	"contract-state-checker/display"
	"contract-state-checker/evmconn"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd 参数和 flag 一律忽略，退出码只取决于能否连上节点
var rootCmd = &cobra.Command{
	Use:                "contract-state-checker",
	Short:              "Check whether KhipuVault deposits are currently possible",
	Long:               "Reads the pause flags of IndividualPool, CooperativePool and YieldAggregator plus the configured vaults on Mezo Testnet, and prints a readiness summary",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		return run(cmd.Context(), loadConfig(), cmd.OutOrStdout(), logger)
	},
}

var loadConfig = core.DefaultConfig

// run 只有连接失败时返回 error，发现问题时仍正常退出
func run(ctx context.Context, cfg core.Config, stdout io.Writer, logger logrus.FieldLogger) error {
	display.PrintBanner(stdout, cfg.Network)

	client, err := evmconn.Dial(ctx, cfg.Network.Rpc)
	if err != nil {
		if errors.Is(err, evmconn.UnreachableError) {
			logger.WithError(err).Errorf("%s RPC did not answer eth_blockNumber", cfg.Network.Name)
			display.PrintConnectFailed(stdout, cfg.Network)
		} else {
			display.PrintConnectionError(stdout, err)
		}
		return err
	}
	defer client.Close()

	checker := core.NewChecker(client, logger)
	report := core.Inspect(ctx, checker, cfg, client.BlockNumber())
	display.PrintReport(stdout, report)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// 连接错误已经输出到 stdout
		if !errors.Is(err, evmconn.ConnectError) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
