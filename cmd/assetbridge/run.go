package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/weisyn/assetbridge/internal/app"
	"github.com/weisyn/assetbridge/internal/core/psp22"
	"github.com/weisyn/assetbridge/internal/core/psp22/weight"
	"github.com/weisyn/assetbridge/pkg/utils"
)

var (
	runWasm   string
	runExport string
	runCaller string
	runGas    uint64
)

// runCmd 通过宿主绑定执行客户端合约
var runCmd = &cobra.Command{
	Use:   "run [参数...]",
	Short: "在沙箱中执行 WASM 客户端的导出函数",
	Long: `加载 WASM 模块并调用其导出函数，客户端可通过 env.psp22_call 访问本地账本。

参数按 i32/i64 原始数值传入。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := os.ReadFile(runWasm)
		if err != nil {
			return fmt.Errorf("读取WASM文件失败: %w", err)
		}
		caller, err := utils.ParseAccount(runCaller)
		if err != nil {
			return err
		}
		params := make([]uint64, 0, len(args))
		for _, arg := range args {
			v, err := strconv.ParseUint(arg, 0, 64)
			if err != nil {
				return fmt.Errorf("解析参数 %q 失败: %w", arg, err)
			}
			params = append(params, v)
		}

		return withApp(func(a *app.App) error {
			gas := runGas
			if !cmd.Flags().Changed("gas") {
				gas = a.Provider.GetBridge().DefaultGasLimit
			}
			meter := weight.NewGasMeter(weight.Weight(gas))
			env := psp22.Environment{Caller: caller, Meter: meter, Ledger: a.Ledger}

			results, err := a.Runtime.Invoke(context.Background(), code, runExport, env, params...)
			if err != nil {
				return err
			}

			data := pterm.TableData{{"序号", "返回值"}}
			for i, r := range results {
				data = append(data, []string{strconv.Itoa(i), strconv.FormatUint(r, 10)})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return err
			}
			pterm.Info.Printfln("消耗权重: %d / %d", meter.Consumed(), meter.Limit())
			return nil
		})
	},
}

func init() {
	runCmd.Flags().StringVar(&runWasm, "wasm", "", "WASM 文件路径")
	runCmd.Flags().StringVar(&runExport, "export", "call", "导出函数名")
	runCmd.Flags().StringVar(&runCaller, "caller", "", "调用者账户 (0x十六进制或SS58)")
	runCmd.Flags().Uint64Var(&runGas, "gas", 0, "权重预算 (默认取配置)")
	_ = runCmd.MarkFlagRequired("wasm")
	_ = runCmd.MarkFlagRequired("caller")
}
