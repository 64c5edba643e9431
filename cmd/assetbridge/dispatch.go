package main

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/weisyn/assetbridge/internal/app"
	"github.com/weisyn/assetbridge/internal/core/psp22"
	"github.com/weisyn/assetbridge/internal/core/psp22/weight"
	"github.com/weisyn/assetbridge/pkg/utils"
)

var (
	dispatchCaller   string
	dispatchSelector string
	dispatchInput    string
	dispatchOutCap   uint32
	dispatchGas      uint64
)

// dispatchCmd 执行一次桥调用
var dispatchCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "对本地账本执行一次 PSP22 桥调用",
	Long: `以指定调用者执行一次桥调用，输入为 SCALE 编码的十六进制参数。

示例（查询资产 1 中账户余额）：
  assetbridge dispatch --caller 0x01...01 --selector 0x6568382f \
    --input 0x01000000<32字节账户>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := utils.ParseAccount(dispatchCaller)
		if err != nil {
			return err
		}
		selector, err := parseSelector(dispatchSelector)
		if err != nil {
			return err
		}
		input, err := parseHex(dispatchInput)
		if err != nil {
			return err
		}

		return withApp(func(a *app.App) error {
			bridgeOptions := a.Provider.GetBridge()
			gas := dispatchGas
			if !cmd.Flags().Changed("gas") {
				gas = bridgeOptions.DefaultGasLimit
			}
			outCap := dispatchOutCap
			if !cmd.Flags().Changed("out-cap") {
				outCap = bridgeOptions.MaxOutputSize
			}

			meter := weight.NewGasMeter(weight.Weight(gas))
			env := psp22.Environment{Caller: caller, Meter: meter, Ledger: a.Ledger}
			res := a.Dispatcher.Dispatch(context.Background(), env, selector, input, outCap)

			data := pterm.TableData{
				{"字段", "值"},
				{"选择器", psp22.Selector(selector).String()},
				{"状态码", fmt.Sprintf("%d (%s)", res.Status, psp22.GetErrorMessage(res.Status))},
				{"消耗权重", fmt.Sprintf("%d / %d", meter.Consumed(), meter.Limit())},
				{"输出", "0x" + hex.EncodeToString(res.Output)},
			}
			if res.Err != nil {
				data = append(data, []string{"失败原因", res.Err.Error()})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return err
			}
			if !res.OK() {
				return fmt.Errorf("桥调用失败: %s", psp22.GetErrorMessage(res.Status))
			}
			return nil
		})
	},
}

func init() {
	dispatchCmd.Flags().StringVar(&dispatchCaller, "caller", "", "调用者账户 (0x十六进制或SS58)")
	dispatchCmd.Flags().StringVar(&dispatchSelector, "selector", "", "32位选择器，如 0x6568382f")
	dispatchCmd.Flags().StringVar(&dispatchInput, "input", "", "SCALE 编码参数（十六进制）")
	dispatchCmd.Flags().Uint32Var(&dispatchOutCap, "out-cap", 0, "输出缓冲区容量 (默认取配置)")
	dispatchCmd.Flags().Uint64Var(&dispatchGas, "gas", 0, "权重预算 (默认取配置)")
	_ = dispatchCmd.MarkFlagRequired("caller")
	_ = dispatchCmd.MarkFlagRequired("selector")
}
