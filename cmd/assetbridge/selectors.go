package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/weisyn/assetbridge/internal/core/psp22"
)

// selectorsCmd 打印选择器路由表
var selectorsCmd = &cobra.Command{
	Use:   "selectors",
	Short: "显示 PSP22 选择器路由表",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := loadProvider()
		if err != nil {
			return err
		}
		schedule := psp22.ScheduleFromOptions(provider.GetBridge())

		data := pterm.TableData{{"选择器", "操作", "变更", "预扣权重", "状态"}}
		for _, r := range psp22.Routes() {
			mutating, charge, status := "否", "-", "可用"
			if r.Mutating {
				mutating = "是"
				charge = fmt.Sprintf("%d", schedule.Charge(r.Class))
			}
			if !r.Implemented {
				status = "未实现"
				charge = "-"
			}
			data = append(data, []string{r.Selector.String(), r.Operation.String(), mutating, charge, status})
		}
		return pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Render()
	},
}
