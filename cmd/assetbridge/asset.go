package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/weisyn/assetbridge/internal/app"
	"github.com/weisyn/assetbridge/internal/core/ledger"
	"github.com/weisyn/assetbridge/pkg/types"
	"github.com/weisyn/assetbridge/pkg/utils"
)

var (
	assetID         uint32
	assetName       string
	assetSymbol     string
	assetDecimals   uint8
	assetMinBalance string
	assetTo         string
	assetAmount     string
	assetAccount    string
)

// assetCmd 资产管理命令
var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "参考账本资产管理",
	Long:  "在本地 BadgerDB 账本中创建、铸造与查询资产",
}

// assetCreateCmd 创建资产
var assetCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "创建资产",
	Long: `创建新资产并设置元数据。

示例：
  assetbridge asset create --id 1 --name "Bridge Dot" --symbol BDOT --decimals 10 --min-balance 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		minBalance, err := parseAmount(assetMinBalance)
		if err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			meta := ledger.Metadata{
				Name:       []byte(assetName),
				Symbol:     []byte(assetSymbol),
				Decimals:   assetDecimals,
				MinBalance: minBalance,
			}
			if err := a.Ledger.CreateAsset(context.Background(), types.AssetID(assetID), meta); err != nil {
				return err
			}
			pterm.Success.Printfln("资产 %d (%s) 已创建", assetID, assetSymbol)
			return nil
		})
	},
}

// assetMintCmd 铸造资产
var assetMintCmd = &cobra.Command{
	Use:   "mint",
	Short: "铸造资产到指定账户",
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := utils.ParseAccount(assetTo)
		if err != nil {
			return err
		}
		amount, err := parseAmount(assetAmount)
		if err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			if err := a.Ledger.Mint(context.Background(), types.AssetID(assetID), to, amount); err != nil {
				return err
			}
			pterm.Success.Printfln("已向 %s 铸造 %s", to, amount)
			return nil
		})
	},
}

// assetInfoCmd 查询资产
var assetInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "查询资产元数据、总供应量与账户余额",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			account    types.AccountID
			hasAccount bool
		)
		if assetAccount != "" {
			parsed, err := utils.ParseAccount(assetAccount)
			if err != nil {
				return err
			}
			account, hasAccount = parsed, true
		}

		return withApp(func(a *app.App) error {
			ctx := context.Background()
			id := types.AssetID(assetID)
			meta, found, err := a.Ledger.Metadata(ctx, id)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: %d", ledger.ErrUnknownAsset, id)
			}
			supply, err := a.Ledger.TotalSupply(ctx, id)
			if err != nil {
				return err
			}

			data := pterm.TableData{
				{"字段", "值"},
				{"ID", fmt.Sprintf("%d", id)},
				{"名称", string(meta.Name)},
				{"符号", string(meta.Symbol)},
				{"精度", fmt.Sprintf("%d", meta.Decimals)},
				{"最小余额", meta.MinBalance.String()},
				{"总供应量", supply.String()},
			}
			if hasAccount {
				balance, err := a.Ledger.Balance(ctx, id, account)
				if err != nil {
					return err
				}
				data = append(data, []string{"余额 " + account.String(), balance.String()})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		})
	},
}

// assetListCmd 列出资产
var assetListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出全部资产",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			infos, err := a.Ledger.Assets(context.Background())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				pterm.Info.Println("账本中没有资产")
				return nil
			}
			data := pterm.TableData{{"ID", "符号", "名称", "精度", "总供应量"}}
			for _, info := range infos {
				data = append(data, []string{
					fmt.Sprintf("%d", info.ID),
					string(info.Metadata.Symbol),
					string(info.Metadata.Name),
					fmt.Sprintf("%d", info.Metadata.Decimals),
					info.TotalSupply.String(),
				})
			}
			return pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Render()
		})
	},
}

func init() {
	assetCmd.PersistentFlags().Uint32Var(&assetID, "id", 0, "资产ID")

	assetCreateCmd.Flags().StringVar(&assetName, "name", "", "资产名称")
	assetCreateCmd.Flags().StringVar(&assetSymbol, "symbol", "", "资产符号")
	assetCreateCmd.Flags().Uint8Var(&assetDecimals, "decimals", 0, "精度")
	assetCreateCmd.Flags().StringVar(&assetMinBalance, "min-balance", "1", "最小余额")

	assetMintCmd.Flags().StringVar(&assetTo, "to", "", "接收账户 (0x十六进制或SS58)")
	assetMintCmd.Flags().StringVar(&assetAmount, "amount", "", "铸造数量")
	_ = assetMintCmd.MarkFlagRequired("to")
	_ = assetMintCmd.MarkFlagRequired("amount")

	assetInfoCmd.Flags().StringVar(&assetAccount, "account", "", "同时查询该账户余额")

	assetCmd.AddCommand(assetCreateCmd)
	assetCmd.AddCommand(assetMintCmd)
	assetCmd.AddCommand(assetInfoCmd)
	assetCmd.AddCommand(assetListCmd)
}
