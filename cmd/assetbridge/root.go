package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weisyn/assetbridge/configs"
	"github.com/weisyn/assetbridge/internal/app"
	"github.com/weisyn/assetbridge/internal/app/version"
	appconfig "github.com/weisyn/assetbridge/internal/config"
	"github.com/weisyn/assetbridge/pkg/interfaces/config"
	"github.com/weisyn/assetbridge/pkg/types"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	ConfigPath string // 配置文件路径
}

var globalFlags GlobalFlags

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "assetbridge",
	Short: "PSP22 资产调度桥",
	Long: `assetbridge - 沙箱合约访问原生多资产账本的 PSP22 调度桥

支持的操作:
- 查看选择器路由表
- 管理参考账本中的资产（创建、铸造、查询）
- 直接执行一次桥调用
- 通过 WASM 宿主绑定运行客户端合约

账户参数支持 0x 十六进制与 SS58 地址。`,
	SilenceUsage: true,
	Version:      version.Version,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "配置文件路径 (默认使用内置 configs/assetbridge.json)")
	rootCmd.SetVersionTemplate(version.GetFullVersion() + "\n")

	rootCmd.AddCommand(selectorsCmd)
	rootCmd.AddCommand(assetCmd)
	rootCmd.AddCommand(dispatchCmd)
	rootCmd.AddCommand(runCmd)
}

// withApp 启动应用，执行 fn 后停止
func withApp(fn func(a *app.App) error) error {
	a, err := app.New(
		app.WithEmbeddedConfig(configs.Default()),
		app.WithConfigFile(globalFlags.ConfigPath),
	)
	if err != nil {
		return err
	}
	runErr := fn(a)
	if err := a.Stop(); err != nil && runErr == nil {
		return err
	}
	return runErr
}

// loadProvider 只加载配置，不启动存储
func loadProvider() (config.Provider, error) {
	if globalFlags.ConfigPath == "" {
		cfg, err := appconfig.ParseAppConfig(configs.Default())
		if err != nil {
			return nil, err
		}
		return appconfig.NewProvider(cfg), nil
	}
	cfg, err := appconfig.LoadAppConfig(globalFlags.ConfigPath)
	if err != nil {
		return nil, err
	}
	return appconfig.NewProvider(cfg), nil
}

func parseSelector(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("解析选择器 %q 失败: %w", s, err)
	}
	return uint32(v), nil
}

func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("解析十六进制失败: %w", err)
	}
	return raw, nil
}

func parseAmount(s string) (types.Balance, error) {
	return types.ParseBalance(strings.ReplaceAll(s, "_", ""))
}
