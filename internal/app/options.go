package app

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	appconfig "github.com/weisyn/assetbridge/internal/config"
	"github.com/weisyn/assetbridge/pkg/interfaces/config"
	"github.com/weisyn/assetbridge/pkg/types"
)

// ConfigPathEnv 覆盖配置文件路径的环境变量
const ConfigPathEnv = "ASSETBRIDGE_CONFIG_PATH"

// Option 应用程序选项函数类型
type Option func(*options)

// options 应用程序选项，实现 config.AppOptions
type options struct {
	// 配置文件路径
	configFilePath string

	// 嵌入的配置内容（优先级高于configFilePath）
	embeddedConfig []byte

	// 直接提供的配置（优先级最高）
	appConfig *types.AppConfig

	// 指标注册表，为空时使用 prometheus 默认注册表
	registerer prometheus.Registerer
}

var _ config.AppOptions = (*options)(nil)

// WithConfigFile 设置配置文件路径
func WithConfigFile(configPath string) Option {
	return func(o *options) {
		o.configFilePath = configPath
	}
}

// WithEmbeddedConfig 设置嵌入的配置内容，未指定配置文件时使用
func WithEmbeddedConfig(configBytes []byte) Option {
	return func(o *options) {
		o.embeddedConfig = configBytes
	}
}

// WithAppConfig 直接使用给定配置
func WithAppConfig(appConfig *types.AppConfig) Option {
	return func(o *options) {
		o.appConfig = appConfig
	}
}

// WithRegisterer 指定指标注册表
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// resolve 按优先级确定最终配置：
// appConfig > 环境变量指定的文件 > configFilePath > embeddedConfig > 默认值
func (o *options) resolve() error {
	if o.appConfig != nil {
		return nil
	}

	path := o.configFilePath
	if envPath := os.Getenv(ConfigPathEnv); envPath != "" {
		path = envPath
	}
	if path != "" {
		cfg, err := appconfig.LoadAppConfig(path)
		if err != nil {
			return fmt.Errorf("加载配置 %s 失败: %w", path, err)
		}
		o.appConfig = cfg
		return nil
	}

	if len(o.embeddedConfig) > 0 {
		cfg, err := appconfig.ParseAppConfig(o.embeddedConfig)
		if err != nil {
			return err
		}
		o.appConfig = cfg
		return nil
	}

	o.appConfig = &types.AppConfig{}
	return nil
}

// GetAppConfig 返回应用程序配置
func (o *options) GetAppConfig() *types.AppConfig {
	return o.appConfig
}
