package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/weisyn/assetbridge/pkg/types"
)

// LoadAppConfig 从 JSON 文件加载应用配置
//
// 零值处理：所有用户字段均为指针，nil 表示未设置并使用默认值。
func LoadAppConfig(path string) (*types.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	return ParseAppConfig(data)
}

// ParseAppConfig 解析 JSON 配置内容
func ParseAppConfig(data []byte) (*types.AppConfig, error) {
	var appConfig types.AppConfig
	if err := json.Unmarshal(data, &appConfig); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	return &appConfig, nil
}
