// Package configs 内置默认配置
package configs

import _ "embed"

//go:embed assetbridge.json
var defaultConfig []byte

// Default 返回内置默认配置内容的副本
func Default() []byte {
	out := make([]byte, len(defaultConfig))
	copy(out, defaultConfig)
	return out
}
