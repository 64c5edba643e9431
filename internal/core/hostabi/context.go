package hostabi

import (
	"context"

	"github.com/weisyn/assetbridge/internal/core/psp22"
)

type environmentKey struct{}

// WithEnvironment 将单次调用的执行环境绑定到 ctx
func WithEnvironment(ctx context.Context, env psp22.Environment) context.Context {
	return context.WithValue(ctx, environmentKey{}, env)
}

// EnvironmentFrom 取出 ctx 中的执行环境
func EnvironmentFrom(ctx context.Context) (psp22.Environment, bool) {
	env, ok := ctx.Value(environmentKey{}).(psp22.Environment)
	return env, ok
}
