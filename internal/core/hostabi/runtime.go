package hostabi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	wasmconfig "github.com/weisyn/assetbridge/internal/config/wasm"
	"github.com/weisyn/assetbridge/internal/core/psp22"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
)

// ErrExportNotFound 客户端未导出指定函数
var ErrExportNotFound = errors.New("WASM导出函数不存在")

// Runtime 基于 wazero 的沙箱运行时
//
// 🎯 **核心职责**：
// - 注册 psp22_call 宿主模块
// - 按代码哈希缓存编译结果
// - 每次调用使用独立实例，执行环境随 ctx 传入
type Runtime struct {
	runtime wazero.Runtime
	options *wasmconfig.WasmOptions
	logger  log.Logger

	// compiled 代码哈希 → wazero.CompiledModule
	compiled sync.Map
}

// NewRuntime 创建运行时并实例化宿主模块
func NewRuntime(ctx context.Context, host *HostFunctions, options *wasmconfig.WasmOptions, logger log.Logger) (*Runtime, error) {
	if host == nil {
		return nil, fmt.Errorf("host 不能为空")
	}
	if options == nil {
		options = wasmconfig.New(nil).GetOptions()
	}

	cfg := wazero.NewRuntimeConfig()
	if options.MaxMemoryPages > 0 {
		cfg = cfg.WithMemoryLimitPages(options.MaxMemoryPages)
	}
	if options.ExecutionTimeout > 0 {
		cfg = cfg.WithCloseOnContextDone(true)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, cfg)

	_, err := rt.NewHostModuleBuilder(options.HostModule).
		NewFunctionBuilder().
		WithFunc(host.Call).
		Export(HostFunctionName).
		Instantiate(ctx)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("实例化宿主模块失败: %w", err)
	}

	if logger != nil {
		logger.Infof("WASM运行时已创建: host_module=%s max_pages=%d timeout=%s",
			options.HostModule, options.MaxMemoryPages, options.ExecutionTimeout)
	}
	return &Runtime{runtime: rt, options: options, logger: logger}, nil
}

// Compile 编译客户端代码；启用缓存时相同代码只编译一次
func (r *Runtime) Compile(ctx context.Context, wasm []byte) (wazero.CompiledModule, error) {
	key := codeHash(wasm)
	if r.options.EnableCompileCache {
		if v, ok := r.compiled.Load(key); ok {
			return v.(wazero.CompiledModule), nil
		}
	}

	cm, err := r.runtime.CompileModule(ctx, wasm)
	if err != nil {
		return nil, fmt.Errorf("编译WASM失败: %w", err)
	}
	if !r.options.EnableCompileCache {
		return cm, nil
	}

	if existing, loaded := r.compiled.LoadOrStore(key, cm); loaded {
		_ = cm.Close(ctx)
		return existing.(wazero.CompiledModule), nil
	}
	if r.logger != nil {
		r.logger.Debugf("WASM模块已编译并缓存: code_hash=%s", key)
	}
	return cm, nil
}

// Instance 单次调用使用的客户端实例
type Instance struct {
	module  api.Module
	env     psp22.Environment
	timeout time.Duration
	release func(context.Context)
}

// Instantiate 编译并实例化客户端，env 在之后的每次 Call 中生效
func (r *Runtime) Instantiate(ctx context.Context, wasm []byte, env psp22.Environment) (*Instance, error) {
	cm, err := r.Compile(ctx, wasm)
	if err != nil {
		return nil, err
	}
	release := func(context.Context) {}
	if !r.options.EnableCompileCache {
		release = func(ctx context.Context) { _ = cm.Close(ctx) }
	}

	// 匿名实例允许同一模块并发实例化；不执行 _start
	mod, err := r.runtime.InstantiateModule(WithEnvironment(ctx, env), cm,
		wazero.NewModuleConfig().WithName("").WithStartFunctions())
	if err != nil {
		release(ctx)
		return nil, fmt.Errorf("实例化WASM模块失败: %w", err)
	}
	return &Instance{module: mod, env: env, timeout: r.options.ExecutionTimeout, release: release}, nil
}

// Memory 客户端线性内存
func (i *Instance) Memory() api.Memory {
	return i.module.Memory()
}

// Call 调用客户端导出函数
func (i *Instance) Call(ctx context.Context, export string, params ...uint64) ([]uint64, error) {
	fn := i.module.ExportedFunction(export)
	if fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrExportNotFound, export)
	}
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}
	results, err := fn.Call(WithEnvironment(ctx, i.env), params...)
	if err != nil {
		return nil, fmt.Errorf("执行WASM函数%s失败: %w", export, err)
	}
	return results, nil
}

// Close 释放实例
func (i *Instance) Close(ctx context.Context) error {
	err := i.module.Close(ctx)
	i.release(ctx)
	return err
}

// Invoke 编译、实例化并调用一次客户端导出函数
func (r *Runtime) Invoke(ctx context.Context, wasm []byte, export string, env psp22.Environment, params ...uint64) ([]uint64, error) {
	inst, err := r.Instantiate(ctx, wasm, env)
	if err != nil {
		return nil, err
	}
	defer func() { _ = inst.Close(ctx) }()
	return inst.Call(ctx, export, params...)
}

// Close 关闭运行时及全部缓存的编译结果
func (r *Runtime) Close(ctx context.Context) error {
	r.compiled.Range(func(key, _ interface{}) bool {
		r.compiled.Delete(key)
		return true
	})
	return r.runtime.Close(ctx)
}

func codeHash(wasm []byte) string {
	sum := sha256.Sum256(wasm)
	return hex.EncodeToString(sum[:])
}
