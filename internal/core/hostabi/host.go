// Package hostabi 将 PSP22 调度桥暴露给 WASM 沙箱
//
// 🎯 **宿主函数**：
//
//	psp22_call(func_id, in_ptr, in_len, out_ptr, out_len_ptr i32) -> i32
//
// 调用约定：
//   - 客户端在 out_len_ptr 写入输出缓冲区容量
//   - 宿主读取 [in_ptr, in_ptr+in_len) 作为参数，执行调度
//   - 成功时结果写入 out_ptr，实际长度回写到 out_len_ptr
//   - 返回值为 psp22.RetCode
//
// 执行环境（调用者、计量器、账本）通过 context.Context 传入，宿主函数本身无状态。
package hostabi

import (
	"bytes"
	"context"
	"errors"

	"github.com/tetratelabs/wazero/api"

	"github.com/weisyn/assetbridge/internal/core/psp22"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
)

// HostFunctionName 宿主函数导出名
const HostFunctionName = "psp22_call"

// ErrNoEnvironment 宿主函数被调用时 ctx 中没有执行环境
var ErrNoEnvironment = errors.New("调用上下文缺少PSP22执行环境")

// guestMemory 客户端线性内存的最小视图（api.Memory 的子集）
type guestMemory interface {
	Read(offset, byteCount uint32) ([]byte, bool)
	Write(offset uint32, v []byte) bool
	ReadUint32Le(offset uint32) (uint32, bool)
	WriteUint32Le(offset, v uint32) bool
}

// HostFunctions psp22_call 宿主函数实现
type HostFunctions struct {
	dispatcher *psp22.Dispatcher
	logger     log.Logger
	maxInput   uint32
	maxOutput  uint32
}

// NewHostFunctions 创建宿主函数
//
// maxInput 为 0 时输入长度只受客户端内存限制；maxOutput 为 0 时不限制输出容量。
func NewHostFunctions(dispatcher *psp22.Dispatcher, logger log.Logger, maxInput, maxOutput uint32) *HostFunctions {
	return &HostFunctions{
		dispatcher: dispatcher,
		logger:     logger,
		maxInput:   maxInput,
		maxOutput:  maxOutput,
	}
}

// Call 注册到 wazero 的宿主函数
//
// ctx 中缺少执行环境属于宿主配置错误，直接 panic 使客户端陷入 trap。
func (h *HostFunctions) Call(ctx context.Context, m api.Module, funcID, inPtr, inLen, outPtr, outLenPtr uint32) uint32 {
	env, ok := EnvironmentFrom(ctx)
	if !ok {
		panic(ErrNoEnvironment)
	}
	var mem guestMemory
	if memory := m.Memory(); memory != nil {
		mem = memory
	}
	return uint32(h.call(ctx, env, mem, funcID, inPtr, inLen, outPtr, outLenPtr))
}

// call 执行一次桥调用
//
// 读取客户端内存失败时不提前返回：以空输入交给调度器，
// 选择器路由与预扣权重照常进行，随后由解码失败产生 DecodeFailure。
func (h *HostFunctions) call(
	ctx context.Context,
	env psp22.Environment,
	mem guestMemory,
	funcID, inPtr, inLen, outPtr, outLenPtr uint32,
) psp22.RetCode {
	input, capacity, readable := h.readArgs(mem, inPtr, inLen, outLenPtr)

	res := h.dispatcher.Dispatch(ctx, env, funcID, input, capacity)
	if !res.OK() {
		return res.Status
	}
	if !readable {
		// 调度器只在解码成功后才会成功，空输入不可能走到这里
		return psp22.RetDecodeFailure
	}

	if len(res.Output) > 0 && !mem.Write(outPtr, res.Output) {
		h.warnf("psp22_call: 写入输出越界 out_ptr=%d len=%d", outPtr, len(res.Output))
		return psp22.RetOutputTooLarge
	}
	if !mem.WriteUint32Le(outLenPtr, uint32(len(res.Output))) {
		h.warnf("psp22_call: 回写输出长度越界 out_len_ptr=%d", outLenPtr)
		return psp22.RetOutputTooLarge
	}
	return psp22.RetSuccess
}

// readArgs 读取输入与输出容量，任一失败时返回空输入和零容量
func (h *HostFunctions) readArgs(mem guestMemory, inPtr, inLen, outLenPtr uint32) ([]byte, uint32, bool) {
	if mem == nil {
		h.warnf("psp22_call: 客户端未导出内存")
		return nil, 0, false
	}
	if h.maxInput > 0 && inLen > h.maxInput {
		h.warnf("psp22_call: 输入超过上限 in_len=%d max=%d", inLen, h.maxInput)
		return nil, 0, false
	}
	input, ok := mem.Read(inPtr, inLen)
	if !ok {
		h.warnf("psp22_call: 读取输入越界 in_ptr=%d in_len=%d", inPtr, inLen)
		return nil, 0, false
	}
	capacity, ok := mem.ReadUint32Le(outLenPtr)
	if !ok {
		h.warnf("psp22_call: 读取输出容量越界 out_len_ptr=%d", outLenPtr)
		return nil, 0, false
	}
	if h.maxOutput > 0 && capacity > h.maxOutput {
		capacity = h.maxOutput
	}
	// Read 返回的是内存视图
	return bytes.Clone(input), capacity, true
}

func (h *HostFunctions) warnf(format string, args ...interface{}) {
	if h.logger != nil {
		h.logger.Warnf(format, args...)
	}
}
