package psp22

import (
	"context"

	"github.com/spacemeshos/go-scale"

	"github.com/weisyn/assetbridge/internal/core/psp22/codec"
)

// handle 按操作执行解码、账本调用和结果编码
func (d *Dispatcher) handle(ctx context.Context, env Environment, route Route, input []byte) ([]byte, *Failure) {
	switch route.Operation {
	case OpTokenName:
		var req codec.AssetRequest
		if f := decode(route, input, &req); f != nil {
			return nil, f
		}
		name, err := env.Ledger.Name(ctx, req.Asset)
		if err != nil {
			return nil, newFailure(CauseLedgerFailure, route, err)
		}
		return encodeBytes(route, name)

	case OpTokenSymbol:
		var req codec.AssetRequest
		if f := decode(route, input, &req); f != nil {
			return nil, f
		}
		symbol, err := env.Ledger.Symbol(ctx, req.Asset)
		if err != nil {
			return nil, newFailure(CauseLedgerFailure, route, err)
		}
		return encodeBytes(route, symbol)

	case OpTokenDecimals:
		var req codec.AssetRequest
		if f := decode(route, input, &req); f != nil {
			return nil, f
		}
		decimals, err := env.Ledger.Decimals(ctx, req.Asset)
		if err != nil {
			return nil, newFailure(CauseLedgerFailure, route, err)
		}
		return codec.EncodeDecimals(decimals), nil

	case OpTotalSupply:
		var req codec.AssetRequest
		if f := decode(route, input, &req); f != nil {
			return nil, f
		}
		supply, err := env.Ledger.TotalSupply(ctx, req.Asset)
		if err != nil {
			return nil, newFailure(CauseLedgerFailure, route, err)
		}
		return codec.EncodeBalance(supply), nil

	case OpBalanceOf:
		var req codec.BalanceOfRequest
		if f := decode(route, input, &req); f != nil {
			return nil, f
		}
		balance, err := env.Ledger.Balance(ctx, req.Asset, req.Owner)
		if err != nil {
			return nil, newFailure(CauseLedgerFailure, route, err)
		}
		return codec.EncodeBalance(balance), nil

	case OpAllowance:
		var req codec.AllowanceRequest
		if f := decode(route, input, &req); f != nil {
			return nil, f
		}
		allowance, err := env.Ledger.Allowance(ctx, req.Asset, req.Owner, req.Spender)
		if err != nil {
			return nil, newFailure(CauseLedgerFailure, route, err)
		}
		return codec.EncodeBalance(allowance), nil

	case OpTransfer:
		var req codec.TransferRequest
		if f := decode(route, input, &req); f != nil {
			return nil, f
		}
		if err := env.Ledger.Transfer(ctx, req.Asset, env.Caller, req.To, req.Value, true); err != nil {
			return nil, newFailure(CauseLedgerFailure, route, err)
		}
		return nil, nil

	case OpTransferFrom:
		var req codec.TransferFromRequest
		if f := decode(route, input, &req); f != nil {
			return nil, f
		}
		if err := env.Ledger.TransferFrom(ctx, req.Asset, env.Caller, req.From, req.To, req.Value); err != nil {
			return nil, newFailure(CauseLedgerFailure, route, err)
		}
		return nil, nil

	case OpApprove:
		var req codec.ApproveRequest
		if f := decode(route, input, &req); f != nil {
			return nil, f
		}
		if err := env.Ledger.Approve(ctx, req.Asset, env.Caller, req.Spender, req.Value); err != nil {
			return nil, newFailure(CauseLedgerFailure, route, err)
		}
		return nil, nil

	default:
		return nil, newFailure(CauseUnimplemented, route, nil)
	}
}

func decode(route Route, input []byte, v scale.Decodable) *Failure {
	if err := codec.Decode(input, v); err != nil {
		return newFailure(CauseDecodeFailure, route, err)
	}
	return nil
}

func encodeBytes(route Route, v []byte) ([]byte, *Failure) {
	out, err := codec.EncodeBytes(v)
	if err != nil {
		return nil, newFailure(CauseLedgerFailure, route, err)
	}
	return out, nil
}
