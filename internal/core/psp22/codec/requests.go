package codec

import (
	"github.com/spacemeshos/go-scale"

	"github.com/weisyn/assetbridge/pkg/types"
)

// AssetRequest 只携带资产标识的请求（总供应量、名称、符号、精度）
type AssetRequest struct {
	Asset types.AssetID
}

func (r *AssetRequest) EncodeScale(e *scale.Encoder) (int, error) {
	w := fieldWriter{e: e}
	w.asset(r.Asset)
	return w.n, w.err
}

func (r *AssetRequest) DecodeScale(d *scale.Decoder) (int, error) {
	rd := fieldReader{d: d}
	rd.asset(&r.Asset)
	return rd.n, rd.err
}

// BalanceOfRequest 余额查询请求
type BalanceOfRequest struct {
	Asset types.AssetID
	Owner types.AccountID
}

func (r *BalanceOfRequest) EncodeScale(e *scale.Encoder) (int, error) {
	w := fieldWriter{e: e}
	w.asset(r.Asset)
	w.account(r.Owner)
	return w.n, w.err
}

func (r *BalanceOfRequest) DecodeScale(d *scale.Decoder) (int, error) {
	rd := fieldReader{d: d}
	rd.asset(&r.Asset)
	rd.account(&r.Owner)
	return rd.n, rd.err
}

// AllowanceRequest 授权额度查询请求
type AllowanceRequest struct {
	Asset   types.AssetID
	Owner   types.AccountID
	Spender types.AccountID
}

func (r *AllowanceRequest) EncodeScale(e *scale.Encoder) (int, error) {
	w := fieldWriter{e: e}
	w.asset(r.Asset)
	w.account(r.Owner)
	w.account(r.Spender)
	return w.n, w.err
}

func (r *AllowanceRequest) DecodeScale(d *scale.Decoder) (int, error) {
	rd := fieldReader{d: d}
	rd.asset(&r.Asset)
	rd.account(&r.Owner)
	rd.account(&r.Spender)
	return rd.n, rd.err
}

// TransferRequest 转账请求，付款方为调用者
type TransferRequest struct {
	Asset types.AssetID
	To    types.AccountID
	Value types.Balance
}

func (r *TransferRequest) EncodeScale(e *scale.Encoder) (int, error) {
	w := fieldWriter{e: e}
	w.asset(r.Asset)
	w.account(r.To)
	w.balance(r.Value)
	return w.n, w.err
}

func (r *TransferRequest) DecodeScale(d *scale.Decoder) (int, error) {
	rd := fieldReader{d: d}
	rd.asset(&r.Asset)
	rd.account(&r.To)
	rd.balance(&r.Value)
	return rd.n, rd.err
}

// TransferFromRequest 代理转账请求，调用者为 spender
type TransferFromRequest struct {
	Asset types.AssetID
	From  types.AccountID
	To    types.AccountID
	Value types.Balance
}

func (r *TransferFromRequest) EncodeScale(e *scale.Encoder) (int, error) {
	w := fieldWriter{e: e}
	w.asset(r.Asset)
	w.account(r.From)
	w.account(r.To)
	w.balance(r.Value)
	return w.n, w.err
}

func (r *TransferFromRequest) DecodeScale(d *scale.Decoder) (int, error) {
	rd := fieldReader{d: d}
	rd.asset(&r.Asset)
	rd.account(&r.From)
	rd.account(&r.To)
	rd.balance(&r.Value)
	return rd.n, rd.err
}

// ApproveRequest 授权请求，调用者为 owner
type ApproveRequest struct {
	Asset   types.AssetID
	Spender types.AccountID
	Value   types.Balance
}

func (r *ApproveRequest) EncodeScale(e *scale.Encoder) (int, error) {
	w := fieldWriter{e: e}
	w.asset(r.Asset)
	w.account(r.Spender)
	w.balance(r.Value)
	return w.n, w.err
}

func (r *ApproveRequest) DecodeScale(d *scale.Decoder) (int, error) {
	rd := fieldReader{d: d}
	rd.asset(&r.Asset)
	rd.account(&r.Spender)
	rd.balance(&r.Value)
	return rd.n, rd.err
}
