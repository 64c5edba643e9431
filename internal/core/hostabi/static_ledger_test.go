package hostabi

import (
	"context"
	"errors"
	"sync"

	"github.com/weisyn/assetbridge/pkg/types"
)

// staticLedger 所有账户余额相同的只读账本
type staticLedger struct {
	mu      sync.Mutex
	balance types.Balance
	reads   int
	writes  int
}

var errReadOnly = errors.New("read only")

func (s *staticLedger) TotalSupply(context.Context, types.AssetID) (types.Balance, error) {
	return s.Balance(context.Background(), 0, types.AccountID{})
}

func (s *staticLedger) Balance(context.Context, types.AssetID, types.AccountID) (types.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	return s.balance, nil
}

func (s *staticLedger) Allowance(context.Context, types.AssetID, types.AccountID, types.AccountID) (types.Balance, error) {
	return types.Balance{}, nil
}

func (s *staticLedger) Name(context.Context, types.AssetID) ([]byte, error)   { return nil, nil }
func (s *staticLedger) Symbol(context.Context, types.AssetID) ([]byte, error) { return nil, nil }
func (s *staticLedger) Decimals(context.Context, types.AssetID) (uint8, error) {
	return 0, nil
}

func (s *staticLedger) Transfer(context.Context, types.AssetID, types.AccountID, types.AccountID, types.Balance, bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	return errReadOnly
}

func (s *staticLedger) TransferFrom(context.Context, types.AssetID, types.AccountID, types.AccountID, types.AccountID, types.Balance) error {
	return errReadOnly
}

func (s *staticLedger) Approve(context.Context, types.AssetID, types.AccountID, types.AccountID, types.Balance) error {
	return errReadOnly
}
