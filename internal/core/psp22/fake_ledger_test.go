package psp22

import (
	"context"
	"errors"
	"sync"

	"github.com/weisyn/assetbridge/pkg/types"
)

var errFakeLedger = errors.New("fake ledger failure")

type allowanceKey struct {
	asset          types.AssetID
	owner, spender types.AccountID
}

type balanceKey struct {
	asset types.AssetID
	who   types.AccountID
}

// fakeLedger 内存账本，记录写调用次数
type fakeLedger struct {
	mu         sync.Mutex
	names      map[types.AssetID][]byte
	balances   map[balanceKey]types.Balance
	allowances map[allowanceKey]types.Balance
	writes     int
	lastKeep   *bool
	failReads  bool
	failWrites bool
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		names:      make(map[types.AssetID][]byte),
		balances:   make(map[balanceKey]types.Balance),
		allowances: make(map[allowanceKey]types.Balance),
	}
}

func (f *fakeLedger) TotalSupply(_ context.Context, asset types.AssetID) (types.Balance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return types.Balance{}, errFakeLedger
	}
	var total types.Balance
	for k, v := range f.balances {
		if k.asset == asset {
			total = total.SaturatingAdd(v)
		}
	}
	return total, nil
}

func (f *fakeLedger) Balance(_ context.Context, asset types.AssetID, who types.AccountID) (types.Balance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return types.Balance{}, errFakeLedger
	}
	return f.balances[balanceKey{asset, who}], nil
}

func (f *fakeLedger) Allowance(_ context.Context, asset types.AssetID, owner, spender types.AccountID) (types.Balance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return types.Balance{}, errFakeLedger
	}
	return f.allowances[allowanceKey{asset, owner, spender}], nil
}

func (f *fakeLedger) Name(_ context.Context, asset types.AssetID) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.names[asset], nil
}

func (f *fakeLedger) Symbol(_ context.Context, asset types.AssetID) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.names[asset], nil
}

func (f *fakeLedger) Decimals(_ context.Context, _ types.AssetID) (uint8, error) {
	return 12, nil
}

func (f *fakeLedger) Transfer(_ context.Context, asset types.AssetID, from, to types.AccountID, amount types.Balance, keepAlive bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	f.lastKeep = &keepAlive
	if f.failWrites {
		return errFakeLedger
	}
	return f.move(asset, from, to, amount)
}

func (f *fakeLedger) TransferFrom(_ context.Context, asset types.AssetID, spender, from, to types.AccountID, amount types.Balance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.failWrites {
		return errFakeLedger
	}
	key := allowanceKey{asset, from, spender}
	rest, ok := f.allowances[key].Sub(amount)
	if !ok {
		return errFakeLedger
	}
	if err := f.move(asset, from, to, amount); err != nil {
		return err
	}
	f.allowances[key] = rest
	return nil
}

func (f *fakeLedger) Approve(_ context.Context, asset types.AssetID, owner, spender types.AccountID, amount types.Balance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.failWrites {
		return errFakeLedger
	}
	key := allowanceKey{asset, owner, spender}
	f.allowances[key] = f.allowances[key].SaturatingAdd(amount)
	return nil
}

func (f *fakeLedger) move(asset types.AssetID, from, to types.AccountID, amount types.Balance) error {
	rest, ok := f.balances[balanceKey{asset, from}].Sub(amount)
	if !ok {
		return errFakeLedger
	}
	f.balances[balanceKey{asset, from}] = rest
	f.balances[balanceKey{asset, to}] = f.balances[balanceKey{asset, to}].SaturatingAdd(amount)
	return nil
}

func (f *fakeLedger) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}
