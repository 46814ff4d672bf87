package recognize

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrTypeNotConfigured is returned when the transaction type register has no
// entry for a combination recognition resolved. This is a configuration
// problem, not a property of the statement.
var ErrTypeNotConfigured = errors.New("transaction type not configured")

const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute

	cacheKeyTransactionTypes = "transaction_types"
	cacheKeyLedgerOpTypes    = "ledger_op_types"
)

// ReferenceData loads the recognition reference registers.
//
//go:generate mockgen -source=resolver.go -destination=reference_mock.go -package=recognize
type ReferenceData interface {
	TransactionTypes(ctx context.Context) ([]TransactionType, error)
	LedgerOpTypes(ctx context.Context) ([]LedgerOpType, error)
}

// Resolver answers type lookups against the reference registers, caching them
// in memory. Register edits become visible within the cache TTL.
type Resolver struct {
	data  ReferenceData
	cache *gocache.Cache
}

func NewResolver(data ReferenceData) *Resolver {
	return &Resolver{
		data:  data,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}
}

func (r *Resolver) transactionTypes(ctx context.Context) ([]TransactionType, error) {
	if cached, ok := r.cache.Get(cacheKeyTransactionTypes); ok {
		return cached.([]TransactionType), nil
	}

	types, err := r.data.TransactionTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading transaction types: %w", err)
	}

	r.cache.Set(cacheKeyTransactionTypes, types, gocache.DefaultExpiration)

	return types, nil
}

// LedgerOpTypes returns the ledger operation rules in register order.
func (r *Resolver) LedgerOpTypes(ctx context.Context) ([]LedgerOpType, error) {
	if cached, ok := r.cache.Get(cacheKeyLedgerOpTypes); ok {
		return cached.([]LedgerOpType), nil
	}

	ops, err := r.data.LedgerOpTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger operation types: %w", err)
	}

	r.cache.Set(cacheKeyLedgerOpTypes, ops, gocache.DefaultExpiration)

	return ops, nil
}

// SecurityTradeType resolves the type for a securities trade in the given
// direction.
func (r *Resolver) SecurityTradeType(ctx context.Context, flow Flow) (*TransactionType, error) {
	return r.find(ctx, "secu", flow, AssetTypeSecurities, "")
}

// SplitType resolves the type for a security split.
func (r *Resolver) SplitType(ctx context.Context) (*TransactionType, error) {
	types, err := r.transactionTypes(ctx)
	if err != nil {
		return nil, err
	}

	for i := range types {
		if types[i].Code == "SL" {
			return &types[i], nil
		}
	}

	return nil, fmt.Errorf("%w: split", ErrTypeNotConfigured)
}

// CustomerPaymentType resolves the type for a recognized customer payment in
// the given direction.
func (r *Resolver) CustomerPaymentType(ctx context.Context, flow Flow) (*TransactionType, error) {
	return r.find(ctx, "bank", flow, AssetTypeCash, "yes")
}

func (r *Resolver) find(ctx context.Context, source string, flow Flow, assetType, isCustomer string) (*TransactionType, error) {
	types, err := r.transactionTypes(ctx)
	if err != nil {
		return nil, err
	}

	for i := range types {
		t := &types[i]
		if t.Source == source && t.Flow == flow && t.AssetType == assetType && t.IsCustomer == isCustomer {
			return t, nil
		}
	}

	return nil, fmt.Errorf("%w: source=%s flow=%s asset=%s customer=%q",
		ErrTypeNotConfigured, source, flow, assetType, isCustomer)
}
