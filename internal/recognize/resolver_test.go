package recognize_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fiscaladmin/reconcile/internal/recognize"
)

func referenceTypes() []recognize.TransactionType {
	return []recognize.TransactionType{
		{ID: "t-1", Code: "SCRIN", Source: "secu", Flow: recognize.FlowIn, AssetType: recognize.AssetTypeSecurities},
		{ID: "t-2", Code: "SCROUT", Source: "secu", Flow: recognize.FlowOut, AssetType: recognize.AssetTypeSecurities},
		{ID: "t-3", Code: "SL"},
		{ID: "t-4", Code: "CSHIN", Source: "bank", Flow: recognize.FlowIn, AssetType: recognize.AssetTypeCash, IsCustomer: "yes"},
		{ID: "t-5", Code: "CSHOUT", Source: "bank", Flow: recognize.FlowOut, AssetType: recognize.AssetTypeCash, IsCustomer: "yes"},
	}
}

func TestResolver_Lookups(t *testing.T) {
	ctrl := gomock.NewController(t)

	data := recognize.NewMockReferenceData(ctrl)
	// A single load serves every lookup below.
	data.EXPECT().TransactionTypes(gomock.Any()).Return(referenceTypes(), nil).Times(1)

	r := recognize.NewResolver(data)
	ctx := context.Background()

	in, err := r.SecurityTradeType(ctx, recognize.FlowIn)
	require.NoError(t, err)
	assert.Equal(t, "SCRIN", in.Code)

	out, err := r.SecurityTradeType(ctx, recognize.FlowOut)
	require.NoError(t, err)
	assert.Equal(t, "SCROUT", out.Code)

	split, err := r.SplitType(ctx)
	require.NoError(t, err)
	assert.Equal(t, "SL", split.Code)

	cash, err := r.CustomerPaymentType(ctx, recognize.FlowIn)
	require.NoError(t, err)
	assert.Equal(t, "CSHIN", cash.Code)
}

func TestResolver_TypeNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)

	data := recognize.NewMockReferenceData(ctrl)
	data.EXPECT().TransactionTypes(gomock.Any()).Return(nil, nil).Times(1)

	r := recognize.NewResolver(data)

	_, err := r.SecurityTradeType(context.Background(), recognize.FlowIn)
	require.ErrorIs(t, err, recognize.ErrTypeNotConfigured)
}

func TestResolver_CachesLedgerOps(t *testing.T) {
	ctrl := gomock.NewController(t)

	ops := []recognize.LedgerOpType{{ID: "op-1", Code: "X", BasisCode: "CSHIN"}}

	data := recognize.NewMockReferenceData(ctrl)
	data.EXPECT().LedgerOpTypes(gomock.Any()).Return(ops, nil).Times(1)

	r := recognize.NewResolver(data)
	ctx := context.Background()

	first, err := r.LedgerOpTypes(ctx)
	require.NoError(t, err)

	second, err := r.LedgerOpTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
