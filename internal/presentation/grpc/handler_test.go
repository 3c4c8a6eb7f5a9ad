package grpc

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Sidiqjon/debt-manager/internal/application/usecase"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/pkg/auth"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"debt not found", model.ErrDebtNotFound, codes.NotFound},
		{"debtor not found", model.ErrDebtorNotFound, codes.NotFound},
		{"payment not found", model.ErrPaymentNotFound, codes.NotFound},
		{"access denied", model.ErrAccessDenied, codes.PermissionDenied},
		{"invalid credentials", model.ErrInvalidCredentials, codes.Unauthenticated},
		{"account disabled", model.ErrAccountDisabled, codes.Unauthenticated},
		{"phone taken", usecase.ErrPhoneNumberTaken, codes.AlreadyExists},
		{"username taken", usecase.ErrUsernameTaken, codes.AlreadyExists},
		{"already paid", model.ErrDebtAlreadyPaid, codes.FailedPrecondition},
		{"schedule exhausted", model.ErrScheduleExhausted, codes.FailedPrecondition},
		{"schedule exists", model.ErrScheduleAlreadyExists, codes.FailedPrecondition},
		{"insufficient wallet", model.ErrInsufficientWallet, codes.FailedPrecondition},
		{"amount required", model.ErrAmountRequired, codes.InvalidArgument},
		{"invalid selection", model.ErrInvalidScheduleSelection, codes.InvalidArgument},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st, ok := status.FromError(mapError(tc.err))
			require.True(t, ok)
			assert.Equal(t, tc.code, st.Code())
		})
	}
}

func TestMapError_ExceedsRemaining(t *testing.T) {
	err := &model.ExceedsRemainingError{Remaining: decimal.NewFromInt(300)}

	st, ok := status.FromError(mapError(err))
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestMapError_Nil(t *testing.T) {
	assert.NoError(t, mapError(nil))
}

func TestMapError_UnknownPassesThrough(t *testing.T) {
	err := assert.AnError
	assert.Equal(t, err, mapError(err))
}

func TestSellerFrom(t *testing.T) {
	t.Run("missing claims", func(t *testing.T) {
		_, err := sellerFrom(context.Background())
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.Unauthenticated, st.Code())
	})

	t.Run("admin role rejected", func(t *testing.T) {
		ctx := auth.ContextWithClaims(context.Background(), &auth.Claims{
			UserID: "admin-1", Role: auth.RoleAdmin,
		})
		_, err := sellerFrom(ctx)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.PermissionDenied, st.Code())
	})

	t.Run("seller role accepted", func(t *testing.T) {
		ctx := auth.ContextWithClaims(context.Background(), &auth.Claims{
			UserID: "seller-1", Role: auth.RoleSeller,
		})
		sellerID, err := sellerFrom(ctx)
		require.NoError(t, err)
		assert.Equal(t, "seller-1", sellerID)
	})
}

func TestStaffFrom(t *testing.T) {
	t.Run("seller rejected", func(t *testing.T) {
		ctx := auth.ContextWithClaims(context.Background(), &auth.Claims{
			UserID: "seller-1", Role: auth.RoleSeller,
		})
		_, err := staffFrom(ctx)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.PermissionDenied, st.Code())
	})

	t.Run("super admin accepted", func(t *testing.T) {
		ctx := auth.ContextWithClaims(context.Background(), &auth.Claims{
			UserID: "admin-1", Role: auth.RoleSuperAdmin,
		})
		claims, err := staffFrom(ctx)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", claims.UserID)
	})
}
