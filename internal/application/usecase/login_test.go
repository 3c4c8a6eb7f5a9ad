package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/application/usecase"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/pkg/auth"
)

func testJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(auth.JWTConfig{Secret: "test-secret", Issuer: "debt-manager"})
	require.NoError(t, err)
	return svc
}

func activeSeller(t *testing.T, password string) model.Seller {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	seller, err := model.NewSeller("Dilshod Karimov", "+998907654321", "", hash, "", time.Now().UTC())
	require.NoError(t, err)
	return seller
}

func TestLoginSeller_Execute(t *testing.T) {
	t.Run("issues a token on valid credentials", func(t *testing.T) {
		seller := activeSeller(t, "s3cret-pass")
		sellerRepo := &mockSellerRepository{
			findByPhoneNumberFunc: func(_ context.Context, phone string) (model.Seller, error) {
				assert.Equal(t, "+998907654321", phone)
				return seller, nil
			},
		}
		jwtSvc := testJWTService(t)

		uc := usecase.NewLoginSellerUseCase(sellerRepo, jwtSvc)
		resp, err := uc.Execute(context.Background(), dto.LoginRequest{
			Login:    "+998907654321",
			Password: "s3cret-pass",
		})

		require.NoError(t, err)
		assert.Equal(t, auth.RoleSeller, resp.Role)
		assert.Equal(t, seller.ID(), resp.UserID)

		claims, err := jwtSvc.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, seller.ID(), claims.UserID)
		assert.Equal(t, auth.RoleSeller, claims.Role)
	})

	t.Run("wrong password and unknown phone look identical", func(t *testing.T) {
		seller := activeSeller(t, "s3cret-pass")
		sellerRepo := &mockSellerRepository{
			findByPhoneNumberFunc: func(_ context.Context, phone string) (model.Seller, error) {
				if phone == seller.PhoneNumber() {
					return seller, nil
				}
				return model.Seller{}, model.ErrSellerNotFound
			},
		}
		uc := usecase.NewLoginSellerUseCase(sellerRepo, testJWTService(t))

		_, err := uc.Execute(context.Background(), dto.LoginRequest{Login: seller.PhoneNumber(), Password: "wrong"})
		wrongPass := err
		_, err = uc.Execute(context.Background(), dto.LoginRequest{Login: "+998000000000", Password: "s3cret-pass"})

		assert.ErrorIs(t, wrongPass, model.ErrInvalidCredentials)
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("rejects a disabled account", func(t *testing.T) {
		seller := activeSeller(t, "s3cret-pass").SetActive(false, time.Now().UTC())
		sellerRepo := &mockSellerRepository{
			findByPhoneNumberFunc: func(_ context.Context, _ string) (model.Seller, error) {
				return seller, nil
			},
		}
		uc := usecase.NewLoginSellerUseCase(sellerRepo, testJWTService(t))

		_, err := uc.Execute(context.Background(), dto.LoginRequest{Login: seller.PhoneNumber(), Password: "s3cret-pass"})
		assert.ErrorIs(t, err, model.ErrAccountDisabled)
	})
}

func TestLoginAdmin_Execute(t *testing.T) {
	t.Run("super admin receives the SUPER role", func(t *testing.T) {
		hash, err := auth.HashPassword("admin-pass")
		require.NoError(t, err)
		admin, err := model.NewAdmin("boss", hash, model.AdminRoleSuper, time.Now().UTC())
		require.NoError(t, err)

		adminRepo := &mockAdminRepository{
			findByUsernameFunc: func(_ context.Context, username string) (model.Admin, error) {
				assert.Equal(t, "boss", username)
				return admin, nil
			},
		}
		uc := usecase.NewLoginAdminUseCase(adminRepo, testJWTService(t))

		resp, err := uc.Execute(context.Background(), dto.LoginRequest{Login: "boss", Password: "admin-pass"})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleSuperAdmin, resp.Role)
	})
}
