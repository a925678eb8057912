package payments

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"pixgate/internal/config"
	"pixgate/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayA_CreatePixTransaction(t *testing.T) {
	up := newUpstream(t, http.StatusOK, `{"id":"A-123","status":"PENDING","pixCode":"`+samplePixCode+`","pixQrCode":"https://gateway-a.example/qr/A-123.png"}`)
	gw, err := NewGatewayA(up.providerConfig(config.ProviderGatewayA), testOptions())
	require.NoError(t, err)

	res, err := gw.CreatePixTransaction(context.Background(), mariaRequest())
	require.NoError(t, err)
	assert.Equal(t, "A-123", res.ID)
	assert.Equal(t, samplePixCode, res.PixCode)
	assert.Equal(t, "https://gateway-a.example/qr/A-123.png", res.PixQrCode)
	assert.Equal(t, entities.PaymentStatusPending, res.Status)

	call := up.lastCall()
	assert.Equal(t, "/transaction.purchase", call.Path)
	assert.Equal(t, "sk_test_secret", call.Header.Get("Authorization"))
	assert.Equal(t, float64(6490), call.Body["amount"], "gateway A takes the amount as a number of cents")
	assert.Equal(t, "12345678909", call.Body["cpf"])
	assert.Equal(t, "11987654321", call.Body["phone"])
	assert.Equal(t, "PIX", call.Body["paymentMethod"])
}

func TestGatewayA_CreatePixTransaction_Aliases(t *testing.T) {
	for name, body := range map[string]string{
		"pix.code":     `{"id":"A-1","pix":{"code":"` + samplePixCode + `"}}`,
		"pixCopyPaste": `{"id":"A-1","pixCopyPaste":"` + samplePixCode + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			up := newUpstream(t, http.StatusCreated, body)
			gw, err := NewGatewayA(up.providerConfig(config.ProviderGatewayA), testOptions())
			require.NoError(t, err)

			res, err := gw.CreatePixTransaction(context.Background(), mariaRequest())
			require.NoError(t, err)
			assert.Equal(t, samplePixCode, res.PixCode)
		})
	}
}

func TestGatewayA_CreatePixTransaction_FallbackID(t *testing.T) {
	up := newUpstream(t, http.StatusCreated, `{"pixCode":"`+samplePixCode+`"}`)
	gw, err := NewGatewayA(up.providerConfig(config.ProviderGatewayA), testOptions())
	require.NoError(t, err)

	res, err := gw.CreatePixTransaction(context.Background(), mariaRequest())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.ID, "gwa_"), "got %s", res.ID)
	assert.Equal(t, res.ExternalID, res.ID)
	assert.Equal(t, up.lastCall().Body["externalId"], res.ID)
}

func TestGatewayA_Timeout(t *testing.T) {
	up := newUpstream(t, http.StatusOK, `{}`)
	up.delay = 300 * time.Millisecond
	opts := testOptions()
	opts.Timeout = 50 * time.Millisecond
	gw, err := NewGatewayA(up.providerConfig(config.ProviderGatewayA), opts)
	require.NoError(t, err)

	_, err = gw.CreatePixTransaction(context.Background(), mariaRequest())
	require.Error(t, err)
	assert.True(t, entities.IsTimeout(err), "expected timeout, got %v", err)
}

func TestGatewayA_CheckTransactionStatus(t *testing.T) {
	up := newUpstream(t, http.StatusOK, `{"id":"A-1","status":"APPROVED","amount":6490,"approvedAt":"2024-06-10 12:00:00"}`)
	gw, err := NewGatewayA(up.providerConfig(config.ProviderGatewayA), testOptions())
	require.NoError(t, err)

	res, err := gw.CheckTransactionStatus(context.Background(), "A-1")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusPaid, res.Status)
	assert.Equal(t, "id=A-1", up.lastCall().Query)
	require.NotNil(t, res.ApprovedAt)
	assert.Nil(t, res.RejectedAt)
}

func TestNewGatewayA_RequiresSecret(t *testing.T) {
	_, err := NewGatewayA(config.ProviderConfig{BaseURL: "http://x"}, testOptions())
	var cfgErr *entities.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.NotContains(t, err.Error(), "sk_")
}
