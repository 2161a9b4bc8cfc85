package payments

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/madenai/arqflow/config"
	"github.com/madenai/arqflow/internal/logger"
)

// Gateway errors.
var (
	ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrNotConfigured      = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges through the Mercado Pago SDK. With
// PAYMENT_GATEWAY_MOCK enabled it approves everything locally, which keeps
// development and CI off the wire.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ Gateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the gateway from the access token, honoring
// mock mode.
func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if mockEnabled() {
		logger.Warn("payment gateway running in mock mode")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	logger.Info("Mercado Pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// Name identifies the provider on payment records.
func (g *MercadoPagoGateway) Name() string {
	return "mercadopago"
}

// CreateCharge submits a charge and returns the provider's ID and status.
func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		logger.InfoWithFields("mock charge approved", map[string]interface{}{
			"provider_payment_id": id,
			"amount":              req.Amount,
		})
		return ChargeResult{ProviderPaymentID: id, ProviderStatus: "approved"}, nil
	}

	if g == nil || g.client == nil {
		return ChargeResult{}, ErrNotConfigured
	}

	resp, err := g.client.Create(ctx, payment.Request{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		Payer: &payment.PayerRequest{
			Email: req.PayerEmail,
		},
	})
	if err != nil {
		logger.Errorf("mercado pago charge failed: %v", err)
		return ChargeResult{}, err
	}

	return ChargeResult{
		ProviderPaymentID: strconv.Itoa(resp.ID),
		ProviderStatus:    resp.Status,
	}, nil
}

func mockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(config.GetEnv("PAYMENT_GATEWAY_MOCK", "")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
