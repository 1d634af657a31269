package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/adnanmuhammad4393/henna-storefront/internal/config"
	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
	"github.com/hellofresh/health-go/v5"
)

const gatewayEndpoint = "https://api.razorpay.com"

func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	options := []health.Option{
		health.WithComponent(health.Component{
			Name:    "henna-storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
	}

	// The gateway strategy depends on Razorpay being reachable; the UPI
	// strategy only hands out links, so there is nothing to probe.
	if cfg.Checkout.Strategy == string(models.StrategyGateway) {
		options = append(options, health.WithChecks(health.Config{
			Name:      "payment-gateway",
			Timeout:   3 * time.Second,
			SkipOnErr: true,
			Check:     gatewayCheck,
		}))
	}

	return health.New(options...)
}

func gatewayCheck(ctx context.Context) error {

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, gatewayEndpoint, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("payment gateway unreachable: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	return nil
}
