// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"strings"
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Environment values reported to the gateway and recorded on payments
const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"
)

// Config defines the configuration options for this service.
type Config struct {
	BindAddr             string `env:"BIND_ADDR"              flag:"bind-addr"               flagDesc:"Bind address"`
	Collection           string `env:"MONGODB_COLLECTION"     flag:"mongodb-collection"      flagDesc:"MongoDB collection for payment additional data"`
	Database             string `env:"MONGODB_DATABASE"       flag:"mongodb-database"        flagDesc:"MongoDB database for payment additional data"`
	MongoDBURL           string `env:"MONGODB_URL"            flag:"mongodb-url"             flagDesc:"MongoDB server URL"`
	MerchantID           string `env:"PAYMENTS_MERCHANT_ID"   flag:"merchant-id"             flagDesc:"Merchant identifier used to scope gateway request paths"`
	Environment          string `env:"PAYMENTS_ENVIRONMENT"   flag:"payments-environment"    flagDesc:"Default gateway environment (sandbox or production)"`
	SandboxStoreViews    string `env:"SANDBOX_STORE_VIEWS"    flag:"sandbox-store-views"     flagDesc:"Comma separated store view codes forced to the sandbox environment"`
	GatewaySandboxURL    string `env:"GATEWAY_SANDBOX_URL"    flag:"gateway-sandbox-url"     flagDesc:"Base URL for the sandbox payment services gateway"`
	GatewayProductionURL string `env:"GATEWAY_PRODUCTION_URL" flag:"gateway-production-url"  flagDesc:"Base URL for the production payment services gateway"`
	GatewayAPIKey        string `env:"GATEWAY_API_KEY"        flag:"gateway-api-key"         flagDesc:"API key used to authenticate calls to the gateway"`
	CheckoutAPIKey       string `env:"CHECKOUT_API_KEY"       flag:"checkout-api-key"        flagDesc:"Shared key the host platform presents on checkout session calls"`
	CheckoutWebURL       string `env:"CHECKOUT_WEB_URL"       flag:"checkout-web-url"        flagDesc:"Base URL for the storefront checkout"`
	EncryptionKey        string `env:"PAYMENTS_ENCRYPTION_KEY" flag:"payments-encryption-key" flagDesc:"Key used to encrypt sensitive payment tokens at rest"`
	FastlaneEnabled      bool   `env:"FASTLANE_ENABLED"       flag:"fastlane-enabled"        flagDesc:"Enable the Fastlane one-click checkout flow"`
	FastlaneMessaging    bool   `env:"FASTLANE_MESSAGING"     flag:"fastlane-messaging"      flagDesc:"Enable Fastlane promotional messaging"`
	FastlaneStyling      string `env:"FASTLANE_STYLING"       flag:"fastlane-styling"        flagDesc:"Key=value pairs applied to the Fastlane widget styling"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:    "payments",
		Collection:  "payment_additional_data",
		Environment: EnvironmentSandbox,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsConfigured reports whether the base gateway integration has been set up
// for this installation.
func (c *Config) IsConfigured() bool {
	return c.MerchantID != "" && c.GatewayURL(c.Environment) != ""
}

// EnvironmentType resolves the gateway environment for a store view. Store
// views listed in SandboxStoreViews are forced to sandbox regardless of the
// service-level default.
func (c *Config) EnvironmentType(storeViewCode string) string {
	if storeViewCode != "" {
		for _, code := range strings.Split(c.SandboxStoreViews, ",") {
			if strings.TrimSpace(code) == storeViewCode {
				return EnvironmentSandbox
			}
		}
	}
	if c.Environment == EnvironmentProduction {
		return EnvironmentProduction
	}
	return EnvironmentSandbox
}

// GatewayURL returns the gateway base URL for the given environment
func (c *Config) GatewayURL(environment string) string {
	if environment == EnvironmentProduction {
		return c.GatewayProductionURL
	}
	return c.GatewaySandboxURL
}

// FastlaneStyles parses the configured styling string into the key=value map
// handed to the frontend widget.
func (c *Config) FastlaneStyles() map[string]string {
	styles := map[string]string{}
	for _, pair := range strings.Split(c.FastlaneStyling, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && kv[0] != "" {
			styles[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	return styles
}
