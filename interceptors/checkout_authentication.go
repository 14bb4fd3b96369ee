// Package interceptors holds the middleware applied to the checkout API
// subrouters.
package interceptors

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/commercekit/paypal-checkout-api/config"
	"github.com/commercekit/paypal-checkout-api/helpers"
	"github.com/companieshouse/chs.go/log"
)

// CheckoutAuthenticationInterceptor contains the config holding the checkout API key
type CheckoutAuthenticationInterceptor struct {
	Config *config.Config
}

// CheckoutAuthenticationIntercept checks that the caller presents the
// checkout API key as a bearer token before any order or payment endpoint
// runs.
func (interceptor CheckoutAuthenticationInterceptor) CheckoutAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if interceptor.Config.CheckoutAPIKey == "" {
			log.ErrorR(r, fmt.Errorf("CheckoutAuthenticationInterceptor error: no checkout api key configured"))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		token, ok := bearerToken(r)
		if !ok {
			log.ErrorR(r, fmt.Errorf("CheckoutAuthenticationInterceptor unauthorised: no bearer token"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(interceptor.Config.CheckoutAPIKey)) != 1 {
			log.ErrorR(r, fmt.Errorf("CheckoutAuthenticationInterceptor unauthorised: invalid checkout api key"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyCheckoutSession, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}

	token := strings.TrimPrefix(header, "Bearer ")
	return token, token != ""
}
