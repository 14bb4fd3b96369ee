package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyCheckoutSession identifies "checkout_session" contexts added to the http request
var ContextKeyCheckoutSession = ContextKey("checkout_session")
