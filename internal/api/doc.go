// Package api defines the JSON payload types served by the product API.
// These shapes mirror the generated storefront route handlers so both
// surfaces stay interchangeable for clients.
package api
