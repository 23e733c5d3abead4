// Command doorforge synthesizes a retail product catalog from harvested
// image manifests and serves it over a read-only JSON API.
package main
