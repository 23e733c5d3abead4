// Package catalog synthesizes the product catalog from harvested image
// records and owns the persisted catalog artifact.
//
// Synthesis is a one-shot batch: every run regenerates the full catalog from
// the harvest manifest, products are never mutated afterwards, and the JSON
// catalog file is the sole durable representation. The Synthesizer holds the
// immutable category configuration and an injected random source so runs can
// be reproduced with a fixed seed.
package catalog
