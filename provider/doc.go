// Package provider defines the vendor-agnostic abstractions for calling
// third-party text-generation APIs: the per-request Config (with a
// redacting Secret key type), the uniform Result envelope, the Generator
// interface every vendor adapter implements, the per-vendor default-model
// table and the error classifier that turns heterogeneous vendor failures
// into fixed user-facing messages.
//
// Concrete adapters (openai, anthropic, gemini) live in subpackages so
// higher layers stay decoupled from vendor SDKs.
package provider
