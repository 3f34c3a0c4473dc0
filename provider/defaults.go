package provider

// defaultModels is the single per-vendor default-model table. Adapters
// consult it when Config.Model is empty so no caller has to carry its own
// copy of vendor model names.
var defaultModels = map[Provider]string{
	OpenAI:    "gpt-3.5-turbo",
	Anthropic: "claude-3-5-sonnet-20241022",
	Gemini:    "gemini-1.5-flash",
	Mistral:   "mistral-small-latest",
}

// DefaultModel returns the default model for a vendor, or "" for an
// unknown tag.
func DefaultModel(p Provider) string { return defaultModels[p] }

// ResolveModel returns model unless it is empty, in which case the
// vendor's default is used.
func ResolveModel(p Provider, model string) string {
	if model != "" {
		return model
	}
	return DefaultModel(p)
}
