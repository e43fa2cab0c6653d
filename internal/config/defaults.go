package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# Testgen Configuration
# Values here are overridden by TESTGEN_* environment variables.
# The API key is usually supplied via OPENAI_API_KEY instead of this file.

# Completion service settings
base_url: https://api.openai.com/v1   # OpenAI-compatible endpoint prefix
model: gpt-4o-mini                    # Completion model identifier
temperature: 0.3                      # Sampling temperature (0.0-2.0)
max_tokens: 2000                      # Maximum reply length in tokens
timeout: 120                          # Per-request timeout in seconds
max_retries: 2                        # Transport-level retries (rate limits, 5xx)

# Output settings
output_format: console                # Default format: console | json | markdown
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"api_key":  "",
		"base_url": "https://api.openai.com/v1",
		"model":    "gpt-4o-mini",
		// temperature: Low but non-zero so scenario wording varies without
		// drifting from the requested JSON shape.
		"temperature": 0.3,
		"max_tokens":  2000,
		// timeout: 2 minutes covers large suites on slow models.
		"timeout":       120,
		"max_retries":   2,
		"output_format": "console",
	}
}
