package deepseek

const (
	// DefaultBaseURL is the DeepSeek OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is used when the config leaves the model unset.
	DefaultModel = "deepseek-chat"
)
