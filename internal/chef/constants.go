package chef

import "time"

const (
	// DefaultModel is the upstream chat model used when none is configured
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultTimeout bounds a single upstream chat call
	DefaultTimeout = 30 * time.Second

	// DefaultTemperature keeps the chef's answers reasonably grounded
	DefaultTemperature = 0.7

	// DefaultMaxTokens caps the upstream completion length
	DefaultMaxTokens = 1024

	chatCompletionsPath = "/chat/completions"
)

// FallbackReply is returned when no upstream API key is configured
const FallbackReply = "The chef is off duty right now. Add an API key to the " +
	"configuration to ask for cooking advice, or browse the suggested recipes instead."

const systemPromptHeader = "You are a helpful home chef assistant for a fridge " +
	"inventory app. Suggest dishes the user can actually cook from what they have, " +
	"prioritize ingredients that are about to expire, and keep answers short and practical."
