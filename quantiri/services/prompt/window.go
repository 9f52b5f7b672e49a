// quantiri/services/prompt/window.go
package prompt

import "quantiri/quantiri/types"

// DefaultWindowSize is how many recent turns survive windowing before a
// provider request. Recency matters more than full history here.
const DefaultWindowSize = 12

// Window returns the last size messages in original order. When the
// history already fits it is returned unchanged. Pure function.
func Window(messages []types.PromptMessage, size int) []types.PromptMessage {
	if len(messages) <= size {
		return messages
	}
	return messages[len(messages)-size:]
}
