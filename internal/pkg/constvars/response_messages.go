package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Schedule messages
	NoCurrentClassMessage = "No current class"
)
