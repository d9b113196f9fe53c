package responses

type DisplayPeriod struct {
	Block string `json:"block,omitempty"`
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// CurrentBlock is either a labeled period or a message saying no class is running.
type CurrentBlock struct {
	Block   string `json:"block,omitempty"`
	Name    string `json:"name,omitempty"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
	Message string `json:"message,omitempty"`
}
