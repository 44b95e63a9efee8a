package explain

// ExplainRequest is the body of POST /api/explain. Text is the snippet
// the user highlighted; it is the only required field.
type ExplainRequest struct {
	Topic      string `json:"topic"`
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
}

// ExplainResult carries the Markdown explanation back to the client.
type ExplainResult struct {
	Topic       string `json:"topic"`
	Explanation string `json:"explanation"`
}
