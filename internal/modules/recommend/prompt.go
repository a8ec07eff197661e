package recommend

const responseShape = `{
  "recommendations": [
    {
      "title": "Movie Title",
      "reason": "Why this matches the query"
    }
  ],
  "explanation": "Short summary"
}`

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatMessages returns exactly two turns: system then user.
func chatMessages(system, user string) []Message {
	return []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}
}

func buildUserMessage(digest, prompt string) string {
	return "Here are the movies from the database:\n\n" + digest +
		"\n\nBased on this, answer: " + prompt +
		"\n\nRespond in this format:\n" + responseShape
}
