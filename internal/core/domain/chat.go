package domain

import "time"

// ChatThread is a persisted conversation with a chatbot
type ChatThread struct {
	ID            string     `json:"id"`
	ChatbotID     string     `json:"chatbot_id"`
	Title         string     `json:"title"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ChatMessage is a single message within a thread
type ChatMessage struct {
	ID             string            `json:"id"`
	ThreadID       string            `json:"thread_id"`
	Content        string            `json:"content"`
	FromUser       bool              `json:"from_user"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Sources        []string          `json:"sources,omitempty"`
	ResponseTimeMS int               `json:"response_time_ms,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}
