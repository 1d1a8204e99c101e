package domain

import "time"

// Visibility controls who can reach a chatbot
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

// Branding holds the widget appearance settings for a chatbot
type Branding struct {
	WidgetColor    string `json:"widget_color,omitempty"`
	WidgetPosition string `json:"widget_position,omitempty"`
	WidgetTitle    string `json:"widget_title,omitempty"`
	WelcomeMessage string `json:"welcome_message,omitempty"`
}

// Chatbot represents a document-backed chatbot as the API reports it
type Chatbot struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	CompanyID          string     `json:"company_id"`
	CreatedBy          string     `json:"created_by,omitempty"`
	Status             string     `json:"status,omitempty"`
	Visibility         Visibility `json:"visibility"`
	DocumentIDs        []string   `json:"document_ids"`
	PublicLinkID       string     `json:"public_link_id,omitempty"`
	PublicLinkEnabled  bool       `json:"public_link_enabled"`
	PublicLinkExpires  *time.Time `json:"public_link_expires_at,omitempty"`
	IntegrationEnabled bool       `json:"integration_enabled"`
	SystemPrompt       string     `json:"system_prompt,omitempty"`
	Temperature        float64    `json:"temperature"`
	MaxTokens          int        `json:"max_tokens"`
	ModelName          string     `json:"model_name,omitempty"`
	TotalConversations int        `json:"total_conversations"`
	TotalMessages      int        `json:"total_messages"`
	LastUsedAt         *time.Time `json:"last_used_at,omitempty"`
	Branding           Branding   `json:"branding"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ChatbotDraft is the create/update payload
type ChatbotDraft struct {
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	Visibility         Visibility `json:"visibility,omitempty"`
	PublicLinkEnabled  bool       `json:"public_link_enabled"`
	IntegrationEnabled bool       `json:"integration_enabled"`
	SystemPrompt       string     `json:"system_prompt,omitempty"`
	Temperature        float64    `json:"temperature"`
	MaxTokens          int        `json:"max_tokens"`
	ModelName          string     `json:"model_name,omitempty"`
	WidgetColor        string     `json:"widget_color,omitempty"`
	WidgetPosition     string     `json:"widget_position,omitempty"`
	WidgetTitle        string     `json:"widget_title,omitempty"`
	WelcomeMessage     string     `json:"welcome_message,omitempty"`
}

// Validate checks the draft before any network call is made.
// Temperature must stay within [0, 2] and max tokens within [1, 4000],
// matching the form-level rules of the dashboard.
func (d ChatbotDraft) Validate() error {
	if d.Name == "" {
		return ErrInvalidInput
	}
	if d.Temperature < 0 || d.Temperature > 2 {
		return ErrInvalidInput
	}
	if d.MaxTokens < 1 || d.MaxTokens > 4000 {
		return ErrInvalidInput
	}
	if d.Visibility != "" && d.Visibility != VisibilityPrivate && d.Visibility != VisibilityPublic {
		return ErrInvalidInput
	}
	return nil
}

// PublicLink is returned by the public-link generate endpoint.
// The link id exists only while the link is enabled; disabling clears it.
type PublicLink struct {
	PublicLinkID      string     `json:"public_link_id"`
	PublicLinkEnabled bool       `json:"public_link_enabled"`
	ExpiresAt         *time.Time `json:"public_link_expires_at,omitempty"`
}

// WidgetCode is the embeddable snippet for third-party sites
type WidgetCode struct {
	Code string `json:"code"`
}

// TestReply is the response of the chatbot test endpoint
type TestReply struct {
	Response       string   `json:"response"`
	Sources        []string `json:"sources,omitempty"`
	ResponseTimeMS int      `json:"response_time_ms,omitempty"`
}
