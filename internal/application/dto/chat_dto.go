package dto

import "github.com/ics-security/hrm-chat-gateway/internal/domain/entity"

// ChatSendRequest body for POST /api/chat.
type ChatSendRequest struct {
	Question string `json:"question"`
}

// TranscriptResponse the current transcript after an operation.
type TranscriptResponse struct {
	Messages []entity.Message `json:"messages"`
	Pending  bool             `json:"pending"`
}

// QuickActionDTO a pre-filled question button.
type QuickActionDTO struct {
	ID       string `json:"id"`
	Icon     string `json:"icon"`
	Label    string `json:"label"`
	Question string `json:"question"`
	Color    string `json:"color"`
}

// ActionButtonDTO a button that opens a modal action workflow.
type ActionButtonDTO struct {
	ID         string `json:"id"`
	Icon       string `json:"icon"`
	Label      string `json:"label"`
	ActionType string `json:"action_type"`
	Color      string `json:"color"`
}

// QuickActionsResponse the role's sidebar presets.
type QuickActionsResponse struct {
	Actions       []QuickActionDTO  `json:"actions"`
	ActionButtons []ActionButtonDTO `json:"action_buttons"`
}
