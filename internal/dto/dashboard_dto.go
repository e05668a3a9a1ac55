package dto

import "ai-chat-be/internal/entity"

// DashboardForm is the single form surface of the dashboard. Action selects
// the dispatch branch: "chat" uses Message, "settings" uses MaxTokens,
// anything else is a no-op render.
type DashboardForm struct {
	Action    string `form:"action"`
	Message   string `form:"message"`
	MaxTokens string `form:"max_tokens"`
}

type DashboardView struct {
	Username string
	Settings *entity.ChatSettings
	History  []*entity.ChatEntry
	Notices  []string
}
