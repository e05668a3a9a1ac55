package mapper

import (
	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) SettingsToModel(e *entity.ChatSettings) *model.ChatSettings {
	return &model.ChatSettings{
		Id:        e.Id,
		UserId:    e.UserId,
		MaxTokens: e.MaxTokens,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *ChatMapper) SettingsToEntity(mo *model.ChatSettings) *entity.ChatSettings {
	return &entity.ChatSettings{
		Id:        mo.Id,
		UserId:    mo.UserId,
		MaxTokens: mo.MaxTokens,
		CreatedAt: mo.CreatedAt,
		UpdatedAt: mo.UpdatedAt,
	}
}

func (m *ChatMapper) EntryToModel(e *entity.ChatEntry) *model.ChatHistory {
	return &model.ChatHistory{
		Id:        e.Id,
		UserId:    e.UserId,
		Message:   e.Message,
		Response:  e.Response,
		CreatedAt: e.CreatedAt,
	}
}

func (m *ChatMapper) EntryToEntity(mo *model.ChatHistory) *entity.ChatEntry {
	return &entity.ChatEntry{
		Id:        mo.Id,
		UserId:    mo.UserId,
		Message:   mo.Message,
		Response:  mo.Response,
		CreatedAt: mo.CreatedAt,
	}
}

func (m *ChatMapper) EntriesToEntities(models []*model.ChatHistory) []*entity.ChatEntry {
	entries := make([]*entity.ChatEntry, len(models))
	for i, mo := range models {
		entries[i] = m.EntryToEntity(mo)
	}
	return entries
}
