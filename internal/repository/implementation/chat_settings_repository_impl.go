package implementation

import (
	"context"
	"errors"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/mapper"
	"ai-chat-be/internal/model"
	"ai-chat-be/internal/repository/contract"
	"ai-chat-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSettingsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatSettingsRepository(db *gorm.DB) contract.ChatSettingsRepository {
	return &ChatSettingsRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatSettingsRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatSettingsRepositoryImpl) Create(ctx context.Context, settings *entity.ChatSettings) error {
	m := r.mapper.SettingsToModel(settings)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.SettingsToEntity(m)
	return nil
}

func (r *ChatSettingsRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSettings, error) {
	var m model.ChatSettings
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.SettingsToEntity(&m), nil
}

func (r *ChatSettingsRepositoryImpl) UpdateMaxTokens(ctx context.Context, userId uuid.UUID, maxTokens int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.ChatSettings{}).
		Where("user_id = ?", userId).
		Update("max_tokens", maxTokens)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *ChatSettingsRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatSettings{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
