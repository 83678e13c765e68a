package services

import (
	"context"
	"daily-journal/models"
	"time"
)

type SettingsService struct {
	repo SettingsRepository
	now  Clock
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo, now: time.Now}
}

// Get returns the setting for key, or nil when it was never set.
func (ss *SettingsService) Get(ctx context.Context, key string) (*models.Setting, error) {
	s, err := ss.repo.GetSetting(ctx, key)
	if err != nil {
		return nil, storageFailure("get setting", err)
	}
	return s, nil
}

func (ss *SettingsService) Set(ctx context.Context, key, value string) (*models.Setting, error) {
	s := &models.Setting{Key: key, Value: value, UpdatedAt: models.Timestamp(ss.now())}
	if err := ss.repo.UpsertSetting(ctx, s); err != nil {
		return nil, storageFailure("set setting", err)
	}
	return s, nil
}
