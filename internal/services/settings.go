package services

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/reportdesk/internal/common"
	"github.com/dmitrijs2005/reportdesk/internal/dbx"
	"github.com/dmitrijs2005/reportdesk/internal/repositories/settings"
)

// Settings are the user preferences shown on the settings screen.
type Settings struct {
	EmailNotifications bool
	DarkMode           bool
	AutoSave           bool
}

// DefaultSettings mirrors the defaults of the settings screen.
func DefaultSettings() Settings {
	return Settings{
		EmailNotifications: true,
		DarkMode:           false,
		AutoSave:           true,
	}
}

const (
	keyEmailNotifications = "email_notifications"
	keyDarkMode           = "dark_mode"
	keyAutoSave           = "auto_save"
)

// SettingsService loads and saves Settings through the key/value repository.
// Save writes all keys in one transaction so a half-written preference set is
// never observable.
type SettingsService struct {
	db *sql.DB
}

func NewSettingsService(db *sql.DB) *SettingsService {
	return &SettingsService{db: db}
}

func (s *SettingsService) Load(ctx context.Context) (Settings, error) {
	repo := settings.NewSQLiteRepository(s.db)

	stored, err := repo.List(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("error loading settings: %w: %w", common.ErrStorageUnavailable, err)
	}

	result := DefaultSettings()
	assign := func(key string, dst *bool) {
		if v, ok := stored[key]; ok {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}
	assign(keyEmailNotifications, &result.EmailNotifications)
	assign(keyDarkMode, &result.DarkMode)
	assign(keyAutoSave, &result.AutoSave)

	return result, nil
}

func (s *SettingsService) Save(ctx context.Context, st Settings) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := settings.NewSQLiteRepository(tx)
		pairs := map[string]bool{
			keyEmailNotifications: st.EmailNotifications,
			keyDarkMode:           st.DarkMode,
			keyAutoSave:           st.AutoSave,
		}
		for key, value := range pairs {
			if err := repo.Set(ctx, key, strconv.FormatBool(value)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error saving settings: %w: %w", common.ErrStorageUnavailable, err)
	}
	return nil
}
