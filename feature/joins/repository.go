package joins

import (
	"context"
	"fmt"

	"invite-tracker/core/database"
	"invite-tracker/core/tracker"

	"gorm.io/gorm"
)

// Repository persists join records.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on top of db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the join table and checks the resulting columns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&JoinRecord{}); err != nil {
		return fmt.Errorf("failed to migrate join records: %w", err)
	}
	return VerifySchema(db)
}

// VerifySchema fails when the join table lacks a column the repository writes.
func VerifySchema(db *gorm.DB) error {
	missing, err := database.MissingColumns(db, JoinRecord{}.TableName(), columns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns %v", JoinRecord{}.TableName(), missing)
	}
	return nil
}

// Save inserts a record.
func (r *Repository) Save(ctx context.Context, rec *JoinRecord) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to save join record: %w", err)
	}
	return nil
}

// ListByGuild returns the latest joins of a guild, newest first.
func (r *Repository) ListByGuild(ctx context.Context, guildID string, limit int) ([]JoinRecord, error) {
	var records []JoinRecord
	err := r.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list joins for guild %s: %w", guildID, err)
	}
	return records, nil
}

// Leaderboard counts the joins credited to each inviter of a guild.
func (r *Repository) Leaderboard(ctx context.Context, guildID string, limit int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := r.db.WithContext(ctx).
		Model(&JoinRecord{}).
		Select("inviter_id, COUNT(*) AS joins").
		Where("guild_id = ? AND outcome = ?", guildID, tracker.OutcomeInviter).
		Group("inviter_id").
		Order("joins DESC, inviter_id").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard for guild %s: %w", guildID, err)
	}
	return entries, nil
}
