package joins

import (
	"context"

	"invite-tracker/core/tracker"

	"go.uber.org/zap"
)

// Recorder logs every attribution and persists it when a repository is set.
type Recorder struct {
	repo   *Repository
	logger *zap.Logger
}

// NewRecorder creates a recorder. repo may be nil.
func NewRecorder(repo *Repository, logger *zap.Logger) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

// Record implements discord.AttributionSink.
func (r *Recorder) Record(ctx context.Context, guildID, memberID string, attr tracker.Attribution) error {
	l := r.logger.With(
		zap.String("guild_id", guildID),
		zap.String("member_id", memberID),
		zap.String("outcome", string(attr.Outcome)),
	)

	switch attr.Outcome {
	case tracker.OutcomeInviter:
		fields := []zap.Field{zap.String("code", attr.Code), zap.String("inviter_id", attr.InviterID)}
		if attr.Inviter == nil {
			fields = append(fields, zap.Bool("inviter_left", true))
		}
		l.Info("Member joined through invite", fields...)
	case tracker.OutcomeNoInviter:
		l.Info("Member joined through vanity invite", zap.String("code", attr.Code))
	default:
		l.Info("Member join could not be attributed")
	}

	if r.repo == nil {
		return nil
	}
	return r.repo.Save(ctx, NewJoinRecord(guildID, memberID, attr))
}
