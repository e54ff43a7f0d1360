package discord

import (
	"context"
	"errors"
	"testing"

	"invite-tracker/core/tracker"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockTracker struct {
	mock.Mock
}

func (m *mockTracker) Start(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockTracker) HasGuild(ctx context.Context, guildID string) (bool, error) {
	args := m.Called(ctx, guildID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTracker) AddGuildCache(ctx context.Context, guildID string) error {
	return m.Called(ctx, guildID).Error(0)
}

func (m *mockTracker) RemoveGuildCache(ctx context.Context, guildID string) error {
	return m.Called(ctx, guildID).Error(0)
}

func (m *mockTracker) UpdateInviteCache(ctx context.Context, inv tracker.Invite) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *mockTracker) RemoveInviteCache(ctx context.Context, guildID, code string) error {
	return m.Called(ctx, guildID, code).Error(0)
}

func (m *mockTracker) FetchInviter(ctx context.Context, guildID, memberID string) (tracker.Attribution, error) {
	args := m.Called(ctx, guildID, memberID)
	return args.Get(0).(tracker.Attribution), args.Error(1)
}

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Record(ctx context.Context, guildID, memberID string, attr tracker.Attribution) error {
	return m.Called(ctx, guildID, memberID, attr).Error(0)
}

func newTestAdapter() (*Adapter, *mockTracker, *mockSink) {
	mt := new(mockTracker)
	ms := new(mockSink)
	return NewAdapter(mt, ms, zap.NewNop(), 0), mt, ms
}

func TestAdapter_Ready(t *testing.T) {
	a, mt, _ := newTestAdapter()
	mt.On("Start", mock.Anything).Return(errors.New("partial load"))

	a.onReady(nil, &discordgo.Ready{})
	mt.AssertCalled(t, "Start", mock.Anything)
}

func TestAdapter_GuildCreate(t *testing.T) {
	t.Run("Unknown guild is loaded", func(t *testing.T) {
		a, mt, _ := newTestAdapter()
		mt.On("HasGuild", mock.Anything, "g1").Return(false, nil)
		mt.On("AddGuildCache", mock.Anything, "g1").Return(nil)

		a.onGuildCreate(nil, &discordgo.GuildCreate{Guild: &discordgo.Guild{ID: "g1"}})
		mt.AssertExpectations(t)
	})

	t.Run("Known guild is skipped", func(t *testing.T) {
		a, mt, _ := newTestAdapter()
		mt.On("HasGuild", mock.Anything, "g1").Return(true, nil)

		a.onGuildCreate(nil, &discordgo.GuildCreate{Guild: &discordgo.Guild{ID: "g1"}})
		mt.AssertNotCalled(t, "AddGuildCache", mock.Anything, mock.Anything)
	})

	t.Run("Unavailable guild is skipped", func(t *testing.T) {
		a, mt, _ := newTestAdapter()

		a.onGuildCreate(nil, &discordgo.GuildCreate{Guild: &discordgo.Guild{ID: "g1", Unavailable: true}})
		mt.AssertNotCalled(t, "HasGuild", mock.Anything, mock.Anything)
	})

	t.Run("Cache check failure is logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		mt := new(mockTracker)
		a := NewAdapter(mt, new(mockSink), zap.New(core), 0)
		mt.On("HasGuild", mock.Anything, "g1").Return(false, tracker.ErrStopped)

		a.onGuildCreate(nil, &discordgo.GuildCreate{Guild: &discordgo.Guild{ID: "g1"}})

		mt.AssertNotCalled(t, "AddGuildCache", mock.Anything, mock.Anything)
		entries := logs.FilterMessage("Failed to check guild cache").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "g1", entries[0].ContextMap()["guild_id"])
		assert.Contains(t, entries[0].ContextMap()["error"], tracker.ErrStopped.Error())
	})
}

func TestAdapter_GuildDelete(t *testing.T) {
	a, mt, _ := newTestAdapter()
	mt.On("RemoveGuildCache", mock.Anything, "g1").Return(nil)

	a.onGuildDelete(nil, &discordgo.GuildDelete{Guild: &discordgo.Guild{ID: "g2", Unavailable: true}})
	a.onGuildDelete(nil, &discordgo.GuildDelete{Guild: &discordgo.Guild{ID: "g1"}})

	mt.AssertExpectations(t)
	mt.AssertNotCalled(t, "RemoveGuildCache", mock.Anything, "g2")
}

func TestAdapter_InviteEvents(t *testing.T) {
	a, mt, _ := newTestAdapter()
	expected := tracker.Invite{GuildID: "g1", Code: "abc", InviterID: "u1", MaxUses: 5}
	mt.On("UpdateInviteCache", mock.Anything, expected).Return(nil)
	mt.On("RemoveInviteCache", mock.Anything, "g1", "abc").Return(nil)

	a.onInviteCreate(nil, &discordgo.InviteCreate{
		GuildID: "g1",
		Invite:  &discordgo.Invite{Code: "abc", Inviter: &discordgo.User{ID: "u1"}, MaxUses: 5},
	})
	a.onInviteDelete(nil, &discordgo.InviteDelete{GuildID: "g1", Code: "abc"})

	mt.AssertExpectations(t)
}

func TestAdapter_MemberAdd(t *testing.T) {
	join := &discordgo.GuildMemberAdd{Member: &discordgo.Member{GuildID: "g1", User: &discordgo.User{ID: "m1"}}}

	t.Run("Attribution is recorded", func(t *testing.T) {
		a, mt, ms := newTestAdapter()
		attr := tracker.Attribution{Outcome: tracker.OutcomeInviter, Code: "abc", InviterID: "u1"}
		mt.On("FetchInviter", mock.Anything, "g1", "m1").Return(attr, nil)
		ms.On("Record", mock.Anything, "g1", "m1", attr).Return(nil)

		a.onMemberAdd(nil, join)
		ms.AssertExpectations(t)
	})

	t.Run("No match is recorded too", func(t *testing.T) {
		a, mt, ms := newTestAdapter()
		attr := tracker.Attribution{Outcome: tracker.OutcomeNoMatch}
		mt.On("FetchInviter", mock.Anything, "g1", "m1").Return(attr, nil)
		ms.On("Record", mock.Anything, "g1", "m1", attr).Return(nil)

		a.onMemberAdd(nil, join)
		ms.AssertExpectations(t)
	})

	t.Run("Failed fetch is not recorded", func(t *testing.T) {
		a, mt, ms := newTestAdapter()
		mt.On("FetchInviter", mock.Anything, "g1", "m1").Return(tracker.Attribution{Outcome: tracker.OutcomeNoMatch}, errors.New("timeout"))

		a.onMemberAdd(nil, join)
		ms.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Bots are ignored", func(t *testing.T) {
		a, mt, _ := newTestAdapter()

		a.onMemberAdd(nil, &discordgo.GuildMemberAdd{Member: &discordgo.Member{GuildID: "g1", User: &discordgo.User{ID: "b1", Bot: true}}})
		mt.AssertNotCalled(t, "FetchInviter", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRegister(t *testing.T) {
	a, _, _ := newTestAdapter()
	s, err := discordgo.New("Bot token")
	assert.NoError(t, err)

	unregister := a.Register(s)
	assert.NotNil(t, unregister)
	unregister()
}
