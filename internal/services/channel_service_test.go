package services

import (
	"testing"
	"time"

	"watchparty_backend/internal/models"
	"watchparty_backend/internal/repositories"
	"watchparty_backend/internal/services/dto"
	"watchparty_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChannelService() (ChannelService, *capturePublisher) {
	notifier, pub := newTestNotifier()
	svc := NewChannelService(
		repositories.NewChannelRepository(),
		repositories.NewChannelMemberRepository(),
		repositories.NewMemberRepository(),
		notifier,
	)
	return svc, pub
}

func TestCreateChannelEnrollsCreator(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestChannelService()
	creator := createTestMember(t, db, "creator@example.com", "Casey")

	channel, err := svc.CreateChannel(db, creator.ID, &dto.CreateChannelRequest{Name: "soccer"})
	require.NoError(t, err)

	require.Len(t, channel.Members, 1)
	assert.Equal(t, creator.ID, channel.Members[0].MemberID)
}

func TestJoinChannelTwiceIsConflict(t *testing.T) {
	db := setupTestDB(t)
	svc, pub := newTestChannelService()
	creator := createTestMember(t, db, "creator@example.com", "Casey")
	joiner := createTestMember(t, db, "joiner@example.com", "Riley")

	channel, err := svc.CreateChannel(db, creator.ID, &dto.CreateChannelRequest{Name: "films"})
	require.NoError(t, err)

	cm, err := svc.JoinChannel(db, joiner.ID, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, joiner.ID, cm.MemberID)

	delivered := pub.waitForDelivery(t)
	assert.Equal(t, creator.ID, delivered.RecipientID, "channel creator is told about the join")

	_, err = svc.JoinChannel(db, joiner.ID, channel.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestLeaveChannelNoop(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestChannelService()
	creator := createTestMember(t, db, "creator@example.com", "Casey")
	outsider := createTestMember(t, db, "outsider@example.com", "Riley")

	channel, err := svc.CreateChannel(db, creator.ID, &dto.CreateChannelRequest{Name: "books"})
	require.NoError(t, err)

	require.NoError(t, svc.LeaveChannel(db, outsider.ID, channel.ID))

	err = svc.LeaveChannel(db, outsider.ID, "no-such-channel")
	require.Error(t, err)
}

func TestDeleteChannelDetachesParties(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestChannelService()
	partySvc, _ := newTestPartyService(false)
	creator := createTestMember(t, db, "creator@example.com", "Casey")

	channel, err := svc.CreateChannel(db, creator.ID, &dto.CreateChannelRequest{Name: "live"})
	require.NoError(t, err)

	party, err := partySvc.CreateParty(db, creator.ID, partyRequest("Season Opener", time.Now().Add(time.Hour), &channel.ID))
	require.NoError(t, err)

	other := createTestMember(t, db, "other@example.com", "Riley")
	err = svc.DeleteChannel(db, other.ID, channel.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPCode)

	require.NoError(t, svc.DeleteChannel(db, creator.ID, channel.ID))

	// The party survives, detached from the deleted channel.
	var stored models.Party
	require.NoError(t, db.First(&stored, "id = ?", party.ID).Error)
	assert.Nil(t, stored.ChannelID)

	var memberCount int64
	require.NoError(t, db.Model(&models.ChannelMember{}).Count(&memberCount).Error)
	assert.Zero(t, memberCount)
}
