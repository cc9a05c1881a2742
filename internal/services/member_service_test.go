package services

import (
	"testing"
	"time"

	"watchparty_backend/internal/repositories"
	"watchparty_backend/internal/services/dto"
	"watchparty_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemberService() MemberService {
	return NewMemberService(
		repositories.NewMemberRepository(),
		repositories.NewUserRepository(),
		repositories.NewPartyGuestRepository(),
		repositories.NewNotificationRepository(),
	)
}

func TestUpdateProfileSelfOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestMemberService()
	owner := createTestMember(t, db, "owner@example.com", "Casey")
	other := createTestMember(t, db, "other@example.com", "Riley")

	req := &dto.UpdateProfileRequest{
		FirstName: "Casey",
		LastName:  "Updated",
		Bio:       "hello",
		Location:  "Berlin",
	}

	_, err := svc.UpdateProfile(db, other.ID, owner.ID, req)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPCode)

	updated, err := svc.UpdateProfile(db, owner.ID, owner.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.Bio)
	assert.Equal(t, "Casey Updated", updated.FullName)
}

func TestGetMyProfileCounters(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestMemberService()
	partySvc, _ := newTestPartyService(false)
	member := createTestMember(t, db, "casey@example.com", "Casey")

	now := time.Now().UTC()
	_, err := partySvc.CreateParty(db, member.ID, partyRequest("Upcoming", now.Add(time.Hour), nil))
	require.NoError(t, err)
	_, err = partySvc.CreateParty(db, member.ID, partyRequest("Long Gone", now.Add(-72*time.Hour), nil))
	require.NoError(t, err)

	createTestNotification(t, db, member.ID, "ping")

	profile, err := svc.GetMyProfile(db, member.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.UpcomingCount, "ended parties do not count")
	assert.EqualValues(t, 1, profile.UnreadCount)
}

func TestGetMemberNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestMemberService()

	_, err := svc.GetMember(db, "no-such-member")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
