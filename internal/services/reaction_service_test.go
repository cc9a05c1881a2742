package services

import (
	"sync"
	"testing"
	"time"

	"watchparty_backend/internal/models"
	"watchparty_backend/internal/services/dto"
	"watchparty_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toggleRequest(partyID, reactionID string) *dto.ToggleReactionRequest {
	return &dto.ToggleReactionRequest{
		PartyID:    partyID,
		ReactionID: reactionID,
		MessageID:  "msg-1",
	}
}

func TestToggleIsAnInvolution(t *testing.T) {
	db := setupTestDB(t)
	partySvc, _ := newTestPartyService(false)
	svc := newTestReactionService()

	member := createTestMember(t, db, "fan@example.com", "Casey")
	reaction := createTestReaction(t, db, "like")
	party, err := partySvc.CreateParty(db, member.ID, partyRequest("Finale", time.Now().Add(time.Hour), nil))
	require.NoError(t, err)

	req := toggleRequest(party.ID, reaction.ID)

	outcome, row, err := svc.Toggle(db, member.ID, req)
	require.NoError(t, err)
	assert.Equal(t, ToggleAdded, outcome)
	require.NotNil(t, row)
	assert.Equal(t, "msg-1", row.MessageID)
	assert.Equal(t, "like", row.Reaction.Name)

	outcome, row, err = svc.Toggle(db, member.ID, req)
	require.NoError(t, err)
	assert.Equal(t, ToggleRemoved, outcome)
	assert.Nil(t, row)

	outcome, _, err = svc.Toggle(db, member.ID, req)
	require.NoError(t, err)
	assert.Equal(t, ToggleAdded, outcome)

	var count int64
	require.NoError(t, db.Model(&models.MessageReaction{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "a tuple never has more than one row")
}

func TestToggleValidatesReferences(t *testing.T) {
	db := setupTestDB(t)
	partySvc, _ := newTestPartyService(false)
	svc := newTestReactionService()

	member := createTestMember(t, db, "fan@example.com", "Casey")
	reaction := createTestReaction(t, db, "like")
	party, err := partySvc.CreateParty(db, member.ID, partyRequest("Finale", time.Now().Add(time.Hour), nil))
	require.NoError(t, err)

	cases := []struct {
		name string
		req  *dto.ToggleReactionRequest
	}{
		{"unknown party", toggleRequest("no-such-party", reaction.ID)},
		{"unknown reaction", toggleRequest(party.ID, "no-such-reaction")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Toggle(db, member.ID, tc.req)
			require.Error(t, err)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, 404, appErr.HTTPCode)
		})
	}

	_, _, err = svc.Toggle(db, "no-such-member", toggleRequest(party.ID, reaction.ID))
	require.Error(t, err)
}

func TestToggleParityUnderConcurrency(t *testing.T) {
	db := setupTestDB(t)
	partySvc, _ := newTestPartyService(false)
	svc := newTestReactionService()

	member := createTestMember(t, db, "fan@example.com", "Casey")
	reaction := createTestReaction(t, db, "love")
	party, err := partySvc.CreateParty(db, member.ID, partyRequest("Derby", time.Now().Add(time.Hour), nil))
	require.NoError(t, err)

	req := toggleRequest(party.ID, reaction.ID)

	const toggles = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	added, removed := 0, 0
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, _, err := svc.Toggle(db, member.ID, req)
			if err != nil {
				return
			}
			mu.Lock()
			if outcome == ToggleAdded {
				added++
			} else {
				removed++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	var count int64
	require.NoError(t, db.Model(&models.MessageReaction{}).Count(&count).Error)

	// Whatever interleaving happened, the row count matches the add/remove
	// balance and never exceeds one.
	assert.EqualValues(t, added-removed, count)
	assert.LessOrEqual(t, count, int64(1))
}

func TestDeleteReactionOwnership(t *testing.T) {
	db := setupTestDB(t)
	partySvc, _ := newTestPartyService(false)
	svc := newTestReactionService()

	creator := createTestMember(t, db, "creator@example.com", "Casey")
	reactor := createTestMember(t, db, "reactor@example.com", "Riley")
	bystander := createTestMember(t, db, "bystander@example.com", "Sam")
	reaction := createTestReaction(t, db, "wow")
	party, err := partySvc.CreateParty(db, creator.ID, partyRequest("Watchalong", time.Now().Add(time.Hour), nil))
	require.NoError(t, err)

	_, row, err := svc.Toggle(db, reactor.ID, toggleRequest(party.ID, reaction.ID))
	require.NoError(t, err)
	require.NotNil(t, row)

	err = svc.Delete(db, bystander.ID, row.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	// The party creator may moderate any reaction in their party.
	require.NoError(t, svc.Delete(db, creator.ID, row.ID))

	// Deleting an already-gone row after passing the ownership check is clean.
	require.NoError(t, svc.Delete(db, creator.ID, row.ID))
}

func TestListFiltersByMessageAndParty(t *testing.T) {
	db := setupTestDB(t)
	partySvc, _ := newTestPartyService(false)
	svc := newTestReactionService()

	member := createTestMember(t, db, "fan@example.com", "Casey")
	like := createTestReaction(t, db, "like")
	party1, err := partySvc.CreateParty(db, member.ID, partyRequest("One", time.Now().Add(time.Hour), nil))
	require.NoError(t, err)
	party2, err := partySvc.CreateParty(db, member.ID, partyRequest("Two", time.Now().Add(time.Hour), nil))
	require.NoError(t, err)

	for _, req := range []*dto.ToggleReactionRequest{
		{PartyID: party1.ID, ReactionID: like.ID, MessageID: "msg-a"},
		{PartyID: party1.ID, ReactionID: like.ID, MessageID: "msg-b"},
		{PartyID: party2.ID, ReactionID: like.ID, MessageID: "msg-a"},
	} {
		_, _, err := svc.Toggle(db, member.ID, req)
		require.NoError(t, err)
	}

	all, err := svc.List(db, &dto.MessageReactionListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byParty, err := svc.List(db, &dto.MessageReactionListQuery{PartyID: party1.ID})
	require.NoError(t, err)
	assert.Len(t, byParty, 2)

	byBoth, err := svc.List(db, &dto.MessageReactionListQuery{PartyID: party1.ID, MessageID: "msg-a"})
	require.NoError(t, err)
	assert.Len(t, byBoth, 1)
}

func TestCatalog(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestReactionService()

	createTestReaction(t, db, "like")
	love := createTestReaction(t, db, "love")

	catalog, err := svc.Catalog(db)
	require.NoError(t, err)
	assert.Len(t, catalog, 2)

	entry, err := svc.GetCatalogEntry(db, love.ID)
	require.NoError(t, err)
	assert.Equal(t, "love", entry.Name)

	_, err = svc.GetCatalogEntry(db, "no-such-reaction")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
