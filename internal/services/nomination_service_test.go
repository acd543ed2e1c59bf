package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iconsherald/internal/models"
	"iconsherald/internal/services/dto"
	"iconsherald/pkg/apperrors"
)

type nominationFixture struct {
	svc         NominationService
	nominations *fakeNominationRepo
	users       *fakeUserRepo
	analytics   *fakeAnalyticsRepo
	email       *fakeEmailSender
}

func newNominationFixture() *nominationFixture {
	nominations := newFakeNominationRepo()
	users := newFakeUserRepo()
	analytics := newFakeAnalyticsRepo()
	sender := &fakeEmailSender{}
	return &nominationFixture{
		svc:         NewNominationService(nominations, users, analytics, sender),
		nominations: nominations,
		users:       users,
		analytics:   analytics,
		email:       sender,
	}
}

func validSubmitRequest() *dto.SubmitNominationRequest {
	return &dto.SubmitNominationRequest{
		NominatorName:  "Jordan Wells",
		NominatorEmail: "jordan@example.com",
		NomineeName:    "Amara Okafor",
		NomineeEmail:   "amara@example.com",
		Pitch:          "A pioneer in sustainable architecture.",
		DesiredTier:    "elite",
		SupportingURLs: []string{"https://example.com/amara"},
		Consent:        true,
	}
}

func TestSubmitNomination(t *testing.T) {
	f := newNominationFixture()

	resp, err := f.svc.Submit(validSubmitRequest())
	require.NoError(t, err)
	assert.Equal(t, submitReceivedMessage, resp.Message)

	pending, err := f.svc.CountPending()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)

	assert.Contains(t, f.analytics.eventTypes(), models.EventNominationSubmitted)
}

func TestSubmitNominationHoneypot(t *testing.T) {
	f := newNominationFixture()

	req := validSubmitRequest()
	req.Website = "http://spam.example.com"

	resp, err := f.svc.Submit(req)
	require.NoError(t, err)

	// Same success shape as a real submission, nothing stored.
	assert.Equal(t, submitReceivedMessage, resp.Message)
	pending, err := f.svc.CountPending()
	require.NoError(t, err)
	assert.Zero(t, pending)
	assert.Empty(t, f.analytics.eventTypes())
}

func TestApproveNomination(t *testing.T) {
	f := newNominationFixture()

	_, err := f.svc.Submit(validSubmitRequest())
	require.NoError(t, err)
	nomination := singleNomination(t, f)

	resp, err := f.svc.Approve("reviewer-1", nomination.ID, &dto.ApproveNominationRequest{
		AssignedTier: "legacy",
		AdminNotes:   "exceptional career",
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.NominationStatusApproved), resp.Status)
	require.NotNil(t, resp.AssignedTier)
	assert.Equal(t, models.TierLegacy, *resp.AssignedTier)
	require.NotNil(t, resp.ReviewerID)
	assert.Equal(t, "reviewer-1", *resp.ReviewerID)
	assert.NotNil(t, resp.ReviewedAt)

	// Member account created with a temporary credential.
	user, err := f.users.FindByEmail("amara@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleMember, user.Role)
	assert.True(t, user.MustChangePassword)

	// Invitation goes out asynchronously.
	waitFor(t, func() bool { return len(f.email.sent()) == 1 })
	invitation := f.email.sent()[0]
	assert.Equal(t, "amara@example.com", invitation.To)
	assert.Equal(t, models.TierLegacy, invitation.Tier)
	assert.NotEmpty(t, invitation.TempPassword)
}

func TestApproveFinalizedNomination(t *testing.T) {
	f := newNominationFixture()

	_, err := f.svc.Submit(validSubmitRequest())
	require.NoError(t, err)
	nomination := singleNomination(t, f)

	_, err = f.svc.Approve("reviewer-1", nomination.ID, &dto.ApproveNominationRequest{AssignedTier: "elite"})
	require.NoError(t, err)

	_, err = f.svc.Reject("reviewer-2", nomination.ID, &dto.RejectNominationRequest{AdminNotes: "changed my mind"})
	assert.ErrorIs(t, err, apperrors.ErrNominationFinalized)

	_, err = f.svc.Approve("reviewer-2", nomination.ID, &dto.ApproveNominationRequest{AssignedTier: "rising"})
	assert.ErrorIs(t, err, apperrors.ErrNominationFinalized)
}

func TestFlagThenApprove(t *testing.T) {
	f := newNominationFixture()

	_, err := f.svc.Submit(validSubmitRequest())
	require.NoError(t, err)
	nomination := singleNomination(t, f)

	flagged, err := f.svc.Flag("reviewer-1", nomination.ID, &dto.FlagNominationRequest{Reason: "possible duplicate"})
	require.NoError(t, err)
	assert.Equal(t, string(models.NominationStatusFlagged), flagged.Status)
	assert.Equal(t, "possible duplicate", flagged.FlagReason)

	// Flagged is not terminal.
	approved, err := f.svc.Approve("reviewer-2", nomination.ID, &dto.ApproveNominationRequest{AssignedTier: "elite"})
	require.NoError(t, err)
	assert.Equal(t, string(models.NominationStatusApproved), approved.Status)
}

func TestBulkPartialFailure(t *testing.T) {
	f := newNominationFixture()

	_, err := f.svc.Submit(validSubmitRequest())
	require.NoError(t, err)
	nomination := singleNomination(t, f)

	// Finalize first so the bulk pass hits a terminal nomination.
	_, err = f.svc.Approve("reviewer-1", nomination.ID, &dto.ApproveNominationRequest{AssignedTier: "elite"})
	require.NoError(t, err)

	second := validSubmitRequest()
	second.NomineeEmail = "kenji@example.com"
	second.NomineeName = "Kenji Sato"
	_, err = f.svc.Submit(second)
	require.NoError(t, err)

	var secondID string
	list, err := f.svc.ListNominations(&dto.NominationListRequest{})
	require.NoError(t, err)
	for _, n := range list.Nominations {
		if n.ID != nomination.ID {
			secondID = n.ID
		}
	}
	require.NotEmpty(t, secondID)

	result, err := f.svc.Bulk("reviewer-1", &dto.BulkNominationRequest{
		IDs:        []string{nomination.ID, secondID, "missing-id"},
		Action:     "reject",
		AdminNotes: "cleanup",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{secondID}, result.Succeeded)
	assert.Len(t, result.Failed, 2)
	assert.Contains(t, result.Failed, nomination.ID)
	assert.Contains(t, result.Failed, "missing-id")
}

func TestBulkApproveRequiresTier(t *testing.T) {
	f := newNominationFixture()

	_, err := f.svc.Bulk("reviewer-1", &dto.BulkNominationRequest{
		IDs:    []string{"any"},
		Action: "approve",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func singleNomination(t *testing.T, f *nominationFixture) *dto.NominationResponse {
	t.Helper()
	list, err := f.svc.ListNominations(&dto.NominationListRequest{})
	require.NoError(t, err)
	require.Len(t, list.Nominations, 1)
	return list.Nominations[0]
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
