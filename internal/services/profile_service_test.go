package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iconsherald/internal/content"
	"iconsherald/internal/models"
	"iconsherald/internal/services/dto"
	"iconsherald/internal/tiers"
	"iconsherald/pkg/apperrors"
)

type profileFixture struct {
	svc         ProfileService
	profiles    *fakeProfileRepo
	users       *fakeUserRepo
	nominations *fakeNominationRepo
	analytics   *fakeAnalyticsRepo
}

func newProfileFixture() *profileFixture {
	profiles := newFakeProfileRepo()
	users := newFakeUserRepo()
	nominations := newFakeNominationRepo()
	analytics := newFakeAnalyticsRepo()
	return &profileFixture{
		svc:         NewProfileService(profiles, users, nominations, analytics),
		profiles:    profiles,
		users:       users,
		nominations: nominations,
		analytics:   analytics,
	}
}

// seedMember creates an active member with an approved nomination on the
// given tier and returns the user ID.
func (f *profileFixture) seedMember(t *testing.T, email string, tier models.Tier) string {
	t.Helper()

	user := &models.User{
		Email:        email,
		Name:         "Test Member",
		PasswordHash: "x",
		Role:         models.UserRoleMember,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, f.users.Create(user))

	now := time.Now()
	nomination := &models.Nomination{
		NominatorName:  "Someone",
		NominatorEmail: "someone@example.com",
		NomineeName:    user.Name,
		NomineeEmail:   email,
		Pitch:          "pitch",
		DesiredTier:    tier,
		Status:         models.NominationStatusApproved,
		AssignedTier:   &tier,
		ReviewedAt:     &now,
	}
	require.NoError(t, f.nominations.Create(nomination))

	return user.ID
}

func TestStartProfile(t *testing.T) {
	f := newProfileFixture()
	userID := f.seedMember(t, "amara@example.com", models.TierElite)

	resp, err := f.svc.StartProfile(userID, &dto.StartProfileRequest{DisplayName: "Amara Okafor"})
	require.NoError(t, err)

	assert.Equal(t, models.TierElite, resp.Tier)
	assert.Equal(t, models.ProfileStatusDraft, resp.Status)
	assert.Equal(t, "amara-okafor", resp.Slug)
	assert.Equal(t, "Amara Okafor", resp.Content.BasicInfo.Name)
	assert.Equal(t, tiers.Limit(models.TierElite, tiers.ListGallery), resp.Limits["gallery"])
	assert.Contains(t, resp.Sections, string(tiers.SectionImpactMetrics))
	assert.NotContains(t, resp.Sections, string(tiers.SectionHeroVideo))
}

func TestStartProfileWithoutApprovedNomination(t *testing.T) {
	f := newProfileFixture()

	user := &models.User{Email: "nobody@example.com", Name: "Nobody", PasswordHash: "x"}
	require.NoError(t, f.users.Create(user))

	_, err := f.svc.StartProfile(user.ID, &dto.StartProfileRequest{DisplayName: "Nobody"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func TestStartProfileSlugCollision(t *testing.T) {
	f := newProfileFixture()

	firstID := f.seedMember(t, "first@example.com", models.TierRising)
	secondID := f.seedMember(t, "second@example.com", models.TierRising)

	first, err := f.svc.StartProfile(firstID, &dto.StartProfileRequest{DisplayName: "Sam Reed"})
	require.NoError(t, err)
	second, err := f.svc.StartProfile(secondID, &dto.StartProfileRequest{DisplayName: "Sam Reed"})
	require.NoError(t, err)

	assert.Equal(t, "sam-reed", first.Slug)
	assert.Equal(t, "sam-reed-2", second.Slug)
}

func TestAddEntryHitsTierCap(t *testing.T) {
	f := newProfileFixture()
	userID := f.seedMember(t, "amara@example.com", models.TierRising)

	_, err := f.svc.StartProfile(userID, &dto.StartProfileRequest{DisplayName: "Amara Okafor"})
	require.NoError(t, err)

	limit := tiers.Limit(models.TierRising, tiers.ListLinks)
	for i := 0; i < limit; i++ {
		resp, err := f.svc.AddEntry(userID, "links", &dto.AddEntryRequest{
			Title: "Link",
			URL:   "https://example.com",
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Notice)
		assert.Len(t, resp.Entries, i+1)
	}

	// One past the cap: unchanged list plus a notice, not an error.
	resp, err := f.svc.AddEntry(userID, "links", &dto.AddEntryRequest{
		Title: "One too many",
		URL:   "https://example.com/extra",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Notice)
	assert.Len(t, resp.Entries, limit)
}

func TestAddEntryUnavailableSection(t *testing.T) {
	f := newProfileFixture()
	userID := f.seedMember(t, "amara@example.com", models.TierRising)

	_, err := f.svc.StartProfile(userID, &dto.StartProfileRequest{DisplayName: "Amara Okafor"})
	require.NoError(t, err)

	// Rising has no gallery.
	_, err = f.svc.AddEntry(userID, "gallery", &dto.AddEntryRequest{ImageURL: "https://example.com/p.jpg"})
	require.Error(t, err)

	_, err = f.svc.AddEntry(userID, "not-a-section", &dto.AddEntryRequest{})
	require.Error(t, err)
}

func TestEntryLifecycle(t *testing.T) {
	f := newProfileFixture()
	userID := f.seedMember(t, "amara@example.com", models.TierElite)

	_, err := f.svc.StartProfile(userID, &dto.StartProfileRequest{DisplayName: "Amara Okafor"})
	require.NoError(t, err)

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		_, err := f.svc.AddEntry(userID, "achievements", &dto.AddEntryRequest{Title: title})
		require.NoError(t, err)
	}

	resp, err := f.svc.GetMyProfile(userID)
	require.NoError(t, err)
	entries := resp.Content.Achievements
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i, e.Order)
		assert.True(t, e.IsVisible)
	}

	// Move the last entry to the front; the order stays dense.
	moved, err := f.svc.ReorderEntry(userID, "achievements", entries[2].ID, &dto.ReorderEntryRequest{NewIndex: 0})
	require.NoError(t, err)
	assert.Equal(t, "Third", moved.Entries[0].Title)
	assert.Equal(t, "First", moved.Entries[1].Title)
	for i, e := range moved.Entries {
		assert.Equal(t, i, e.Order)
	}

	// Edit a single field.
	newTitle := "Second, revised"
	edited, err := f.svc.EditEntry(userID, "achievements", entries[1].ID, &dto.EditEntryRequest{
		EntryPatch: content.EntryPatch{Title: &newTitle},
	})
	require.NoError(t, err)
	found := false
	for _, e := range edited.Entries {
		if e.ID == entries[1].ID {
			assert.Equal(t, newTitle, e.Title)
			found = true
		}
	}
	assert.True(t, found)

	// Hide one: it stays in the list for the builder.
	toggled, err := f.svc.ToggleEntry(userID, "achievements", entries[0].ID)
	require.NoError(t, err)
	for _, e := range toggled.Entries {
		if e.ID == entries[0].ID {
			assert.False(t, e.IsVisible)
		}
	}

	// Delete renumbers the remainder.
	deleted, err := f.svc.DeleteEntry(userID, "achievements", entries[2].ID)
	require.NoError(t, err)
	require.Len(t, deleted.Entries, 2)
	for i, e := range deleted.Entries {
		assert.Equal(t, i, e.Order)
	}
}

func TestSaveDraftClampsAndRenumbers(t *testing.T) {
	f := newProfileFixture()
	userID := f.seedMember(t, "amara@example.com", models.TierRising)

	_, err := f.svc.StartProfile(userID, &dto.StartProfileRequest{DisplayName: "Amara Okafor"})
	require.NoError(t, err)

	doc := content.Document{
		BasicInfo: content.BasicInfo{Name: "Amara Okafor", Headline: "Architect", Bio: "..."},
	}
	// Sparse and oversized orders, plus one link beyond the rising cap.
	for i := 0; i < 4; i++ {
		doc.Links = append(doc.Links, content.Entry{
			ID:    "link-" + string(rune('a'+i)),
			Order: i * 10,
			Title: "Link",
			URL:   "https://example.com",
		})
	}

	resp, err := f.svc.SaveDraft(userID, &dto.SaveDraftRequest{Content: doc})
	require.NoError(t, err)

	limit := tiers.Limit(models.TierRising, tiers.ListLinks)
	require.Len(t, resp.Content.Links, limit)
	for i, e := range resp.Content.Links {
		assert.Equal(t, i, e.Order)
	}
}

func TestGetPublishedBySlug(t *testing.T) {
	f := newProfileFixture()
	userID := f.seedMember(t, "amara@example.com", models.TierElite)

	started, err := f.svc.StartProfile(userID, &dto.StartProfileRequest{DisplayName: "Amara Okafor"})
	require.NoError(t, err)

	// Draft profiles are invisible to the public reader.
	_, _, err = f.svc.GetPublishedBySlug(started.Slug)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotPublished)

	require.NoError(t, f.profiles.MarkPublished(started.ID, time.Now()))

	profile, doc, err := f.svc.GetPublishedBySlug(started.Slug)
	require.NoError(t, err)
	assert.Equal(t, started.Slug, profile.Slug)
	assert.Equal(t, "Amara Okafor", doc.BasicInfo.Name)

	// The view was counted and recorded.
	reloaded, err := f.profiles.FindByID(started.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), reloaded.ViewCount)
	assert.Contains(t, f.analytics.eventTypes(), models.EventProfileView)
}

func TestMakeSlug(t *testing.T) {
	cases := map[string]string{
		"Amara Okafor":         "amara-okafor",
		"  J. R. R. Tolkien  ": "j-r-r-tolkien",
		"Éléonore":             "l-onore",
		"!!!":                  "profile",
		"100 Women in STEM":    "100-women-in-stem",
	}
	for in, want := range cases {
		assert.Equal(t, want, makeSlug(in), "input %q", in)
	}
}
