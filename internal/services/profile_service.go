package services

import (
	"fmt"
	"strings"
	"unicode"

	"iconsherald/internal/content"
	"iconsherald/internal/models"
	"iconsherald/internal/repositories"
	"iconsherald/internal/services/dto"
	"iconsherald/internal/tiers"
	"iconsherald/pkg/apperrors"
)

type ProfileService interface {
	StartProfile(userID string, req *dto.StartProfileRequest) (*dto.ProfileResponse, error)
	GetMyProfile(userID string) (*dto.ProfileResponse, error)
	SaveDraft(userID string, req *dto.SaveDraftRequest) (*dto.ProfileResponse, error)
	UpdateTheme(userID string, req *dto.UpdateThemeRequest) (*dto.ProfileResponse, error)

	AddEntry(userID, kind string, req *dto.AddEntryRequest) (*dto.ListMutationResponse, error)
	EditEntry(userID, kind, entryID string, req *dto.EditEntryRequest) (*dto.ListMutationResponse, error)
	DeleteEntry(userID, kind, entryID string) (*dto.ListMutationResponse, error)
	ReorderEntry(userID, kind, entryID string, req *dto.ReorderEntryRequest) (*dto.ListMutationResponse, error)
	ToggleEntry(userID, kind, entryID string) (*dto.ListMutationResponse, error)

	// Read paths outside the builder.
	GetPublishedBySlug(slug string) (*models.Profile, *content.Document, error)
	ListProfiles(status, tier string, page, pageSize int) ([]*dto.ProfileResponse, int64, error)
}

type profileService struct {
	profileRepo    repositories.ProfileRepository
	userRepo       repositories.UserRepository
	nominationRepo repositories.NominationRepository
	analyticsRepo  repositories.AnalyticsRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	nominationRepo repositories.NominationRepository,
	analyticsRepo repositories.AnalyticsRepository,
) ProfileService {
	return &profileService{
		profileRepo:    profileRepo,
		userRepo:       userRepo,
		nominationRepo: nominationRepo,
		analyticsRepo:  analyticsRepo,
	}
}

// StartProfile creates the member's draft. The tier comes from the
// approved nomination on record for the member's email; there is no way
// to pick a tier from the builder.
func (s *profileService) StartProfile(userID string, req *dto.StartProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	nomination, err := s.nominationRepo.FindLatestApprovedByNomineeEmail(user.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNominationNotFound) {
			return nil, apperrors.ErrInvalidOperation("profile", "No approved nomination on record")
		}
		return nil, apperrors.InternalError(err)
	}
	if nomination.AssignedTier == nil || !nomination.AssignedTier.Valid() {
		return nil, apperrors.ErrInvalidOperation("profile", "Approved nomination has no assigned tier")
	}

	slug, err := s.uniqueSlug(req.DisplayName)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	doc := &content.Document{
		BasicInfo: content.BasicInfo{Name: req.DisplayName},
	}
	raw, err := doc.Encode()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{
		UserID:        userID,
		Tier:          *nomination.AssignedTier,
		Status:        models.ProfileStatusDraft,
		Slug:          slug,
		Content:       raw,
		PaymentStatus: models.ProfilePaymentPending,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrProfileAlreadyExists):
			return nil, apperrors.ErrConflict(err, "profile", "Profile already exists for this account")
		case apperrors.Is(err, repositories.ErrSlugTaken):
			return nil, apperrors.ErrConflict(err, "profile", "Profile address already taken")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildProfileResponse(profile, doc), nil
}

func (s *profileService) GetMyProfile(userID string) (*dto.ProfileResponse, error) {
	profile, doc, err := s.loadOwned(userID)
	if err != nil {
		return nil, err
	}
	return s.buildProfileResponse(profile, doc), nil
}

// SaveDraft replaces the whole content document. Overlapping saves are
// last-write-wins; entry lists are renumbered densely and trimmed to the
// tier's caps before writing.
func (s *profileService) SaveDraft(userID string, req *dto.SaveDraftRequest) (*dto.ProfileResponse, error) {
	profile, _, err := s.loadOwned(userID)
	if err != nil {
		return nil, err
	}
	if profile.Status == models.ProfileStatusArchived {
		return nil, apperrors.ErrProfileArchived
	}

	doc := req.Content
	doc.Normalize()
	clampToTier(&doc, profile.Tier)

	raw, err := doc.Encode()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.profileRepo.UpdateContent(profile.ID, raw); err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile.Content = raw
	return s.buildProfileResponse(profile, &doc), nil
}

func (s *profileService) UpdateTheme(userID string, req *dto.UpdateThemeRequest) (*dto.ProfileResponse, error) {
	profile, doc, err := s.loadOwned(userID)
	if err != nil {
		return nil, err
	}
	if profile.Status == models.ProfileStatusArchived {
		return nil, apperrors.ErrProfileArchived
	}

	theme := profile.GetTheme()
	if req.ColorScheme != "" {
		theme.ColorScheme = req.ColorScheme
	}
	if req.Layout != "" {
		theme.Layout = req.Layout
	}
	if req.Typography != "" {
		theme.Typography = req.Typography
	}
	if req.Variant != "" {
		theme.Variant = req.Variant
	}
	profile.SetTheme(theme)

	if err := s.profileRepo.UpdateTheme(profile.ID, profile.Theme); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildProfileResponse(profile, doc), nil
}

func (s *profileService) AddEntry(userID, kind string, req *dto.AddEntryRequest) (*dto.ListMutationResponse, error) {
	return s.mutateList(userID, kind, func(doc *content.Document, k tiers.ListKind, tier models.Tier) (string, error) {
		list := doc.List(k)
		entry := content.Entry{
			Title:       req.Title,
			Subtitle:    req.Subtitle,
			Description: req.Description,
			URL:         req.URL,
			ImageURL:    req.ImageURL,
			Date:        req.Date,
			Author:      req.Author,
		}
		out, added := content.Add(*list, entry, tiers.Limit(tier, k))
		*list = out
		if !added {
			return fmt.Sprintf("This section is limited to %d entries on your tier.", tiers.Limit(tier, k)), nil
		}
		return "", nil
	})
}

func (s *profileService) EditEntry(userID, kind, entryID string, req *dto.EditEntryRequest) (*dto.ListMutationResponse, error) {
	return s.mutateList(userID, kind, func(doc *content.Document, k tiers.ListKind, _ models.Tier) (string, error) {
		if !content.Edit(*doc.List(k), entryID, req.EntryPatch) {
			return "", apperrors.ErrNotFound(fmt.Errorf("entry %s not found in %s", entryID, k))
		}
		return "", nil
	})
}

func (s *profileService) DeleteEntry(userID, kind, entryID string) (*dto.ListMutationResponse, error) {
	return s.mutateList(userID, kind, func(doc *content.Document, k tiers.ListKind, _ models.Tier) (string, error) {
		list := doc.List(k)
		out, ok := content.Delete(*list, entryID)
		if !ok {
			return "", apperrors.ErrNotFound(fmt.Errorf("entry %s not found in %s", entryID, k))
		}
		*list = out
		return "", nil
	})
}

func (s *profileService) ReorderEntry(userID, kind, entryID string, req *dto.ReorderEntryRequest) (*dto.ListMutationResponse, error) {
	return s.mutateList(userID, kind, func(doc *content.Document, k tiers.ListKind, _ models.Tier) (string, error) {
		if !content.Reorder(*doc.List(k), entryID, req.NewIndex) {
			return "", apperrors.ErrNotFound(fmt.Errorf("entry %s not found in %s", entryID, k))
		}
		return "", nil
	})
}

func (s *profileService) ToggleEntry(userID, kind, entryID string) (*dto.ListMutationResponse, error) {
	return s.mutateList(userID, kind, func(doc *content.Document, k tiers.ListKind, _ models.Tier) (string, error) {
		if !content.ToggleVisibility(*doc.List(k), entryID) {
			return "", apperrors.ErrNotFound(fmt.Errorf("entry %s not found in %s", entryID, k))
		}
		return "", nil
	})
}

// GetPublishedBySlug serves the public renderer: published profiles only,
// with a view count bump and a view event.
func (s *profileService) GetPublishedBySlug(slug string) (*models.Profile, *content.Document, error) {
	profile, err := s.profileRepo.FindBySlug(slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil, apperrors.ErrProfileNotPublished
		}
		return nil, nil, apperrors.InternalError(err)
	}
	if profile.Status != models.ProfileStatusPublished {
		return nil, nil, apperrors.ErrProfileNotPublished
	}

	doc, err := content.Parse(profile.Content)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	_ = s.profileRepo.IncrementViews(profile.ID)
	trackEvent(s.analyticsRepo, models.EventProfileView, &profile.ID, nil, map[string]interface{}{
		"slug": slug,
	})

	return profile, doc, nil
}

func (s *profileService) ListProfiles(status, tier string, page, pageSize int) ([]*dto.ProfileResponse, int64, error) {
	page, pageSize = normalizePagination(page, pageSize)

	profiles, total, err := s.profileRepo.FindWithFilter(repositories.ProfileFilter{
		Status:   models.ProfileStatus(status),
		Tier:     models.Tier(tier),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	responses := make([]*dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		doc, err := content.Parse(profiles[i].Content)
		if err != nil {
			return nil, 0, apperrors.InternalError(err)
		}
		responses = append(responses, s.buildProfileResponse(&profiles[i], doc))
	}
	return responses, total, nil
}

// mutateList runs one list operation end to end: load, validate the kind
// against the tier, apply, persist.
func (s *profileService) mutateList(userID, kind string, apply func(doc *content.Document, k tiers.ListKind, tier models.Tier) (string, error)) (*dto.ListMutationResponse, error) {
	if !tiers.ValidListKind(kind) {
		return nil, apperrors.ErrInvalidOperation("profile", "Unknown list section")
	}
	k := tiers.ListKind(kind)

	profile, doc, err := s.loadOwned(userID)
	if err != nil {
		return nil, err
	}
	if profile.Status == models.ProfileStatusArchived {
		return nil, apperrors.ErrProfileArchived
	}
	if tiers.Limit(profile.Tier, k) == 0 {
		return nil, apperrors.ErrInvalidOperation("profile", "This section is not available on your tier")
	}

	notice, err := apply(doc, k, profile.Tier)
	if err != nil {
		return nil, err
	}

	if notice == "" {
		raw, err := doc.Encode()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if err := s.profileRepo.UpdateContent(profile.ID, raw); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	entries := *doc.List(k)
	if entries == nil {
		entries = []content.Entry{}
	}
	return &dto.ListMutationResponse{
		Kind:    kind,
		Entries: entries,
		Notice:  notice,
	}, nil
}

func (s *profileService) loadOwned(userID string) (*models.Profile, *content.Document, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil, apperrors.ErrNotFound(err)
		}
		return nil, nil, apperrors.InternalError(err)
	}
	doc, err := content.Parse(profile.Content)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return profile, doc, nil
}

func (s *profileService) buildProfileResponse(profile *models.Profile, doc *content.Document) *dto.ProfileResponse {
	percent, missing := content.Completion(doc, profile.Tier)

	limits := map[string]int{}
	for _, k := range tiers.ListKinds {
		limits[string(k)] = tiers.Limit(profile.Tier, k)
	}

	sections := []string{}
	for _, sec := range tiers.VisibleSections(profile.Tier) {
		sections = append(sections, string(sec))
	}

	return &dto.ProfileResponse{
		ID:            profile.ID,
		UserID:        profile.UserID,
		Tier:          profile.Tier,
		Status:        profile.Status,
		Slug:          profile.Slug,
		Content:       doc,
		Theme:         profile.GetTheme(),
		PaymentStatus: string(profile.PaymentStatus),
		PublishedAt:   profile.PublishedAt,
		ViewCount:     profile.ViewCount,
		Completion:    percent,
		Missing:       missing,
		Steps:         content.Steps(doc, profile.Tier),
		Limits:        limits,
		Sections:      sections,
	}
}

// clampToTier trims every list to its tier capacity after a bulk save.
func clampToTier(doc *content.Document, tier models.Tier) {
	for _, k := range tiers.ListKinds {
		list := doc.List(k)
		capacity := tiers.Limit(tier, k)
		if len(*list) > capacity {
			*list = (*list)[:capacity]
		}
	}
}

// Slug derivation: lowercase ASCII with hyphens, numeric suffix on
// collision.
func makeSlug(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "profile"
	}
	return slug
}

func (s *profileService) uniqueSlug(name string) (string, error) {
	base := makeSlug(name)
	slug := base
	for i := 2; ; i++ {
		exists, err := s.profileRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
