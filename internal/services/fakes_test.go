package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"iconsherald/internal/models"
	"iconsherald/internal/repositories"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) UpdateStatus(userID string, status models.UserStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (f *fakeUserRepo) UpdateRole(userID string, role models.UserRole) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) FindWithFilter(criteria repositories.UserFilter) ([]models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		if criteria.Role != "" && u.Role != criteria.Role {
			continue
		}
		if criteria.Status != "" && u.Status != criteria.Status {
			continue
		}
		if criteria.Search != "" &&
			!strings.Contains(strings.ToLower(u.Email), strings.ToLower(criteria.Search)) &&
			!strings.Contains(strings.ToLower(u.Name), strings.ToLower(criteria.Search)) {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) CountByRole(role models.UserRole) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type fakeNominationRepo struct {
	mu          sync.Mutex
	nominations map[string]*models.Nomination
}

func newFakeNominationRepo() *fakeNominationRepo {
	return &fakeNominationRepo{nominations: map[string]*models.Nomination{}}
}

func (f *fakeNominationRepo) Create(n *models.Nomination) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.CreatedAt = time.Now()
	copied := *n
	f.nominations[n.ID] = &copied
	return nil
}

func (f *fakeNominationRepo) FindByID(id string) (*models.Nomination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.nominations[id]
	if !ok {
		return nil, repositories.ErrNominationNotFound
	}
	copied := *n
	return &copied, nil
}

func (f *fakeNominationRepo) FindWithFilter(criteria repositories.NominationFilter) ([]models.Nomination, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Nomination
	for _, n := range f.nominations {
		if criteria.Status != "" && n.Status != criteria.Status {
			continue
		}
		out = append(out, *n)
	}
	return out, int64(len(out)), nil
}

func (f *fakeNominationRepo) FindLatestApprovedByNomineeEmail(email string) (*models.Nomination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *models.Nomination
	for _, n := range f.nominations {
		if !strings.EqualFold(n.NomineeEmail, email) || n.Status != models.NominationStatusApproved {
			continue
		}
		if latest == nil || (n.ReviewedAt != nil && latest.ReviewedAt != nil && n.ReviewedAt.After(*latest.ReviewedAt)) {
			latest = n
		}
	}
	if latest == nil {
		return nil, repositories.ErrNominationNotFound
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeNominationRepo) ApplyReview(id string, outcome repositories.ReviewOutcome) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.nominations[id]
	if !ok {
		return repositories.ErrNominationNotFound
	}
	now := time.Now()
	n.Status = outcome.Status
	n.ReviewerID = &outcome.ReviewerID
	n.ReviewedAt = &now
	if outcome.AssignedTier != nil {
		n.AssignedTier = outcome.AssignedTier
	}
	if outcome.AdminNotes != "" {
		n.AdminNotes = outcome.AdminNotes
	}
	if outcome.FlagReason != "" {
		n.FlagReason = outcome.FlagReason
	}
	return nil
}

func (f *fakeNominationRepo) CountByStatus(status models.NominationStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, nom := range f.nominations {
		if nom.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*models.Profile{}}
}

func (f *fakeProfileRepo) Create(p *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.profiles {
		if existing.UserID == p.UserID {
			return repositories.ErrProfileAlreadyExists
		}
		if existing.Slug == p.Slug {
			return repositories.ErrSlugTaken
		}
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	copied := *p
	f.profiles[p.ID] = &copied
	return nil
}

func (f *fakeProfileRepo) FindByID(id string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProfileRepo) FindByUserID(userID string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (f *fakeProfileRepo) FindBySlug(slug string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (f *fakeProfileRepo) SlugExists(slug string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProfileRepo) UpdateContent(profileID string, content datatypes.JSON) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[profileID]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	p.Content = content
	return nil
}

func (f *fakeProfileRepo) UpdateTheme(profileID string, theme datatypes.JSON) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[profileID]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	p.Theme = theme
	return nil
}

func (f *fakeProfileRepo) MarkPublished(profileID string, publishedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[profileID]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	p.Status = models.ProfileStatusPublished
	p.PaymentStatus = models.ProfilePaymentCompleted
	p.PublishedAt = &publishedAt
	return nil
}

func (f *fakeProfileRepo) MarkPaymentFailed(profileID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[profileID]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	p.PaymentStatus = models.ProfilePaymentFailed
	return nil
}

func (f *fakeProfileRepo) IncrementViews(profileID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[profileID]; ok {
		p.ViewCount++
	}
	return nil
}

func (f *fakeProfileRepo) FindWithFilter(criteria repositories.ProfileFilter) ([]models.Profile, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Profile
	for _, p := range f.profiles {
		if criteria.Status != "" && p.Status != criteria.Status {
			continue
		}
		if criteria.Tier != "" && p.Tier != criteria.Tier {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*models.Payment{}}
}

func (f *fakePaymentRepo) Create(p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	copied := *p
	f.payments[p.ID] = &copied
	return nil
}

func (f *fakePaymentRepo) FindByID(id string) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[id]
	if !ok {
		return nil, repositories.ErrPaymentNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePaymentRepo) FindByOrderID(orderID string) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.payments {
		if p.OrderID == orderID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repositories.ErrPaymentNotFound
}

func (f *fakePaymentRepo) FindByProfileID(profileID string) ([]models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Payment
	for _, p := range f.payments {
		if p.ProfileID == profileID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) UpdateStatus(id string, status models.PaymentStatus, gatewayPaymentID, failureReason string, paidAt *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[id]
	if !ok {
		return repositories.ErrPaymentNotFound
	}
	p.Status = status
	if gatewayPaymentID != "" {
		p.GatewayPaymentID = gatewayPaymentID
	}
	if failureReason != "" {
		p.FailureReason = failureReason
	}
	if paidAt != nil {
		p.PaidAt = paidAt
	}
	return nil
}

type fakeAnalyticsRepo struct {
	mu     sync.Mutex
	events []models.AnalyticsEvent
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{}
}

func (f *fakeAnalyticsRepo) Append(event *models.AnalyticsEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.CreatedAt = time.Now()
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeAnalyticsRepo) FindRecent(eventType string, limit, offset int) ([]models.AnalyticsEvent, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AnalyticsEvent
	for _, e := range f.events {
		if eventType != "" && e.EventType != eventType {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAnalyticsRepo) eventTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.EventType)
	}
	return out
}

type fakeSettingRepo struct {
	mu       sync.Mutex
	settings map[string]string
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{settings: map[string]string{}}
}

func (f *fakeSettingRepo) FindAll() ([]models.SystemSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.SystemSetting
	for k, v := range f.settings {
		out = append(out, models.SystemSetting{Key: k, Value: v})
	}
	return out, nil
}

func (f *fakeSettingRepo) Upsert(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings[key] = value
	return nil
}

// fakeEmailSender records sent invitations for assertions.
type fakeEmailSender struct {
	mu          sync.Mutex
	invitations []sentInvitation
}

type sentInvitation struct {
	To           string
	Name         string
	Tier         models.Tier
	TempPassword string
}

func (f *fakeEmailSender) SendInvitation(to, name string, tier models.Tier, tempPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invitations = append(f.invitations, sentInvitation{To: to, Name: name, Tier: tier, TempPassword: tempPassword})
	return nil
}

func (f *fakeEmailSender) SendNotification(to, subject, body string) error {
	return nil
}

func (f *fakeEmailSender) sent() []sentInvitation {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sentInvitation, len(f.invitations))
	copy(out, f.invitations)
	return out
}
