package repositories

import "gorm.io/gorm"

// RepositoryContainer holds every repository over the shared connection.
type RepositoryContainer struct {
	User       UserRepository
	Nomination NominationRepository
	Profile    ProfileRepository
	Payment    PaymentRepository
	Analytics  AnalyticsRepository
	Setting    SettingRepository
}

func NewRepositoryContainer(db *gorm.DB) *RepositoryContainer {
	return &RepositoryContainer{
		User:       NewUserRepository(db),
		Nomination: NewNominationRepository(db),
		Profile:    NewProfileRepository(db),
		Payment:    NewPaymentRepository(db),
		Analytics:  NewAnalyticsRepository(db),
		Setting:    NewSettingRepository(db),
	}
}
