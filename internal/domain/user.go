package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type NotificationPreferences struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
}

type PrivacyPreferences struct {
	ShowEmail       bool `json:"showEmail"`
	ShowPhoneNumber bool `json:"showPhoneNumber"`
}

type UserPreferences struct {
	Notifications NotificationPreferences `json:"notifications"`
	Privacy       PrivacyPreferences      `json:"privacy"`
}

type UserSecurity struct {
	TwoFactorAuth       bool      `json:"twoFactorAuth"`
	PasswordLastChanged time.Time `json:"passwordLastChanged"`
	LastLogin           time.Time `json:"lastLogin"`
	FailedLoginAttempts int       `json:"failedLoginAttempts"`
}

type User struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Role        UserRole        `json:"role"`
	Status      UserStatus      `json:"status"`
	Preferences UserPreferences `json:"preferences"`
	Security    UserSecurity    `json:"security"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
