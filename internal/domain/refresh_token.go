package domain

import "time"

// RefreshToken is a server-side record of an issued refresh token, kept so
// sessions can be revoked. Access tokens are stateless and never stored.
type RefreshToken struct {
	ID        string    `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"index;not null" json:"-"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `json:"-"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
