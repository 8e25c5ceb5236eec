package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updatedAt" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deletedAt" json:"-"`

	Name          string     `json:"name"`
	Email         string     `gorm:"uniqueIndex" json:"email"`
	EmailVerified *time.Time `json:"emailVerified"`
	Image         string     `json:"image"`
	Username      string     `gorm:"uniqueIndex" json:"username"`

	// Enum stored as string
	Role Role `gorm:"type:text;default:'USER'" json:"role"`

	// Postgres string array, used to pre-select the game filter on the client
	PreferredGames pq.StringArray `gorm:"type:text[]" json:"preferredGames"`

	Password string `json:"-"`
}

// TableName matches the Prisma-era table naming the production database
// was created with.
func (User) TableName() string {
	return "User"
}

// IsStaff reports whether the user may submit new routines and playlists.
func (u *User) IsStaff() bool {
	return u.Role == RoleModerator || u.Role == RoleAdmin
}
