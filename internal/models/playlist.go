package models

import (
	"time"

	"gorm.io/gorm"
)

// Playlist references a single in-game training configuration. Reference is
// a Kovaaks share code or an Aimlabs URL depending on Game.
//
// A playlist either belongs to a routine (RoutineID set, Position gives the
// order within the routine) or is a standalone submission. Likes are only
// relevant for standalone playlists.
type Playlist struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updatedAt" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deletedAt" json:"-"`

	Title        string `json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Author       string `json:"author"`
	AuthorHandle string `gorm:"column:authorHandle" json:"authorHandle"`

	Game      Game   `gorm:"type:text;index" json:"game"`
	Reference string `json:"reference"`

	ExternalResource string `gorm:"column:externalResource" json:"externalResource"`

	RoutineID *string `gorm:"column:routineId;index" json:"routineId,omitempty"`
	Position  int     `gorm:"default:0" json:"position"`

	SubmittedByID string `gorm:"column:submittedById" json:"submittedById"`
	SubmittedBy   User   `gorm:"foreignKey:SubmittedByID" json:"-"`

	LikedByUsers []PlaylistLiked `gorm:"foreignKey:PlaylistID" json:"-"`
}

func (Playlist) TableName() string {
	return "Playlist"
}

type PlaylistLiked struct {
	PlaylistID string    `gorm:"primaryKey;column:playlistId;type:text" json:"playlistId"`
	UserID     string    `gorm:"primaryKey;column:userId;type:text" json:"userId"`
	CreatedAt  time.Time `gorm:"column:createdAt" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (PlaylistLiked) TableName() string {
	return "PlaylistLiked"
}
