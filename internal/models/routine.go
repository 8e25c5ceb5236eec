package models

import (
	"time"

	"gorm.io/gorm"
)

type Game string

const (
	GameKovaaks Game = "KOVAAKS"
	GameAimlabs Game = "AIMLABS"
)

func (g Game) Valid() bool {
	return g == GameKovaaks || g == GameAimlabs
}

type Routine struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updatedAt" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deletedAt" json:"-"`

	Title        string `json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Author       string `json:"author"`
	AuthorHandle string `gorm:"column:authorHandle" json:"authorHandle"`

	Game Game `gorm:"type:text;index" json:"game"`

	// README, spreadsheet or similar material for the routine
	ExternalResource string `gorm:"column:externalResource" json:"externalResource"`

	// Empty template score sheet users can copy for benchmark routines
	TemplateSheet string `gorm:"column:templateSheet" json:"templateSheet"`

	IsBenchmark bool `gorm:"column:isBenchmark;default:false;index" json:"isBenchmark"`

	SubmittedByID string `gorm:"column:submittedById" json:"submittedById"`
	SubmittedBy   User   `gorm:"foreignKey:SubmittedByID" json:"-"`

	Playlists    []Playlist         `gorm:"foreignKey:RoutineID" json:"playlists"`
	LikedByUsers []RoutineLiked     `gorm:"foreignKey:RoutineID" json:"-"`
	Benchmarks   []RoutineBenchmark `gorm:"foreignKey:RoutineID" json:"-"`
}

func (Routine) TableName() string {
	return "Routine"
}

// RoutineLiked is the (user, routine) like relation. Existence implies
// "liked"; the pair is unique.
type RoutineLiked struct {
	RoutineID string    `gorm:"primaryKey;column:routineId;type:text" json:"routineId"`
	UserID    string    `gorm:"primaryKey;column:userId;type:text" json:"userId"`
	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (RoutineLiked) TableName() string {
	return "RoutineLiked"
}

// RoutineBenchmark links a user's personal score sheet to a benchmark
// routine. At most one per (user, routine); never created implicitly.
type RoutineBenchmark struct {
	RoutineID string    `gorm:"primaryKey;column:routineId;type:text" json:"routineId"`
	UserID    string    `gorm:"primaryKey;column:userId;type:text" json:"userId"`
	URL       string    `gorm:"column:url" json:"url"`
	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (RoutineBenchmark) TableName() string {
	return "RoutineBenchmark"
}
