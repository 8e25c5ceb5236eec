package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shishigami87/aimroutines/internal/database"
	"github.com/shishigami87/aimroutines/internal/models"
	"github.com/shishigami87/aimroutines/internal/services"
	"github.com/shishigami87/aimroutines/internal/table"
	"github.com/shishigami87/aimroutines/pkg/logger"
	"github.com/shishigami87/aimroutines/pkg/utils"
	"gorm.io/gorm"
)

type CreatePlaylistInput struct {
	Title            string      `json:"title" binding:"required"`
	Description      string      `json:"description"`
	Author           string      `json:"author"`
	AuthorHandle     string      `json:"authorHandle"`
	Game             models.Game `json:"game" binding:"required"`
	Reference        string      `json:"reference" binding:"required"`
	ExternalResource string      `json:"externalResource"`
}

// validateCreatePlaylist enforces the standalone-submission bounds. The
// tighter title/reference minimums keep out bare share-code dumps.
func validateCreatePlaylist(input *CreatePlaylistInput) map[string]string {
	problems := map[string]string{}

	if l := len(input.Title); l < 4 || l > 64 {
		problems["title"] = "Title must be 4-64 characters"
	}
	if len(input.Description) > 4096 {
		problems["description"] = "Description must be at most 4096 characters"
	}
	if len(input.Author) > 64 {
		problems["author"] = "Author must be at most 64 characters"
	}
	if len(input.AuthorHandle) > 32 {
		problems["authorHandle"] = "Author handle must be at most 32 characters"
	}
	if !input.Game.Valid() {
		problems["game"] = "Game must be KOVAAKS or AIMLABS"
	}
	if l := len(input.Reference); l < 8 || l > 256 {
		problems["reference"] = "Reference must be 8-256 characters"
	}
	if len(input.ExternalResource) > 256 {
		problems["externalResource"] = "External resource must be at most 256 characters"
	}

	return problems
}

// ListPlaylists handles GET /playlists?q=&g=&sort=&dir=. Only standalone
// playlists; nested ones are served inside their routine.
func ListPlaylists(c *gin.Context) {
	callerID := ""
	if id, exists := c.Get("userId"); exists {
		callerID = id.(string)
	}

	query := tableQuery(c)

	cacheKey := ""
	if callerID == "" && query.Text == "" && query.Game == "" && query.SortDir == table.SortNone {
		cacheKey = "playlists:all"
		var cached []services.PlaylistView
		if err := database.CacheGet(cacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, gin.H{"playlists": cached})
			return
		}
	}

	var playlists []models.Playlist
	err := database.DB.
		Where(`"routineId" IS NULL`).
		Preload("LikedByUsers").
		Order(`"createdAt" DESC`).
		Find(&playlists).Error
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list playlists")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list playlists"})
		return
	}

	views := table.ApplyPlaylists(services.ProjectPlaylists(playlists, callerID), query)

	if cacheKey != "" {
		_ = database.CacheSet(cacheKey, views, 60*time.Second)
	}

	c.JSON(http.StatusOK, gin.H{"playlists": views})
}

// CreatePlaylist handles POST /playlists (moderators only, enforced by the
// route chain).
func CreatePlaylist(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input CreatePlaylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if problems := validateCreatePlaylist(&input); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": problems})
		return
	}

	playlist := models.Playlist{
		ID:               utils.GenerateID(),
		Title:            input.Title,
		Description:      input.Description,
		Author:           input.Author,
		AuthorHandle:     input.AuthorHandle,
		Game:             input.Game,
		Reference:        input.Reference,
		ExternalResource: input.ExternalResource,
		SubmittedByID:    userID.(string),
	}

	if err := database.DB.Create(&playlist).Error; err != nil {
		logger.Error().Err(err).Str("title", input.Title).Msg("Failed to create playlist")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create playlist"})
		return
	}

	_ = database.CacheInvalidate("playlists:*")

	logger.Info().Str("playlist_id", playlist.ID).Str("user_id", userID.(string)).Msg("Playlist submitted")

	c.JSON(http.StatusCreated, gin.H{"playlist": playlist})
}

// TogglePlaylistLike handles POST /playlists/:id/like.
func TogglePlaylistLike(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	playlistID := c.Param("id")

	var playlist models.Playlist
	if err := database.DB.Select("id").First(&playlist, "id = ?", playlistID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playlist not found"})
		return
	}

	var existing models.PlaylistLiked
	findErr := database.DB.
		Where(`"playlistId" = ? AND "userId" = ?`, playlistID, userID).
		First(&existing).Error

	liked := false
	dbErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if findErr == nil {
			return tx.Delete(&existing).Error
		}
		liked = true
		return tx.Create(&models.PlaylistLiked{
			PlaylistID: playlistID,
			UserID:     userID.(string),
		}).Error
	})
	if dbErr != nil {
		logger.Error().Err(dbErr).Str("playlist_id", playlistID).Msg("Failed to toggle like")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	_ = database.CacheInvalidate("playlists:*")

	var likes int64
	database.DB.Model(&models.PlaylistLiked{}).Where(`"playlistId" = ?`, playlistID).Count(&likes)

	c.JSON(http.StatusOK, gin.H{"liked": liked, "likes": likes})
}
