package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shishigami87/aimroutines/internal/config"
	"github.com/shishigami87/aimroutines/internal/database"
	"github.com/shishigami87/aimroutines/internal/models"
	"github.com/shishigami87/aimroutines/internal/services"
	"github.com/shishigami87/aimroutines/internal/table"
	"github.com/shishigami87/aimroutines/pkg/logger"
	"github.com/shishigami87/aimroutines/pkg/utils"
	"gorm.io/gorm"
)

type NestedPlaylistInput struct {
	Title     string `json:"title" binding:"required"`
	Reference string `json:"reference" binding:"required"`
}

type CreateRoutineInput struct {
	Title            string                `json:"title" binding:"required"`
	Description      string                `json:"description"`
	Author           string                `json:"author"`
	AuthorHandle     string                `json:"authorHandle"`
	Game             models.Game           `json:"game" binding:"required"`
	ExternalResource string                `json:"externalResource"`
	TemplateSheet    string                `json:"templateSheet"`
	IsBenchmark      bool                  `json:"isBenchmark"`
	Playlists        []NestedPlaylistInput `json:"playlists" binding:"required"`
}

type AddBenchmarkInput struct {
	URL string `json:"url" binding:"required"`
}

// validateCreateRoutine enforces the submission field bounds. Returns a
// field -> message map so the form can highlight the offending inputs.
func validateCreateRoutine(input *CreateRoutineInput) map[string]string {
	problems := map[string]string{}

	if l := len(input.Title); l < 1 || l > 64 {
		problems["title"] = "Title must be 1-64 characters"
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
	if len(input.ExternalResource) > 256 {
		problems["externalResource"] = "External resource must be at most 256 characters"
	}
	if len(input.TemplateSheet) > 256 {
		problems["templateSheet"] = "Template sheet must be at most 256 characters"
	}
	if len(input.Playlists) < 1 {
		problems["playlists"] = "At least one playlist is required"
	}
	for _, p := range input.Playlists {
		if l := len(p.Title); l < 1 || l > 64 {
			problems["playlists"] = "Playlist titles must be 1-64 characters"
		}
		if l := len(p.Reference); l < 1 || l > 256 {
			problems["playlists"] = "Playlist references must be 1-256 characters"
		}
	}

	return problems
}

// tableQuery parses the sharable filter params (q, g, sort, dir).
func tableQuery(c *gin.Context) table.Query {
	return table.Query{
		Text:       strings.TrimSpace(c.Query("q")),
		Game:       strings.ToUpper(strings.TrimSpace(c.Query("g"))),
		SortColumn: c.Query("sort"),
		SortDir:    table.ParseSortDirection(c.Query("dir")),
	}
}

// fetchRoutines loads a filtered snapshot with all relations the projection
// needs. Secondary order is title descending; the projection's stable
// likes sort preserves it as the tie-break.
func fetchRoutines(scope func(*gorm.DB) *gorm.DB) ([]models.Routine, error) {
	var routines []models.Routine
	err := database.DB.
		Scopes(scope).
		Preload("Playlists", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("LikedByUsers").
		Preload("Benchmarks").
		Order("title DESC").
		Find(&routines).Error
	return routines, err
}

// ListRoutines handles GET /routines?s=&q=&g=&sort=&dir=
func ListRoutines(c *gin.Context) {
	callerID := ""
	if id, exists := c.Get("userId"); exists {
		callerID = id.(string)
	}

	strategy, err := services.ResolveStrategy(c.Query("s"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := tableQuery(c)

	// Anonymous default views are identical for everyone, cache them.
	cacheKey := ""
	if callerID == "" && query.Text == "" && query.Game == "" && query.SortDir == table.SortNone {
		cacheKey = "routines:" + string(strategy)
		var cached []services.RoutineView
		if err := database.CacheGet(cacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, gin.H{"routines": cached})
			return
		}
	}

	routines, err := fetchRoutines(strategy.Scope(callerID, config.AppConfig.BeginnerRoutines()))
	if err != nil {
		logger.Error().Err(err).Str("strategy", string(strategy)).Msg("Failed to list routines")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list routines"})
		return
	}

	views := services.ProjectRoutines(routines, callerID)
	for i := range views {
		table.SortPlaylistsByDifficulty(views[i].Playlists)
	}
	views = table.ApplyRoutines(views, query)

	if cacheKey != "" {
		_ = database.CacheSet(cacheKey, views, 60*time.Second)
	}

	c.JSON(http.StatusOK, gin.H{"routines": views})
}

// CreateRoutine handles POST /routines (moderators only, enforced by the
// route chain).
func CreateRoutine(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input CreateRoutineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if problems := validateCreateRoutine(&input); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": problems})
		return
	}

	routine := models.Routine{
		ID:               utils.GenerateID(),
		Title:            input.Title,
		Description:      input.Description,
		Author:           input.Author,
		AuthorHandle:     input.AuthorHandle,
		Game:             input.Game,
		ExternalResource: input.ExternalResource,
		TemplateSheet:    input.TemplateSheet,
		IsBenchmark:      input.IsBenchmark,
		SubmittedByID:    userID.(string),
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&routine).Error; err != nil {
			return err
		}
		for i, p := range input.Playlists {
			playlist := models.Playlist{
				ID:            utils.GenerateID(),
				Title:         p.Title,
				Game:          input.Game,
				Reference:     p.Reference,
				RoutineID:     &routine.ID,
				Position:      i,
				SubmittedByID: userID.(string),
			}
			if err := tx.Create(&playlist).Error; err != nil {
				return err
			}
			routine.Playlists = append(routine.Playlists, playlist)
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Str("title", input.Title).Msg("Failed to create routine")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create routine"})
		return
	}

	_ = database.CacheInvalidate("routines:*")

	logger.Info().Str("routine_id", routine.ID).Str("user_id", userID.(string)).Msg("Routine submitted")

	c.JSON(http.StatusCreated, gin.H{"routine": routine})
}

// ToggleRoutineLike handles POST /routines/:id/like. If we already liked it,
// remove the like. Otherwise, add it.
func ToggleRoutineLike(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	routineID := c.Param("id")

	var routine models.Routine
	if err := database.DB.Select("id").First(&routine, "id = ?", routineID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Routine not found"})
		return
	}

	var existing models.RoutineLiked
	findErr := database.DB.
		Where(`"routineId" = ? AND "userId" = ?`, routineID, userID).
		First(&existing).Error

	liked := false
	dbErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if findErr == nil {
			return tx.Delete(&existing).Error
		}
		liked = true
		return tx.Create(&models.RoutineLiked{
			RoutineID: routineID,
			UserID:    userID.(string),
		}).Error
	})
	if dbErr != nil {
		logger.Error().Err(dbErr).Str("routine_id", routineID).Msg("Failed to toggle like")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	_ = database.CacheInvalidate("routines:*")

	var likes int64
	database.DB.Model(&models.RoutineLiked{}).Where(`"routineId" = ?`, routineID).Count(&likes)

	c.JSON(http.StatusOK, gin.H{"liked": liked, "likes": likes})
}

// AddBenchmark handles POST /routines/:id/benchmark. Links the caller's
// personal score sheet; at most one per user and routine.
func AddBenchmark(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	routineID := c.Param("id")

	var input AddBenchmarkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if l := len(input.URL); l < 1 || l > 256 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"url": "URL must be 1-256 characters"}})
		return
	}

	var routine models.Routine
	if err := database.DB.Select("id", `"isBenchmark"`).First(&routine, "id = ?", routineID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Routine not found"})
		return
	}
	if !routine.IsBenchmark {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Routine is not a benchmark"})
		return
	}

	var existing models.RoutineBenchmark
	if err := database.DB.
		Where(`"routineId" = ? AND "userId" = ?`, routineID, userID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You already added a score sheet to this routine"})
		return
	}

	bench := models.RoutineBenchmark{
		RoutineID: routineID,
		UserID:    userID.(string),
		URL:       input.URL,
	}
	if err := database.DB.Create(&bench).Error; err != nil {
		// Unique violation from a racing duplicate add still maps to 409
		if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "duplicate") {
			c.JSON(http.StatusConflict, gin.H{"error": "You already added a score sheet to this routine"})
			return
		}
		logger.Error().Err(err).Str("routine_id", routineID).Msg("Failed to add benchmark sheet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add score sheet"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"benchmark": bench})
}

// RemoveBenchmark handles DELETE /routines/:id/benchmark.
func RemoveBenchmark(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	routineID := c.Param("id")

	result := database.DB.
		Where(`"routineId" = ? AND "userId" = ?`, routineID, userID).
		Delete(&models.RoutineBenchmark{})
	if result.Error != nil {
		logger.Error().Err(result.Error).Str("routine_id", routineID).Msg("Failed to remove benchmark sheet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove score sheet"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No score sheet found for this routine"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
