package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shishigami87/aimroutines/internal/database"
	"github.com/shishigami87/aimroutines/internal/models"
	"github.com/shishigami87/aimroutines/internal/routes"
	"github.com/shishigami87/aimroutines/pkg/utils"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	// Mimic main.go structure
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		routes.RegisterAuthRoutes(auth)

		routes.RegisterRoutineRoutes(api)
		routes.RegisterPlaylistRoutes(api)
		routes.RegisterUserRoutes(api)
	}

	return r
}

func createTestUser(t *testing.T, prefix string, role string) string {
	// Created directly in DB so the role can be set without a promote step
	passHash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := models.User{
		ID:       utils.GenerateID(),
		Username: prefix + "_user",
		Email:    prefix + "@test.com",
		Password: string(passHash),
		Name:     prefix + " Test",
		Role:     models.Role(role),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", prefix, err)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

func performRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(jsonBytes))
	} else {
		bodyReader = strings.NewReader("")
	}

	req, _ := http.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func listRoutines(t *testing.T, r *gin.Engine, path, token string) []map[string]interface{} {
	w := performRequest(r, "GET", path, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode list response: %v", err)
	}

	raw, ok := resp["routines"].([]interface{})
	if !ok {
		t.Fatalf("routines is not a list: %T", resp["routines"])
	}

	out := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		out = append(out, item.(map[string]interface{}))
	}
	return out
}

func findRoutine(routines []map[string]interface{}, id string) map[string]interface{} {
	for _, r := range routines {
		if r["id"] == id {
			return r
		}
	}
	return nil
}

func TestRoutineFlow(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	modToken := createTestUser(t, "flow_mod", "MODERATOR")
	userToken := createTestUser(t, "flow_user", "USER")

	// 1. Moderator submits a routine; playlists arrive hardest-first on
	// purpose, the listing should reorder them by difficulty.
	payload := map[string]interface{}{
		"title": "Flow Fundamentals",
		"game":  "KOVAAKS",
		"playlists": []map[string]string{
			{"title": "Gold", "reference": "KovaaKs-Flow-Gold-11111"},
			{"title": "Bronze", "reference": "KovaaKs-Flow-Bronze-22222"},
		},
	}
	w := performRequest(r, "POST", "/api/routines", payload, modToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &createResp)
	routineID := createResp["routine"].(map[string]interface{})["id"].(string)

	// 2. Regular users cannot submit
	w = performRequest(r, "POST", "/api/routines", payload, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 3. Anonymous list shows the routine with playlists easiest-first
	routines := listRoutines(t, r, "/api/routines", "")
	routine := findRoutine(routines, routineID)
	if routine == nil {
		t.Fatalf("Routine %s should be in the anonymous list", routineID)
	}

	playlists := routine["playlists"].([]interface{})
	assert.Len(t, playlists, 2)
	assert.Equal(t, "Bronze", playlists[0].(map[string]interface{})["title"])
	assert.Equal(t, "Gold", playlists[1].(map[string]interface{})["title"])

	// 4. Anonymous like is rejected
	w = performRequest(r, "POST", "/api/routines/"+routineID+"/like", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 5. Like, verify, unlike (toggle is its own inverse)
	w = performRequest(r, "POST", "/api/routines/"+routineID+"/like", nil, userToken)
	assert.Equal(t, http.StatusOK, w.Code)
	var likeResp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &likeResp)
	assert.Equal(t, true, likeResp["liked"])
	assert.Equal(t, float64(1), likeResp["likes"])

	routines = listRoutines(t, r, "/api/routines?s=liked-routines", userToken)
	assert.NotNil(t, findRoutine(routines, routineID))

	w = performRequest(r, "POST", "/api/routines/"+routineID+"/like", nil, userToken)
	assert.Equal(t, http.StatusOK, w.Code)
	json.Unmarshal(w.Body.Bytes(), &likeResp)
	assert.Equal(t, false, likeResp["liked"])

	routines = listRoutines(t, r, "/api/routines?s=liked-routines", userToken)
	assert.Nil(t, findRoutine(routines, routineID))
}

func TestBenchmarkFlow(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	modToken := createTestUser(t, "bench_mod", "MODERATOR")
	userToken := createTestUser(t, "bench_user", "USER")

	payload := map[string]interface{}{
		"title":         "Bench Season 1",
		"game":          "KOVAAKS",
		"isBenchmark":   true,
		"templateSheet": "https://docs.google.com/spreadsheets/d/bench-template",
		"playlists": []map[string]string{
			{"title": "Novice", "reference": "KovaaKs-Bench-Novice-33333"},
		},
	}
	w := performRequest(r, "POST", "/api/routines", payload, modToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &createResp)
	routineID := createResp["routine"].(map[string]interface{})["id"].(string)

	// Benchmarks are hidden from the default view but visible in theirs
	routines := listRoutines(t, r, "/api/routines", "")
	assert.Nil(t, findRoutine(routines, routineID))
	routines = listRoutines(t, r, "/api/routines?s=only-benchmarks", "")
	assert.NotNil(t, findRoutine(routines, routineID))

	// Identity-scoped view is empty for anonymous callers
	routines = listRoutines(t, r, "/api/routines?s=active-benchmarks", "")
	assert.Empty(t, routines)

	// Attach a personal score sheet
	sheet := map[string]string{"url": "https://docs.google.com/spreadsheets/d/my-scores"}
	w = performRequest(r, "POST", "/api/routines/"+routineID+"/benchmark", sheet, userToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	// A second sheet for the same routine conflicts
	w = performRequest(r, "POST", "/api/routines/"+routineID+"/benchmark", sheet, userToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The active-benchmarks view now carries the caller's sheet URL
	routines = listRoutines(t, r, "/api/routines?s=active-benchmarks", userToken)
	routine := findRoutine(routines, routineID)
	if routine == nil {
		t.Fatal("Benchmark routine should be in the caller's active view")
	}
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/my-scores", routine["benchmarkSheet"])

	// Remove and verify the view empties out
	w = performRequest(r, "DELETE", "/api/routines/"+routineID+"/benchmark", nil, userToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "DELETE", "/api/routines/"+routineID+"/benchmark", nil, userToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	routines = listRoutines(t, r, "/api/routines?s=active-benchmarks", userToken)
	assert.Empty(t, routines)
}
