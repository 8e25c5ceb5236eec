package handlers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	appConfig "github.com/shishigami87/aimroutines/internal/config"
	"github.com/shishigami87/aimroutines/internal/database"
	"github.com/shishigami87/aimroutines/internal/models"
	"github.com/shishigami87/aimroutines/pkg/logger"
	"github.com/shishigami87/aimroutines/pkg/utils"
)

func getS3Client() (*s3.Client, error) {
	cfg := appConfig.AppConfig
	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID),
		}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithEndpointResolverWithOptions(r2Resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg), nil
}

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// ListCrosshairs handles GET /resources/crosshairs
func ListCrosshairs(c *gin.Context) {
	var crosshairs []models.Resource
	err := database.DB.
		Where("type = ?", models.ResourceCrosshair).
		Order("name ASC").
		Find(&crosshairs).Error
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list crosshairs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list crosshairs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"crosshairs": crosshairs})
}

// CreateCrosshair handles POST /resources/crosshairs (moderators only).
// Multipart upload: the image goes to R2, the record to the database.
func CreateCrosshair(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if l := len(name); l < 1 || l > 64 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"name": "Name must be 1-64 characters"}})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid image field found"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image must be png, jpg or webp"})
		return
	}

	key := fmt.Sprintf("crosshairs/%s%s", utils.GenerateID(), ext)

	client, err := getS3Client()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to init storage client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to init storage client"})
		return
	}

	cfg := appConfig.AppConfig
	_, err = client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(cfg.R2BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(header.Header.Get("Content-Type")),
	})
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Crosshair upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	publicURL := cfg.R2PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.r2.dev", cfg.R2BucketName)
	}

	resource := models.Resource{
		ID:            utils.GenerateID(),
		Type:          models.ResourceCrosshair,
		Name:          name,
		URL:           fmt.Sprintf("%s/%s", publicURL, key),
		SubmittedByID: userID.(string),
	}

	if err := database.DB.Create(&resource).Error; err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Failed to create crosshair record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create crosshair"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"crosshair": resource})
}
