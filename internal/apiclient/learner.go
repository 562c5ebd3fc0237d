package apiclient

import (
	"context"
	"net/http"

	"github.com/RubachokBoss/learnbook/internal/models"
)

const (
	preferencesPath  = "/api/user-preferences"
	progressPath     = "/api/user-progress"
	achievementsPath = "/api/user-achievements"
)

type PreferencesClient struct {
	gateway *Gateway
}

func (c *PreferencesClient) Get(ctx context.Context, userID string) (*models.UserPreferences, error) {
	return Do[*models.UserPreferences](ctx, c.gateway, preferencesPath+segment(userID))
}

// Save upserts the preferences of prefs.UserID.
func (c *PreferencesClient) Save(ctx context.Context, prefs *models.UserPreferences) (*models.UserPreferences, error) {
	return Do[*models.UserPreferences](ctx, c.gateway, preferencesPath+segment(prefs.UserID),
		WithMethod(http.MethodPost),
		WithBody(prefs),
	)
}

type ProgressClient struct {
	gateway *Gateway
}

func (c *ProgressClient) Get(ctx context.Context, userID string, filter models.ProgressFilter) ([]models.UserProgress, error) {
	endpoint := newQuery().
		str("subject", filter.Subject).
		int("grade", filter.Grade).
		apply(progressPath + segment(userID))

	return Do[[]models.UserProgress](ctx, c.gateway, endpoint)
}

func (c *ProgressClient) Save(ctx context.Context, progress *models.UserProgress) (*models.UserProgress, error) {
	return Do[*models.UserProgress](ctx, c.gateway, progressPath+segment(progress.UserID),
		WithMethod(http.MethodPost),
		WithBody(progress),
	)
}

type AchievementsClient struct {
	gateway *Gateway
}

func (c *AchievementsClient) List(ctx context.Context, userID string) ([]models.Achievement, error) {
	return Do[[]models.Achievement](ctx, c.gateway, achievementsPath+segment(userID))
}

func (c *AchievementsClient) Award(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error) {
	return Do[*models.Achievement](ctx, c.gateway, achievementsPath+segment(achievement.UserID),
		WithMethod(http.MethodPost),
		WithBody(achievement),
	)
}
