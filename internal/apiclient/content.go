package apiclient

import (
	"context"
	"net/http"

	"github.com/RubachokBoss/learnbook/internal/models"
)

const sharedContentPath = "/api/shared-content"

type SharedContentClient struct {
	gateway *Gateway
}

// List returns the newest shared items. A zero limit leaves the page size to
// the server.
func (c *SharedContentClient) List(ctx context.Context, limit int) ([]models.SharedContent, error) {
	endpoint := newQuery().int("limit", limit).apply(sharedContentPath)
	return Do[[]models.SharedContent](ctx, c.gateway, endpoint)
}

func (c *SharedContentClient) Share(ctx context.Context, content *models.SharedContent) (*models.SharedContent, error) {
	return Do[*models.SharedContent](ctx, c.gateway, sharedContentPath,
		WithMethod(http.MethodPost),
		WithBody(content),
	)
}

// CatalogClient serves the append-only content collections that are read
// through a fixed set of optional filters.
type CatalogClient[T any, F any] struct {
	gateway *Gateway
	path    string
	params  func(F) *query
}

func newCatalogClient[T any, F any](g *Gateway, path string, params func(F) *query) *CatalogClient[T, F] {
	return &CatalogClient[T, F]{gateway: g, path: path, params: params}
}

func (c *CatalogClient[T, F]) List(ctx context.Context, filter F) ([]T, error) {
	return Do[[]T](ctx, c.gateway, c.params(filter).apply(c.path))
}

func (c *CatalogClient[T, F]) Save(ctx context.Context, record *T) (*T, error) {
	return Do[*T](ctx, c.gateway, c.path,
		WithMethod(http.MethodPost),
		WithBody(record),
	)
}

func tutorScriptParams(f models.TutorScriptFilter) *query {
	return newQuery().
		str("tone", f.Tone).
		int("grade", f.Grade).
		str("subject", f.Subject)
}

func codingProblemParams(f models.CodingProblemFilter) *query {
	return newQuery().
		str("language", f.Language).
		str("difficulty", f.Difficulty)
}

func arProblemParams(f models.ARProblemFilter) *query {
	return newQuery().
		str("subject", f.Subject).
		int("grade", f.Grade)
}

func storyParams(f models.StoryFilter) *query {
	return newQuery().
		str("language", f.Language).
		int("gradeLevel", f.GradeLevel)
}

func voiceQuizParams(f models.VoiceQuizFilter) *query {
	return newQuery().
		str("language", f.Language).
		str("difficulty", f.Difficulty).
		str("subject", f.Subject)
}
