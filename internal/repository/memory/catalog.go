package memory

import (
	"context"

	"github.com/RubachokBoss/learnbook/internal/models"
)

// catalog implements repository.CatalogRepository; results are newest first.
type catalog[T any, F any] struct {
	table[T]
	match func(T, F) bool
}

func newCatalog[T any, F any](match func(T, F) bool) *catalog[T, F] {
	return &catalog[T, F]{match: match}
}

func (c *catalog[T, F]) List(_ context.Context, filter F) ([]T, error) {
	return c.selectRows(func(v T) bool { return c.match(v, filter) }, true), nil
}

func (c *catalog[T, F]) Create(_ context.Context, record *T) error {
	c.insert(*record)
	return nil
}

func eqStr(want, got string) bool { return want == "" || want == got }
func eqInt(want, got int) bool    { return want == 0 || want == got }

func matchTutorScript(s models.TutorScript, f models.TutorScriptFilter) bool {
	return eqStr(f.Tone, s.Tone) && eqInt(f.Grade, s.Grade) && eqStr(f.Subject, s.Subject)
}

func matchCodingProblem(p models.CodingProblem, f models.CodingProblemFilter) bool {
	return eqStr(f.Language, p.Language) && eqStr(f.Difficulty, p.Difficulty)
}

func matchARProblem(p models.ARProblem, f models.ARProblemFilter) bool {
	return eqStr(f.Subject, p.Subject) && eqInt(f.Grade, p.Grade)
}

func matchStory(s models.Story, f models.StoryFilter) bool {
	return eqStr(f.Language, s.Language) && eqInt(f.GradeLevel, s.GradeLevel)
}

func matchVoiceQuiz(q models.VoiceQuiz, f models.VoiceQuizFilter) bool {
	return eqStr(f.Language, q.Language) && eqStr(f.Difficulty, q.Difficulty) && eqStr(f.Subject, q.Subject)
}
