// Package apiclient is the typed HTTP client for the learnbook API. The
// gateway normalizes failures into *Error; resource clients add paths and
// query strings and propagate errors unchanged.
package apiclient

import "github.com/RubachokBoss/learnbook/internal/models"

type Client struct {
	Preferences    *PreferencesClient
	Progress       *ProgressClient
	Achievements   *AchievementsClient
	SharedContent  *SharedContentClient
	TutorScripts   *CatalogClient[models.TutorScript, models.TutorScriptFilter]
	CodingProblems *CatalogClient[models.CodingProblem, models.CodingProblemFilter]
	ARProblems     *CatalogClient[models.ARProblem, models.ARProblemFilter]
	Stories        *CatalogClient[models.Story, models.StoryFilter]
	VoiceQuizzes   *CatalogClient[models.VoiceQuiz, models.VoiceQuizFilter]
	Sessions       *SessionsClient
	Participants   *ParticipantsClient
	Messages       *MessagesClient
}

func New(cfg Config) *Client {
	return NewWithGateway(NewGateway(cfg))
}

func NewWithGateway(g *Gateway) *Client {
	return &Client{
		Preferences:    &PreferencesClient{gateway: g},
		Progress:       &ProgressClient{gateway: g},
		Achievements:   &AchievementsClient{gateway: g},
		SharedContent:  &SharedContentClient{gateway: g},
		TutorScripts:   newCatalogClient[models.TutorScript](g, "/api/tutor-scripts", tutorScriptParams),
		CodingProblems: newCatalogClient[models.CodingProblem](g, "/api/coding-problems", codingProblemParams),
		ARProblems:     newCatalogClient[models.ARProblem](g, "/api/ar-problems", arProblemParams),
		Stories:        newCatalogClient[models.Story](g, "/api/stories", storyParams),
		VoiceQuizzes:   newCatalogClient[models.VoiceQuiz](g, "/api/voice-quizzes", voiceQuizParams),
		Sessions:       &SessionsClient{gateway: g},
		Participants:   &ParticipantsClient{gateway: g},
		Messages:       &MessagesClient{gateway: g},
	}
}
