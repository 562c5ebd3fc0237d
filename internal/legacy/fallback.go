package legacy

import (
	"reflect"

	"github.com/RubachokBoss/learnbook/internal/models"
)

// Operation names the legacy method; values match the old call-site names and
// are used as the log field.
type Operation string

const (
	OpGetUserPreferences         Operation = "getUserPreferences"
	OpSaveUserPreferences        Operation = "saveUserPreferences"
	OpGetUserProgress            Operation = "getUserProgress"
	OpUpdateUserProgress         Operation = "updateUserProgress"
	OpGetUserAchievements        Operation = "getUserAchievements"
	OpAwardAchievement           Operation = "awardAchievement"
	OpGetSharedContent           Operation = "getSharedContent"
	OpShareContent               Operation = "shareContent"
	OpGetTutorScripts            Operation = "getTutorScripts"
	OpSaveTutorScript            Operation = "saveTutorScript"
	OpGetCodingProblems          Operation = "getCodingProblems"
	OpSaveCodingProblem          Operation = "saveCodingProblem"
	OpGetARProblems              Operation = "getARProblems"
	OpSaveARProblem              Operation = "saveARProblem"
	OpGetStories                 Operation = "getStories"
	OpSaveStory                  Operation = "saveStory"
	OpGetVoiceQuizzes            Operation = "getVoiceQuizzes"
	OpSaveVoiceQuiz              Operation = "saveVoiceQuiz"
	OpCreateCollaborativeSession Operation = "createCollaborativeSession"
	OpGetCollaborativeSession    Operation = "getCollaborativeSession"
	OpUpdateCollaborativeSession Operation = "updateCollaborativeSession"
	OpJoinSession                Operation = "joinSession"
	OpGetSessionParticipants     Operation = "getSessionParticipants"
	OpSendChatMessage            Operation = "sendChatMessage"
	OpGetChatMessages            Operation = "getChatMessages"
)

// Fallback is what a legacy method returns instead of an error.
type Fallback int

const (
	// EmptyList is a non-nil, zero-length slice.
	EmptyList Fallback = iota + 1
	// Zero is a nil record or an empty identifier.
	Zero
	// False reports a failed mutation.
	False
	// PreferencesDefaults is the record built by DefaultPreferences.
	PreferencesDefaults
)

func (f Fallback) String() string {
	switch f {
	case EmptyList:
		return "empty_list"
	case Zero:
		return "zero"
	case False:
		return "false"
	case PreferencesDefaults:
		return "default_preferences"
	default:
		return "unknown"
	}
}

// Fallbacks maps every legacy operation to its failure value.
var Fallbacks = map[Operation]Fallback{
	OpGetUserPreferences:         PreferencesDefaults,
	OpSaveUserPreferences:        False,
	OpGetUserProgress:            EmptyList,
	OpUpdateUserProgress:         False,
	OpGetUserAchievements:        EmptyList,
	OpAwardAchievement:           False,
	OpGetSharedContent:           EmptyList,
	OpShareContent:               Zero,
	OpGetTutorScripts:            EmptyList,
	OpSaveTutorScript:            Zero,
	OpGetCodingProblems:          EmptyList,
	OpSaveCodingProblem:          Zero,
	OpGetARProblems:              EmptyList,
	OpSaveARProblem:              Zero,
	OpGetStories:                 EmptyList,
	OpSaveStory:                  Zero,
	OpGetVoiceQuizzes:            EmptyList,
	OpSaveVoiceQuiz:              Zero,
	OpCreateCollaborativeSession: Zero,
	OpGetCollaborativeSession:    Zero,
	OpUpdateCollaborativeSession: False,
	OpJoinSession:                False,
	OpGetSessionParticipants:     EmptyList,
	OpSendChatMessage:            False,
	OpGetChatMessages:            EmptyList,
}

func DefaultPreferences(userID string) *models.UserPreferences {
	return &models.UserPreferences{
		UserID:              userID,
		PreferredSubject:    "math",
		PreferredDifficulty: 2,
		PreferredLanguage:   "en",
		LearningStyle:       "visual",
		DailyGoalMinutes:    30,
	}
}

// fallbackValue builds the failure value of kind for a method returning T.
func fallbackValue[T any](kind Fallback, userID string) T {
	var zero T

	switch kind {
	case EmptyList:
		t := reflect.TypeOf((*T)(nil)).Elem()
		if t.Kind() == reflect.Slice {
			return reflect.MakeSlice(t, 0, 0).Interface().(T)
		}
	case PreferencesDefaults:
		if v, ok := any(DefaultPreferences(userID)).(T); ok {
			return v
		}
	}

	return zero
}
