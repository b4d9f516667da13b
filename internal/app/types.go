package app

import "time"

// Profile identifies the account to analyze and the record it is stored under.
type Profile struct {
	Username string
	UserID   string
}

// AccountData entity.
// CreatedAt is kept in the raw upstream form, Followers is nil when upstream didn't send it.
type AccountData struct {
	CreatedAt string
	Followers *int
}

// Repository entity
type Repository struct {
	Name     string
	FullName string
	Stars    int
	Forks    int
}

// Difficulty is a heuristic complexity label of a repository.
type Difficulty string

// Difficulty labels. DifficultyUnknown is used when README couldn't be fetched.
const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyUnknown Difficulty = "unknown"
)

// Multiplier returns score multiplier for the difficulty.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyHard:
		return 2
	case DifficultyMedium:
		return 1.5
	default:
		return 1
	}
}

// ParseDifficulty returns classifier label for given string.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch d := Difficulty(s); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, true
	}
	return "", false
}

// RepositoryDetail is a scored repository.
type RepositoryDetail struct {
	Name       string
	Stars      int
	Forks      int
	Commits    int
	Difficulty Difficulty
	Points     float64
}

// ScoreBreakdown is the result of score calculation.
type ScoreBreakdown struct {
	TotalPoints      float64
	AccountAgePoints float64
	FollowerPoints   float64
	RepoCountPoints  float64
	RepoDetails      []RepositoryDetail

	// Warnings aggregates isolated failures which were replaced by defaults.
	Warnings error
}

// Analysis is a summary returned for analyzed profile.
type Analysis struct {
	Username     string
	TotalRepos   int
	TotalStars   int
	TotalForks   int
	TotalCommits int
	RepoDetails  []RepositoryDetail
	TotalPoints  float64
}

// PointsBreakdown holds persisted score components.
type PointsBreakdown struct {
	AccountAge float64
	Followers  float64
	RepoCount  float64
}

// UserRecord is merged into the document store under user id.
type UserRecord struct {
	GithubUsername  string
	Points          float64
	PointsBreakdown PointsBreakdown
	LastUpdated     time.Time
}

// PointsUpdate is returned by points update.
type PointsUpdate struct {
	UserID    string
	NewPoints int
}
