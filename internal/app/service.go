package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// GithubClient returns github account and repository data.
//go:generate mockgen -destination mock/githubcli.go -package mock github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app GithubClient
type GithubClient interface {
	User(ctx context.Context, username string) (*AccountData, error)
	Repositories(ctx context.Context, username string) ([]Repository, error)
	CommitCount(ctx context.Context, fullName string) (int, error)
	Readme(ctx context.Context, fullName string) (string, error)
}

// Store merges user records into document storage.
// Fields not present in the record are left untouched.
//go:generate mockgen -destination mock/store.go -package mock github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app Store
type Store interface {
	MergeUser(ctx context.Context, userID string, record UserRecord) error
}

// storeTimeout limits saving of the computed record. Saving outlives the request context.
const storeTimeout = 10 * time.Second

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient GithubClient
	calculator   *Calculator
	store        Store
	timeout      time.Duration
	now          func() time.Time
	l            logrus.FieldLogger
}

// NewService creates new Service instance
func NewService(
	githubClient GithubClient,
	calculator *Calculator,
	store Store,
	timeout time.Duration,
	l logrus.FieldLogger,
) *Service {
	return &Service{
		githubClient: githubClient,
		calculator:   calculator,
		store:        store,
		timeout:      timeout,
		now:          time.Now,
		l:            l,
	}
}

// AnalyzeProfile fetches github data for the profile, computes its points and saves them.
//
// Upstream lookup failures are returned as NotFoundError, score computation failures as InternalError.
// Saving is best effort: store errors are only logged.
func (s *Service) AnalyzeProfile(ctx context.Context, profile Profile) (*Analysis, error) {
	if profile.Username == "" {
		return nil, InvalidRequestError("username cannot be empty")
	}
	if profile.UserID == "" {
		return nil, InvalidRequestError("user_id cannot be empty")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	l := s.l.WithField("username", profile.Username)
	l.Infof("analyzing github profile for user_id %s", profile.UserID)

	account, err := s.githubClient.User(ctx, profile.Username)
	if err != nil {
		if use, ok := AsUpstreamStatusError(err); ok {
			return nil, NotFoundError("GitHub profile not found. " + use.Error())
		}
		return nil, fmt.Errorf("retrieving github profile: %w", err)
	}

	repos, err := s.githubClient.Repositories(ctx, profile.Username)
	if err != nil {
		if use, ok := AsUpstreamStatusError(err); ok {
			return nil, NotFoundError("Failed to fetch repositories. " + use.Error())
		}
		return nil, fmt.Errorf("retrieving repositories: %w", err)
	}
	l.Infof("fetched %d repositories", len(repos))

	sorted := make([]Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})

	breakdown, err := s.calculator.Calculate(ctx, account, sorted)
	if err != nil {
		return nil, InternalError(fmt.Sprintf("Error calculating points: %v", err))
	}
	l.Infof("points calculation complete, total points: %.2f", breakdown.TotalPoints)

	record := UserRecord{
		GithubUsername: profile.Username,
		Points:         breakdown.TotalPoints,
		PointsBreakdown: PointsBreakdown{
			AccountAge: breakdown.AccountAgePoints,
			Followers:  breakdown.FollowerPoints,
			RepoCount:  breakdown.RepoCountPoints,
		},
		LastUpdated: s.now().UTC(),
	}
	s.saveRecord(ctx, profile.UserID, record, l)

	return newAnalysis(profile.Username, sorted, breakdown), nil
}

func (s *Service) saveRecord(ctx context.Context, userID string, record UserRecord, l logrus.FieldLogger) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer cancel()

	if err := s.store.MergeUser(ctx, userID, record); err != nil {
		l.Errorf("updating user record %s: %v", userID, err)
	}
}

// UpdatePoints acknowledges points update for the user.
// Nothing is saved.
func (s *Service) UpdatePoints(ctx context.Context, userID string, points int) (*PointsUpdate, error) {
	if userID == "" {
		return nil, InvalidRequestError("user_id cannot be empty")
	}

	return &PointsUpdate{
		UserID:    userID,
		NewPoints: points,
	}, nil
}

func newAnalysis(username string, repos []Repository, breakdown *ScoreBreakdown) *Analysis {
	a := Analysis{
		Username:    username,
		TotalRepos:  len(repos),
		RepoDetails: breakdown.RepoDetails,
		TotalPoints: breakdown.TotalPoints,
	}
	for _, r := range repos {
		a.TotalStars += r.Stars
		a.TotalForks += r.Forks
	}
	for _, d := range breakdown.RepoDetails {
		a.TotalCommits += d.Commits
	}

	return &a
}
