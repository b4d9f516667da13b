package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	consideredReposCount = 5

	maxAccountAgePoints = 100
	accountAgeDaysPerPt = 30
	maxFollowerPoints   = 50
	pointsPerFollower   = 2
	maxRepoCountPoints  = 30
	pointsPerRepo       = 2

	repoBasePoints  = 10
	maxStarPoints   = 50
	maxForkPoints   = 25
	maxCommitPoints = 30
)

// Calculator computes contribution score for github account.
type Calculator struct {
	githubClient      GithubClient
	classifier        *Classifier
	fanOut            int
	enrichmentTimeout time.Duration
	now               func() time.Time
	l                 logrus.FieldLogger
}

// NewCalculator creates new Calculator instance.
// fanOut limits how many repositories are enriched at once, enrichmentTimeout bounds
// every commits and README lookup.
func NewCalculator(
	githubClient GithubClient,
	classifier *Classifier,
	fanOut int,
	enrichmentTimeout time.Duration,
	l logrus.FieldLogger,
) *Calculator {
	if fanOut < 1 {
		fanOut = 1
	}

	return &Calculator{
		githubClient:      githubClient,
		classifier:        classifier,
		fanOut:            fanOut,
		enrichmentTimeout: enrichmentTimeout,
		now:               time.Now,
		l:                 l,
	}
}

// Calculate returns score breakdown for given account and its repositories.
// Repositories must be sorted by stars, only first five of them are scored in detail.
//
// Failures of single components and single repositories are replaced by defaults
// and reported in ScoreBreakdown.Warnings. Error is returned only for malformed input.
func (c *Calculator) Calculate(ctx context.Context, account *AccountData, repos []Repository) (*ScoreBreakdown, error) {
	if account == nil {
		return nil, errors.New("account data is missing")
	}

	var warnings *multierror.Error
	component := func(name string, r Result[float64]) float64 {
		if r.Err != nil {
			warnings = multierror.Append(warnings, fmt.Errorf("%s points: %w", name, r.Err))
		}
		return r.OrDefault(0)
	}

	breakdown := ScoreBreakdown{
		AccountAgePoints: component("account age", c.accountAgePoints(account.CreatedAt)),
		FollowerPoints:   component("follower", followerPoints(account.Followers)),
		RepoCountPoints:  component("repo count", repoCountPoints(len(repos))),
	}
	breakdown.TotalPoints = breakdown.AccountAgePoints + breakdown.FollowerPoints + breakdown.RepoCountPoints

	considered := repos
	if len(considered) > consideredReposCount {
		considered = considered[:consideredReposCount]
	}

	scores := make([]repositoryScore, len(considered))
	var g errgroup.Group
	g.SetLimit(c.fanOut)
	for i, repo := range considered {
		i, repo := i, repo
		g.Go(func() error {
			scores[i] = c.scoreRepository(ctx, repo)
			return nil
		})
	}
	_ = g.Wait()

	breakdown.RepoDetails = make([]RepositoryDetail, 0, len(scores))
	for _, s := range scores {
		for _, err := range s.warnings {
			warnings = multierror.Append(warnings, err)
		}
		if s.err != nil {
			continue
		}
		breakdown.RepoDetails = append(breakdown.RepoDetails, s.detail)
		breakdown.TotalPoints += s.detail.Points
	}

	if err := warnings.ErrorOrNil(); err != nil {
		c.l.Warnf("score computed with defaults: %v", err)
		breakdown.Warnings = err
	}

	return &breakdown, nil
}

type repositoryScore struct {
	detail   RepositoryDetail
	err      error
	warnings []error
}

func (c *Calculator) scoreRepository(ctx context.Context, repo Repository) repositoryScore {
	if err := validateRepository(repo); err != nil {
		err = fmt.Errorf("processing repository %q: %w", repo.FullName, err)
		return repositoryScore{err: err, warnings: []error{err}}
	}

	var s repositoryScore
	s.detail = RepositoryDetail{
		Name:  repo.Name,
		Stars: repo.Stars,
		Forks: repo.Forks,
	}

	points := repoBasePoints + min(repo.Stars, maxStarPoints) + min(repo.Forks, maxForkPoints)

	commits := c.commitCount(ctx, repo.FullName)
	if commits.Err != nil {
		s.warnings = append(s.warnings, fmt.Errorf("fetching commits for %s: %w", repo.FullName, commits.Err))
	}
	s.detail.Commits = commits.OrDefault(0)
	points += min(s.detail.Commits, maxCommitPoints)

	difficulty := c.difficulty(ctx, repo.FullName)
	if difficulty.Err != nil {
		s.warnings = append(s.warnings, fmt.Errorf("fetching README for %s: %w", repo.FullName, difficulty.Err))
	}
	s.detail.Difficulty = difficulty.OrDefault(DifficultyUnknown)
	s.detail.Points = float64(points) * s.detail.Difficulty.Multiplier()

	return s
}

func (c *Calculator) commitCount(ctx context.Context, fullName string) Result[int] {
	ctx, cancel := c.enrichmentContext(ctx)
	defer cancel()

	count, err := c.githubClient.CommitCount(ctx, fullName)
	if err != nil {
		return Fail[int](err)
	}
	if count < 0 {
		return Fail[int](fmt.Errorf("invalid commit count %d", count))
	}

	return Ok(count)
}

func (c *Calculator) difficulty(ctx context.Context, fullName string) Result[Difficulty] {
	ctx, cancel := c.enrichmentContext(ctx)
	defer cancel()

	readme, err := c.githubClient.Readme(ctx, fullName)
	if err != nil {
		return Fail[Difficulty](err)
	}

	return Ok(c.classifier.Classify(ctx, readme))
}

func (c *Calculator) enrichmentContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.enrichmentTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.enrichmentTimeout)
}

func (c *Calculator) accountAgePoints(createdAt string) Result[float64] {
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Fail[float64](fmt.Errorf("parsing account creation time: %w", err))
	}

	days := math.Floor(c.now().Sub(created).Hours() / 24)
	points := math.Min(days/accountAgeDaysPerPt, maxAccountAgePoints)

	return Ok(math.Max(points, 0))
}

func followerPoints(followers *int) Result[float64] {
	if followers == nil {
		return Fail[float64](errors.New("followers count is missing"))
	}
	if *followers < 0 {
		return Fail[float64](fmt.Errorf("invalid followers count %d", *followers))
	}

	return Ok(float64(min(*followers*pointsPerFollower, maxFollowerPoints)))
}

func repoCountPoints(count int) Result[float64] {
	return Ok(float64(min(count*pointsPerRepo, maxRepoCountPoints)))
}

func validateRepository(repo Repository) error {
	if repo.Name == "" || repo.FullName == "" {
		return errors.New("repository name cannot be empty")
	}
	if repo.Stars < 0 {
		return fmt.Errorf("invalid stars count %d", repo.Stars)
	}
	if repo.Forks < 0 {
		return fmt.Errorf("invalid forks count %d", repo.Forks)
	}

	return nil
}
