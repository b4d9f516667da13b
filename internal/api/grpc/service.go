package grpc

import (
	"context"
	"fmt"
	"math"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// AppService analyzes github profiles.
//go:generate mockgen -destination mock/appservice.go -package mock github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/api/grpc AppService
type AppService interface {
	AnalyzeProfile(ctx context.Context, profile app.Profile) (*app.Analysis, error)
	UpdatePoints(ctx context.Context, userID string, points int) (*app.PointsUpdate, error)
}

// Service implements ProfilesServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
}

var _ ProfilesServer = &Service{}

// NewService returns new Service instance.
func NewService(appService AppService) *Service {
	return &Service{
		appService: appService,
	}
}

// AnalyzeProfile scores github profile given in username and user_id fields.
func (s *Service) AnalyzeProfile(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	fields := r.GetFields()
	analysis, err := s.appService.AnalyzeProfile(ctx, app.Profile{
		Username: fields["username"].GetStringValue(),
		UserID:   fields["user_id"].GetStringValue(),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	details := make([]interface{}, 0, len(analysis.RepoDetails))
	for _, d := range analysis.RepoDetails {
		details = append(details, map[string]interface{}{
			"name":       d.Name,
			"stars":      d.Stars,
			"forks":      d.Forks,
			"commits":    d.Commits,
			"difficulty": string(d.Difficulty),
		})
	}

	reply, err := structpb.NewStruct(map[string]interface{}{
		"username":      analysis.Username,
		"total_repos":   analysis.TotalRepos,
		"total_stars":   analysis.TotalStars,
		"total_forks":   analysis.TotalForks,
		"total_commits": analysis.TotalCommits,
		"repo_details":  details,
		"total_points":  analysis.TotalPoints,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "building reply: %v", err)
	}
	return reply, nil
}

// UpdatePoints acknowledges points update given in user_id and points fields.
func (s *Service) UpdatePoints(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	fields := r.GetFields()
	pv, ok := fields["points"]
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "points field is required")
	}
	n, ok := pv.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) {
		return nil, status.Error(codes.InvalidArgument, "points must be an integer")
	}

	update, err := s.appService.UpdatePoints(ctx, fields["user_id"].GetStringValue(), int(n.NumberValue))
	if err != nil {
		return nil, toStatus(err)
	}

	reply, err := structpb.NewStruct(map[string]interface{}{
		"message":    "Points updated successfully",
		"user_id":    update.UserID,
		"new_points": update.NewPoints,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "building reply: %v", err)
	}
	return reply, nil
}

func toStatus(err error) error {
	switch {
	case app.IsInvalidRequestError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case app.IsNotFoundError(err):
		return status.Error(codes.NotFound, err.Error())
	case app.IsInternalError(err):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Internal, fmt.Sprintf("An unexpected error occurred: %v", err))
	}
}
