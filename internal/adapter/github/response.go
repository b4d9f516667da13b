package github

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type userResponse struct {
	Login     string `json:"login"`
	CreatedAt string `json:"created_at"`
	Followers *int   `json:"followers"`
}

func (u userResponse) ToAccountData() *app.AccountData {
	return &app.AccountData{
		CreatedAt: u.CreatedAt,
		Followers: u.Followers,
	}
}

type reposResponse []reposResponseItem

type reposResponseItem struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
}

func (r reposResponse) ToRepositories() []app.Repository {
	rs := make([]app.Repository, 0, len(r))
	for _, i := range r {
		rs = append(rs, app.Repository{
			Name:     i.Name,
			FullName: i.FullName,
			Stars:    i.StargazersCount,
			Forks:    i.ForksCount,
		})
	}

	return rs
}

type commitsResponse []jsoniter.RawMessage
