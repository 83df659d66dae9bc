package github

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"

	"contribhub/internal/model"

	"github.com/tidwall/gjson"
)

// ProjectFinder tells which repositories are activated as projects.
type ProjectFinder interface {
	// Project returns nil, nil when the repository is not a project.
	Project(ctx context.Context, repoFullName, provider string) (*model.Project, error)
}

// Organizations are the GitHub organizations of the authenticated user.
type Organizations struct {
	resources Resources
	base      string
	uri       string
	owner     model.User
	projects  ProjectFinder
}

func NewOrganizations(resources Resources, baseURI string, owner model.User, projects ProjectFinder) (*Organizations, error) {
	uri, err := JoinURL(baseURI, "user/orgs")
	if err != nil {
		return nil, err
	}
	return &Organizations{
		resources: resources,
		base:      baseURI,
		uri:       uri,
		owner:     owner,
		projects:  projects,
	}, nil
}

// URI is the endpoint the organizations are fetched from.
func (o *Organizations) URI() string {
	return o.uri
}

// Fetch gets the organizations in one round trip. Either every
// organization is returned, in the order GitHub lists them, or an error.
func (o *Organizations) Fetch(ctx context.Context) (iter.Seq[*Organization], error) {
	res, err := o.resources.Get(ctx, o.uri)
	if err != nil {
		return nil, err
	}
	if err := checkStatus("organizations for current User", res); err != nil {
		return nil, err
	}

	items, err := parseArray(res.Body)
	if err != nil {
		return nil, fmt.Errorf("organizations of %s: %w", o.owner.Username, err)
	}
	orgs := make([]*Organization, 0, len(items))
	for _, item := range items {
		orgs = append(orgs, &Organization{
			owner:     o.owner,
			attrs:     item,
			resources: o.resources,
			base:      o.base,
			projects:  o.projects,
		})
	}
	return slices.Values(orgs), nil
}

var errNotArray = errors.New("response body is not a JSON array")

func parseArray(body []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, errNotArray
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, errNotArray
	}
	return parsed.Array(), nil
}

// Organization is one GitHub organization, as returned by the API.
type Organization struct {
	owner     model.User
	attrs     gjson.Result
	resources Resources
	base      string
	projects  ProjectFinder
}

func (o *Organization) ID() string {
	return o.attrs.Get("id").String()
}

func (o *Organization) Login() string {
	return o.attrs.Get("login").String()
}

// Owner is the user the organization was fetched for.
func (o *Organization) Owner() model.User {
	return o.owner
}

// Raw returns the organization's JSON attributes.
func (o *Organization) Raw() string {
	return o.attrs.Raw
}

// Repos fetches the organization's repositories and marks the ones
// activated as projects.
func (o *Organization) Repos(ctx context.Context) ([]model.Repo, error) {
	uri, err := JoinURL(o.base, "orgs/"+o.Login()+"/repos")
	if err != nil {
		return nil, err
	}
	res, err := o.resources.Get(ctx, uri)
	if err != nil {
		return nil, err
	}
	if err := checkStatus("repos of organization "+o.Login(), res); err != nil {
		return nil, err
	}
	items, err := parseArray(res.Body)
	if err != nil {
		return nil, fmt.Errorf("repos of %s: %w", o.Login(), err)
	}

	repos := make([]model.Repo, 0, len(items))
	for _, item := range items {
		repo := model.Repo{
			FullName: item.Get("full_name").String(),
			Provider: model.ProviderGithub,
			Private:  item.Get("private").Bool(),
		}
		if o.projects != nil {
			project, err := o.projects.Project(ctx, repo.FullName, repo.Provider)
			if err != nil {
				return nil, fmt.Errorf("project of %s: %w", repo.FullName, err)
			}
			repo.Project = project
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
