package github

import (
	"context"
	"fmt"
	"net/http"

	"contribhub/internal/model"

	"github.com/tidwall/gjson"
)

// Issues looks issues and pull requests up in GitHub repositories.
type Issues struct {
	resources Resources
	base      string
}

var _ model.IssueFinder = (*Issues)(nil)

func NewIssues(resources Resources, baseURI string) *Issues {
	return &Issues{resources: resources, base: baseURI}
}

// GetByID returns nil, nil when the issue does not exist (anymore).
func (i *Issues) GetByID(ctx context.Context, repoFullName, provider, issueID string) (*model.Issue, error) {
	if provider != model.ProviderGithub {
		return nil, fmt.Errorf("issue %s of %s: provider %q is not github", issueID, repoFullName, provider)
	}
	uri, err := JoinURL(i.base, "repos/"+repoFullName+"/issues/"+issueID)
	if err != nil {
		return nil, err
	}
	res, err := i.resources.Get(ctx, uri)
	if err != nil {
		return nil, err
	}
	if res.StatusCode == http.StatusNotFound || res.StatusCode == http.StatusGone {
		return nil, nil
	}
	if err := checkStatus("issue "+issueID+" of "+repoFullName, res); err != nil {
		return nil, err
	}

	attrs := gjson.ParseBytes(res.Body)
	return &model.Issue{
		ID:           issueID,
		RepoFullName: repoFullName,
		Provider:     provider,
		Title:        attrs.Get("title").String(),
		State:        attrs.Get("state").String(),
		PullRequest:  attrs.Get("pull_request").Exists(),
	}, nil
}
