package model_test

import (
	"context"
	"testing"
	"time"

	"contribhub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockIssueFinder struct {
	mock.Mock
}

func (m *mockIssueFinder) GetByID(ctx context.Context, repoFullName, provider, issueID string) (*model.Issue, error) {
	args := m.Called(ctx, repoFullName, provider, issueID)
	issue := args.Get(0)
	if issue == nil {
		return nil, args.Error(1)
	}
	return issue.(*model.Issue), args.Error(1)
}

func testProject() model.Project {
	return model.Project{RepoFullName: "mihai/self", Provider: model.ProviderGithub}
}

func testContract(username string, role model.Role) model.Contract {
	return model.NewContract(
		testProject(),
		model.Contributor{Username: username, Provider: model.ProviderGithub},
		role,
		2500,
	)
}

func TestNewTask_Unassigned(t *testing.T) {
	task := model.NewTask(testProject(), "123", model.RoleDev)

	assert.Equal(t, testProject(), task.Project())
	assert.Equal(t, "123", task.IssueID())
	assert.Equal(t, model.RoleDev, task.Role())
	assert.False(t, task.IsAssigned())
	assert.Nil(t, task.Contract())
	assert.Nil(t, task.Assignee())
	assert.True(t, task.AssignmentDate().IsZero())
	assert.True(t, task.Deadline().IsZero())
}

func TestNewAssignedTask(t *testing.T) {
	assignment := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	contract := testContract("mihai", model.RoleRev)

	task, err := model.NewAssignedTask(contract, "123", assignment, assignment.Add(model.DefaultDeadline))

	require.NoError(t, err)
	assert.True(t, task.IsAssigned())
	assert.Equal(t, model.RoleRev, task.Role())
	assert.Equal(t, contract.Project, task.Project())
	assert.Equal(t, contract.ID, task.Contract().ID)
	assert.Equal(t, "mihai", task.Assignee().Username)
	assert.True(t, task.AssignmentDate().Equal(assignment))
	assert.True(t, task.Deadline().Equal(assignment.AddDate(0, 0, 10)))
}

func TestNewAssignedTask_InvalidDeadline(t *testing.T) {
	assignment := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	contract := testContract("mihai", model.RoleDev)

	cases := map[string]struct {
		assignment time.Time
		deadline   time.Time
	}{
		"deadline equals assignment": {assignment, assignment},
		"deadline before assignment": {assignment, assignment.Add(-time.Hour)},
		"missing assignment":         {time.Time{}, assignment},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			task, err := model.NewAssignedTask(contract, "1", tc.assignment, tc.deadline)
			assert.ErrorIs(t, err, model.ErrInvalidDeadline)
			assert.Nil(t, task)
		})
	}
}

func TestTask_AssignAndUnassign(t *testing.T) {
	task := model.NewTask(testProject(), "42", model.RoleDev)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assigned, err := task.Assign(testContract("vlad", model.RoleDev), at)
	require.NoError(t, err)

	assert.False(t, task.IsAssigned(), "original task must not change")
	assert.True(t, assigned.IsAssigned())
	assert.Equal(t, "vlad", assigned.Assignee().Username)
	assert.True(t, assigned.Deadline().After(assigned.AssignmentDate()))
	assert.Equal(t, model.DefaultDeadline, assigned.Deadline().Sub(assigned.AssignmentDate()))

	unassigned := assigned.Unassign()
	assert.False(t, unassigned.IsAssigned())
	assert.True(t, unassigned.AssignmentDate().IsZero())
	assert.True(t, unassigned.Deadline().IsZero())
	assert.True(t, assigned.IsAssigned(), "assigned task must not change")
}

func TestTask_AssignContractMismatch(t *testing.T) {
	task := model.NewTask(testProject(), "42", model.RoleDev)
	at := time.Now()

	_, err := task.Assign(testContract("vlad", model.RoleRev), at)
	assert.ErrorIs(t, err, model.ErrContractMismatch)

	other := model.NewContract(
		model.Project{RepoFullName: "other/repo", Provider: model.ProviderGithub},
		model.Contributor{Username: "vlad", Provider: model.ProviderGithub},
		model.RoleDev,
		0,
	)
	_, err = task.Assign(other, at)
	assert.ErrorIs(t, err, model.ErrContractMismatch)
}

func TestTask_ContractIsCopied(t *testing.T) {
	at := time.Now()
	task, err := model.NewAssignedTask(testContract("mihai", model.RoleDev), "1", at, at.Add(time.Hour))
	require.NoError(t, err)

	c := task.Contract()
	c.Contributor.Username = "someone-else"

	assert.Equal(t, "mihai", task.Assignee().Username)
}

func TestTask_Issue(t *testing.T) {
	finder := new(mockIssueFinder)
	issue := &model.Issue{ID: "123", RepoFullName: "mihai/self", Provider: model.ProviderGithub}
	finder.On("GetByID", mock.Anything, "mihai/self", model.ProviderGithub, "123").Return(issue, nil).Twice()

	task := model.NewTask(testProject(), "123", model.RoleDev)

	first, err := task.Issue(context.Background(), finder)
	require.NoError(t, err)
	assert.Same(t, issue, first)

	// Looked up again, not cached.
	_, err = task.Issue(context.Background(), finder)
	require.NoError(t, err)

	finder.AssertExpectations(t)
}

func TestTask_IssueRemovedUpstream(t *testing.T) {
	finder := new(mockIssueFinder)
	finder.On("GetByID", mock.Anything, "mihai/self", model.ProviderGithub, "7").Return(nil, nil)

	task := model.NewTask(testProject(), "7", model.RoleDev)
	issue, err := task.Issue(context.Background(), finder)

	assert.NoError(t, err)
	assert.Nil(t, issue)
}

func TestIssue_Role(t *testing.T) {
	assert.Equal(t, model.RoleDev, model.Issue{ID: "1"}.Role())
	assert.Equal(t, model.RoleRev, model.Issue{ID: "2", PullRequest: true}.Role())
}

func TestParseRole(t *testing.T) {
	role, err := model.ParseRole(" qa ")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleQA, role)

	_, err = model.ParseRole("boss")
	assert.Error(t, err)
}
