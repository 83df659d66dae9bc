package repository_test

import (
	"context"
	"testing"
	"time"

	"contribhub/internal/model"
	"contribhub/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	projectColumns  = []string{"id", "repo_full_name", "provider", "manager_id", "created_at"}
	contractColumns = []string{"id", "project_id", "contributor_username", "role", "hourly_rate", "created_at"}
	taskColumns     = []string{"id", "issue_id", "project_id", "role", "contract_id", "assignment_date", "deadline", "created_at"}
)

func TestTaskRepository_SaveUnassigned(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)
	projectID := uuid.New()
	task := model.NewTask(model.Project{RepoFullName: "self/core", Provider: model.ProviderGithub}, "42", model.RoleDev)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE repo_full_name = .* AND provider = .*`).
		WillReturnRows(sqlmock.NewRows(projectColumns).AddRow(projectID.String(), "self/core", "github", uuid.New().String(), createdAt))
	mock.ExpectExec(`INSERT INTO "tasks".*ON CONFLICT`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.Save(context.Background(), task)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_SaveAssigned(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)
	projectID, contractID := uuid.New(), uuid.New()
	project := model.Project{RepoFullName: "self/core", Provider: model.ProviderGithub}
	contract := model.NewContract(project, model.Contributor{Username: "mihai", Provider: model.ProviderGithub}, model.RoleDev, 2500)
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	task, err := model.NewAssignedTask(contract, "42", at, at.Add(model.DefaultDeadline))
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows(projectColumns).AddRow(projectID.String(), "self/core", "github", uuid.New().String(), createdAt))
	mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE project_id = .* AND contributor_username = .* AND role = .*`).
		WillReturnRows(sqlmock.NewRows(contractColumns).AddRow(contractID.String(), projectID.String(), "mihai", "DEV", 2500, createdAt))
	mock.ExpectExec(`INSERT INTO "tasks".*ON CONFLICT`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err = repo.Save(context.Background(), task)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Insert(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)
	task := model.NewTask(model.Project{RepoFullName: "self/core", Provider: model.ProviderGithub}, "42", model.RoleDev)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows(projectColumns).AddRow(uuid.New().String(), "self/core", "github", uuid.New().String(), createdAt))
	mock.ExpectExec(`INSERT INTO "tasks".*ON CONFLICT \("issue_id","project_id"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.Insert(context.Background(), task)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_InsertExisting(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)
	task := model.NewTask(model.Project{RepoFullName: "self/core", Provider: model.ProviderGithub}, "42", model.RoleDev)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows(projectColumns).AddRow(uuid.New().String(), "self/core", "github", uuid.New().String(), createdAt))
	mock.ExpectExec(`INSERT INTO "tasks".*ON CONFLICT \("issue_id","project_id"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	// Act
	err := repo.Insert(context.Background(), task)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_SaveUnknownProject(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)
	task := model.NewTask(model.Project{RepoFullName: "ghost/repo", Provider: model.ProviderGithub}, "1", model.RoleDev)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows(projectColumns))
	mock.ExpectRollback()

	// Act
	err := repo.Save(context.Background(), task)

	// Assert
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_All(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	mock.MatchExpectationsInOrder(false)
	repo := repository.NewTaskRepository(gormDB)

	projectID, contractID := uuid.New(), uuid.New()
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	deadline := at.Add(model.DefaultDeadline)

	mock.ExpectQuery(`SELECT \* FROM "tasks" ORDER BY created_at`).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow(uuid.New().String(), "1", projectID.String(), "DEV", contractID.String(), at, deadline, createdAt).
			AddRow(uuid.New().String(), "2", projectID.String(), "REV", nil, nil, nil, createdAt))
	mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE "contracts"."id"`).
		WillReturnRows(sqlmock.NewRows(contractColumns).AddRow(contractID.String(), projectID.String(), "mihai", "DEV", 2500, createdAt))
	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE "projects"."id"`).
		WillReturnRows(sqlmock.NewRows(projectColumns).AddRow(projectID.String(), "self/core", "github", uuid.New().String(), createdAt))

	// Act
	tasks, err := repo.All(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "1", tasks[0].IssueID())
	assert.True(t, tasks[0].IsAssigned())
	assert.Equal(t, "mihai", tasks[0].Assignee().Username)
	assert.Equal(t, model.ProviderGithub, tasks[0].Assignee().Provider)
	assert.True(t, tasks[0].Deadline().Equal(deadline))
	assert.True(t, tasks[0].Project().Is("self/core", model.ProviderGithub))

	assert.Equal(t, "2", tasks[1].IssueID())
	assert.False(t, tasks[1].IsAssigned())
	assert.Equal(t, model.RoleRev, tasks[1].Role())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE issue_id = .* AND project_id IN \(SELECT "id" FROM "projects"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.Delete(context.Background(), "42", "self/core", model.ProviderGithub)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_DeleteNotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := repo.Delete(context.Background(), "404", "self/core", model.ProviderGithub)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
