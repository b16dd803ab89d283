package testserver

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avaleri/burnboard/internal/apiclient"
	"github.com/avaleri/burnboard/internal/domain/activity"
	"github.com/avaleri/burnboard/internal/domain/project"
	"github.com/avaleri/burnboard/internal/domain/user"
	"github.com/avaleri/burnboard/internal/sqlite"
	"github.com/avaleri/burnboard/internal/transport"
	"github.com/stretchr/testify/require"
)

// TestServer runs the full REST stack over an in-memory database, with an API
// client pointed at it.
type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	Client *apiclient.Client

	Projects   *project.Service
	Activities *activity.Service
	Users      *user.Service
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	projectRepo := sqlite.NewProjectRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	projectSvc := project.NewService(projectRepo, nil)
	activitySvc := activity.NewService(activityRepo, nil)
	userSvc := user.NewService(userRepo, nil)

	router := transport.NewServer(transport.Services{
		Projects:   projectSvc,
		Activities: activitySvc,
		Users:      userSvc,
	}, nil, nil)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:     server,
		DB:         db,
		Client:     apiclient.New(server.URL),
		Projects:   projectSvc,
		Activities: activitySvc,
		Users:      userSvc,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}
