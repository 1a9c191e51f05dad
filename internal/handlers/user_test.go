package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/repository"
	"github.com/yukikurage/project-dashboard/internal/schema"
	"github.com/yukikurage/project-dashboard/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userTestEnv struct {
	db          *gorm.DB
	handler     *UserHandler
	userService *services.UserService
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(schema.All()...))

	userService := services.NewUserService(repository.NewUserRepository(db))

	return userTestEnv{
		db:          db,
		handler:     NewUserHandler(userService),
		userService: userService,
	}
}

func userTestContext(method, url string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

func TestUserHandler_CreateUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	env := setupUserTestEnv(t)

	body, err := json.Marshal(map[string]string{
		"firstname": "Ada",
		"lastname":  "Lovelace",
		"email":     "ada@example.com",
	})
	require.NoError(t, err)

	c, w := userTestContext(http.MethodPost, "/api/users", body)
	env.handler.CreateUser(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	require.Equal(t, "Ada", resp.Firstname)
	require.Equal(t, []string{}, resp.OwnedOrganizations)

	var count int64
	require.NoError(t, env.db.Model(&schema.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	env := setupUserTestEnv(t)

	c, w := userTestContext(http.MethodGet, "/api/users/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	env.handler.GetUser(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_ListUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	env := setupUserTestEnv(t)

	for _, name := range []string{"Ada", "Grace"} {
		_, err := env.userService.CreateUser(services.CreateUserInput{
			Firstname: name,
			Lastname:  "Tester",
			Email:     name + "@example.com",
		})
		require.NoError(t, err)
	}

	c, w := userTestContext(http.MethodGet, "/api/users", nil)
	env.handler.ListUsers(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
}
