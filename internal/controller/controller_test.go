package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"elibrary-be/internal/constant"
	"elibrary-be/internal/dto"
	"elibrary-be/internal/entity"
	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/pkg/message"
	"elibrary-be/internal/pkg/serverutils"
	"elibrary-be/internal/repository/unitofwork"
	"elibrary-be/internal/service"
	"elibrary-be/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "controller-secret"

type envelope struct {
	Success bool                `json:"success"`
	Code    string              `json:"result_code"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

type fixture struct {
	app      *fiber.App
	db       *gorm.DB
	author   *entity.Author
	category *entity.Category
	roles    map[string]*entity.Role
	feature  *entity.Feature
	levels   []*entity.Permission
}

// newFixture serves the catalog and role-permission routes over an in-memory
// store. Librarians may modify books, readers may not touch them and the
// administrator has no rules at all.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.OpenDB(t)
	log := logger.NewNopLogger()
	deps := service.Dependencies{
		UowFactory: unitofwork.NewRepositoryFactory(db, log),
		Messages:   message.StaticProvider{},
		Logger:     log,
		Paging:     service.PagingOptions{DefaultPageSize: 10, MaxPageSize: 50},
	}

	f := &fixture{db: db, roles: map[string]*entity.Role{}}
	f.levels = []*entity.Permission{
		{EnglishName: constant.PermissionAccessDenied, PermissionLevel: 0},
		{EnglishName: constant.PermissionView, PermissionLevel: 1},
		{EnglishName: constant.PermissionModify, PermissionLevel: 2},
		{EnglishName: constant.PermissionCreate, PermissionLevel: 3},
		{EnglishName: constant.PermissionFullAccess, PermissionLevel: 4},
	}
	require.NoError(t, db.Create(f.levels).Error)
	f.feature = &entity.Feature{EnglishName: constant.FeatureBookManagement}
	require.NoError(t, db.Create(f.feature).Error)
	for _, name := range []string{constant.RoleAdministration, constant.RoleLibrarian, constant.RoleReader} {
		role := &entity.Role{EnglishName: name}
		require.NoError(t, db.Create(role).Error)
		f.roles[name] = role
	}
	require.NoError(t, db.Create([]*entity.RolePermission{
		{RoleId: f.roles[constant.RoleLibrarian].Id, FeatureId: f.feature.Id, PermissionId: f.levels[2].Id},
		{RoleId: f.roles[constant.RoleReader].Id, FeatureId: f.feature.Id, PermissionId: f.levels[0].Id},
	}).Error)

	f.author = &entity.Author{FullName: "Ursula K. Le Guin"}
	require.NoError(t, db.Create(f.author).Error)
	f.category = &entity.Category{Code: "FAN", EnglishName: "Fantasy"}
	require.NoError(t, db.Create(f.category).Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&entity.Book{
			Title:        "Earthsea",
			AuthorId:     f.author.Id,
			CategoryCode: f.category.Code,
			CanBorrow:    i == 0,
		}).Error)
	}

	gate := service.NewAuthorizationService(deps.UowFactory, deps.Messages, log)
	guard := NewGuard(serverutils.NewJwtMiddleware(testSecret), gate, deps.Messages)

	f.app = fiber.New(fiber.Config{ErrorHandler: serverutils.NewErrorHandler(log)})
	f.app.Use(serverutils.LanguageMiddleware(message.English))
	for _, c := range []IController{
		NewBookController(service.NewBookService(deps), guard),
		NewAuthorController(service.NewAuthorService(deps), guard),
		NewRolePermissionController(service.NewRolePermissionService(deps), guard),
	} {
		c.RegisterRoutes(f.app)
	}
	return f
}

func (f *fixture) do(t *testing.T, role, method, target string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if role != "" {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			constant.LocalsUserId: "user-1",
			constant.LocalsRole:   role,
			"exp":                 time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
	}

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestBookRoutes_RequireToken(t *testing.T) {
	f := newFixture(t)
	status, _ := f.do(t, "", http.MethodGet, "/book/v1", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestBookRoutes_ListWithFilters(t *testing.T) {
	f := newFixture(t)

	status, env := f.do(t, constant.RoleLibrarian, http.MethodGet, "/book/v1?page_size=2", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, string(dto.CodeSuccess), env.Code)

	var page dto.PaginatedResult[dto.BookDto]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(3), page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Sources, 2)

	status, env = f.do(t, constant.RoleLibrarian, http.MethodGet, "/book/v1/count?borrowable=true", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, "1", string(env.Data))

	status, _ = f.do(t, constant.RoleLibrarian, http.MethodGet, "/book/v1?author_id=nope", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestBookRoutes_PermissionLevels(t *testing.T) {
	f := newFixture(t)
	book := dto.BookDto{Title: "Tehanu", AuthorId: f.author.Id, CategoryCode: f.category.Code}

	status, env := f.do(t, constant.RoleLibrarian, http.MethodPost, "/book/v1", book)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, string(dto.CodeForbidden), env.Code)

	status, _ = f.do(t, constant.RoleReader, http.MethodGet, "/book/v1", nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	// no rule for the administrator: allowed
	status, env = f.do(t, constant.RoleAdministration, http.MethodPost, "/book/v1", book)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, string(dto.CodeCreateSuccess), env.Code)
}

func TestBookRoutes_ShowAndUpdate(t *testing.T) {
	f := newFixture(t)

	status, env := f.do(t, constant.RoleLibrarian, http.MethodGet, "/book/v1/999", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, string(dto.CodeNoData), env.Code)

	status, _ = f.do(t, constant.RoleLibrarian, http.MethodGet, "/book/v1/abc", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	update := dto.BookDto{Title: "Tombs of Atuan", AuthorId: f.author.Id, CategoryCode: f.category.Code}
	status, env = f.do(t, constant.RoleLibrarian, http.MethodPut, "/book/v1/1", update)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, string(dto.CodeUpdateSuccess), env.Code)

	status, env = f.do(t, constant.RoleLibrarian, http.MethodPut, "/book/v1/999", update)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, string(dto.CodeNotFound), env.Code)

	status, env = f.do(t, constant.RoleLibrarian, http.MethodPut, "/book/v1/1", dto.BookDto{})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.NotEmpty(t, env.Errors)
}

func TestRolePermissionRoutes(t *testing.T) {
	f := newFixture(t)
	librarian := f.roles[constant.RoleLibrarian]
	target := "/role-permission/v1/role/" + strconv.Itoa(librarian.Id) + "/feature/" + strconv.Itoa(f.feature.Id)

	status, env := f.do(t, constant.RoleAdministration, http.MethodPut, target,
		dto.UpdateRolePermissionRequest{PermissionId: f.levels[4].Id})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, string(dto.CodeUpdateSuccess), env.Code)

	// the librarian now has full access to books
	status, _ = f.do(t, constant.RoleLibrarian, http.MethodDelete, "/book/v1/3", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, env = f.do(t, constant.RoleAdministration, http.MethodGet, "/role-permission/v1/role/"+strconv.Itoa(librarian.Id), nil)
	require.Equal(t, fiber.StatusOK, status)
	var page dto.PaginatedResult[dto.RolePermissionDto]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Sources, 1)
	assert.Equal(t, f.levels[4].Id, page.Sources[0].PermissionId)
}
