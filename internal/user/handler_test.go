package user_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"helpcenter-backend/internal/errors"
	"helpcenter-backend/internal/middleware"
	u "helpcenter-backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(user *u.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockService) Login(email, password string) (*u.User, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*u.User), args.Error(1)
}

func (m *MockService) GetUserByID(id uint64) (*u.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*u.User), args.Error(1)
}

func (m *MockService) DeactivateUser(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	return router
}

func TestRegister_Success(t *testing.T) {
	mockService := new(MockService)
	handler := u.NewHandler(mockService, []byte("test-secret"))
	router := setupRouter()

	mockService.On("Register", mock.MatchedBy(func(user *u.User) bool {
		return user.Name == "John Doe" &&
			user.Email == "john@example.com" &&
			user.Password == "password123"
	})).Return(nil).Run(func(args mock.Arguments) {
		user := args.Get(0).(*u.User)
		user.ID = 1
		user.Role = u.RolePlayer
		user.CreatedAt = time.Now()
	})

	router.POST("/register", handler.Register)

	payload := u.RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response u.SafeUser
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, uint64(1), response.ID)
	assert.Equal(t, "john@example.com", response.Email)
	assert.Equal(t, u.RolePlayer, response.Role)
	mockService.AssertExpectations(t)
}

func TestRegister_AlreadyRegistered(t *testing.T) {
	mockService := new(MockService)
	handler := u.NewHandler(mockService, []byte("test-secret"))
	router := setupRouter()

	mockService.On("Register", mock.Anything).
		Return(errors.UnprocessableEntity("u.User already registered", nil))

	router.POST("/register", handler.Register)

	payload := u.RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockService.AssertExpectations(t)
}

func TestRegister_InvalidInput(t *testing.T) {
	mockService := new(MockService)
	handler := u.NewHandler(mockService, []byte("test-secret"))
	router := setupRouter()

	router.POST("/register", handler.Register)

	// password below the minimum length
	payload := u.RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "short",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLogin_Success(t *testing.T) {
	mockService := new(MockService)
	handler := u.NewHandler(mockService, []byte("test-secret"))
	router := setupRouter()

	loggedIn := &u.User{
		ID:       1,
		Name:     "John Doe",
		Email:    "john@example.com",
		Role:     u.RoleAdmin,
		IsActive: true,
	}
	mockService.On("Login", "john@example.com", "password123").Return(loggedIn, nil)

	router.POST("/login", handler.Login)

	payload := u.LoginRequest{Email: "john@example.com", Password: "password123"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.NotEmpty(t, response["token"])
	assert.NotNil(t, response["user"])
	mockService.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockService := new(MockService)
	handler := u.NewHandler(mockService, []byte("test-secret"))
	router := setupRouter()

	mockService.On("Login", "john@example.com", "wrong").
		Return(nil, errors.Unauthorized("Wrong password", nil))

	router.POST("/login", handler.Login)

	payload := u.LoginRequest{Email: "john@example.com", Password: "wrong"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertExpectations(t)
}

func TestGetProfile_Success(t *testing.T) {
	mockService := new(MockService)
	handler := u.NewHandler(mockService, []byte("test-secret"))
	router := setupRouter()

	profile := &u.User{ID: 7, Name: "Jane", Email: "jane@example.com", Role: u.RoleModerator}
	mockService.On("GetUserByID", uint64(7)).Return(profile, nil)

	router.GET("/profile", func(c *gin.Context) {
		c.Set("user_id", uint64(7))
		handler.GetProfile(c)
	})

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response u.SafeUser
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, uint64(7), response.ID)
	assert.Equal(t, u.RoleModerator, response.Role)
	mockService.AssertExpectations(t)
}

func TestGetProfile_NotFound(t *testing.T) {
	mockService := new(MockService)
	handler := u.NewHandler(mockService, []byte("test-secret"))
	router := setupRouter()

	mockService.On("GetUserByID", uint64(404)).
		Return(nil, errors.NotFound("u.User not found", nil))

	router.GET("/profile", func(c *gin.Context) {
		c.Set("user_id", uint64(404))
		handler.GetProfile(c)
	})

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestIsStaffRole(t *testing.T) {
	assert.True(t, u.IsStaffRole(u.RoleHeadAdmin))
	assert.True(t, u.IsStaffRole(u.RoleAdmin))
	assert.True(t, u.IsStaffRole(u.RoleModerator))
	assert.False(t, u.IsStaffRole(u.RolePremium))
	assert.False(t, u.IsStaffRole(u.RolePlayer))
	assert.False(t, u.IsStaffRole(""))
}
