package user

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"context"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	byID    map[string]*entities.User
	byEmail map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    make(map[string]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.byID[user.ID.String()] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.byID[user.ID.String()] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) GetNotifiableUsers(_ context.Context) ([]*entities.User, error) {
	var users []*entities.User
	for _, user := range f.byID {
		if user.NotifyByEmail || user.NotifyBySMS {
			users = append(users, user)
		}
	}
	return users, nil
}

type fakeJWTService struct {
	emails map[string]string
}

func newFakeJWTService() *fakeJWTService {
	return &fakeJWTService{emails: make(map[string]string)}
}

func (f *fakeJWTService) GenerateTokenUser(userID string, role string) string {
	return "user-token:" + userID + ":" + role
}

func (f *fakeJWTService) ValidateTokenUser(_ string) (*jwtlib.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (f *fakeJWTService) GetUserIDByToken(_ string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

func (f *fakeJWTService) GenerateTokenVerifyEmail(email string, _ time.Duration) (string, error) {
	token := "verify-token:" + email
	f.emails[token] = email
	return token, nil
}

func (f *fakeJWTService) ValidateTokenVerifyEmail(token string) (string, error) {
	email, ok := f.emails[token]
	if !ok {
		return "", domain.ErrTokenInvalid
	}
	return email, nil
}

func registeredUser(t *testing.T, repo *fakeUserRepository, email, password string) *entities.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entities.User{
		ID:       uuid.New(),
		Name:     "Dina",
		Email:    email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, newFakeJWTService())

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Dina",
		Email:    "dina@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "dina@example.com", res.Email)

	stored := repo.byEmail["dina@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse", stored.Password, "password must be hashed")
	assert.True(t, stored.NotifyByEmail)
	assert.Equal(t, 3, stored.ExpiryLeadDays)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Other",
		Email:    "dina@example.com",
		Password: "another-pass",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, newFakeJWTService())
	user := registeredUser(t, repo, "dina@example.com", "correct-horse")

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "dina@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Token, user.ID.String())
	assert.Equal(t, domain.RoleUser, res.Role)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "dina@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMe(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, newFakeJWTService())
	user := registeredUser(t, repo, "dina@example.com", "correct-horse")

	res, err := service.Me(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, user.Email, res.Email)

	_, err = service.Me(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUserPreferences(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, newFakeJWTService())
	user := registeredUser(t, repo, "dina@example.com", "correct-horse")

	notifySMS := true
	leadDays := 7
	err := service.UpdateUser(context.Background(), user.ID.String(), domain.UpdateUserRequest{
		Phone:          "+628123456789",
		NotifyBySMS:    &notifySMS,
		ExpiryLeadDays: &leadDays,
	})
	require.NoError(t, err)

	updated := repo.byID[user.ID.String()]
	assert.Equal(t, "+628123456789", updated.Phone)
	assert.True(t, updated.NotifyBySMS)
	assert.Equal(t, 7, updated.ExpiryLeadDays)
	assert.Equal(t, "Dina", updated.Name, "unset fields stay untouched")
}

func TestVerifyEmail(t *testing.T) {
	repo := newFakeUserRepository()
	jwtService := newFakeJWTService()
	service := NewUserService(repo, jwtService)
	user := registeredUser(t, repo, "dina@example.com", "correct-horse")

	token, err := jwtService.GenerateTokenVerifyEmail(user.Email, time.Hour)
	require.NoError(t, err)

	require.NoError(t, service.VerifyEmail(context.Background(), token))
	assert.True(t, repo.byEmail[user.Email].IsVerified)

	err = service.VerifyEmail(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrAccountAlreadyVerified)

	err = service.VerifyEmail(context.Background(), "bogus")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestSendVerificationEmailGuards(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, newFakeJWTService())

	err := service.SendVerificationEmail(context.Background(), domain.SendVerifyEmailRequest{
		Email: "nobody@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	user := registeredUser(t, repo, "dina@example.com", "correct-horse")
	user.IsVerified = true
	err = service.SendVerificationEmail(context.Background(), domain.SendVerifyEmailRequest{
		Email: user.Email,
	})
	assert.ErrorIs(t, err, domain.ErrAccountAlreadyVerified)
}
