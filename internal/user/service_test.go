package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/esteveseverson/fastapi-playtime/internal/auth"
	"github.com/esteveseverson/fastapi-playtime/internal/user"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockRepository) UpdateRole(ctx context.Context, id string, role user.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

// Low bcrypt cost keeps the suite fast.
var testHasher = auth.NewBcryptPasswordHasherWithCost(4)

func TestRegister(t *testing.T) {
	repo := new(MockRepository)
	svc := user.NewService(repo, testHasher)

	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, user.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*user.User).ID = uuid.New().String()
		}).
		Return(nil)

	u, err := svc.Register(context.Background(), "Ana", "  Ana@Example.com ", "secret123")
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "ana@example.com", u.Email)
	// Self-registration never grants admin.
	assert.Equal(t, user.RoleMember, u.Role)
	assert.NoError(t, testHasher.Compare(u.PasswordHash, "secret123"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := user.NewService(repo, testHasher)

	existing := &user.User{ID: uuid.New().String(), Email: "ana@example.com"}
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(existing, nil)

	_, err := svc.Register(context.Background(), "Ana", "ana@example.com", "secret123")

	assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	hash, err := testHasher.Hash("secret123")
	require.NoError(t, err)

	stored := &user.User{
		ID:           uuid.New().String(),
		Email:        "ana@example.com",
		PasswordHash: hash,
		Role:         user.RoleMember,
	}

	tests := []struct {
		name     string
		email    string
		password string
		found    bool
		wantErr  error
	}{
		{"valid credentials", "ana@example.com", "secret123", true, nil},
		{"email is normalized", " Ana@Example.COM ", "secret123", true, nil},
		{"wrong password", "ana@example.com", "nope", true, user.ErrInvalidCredentials},
		{"unknown email", "bob@example.com", "secret123", false, user.ErrInvalidCredentials},
		{"empty password", "ana@example.com", "", true, user.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := user.NewService(repo, testHasher)

			if tt.found {
				repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(stored, nil)
			} else {
				repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, user.ErrNotFound)
			}

			u, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID, u.ID)
		})
	}
}

func TestChangeRole(t *testing.T) {
	id := uuid.New().String()

	t.Run("promote to admin", func(t *testing.T) {
		repo := new(MockRepository)
		svc := user.NewService(repo, testHasher)

		repo.On("UpdateRole", mock.Anything, id, user.RoleAdmin).Return(nil)
		repo.On("GetByID", mock.Anything, id).
			Return(&user.User{ID: id, Role: user.RoleAdmin}, nil)

		u, err := svc.ChangeRole(context.Background(), id, user.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, u.Role)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := user.NewService(repo, testHasher)

		_, err := svc.ChangeRole(context.Background(), id, user.Role("owner"))

		assert.ErrorIs(t, err, user.ErrInvalidRole)
		repo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := new(MockRepository)
		svc := user.NewService(repo, testHasher)

		repo.On("UpdateRole", mock.Anything, id, user.RoleAdmin).Return(user.ErrNotFound)

		_, err := svc.ChangeRole(context.Background(), id, user.RoleAdmin)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}
