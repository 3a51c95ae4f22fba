package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/services/admin"
	"github.com/billennium/platform-api/internal/storage"
)

// Мок для AdminRepository
type AdminRepoMock struct {
	mock.Mock
}

func (m *AdminRepoMock) ListUsers(ctx context.Context, limit int) ([]*models.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *AdminRepoMock) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *AdminRepoMock) SetUserActive(ctx context.Context, id string, isActive bool) error {
	args := m.Called(ctx, id, isActive)
	return args.Error(0)
}

func (m *AdminRepoMock) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CountSubscriptions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CountEnabledSubscriptions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CountSubscriptionsByStatus(ctx context.Context, status string) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CountContactMessages(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CountUnreadContactMessages(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *AdminRepoMock) CountCompanies(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestAdminService_ToggleActive(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *AdminRepoMock)
		wantState  bool
		wantErr    error
	}{
		{
			name: "deactivate active user",
			setupMocks: func(r *AdminRepoMock) {
				r.On("GetUserByID", mock.Anything, "uid-1").
					Return(&models.User{ID: "uid-1", IsActive: true}, nil).Once()
				r.On("SetUserActive", mock.Anything, "uid-1", false).Return(nil).Once()
			},
			wantState: false,
		},
		{
			name: "reactivate blocked user",
			setupMocks: func(r *AdminRepoMock) {
				r.On("GetUserByID", mock.Anything, "uid-1").
					Return(&models.User{ID: "uid-1", IsActive: false}, nil).Once()
				r.On("SetUserActive", mock.Anything, "uid-1", true).Return(nil).Once()
			},
			wantState: true,
		},
		{
			name: "unknown user",
			setupMocks: func(r *AdminRepoMock) {
				r.On("GetUserByID", mock.Anything, "uid-1").
					Return(nil, storage.ErrNotFound).Once()
			},
			wantErr: storage.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(AdminRepoMock)
			tt.setupMocks(repo)
			svc := admin.New(repo)

			state, err := svc.ToggleActive(context.Background(), "uid-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantState, state)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestAdminService_Stats(t *testing.T) {
	t.Run("collects all counters", func(t *testing.T) {
		repo := new(AdminRepoMock)
		repo.On("CountUsers", mock.Anything).Return(10, nil).Once()
		repo.On("CountSubscriptions", mock.Anything).Return(7, nil).Once()
		repo.On("CountEnabledSubscriptions", mock.Anything).Return(4, nil).Once()
		repo.On("CountSubscriptionsByStatus", mock.Anything, models.SubscriptionStatusPending).
			Return(2, nil).Once()
		repo.On("CountContactMessages", mock.Anything).Return(5, nil).Once()
		repo.On("CountUnreadContactMessages", mock.Anything).Return(3, nil).Once()
		repo.On("CountCompanies", mock.Anything).Return(6, nil).Once()

		svc := admin.New(repo)
		stats, err := svc.Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, &models.AdminStats{
			TotalUsers:           10,
			TotalSubscriptions:   7,
			ActiveSubscriptions:  4,
			PendingSubscriptions: 2,
			TotalMessages:        5,
			UnreadMessages:       3,
			TotalCompanies:       6,
		}, stats)
		repo.AssertExpectations(t)
	})

	t.Run("counter error aborts", func(t *testing.T) {
		repo := new(AdminRepoMock)
		repo.On("CountUsers", mock.Anything).Return(0, errors.New("db error")).Once()

		svc := admin.New(repo)
		stats, err := svc.Stats(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db error")
		assert.Nil(t, stats)
		repo.AssertExpectations(t)
	})
}

func TestAdminService_ListUsers(t *testing.T) {
	users := []*models.User{
		{ID: "uid-1", Email: "first@example.com"},
		{ID: "uid-2", Email: "second@example.com"},
	}

	repo := new(AdminRepoMock)
	repo.On("ListUsers", mock.Anything, storage.AdminListLimit).Return(users, nil).Once()

	svc := admin.New(repo)
	got, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, users, got)
	repo.AssertExpectations(t)
}
