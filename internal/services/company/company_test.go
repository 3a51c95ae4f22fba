package company_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/services/company"
	"github.com/billennium/platform-api/internal/storage"
)

// Мок для CompanyRepository
type CompanyRepoMock struct {
	mock.Mock
}

func (m *CompanyRepoMock) CreateCompany(ctx context.Context, c models.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CompanyRepoMock) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *CompanyRepoMock) ListCompaniesByOwner(ctx context.Context, ownerID string, limit int) ([]*models.Company, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Company), args.Error(1)
}

func (m *CompanyRepoMock) ListCompanies(ctx context.Context, limit int) ([]*models.Company, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Company), args.Error(1)
}

func (m *CompanyRepoMock) UpdateCompany(ctx context.Context, id string, upd models.CompanyUpdateRequest) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func TestCompanyService_Create(t *testing.T) {
	owner := &models.User{ID: "uid-1", Email: "user@example.com"}
	ruc := "1790012345001"

	tests := []struct {
		name       string
		req        models.CompanyCreateRequest
		setupMocks func(r *CompanyRepoMock)
		wantErr    error
	}{
		{
			name: "successful creation",
			req: models.CompanyCreateRequest{
				Name:  "Acme SRL",
				RUC:   &ruc,
				Email: "contact@acme.ec",
			},
			setupMocks: func(r *CompanyRepoMock) {
				r.On("CreateCompany", mock.Anything, mock.MatchedBy(func(c models.Company) bool {
					return c.ID != "" &&
						c.Name == "Acme SRL" &&
						c.OwnerID == "uid-1" &&
						c.IsActive &&
						c.EnabledProducts != nil && len(c.EnabledProducts) == 0
				})).Return(nil).Once()
			},
		},
		{
			name: "repository error",
			req: models.CompanyCreateRequest{
				Name:  "Acme SRL",
				Email: "contact@acme.ec",
			},
			setupMocks: func(r *CompanyRepoMock) {
				r.On("CreateCompany", mock.Anything, mock.Anything).
					Return(errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(CompanyRepoMock)
			tt.setupMocks(repo)
			svc := company.New(repo)

			got, err := svc.Create(context.Background(), owner, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestCompanyService_AdminUpdate(t *testing.T) {
	stored := &models.Company{
		ID:      "comp-1",
		Name:    "Acme SRL",
		OwnerID: "uid-1",
	}

	t.Run("partial update passes through", func(t *testing.T) {
		newName := "Acme Corp"
		upd := models.CompanyUpdateRequest{
			Name:            &newName,
			EnabledProducts: []string{"restoflow"},
		}

		repo := new(CompanyRepoMock)
		repo.On("GetCompany", mock.Anything, "comp-1").Return(stored, nil).Once()
		repo.On("UpdateCompany", mock.Anything, "comp-1", upd).Return(nil).Once()

		svc := company.New(repo)
		err := svc.AdminUpdate(context.Background(), "comp-1", upd)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown company", func(t *testing.T) {
		repo := new(CompanyRepoMock)
		repo.On("GetCompany", mock.Anything, "missing").
			Return(nil, storage.ErrNotFound).Once()

		svc := company.New(repo)
		err := svc.AdminUpdate(context.Background(), "missing", models.CompanyUpdateRequest{})

		assert.ErrorIs(t, err, storage.ErrNotFound)
		repo.AssertExpectations(t)
	})
}

func TestCompanyService_Lists(t *testing.T) {
	companies := []*models.Company{
		{ID: "comp-1", OwnerID: "uid-1"},
		{ID: "comp-2", OwnerID: "uid-1"},
	}

	t.Run("list mine", func(t *testing.T) {
		repo := new(CompanyRepoMock)
		repo.On("ListCompaniesByOwner", mock.Anything, "uid-1", storage.UserListLimit).Return(companies, nil).Once()

		svc := company.New(repo)
		got, err := svc.ListMine(context.Background(), "uid-1")

		require.NoError(t, err)
		assert.Equal(t, companies, got)
		repo.AssertExpectations(t)
	})

	t.Run("list all", func(t *testing.T) {
		repo := new(CompanyRepoMock)
		repo.On("ListCompanies", mock.Anything, storage.AdminListLimit).Return(companies, nil).Once()

		svc := company.New(repo)
		got, err := svc.ListAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, companies, got)
		repo.AssertExpectations(t)
	})
}
