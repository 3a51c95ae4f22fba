package contact_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/services/contact"
	"github.com/billennium/platform-api/internal/storage"
)

// Мок для MessageRepository
type MessageRepoMock struct {
	mock.Mock
}

func (m *MessageRepoMock) CreateContactMessage(ctx context.Context, msg models.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessageRepoMock) ListContactMessages(ctx context.Context, limit int) ([]*models.ContactMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ContactMessage), args.Error(1)
}

func (m *MessageRepoMock) MarkContactMessageRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestContactService_Create(t *testing.T) {
	phone := "+593991234567"

	tests := []struct {
		name       string
		req        models.ContactMessageCreateRequest
		setupMocks func(r *MessageRepoMock)
		wantErr    error
	}{
		{
			name: "successful creation",
			req: models.ContactMessageCreateRequest{
				Name:    "Maria",
				Email:   "maria@example.com",
				Phone:   &phone,
				Message: "Quiero informacion sobre RestoFlow",
			},
			setupMocks: func(r *MessageRepoMock) {
				r.On("CreateContactMessage", mock.Anything, mock.MatchedBy(func(msg models.ContactMessage) bool {
					return msg.ID != "" &&
						msg.Name == "Maria" &&
						msg.Email == "maria@example.com" &&
						msg.Phone != nil && *msg.Phone == phone &&
						!msg.IsRead &&
						!msg.CreatedAt.IsZero()
				})).Return(nil).Once()
			},
		},
		{
			name: "repository error",
			req: models.ContactMessageCreateRequest{
				Name:    "Maria",
				Email:   "maria@example.com",
				Message: "Hola",
			},
			setupMocks: func(r *MessageRepoMock) {
				r.On("CreateContactMessage", mock.Anything, mock.Anything).
					Return(errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MessageRepoMock)
			tt.setupMocks(repo)
			svc := contact.New(repo)

			msg, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, msg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, msg)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestContactService_MarkRead(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MessageRepoMock)
		repo.On("MarkContactMessageRead", mock.Anything, "msg-1").Return(nil).Once()

		svc := contact.New(repo)
		err := svc.MarkRead(context.Background(), "msg-1")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown message", func(t *testing.T) {
		repo := new(MessageRepoMock)
		repo.On("MarkContactMessageRead", mock.Anything, "missing").
			Return(storage.ErrNotFound).Once()

		svc := contact.New(repo)
		err := svc.MarkRead(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		repo.AssertExpectations(t)
	})
}

func TestContactService_ListAll(t *testing.T) {
	msgs := []*models.ContactMessage{
		{ID: "msg-2", Name: "Later"},
		{ID: "msg-1", Name: "Earlier"},
	}

	repo := new(MessageRepoMock)
	repo.On("ListContactMessages", mock.Anything, storage.AdminListLimit).Return(msgs, nil).Once()

	svc := contact.New(repo)
	got, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, msgs, got)
	repo.AssertExpectations(t)
}
