package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *roomMocks.MockRoom) {
	ctrl := gomock.NewController(t)

	repo := bookingMocks.NewMockBooking(ctrl)
	roomRepo := roomMocks.NewMockRoom(ctrl)

	return service.New(repo, roomRepo, &config.Config{}, mocks.NewOtel()), repo, roomRepo
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
}

var deluxe = roomModel.Room{ID: "deluxe", Type: "Deluxe", Price: 1000, Capacity: 2, Available: true}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.CreateBookingRequest
		setupMock     func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom)
		wantErr       error
		wantCode      int
		wantPrice     int64
		wantStatus    string
		wantPayStatus string
	}{
		{
			name: "two nights at the nightly rate",
			req:  dto.CreateBookingRequest{RoomID: "deluxe", CheckIn: "2024-01-01", CheckOut: "2024-01-03", Guests: 2},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
					assert.Equal(t, int64(2000), b.TotalPrice)
					assert.Equal(t, "user-1", b.UserID)

					return nil
				})
			},
			wantPrice:     2000,
			wantStatus:    constant.StatusPending,
			wantPayStatus: constant.PaymentStatusPending,
		},
		{
			name: "timestamps are booked by calendar date",
			req:  dto.CreateBookingRequest{RoomID: "deluxe", CheckIn: "2024-01-01T14:00:00Z", CheckOut: "2024-01-02T11:00:00Z", Guests: 1},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
					assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), b.CheckIn)
					assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), b.CheckOut)
					assert.Empty(t, b.PaymentID)

					return nil
				})
			},
			wantPrice:     1000,
			wantStatus:    constant.StatusPending,
			wantPayStatus: constant.PaymentStatusPending,
		},
		{
			name: "same-day stay is an invalid range",
			req:  dto.CreateBookingRequest{RoomID: "deluxe", CheckIn: "2026-03-03T08:00:00Z", CheckOut: "2026-03-03T20:00:00Z", Guests: 1},
			setupMock: func(_ *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
			},
			wantErr: failure.ErrInvalidRange,
		},
		{
			name: "check-out not after check-in",
			req:  dto.CreateBookingRequest{RoomID: "deluxe", CheckIn: "2024-01-03", CheckOut: "2024-01-03", Guests: 1},
			setupMock: func(_ *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
			},
			wantErr: failure.ErrInvalidRange,
		},
		{
			name: "room unavailable",
			req:  dto.CreateBookingRequest{RoomID: "deluxe", CheckIn: "2024-01-01", CheckOut: "2024-01-03", Guests: 1},
			setupMock: func(_ *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				closed := deluxe
				closed.Available = false
				roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(closed, nil)
			},
			wantCode: 400,
		},
		{
			name: "too many guests",
			req:  dto.CreateBookingRequest{RoomID: "deluxe", CheckIn: "2024-01-01", CheckOut: "2024-01-03", Guests: 5},
			setupMock: func(_ *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
			},
			wantCode: 400,
		},
		{
			name:      "malformed date",
			req:       dto.CreateBookingRequest{RoomID: "deluxe", CheckIn: "tomorrow", CheckOut: "2024-01-03", Guests: 1},
			setupMock: func(_ *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {},
			wantCode:  400,
		},
		{
			name: "insert failure",
			req:  dto.CreateBookingRequest{RoomID: "deluxe", CheckIn: "2024-01-01", CheckOut: "2024-01-03", Guests: 1},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, roomRepo := newService(t)
			tt.setupMock(repo, roomRepo)

			res, err := svc.Create(userContext(), tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantCode != 0:
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantPrice, res.TotalPrice)
				assert.Equal(t, tt.wantStatus, res.Status)
				assert.Equal(t, tt.wantPayStatus, res.PaymentStatus)
			}
		})
	}
}

func TestBookingService_CreateAnonymous(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{RoomID: "deluxe"})
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestBookingService_UpdateStatus(t *testing.T) {
	t.Run("updates status", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, constant.StatusConfirmed, req[model.FieldStatus])
			assert.Equal(t, "admin-1", req[constant.FieldModifiedBy])

			return nil
		})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
		assert.NoError(t, svc.UpdateStatus(ctx, dto.UpdateStatusRequest{Status: constant.StatusConfirmed}, "rb-1"))
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: constant.StatusCancelled}, "rb-1")
		assert.ErrorIs(t, err, failure.ErrNotFound)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{{ID: "rb-1", RoomID: "deluxe", TotalPrice: 2000}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, int64(2000), res.Bookings[0].TotalPrice)
}
