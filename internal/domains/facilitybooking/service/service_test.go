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
	facilityMocks "hotel/internal/domains/facility/mocks"
	facilityModel "hotel/internal/domains/facility/model"
	bookingMocks "hotel/internal/domains/facilitybooking/mocks"
	"hotel/internal/domains/facilitybooking/model"
	"hotel/internal/domains/facilitybooking/model/dto"
	"hotel/internal/domains/facilitybooking/repository"
	"hotel/internal/domains/facilitybooking/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func newService(t *testing.T) (service.FacilityBooking, *bookingMocks.MockFacilityBooking, *facilityMocks.MockFacility) {
	ctrl := gomock.NewController(t)

	repo := bookingMocks.NewMockFacilityBooking(ctrl)
	facilityRepo := facilityMocks.NewMockFacility(ctrl)

	return service.New(repo, facilityRepo, &config.Config{}, mocks.NewOtel()), repo, facilityRepo
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
}

// 2026-03-03 is a Tuesday.
var spa = facilityModel.Facility{
	ID:            "spa",
	Name:          "Spa",
	Price:         1500,
	TimeSlots:     []string{"10:00-11:00", "11:00-12:00"},
	AvailableDays: []string{"Tuesday"},
}

func TestFacilityBookingService_Book(t *testing.T) {
	tests := []struct {
		name       string
		ctx        context.Context
		req        dto.BookFacilityRequest
		setupMock  func(repo *bookingMocks.MockFacilityBooking, facilityRepo *facilityMocks.MockFacility)
		wantErr    error
		wantCode   int
		wantStatus string
	}{
		{
			name: "pending booking without payment",
			ctx:  userContext(),
			req:  dto.BookFacilityRequest{FacilityID: "spa", Date: "2026-03-03", TimeSlot: "10:00-11:00"},
			setupMock: func(repo *bookingMocks.MockFacilityBooking, facilityRepo *facilityMocks.MockFacility) {
				facilityRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(spa, nil)
				repo.EXPECT().InsertActive(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.FacilityBooking) error {
					assert.Equal(t, int64(1500), b.TotalPrice)
					assert.Equal(t, "user-1", b.UserID)
					assert.Equal(t, time.Tuesday, b.Date.Weekday())

					return nil
				})
			},
			wantStatus: constant.StatusPending,
		},
		{
			name:     "anonymous caller",
			ctx:      context.Background(),
			req:      dto.BookFacilityRequest{FacilityID: "spa", Date: "2026-03-03", TimeSlot: "10:00-11:00"},
			wantCode: 401,
		},
		{
			name: "unknown facility",
			ctx:  userContext(),
			req:  dto.BookFacilityRequest{FacilityID: "pool", Date: "2026-03-03", TimeSlot: "10:00-11:00"},
			setupMock: func(_ *bookingMocks.MockFacilityBooking, facilityRepo *facilityMocks.MockFacility) {
				facilityRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(facilityModel.Facility{}, nil)
			},
			wantErr: failure.ErrNotFound,
		},
		{
			name: "slot not offered",
			ctx:  userContext(),
			req:  dto.BookFacilityRequest{FacilityID: "spa", Date: "2026-03-03", TimeSlot: "18:00-19:00"},
			setupMock: func(_ *bookingMocks.MockFacilityBooking, facilityRepo *facilityMocks.MockFacility) {
				facilityRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(spa, nil)
			},
			wantCode: 400,
		},
		{
			name: "closed weekday",
			ctx:  userContext(),
			req:  dto.BookFacilityRequest{FacilityID: "spa", Date: "2026-03-02", TimeSlot: "10:00-11:00"},
			setupMock: func(_ *bookingMocks.MockFacilityBooking, facilityRepo *facilityMocks.MockFacility) {
				facilityRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(spa, nil)
			},
			wantCode: 400,
		},
		{
			name: "slot already held",
			ctx:  userContext(),
			req:  dto.BookFacilityRequest{FacilityID: "spa", Date: "2026-03-03", TimeSlot: "10:00-11:00"},
			setupMock: func(repo *bookingMocks.MockFacilityBooking, facilityRepo *facilityMocks.MockFacility) {
				facilityRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(spa, nil)
				repo.EXPECT().InsertActive(gomock.Any(), gomock.Any()).Return(repository.ErrSlotTaken)
			},
			wantErr: failure.ErrSlotConflict,
		},
		{
			name: "storage failure",
			ctx:  userContext(),
			req:  dto.BookFacilityRequest{FacilityID: "spa", Date: "2026-03-03", TimeSlot: "10:00-11:00"},
			setupMock: func(repo *bookingMocks.MockFacilityBooking, facilityRepo *facilityMocks.MockFacility) {
				facilityRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(spa, nil)
				repo.EXPECT().InsertActive(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, facilityRepo := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo, facilityRepo)
			}

			res, err := svc.Book(tt.ctx, tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantCode != 0:
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
				assert.Equal(t, tt.req.Date, res.Date)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestFacilityBookingService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		setupMock func(repo *bookingMocks.MockFacilityBooking)
		wantErr   error
	}{
		{
			name:   "cancel",
			status: constant.StatusCancelled,
			setupMock: func(repo *bookingMocks.MockFacilityBooking) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.FacilityBooking{ID: "fb-1"}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, constant.StatusCancelled, req[model.FieldStatus])

					return nil
				})
			},
		},
		{
			name:   "not found",
			status: constant.StatusCancelled,
			setupMock: func(repo *bookingMocks.MockFacilityBooking) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.FacilityBooking{}, nil)
			},
			wantErr: failure.ErrNotFound,
		},
		{
			name:   "reactivation into held slot",
			status: constant.StatusConfirmed,
			setupMock: func(repo *bookingMocks.MockFacilityBooking) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.FacilityBooking{ID: "fb-1"}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrSlotTaken)
			},
			wantErr: failure.ErrSlotConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.UpdateStatus(userContext(), dto.UpdateStatusRequest{Status: tt.status}, "fb-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestFacilityBookingService_ExpirePending(t *testing.T) {
	svc, repo, _ := newService(t)
	cutoff := time.Date(2026, 3, 3, 9, 30, 0, 0, time.UTC)

	repo.EXPECT().ExpirePending(gomock.Any(), cutoff).Return(nil)
	assert.NoError(t, svc.ExpirePending(context.Background(), cutoff))

	repo.EXPECT().ExpirePending(gomock.Any(), cutoff).Return(errors.New("deadlock"))
	assert.Error(t, svc.ExpirePending(context.Background(), cutoff))
}
