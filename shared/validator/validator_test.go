package validator_test

import (
	"hotel/shared/failure"
	"hotel/shared/validator"
	"net/http"
	"strings"
	"testing"
)

type slotRequest struct {
	FacilityID string `json:"facility_id" validate:"required"`
	Date       string `json:"date"        validate:"required,dateonly"`
	TimeSlot   string `json:"time_slot"   validate:"required,timeslot"`
	Guests     int    `json:"guests"      validate:"gte=0,lte=20"`
	Kind       string `json:"kind"        validate:"omitempty,oneof=room food facility"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        slotRequest
		expectError string
	}{
		{
			name: "valid request",
			data: slotRequest{FacilityID: "gym", Date: "2024-02-01", TimeSlot: "06:00-07:00", Guests: 2, Kind: "facility"},
		},
		{
			name:        "missing facility",
			data:        slotRequest{Date: "2024-02-01", TimeSlot: "06:00-07:00"},
			expectError: "FacilityID is required",
		},
		{
			name:        "malformed date",
			data:        slotRequest{FacilityID: "gym", Date: "01/02/2024", TimeSlot: "06:00-07:00"},
			expectError: "Date must be a date formatted as YYYY-MM-DD",
		},
		{
			name:        "malformed slot",
			data:        slotRequest{FacilityID: "gym", Date: "2024-02-01", TimeSlot: "6am"},
			expectError: "TimeSlot must be a time slot formatted as HH:MM-HH:MM",
		},
		{
			name:        "unknown kind",
			data:        slotRequest{FacilityID: "gym", Date: "2024-02-01", TimeSlot: "06:00-07:00", Kind: "spa"},
			expectError: "Kind must be one of room food facility",
		},
		{
			name:        "too many guests",
			data:        slotRequest{FacilityID: "gym", Date: "2024-02-01", TimeSlot: "06:00-07:00", Guests: 21},
			expectError: "Guests must be less than or equal to 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected validation error")
			}

			if err.Error() != tt.expectError {
				t.Errorf("expected %q, got %q", tt.expectError, err.Error())
			}

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected bad request, got %d", failure.GetCode(err))
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2024-01-03", "dateonly"); err != nil {
		t.Errorf("expected valid date, got %v", err)
	}

	if err := validator.ValidateVar("2024-13-03", "dateonly"); err == nil {
		t.Error("expected month 13 to be rejected")
	}

	if err := validator.ValidateVar("", "empty"); err != nil {
		t.Errorf("expected empty string to pass, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	var req slotRequest

	body := `{"facility_id":"spa","date":"2024-01-02","time_slot":"10:00-11:00"}`
	if err := validator.Validate(strings.NewReader(body), &req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if req.TimeSlot != "10:00-11:00" {
		t.Errorf("expected body to be decoded, got %+v", req)
	}

	err := validator.Validate(strings.NewReader(`{"facility_id":`), &req)
	if err == nil || !strings.Contains(err.Error(), "failed to decode request body") {
		t.Errorf("expected decode error, got %v", err)
	}
}
