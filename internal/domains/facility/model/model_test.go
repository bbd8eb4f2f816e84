package model_test

import (
	"hotel/internal/domains/facility/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFreeSlots(t *testing.T) {
	spa := model.Facility{
		TimeSlots: []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"},
	}

	tests := []struct {
		name string
		held []string
		want []string
	}{
		{name: "nothing held", held: nil, want: []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}},
		{name: "middle slot held", held: []string{"10:00-11:00"}, want: []string{"09:00-10:00", "11:00-12:00"}},
		{name: "held twice", held: []string{"09:00-10:00", "09:00-10:00"}, want: []string{"10:00-11:00", "11:00-12:00"}},
		{name: "all held", held: []string{"11:00-12:00", "09:00-10:00", "10:00-11:00"}, want: []string{}},
		{name: "foreign slot ignored", held: []string{"18:00-19:00"}, want: []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spa.FreeSlots(tt.held))
		})
	}
}

func TestOpenOn(t *testing.T) {
	spa := model.Facility{AvailableDays: []string{"Tuesday"}}

	assert.True(t, spa.OpenOn(time.Tuesday))
	assert.False(t, spa.OpenOn(time.Monday))
	assert.False(t, model.Facility{}.OpenOn(time.Sunday))
}

func TestHasSlot(t *testing.T) {
	gym := model.Facility{TimeSlots: []string{"06:00-07:00"}}

	assert.True(t, gym.HasSlot("06:00-07:00"))
	assert.False(t, gym.HasSlot("07:00-08:00"))
}
