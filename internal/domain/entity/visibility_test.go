package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerProfile_IsDiscoverable(t *testing.T) {
	tests := []struct {
		name     string
		visible  bool
		lat, lng float64
		want     bool
	}{
		{"visible and geocoded", true, 37.5665, 126.9780, true},
		{"visible but sentinel coordinates", true, 0, 0, false},
		{"hidden but geocoded", false, 37.5665, 126.9780, false},
		{"hidden and sentinel", false, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &WorkerProfile{IsVisible: tt.visible, Latitude: tt.lat, Longitude: tt.lng}
			assert.Equal(t, tt.want, p.IsDiscoverable())
		})
	}
}

func TestJobPosting_IsDisplayable(t *testing.T) {
	tests := []struct {
		name     string
		status   JobPostingStatus
		lat, lng float64
		want     bool
	}{
		{"open and geocoded", JobPostingStatusOpen, 37.5665, 126.9780, true},
		{"open but sentinel coordinates", JobPostingStatusOpen, 0, 0, false},
		{"closed", JobPostingStatusClosed, 37.5665, 126.9780, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &JobPosting{Status: tt.status, Latitude: tt.lat, Longitude: tt.lng}
			assert.Equal(t, tt.want, j.IsDisplayable())
		})
	}
}

func TestJobPosting_Close(t *testing.T) {
	j := &JobPosting{Status: JobPostingStatusOpen, Latitude: 37.5665, Longitude: 126.9780}
	assert.True(t, j.IsOpen())

	j.Close()

	assert.False(t, j.IsOpen())
	assert.False(t, j.IsDisplayable())
}
