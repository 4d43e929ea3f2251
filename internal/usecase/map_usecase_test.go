package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medilink/internal/domain/entity"
	"medilink/pkg/geo"
)

func TestFilterByRadius(t *testing.T) {
	center := geo.Point{Lat: 37.5665, Lng: 126.9780} // Seoul City Hall

	near := entity.JobPosting{Title: "가까운 공고", Latitude: 37.5700, Longitude: 126.9800}
	far := entity.JobPosting{Title: "부산 공고", Latitude: 35.1151, Longitude: 129.0413}

	matched := filterByRadius([]entity.JobPosting{near, far}, center, 5)

	assert.Len(t, matched, 1)
	assert.Equal(t, "가까운 공고", matched[0].Title)
}

func TestFilterByRadius_Empty(t *testing.T) {
	center := geo.Point{Lat: 37.5665, Lng: 126.9780}

	matched := filterByRadius(nil, center, 5)

	assert.Empty(t, matched)
}
