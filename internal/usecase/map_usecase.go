package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"medilink/internal/converter"
	"medilink/internal/delivery/dto"
	"medilink/internal/domain/entity"
	"medilink/internal/domain/repository"
	"medilink/pkg/geo"
)

// MapUsecase serves the eligible set for each viewer role: open postings for
// workers, discoverable workers for hospitals. It is the only read path that
// crosses account boundaries.
type MapUsecase interface {
	GetWorkerMap(ctx context.Context, workerID uuid.UUID, withinRadius bool) (*dto.JobMapResponse, error)
	GetHospitalMap(ctx context.Context, hospitalID uuid.UUID) (*dto.WorkerMapResponse, error)
}

type mapUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	workerRepo   repository.WorkerProfileRepository
	hospitalRepo repository.HospitalProfileRepository
	postingRepo  repository.JobPostingRepository
}

func NewMapUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	workerRepo repository.WorkerProfileRepository,
	hospitalRepo repository.HospitalProfileRepository,
	postingRepo repository.JobPostingRepository,
) MapUsecase {
	return &mapUsecase{
		db:           db,
		log:          log,
		workerRepo:   workerRepo,
		hospitalRepo: hospitalRepo,
		postingRepo:  postingRepo,
	}
}

// GetWorkerMap returns open, geocoded postings city-wide. The viewer's
// radius is informational by default; with withinRadius set the list is
// narrowed to postings inside the viewer's declared travel radius, which
// requires the viewer's own address to be resolved.
func (u *mapUsecase) GetWorkerMap(ctx context.Context, workerID uuid.UUID, withinRadius bool) (*dto.JobMapResponse, error) {
	viewer, err := u.workerRepo.FindByUserID(u.db.WithContext(ctx), workerID)
	if err != nil {
		u.log.Warnf("Failed to find worker profile: %+v", err)
		return nil, err
	}
	if viewer == nil {
		return nil, ErrProfileNotFound
	}

	postings, err := u.postingRepo.FindOpen(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to query open postings: %+v", err)
		return nil, err
	}

	filtered := false
	if withinRadius && viewer.Location().IsSet() {
		postings = filterByRadius(postings, viewer.Location(), float64(viewer.WorkRadiusKm))
		filtered = true
	}

	resp := &dto.JobMapResponse{
		Postings:         converter.JobPostingsToResponses(postings),
		Total:            len(postings),
		FilteredByRadius: filtered,
	}
	if viewer.Location().IsSet() {
		resp.Center = &dto.MapCenter{
			Latitude:     viewer.Latitude,
			Longitude:    viewer.Longitude,
			WorkRadiusKm: viewer.WorkRadiusKm,
		}
	}

	return resp, nil
}

// GetHospitalMap returns workers who opted into visibility and have resolved
// coordinates. Pins carry reduced-precision coordinates and the declared
// radius; precise addresses never leave the owner's own endpoints.
func (u *mapUsecase) GetHospitalMap(ctx context.Context, hospitalID uuid.UUID) (*dto.WorkerMapResponse, error) {
	viewer, err := u.hospitalRepo.FindByUserID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital profile: %+v", err)
		return nil, err
	}
	if viewer == nil {
		return nil, ErrProfileNotFound
	}

	workers, err := u.workerRepo.FindVisible(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to query visible workers: %+v", err)
		return nil, err
	}

	resp := &dto.WorkerMapResponse{
		Workers: converter.WorkerProfilesToPins(workers),
		Total:   len(workers),
	}
	if viewer.Location().IsSet() {
		resp.Center = &dto.MapCenter{
			Latitude:  viewer.Latitude,
			Longitude: viewer.Longitude,
		}
	}

	return resp, nil
}

func filterByRadius(postings []entity.JobPosting, center geo.Point, radiusKm float64) []entity.JobPosting {
	matched := make([]entity.JobPosting, 0, len(postings))
	for _, p := range postings {
		if geo.IsWithinRadius(center, radiusKm, p.Location()) {
			matched = append(matched, p)
		}
	}
	return matched
}
