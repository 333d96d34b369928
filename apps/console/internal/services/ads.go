package services

import (
	"context"

	"admin.townguide.app/apps/console/internal/dtos"
	"admin.townguide.app/apps/console/internal/models"
	"admin.townguide.app/apps/console/internal/repositories"
)

type AdService struct {
	ads *repositories.AdRepository
}

func (service *AdService) GetAll(ctx context.Context) ([]models.Ad, error) {
	return service.ads.GetAll(ctx)
}

func (service *AdService) GetByID(
	ctx context.Context,
	id int64,
) (*models.Ad, error) {
	return service.ads.GetByID(ctx, id)
}

func (service *AdService) Create(
	ctx context.Context,
	dto dtos.AdDto,
) (*models.Ad, error) {
	ad := adFromDto(dto)

	err := service.ads.Create(ctx, &ad)
	if err != nil {
		return nil, err
	}

	return &ad, nil
}

func (service *AdService) Update(
	ctx context.Context,
	id int64,
	dto dtos.AdDto,
) (*models.Ad, error) {
	ad := adFromDto(dto)
	ad.ID = id

	err := service.ads.Update(ctx, &ad)
	if err != nil {
		return nil, err
	}

	return &ad, nil
}

func (service *AdService) Delete(ctx context.Context, id int64) error {
	return service.ads.Delete(ctx, id)
}

func adFromDto(dto dtos.AdDto) models.Ad {
	//nolint:exhaustruct //identity and timestamps are assigned by the store
	return models.Ad{
		Name:       dto.Name,
		Slug:       dto.Slug,
		Vendor:     dto.Vendor,
		WebsiteURL: dto.WebsiteURL,
		ImageURL:   dto.ImageURL,
		Active:     dto.Active,
		SortOrder:  dto.SortOrder,
	}
}
