package usecase

import (
	"context"

	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/domain/repository"
	"github.com/road-monitoring-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type ServiceTypeUseCase struct {
	serviceTypeRepo repository.ServiceTypeRepository
	stationRepo     repository.ServiceStationRepository
	logger          *zap.Logger
}

func NewServiceTypeUseCase(
	serviceTypeRepo repository.ServiceTypeRepository,
	stationRepo repository.ServiceStationRepository,
	logger *zap.Logger,
) *ServiceTypeUseCase {
	return &ServiceTypeUseCase{
		serviceTypeRepo: serviceTypeRepo,
		stationRepo:     stationRepo,
		logger:          logger,
	}
}

func (uc *ServiceTypeUseCase) Create(ctx context.Context, req dto.ServiceTypeRequest) (*domain.ServiceType, error) {
	serviceType := &domain.ServiceType{
		TypeName: req.TypeName,
	}

	return uc.serviceTypeRepo.Create(ctx, serviceType)
}

func (uc *ServiceTypeUseCase) GetAll(ctx context.Context) ([]*domain.ServiceType, error) {
	return uc.serviceTypeRepo.GetAll(ctx)
}

func (uc *ServiceTypeUseCase) GetByID(ctx context.Context, id int) (*domain.ServiceType, error) {
	return uc.serviceTypeRepo.GetByID(ctx, id)
}

func (uc *ServiceTypeUseCase) Update(ctx context.Context, id int, req dto.ServiceTypeRequest) (*domain.ServiceType, error) {
	serviceType := &domain.ServiceType{
		ID:       id,
		TypeName: req.TypeName,
	}

	return uc.serviceTypeRepo.Update(ctx, serviceType)
}

// Delete removes the type only. Stations keep their now-dangling type id.
func (uc *ServiceTypeUseCase) Delete(ctx context.Context, id int) error {
	return uc.serviceTypeRepo.Delete(ctx, id)
}

// GetStations возвращает станции данного типа сервиса
func (uc *ServiceTypeUseCase) GetStations(ctx context.Context, id int) ([]*domain.ServiceStation, error) {
	if _, err := uc.serviceTypeRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return uc.stationRepo.GetByType(ctx, id)
}
