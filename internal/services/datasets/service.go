// Package datasets manages the data catalog. Dataset data types feed the
// risk inputs of the systems they serve.
package datasets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aigov/internal/domain"
	"aigov/internal/ports"
)

var ErrInvalidSensitivity = errors.New("invalid dataset sensitivity")

var validSensitivities = map[string]bool{
	"public": true, "internal": true, "confidential": true, "restricted": true,
}

type Service struct {
	datasets ports.DatasetRepository
	now      func() time.Time
}

func New(datasets ports.DatasetRepository) *Service {
	return &Service{datasets: datasets, now: time.Now}
}

type DatasetInput struct {
	Name        string
	Description string
	DataTypes   []string
	Sensitivity string
	SystemRef   *string
}

func (s *Service) Create(ctx context.Context, orgID string, in DatasetInput) (domain.Dataset, error) {
	if err := validate(in); err != nil {
		return domain.Dataset{}, err
	}
	d := domain.Dataset{
		ID:          uuid.NewString(),
		OrgID:       orgID,
		Name:        in.Name,
		Description: in.Description,
		DataTypes:   in.DataTypes,
		Sensitivity: sensitivityOrDefault(in.Sensitivity),
		SystemRef:   in.SystemRef,
		CreatedAt:   s.now(),
	}
	if err := s.datasets.CreateDataset(ctx, d); err != nil {
		return domain.Dataset{}, fmt.Errorf("create dataset: %w", err)
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, orgID, id string, in DatasetInput) (domain.Dataset, error) {
	if err := validate(in); err != nil {
		return domain.Dataset{}, err
	}
	d, err := s.datasets.GetDataset(ctx, orgID, id)
	if err != nil {
		return domain.Dataset{}, err
	}
	d.Name = in.Name
	d.Description = in.Description
	d.DataTypes = in.DataTypes
	d.Sensitivity = sensitivityOrDefault(in.Sensitivity)
	d.SystemRef = in.SystemRef
	if err := s.datasets.UpdateDataset(ctx, d); err != nil {
		return domain.Dataset{}, fmt.Errorf("update dataset: %w", err)
	}
	return d, nil
}

func (s *Service) Get(ctx context.Context, orgID, id string) (domain.Dataset, error) {
	return s.datasets.GetDataset(ctx, orgID, id)
}

func (s *Service) List(ctx context.Context, orgID string) ([]domain.Dataset, error) {
	return s.datasets.ListDatasets(ctx, orgID)
}

func (s *Service) Delete(ctx context.Context, orgID, id string) error {
	return s.datasets.DeleteDataset(ctx, orgID, id)
}

func validate(in DatasetInput) error {
	if in.Sensitivity != "" && !validSensitivities[in.Sensitivity] {
		return fmt.Errorf("%w: %q", ErrInvalidSensitivity, in.Sensitivity)
	}
	return nil
}

func sensitivityOrDefault(s string) string {
	if s == "" {
		return "internal"
	}
	return s
}
