package insighting

import (
	"errors"

	"github.com/vfg2006/campaign-insights-api/infrastructure/repository"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/filtering"
)

// ErrNoDataset indica que nenhum arquivo foi carregado ainda
var ErrNoDataset = errors.New("no dataset loaded")

type Service struct {
	datasetRepository repository.DatasetRepository
}

func NewService(datasetRepo repository.DatasetRepository) Insighter {
	return &Service{
		datasetRepository: datasetRepo,
	}
}

func (s *Service) current() (*domain.Dataset, error) {
	dataset := s.datasetRepository.Current()
	if dataset == nil {
		return nil, ErrNoDataset
	}
	return dataset, nil
}

func (s *Service) Dashboard(spec domain.FilterSpec) (*domain.Dashboard, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}

	filtered := filtering.Apply(dataset.Records, spec)

	return &domain.Dashboard{
		Dataset:           Summarize(dataset),
		Totals:            CalculateTotals(filtered),
		Daily:             ByDate(filtered),
		ChannelSpend:      ChannelSpendBreakdown(filtered),
		ChannelComparison: ChannelRevenueComparison(filtered),
		Campaigns:         ByCampaign(filtered),
	}, nil
}

func (s *Service) Records(spec domain.FilterSpec) ([]domain.Record, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}

	return filtering.Apply(dataset.Records, spec), nil
}

func (s *Service) Summary() (*domain.DatasetSummary, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}

	return Summarize(dataset), nil
}

// Summarize descreve o dataset: canais e campanhas na ordem da primeira aparição e o período coberto
func Summarize(dataset *domain.Dataset) *domain.DatasetSummary {
	summary := &domain.DatasetSummary{
		ID:          dataset.ID,
		Source:      dataset.Source,
		LoadedAt:    dataset.LoadedAt,
		RecordCount: len(dataset.Records),
		Channels:    make([]string, 0),
		Campaigns:   make([]string, 0),
	}

	seenChannels := make(map[string]bool)
	seenCampaigns := make(map[string]bool)
	for _, r := range dataset.Records {
		if !seenChannels[r.Channel] {
			seenChannels[r.Channel] = true
			summary.Channels = append(summary.Channels, r.Channel)
		}
		if !seenCampaigns[r.Campaign] {
			seenCampaigns[r.Campaign] = true
			summary.Campaigns = append(summary.Campaigns, r.Campaign)
		}

		d := r.Day()
		if summary.FirstDate == "" || d < summary.FirstDate {
			summary.FirstDate = d
		}
		if d > summary.LastDate {
			summary.LastDate = d
		}
	}

	return summary
}
