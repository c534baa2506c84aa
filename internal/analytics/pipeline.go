package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/utils"
)

const percentOfTotalPlaces = 4

// BuildPipelineDistribution agrupa os negócios abertos por etapa do funil.
// Toda etapa aparece no resultado, mesmo sem negócios. Negócios de etapas desconhecidas são ignorados.
func BuildPipelineDistribution(deals []domain.Deal, stages []domain.Stage) *domain.PipelineDistribution {
	ordered := make([]domain.Stage, len(stages))
	copy(ordered, stages)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Order != ordered[j].Order {
			return ordered[i].Order < ordered[j].Order
		}
		return ordered[i].ID < ordered[j].ID
	})

	distribution := make([]domain.StageDistribution, len(ordered))
	index := make(map[string]int, len(ordered))
	for i, stage := range ordered {
		distribution[i] = domain.StageDistribution{
			StageID:        stage.ID,
			Name:           stage.Name,
			Color:          stage.Color,
			Order:          stage.Order,
			TotalValue:     decimal.Zero,
			PercentOfTotal: decimal.Zero,
		}
		index[stage.ID] = i
	}

	total := domain.PipelineTotal{Value: decimal.Zero}
	for _, deal := range deals {
		if !deal.IsOpen() {
			continue
		}

		i, ok := index[deal.StageID]
		if !ok {
			continue
		}

		distribution[i].Count++
		distribution[i].TotalValue = distribution[i].TotalValue.Add(deal.Value)
		total.Count++
		total.Value = total.Value.Add(deal.Value)
	}

	for i := range distribution {
		distribution[i].PercentOfTotal = utils.SafeDiv(distribution[i].TotalValue, total.Value).Round(percentOfTotalPlaces)
		distribution[i].TotalValue = utils.RoundMoney(distribution[i].TotalValue)
	}
	total.Value = utils.RoundMoney(total.Value)

	return &domain.PipelineDistribution{
		Stages: distribution,
		Total:  total,
	}
}
