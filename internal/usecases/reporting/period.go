package reporting

import (
	"time"

	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/pkg/utils"
)

const (
	weeklyDays   = 7
	fallbackDays = 30
)

// GetReportPeriod resolve a janela do relatório a partir do tipo:
//   - weekly: 7 dias de calendário terminando em now, inclusive
//   - monthly: o mês de calendário anterior, do primeiro ao último dia
//   - quarterly: o trimestre de calendário anterior
//   - qualquer outro valor: 30 dias de calendário terminando em now, inclusive
//
// Os limites são comparados por data com >= e <=, por isso o início recua um dia a menos.
func GetReportPeriod(reportType domain.ReportType, now time.Time) domain.ReportPeriod {
	switch reportType {
	case domain.ReportTypeWeekly:
		return domain.ReportPeriod{Start: now.AddDate(0, 0, -(weeklyDays - 1)), End: now}

	case domain.ReportTypeMonthly:
		firstOfPrevious := utils.FirstDayOfMonth(now).AddDate(0, -1, 0)
		return domain.ReportPeriod{
			Start: firstOfPrevious,
			End:   utils.LastDayOfMonth(firstOfPrevious),
		}

	case domain.ReportTypeQuarterly:
		currentQuarter := utils.FirstDayOfQuarter(now)
		return domain.ReportPeriod{
			Start: currentQuarter.AddDate(0, -3, 0),
			End:   currentQuarter.AddDate(0, 0, -1),
		}

	default:
		return domain.ReportPeriod{Start: now.AddDate(0, 0, -(fallbackDays - 1)), End: now}
	}
}
