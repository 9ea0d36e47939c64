package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/vfg2006/creator-automation/internal/domain"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

const ruleWidth = 60

func printHeader(out io.Writer, title string) {
	fmt.Fprintf(out, "\n%s\n%s\n", cyan(title), strings.Repeat("─", ruleWidth))
}

func printSyncSummary(out io.Writer, summary *domain.SyncSummary) {
	printHeader(out, "Sincronização de métricas")
	fmt.Fprintf(out, "Criadores:   %d (%s)\n", summary.Creators, summary.FinishedAt.Sub(summary.StartedAt).Round(time.Second))
	fmt.Fprintf(out, "Conexões:    %s sincronizadas, %s com falha, %s puladas\n",
		green(summary.ConnectionsSynced), red(summary.ConnectionsFailed), yellow(summary.ConnectionsSkipped))
	fmt.Fprintf(out, "Sucesso:     %d criadores\n", len(summary.Succeeded))

	if len(summary.Failed) == 0 {
		return
	}

	fmt.Fprintf(out, "Falhas:      %s\n", red(len(summary.Failed)))
	for _, failure := range summary.Failed {
		fmt.Fprintf(out, "  • %s: %s\n", failure.Username, failure.Error)
	}
}

func printCreatorOutcome(out io.Writer, outcome *domain.CreatorSyncOutcome) {
	printHeader(out, "Sincronização de "+outcome.Username)

	for _, conn := range outcome.Connections {
		line := fmt.Sprintf("  %-10s %s", conn.Platform, stateLabel(conn.State))
		if conn.Error != "" {
			line += " " + conn.Error
		}
		fmt.Fprintln(out, line)
	}

	if outcome.Err != nil {
		fmt.Fprintf(out, "%s %s\n", red("erro:"), outcome.Err)
	}
}

func stateLabel(state domain.ConnectionSyncState) string {
	switch state {
	case domain.ConnectionSynced:
		return green(string(state))
	case domain.ConnectionFailed:
		return red(string(state))
	default:
		return yellow(string(state))
	}
}

func printReport(out io.Writer, report *domain.AnalyticsReport) {
	printHeader(out, fmt.Sprintf("Relatório %s de %s", report.ReportType, report.Username))
	fmt.Fprintf(out, "ID:        %s\n", report.ID)
	fmt.Fprintf(out, "Período:   %s a %s\n", report.PeriodStart, report.PeriodEnd)

	if report.Metrics != nil {
		growth := report.Metrics.FollowerGrowth
		fmt.Fprintf(out, "Seguidores: %d → %d (%+d, %.2f%%)\n", growth.StartFollowers, growth.EndFollowers, growth.NetGrowth, growth.GrowthRate)
		fmt.Fprintf(out, "Engajamento médio: %.2f%%\n", report.Metrics.Engagement.AvgEngagementRate)
		fmt.Fprintf(out, "Receita: %.2f\n", report.Metrics.Revenue.Total)
	}

	if report.FileURL != nil {
		fmt.Fprintf(out, "Arquivo:   %s\n", *report.FileURL)
	}

	for _, rec := range report.Recommendations {
		fmt.Fprintf(out, "  • %s\n", rec)
	}
}

func printReportBatch(out io.Writer, reportType domain.ReportType, result *domain.ReportBatchResult) {
	printHeader(out, fmt.Sprintf("Relatórios %s", reportType))
	fmt.Fprintf(out, "Gerados: %s\n", green(len(result.Success)))
	for _, username := range result.Success {
		fmt.Fprintf(out, "  ✓ %s\n", username)
	}

	if len(result.Failed) == 0 {
		return
	}

	fmt.Fprintf(out, "Falhas:  %s\n", red(len(result.Failed)))
	for _, failure := range result.Failed {
		fmt.Fprintf(out, "  ✗ %s: %s\n", failure.Username, failure.Error)
	}
}

func printStatus(out io.Writer, overview *domain.StatusOverview) {
	printHeader(out, "Conexões")
	if len(overview.Connections) == 0 {
		fmt.Fprintln(out, "  nenhuma conexão ativa")
	}
	for _, conn := range overview.Connections {
		fmt.Fprintf(out, "  %-20s %-10s %-9s %s",
			conn.Username, conn.Platform, syncStatusLabel(conn.SyncStatus), formatTime(conn.LastSyncAt))
		if conn.SyncError != nil && *conn.SyncError != "" {
			fmt.Fprintf(out, "  %s", *conn.SyncError)
		}
		fmt.Fprintln(out)
	}

	printHeader(out, "Relatórios recentes")
	if len(overview.Reports) == 0 {
		fmt.Fprintln(out, "  nenhum relatório gerado")
	}
	for _, report := range overview.Reports {
		label := green(string(report.Status))
		if report.Status == domain.ReportStatusFailed {
			label = red(string(report.Status))
		}
		fmt.Fprintf(out, "  %-20s %-9s %s a %s  %s\n",
			report.Username, report.ReportType, report.PeriodStart, report.PeriodEnd, label)
	}
}

func syncStatusLabel(status domain.SyncStatus) string {
	switch status {
	case domain.SyncStatusCompleted:
		return green(string(status))
	case domain.SyncStatusFailed:
		return red(string(status))
	default:
		return yellow(string(status))
	}
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "nunca"
	}
	return t.Format("2006-01-02 15:04")
}
