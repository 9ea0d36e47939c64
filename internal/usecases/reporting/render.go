package reporting

import (
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/osteele/liquid"
	"github.com/vfg2006/creator-automation/internal/domain"
)

//go:embed templates/*.liquid
var templatesFS embed.FS

const (
	reportTemplate = "templates/report.html.liquid"
	emailTemplate  = "templates/email.html.liquid"
)

// Renderer transforma um relatório salvo nos artefatos entregues ao criador
type Renderer interface {
	RenderReport(creator *domain.Creator, report *domain.AnalyticsReport) (string, error)
	RenderEmail(creator *domain.Creator, report *domain.AnalyticsReport) (string, error)
}

type TemplateRenderer struct {
	report *liquid.Template
	email  *liquid.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	engine := liquid.NewEngine()

	report, err := parseTemplate(engine, reportTemplate)
	if err != nil {
		return nil, err
	}

	email, err := parseTemplate(engine, emailTemplate)
	if err != nil {
		return nil, err
	}

	return &TemplateRenderer{report: report, email: email}, nil
}

func parseTemplate(engine *liquid.Engine, name string) (*liquid.Template, error) {
	source, err := templatesFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler template %s: %w", name, err)
	}

	tpl, parseErr := engine.ParseString(string(source))
	if parseErr != nil {
		return nil, fmt.Errorf("erro ao compilar template %s: %w", name, parseErr)
	}

	return tpl, nil
}

func (r *TemplateRenderer) RenderReport(creator *domain.Creator, report *domain.AnalyticsReport) (string, error) {
	out, err := r.report.RenderString(reportBindings(creator, report))
	if err != nil {
		return "", fmt.Errorf("erro ao renderizar relatório %s: %w", report.ID, err)
	}
	return out, nil
}

func (r *TemplateRenderer) RenderEmail(creator *domain.Creator, report *domain.AnalyticsReport) (string, error) {
	out, err := r.email.RenderString(reportBindings(creator, report))
	if err != nil {
		return "", fmt.Errorf("erro ao renderizar e-mail do relatório %s: %w", report.ID, err)
	}
	return out, nil
}

// reportBindings achata o relatório em tipos simples, com números já formatados
func reportBindings(creator *domain.Creator, report *domain.AnalyticsReport) liquid.Bindings {
	metrics := report.Metrics
	if metrics == nil {
		metrics = &domain.ReportMetrics{}
	}

	insights := report.Insights
	if insights == nil {
		insights = &domain.ReportInsights{}
	}

	platforms := make([]map[string]any, 0, len(metrics.ContentPerformance.Platforms))
	for _, p := range metrics.ContentPerformance.Platforms {
		platforms = append(platforms, map[string]any{
			"name":       string(p.Platform),
			"posts":      p.PostsCount,
			"views":      formatDecimal(p.AvgViews),
			"engagement": formatDecimal(p.EngagementRate),
		})
	}

	sources := make([]map[string]any, 0, len(metrics.Revenue.BySource))
	for _, s := range metrics.Revenue.BySource {
		sources = append(sources, map[string]any{
			"name":   s.Source,
			"amount": formatDecimal(s.Amount),
			"count":  s.Count,
		})
	}

	bestPlatform := ""
	if metrics.ContentPerformance.BestPlatform != nil {
		bestPlatform = string(*metrics.ContentPerformance.BestPlatform)
	}

	fileURL := ""
	if report.FileURL != nil {
		fileURL = *report.FileURL
	}

	growth := metrics.FollowerGrowth
	engagement := metrics.Engagement

	return liquid.Bindings{
		"creator_name": creator.Name(),
		"report_type":  string(report.ReportType),
		"report_label": reportLabel(report.ReportType),
		"period_start": report.PeriodStart,
		"period_end":   report.PeriodEnd,
		"generated_at": report.GeneratedAt.Format(time.RFC1123),
		"file_url":     fileURL,
		"growth": map[string]any{
			"start": growth.StartFollowers,
			"end":   growth.EndFollowers,
			"net":   fmt.Sprintf("%+d", growth.NetGrowth),
			"rate":  formatDecimal(growth.GrowthRate),
		},
		"engagement": map[string]any{
			"rate":        formatDecimal(engagement.AvgEngagementRate),
			"likes":       formatDecimal(engagement.AvgLikes),
			"comments":    formatDecimal(engagement.AvgComments),
			"shares":      formatDecimal(engagement.AvgShares),
			"reach":       engagement.TotalReach,
			"impressions": engagement.TotalImpressions,
		},
		"content": map[string]any{
			"total_posts":   metrics.ContentPerformance.TotalPosts,
			"best_platform": bestPlatform,
			"platforms":     platforms,
		},
		"revenue": map[string]any{
			"total":   formatDecimal(metrics.Revenue.Total),
			"sources": sources,
		},
		"insights": map[string]any{
			"growth_opportunity": insights.GrowthOpportunity,
			"posting_times":      nonNil(insights.BestPostingTimes),
			"hashtags":           nonNil(insights.TopHashtags),
		},
		"recommendations": nonNil(report.Recommendations),
	}
}

func reportLabel(reportType domain.ReportType) string {
	label := string(reportType)
	if label == "" {
		return "Analytics"
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func formatDecimal(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
