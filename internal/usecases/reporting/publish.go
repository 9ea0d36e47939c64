package reporting

import (
	"context"
	"fmt"

	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/pkg/log"
)

//go:generate mockgen -source=publish.go -destination=mocks/publish_mock.go -package=mocks

const reportContentType = "text/html; charset=utf-8"

// ArtifactStore guarda o HTML renderizado e devolve a URL pública do arquivo
type ArtifactStore interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// Notifier entrega o resumo do relatório ao criador
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

func artifactKey(report *domain.AnalyticsReport) string {
	return fmt.Sprintf("reports/%s/%s.html", report.CreatorID, report.ID)
}

// publish renderiza, envia o arquivo, anexa a URL e dispara o e-mail. Nenhuma
// dessas etapas desfaz o relatório já salvo: falhas apenas viram log.
func (s *Service) publish(ctx context.Context, creator *domain.Creator, report *domain.AnalyticsReport) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"creator_id":  creator.ID,
		"report_id":   report.ID,
		"report_type": report.ReportType,
	})

	if s.renderer == nil {
		return
	}

	if s.store != nil {
		s.uploadArtifact(ctx, logger, creator, report)
	}

	if s.notifier == nil {
		return
	}

	if !creator.HasEmail() {
		logger.Debug("report: creator has no email, skipping dispatch")
		return
	}

	body, err := s.renderer.RenderEmail(creator, report)
	if err != nil {
		logger.WithError(err).Warn("report: email render failed")
		return
	}

	subject := fmt.Sprintf("Your %s report (%s to %s)", report.ReportType, report.PeriodStart, report.PeriodEnd)
	if err := s.notifier.Send(ctx, *creator.Email, subject, body); err != nil {
		logger.WithError(err).Warn("report: email dispatch failed")
		return
	}

	logger.Info("report: email sent")
}

func (s *Service) uploadArtifact(ctx context.Context, logger log.Logger, creator *domain.Creator, report *domain.AnalyticsReport) {
	html, err := s.renderer.RenderReport(creator, report)
	if err != nil {
		logger.WithError(err).Warn("report: artifact render failed")
		return
	}

	url, err := s.store.Upload(ctx, artifactKey(report), reportContentType, []byte(html))
	if err != nil {
		logger.WithError(err).Warn("report: artifact upload failed")
		return
	}

	if err := s.reportRepository.AttachFileURL(ctx, report.ID, url); err != nil {
		logger.WithError(err).Warn("report: could not attach artifact url")
		return
	}

	report.FileURL = &url
	logger.WithField("file_url", url).Info("report: artifact uploaded")
}
