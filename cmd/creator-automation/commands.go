package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/creator-automation/infrastructure/migration"
	"github.com/vfg2006/creator-automation/internal/api"
	"github.com/vfg2006/creator-automation/internal/config"
	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/internal/scheduler"
	"github.com/vfg2006/creator-automation/internal/usecases/authenticating"
	"github.com/vfg2006/creator-automation/internal/usecases/monitoring"
	"github.com/vfg2006/creator-automation/internal/usecases/reporting"
	"github.com/vfg2006/creator-automation/internal/usecases/syncing"
	"github.com/vfg2006/creator-automation/pkg/log"
	"github.com/vfg2006/creator-automation/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type cliContext struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	cli := &cliContext{}

	root := &cobra.Command{
		Use:           "creator-automation",
		Short:         "Sincronização de métricas e relatórios de criadores",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("erro ao carregar configuração: %w", err)
			}
			log.Setup(log.Options{
				Level:  cfg.App.LogLevel,
				Format: cfg.App.LogFormat,
				Env:    cfg.App.Env,
			})
			cli.cfg = cfg
			return nil
		},
	}

	root.AddCommand(
		newSyncCmd(cli),
		newReportCmd(cli),
		newScheduleCmd(cli),
		newStatusCmd(cli),
		newMigrateCmd(cli),
		newTokenCmd(cli),
	)

	return root
}

// withApp monta as dependências, executa fn e loga o erro final antes de devolvê-lo
func (c *cliContext) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, c.cfg)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("cli: could not start")
		return err
	}
	defer a.Close()

	if err := fn(ctx, a); err != nil {
		log.ForContext(ctx).WithError(err).Error("cli: command failed")
		return err
	}

	return nil
}

func newSyncCmd(cli *cliContext) *cobra.Command {
	var (
		creatorID string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sincroniza as métricas de um criador ou de todos os criadores ativos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.withApp(cmd, func(ctx context.Context, a *app) error {
				return runSync(ctx, cmd.OutOrStdout(), a.syncer, creatorID, force)
			})
		},
	}

	cmd.Flags().StringVar(&creatorID, "creator-id", "", "sincroniza apenas este criador")
	cmd.Flags().BoolVar(&force, "force", false, "ignora a janela de frescor das conexões")

	return cmd
}

func runSync(ctx context.Context, out io.Writer, syncer syncing.Syncer, creatorID string, force bool) error {
	if creatorID != "" {
		outcome, err := syncer.SyncCreator(ctx, creatorID, force)
		if outcome != nil {
			printCreatorOutcome(out, outcome)
		}
		return err
	}

	summary, err := syncer.SyncAllCreators(ctx, force)
	if summary != nil {
		printSyncSummary(out, summary)
	}
	return err
}

func newReportCmd(cli *cliContext) *cobra.Command {
	var (
		creatorID  string
		reportType string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera o relatório de um criador ou de todos os criadores ativos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !domain.IsValidReportType(reportType) {
				return fmt.Errorf("%w: %s", domain.ErrInvalidReportType, reportType)
			}

			return cli.withApp(cmd, func(ctx context.Context, a *app) error {
				return runReport(ctx, cmd.OutOrStdout(), a.reporter, creatorID, domain.ReportType(reportType))
			})
		},
	}

	cmd.Flags().StringVar(&creatorID, "creator-id", "", "gera apenas o relatório deste criador")
	cmd.Flags().StringVar(&reportType, "type", string(domain.ReportTypeMonthly), "daily, weekly, monthly ou quarterly")

	return cmd
}

func runReport(ctx context.Context, out io.Writer, reporter reporting.Reporter, creatorID string, reportType domain.ReportType) error {
	if creatorID != "" {
		report, err := reporter.GenerateCreatorReport(ctx, creatorID, reportType)
		if err != nil {
			return err
		}
		printReport(out, report)
		return nil
	}

	result, err := reporter.GenerateAllReports(ctx, reportType)
	if result != nil {
		printReportBatch(out, reportType, result)
	}
	return err
}

func newStatusCmd(cli *cliContext) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Mostra os últimos estados de sincronização e relatórios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.withApp(cmd, func(ctx context.Context, a *app) error {
				return runStatus(ctx, cmd.OutOrStdout(), a.status, limit, asJSON)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", monitoring.DefaultLimit, "quantidade de linhas por seção")
	cmd.Flags().BoolVar(&asJSON, "json", false, "imprime o status em JSON")

	return cmd
}

func runStatus(ctx context.Context, out io.Writer, reader monitoring.StatusReader, limit int, asJSON bool) error {
	overview, err := reader.Overview(ctx, limit)
	if err != nil {
		return err
	}

	if asJSON {
		_, err = fmt.Fprintln(out, utils.PrettyJson(overview))
		return err
	}

	printStatus(out, overview)
	return nil
}

func newScheduleCmd(cli *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Registra os jobs agendados e bloqueia até receber um sinal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.withApp(cmd, func(ctx context.Context, a *app) error {
				return runSchedule(ctx, a)
			})
		},
	}
}

func runSchedule(ctx context.Context, a *app) error {
	locker, err := a.newLocker(ctx)
	if err != nil {
		return err
	}

	sched := scheduler.New(locker)
	for _, job := range scheduler.DefaultJobs(a.cfg, a.syncer, a.reporter) {
		if err := sched.Register(job); err != nil {
			return err
		}
	}

	if err := sched.Start(ctx); err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)

	if a.cfg.Server.Enabled {
		server := api.New(a.cfg, authenticating.NewService(a.cfg), a.status, sched)
		group.Go(func() error {
			return server.Run(groupCtx)
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()
		return nil
	})

	log.ForContext(ctx).WithField("api_enabled", a.cfg.Server.Enabled).Info("scheduler: waiting for triggers")

	if err := group.Wait(); err != nil {
		return err
	}

	log.ForContext(ctx).Info("scheduler: shutdown requested")
	return nil
}

func newMigrateCmd(cli *cliContext) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Cria ou atualiza o schema do banco",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printOnly {
				_, err := fmt.Fprint(cmd.OutOrStdout(), migration.Schema())
				return err
			}

			return cli.withApp(cmd, func(ctx context.Context, a *app) error {
				return migration.Run(ctx, a.db)
			})
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "só imprime o DDL")

	return cmd
}

func newTokenCmd(cli *cliContext) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um JWT para a API de operação",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToken(cmd.OutOrStdout(), authenticating.NewService(cli.cfg), subject, role, ttl)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "operator", "identificação de quem usa o token")
	cmd.Flags().StringVar(&role, "role", domain.RoleAdmin, "admin ou operator")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "validade do token")

	return cmd
}

func runToken(out io.Writer, auth authenticating.Authenticator, subject, role string, ttl time.Duration) error {
	if role != domain.RoleAdmin && role != domain.RoleOperator {
		return fmt.Errorf("role inválida: %s", role)
	}

	token, err := auth.GenerateToken(subject, role, ttl)
	if err != nil {
		if errors.Is(err, authenticating.ErrMissingSecret) {
			return fmt.Errorf("defina AUTH_SECRET para emitir tokens: %w", err)
		}
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
