package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/creator-automation/infrastructure/lock"
	"github.com/vfg2006/creator-automation/pkg/log"
)

//go:generate mockgen -source=scheduler.go -destination=mocks/scheduler_mock.go -package=mocks

const defaultLockTTL = 3 * time.Hour

var (
	ErrUnknownJob     = errors.New("job não registrado")
	ErrJobRunning     = errors.New("job já em execução")
	ErrDuplicateJob   = errors.New("job já registrado")
	ErrAlreadyStarted = errors.New("agendador já iniciado")
)

// Handler é a unidade de trabalho de um job. Pode ser chamada diretamente nos testes.
type Handler func(ctx context.Context) error

type Job struct {
	Name    string
	Cron    string
	Handler Handler
}

// JobStatus é a visão de um job exposta ao operador
type JobStatus struct {
	Name           string     `json:"name"`
	Cron           string     `json:"cron"`
	Running        bool       `json:"running"`
	LastStartedAt  *time.Time `json:"last_started_at,omitempty"`
	LastFinishedAt *time.Time `json:"last_finished_at,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
	NextRun        *time.Time `json:"next_run,omitempty"`
}

// Runner é o que a API do operador precisa do agendador
type Runner interface {
	Trigger(ctx context.Context, name string) error
	Status() []JobStatus
}

type jobState struct {
	job            Job
	scheduled      *gocron.Job
	running        bool
	lastStartedAt  time.Time
	lastFinishedAt time.Time
	lastErr        error
}

// Scheduler registra jobs em expressões cron e garante que cada job rode uma vez por
// vez, neste processo pelo flag de execução e entre processos pelo Locker.
type Scheduler struct {
	cron    *gocron.Scheduler
	locker  lock.Locker
	lockTTL time.Duration
	now     func() time.Time

	mu      sync.Mutex
	jobs    map[string]*jobState
	started bool
	wg      sync.WaitGroup
}

func New(locker lock.Locker) *Scheduler {
	return &Scheduler{
		cron:    gocron.NewScheduler(time.Local),
		locker:  locker,
		lockTTL: defaultLockTTL,
		now:     time.Now,
		jobs:    make(map[string]*jobState),
	}
}

// Register valida a expressão cron e agenda o job. Jobs sem Cron ficam disponíveis
// apenas para disparo manual.
func (s *Scheduler) Register(job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateJob, job.Name)
	}

	state := &jobState{job: job}

	if job.Cron != "" {
		scheduled, err := s.cron.Cron(job.Cron).Do(func() {
			s.run(context.Background(), state)
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar job %s (%s): %w", job.Name, job.Cron, err)
		}
		state.scheduled = scheduled
	}

	s.jobs[job.Name] = state

	log.ForContext(context.Background()).WithFields(log.Fields{
		"job":  job.Name,
		"cron": job.Cron,
	}).Info("scheduler: job registered")

	return nil
}

// Start dispara os gatilhos em background e os para quando ctx for cancelado.
// Execuções em andamento no cancelamento não são aguardadas.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	s.cron.StartAsync()
	log.ForContext(ctx).WithField("jobs", len(s.jobs)).Info("scheduler: started")

	go func() {
		<-ctx.Done()
		log.ForContext(ctx).Info("scheduler: stopping")
		s.cron.Stop()
	}()

	return nil
}

// Run executa o job de forma síncrona, respeitando o single-flight
func (s *Scheduler) Run(ctx context.Context, name string) error {
	state, err := s.lookup(name)
	if err != nil {
		return err
	}

	return s.run(ctx, state)
}

// Trigger dispara o job em background. Retorna ErrJobRunning se ele já estiver rodando
// neste processo.
func (s *Scheduler) Trigger(ctx context.Context, name string) error {
	state, err := s.lookup(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	running := state.running
	s.mu.Unlock()

	if running {
		return fmt.Errorf("%w: %s", ErrJobRunning, name)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_ = s.run(context.WithoutCancel(ctx), state)
	}()

	return nil
}

// Wait bloqueia até os disparos manuais em andamento terminarem
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) Status() []JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]JobStatus, 0, len(s.jobs))
	for _, state := range s.jobs {
		status := JobStatus{
			Name:    state.job.Name,
			Cron:    state.job.Cron,
			Running: state.running,
		}

		if !state.lastStartedAt.IsZero() {
			started := state.lastStartedAt
			status.LastStartedAt = &started
		}
		if !state.lastFinishedAt.IsZero() {
			finished := state.lastFinishedAt
			status.LastFinishedAt = &finished
		}
		if state.lastErr != nil {
			status.LastError = state.lastErr.Error()
		}
		if state.scheduled != nil {
			if next := state.scheduled.NextRun(); !next.IsZero() {
				status.NextRun = &next
			}
		}

		statuses = append(statuses, status)
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Name < statuses[j].Name
	})

	return statuses
}

func (s *Scheduler) lookup(name string) (*jobState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.jobs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}

	return state, nil
}

func (s *Scheduler) begin(state *jobState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state.running {
		return false
	}

	state.running = true
	state.lastStartedAt = s.now()
	return true
}

func (s *Scheduler) finish(state *jobState, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state.running = false
	state.lastFinishedAt = s.now()
	state.lastErr = err
}

// run nunca propaga pânico: o gatilho do gocron continua registrado para a próxima janela
func (s *Scheduler) run(ctx context.Context, state *jobState) (err error) {
	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("job", state.job.Name)

	if !s.begin(state) {
		logger.Info("scheduler: job already running in this process, skipping")
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pânico no job %s: %v", state.job.Name, r)
			logger.WithError(err).Error("scheduler: job panicked")
		}
		s.finish(state, err)
	}()

	held, acquired, err := s.locker.TryLock(ctx, state.job.Name, s.lockTTL)
	if err != nil {
		logger.WithError(err).Error("scheduler: could not acquire job lock")
		return fmt.Errorf("erro ao obter lock do job %s: %w", state.job.Name, err)
	}

	if !acquired {
		logger.Info("scheduler: job locked by another instance, skipping")
		return nil
	}

	defer func() {
		if releaseErr := held.Release(ctx); releaseErr != nil {
			logger.WithError(releaseErr).Warn("scheduler: could not release job lock")
		}
	}()

	startedAt := s.now()
	logger.Info("scheduler: job started")

	if err = state.job.Handler(ctx); err != nil {
		logger.WithError(err).WithField("duration", s.now().Sub(startedAt).String()).Error("scheduler: job failed")
		return err
	}

	logger.WithField("duration", s.now().Sub(startedAt).String()).Info("scheduler: job finished")

	return nil
}
