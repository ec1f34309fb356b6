// Package scheduler contém o agendamento da geração periódica do relatório
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/internal/usecases/generating"
)

type Generator interface {
	Generate(ctx context.Context) (*generating.Result, error)
}

type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	generator           Generator
	config              ReportSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastError           error
}

func NewReportSyncService(generator Generator, cfg *config.Config) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: cfg.Schedule.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.Schedule.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador do relatório carregada")

	return &ReportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		generator: generator,
		config:    syncConfig,
	}
}

func (s *ReportSyncService) Enabled() bool {
	return s.config.SyncEnabled
}

func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de geração do relatório desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de geração do relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.GenerateReport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração agendada do relatório")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração do relatório: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// GenerateReport executa uma geração completa. Se outra geração estiver em
// andamento a chamada é ignorada.
func (s *ReportSyncService) GenerateReport(ctx context.Context) error {
	if !s.claim() {
		logrus.Warn("Geração do relatório já está em execução")
		return nil
	}

	logrus.Info("Iniciando geração agendada do relatório")
	return s.runGeneration(ctx)
}

// TriggerManualSync inicia manualmente uma geração em segundo plano.
// Retorna false quando já existe uma geração em andamento.
func (s *ReportSyncService) TriggerManualSync(ctx context.Context) bool {
	if !s.claim() {
		logrus.Info("Geração do relatório já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando geração manual do relatório")
	go func() {
		if err := s.runGeneration(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração manual do relatório")
		}
	}()
	return true
}

// claim marca a geração como em andamento; false se já estava
func (s *ReportSyncService) claim() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// runGeneration executa o gerador. Quem chama já fez o claim.
func (s *ReportSyncService) runGeneration(ctx context.Context) error {
	result, err := s.generator.Generate(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = err
	if err != nil {
		return err
	}
	s.lastRunID = result.RunID

	logrus.WithField("report_run_id", result.RunID).Info("Geração do relatório concluída")

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	lastError := ""
	if s.lastError != nil {
		lastError = s.lastError.Error()
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_error":             lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
