// Package scheduler contém os serviços de agendamento em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Eveneto/sistema-crm-simples-sub001/infrastructure/repository"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/config"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/usecases/reporting"
)

type CacheInvalidationConfig struct {
	CronSchedule  string
	Enabled       bool
	MaxConcurrent int
}

// CacheInvalidationService compara a marca d'água de alteração de cada tenant
// com a da execução anterior e descarta o cache de quem mudou.
type CacheInvalidationService struct {
	scheduler   *gocron.Scheduler
	dealRepo    repository.DealRepository
	invalidator reporting.CacheInvalidator
	config      CacheInvalidationConfig
	nowFn       func() time.Time

	watermarks map[string]domain.TenantChange

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastInvalidated     int
	lastError           string
}

func NewCacheInvalidationService(
	dealRepo repository.DealRepository,
	invalidator reporting.CacheInvalidator,
	cfg *config.Config,
) *CacheInvalidationService {
	invalidationConfig := CacheInvalidationConfig{
		CronSchedule:  cfg.CacheInvalidation.CronSchedule,  // Default: a cada minuto
		Enabled:       cfg.CacheInvalidation.Enabled,       // Default: desabilitado
		MaxConcurrent: cfg.CacheInvalidation.MaxConcurrent, // Default: 4
	}
	if invalidationConfig.MaxConcurrent <= 0 {
		invalidationConfig.MaxConcurrent = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  invalidationConfig.CronSchedule,
		"max_concurrent": invalidationConfig.MaxConcurrent,
	}).Info("Configuração do agendador de invalidação de cache carregada")

	return &CacheInvalidationService{
		scheduler:   gocron.NewScheduler(time.UTC),
		dealRepo:    dealRepo,
		invalidator: invalidator,
		config:      invalidationConfig,
		nowFn:       time.Now,
		watermarks:  make(map[string]domain.TenantChange),
	}
}

func (s *CacheInvalidationService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de invalidação de cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de invalidação de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunInvalidation(ctx); err != nil {
			logrus.WithError(err).Error("Erro na invalidação de cache")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar invalidação de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de invalidação de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// RunInvalidation executa uma rodada e devolve os tenants invalidados.
// Uma rodada concorrente é ignorada.
func (s *CacheInvalidationService) RunInvalidation(ctx context.Context) ([]string, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Invalidação de cache já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.nowFn()
	s.syncMutex.Unlock()

	invalidated, watermarks, err := s.invalidateChangedTenants(ctx)

	s.syncMutex.Lock()
	if watermarks != nil {
		s.watermarks = watermarks
	}
	s.syncRunning = false
	s.lastSyncCompletedAt = s.nowFn()
	s.lastInvalidated = len(invalidated)
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	return invalidated, err
}

// invalidateChangedTenants devolve os tenants invalidados e as novas marcas d'água.
// Só a rodada em execução escreve em s.watermarks, então a leitura dispensa o lock.
func (s *CacheInvalidationService) invalidateChangedTenants(ctx context.Context) ([]string, map[string]domain.TenantChange, error) {
	changes, err := s.dealRepo.LastChanges(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao buscar marcas d'água de alteração: %w", err)
	}

	current := make(map[string]domain.TenantChange, len(changes))
	for _, change := range changes {
		current[change.TenantID] = change
	}

	moved := changedTenants(s.watermarks, changes)
	if len(moved) == 0 {
		logrus.Debug("Nenhum tenant com alteração desde a última execução")
		return nil, nil, nil
	}

	logrus.WithField("tenants", len(moved)).Info("Invalidando cache de tenants alterados")

	succeeded := make([]bool, len(moved))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrent)

	for i, tenantID := range moved {
		g.Go(func() error {
			if err := s.invalidator.InvalidateTenant(gctx, tenantID); err != nil {
				logrus.WithFields(logrus.Fields{
					"tenant_id": tenantID,
					"error":     err,
				}).Error("Erro ao invalidar cache do tenant")
				return nil
			}
			succeeded[i] = true
			return nil
		})
	}
	_ = g.Wait()

	watermarks := make(map[string]domain.TenantChange, len(s.watermarks))
	for tenantID, change := range s.watermarks {
		watermarks[tenantID] = change
	}

	invalidated := make([]string, 0, len(moved))
	failed := 0
	for i, tenantID := range moved {
		if !succeeded[i] {
			// Sem atualizar a marca d'água o tenant volta na próxima rodada
			failed++
			continue
		}

		invalidated = append(invalidated, tenantID)
		if change, ok := current[tenantID]; ok {
			watermarks[tenantID] = change
		} else {
			delete(watermarks, tenantID)
		}
	}

	if failed > 0 {
		return invalidated, watermarks, fmt.Errorf("falha ao invalidar cache de %d tenant(s)", failed)
	}

	return invalidated, watermarks, nil
}

// changedTenants lista os tenants novos, alterados ou que deixaram de ter dados
func changedTenants(previous map[string]domain.TenantChange, changes []domain.TenantChange) []string {
	moved := make([]string, 0)
	seen := make(map[string]bool, len(changes))

	for _, change := range changes {
		seen[change.TenantID] = true

		last, ok := previous[change.TenantID]
		if !ok || !last.ChangedAt.Equal(change.ChangedAt) || last.Rows != change.Rows {
			moved = append(moved, change.TenantID)
		}
	}

	for tenantID := range previous {
		if !seen[tenantID] {
			moved = append(moved, tenantID)
		}
	}

	return moved
}

// TriggerManualSync dispara uma rodada fora do agendamento.
// Devolve false quando já existe uma rodada em andamento.
func (s *CacheInvalidationService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Invalidação de cache já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando invalidação manual de cache")
	go func() {
		if _, err := s.RunInvalidation(context.WithoutCancel(ctx)); err != nil {
			logrus.WithError(err).Error("Erro na invalidação manual de cache")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *CacheInvalidationService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrent,
		"sync_running":           s.syncRunning,
		"tracked_tenants":        len(s.watermarks),
		"last_invalidated":       s.lastInvalidated,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
