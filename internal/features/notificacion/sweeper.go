package notificacion

import (
	"context"

	"homestock/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper runs the stock check on a cron schedule.
type Sweeper struct {
	cron    *cron.Cron
	service NotificacionService
	spec    string
	logger  *zap.Logger
}

func NewSweeper(service NotificacionService, cfg *config.Config, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		cron:    cron.New(),
		service: service,
		spec:    cfg.NotifSweepCron,
		logger:  logger,
	}
}

func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.service.VerificarProductos(context.Background()); err != nil {
			s.logger.Error("stock sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("stock sweep scheduled", zap.String("cron", s.spec))
	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}
