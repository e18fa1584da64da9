package statistic

import (
	"fauna/internal/providers"
	"fauna/internal/statistic/interfaces"
	"fauna/internal/structures"
	"sync"

	"github.com/roylee0704/gron"
)

type Scheduler struct {
	config *structures.Config
	logger providers.Logger
	store  interfaces.StoreInterface
	cron   *gron.Cron
	opsMu  sync.Mutex
}

func (s *Scheduler) Init() {
	interval := s.config.Store.SaveInterval
	if interval <= 0 {
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		err := s.store.Flush()
		if err != nil {
			s.logger.Errorf(providers.TypeStore, "Error while persisting data: %s", err)
			return
		}
		s.logger.Debugf(providers.TypeStore, "Flushed store to %s", s.config.Store.Path)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()
	return s.store.Restore()
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeStore, "Persisting store...")
	err := s.store.Flush()
	if err != nil {
		s.logger.Errorf(providers.TypeStore, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, store interfaces.StoreInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config: config,
		logger: logger,
		store:  store,
	}
}
