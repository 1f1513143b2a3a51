package engine

import (
	"sync"
	"time"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/domain"
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/network"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/api"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
)

// GameService - владелец инстанса и единственная горутина, которая
// его трогает. Команды приходят через канал, снимки уходят в хаб.
type GameService struct {
	Cfg Config
	Hub *network.Hub

	CommandChan chan api.ClientCommand

	mu   sync.Mutex
	inst *Instance
	quit chan struct{}
}

func NewService(cfg Config) *GameService {
	return &GameService{
		Cfg:         cfg,
		Hub:         network.NewHub(),
		CommandChan: make(chan api.ClientCommand, 64),
		inst:        NewInstance(cfg),
		quit:        make(chan struct{}),
	}
}

// Start запускает игровой цикл в отдельной горутине.
func (s *GameService) Start() {
	go s.run()
	logger.Log.Info("Game service started")
}

// Stop останавливает игровой цикл.
func (s *GameService) Stop() {
	close(s.quit)
}

// ProcessCommand толкает команду в игровой цикл, не блокируясь:
// переполненная очередь роняет команду (клиент перешлет).
func (s *GameService) ProcessCommand(cmd api.ClientCommand) {
	select {
	case s.CommandChan <- cmd:
	default:
		logger.Log.Warn("Command queue full, dropping command")
	}
}

// Snapshot строит снимок текущего состояния (для INIT и debug-ручек).
func (s *GameService) Snapshot() api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inst.BuildSnapshot()
}

// Instance отдает инстанс для debug-эндпоинтов. Читатель обязан
// относиться к нему как к моментальному слепку.
func (s *GameService) Instance() *Instance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inst
}

func (s *GameService) run() {
	for {
		select {
		case <-s.quit:
			logger.Log.Info("Game service stopped")
			return

		case cmd := <-s.CommandChan:
			s.mu.Lock()
			spent := s.inst.HandleCommand(cmd)
			if spent {
				s.inst.Advance()
			}
			snapshot := s.inst.BuildSnapshot()
			s.mu.Unlock()

			s.Hub.Broadcast(snapshot)
			s.drainParticles()
		}
	}
}

// drainParticles докручивает анимацию частиц с темпом SecondsToWait
// на кадр, рассылая промежуточные снимки. Пока идет анимация, команды
// копятся в очереди.
func (s *GameService) drainParticles() {
	frame := time.Duration(domain.SecondsToWait * float64(time.Second))

	for {
		s.mu.Lock()
		if s.inst.RunState != domain.StateDrawParticles {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		time.Sleep(frame)

		s.mu.Lock()
		s.inst.StepParticles()
		snapshot := s.inst.BuildSnapshot()
		s.mu.Unlock()

		s.Hub.Broadcast(snapshot)
	}
}
