package ledger

import (
	"sync"
	"time"

	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/calendar"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/logger"
)

const (
	// deadlineSkew margen sobre la medianoche exacta: evita que un timer con
	// jitter dispare un instante antes del cambio de día.
	deadlineSkew = time.Second
	// defaultPollInterval cadencia del chequeo de seguridad que recupera
	// deadlines perdidos (p. ej. tras una suspensión del sistema).
	defaultPollInterval = time.Minute
)

// Scheduler detecta en caliente la transición al nuevo día calendario con dos
// triggers independientes que compiten por la misma transición: un timer
// one-shot armado a medianoche + 1s y un poll periódico de seguridad. Ambos
// desembocan en Store.RolloverIfDue, que es idempotente, así que da igual
// cuál llegue primero o que lleguen los dos.
type Scheduler struct {
	store *Store
	log   *logger.Logger
	now   func() time.Time
	poll  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	ticker  *time.Ticker
	done    chan struct{}
	stopped bool
}

// SchedulerOption ajusta el Scheduler (reloj y cadencia inyectables para tests).
type SchedulerOption func(*Scheduler)

// WithSchedulerClock reemplaza la fuente de "ahora".
func WithSchedulerClock(now func() time.Time) SchedulerOption {
	return func(s *Scheduler) { s.now = now }
}

// WithPollInterval cambia la cadencia del chequeo de seguridad.
func WithPollInterval(d time.Duration) SchedulerOption {
	return func(s *Scheduler) { s.poll = d }
}

// NewScheduler construye el scheduler de cierre de día.
func NewScheduler(store *Store, log *logger.Logger, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		store: store,
		log:   log,
		now:   time.Now,
		poll:  defaultPollInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start arma el deadline de medianoche y lanza el poll de seguridad.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}
	s.done = make(chan struct{})
	s.ticker = time.NewTicker(s.poll)
	s.armDeadlineLocked()
	go s.pollLoop()
	s.log.Info().Dur("poll", s.poll).Msg("scheduler de cierre de día iniciado")
}

// armDeadlineLocked arma el timer one-shot para la próxima medianoche local
// más el margen de jitter. El caller sostiene mu.
func (s *Scheduler) armDeadlineLocked() {
	now := s.now()
	wait := calendar.NextMidnight(now).Sub(now) + deadlineSkew
	s.timer = time.AfterFunc(wait, s.onDeadline)
	s.log.Debug().Dur("en", wait).Msg("deadline de medianoche armado")
}

// onDeadline callback del timer de medianoche. Recalcula "hoy" al momento de
// dispararse (nunca usa valores capturados al armarse), ejecuta la transición
// si corresponde y se re-arma para la medianoche siguiente.
func (s *Scheduler) onDeadline() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		// Timer rezagado tras el teardown: no debe mutar estado.
		return
	}
	s.store.RolloverIfDue()
	s.armDeadlineLocked()
}

// pollLoop trigger de seguridad: cada tick recalcula el día y cierra si el
// deadline se perdió (reloj dormido, proceso pausado, etc.).
func (s *Scheduler) pollLoop() {
	for {
		select {
		case <-s.done:
			return
		case <-s.ticker.C:
			s.mu.Lock()
			if !s.stopped {
				s.store.RolloverIfDue()
			}
			s.mu.Unlock()
		}
	}
}

// Stop cancela juntos los dos triggers. Tras volver, ningún callback rezagado
// puede mutar el estado del ledger.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil || s.stopped {
		return
	}
	s.stopped = true
	close(s.done)
	s.timer.Stop()
	s.ticker.Stop()
	s.log.Info().Msg("scheduler de cierre de día detenido")
}
