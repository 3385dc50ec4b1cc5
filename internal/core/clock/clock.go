package clock

import (
	"sync"
	"time"
)

const (
	timeLayout = "15:04:05"
	dateLayout = "Monday, January 2, 2006"
)

// Tick is a single wall-clock update.
type Tick struct {
	At time.Time
}

// Config contains runtime options for Ticker.
type Config struct {
	Interval time.Duration
	Now      func() time.Time
}

// Ticker publishes the wall clock to observers at a fixed interval.
type Ticker struct {
	mu          sync.Mutex
	config      Config
	subscribers []chan Tick
	stopCh      chan struct{}
	running     bool
}

// New creates a Ticker. A non-positive interval defaults to one second.
func New(config Config) *Ticker {
	if config.Interval <= 0 {
		config.Interval = time.Second
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Ticker{config: config}
}

// Now returns the current wall clock.
func (ticker *Ticker) Now() time.Time {
	return ticker.config.Now()
}

// Subscribe registers a new observer channel.
func (ticker *Ticker) Subscribe(buffer int) <-chan Tick {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Tick, buffer)
	ticker.mu.Lock()
	ticker.subscribers = append(ticker.subscribers, ch)
	ticker.mu.Unlock()
	return ch
}

// Start launches the ticking loop.
func (ticker *Ticker) Start() {
	ticker.mu.Lock()
	if ticker.running {
		ticker.mu.Unlock()
		return
	}
	ticker.running = true
	ticker.stopCh = make(chan struct{})
	stopCh := ticker.stopCh
	ticker.mu.Unlock()

	go ticker.run(stopCh)
}

// Stop terminates the ticking loop and closes observers.
func (ticker *Ticker) Stop() {
	ticker.mu.Lock()
	if !ticker.running {
		ticker.mu.Unlock()
		return
	}
	close(ticker.stopCh)
	ticker.running = false
	subscribers := ticker.subscribers
	ticker.subscribers = nil
	ticker.mu.Unlock()

	for _, ch := range subscribers {
		close(ch)
	}
}

func (ticker *Ticker) run(stopCh chan struct{}) {
	timer := time.NewTicker(ticker.config.Interval)
	defer timer.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-timer.C:
			ticker.publish(Tick{At: ticker.config.Now()})
		}
	}
}

func (ticker *Ticker) publish(tick Tick) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if !ticker.running {
		return
	}
	for _, ch := range ticker.subscribers {
		select {
		case ch <- tick:
		default:
		}
	}
}

// FormatTime renders the clock face, e.g. 08:05:09.
func FormatTime(at time.Time) string {
	return at.Format(timeLayout)
}

// FormatDate renders the long date, e.g. Monday, January 2, 2006.
func FormatDate(at time.Time) string {
	return at.Format(dateLayout)
}
