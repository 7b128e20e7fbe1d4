package stats

import (
	"sync"
	"time"
)

type Snapshot struct {
	Frames         uint64  `json:"frames"`
	FPS            uint64  `json:"fps"`
	Uptime         float64 `json:"uptime"`
	ProgramReloads uint64  `json:"program_reloads"`
	WsClients      int     `json:"ws_clients"`
}

// Stats is updated by the render loop and read by the API.
type Stats struct {
	cur Snapshot

	frameCounter uint64
	frameTimer   time.Duration
	start        time.Time

	mu sync.Mutex
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	return s
}

// Update accounts for one presented frame, dt after the previous one.
func (s *Stats) Update(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur.Frames++
	s.frameCounter++
	s.frameTimer += dt
	if s.frameTimer > 1*time.Second {
		s.cur.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = 0
	}
}

func (s *Stats) Reloaded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.ProgramReloads++
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.WsClients = n
}

// Snapshot returns a copy that is safe to encode while the render loop
// keeps updating s.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.cur
	snap.Uptime = time.Since(s.start).Seconds()
	return snap
}
