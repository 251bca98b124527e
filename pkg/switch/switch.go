package cswitch

import (
	"fmt"
	"sync"
	"time"

	"github.com/luscis/swengine/pkg/libol"
	"github.com/luscis/swengine/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Switch is a learning switch with a fixed number of ports. All methods
// are serialized by one lock.
type Switch struct {
	lock    sync.Mutex
	ports   int
	frames  []uint64
	fdb     *FdbTable
	now     func() time.Time
	newTime time.Time
	out     *libol.SubLogger
	metrics *Metrics
}

// Resolution of learned times and aging cutoffs.
const Resolution = time.Millisecond

// NewSwitch creates a switch with ports numbered 1..ports and an empty
// table. A count below one is ErrInvalidPorts.
func NewSwitch(ports int) (*Switch, error) {
	if ports < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPorts, ports)
	}
	s := &Switch{
		ports:   ports,
		frames:  make([]uint64, ports),
		fdb:     NewFdbTable(),
		now:     time.Now,
		out:     libol.NewSubLogger("switch"),
		metrics: NewMetrics(),
	}
	s.newTime = s.now()
	s.out.Info("Switch.New %d ports", ports)
	return s, nil
}

// SetClock replaces the wall clock used for learning and aging.
func (s *Switch) SetClock(now func() time.Time) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.now = now
}

// Ports returns the port count given at creation.
func (s *Switch) Ports() int {
	return s.ports
}

// Now reads the switch clock.
func (s *Switch) Now() time.Time {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.now()
}

func (s *Switch) stamp() time.Time {
	return s.now().Truncate(Resolution)
}

func (s *Switch) UpTime() int64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return int64(s.now().Sub(s.newTime) / time.Second)
}

func (s *Switch) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.fdb.Len()
}

func (s *Switch) Registry() *prometheus.Registry {
	return s.metrics.registry
}

func (s *Switch) valid(port, source, destination int) error {
	if port < 1 || port > s.ports {
		return fmt.Errorf("%w: port %d not in [1, %d]", ErrInvalidFrame, port, s.ports)
	}
	if source < MinAddress || source > MaxSource {
		return fmt.Errorf("%w: source %d not in [%d, %d]", ErrInvalidFrame, source, MinAddress, MaxSource)
	}
	if destination < MinAddress || destination > Broadcast {
		return fmt.Errorf("%w: destination %d not in [%d, %d]", ErrInvalidFrame, destination, MinAddress, Broadcast)
	}
	return nil
}

func (s *Switch) count(port int) {
	s.frames[port-1]++
	s.metrics.Frame(port)
}

func (s *Switch) flood(from int) {
	for port := 1; port <= s.ports; port++ {
		if port != from {
			s.count(port)
		}
	}
}

func (s *Switch) learn(port, source int) {
	kind := s.fdb.Learn(source, port, s.stamp())
	switch kind {
	case learnNew:
		s.out.Event("Switch.Learn: %d on %d", source, port)
	case learnMove:
		s.out.Event("Switch.Learn: %d moved to %d", source, port)
	}
	s.metrics.Learn(kind)
	s.metrics.Entries(s.fdb.Len())
}

// Input receives a frame on port. The source is learned before the
// destination is looked up, so a frame addressed to its own source is
// filtered.
func (s *Switch) Input(port, source, destination int) (Outcome, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.valid(port, source, destination); err != nil {
		s.metrics.Invalid()
		s.out.Debug("Switch.Input: %s", err)
		return Outcome{}, err
	}
	s.count(port)
	s.learn(port, source)

	o := Outcome{Ingress: port}
	if destination == Broadcast {
		s.flood(port)
		o.Action = ActBroadcast
	} else if fdb, ok := s.fdb.Get(destination); !ok {
		s.flood(port)
		o.Action = ActFlood
	} else if fdb.Port == port {
		o.Action = ActFilter
	} else {
		s.count(fdb.Port)
		o.Action = ActForward
		o.Port = fdb.Port
	}
	s.metrics.Decision(o.Action)
	if s.out.Has(libol.FLOW) {
		s.out.Flow("Switch.Input: %d>%d on %d %s %d", source, destination, port, o.Action, o.Port)
	}
	return o, nil
}

// ListFdb returns a copy of the table in insertion order.
func (s *Switch) ListFdb() []models.Fdb {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.fdb.List()
}

// Statistics returns the frame count of every port, port 1 first.
func (s *Switch) Statistics() []models.Statistic {
	s.lock.Lock()
	defer s.lock.Unlock()
	items := make([]models.Statistic, 0, s.ports)
	for i, frames := range s.frames {
		items = append(items, models.Statistic{Port: i + 1, Frames: frames})
	}
	return items
}

// Reset zeroes the frame counters and keeps the table.
func (s *Switch) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()
	for i := range s.frames {
		s.frames[i] = 0
	}
	s.out.Info("Switch.Reset: statistics cleared")
}

// Expire deletes entries older than age, given as "<N>s" or "<N>min".
// Times are compared at Resolution, so "0s" keeps what was learned in
// the current millisecond.
func (s *Switch) Expire(age string) ([]int, error) {
	d, err := ParseAge(age)
	if err != nil {
		return nil, err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.expire(s.stamp().Add(-d)), nil
}

// ExpireBefore deletes entries learned strictly before cutoff.
func (s *Switch) ExpireBefore(cutoff time.Time) []int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.expire(cutoff.Truncate(Resolution))
}

func (s *Switch) expire(cutoff time.Time) []int {
	deletes := s.fdb.Expire(cutoff)
	for _, d := range deletes {
		s.out.Event("Switch.Expire: delete %d", d)
	}
	s.metrics.Expired(len(deletes), s.fdb.Len())
	s.out.Debug("Switch.Expire before %s delete %d", cutoff.Format(libol.SimpleTime), len(deletes))
	return deletes
}

// DelFdb deletes one address and reports whether it was present.
func (s *Switch) DelFdb(address int) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	ok := s.fdb.Del(address)
	if ok {
		s.out.Event("Switch.DelFdb: delete %d", address)
		s.metrics.Entries(s.fdb.Len())
	}
	return ok
}
