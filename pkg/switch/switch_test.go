package cswitch

import (
	"errors"
	"testing"
	"time"

	"github.com/luscis/swengine/pkg/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Add(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestSwitch(t *testing.T, ports int) (*Switch, *fakeClock) {
	s, err := NewSwitch(ports)
	require.Nil(t, err)
	c := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.SetClock(c.Now)
	return s, c
}

func frames(s *Switch) []uint64 {
	values := make([]uint64, 0, s.Ports())
	for _, st := range s.Statistics() {
		values = append(values, st.Frames)
	}
	return values
}

func TestSwitch_New(t *testing.T) {
	for _, n := range []int{1, 4, 48} {
		s, err := NewSwitch(n)
		assert.Nil(t, err)
		assert.Equal(t, n, s.Ports(), "be the same.")
		assert.Equal(t, make([]uint64, n), frames(s), "be the same.")
		assert.Equal(t, 0, s.Len(), "be the same.")
		assert.Empty(t, s.ListFdb())
	}
	for _, n := range []int{0, -5} {
		s, err := NewSwitch(n)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, ErrInvalidPorts), "be the same.")
	}
}

func TestSwitch_Statistics(t *testing.T) {
	s, _ := newTestSwitch(t, 3)
	_, _ = s.Input(2, 10, 20)
	stats := s.Statistics()
	assert.Equal(t, []models.Statistic{
		{Port: 1, Frames: 1},
		{Port: 2, Frames: 1},
		{Port: 3, Frames: 1},
	}, stats, "be the same.")
}

func TestSwitch_InputInvalid(t *testing.T) {
	s, _ := newTestSwitch(t, 4)
	cases := [][3]int{
		{0, 10, 20},
		{5, 10, 20},
		{1, 0, 20},
		{1, 255, 20},
		{1, 10, 0},
		{1, 10, 256},
		{-1, -1, -1},
	}
	for _, c := range cases {
		o, err := s.Input(c[0], c[1], c[2])
		assert.True(t, errors.Is(err, ErrInvalidFrame), "%v rejected.", c)
		assert.Equal(t, Outcome{}, o, "be the same.")
	}
	assert.Equal(t, []uint64{0, 0, 0, 0}, frames(s), "no counter changed.")
	assert.Equal(t, 0, s.Len(), "no entry learned.")
	assert.Equal(t, float64(len(cases)), testutil.ToFloat64(s.metrics.invalid), "be the same.")
}

func TestSwitch_InputUnknown(t *testing.T) {
	s, _ := newTestSwitch(t, 4)
	o, err := s.Input(1, 10, 20)
	assert.Nil(t, err)
	assert.Equal(t, Outcome{Action: ActFlood, Ingress: 1}, o, "be the same.")
	assert.Equal(t, []uint64{1, 1, 1, 1}, frames(s), "be the same.")

	fdb := s.ListFdb()
	require.Len(t, fdb, 1)
	assert.Equal(t, 10, fdb[0].Address, "be the same.")
	assert.Equal(t, 1, fdb[0].Port, "be the same.")
}

func TestSwitch_InputForward(t *testing.T) {
	s, _ := newTestSwitch(t, 4)
	_, _ = s.Input(1, 10, 20)
	o, err := s.Input(2, 20, 10)
	assert.Nil(t, err)
	assert.Equal(t, Outcome{Action: ActForward, Ingress: 2, Port: 1}, o, "be the same.")
	assert.Equal(t, []uint64{2, 2, 1, 1}, frames(s), "be the same.")

	fdb := s.ListFdb()
	require.Len(t, fdb, 2)
	assert.Equal(t, "10:1", fdb[0].String(), "be the same.")
	assert.Equal(t, "20:2", fdb[1].String(), "be the same.")
}

func TestSwitch_InputFilter(t *testing.T) {
	s, _ := newTestSwitch(t, 4)
	o, err := s.Input(1, 10, 10)
	assert.Nil(t, err)
	assert.Equal(t, Outcome{Action: ActFilter, Ingress: 1}, o, "learned before lookup.")
	assert.Equal(t, []uint64{1, 0, 0, 0}, frames(s), "be the same.")

	_, _ = s.Input(3, 30, 255)
	o, _ = s.Input(3, 10, 30)
	assert.Equal(t, ActFilter, o.Action, "10 moved to 3, 30 is on 3.")
}

func TestSwitch_InputBroadcast(t *testing.T) {
	s, _ := newTestSwitch(t, 4)
	_, _ = s.Input(2, 20, 10)
	_, _ = s.Input(1, 10, 20)
	before := frames(s)

	o, err := s.Input(3, 30, Broadcast)
	assert.Nil(t, err)
	assert.Equal(t, Outcome{Action: ActBroadcast, Ingress: 3}, o, "be the same.")
	after := frames(s)
	for i := range after {
		assert.Equal(t, before[i]+1, after[i], "port %d gets one.", i+1)
	}
	assert.Equal(t, 3, s.Len(), "be the same.")
	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.decisions.WithLabelValues("broadcast")), "be the same.")
}

func TestSwitch_Learn(t *testing.T) {
	s, c := newTestSwitch(t, 4)
	first := c.Now()
	_, _ = s.Input(1, 10, 255)
	_, _ = s.Input(2, 20, 255)

	c.Add(10 * time.Second)
	_, _ = s.Input(1, 10, 255)
	fdb := s.ListFdb()
	assert.Equal(t, first, fdb[0].Learned, "same port keeps learned time.")
	assert.Equal(t, 10, fdb[0].Address, "order kept.")

	c.Add(10 * time.Second)
	_, _ = s.Input(3, 10, 255)
	fdb = s.ListFdb()
	require.Len(t, fdb, 2)
	assert.Equal(t, 20, fdb[0].Address, "be the same.")
	assert.Equal(t, models.Fdb{Address: 10, Port: 3, Learned: c.Now()}, fdb[1], "moved entry replaced.")
	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.learns.WithLabelValues("move")), "be the same.")
	assert.Equal(t, float64(2), testutil.ToFloat64(s.metrics.entries), "be the same.")
}

func TestSwitch_Expire(t *testing.T) {
	s, c := newTestSwitch(t, 4)
	_, _ = s.Input(1, 10, 255)
	c.Add(30 * time.Second)
	_, _ = s.Input(2, 20, 255)
	c.Add(30 * time.Second)
	_, _ = s.Input(3, 30, 255)

	deleted, err := s.Expire("60s")
	assert.Nil(t, err)
	assert.Empty(t, deleted, "learned at cutoff is kept.")

	deleted, err = s.Expire("30s")
	assert.Nil(t, err)
	assert.Equal(t, []int{10}, deleted, "be the same.")

	c.Add(2 * time.Minute)
	deleted, err = s.Expire("1min")
	assert.Nil(t, err)
	assert.Equal(t, []int{20, 30}, deleted, "table order.")
	assert.Equal(t, 0, s.Len(), "be the same.")
	assert.Equal(t, float64(3), testutil.ToFloat64(s.metrics.expired), "be the same.")
}

func TestSwitch_ExpireNow(t *testing.T) {
	s, _ := newTestSwitch(t, 2)
	_, _ = s.Input(1, 10, 255)
	_, _ = s.Input(2, 20, 255)
	deleted, err := s.Expire("0s")
	assert.Nil(t, err)
	assert.Empty(t, deleted, "be the same.")
	assert.Equal(t, 2, s.Len(), "be the same.")
}

func TestSwitch_ExpireSameMillisecond(t *testing.T) {
	s, c := newTestSwitch(t, 4)
	c.Add(300 * time.Microsecond)
	_, _ = s.Input(1, 10, 20)
	c.Add(500 * time.Microsecond)
	deleted, err := s.Expire("0s")
	assert.Nil(t, err)
	assert.Empty(t, deleted, "be the same.")

	c.Add(200 * time.Microsecond)
	deleted, err = s.Expire("0s")
	assert.Nil(t, err)
	assert.Equal(t, []int{10}, deleted, "next millisecond.")
}

func TestSwitch_LearnedResolution(t *testing.T) {
	s, c := newTestSwitch(t, 2)
	start := c.Now()
	c.Add(999 * time.Microsecond)
	_, _ = s.Input(1, 10, 255)
	assert.Equal(t, start, s.ListFdb()[0].Learned, "be the same.")
	assert.Equal(t, c.Now(), s.Now(), "be the same.")
}

func TestSwitch_ExpireInvalid(t *testing.T) {
	s, c := newTestSwitch(t, 2)
	_, _ = s.Input(1, 10, 255)
	c.Add(time.Hour)
	for _, age := range []string{"abc", "5", "5hr", "", "s", "min", "-5s", "5 s", "5m", "5mins"} {
		deleted, err := s.Expire(age)
		assert.True(t, errors.Is(err, ErrInvalidAge), "%q rejected.", age)
		assert.Nil(t, deleted)
	}
	assert.Equal(t, 1, s.Len(), "table unchanged.")
}

func TestSwitch_ExpireBefore(t *testing.T) {
	s, c := newTestSwitch(t, 2)
	_, _ = s.Input(1, 10, 255)
	assert.Empty(t, s.ExpireBefore(c.Now()))
	assert.Empty(t, s.ExpireBefore(c.Now().Add(time.Microsecond)), "same millisecond.")
	assert.Equal(t, []int{10}, s.ExpireBefore(c.Now().Add(Resolution)), "be the same.")
}

func TestSwitch_Reset(t *testing.T) {
	s, _ := newTestSwitch(t, 2)
	_, _ = s.Input(1, 10, 20)
	s.Reset()
	assert.Equal(t, []uint64{0, 0}, frames(s), "be the same.")
	assert.Equal(t, 1, s.Len(), "table kept.")
}

func TestSwitch_DelFdb(t *testing.T) {
	s, _ := newTestSwitch(t, 2)
	_, _ = s.Input(1, 10, 20)
	assert.True(t, s.DelFdb(10))
	assert.False(t, s.DelFdb(10))
	assert.Equal(t, 0, s.Len(), "be the same.")
}

func TestSwitch_UpTime(t *testing.T) {
	s, err := NewSwitch(1)
	require.Nil(t, err)
	start := time.Now()
	s.SetClock(func() time.Time { return start.Add(90 * time.Second) })
	assert.GreaterOrEqual(t, s.UpTime(), int64(89))
}
