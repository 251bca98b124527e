package api

import (
	"time"

	"github.com/luscis/swengine/pkg/models"
	cswitch "github.com/luscis/swengine/pkg/switch"
	"github.com/prometheus/client_golang/prometheus"
)

type Switcher interface {
	Ports() int
	Len() int
	UpTime() int64
	Now() time.Time
	Input(port, source, destination int) (cswitch.Outcome, error)
	ListFdb() []models.Fdb
	DelFdb(address int) bool
	Expire(age string) ([]int, error)
	Statistics() []models.Statistic
	Reset()
	Registry() *prometheus.Registry
}
