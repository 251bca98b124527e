package models

import (
	"fmt"
	"time"

	"github.com/luscis/swengine/pkg/libol"
	"github.com/luscis/swengine/pkg/schema"
)

// Fdb is one learned binding of an address to the port it was seen on.
type Fdb struct {
	Address int       `json:"address"`
	Port    int       `json:"port"`
	Learned time.Time `json:"learned"`
}

func (e Fdb) String() string {
	return fmt.Sprintf("%d:%d", e.Address, e.Port)
}

func (e Fdb) UpTime(now time.Time) int64 {
	return int64(now.Sub(e.Learned) / time.Second)
}

func NewFdbSchema(e Fdb, now time.Time) schema.Fdb {
	return schema.Fdb{
		Address: e.Address,
		Port:    e.Port,
		Learned: libol.PrettyClock(e.Learned),
		Uptime:  e.UpTime(now),
	}
}

type Statistic struct {
	Port   int    `json:"port"`
	Frames uint64 `json:"frames"`
}

func NewStatisticSchema(s Statistic) schema.Statistic {
	return schema.Statistic{
		Port:   s.Port,
		Frames: s.Frames,
	}
}
