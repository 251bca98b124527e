package cswitch

import (
	"errors"

	"github.com/luscis/swengine/pkg/schema"
)

var (
	ErrInvalidPorts = errors.New("invalid port count")
	ErrInvalidFrame = errors.New("invalid frame")
	ErrInvalidAge   = errors.New("invalid age")
)

const (
	MinAddress = 1
	MaxSource  = 254
	Broadcast  = 255
)

type Action int

const (
	ActBroadcast Action = iota + 1
	ActFlood
	ActFilter
	ActForward
)

func (a Action) String() string {
	switch a {
	case ActBroadcast:
		return "broadcast"
	case ActFlood:
		return "flood"
	case ActFilter:
		return "filter"
	case ActForward:
		return "forward"
	}
	return "unknown"
}

// Outcome is the forwarding decision for one frame. Port is the egress
// port and is only set for ActForward.
type Outcome struct {
	Action  Action
	Ingress int
	Port    int
}

func NewOutcomeSchema(o Outcome) schema.Outcome {
	return schema.Outcome{
		Action:  o.Action.String(),
		Ingress: o.Ingress,
		Port:    o.Port,
	}
}
