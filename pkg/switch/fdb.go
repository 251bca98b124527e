package cswitch

import (
	"container/list"
	"time"

	"github.com/luscis/swengine/pkg/models"
)

type learnKind int

const (
	learnKeep learnKind = iota
	learnNew
	learnMove
)

func (k learnKind) String() string {
	switch k {
	case learnNew:
		return "new"
	case learnMove:
		return "move"
	default:
		return "keep"
	}
}

// FdbTable maps an address to the port it was learned on. Iteration
// follows insertion order; a moved address goes to the back.
type FdbTable struct {
	macs  map[int]*list.Element
	order *list.List
}

func NewFdbTable() *FdbTable {
	return &FdbTable{
		macs:  make(map[int]*list.Element, 256),
		order: list.New(),
	}
}

func (t *FdbTable) Len() int {
	return len(t.macs)
}

func (t *FdbTable) Get(address int) (models.Fdb, bool) {
	if e, ok := t.macs[address]; ok {
		return *e.Value.(*models.Fdb), true
	}
	return models.Fdb{}, false
}

// Learn records address on port. An address already known on the same
// port keeps its original learned time.
func (t *FdbTable) Learn(address, port int, now time.Time) learnKind {
	kind := learnNew
	if e, ok := t.macs[address]; ok {
		if e.Value.(*models.Fdb).Port == port {
			return learnKeep
		}
		t.order.Remove(e)
		kind = learnMove
	}
	t.macs[address] = t.order.PushBack(&models.Fdb{
		Address: address,
		Port:    port,
		Learned: now,
	})
	return kind
}

func (t *FdbTable) Del(address int) bool {
	e, ok := t.macs[address]
	if !ok {
		return false
	}
	t.order.Remove(e)
	delete(t.macs, address)
	return true
}

// Expire drops every entry learned strictly before cutoff and returns
// their addresses in table order.
func (t *FdbTable) Expire(cutoff time.Time) []int {
	deletes := make([]int, 0, 8)
	for e := t.order.Front(); e != nil; {
		next := e.Next()
		fdb := e.Value.(*models.Fdb)
		if fdb.Learned.Before(cutoff) {
			t.order.Remove(e)
			delete(t.macs, fdb.Address)
			deletes = append(deletes, fdb.Address)
		}
		e = next
	}
	return deletes
}

func (t *FdbTable) List() []models.Fdb {
	items := make([]models.Fdb, 0, t.order.Len())
	for e := t.order.Front(); e != nil; e = e.Next() {
		items = append(items, *e.Value.(*models.Fdb))
	}
	return items
}
