package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/luscis/swengine/pkg/models"
	"github.com/luscis/swengine/pkg/schema"
)

type Statistics struct {
	Switcher Switcher
}

func (h Statistics) Router(router *mux.Router) {
	router.HandleFunc("/api/statistics", h.List).Methods("GET")
	router.HandleFunc("/api/statistics", h.Reset).Methods("DELETE")
}

func (h Statistics) List(w http.ResponseWriter, r *http.Request) {
	items := make([]schema.Statistic, 0, 64)
	for _, s := range h.Switcher.Statistics() {
		items = append(items, models.NewStatisticSchema(s))
	}
	ResponseJson(w, items)
}

func (h Statistics) Reset(w http.ResponseWriter, r *http.Request) {
	h.Switcher.Reset()
	ResponseMsg(w, 0, "")
}
