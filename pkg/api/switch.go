package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/luscis/swengine/pkg/schema"
)

type Switch struct {
	Switcher Switcher
}

func (h Switch) Router(router *mux.Router) {
	router.HandleFunc("/api/switch", h.Get).Methods("GET")
}

func (h Switch) Get(w http.ResponseWriter, r *http.Request) {
	ResponseJson(w, schema.Switch{
		Ports:   h.Switcher.Ports(),
		Entries: h.Switcher.Len(),
		Uptime:  h.Switcher.UpTime(),
		Version: schema.NewVersionSchema(),
	})
}
