package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/luscis/swengine/pkg/schema"
	cswitch "github.com/luscis/swengine/pkg/switch"
)

type Frame struct {
	Switcher Switcher
}

func (h Frame) Router(router *mux.Router) {
	router.HandleFunc("/api/frame", h.Add).Methods("POST")
}

func (h Frame) Add(w http.ResponseWriter, r *http.Request) {
	frame := &schema.Frame{}
	if err := GetData(r, frame); err != nil {
		ResponseMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.Switcher.Input(frame.Port, frame.Source, frame.Destination)
	if err != nil {
		ResponseMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	ResponseJson(w, cswitch.NewOutcomeSchema(o))
}
