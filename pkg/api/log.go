package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/luscis/swengine/pkg/libol"
	"github.com/luscis/swengine/pkg/schema"
)

type Log struct {
}

func (l Log) Router(router *mux.Router) {
	router.HandleFunc("/api/log", l.List).Methods("GET")
	router.HandleFunc("/api/log", l.Add).Methods("POST")
}

func (l Log) List(w http.ResponseWriter, r *http.Request) {
	ResponseJson(w, schema.NewLogSchema())
}

func (l Log) Add(w http.ResponseWriter, r *http.Request) {
	log := &schema.Log{}
	if err := GetData(r, log); err != nil {
		ResponseMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	libol.SetLevel(log.Level)
	ResponseMsg(w, 0, "")
}
