package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/luscis/swengine/pkg/models"
	"github.com/luscis/swengine/pkg/schema"
)

type Fdb struct {
	Switcher Switcher
}

func (h Fdb) Router(router *mux.Router) {
	router.HandleFunc("/api/fdb", h.List).Methods("GET")
	router.HandleFunc("/api/fdb", h.Expire).Methods("DELETE")
	router.HandleFunc("/api/fdb/{address}", h.Del).Methods("DELETE")
}

func (h Fdb) List(w http.ResponseWriter, r *http.Request) {
	now := h.Switcher.Now()
	items := make([]schema.Fdb, 0, 256)
	for _, e := range h.Switcher.ListFdb() {
		items = append(items, models.NewFdbSchema(e, now))
	}
	ResponseJson(w, items)
}

func (h Fdb) Expire(w http.ResponseWriter, r *http.Request) {
	age := GetQueryOne(r, "age")
	deleted, err := h.Switcher.Expire(age)
	if err != nil {
		ResponseMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	ResponseJson(w, schema.Expired{Age: age, Deleted: deleted})
}

func (h Fdb) Del(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	address, err := strconv.Atoi(vars["address"])
	if err != nil {
		ResponseMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.Switcher.DelFdb(address) {
		ResponseMsg(w, http.StatusNotFound, vars["address"]+" notFound")
		return
	}
	ResponseMsg(w, 0, "")
}
