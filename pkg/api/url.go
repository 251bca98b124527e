package api

import "github.com/gorilla/mux"

func Add(router *mux.Router, switcher Switcher) {
	Switch{Switcher: switcher}.Router(router)
	Fdb{Switcher: switcher}.Router(router)
	Frame{Switcher: switcher}.Router(router)
	Statistics{Switcher: switcher}.Router(router)
	Log{}.Router(router)
	Version{}.Router(router)
}
