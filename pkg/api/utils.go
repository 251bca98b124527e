package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/luscis/swengine/pkg/libol"
	"github.com/luscis/swengine/pkg/schema"
)

func ResponseJson(w http.ResponseWriter, v interface{}) {
	str, err := json.Marshal(v)
	if err == nil {
		libol.Debug("ResponseJson: %s", str)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(str)
	} else {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func ResponseMsg(w http.ResponseWriter, code int, message string) {
	ret := &schema.Message{
		Code:    code,
		Message: message,
	}
	if code >= http.StatusBadRequest {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(ret)
		return
	}
	ResponseJson(w, ret)
}

func GetData(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

func GetQueryOne(req *http.Request, name string) string {
	query := req.URL.Query()
	if values, ok := query[name]; ok {
		return values[0]
	}
	return ""
}
