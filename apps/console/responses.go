package console

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/xdoubleu/essentia/v2/pkg/parse"
)

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		panic(err)
	}
}

func writeCSV(w http.ResponseWriter, filename string, data string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().
		Set("Content-Disposition", "attachment; filename=\""+filename+"\"")

	if _, err := w.Write([]byte(data)); err != nil {
		panic(err)
	}
}

func idParam(r *http.Request) (int64, error) {
	raw, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(raw, 10, 64)
}
