package internal

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

// StoreRow is one database entry rendered on the inspect page.
type StoreRow struct {
	Key       string
	Namespace string
	Timestamp string
	EntityID  string
	Size      string
}

type PageData struct {
	Prefix string
	Items  []StoreRow
	Counts map[string]int
}

// StartDebugServer exposes the key/value store and pprof on a local
// port. Never enable it on a public interface.
func StartDebugServer(log *slog.Logger, db *badger.DB, port int) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "product:"
		}

		data := PageData{
			Prefix: prefix,
			Counts: make(map[string]int),
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Rewind(); it.Valid(); it.Next() {
				item := it.Item()
				key := string(item.Key())
				data.Counts[keyNamespace(key)]++
				if !strings.HasPrefix(key, prefix) {
					continue
				}
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapRow(key, val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)

	go func() {
		address := fmt.Sprintf("localhost:%d", port)
		log.Info("Debug server listening", "address", address)
		_ = http.ListenAndServe(address, mux)
	}()
}

func keyNamespace(key string) string {
	if i := strings.Index(key, ":"); i > 0 {
		return key[:i]
	}
	return "raw"
}

// mapRow parses the sortable key layout used by the message and
// notification repositories: {ns}:{owner}:{nanos}:{id}.
func mapRow(key string, val []byte) StoreRow {
	row := StoreRow{
		Key:       key,
		Namespace: keyNamespace(key),
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Size:      strconv.Itoa(len(val)) + " bytes",
	}

	parts := strings.Split(key, ":")
	if len(parts) >= 4 {
		if tsNano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			row.Timestamp = time.Unix(0, tsNano).Format("15:04:05")
		}
		row.EntityID = parts[3]
	} else if len(parts) == 2 {
		row.EntityID = parts[1]
	}
	if len(row.EntityID) > 8 {
		row.EntityID = row.EntityID[:8]
	}
	return row
}
