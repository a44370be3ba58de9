package metrics

import (
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile dumps every metric of gatherer in the node_exporter textfile format.
// A nil gatherer means prometheus.DefaultGatherer.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if path == "" {
		return nil
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create metrics dir")
	}
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return errors.Wrap(err, "write metrics textfile")
	}
	return nil
}
