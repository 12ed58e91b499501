package sink

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gyaneshwarpardhi/banksynth/internal/metrics"
	"github.com/gyaneshwarpardhi/banksynth/internal/record"
)

// Writer writes day/source partitions of newline-delimited JSON under Root.
// Layout: <root>/day=<YYYY-MM-DD>/source=<name>/part-<00000..>.json.
type Writer struct {
	Root          string
	EventsPerFile int
}

// WritePartition pulls n records from next and writes them into size-bounded
// part files for the given day and source, overwriting existing files. It
// returns the number of files written; a zero-event request still produces
// one empty part file. The line count across all files equals n exactly.
func (w *Writer) WritePartition(day string, source record.Source, n int, next func() record.Record) (int, error) {
	dir := filepath.Join(w.Root, "day="+day, "source="+string(source))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create partition dir %s: %w", dir, err)
	}

	perFile := w.EventsPerFile
	if perFile <= 0 {
		return 0, fmt.Errorf("events per file must be positive, got %d", perFile)
	}
	files := (n + perFile - 1) / perFile
	if files < 1 {
		files = 1
	}

	start := time.Now()
	remaining := n
	for i := 0; i < files; i++ {
		count := remaining
		if count > perFile {
			count = perFile
		}
		path := filepath.Join(dir, fmt.Sprintf("part-%05d.json", i))
		size, err := writeFile(path, count, next)
		if err != nil {
			return i, err
		}
		remaining -= count
		metrics.FilesWritten.Inc()
		metrics.BytesWritten.Add(float64(size))
		slog.Info("wrote partition file", "events", count, "path", path)
	}
	metrics.EventsGenerated.WithLabelValues(string(source)).Add(float64(n))
	metrics.PartitionWriteDuration.Observe(time.Since(start).Seconds())
	return files, nil
}

func writeFile(path string, count int, next func() record.Record) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	enc := json.NewEncoder(bw)
	for i := 0; i < count; i++ {
		rec := next()
		if c := rec.Common(); c.EventType == "" {
			c.EventType = "event"
		}
		if err := enc.Encode(rec); err != nil {
			f.Close()
			return 0, fmt.Errorf("encode event for %s: %w", path, err)
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return 0, fmt.Errorf("flush %s: %w", path, err)
	}
	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}
	if err := f.Close(); err != nil {
		return size, fmt.Errorf("close %s: %w", path, err)
	}
	return size, nil
}
