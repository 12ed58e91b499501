package sink_test

import (
	"bufio"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/banksynth/internal/record"
	"github.com/gyaneshwarpardhi/banksynth/internal/sink"
)

var testDay = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func paymentsNext() func() record.Record {
	r := rand.New(rand.NewSource(1))
	v := record.DefaultVocab()
	return func() record.Record { return record.NewPayment(r, v, testDay) }
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m), "line %d of %s is not valid JSON", n, path)
		require.Contains(t, m, "event_type")
		require.Contains(t, m, "amount")
		n++
	}
	require.NoError(t, sc.Err())
	return n
}

func TestWritePartition_ChunksAndLineCounts(t *testing.T) {
	root := t.TempDir()
	w := &sink.Writer{Root: root, EventsPerFile: 3}

	files, err := w.WritePartition("2024-01-01", record.Payments, 10, paymentsNext())
	require.NoError(t, err)
	require.Equal(t, 4, files)

	dir := filepath.Join(root, "day=2024-01-01", "source=payments")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	total := 0
	for i, want := range []int{3, 3, 3, 1} {
		path := filepath.Join(dir, []string{"part-00000.json", "part-00001.json", "part-00002.json", "part-00003.json"}[i])
		got := countLines(t, path)
		require.Equal(t, want, got, "line count for %s", path)
		total += got
	}
	require.Equal(t, 10, total)
}

func TestWritePartition_SingleFileWhenUnderCap(t *testing.T) {
	root := t.TempDir()
	w := &sink.Writer{Root: root, EventsPerFile: 100}

	files, err := w.WritePartition("2024-01-01", record.Support, 7, func() record.Record {
		return record.NewSupport(rand.New(rand.NewSource(2)), record.DefaultVocab(), testDay)
	})
	require.NoError(t, err)
	require.Equal(t, 1, files)

	path := filepath.Join(root, "day=2024-01-01", "source=support", "part-00000.json")
	require.Equal(t, 7, countLines(t, path))
}

func TestWritePartition_ZeroEventsWritesEmptyFile(t *testing.T) {
	root := t.TempDir()
	w := &sink.Writer{Root: root, EventsPerFile: 10}

	files, err := w.WritePartition("2024-01-01", record.ERP, 0, paymentsNext())
	require.NoError(t, err)
	require.Equal(t, 1, files)

	path := filepath.Join(root, "day=2024-01-01", "source=erp", "part-00000.json")
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}

func TestWritePartition_BackfillsEventType(t *testing.T) {
	root := t.TempDir()
	w := &sink.Writer{Root: root, EventsPerFile: 10}

	next := func() record.Record {
		return &record.CRMEvent{Base: record.Base{
			EventID:      "e-1",
			UserID:       1234,
			Currency:     "USD",
			SourceSystem: record.CRM,
			Timestamp:    testDay,
		}}
	}
	_, err := w.WritePartition("2024-01-01", record.CRM, 1, next)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "day=2024-01-01", "source=crm", "part-00000.json"))
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	require.Equal(t, "event", m["event_type"])
	require.Equal(t, float64(0), m["amount"])
}

func TestWritePartition_OverwritesExistingFile(t *testing.T) {
	root := t.TempDir()
	w := &sink.Writer{Root: root, EventsPerFile: 100}

	_, err := w.WritePartition("2024-01-01", record.Billing, 5, func() record.Record {
		return record.NewBilling(rand.New(rand.NewSource(3)), record.DefaultVocab(), testDay)
	})
	require.NoError(t, err)

	_, err = w.WritePartition("2024-01-01", record.Billing, 2, func() record.Record {
		return record.NewBilling(rand.New(rand.NewSource(4)), record.DefaultVocab(), testDay)
	})
	require.NoError(t, err)

	path := filepath.Join(root, "day=2024-01-01", "source=billing", "part-00000.json")
	require.Equal(t, 2, countLines(t, path))
}

func TestWritePartition_RejectsNonPositiveCap(t *testing.T) {
	w := &sink.Writer{Root: t.TempDir(), EventsPerFile: 0}
	_, err := w.WritePartition("2024-01-01", record.Payments, 10, paymentsNext())
	require.Error(t, err)
}
