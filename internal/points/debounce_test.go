package points

import (
	"sync"
	"testing"
	"time"
)

type recordSink struct {
	mu      sync.Mutex
	records []Record
}

func (s *recordSink) write(record Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

func (s *recordSink) snapshot() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.records...)
}

func TestDebouncedWriter_BatchesRapidWrites(t *testing.T) {
	sink := &recordSink{}
	writer := newDebouncedWriter(50*time.Millisecond, sink.write)

	writer.Schedule(Record{TodayPoints: 10})
	writer.Schedule(Record{TodayPoints: 20})
	writer.Schedule(Record{TodayPoints: 30})

	time.Sleep(250 * time.Millisecond)

	records := sink.snapshot()
	if len(records) != 1 {
		t.Fatalf("got %d writes, want 1", len(records))
	}
	if records[0].TodayPoints != 30 {
		t.Errorf("wrote TodayPoints = %d, want the last scheduled value 30", records[0].TodayPoints)
	}
}

func TestDebouncedWriter_FlushWritesPendingImmediately(t *testing.T) {
	sink := &recordSink{}
	writer := newDebouncedWriter(time.Hour, sink.write)

	writer.Schedule(Record{TodayPoints: 42})
	writer.Flush()

	records := sink.snapshot()
	if len(records) != 1 || records[0].TodayPoints != 42 {
		t.Fatalf("after Flush got %v, want one write of 42", records)
	}

	// Flushing again must not repeat the write.
	writer.Flush()
	if got := len(sink.snapshot()); got != 1 {
		t.Errorf("got %d writes after second Flush, want 1", got)
	}
}

func TestDebouncedWriter_ZeroDelayWritesSynchronously(t *testing.T) {
	sink := &recordSink{}
	writer := newDebouncedWriter(0, sink.write)

	writer.Schedule(Record{TodayPoints: 7})

	records := sink.snapshot()
	if len(records) != 1 || records[0].TodayPoints != 7 {
		t.Fatalf("got %v, want an immediate write of 7", records)
	}
}
