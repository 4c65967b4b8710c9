package importer

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"fieldmap/internal/aggregate"
	"fieldmap/internal/enricher"
	"fieldmap/internal/parser"
	"fieldmap/internal/store"
)

// Coordinator drives one ingestion run: decode → normalize → enrich → commit.
// Only one run may be active at a time; a second upload while one is in
// flight is rejected with an error event.
type Coordinator struct {
	store       *store.Store
	newEnricher func() *enricher.Enricher
	runGuard    sync.Mutex
}

// NewCoordinator creates an ingestion coordinator. newEnricher builds a fresh
// enricher (and with it a fresh geocode cache) for every run.
func NewCoordinator(store *store.Store, newEnricher func() *enricher.Enricher) *Coordinator {
	return &Coordinator{
		store:       store,
		newEnricher: newEnricher,
	}
}

// Options for one ingestion run.
type Options struct {
	FilePath string // workbook on disk
	Filename string // original upload name, for the report
}

// ProgressEvent is one ingestion progress update.
type ProgressEvent struct {
	Type      string    `json:"type"` // start/info/progress/warning/error/done
	Message   string    `json:"message"`
	Percent   int       `json:"percent,omitempty"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Report summarizes one completed ingestion run.
type Report struct {
	Filename           string        `json:"filename"`
	TotalRows          int           `json:"totalRows"`
	ImportedRows       int           `json:"importedRows"`
	DroppedRows        int           `json:"droppedRows"`
	CandidateAddresses int           `json:"candidateAddresses"`
	GeocodedAddresses  int           `json:"geocodedAddresses"`
	MissingProjects    int           `json:"missingProjects"` // projects without coordinates after enrichment
	Duration           time.Duration `json:"duration"`
}

// Import runs one ingestion asynchronously and returns its progress channel.
// The channel is closed when the run ends, whatever the outcome.
func (c *Coordinator) Import(ctx context.Context, opts Options) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(ctx, opts, progressChan)
	}()

	return progressChan
}

func (c *Coordinator) doImport(ctx context.Context, opts Options, progressChan chan ProgressEvent) {
	if !c.runGuard.TryLock() {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   "이미 진행 중인 업로드가 있습니다",
			Timestamp: time.Now(),
		})
		return
	}
	defer c.runGuard.Unlock()

	startTime := time.Now()
	filename := opts.Filename
	if filename == "" {
		filename = filepath.Base(opts.FilePath)
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "start",
		Message:   "업로드 파일 처리 시작",
		Data:      map[string]string{"filename": filename},
		Timestamp: time.Now(),
	})

	// Decode. A failure here is fatal to this run and leaves the previously
	// committed dataset untouched.
	rawRecords, err := ReadWorkbook(opts.FilePath)
	if err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("파일을 읽을 수 없습니다: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	normalized := parser.Normalize(rawRecords)
	c.sendProgress(progressChan, ProgressEvent{
		Type: "info",
		Message: fmt.Sprintf("%d행 중 %d건 인식 (%d건 현장명 없음)",
			normalized.TotalRows, len(normalized.Records), normalized.DroppedRows),
		Timestamp: time.Now(),
	})

	// Enrich missing coordinates. Each progress callback becomes one event.
	enr := c.newEnricher()
	stats, err := enr.Enrich(ctx, normalized.Records, func(p enricher.ProgressEvent) {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "progress",
			Message:   p.Status,
			Percent:   p.Percent,
			Timestamp: time.Now(),
		})
	})
	if err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("주소 조회가 중단되었습니다: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	// Commit and report.
	c.store.Replace(filename, normalized.Records)

	summary := aggregate.Summarize(normalized.Records)
	report := Report{
		Filename:           filename,
		TotalRows:          normalized.TotalRows,
		ImportedRows:       len(normalized.Records),
		DroppedRows:        normalized.DroppedRows,
		CandidateAddresses: stats.DistinctAddresses,
		GeocodedAddresses:  stats.Resolved,
		MissingProjects:    summary.MissingCoordinates,
		Duration:           time.Since(startTime),
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "done",
		Message:   "업로드 완료",
		Percent:   100,
		Data:      report,
		Timestamp: time.Now(),
	})
}

// sendProgress sends an event without blocking; a full channel drops it.
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
	}
}
