package enricher

import (
	"context"
	"fmt"

	"fieldmap/internal/geocode"
	"fieldmap/internal/model"
)

// DefaultMinAddressLen is the minimum address length (in runes) for a record
// to be considered a geocode candidate.
const DefaultMinAddressLen = 5

// ProgressEvent is one enrichment progress update for the UI.
type ProgressEvent struct {
	Percent int    `json:"percent"`
	Status  string `json:"status"`
}

// Stats summarizes one enrichment pass.
type Stats struct {
	Candidates        int `json:"candidates"`        // records eligible for lookup
	DistinctAddresses int `json:"distinctAddresses"` // upstream lookups at most
	Resolved          int `json:"resolved"`          // addresses that got coordinates
}

// Enricher fills missing coordinates on candidate records via the geocode
// resolver. The merge here is the only mutation point for coordinates after
// normalization.
type Enricher struct {
	resolver      *geocode.Resolver
	minAddressLen int
}

// New creates an enricher around a per-run resolver.
func New(resolver *geocode.Resolver, minAddressLen int) *Enricher {
	if minAddressLen <= 0 {
		minAddressLen = DefaultMinAddressLen
	}
	return &Enricher{
		resolver:      resolver,
		minAddressLen: minAddressLen,
	}
}

// isCandidate reports whether a record needs (and can get) a lookup:
// both coordinates absent, a real address, and enough of it to be worth asking.
func (e *Enricher) isCandidate(record *model.CanonicalRecord) bool {
	if record.HasCoordinates() {
		return false
	}
	if record.Address == model.Placeholder {
		return false
	}
	return len([]rune(record.Address)) > e.minAddressLen
}

// Enrich looks up each distinct candidate address once, sequentially, then
// merges resolved coordinates back onto every candidate sharing the address.
// Non-candidate records pass through unchanged. Progress runs 0–100 keyed to
// addresses completed over addresses total.
func (e *Enricher) Enrich(ctx context.Context, records []*model.CanonicalRecord, progress func(ProgressEvent)) (Stats, error) {
	stats := Stats{}

	// Distinct candidate addresses in first-seen order.
	seen := make(map[string]struct{})
	var addresses []string
	for _, record := range records {
		if !e.isCandidate(record) {
			continue
		}
		stats.Candidates++
		if _, ok := seen[record.Address]; ok {
			continue
		}
		seen[record.Address] = struct{}{}
		addresses = append(addresses, record.Address)
	}
	stats.DistinctAddresses = len(addresses)

	if len(addresses) == 0 {
		reportProgress(progress, 100, "주소 조회 대상 없음")
		return stats, nil
	}

	for i, address := range addresses {
		reportProgress(progress, i*100/len(addresses),
			fmt.Sprintf("주소 조회 중 (%d/%d): %s", i+1, len(addresses), address))

		point, err := e.resolver.Lookup(ctx, address)
		if err != nil {
			return stats, err
		}
		if point != nil {
			stats.Resolved++
		}
	}

	// Merge cached results back onto every candidate sharing the address.
	for _, record := range records {
		if !e.isCandidate(record) {
			continue
		}
		if point, ok := e.resolver.Cached(record.Address); ok && point != nil {
			record.SetCoordinates(point.Lat, point.Lon)
		}
	}

	reportProgress(progress, 100,
		fmt.Sprintf("주소 조회 완료: %d/%d건 확인", stats.Resolved, stats.DistinctAddresses))
	return stats, nil
}

// reportProgress clamps and forwards a progress event.
func reportProgress(progress func(ProgressEvent), percent int, status string) {
	if progress == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	progress(ProgressEvent{Percent: percent, Status: status})
}
