package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	LLMCalls          atomic.Int64
	LLMErrors         atomic.Int64
	MatchRequests     atomic.Int64
	KeywordRequests   atomic.Int64
	TailorRequests    atomic.Int64
	ImportRequests    atomic.Int64
	TranslateRequests atomic.Int64
	Fallbacks         atomic.Int64
	StoreWrites       atomic.Int64
	StoreReads        atomic.Int64
}

// Incrementors for the llm boundary and sub-packages.
func IncrLLMCalls()          { metrics.LLMCalls.Add(1) }
func IncrLLMErrors()         { metrics.LLMErrors.Add(1) }
func IncrMatchRequests()     { metrics.MatchRequests.Add(1) }
func IncrKeywordRequests()   { metrics.KeywordRequests.Add(1) }
func IncrTailorRequests()    { metrics.TailorRequests.Add(1) }
func IncrImportRequests()    { metrics.ImportRequests.Add(1) }
func IncrTranslateRequests() { metrics.TranslateRequests.Add(1) }
func IncrFallbacks()         { metrics.Fallbacks.Add(1) }
func IncrStoreWrites()       { metrics.StoreWrites.Add(1) }
func IncrStoreReads()        { metrics.StoreReads.Add(1) }

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"llm_calls":          metrics.LLMCalls.Load(),
		"llm_errors":         metrics.LLMErrors.Load(),
		"match_requests":     metrics.MatchRequests.Load(),
		"keyword_requests":   metrics.KeywordRequests.Load(),
		"tailor_requests":    metrics.TailorRequests.Load(),
		"import_requests":    metrics.ImportRequests.Load(),
		"translate_requests": metrics.TranslateRequests.Load(),
		"fallbacks":          metrics.Fallbacks.Load(),
		"store_writes":       metrics.StoreWrites.Load(),
		"store_reads":        metrics.StoreReads.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"llm_calls", "llm_errors",
		"match_requests", "keyword_requests",
		"tailor_requests", "import_requests", "translate_requests",
		"fallbacks",
		"store_writes", "store_reads",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
