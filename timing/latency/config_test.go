package latency_test

import (
	"strings"
	"testing"

	"github.com/archlab/rvtom/timing/latency"
)

func TestDefaultTimingConfig(t *testing.T) {
	cfg := latency.DefaultTimingConfig()
	if cfg.IssueWidth != 2 {
		t.Errorf("IssueWidth = %d, want 2", cfg.IssueWidth)
	}
	if cfg.ROBCapacity != 32 {
		t.Errorf("ROBCapacity = %d, want 32", cfg.ROBCapacity)
	}
	if cfg.LoadLatency != 2 || cfg.StoreLatency != 1 {
		t.Errorf("LoadLatency/StoreLatency = %d/%d, want 2/1", cfg.LoadLatency, cfg.StoreLatency)
	}
	if cfg.CacheSets != 32 || cfg.CacheAssociativity != 2 || cfg.CacheBlockSize != 64 {
		t.Errorf("cache geometry = %+v, want 32/2/64", cfg)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	r := strings.NewReader(`{"rob_capacity": 64}`)
	cfg, err := latency.Load(r)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ROBCapacity != 64 {
		t.Errorf("ROBCapacity = %d, want 64", cfg.ROBCapacity)
	}
	if cfg.IssueWidth != 2 {
		t.Errorf("IssueWidth = %d, want unchanged default 2", cfg.IssueWidth)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	r := strings.NewReader(`{not json`)
	if _, err := latency.Load(r); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
