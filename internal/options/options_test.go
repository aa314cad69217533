package options

import (
	"errors"
	"testing"
)

type testConfig struct {
	value int
	name  string
}

func TestApplyOrder(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.value = 1 }),
		NoError(func(c *testConfig) { c.value = 2 }),
		NoError(func(c *testConfig) { c.name = "last" }),
	)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if cfg.value != 2 || cfg.name != "last" {
		t.Errorf("options applied out of order: %+v", cfg)
	}
}

func TestApplyStopsOnError(t *testing.T) {
	cfg := &testConfig{}
	boom := errors.New("boom")

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.value = 1 }),
		New(func(c *testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.value = 99 }),
	)

	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if cfg.value != 1 {
		t.Errorf("options after the failure were applied: %+v", cfg)
	}
}

func TestApplyNoOptions(t *testing.T) {
	if err := Apply(&testConfig{}); err != nil {
		t.Fatalf("Apply with no options failed: %v", err)
	}
}
