package bootstrap

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		APIOrigin:  "http://localhost:8080",
		APITimeout: 30 * time.Second,
		FlashKey:   "flash-signing-key",
		CSRFKey:    strings.Repeat("k", 32),
		BaseURL:    "http://localhost:3000",
	}
}

func TestValidateConfig_AcceptsDefaults(t *testing.T) {
	core := &config.CoreConfig{Env: "dev"}
	if err := ValidateConfig(core, validAppConfig(), zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig: %v", err)
	}
}

func TestValidateConfig_RejectsBadAPIOrigin(t *testing.T) {
	core := &config.CoreConfig{Env: "dev"}
	for _, origin := range []string{"", "localhost:8080", "ftp://example.com", "://nope"} {
		cfg := validAppConfig()
		cfg.APIOrigin = origin
		if err := ValidateConfig(core, cfg, zap.NewNop()); err == nil {
			t.Errorf("origin %q: expected error", origin)
		}
	}
}

func TestValidateConfig_ProdRequiresKeys(t *testing.T) {
	core := &config.CoreConfig{Env: "prod"}

	cfg := validAppConfig()
	cfg.CSRFKey = "short"
	if err := ValidateConfig(core, cfg, zap.NewNop()); err == nil {
		t.Error("short csrf key: expected error in prod")
	}

	cfg = validAppConfig()
	cfg.FlashKey = ""
	if err := ValidateConfig(core, cfg, zap.NewNop()); err == nil {
		t.Error("blank flash key: expected error in prod")
	}

	// Dev tolerates both; keys are generated per process.
	dev := &config.CoreConfig{Env: "dev"}
	cfg = validAppConfig()
	cfg.CSRFKey = ""
	cfg.FlashKey = ""
	if err := ValidateConfig(dev, cfg, zap.NewNop()); err != nil {
		t.Errorf("dev with blank keys: %v", err)
	}
}

func TestValidateConfig_RejectsNonPositiveTimeout(t *testing.T) {
	core := &config.CoreConfig{Env: "dev"}
	cfg := validAppConfig()
	cfg.APITimeout = 0
	if err := ValidateConfig(core, cfg, zap.NewNop()); err == nil {
		t.Error("zero timeout: expected error")
	}
}
