package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

// clearEnv 移除 TELLER_* 變數並在測試結束後還原
// godotenv 不會覆蓋已存在的變數 (即使是空字串)，所以必須 Unsetenv
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvLogLevel, EnvLogFormat, EnvJournalPath, EnvMetricsAddr, EnvMetricsNamespace} {
		prev, ok := os.LookupEnv(k)
		_ = os.Unsetenv(k)
		t.Cleanup(func() {
			if ok {
				_ = os.Setenv(k, prev)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.env", "")

	cfg, err := Load(filepath.Join(dir, "nope.yaml"), empty)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "console" {
		t.Fatalf("log defaults = %+v", cfg.Log)
	}
	if cfg.Journal.Path != "" || cfg.Metrics.Addr != "" {
		t.Fatalf("optional features should be off: %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
log:
  level: debug
  format: json
journal:
  path: /tmp/audit.log
metrics:
  addr: ":9102"
`)
	empty := writeFile(t, dir, "empty.env", "")

	cfg, err := Load(path, empty)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log = %+v", cfg.Log)
	}
	// 未在 yaml 中指定的欄位保留預設值
	if len(cfg.Log.OutputPaths) != 1 || cfg.Log.OutputPaths[0] != "stderr" {
		t.Fatalf("output paths = %v", cfg.Log.OutputPaths)
	}
	if cfg.Journal.Path != "/tmp/audit.log" {
		t.Fatalf("journal = %q", cfg.Journal.Path)
	}
	if cfg.Metrics.Addr != ":9102" || cfg.Metrics.Namespace != "teller" {
		t.Fatalf("metrics = %+v", cfg.Metrics)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "log:\n  level: error\n")
	envFile := writeFile(t, dir, "test.env", "TELLER_LOG_LEVEL=info\nTELLER_JOURNAL_PATH=from-dotenv.log\n")
	_ = os.Setenv(EnvMetricsAddr, "127.0.0.1:0")

	cfg, err := Load(path, envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("level = %q want info", cfg.Log.Level)
	}
	if cfg.Journal.Path != "from-dotenv.log" {
		t.Fatalf("journal = %q", cfg.Journal.Path)
	}
	if cfg.Metrics.Addr != "127.0.0.1:0" {
		t.Fatalf("metrics addr = %q", cfg.Metrics.Addr)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.env", "")

	tests := []struct {
		name string
		yaml string
		env  string
	}{
		{"malformed yaml", "log: [", empty},
		{"bad format", "log:\n  format: xml\n", empty},
		{"bad level", "log:\n  level: chatty\n", empty},
		{"metrics without namespace", "metrics:\n  addr: \":9102\"\n  namespace: \"\"\n", empty},
		{"missing env file", "", filepath.Join(dir, "missing.env")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "config.yaml", tt.yaml)
			if _, err := Load(path, tt.env); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
