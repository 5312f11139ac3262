package cmd

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/scoreboard/internal/config"
	"github.com/Iron-Ham/scoreboard/internal/event"
	"github.com/Iron-Ham/scoreboard/internal/logging"
	"github.com/Iron-Ham/scoreboard/internal/scoreboard"
	"github.com/Iron-Ham/scoreboard/internal/web"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "scoreboard" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "scoreboard")
	}

	cmdMap := make(map[string]*cobra.Command)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = cmd
	}
	for _, name := range []string{"start", "serve", "config", "logs"} {
		if cmdMap[name] == nil {
			t.Errorf("expected subcommand %q not found", name)
		}
	}

	configSubs := make(map[string]bool)
	for _, cmd := range configCmd.Commands() {
		configSubs[cmd.Name()] = true
	}
	for _, name := range []string{"show", "set", "init", "path"} {
		if !configSubs[name] {
			t.Errorf("expected config subcommand %q not found", name)
		}
	}

	if rootCmd.PersistentFlags().ShorthandLookup("c") == nil {
		t.Error("expected -c shorthand for --config")
	}
	if serveCmd.Flags().Lookup("listen") == nil {
		t.Error("expected --listen flag on serve")
	}
}

func TestRunStartRequiresTerminal(t *testing.T) {
	// go test pipes stdout, so the terminal check always fails here.
	err := runStart(startCmd, nil)
	if !errors.Is(err, errNotTerminal) {
		t.Errorf("runStart() error = %v, want errNotTerminal", err)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/home/test/.config/scoreboard/config.yaml"

	if err := writeDefaultConfig(fs, path); err != nil {
		t.Fatalf("writeDefaultConfig() error = %v", err)
	}

	v := viper.New()
	v.SetFs(fs)
	config.SetDefaultsOn(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("generated config does not parse: %v", err)
	}
	cfg, err := config.LoadFrom(v)
	if err != nil {
		t.Fatalf("generated config does not validate: %v", err)
	}
	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Errorf("generated config = %+v, want defaults %+v", cfg, config.Default())
	}

	err = writeDefaultConfig(fs, path)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second writeDefaultConfig() error = %v, want already exists", err)
	}
}

func TestSetConfigValue(t *testing.T) {
	path := "/cfg/config.yaml"

	readBack := func(t *testing.T, fs afero.Fs) *config.Config {
		t.Helper()
		v := viper.New()
		v.SetFs(fs)
		config.SetDefaultsOn(v)
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			t.Fatalf("ReadInConfig() error = %v", err)
		}
		cfg, err := config.LoadFrom(v)
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		return cfg
	}

	t.Run("creates file and keeps earlier values", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		if err := setConfigValue(fs, path, "teams.home_label", "Lions"); err != nil {
			t.Fatalf("setConfigValue() error = %v", err)
		}
		if err := setConfigValue(fs, path, "tui.theme", "slate"); err != nil {
			t.Fatalf("setConfigValue() error = %v", err)
		}

		cfg := readBack(t, fs)
		if cfg.Teams.HomeLabel != "Lions" {
			t.Errorf("home_label = %q, want Lions", cfg.Teams.HomeLabel)
		}
		if cfg.TUI.Theme != "slate" {
			t.Errorf("theme = %q, want slate", cfg.TUI.Theme)
		}
	})

	t.Run("rejects invalid values without writing", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		err := setConfigValue(fs, path, "tui.theme", "neon")
		if err == nil {
			t.Fatal("expected validation error")
		}
		var verrs config.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Errorf("error = %v, want ValidationErrors", err)
		}
		if exists, _ := afero.Exists(fs, path); exists {
			t.Error("invalid value should not create the config file")
		}
	})

	t.Run("rejects duplicate labels", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		if err := setConfigValue(fs, path, "teams.away_label", "home"); err == nil {
			t.Error("expected error for labels that only differ by case")
		}
	})
}

func TestParseConfigValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    any
		wantErr bool
	}{
		{"tui.show_help", "false", false, false},
		{"tui.show_help", "yes", nil, true},
		{"server.read_timeout_seconds", "30", 30, false},
		{"server.read_timeout_seconds", "thirty", nil, true},
		{"teams.home_label", "Lions", "Lions", false},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			got, err := parseConfigValue(tt.key, settableKeys[tt.key], tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseConfigValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseConfigValue() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestConfigSetHelpListsEveryKey(t *testing.T) {
	for key := range settableKeys {
		if !strings.Contains(configSetCmd.Long, key) {
			t.Errorf("config set help does not mention %s", key)
		}
	}
}

func TestSettableKeysMatchDefaults(t *testing.T) {
	v := viper.New()
	config.SetDefaultsOn(v)

	for key := range settableKeys {
		if !v.IsSet(key) {
			t.Errorf("settable key %s has no default", key)
		}
	}
}

func TestRunConfigShow(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := runConfigShow(cmd, nil); err != nil {
		t.Fatalf("runConfigShow() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"# Config file:", "teams:", "home_label: Home", "theme: default", "listen:"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show output missing %q:\n%s", want, out)
		}
	}
}

func TestNewWebServerMetrics(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    int
	}{
		{"enabled", true, http.StatusOK},
		{"disabled", false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Server.Metrics = tt.enabled
			bus := event.NewBus()
			board := scoreboard.New(scoreboard.WithBus(bus))

			srv, err := newWebServer(board, bus, cfg, logging.NopLogger())
			if err != nil {
				t.Fatalf("newWebServer() error = %v", err)
			}
			h := srv.Handler()

			post := httptest.NewRecorder()
			h.ServeHTTP(post, httptest.NewRequest(http.MethodPost, "/score/away/1", nil))

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			if w.Code != tt.want {
				t.Fatalf("GET /metrics = %d, want %d", w.Code, tt.want)
			}
			if tt.enabled && !strings.Contains(w.Body.String(), `scoreboard_activations_total{increment="1",team="away"} 1`) {
				t.Error("metrics should count the activation")
			}
			if tt.enabled && !strings.Contains(w.Body.String(), `scoreboard_score{team="away"} 1`) {
				t.Error("metrics should export the current score")
			}
		})
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Listen = "127.0.0.1:0"
	srv := web.NewServer(scoreboard.New(), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, logging.NopLogger()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve() error = %v, want nil", err)
		}
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("serve() did not return after cancel")
	}
}

func TestServeReportsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	defer func() { _ = ln.Close() }()

	cfg := config.Default()
	cfg.Server.Listen = ln.Addr().String()
	srv := web.NewServer(scoreboard.New(), cfg)

	err = serve(context.Background(), srv, logging.NopLogger())
	if err == nil || !strings.Contains(err.Error(), "http server") {
		t.Errorf("serve() error = %v, want listen failure", err)
	}
}

func writeLines(t *testing.T, path string, lines ...string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestPrintLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), logging.FileName)
	writeLines(t, path+".1",
		`{"time":"2026-10-16T09:00:00Z","level":"INFO","msg":"board opened","component":"tui"}`,
	)
	writeLines(t, path,
		`{"time":"2026-10-16T10:00:00Z","level":"INFO","msg":"score changed","component":"board","team":"home","home":3}`,
		`not json`,
		`{"time":"2026-10-16T10:30:00Z","level":"WARN","msg":"ignoring invalid score change","component":"board","increment":4}`,
	)
	now := time.Date(2026, 10, 16, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		opts    logsOptions
		want    []string
		notWant []string
	}{
		{"all entries with backups", logsOptions{}, []string{"board opened", "score changed", "ignoring invalid"}, nil},
		{"tail keeps newest", logsOptions{tail: 1}, []string{"ignoring invalid"}, []string{"score changed", "board opened"}},
		{"minimum level", logsOptions{level: "warn"}, []string{"ignoring invalid"}, []string{"score changed"}},
		{"since", logsOptions{since: "90m"}, []string{"score changed"}, []string{"board opened"}},
		{"component", logsOptions{component: "tui"}, []string{"board opened"}, []string{"score changed"}},
		{"grep", logsOptions{grep: "changed$"}, []string{"score changed"}, []string{"board opened", "ignoring invalid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printLogs(&buf, path, 3, tt.opts, now); err != nil {
				t.Fatalf("printLogs() error = %v", err)
			}
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(out, notWant) {
					t.Errorf("output should not contain %q:\n%s", notWant, out)
				}
			}
		})
	}

	t.Run("fields are printed", func(t *testing.T) {
		var buf bytes.Buffer
		if err := printLogs(&buf, path, 3, logsOptions{component: "board", tail: 1}, now); err != nil {
			t.Fatalf("printLogs() error = %v", err)
		}
		out := buf.String()
		for _, want := range []string{"[WARN]", "component=board", "increment=4"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})
}

func TestPrintLogsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), logging.FileName)
	now := time.Now()

	t.Run("missing log", func(t *testing.T) {
		var buf bytes.Buffer
		if err := printLogs(&buf, path, 3, logsOptions{}, now); err != nil {
			t.Fatalf("printLogs() error = %v", err)
		}
		if !strings.Contains(buf.String(), "No logs found") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})

	bad := []logsOptions{
		{level: "trace"},
		{since: "yesterday"},
		{grep: "("},
	}
	for _, opts := range bad {
		var buf bytes.Buffer
		if err := printLogs(&buf, path, 3, opts, now); err == nil {
			t.Errorf("printLogs(%+v) should fail", opts)
		}
	}
}

func TestNewTUILoggerRotates(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Dir = t.TempDir()
	cfg.Logging.MaxSizeMB = 1
	cfg.Logging.MaxBackups = 1

	logger, err := newTUILogger(cfg)
	if err != nil {
		t.Fatalf("newTUILogger() error = %v", err)
	}
	padding := strings.Repeat("x", 4096)
	for range 400 {
		logger.Info("filler", "padding", padding)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	main := cfg.Logging.LogFile()
	info, err := os.Stat(main)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if info.Size() > 1024*1024 {
		t.Errorf("log file is %d bytes, want at most 1 MB", info.Size())
	}
	if _, err := os.Stat(main + ".1"); err != nil {
		t.Errorf("expected a rotated backup: %v", err)
	}
	if _, err := os.Stat(main + ".2"); !os.IsNotExist(err) {
		t.Errorf("expected at most one backup, stat .2 = %v", err)
	}
}

func TestNewTUILoggerDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Enabled = false
	cfg.Logging.Dir = t.TempDir()

	logger, err := newTUILogger(cfg)
	if err != nil {
		t.Fatalf("newTUILogger() error = %v", err)
	}
	logger.Info("dropped")
	if _, err := os.Stat(cfg.Logging.LogFile()); !os.IsNotExist(err) {
		t.Errorf("disabled logging should not create a file, stat = %v", err)
	}
}

func TestReadConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(dir, "lions.yaml")
		writeLines(t, path, "teams:", "  home_label: Lions")

		v := viper.New()
		if err := readConfig(v, path); err != nil {
			t.Fatalf("readConfig() error = %v", err)
		}
		if got := v.GetString("teams.home_label"); got != "Lions" {
			t.Errorf("teams.home_label = %q, want Lions", got)
		}
		if got := v.GetString("teams.away_label"); got != "Away" {
			t.Errorf("teams.away_label = %q, want default Away", got)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SCOREBOARD_TEAMS_AWAY_LABEL", "Tigers")
		v := viper.New()
		if err := readConfig(v, ""); err != nil {
			t.Fatalf("readConfig() error = %v", err)
		}
		if got := v.GetString("teams.away_label"); got != "Tigers" {
			t.Errorf("teams.away_label = %q, want Tigers", got)
		}
	})

	t.Run("no config file uses defaults", func(t *testing.T) {
		v := viper.New()
		if err := readConfig(v, ""); err != nil {
			t.Fatalf("readConfig() error = %v", err)
		}
		if got := v.GetInt("logging.max_backups"); got != 3 {
			t.Errorf("logging.max_backups = %d, want 3", got)
		}
	})

	t.Run("missing explicit file", func(t *testing.T) {
		if err := readConfig(viper.New(), filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("readConfig() should fail for a missing explicit file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		writeLines(t, path, "teams: [unclosed")
		if err := readConfig(viper.New(), path); err == nil {
			t.Error("readConfig() should fail for malformed YAML")
		}
	})
}
