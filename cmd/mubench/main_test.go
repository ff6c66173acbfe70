package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mubench/internal/misuse/misusetest"
	"mubench/internal/store"
)

// execute runs the CLI in-process and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func testCorpus(t *testing.T) string {
	t.Helper()
	return misusetest.WriteCorpus(t, map[string]string{
		"aclang.1":   misusetest.Meta("aclang", "missing/call"),
		"itext.1":    misusetest.Meta("itext"),
		"jodatime.1": misusetest.Meta("jodatime"),
	})
}

func noConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func TestList_FiltersAndOrders(t *testing.T) {
	data := testCorpus(t)
	out, _, err := execute(t, "list", "--config", noConfig(t), "--data", data,
		"--only", "aclang,itext,jodatime", "--skip", "itext")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != "aclang.1\njodatime.1\n" {
		t.Errorf("output = %q", out)
	}
}

func TestList_EmptyWhiteListSelectsNothing(t *testing.T) {
	data := testCorpus(t)
	out, logs, err := execute(t, "list", "--config", noConfig(t), "--data", data)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != "" {
		t.Errorf("expected no misuses, got %q", out)
	}
	if !strings.Contains(logs, "white list is empty") {
		t.Errorf("expected empty white list warning, got:\n%s", logs)
	}
}

func TestList_FromConfigFile(t *testing.T) {
	data := testCorpus(t)
	cfgPath := filepath.Join(t.TempDir(), "mubench.yaml")
	body := "data_path: " + data + "\nonly: [jodatime]\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := execute(t, "list", "--config", cfgPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != "jodatime.1\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRun_RecordsAndReports(t *testing.T) {
	data := testCorpus(t)
	db := filepath.Join(t.TempDir(), "results.db")
	out, logs, err := execute(t, "run", "--config", noConfig(t), "--log-level", "debug",
		"--data", data, "--only", "aclang,itext", "--db", db)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, logs)
	}
	if !strings.Contains(out, "aclang") || !strings.Contains(out, "itext") {
		t.Errorf("expected stats report, got:\n%s", out)
	}
	if strings.Contains(out, "jodatime") {
		t.Errorf("jodatime must not be selected:\n%s", out)
	}
	for _, want := range []string{"index=1 total=2", "msg=setup component=datareader stage=validate", "msg=teardown component=datareader stage=record"} {
		if !strings.Contains(logs, want) {
			t.Errorf("expected %q in logs:\n%s", want, logs)
		}
	}

	st, err := store.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	runs, err := st.ListRuns()
	if err != nil || len(runs) != 1 {
		t.Fatalf("ListRuns = %v, %v", runs, err)
	}
	if runs[0].Total != 2 || runs[0].Status != store.RunDone {
		t.Errorf("run = %+v", runs[0])
	}

	runsOut, _, err := execute(t, "runs", "--config", noConfig(t), "--db", db, "--report", "markdown")
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if !strings.Contains(runsOut, runs[0].ID) {
		t.Errorf("expected run id in runs output:\n%s", runsOut)
	}
}

func TestRun_NoRecord(t *testing.T) {
	data := testCorpus(t)
	db := filepath.Join(t.TempDir(), "results.db")
	_, _, err := execute(t, "run", "--config", noConfig(t), "--data", data, "--only", "aclang", "--db", db, "--no-record")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(db); !os.IsNotExist(err) {
		t.Errorf("expected no DB with --no-record, stat err = %v", err)
	}
}

func TestRun_SetupFailureIsReturned(t *testing.T) {
	data := testCorpus(t)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	// The DB parent is a regular file, so the record stage cannot open it.
	_, logs, err := execute(t, "run", "--config", noConfig(t), "--data", data, "--only", "aclang",
		"--db", filepath.Join(blocker, "results.db"))
	if err == nil {
		t.Fatal("expected setup error")
	}
	if !strings.Contains(logs, "error in setup") {
		t.Errorf("expected setup error log, got:\n%s", logs)
	}
}

func TestRun_MissingDataDir(t *testing.T) {
	_, _, err := execute(t, "run", "--config", noConfig(t), "--data", filepath.Join(t.TempDir(), "absent"),
		"--only", "a", "--no-record")
	if err == nil {
		t.Fatal("expected error for missing data dir")
	}
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "list", "--config", noConfig(t), "--log-level", "loud")
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestRuns_Empty(t *testing.T) {
	out, _, err := execute(t, "runs", "--config", noConfig(t), "--db", filepath.Join(t.TempDir(), "x.db"))
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if !strings.Contains(out, "No runs recorded.") {
		t.Errorf("output = %q", out)
	}
}
