package runinfo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const doc = `name: ideal-mof
legend: s1.0-e1.0
seed: 123456
sigma: 1.0
epsilon: 0.5
thermostat: nose-hoover
`

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run_info.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	info, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Name != "ideal-mof" || info.Seed != 123456 {
		t.Errorf("got name %q seed %d", info.Name, info.Seed)
	}
	if info.Sigma != 1.0 || info.Epsilon != 0.5 {
		t.Errorf("got sigma %v epsilon %v", info.Sigma, info.Epsilon)
	}
	if info.Extra["thermostat"] != "nose-hoover" {
		t.Errorf("unmodeled field lost: %v", info.Extra)
	}
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "run_info.yaml"))
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestReadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run_info.yaml")
	if err := os.WriteFile(path, []byte(":\n::bad"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil {
		t.Fatal("malformed document accepted")
	}
}
