package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"warehouse/pkg/ordernumber"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestOrderNumberValidate(t *testing.T) {
	out, err := run(t, "order-number", "validate", "PNK-20241201-0001", "--prefix", "PNK")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "is valid") {
		t.Errorf("output = %q", out)
	}

	if _, err := run(t, "order-number", "validate", "PNK-20241201-0001", "-p", "IO"); err == nil {
		t.Error("expected prefix mismatch to fail")
	}
	if _, err := run(t, "order-number", "validate"); err == nil {
		t.Error("expected missing argument to fail")
	}
}

func TestOrderNumberParse(t *testing.T) {
	out, err := run(t, "order-number", "parse", "PNK-HN-20241201-0042")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var parts ordernumber.Parts
	if err := json.Unmarshal([]byte(out), &parts); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if parts.Prefix != "PNK" || parts.WarehouseCode != "HN" || parts.Sequence != 42 {
		t.Errorf("parts = %+v", parts)
	}

	if _, err := run(t, "order-number", "parse", "garbage"); !ordernumber.IsFormatError(err) {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestCommandTree(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{
		{"serve"}, {"migrate", "up"}, {"migrate", "down"}, {"seed"},
		{"order-number", "next"}, {"job", "run"}, {"job", "list"},
	} {
		cmd, _, err := root.Find(path)
		if err != nil || cmd == root {
			t.Errorf("command %v not found: %v", path, err)
		}
	}
}
