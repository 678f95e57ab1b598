package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"

	"github.com/virtualboard/sectionscan/internal/config"
)

func TestRespondPlainAndJSON(t *testing.T) {
	opts := config.New()
	config.SetCurrent(opts)
	defer config.SetCurrent(nil)

	command := &cobra.Command{}
	var buf bytes.Buffer
	command.SetOut(&buf)
	if err := respond(command, opts, true, "hello", nil); err != nil {
		t.Fatalf("respond failed: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Fatalf("expected plain output, got %q", buf.String())
	}

	buf.Reset()
	if err := respond(command, opts, true, "", nil); err != nil || buf.Len() != 0 {
		t.Fatalf("expected no output for empty message: %q %v", buf.String(), err)
	}

	jsonOpts := config.New()
	jsonOpts.JSONOutput = true
	if err := respond(command, jsonOpts, true, "msg", map[string]int{"v": 1}); err != nil {
		t.Fatalf("respond json failed: %v", err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if payload["message"].(string) != "msg" || payload["success"] != true {
		t.Fatalf("unexpected payload: %#v", payload)
	}

	cur, err := options(command)
	if err != nil || cur != opts {
		t.Fatalf("expected current options: %v %v", cur, err)
	}

	command.SetContext(jsonOpts.WithContext(context.Background()))
	cur, err = options(command)
	if err != nil || cur != jsonOpts {
		t.Fatalf("expected context options over current: %v %v", cur, err)
	}
}
