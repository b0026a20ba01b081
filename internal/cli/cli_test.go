package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jamesWalker55/video-subtitles-explorer/internal/bridge"
	"github.com/jamesWalker55/video-subtitles-explorer/internal/media"
)

const sampleVTT = `WEBVTT

00:19.920 --> 00:21.120
Hello.

00:21.120 --> 00:23.680
Hello, hi everyone.
`

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// runs the root command with an isolated config and captures stdout
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	for _, key := range []string{"VSE_OUTPUT_FORMAT", "VSE_EXPORT_FORMAT", "VSE_PROBE_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("output_format = \"json\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--config", cfgPath))

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLocateCommand(t *testing.T) {
	dir := t.TempDir()
	videoPath := filepath.Join(dir, "talk.mp4")
	vttPath := filepath.Join(dir, "talk.vtt")
	writeFile(t, vttPath, sampleVTT)

	out, err := runCLI(t, "locate", videoPath)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}

	var resp bridge.LocateResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if resp.Path != vttPath {
		t.Errorf("expected %s, got %s", vttPath, resp.Path)
	}

	out, err = runCLI(t, "locate", videoPath, "--format", "text")
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if strings.TrimSpace(out) != vttPath {
		t.Errorf("expected plain path output, got %q", out)
	}
}

func TestLocateCommandNotFound(t *testing.T) {
	out, err := runCLI(t, "locate", filepath.Join(t.TempDir(), "none.mp4"))
	if err == nil || err.Error() != "no subtitle file found" {
		t.Fatalf("expected not found error, got %v", err)
	}

	var resp bridge.LocateResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if resp.Error != "no subtitle file found" {
		t.Errorf("expected error in response, got %+v", resp)
	}
}

func TestReadCommand(t *testing.T) {
	vttPath := filepath.Join(t.TempDir(), "talk.vtt")
	writeFile(t, vttPath, sampleVTT)

	out, err := runCLI(t, "read", vttPath)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var resp bridge.ReadResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if len(resp.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(resp.Cues))
	}
	if resp.Cues[1].Text != "Hello, hi everyone." {
		t.Errorf("unexpected text %q", resp.Cues[1].Text)
	}
	if resp.Cues[0].Start.Seconds != 19 || resp.Cues[0].Start.Nanos != 920_000_000 {
		t.Errorf("unexpected start %+v", resp.Cues[0].Start)
	}
}

func TestReadCommandText(t *testing.T) {
	vttPath := filepath.Join(t.TempDir(), "talk.vtt")
	writeFile(t, vttPath, sampleVTT)

	out, err := runCLI(t, "read", vttPath, "-f", "text")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	for _, want := range []string{"(2 cues)", "00:00:19.920 --> 00:00:21.120", "Hello, hi everyone."} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestReadCommandInvalid(t *testing.T) {
	vttPath := filepath.Join(t.TempDir(), "bad.vtt")
	writeFile(t, vttPath, "WEBVTT\n00:01 --> 00:02\n")

	_, err := runCLI(t, "read", vttPath)
	if err == nil || err.Error() != "invalid WebVTT header (line 2)" {
		t.Errorf("expected header error, got %v", err)
	}
}

func TestReadCommandRejectsFormat(t *testing.T) {
	vttPath := filepath.Join(t.TempDir(), "talk.vtt")
	writeFile(t, vttPath, sampleVTT)

	_, err := runCLI(t, "read", vttPath, "-f", "yaml")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("expected unsupported format error, got %v", err)
	}
}

func TestOpenCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "talk.mp4.vtt"), sampleVTT)

	out, err := runCLI(t, "open", filepath.Join(dir, "talk.mp4"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	var resp bridge.ReadResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if len(resp.Cues) != 2 {
		t.Errorf("expected 2 cues, got %d", len(resp.Cues))
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	vttPath := filepath.Join(dir, "talk.vtt")
	writeFile(t, vttPath, sampleVTT)

	out, err := runCLI(t, "export", vttPath, "--to", "srt")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "Cues: 2") {
		t.Errorf("unexpected output %q", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "talk.srt"))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := "1\n00:00:19,920 --> 00:00:21,120\nHello.\n\n" +
		"2\n00:00:21,120 --> 00:00:23,680\nHello, hi everyone.\n\n"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}

func TestExportCommandRefusesOverwrite(t *testing.T) {
	vttPath := filepath.Join(t.TempDir(), "talk.vtt")
	writeFile(t, vttPath, sampleVTT)

	_, err := runCLI(t, "export", vttPath, "--to", "vtt")
	if err == nil || !strings.Contains(err.Error(), "overwrite") {
		t.Errorf("expected overwrite error, got %v", err)
	}
}

func TestCheckCommandWithoutSubtitle(t *testing.T) {
	_, err := runCLI(t, "check", filepath.Join(t.TempDir(), "talk.mp4"))
	if err == nil || err.Error() != "no subtitle file found" {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestReadCommandTextError(t *testing.T) {
	vttPath := filepath.Join(t.TempDir(), "bad.vtt")
	writeFile(t, vttPath, "0:01 --> 0:02\n")

	out, err := runCLI(t, "read", vttPath, "--format", "text")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(out, "invalid WebVTT header (line 1)") {
		t.Errorf("expected rendered error in output, got %q", out)
	}
}

func TestExportCommandASS(t *testing.T) {
	dir := t.TempDir()
	vttPath := filepath.Join(dir, "talk.vtt")
	writeFile(t, vttPath, sampleVTT)

	if _, err := runCLI(t, "export", vttPath, "--to", "ass"); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "talk.ass"))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(data), "Dialogue: 0,0:00:19.92,0:00:21.12,Default,,0,0,0,,Hello.\n") {
		t.Errorf("unexpected ASS output:\n%s", data)
	}
}

func TestExportCommandInfersFormatFromOutput(t *testing.T) {
	dir := t.TempDir()
	vttPath := filepath.Join(dir, "talk.vtt")
	writeFile(t, vttPath, sampleVTT)

	tests := []struct {
		output string
		want   string
	}{
		{"out/talk.ass", "[Script Info]"},
		{"out/talk.srt", "1\n00:00:19,920 --> 00:00:21,120\n"},
		{"out/talk.webvtt", "WEBVTT\n\n00:00:19.920 --> 00:00:21.120\n"},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			outPath := filepath.Join(dir, tt.output)
			if _, err := runCLI(t, "export", vttPath, "-o", outPath); err != nil {
				t.Fatalf("export failed: %v", err)
			}
			data, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatalf("failed to read output: %v", err)
			}
			if !strings.HasPrefix(string(data), tt.want) {
				t.Errorf("expected output to start with %q, got %q", tt.want, string(data))
			}
		})
	}
}

func TestOutputFlagOnlyOnExport(t *testing.T) {
	vttPath := filepath.Join(t.TempDir(), "talk.vtt")
	writeFile(t, vttPath, sampleVTT)

	if _, err := runCLI(t, "read", vttPath, "-o", "elsewhere.json"); err == nil ||
		!strings.Contains(err.Error(), "unknown shorthand flag") {
		t.Errorf("expected read to reject -o, got %v", err)
	}
}

func TestCheckResult(t *testing.T) {
	info := &media.Info{
		FormatName: "matroska,webm",
		Duration:   90 * time.Second,
		HasVideo:   true,
		HasAudio:   true,
		Subtitles:  1,
	}
	report := media.Report{Cues: 5, Inverted: []int{0, 3}, PastEnd: []int{4}, LastEnd: 95 * time.Second}

	got := newCheckResult("talk.vtt", info, report)
	want := checkResult{
		Subtitle:  "talk.vtt",
		Container: "matroska,webm",
		Duration:  90,
		HasVideo:  true,
		HasAudio:  true,
		Embedded:  1,
		Cues:      5,
		Inverted:  []int{1, 4},
		PastEnd:   []int{5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("check result mismatch (-want +got):\n%s", diff)
	}

	var out bytes.Buffer
	writeCheckText(&out, "talk.vtt", info, report)
	for _, line := range []string{
		"Container: matroska,webm (video: true, audio: true, embedded subtitles: 1)",
		"Inverted cues: [1 4]",
		"Cues past end: [5]",
	} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("expected %q in output:\n%s", line, out.String())
		}
	}
}
