package output

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestStreamingOutput_Title(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	out.Title("Testing for supported ciphers:")

	got := buf.String()
	want := "\nTesting for supported ciphers:\n"
	if got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}

func TestStreamingOutput_OK(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	out.OK("cipherlist_NULL  not offered")

	got := buf.String()
	if !strings.Contains(got, "[ OK ]") {
		t.Errorf("OK() should contain OK tag, got %q", got)
	}
	if !strings.Contains(got, "cipherlist_NULL") {
		t.Errorf("OK() should contain message, got %q", got)
	}
}

func TestStreamingOutput_Warning(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	out.Warning("potential issue")

	got := buf.String()
	if !strings.Contains(got, "[WARN]") {
		t.Errorf("Warning() should contain WARN tag, got %q", got)
	}
}

func TestStreamingOutput_Vuln(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	out.Vuln("cipherlist_EXPORT  offered")

	got := buf.String()
	if !strings.Contains(got, "[VULN]") {
		t.Errorf("Vuln() should contain VULN tag, got %q", got)
	}
}

func TestStreamingOutput_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	out.Error("failure occurred")

	got := buf.String()
	if !strings.Contains(got, "[ERROR]") {
		t.Errorf("Error() should contain ERROR tag, got %q", got)
	}
}

func TestStreamingOutput_ThreadSafety(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			out.Info("message %d", n)
		}(i)
	}

	wg.Wait()

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 100 {
		t.Errorf("Expected at least 100 lines, got %d", len(lines))
	}
}

func TestBufferedOutput_Levels(t *testing.T) {
	out := NewBufferedOutput()

	out.Title("section")
	out.OK("line 1")
	out.Warning("line 2")
	out.Vuln("line 3")

	lines := out.Lines()
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}

	want := []string{LevelTitle, LevelOK, LevelWarning, LevelVuln}
	for i, level := range want {
		if lines[i].Level != level {
			t.Errorf("Line %d level = %q, want %q", i, lines[i].Level, level)
		}
	}
}

func TestBufferedOutput_Flush(t *testing.T) {
	out := NewBufferedOutput()
	out.OK("message 1")
	out.Vuln("message 2")

	buf := &bytes.Buffer{}
	out.Flush(buf)

	output := buf.String()
	if !strings.Contains(output, "[ OK ] message 1") {
		t.Errorf("Flush output should contain OK line, got %q", output)
	}
	if !strings.Contains(output, "[VULN] message 2") {
		t.Errorf("Flush output should contain VULN line, got %q", output)
	}
}

func TestBufferedOutput_FlushMatchesStreaming(t *testing.T) {
	streamed := &bytes.Buffer{}
	s := NewStreamingOutput(streamed)
	s.Title("head")
	s.OK("fine")
	s.Warning("hmm")

	b := NewBufferedOutput()
	b.Title("head")
	b.OK("fine")
	b.Warning("hmm")
	flushed := &bytes.Buffer{}
	b.Flush(flushed)

	if streamed.String() != flushed.String() {
		t.Errorf("Buffered flush = %q, streaming = %q", flushed.String(), streamed.String())
	}
}

func TestBufferedOutput_ThreadSafety(t *testing.T) {
	out := NewBufferedOutput()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			out.Info("message %d", n)
		}(i)
	}

	wg.Wait()

	lines := out.Lines()
	if len(lines) != 100 {
		t.Errorf("Expected 100 lines, got %d", len(lines))
	}
}

func TestBufferedOutput_LinesReturnsCopy(t *testing.T) {
	out := NewBufferedOutput()
	out.Info("original")

	lines1 := out.Lines()
	lines1[0].Message = "modified"

	lines2 := out.Lines()
	if lines2[0].Message != "original" {
		t.Errorf("Lines() should return a copy, original was modified")
	}
}

func TestNewStreamingOutput_NilWriter(t *testing.T) {
	out := NewStreamingOutput(nil)
	if out.writer == nil {
		t.Error("NewStreamingOutput(nil) should default to os.Stdout")
	}
}

func TestStreamingOutput_Printf(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	out.Printf("formatted: %d", 42)

	got := buf.String()
	want := "formatted: 42"
	if got != want {
		t.Errorf("Printf() = %q, want %q", got, want)
	}
}
