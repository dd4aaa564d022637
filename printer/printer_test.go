package printer

import (
	"context"
	"strings"
	"testing"

	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

type capturingSink struct{ lines []string }

func (s *capturingSink) Print(line string) { s.lines = append(s.lines, line) }

// forwardingTerminal lets the test observe what CommandPrinter actually
// forwarded, distinguishing "prints a line" from "mutates the call".
type forwardingTerminal struct {
	transform.Base
	lastInstanceInfo *vk.InstanceCreateInfo
}

func (f *forwardingTerminal) CreateInstance(ctx context.Context, pCreateInfo *vk.InstanceCreateInfo, pInstance *vk.Handle) vk.Result {
	f.lastInstanceInfo = pCreateInfo
	*pInstance = 55
	return vk.Success
}

func TestCommandPrinterForwardsUnchangedAndLogsOneLine(t *testing.T) {
	sink := &capturingSink{}
	term := &forwardingTerminal{}
	p := NewCommandPrinter(sink)
	p.Next = term
	ctx := context.Background()

	info := &vk.InstanceCreateInfo{EnabledLayerNames: []string{"a"}}
	var instance vk.Handle
	res := p.CreateInstance(ctx, info, &instance)

	if !res.Succeeded() {
		t.Fatalf("CreateInstance: %v", res)
	}
	if instance != 55 {
		t.Fatalf("expected the forwarded handle to reach the caller unchanged, got %v", instance)
	}
	if term.lastInstanceInfo != info {
		t.Fatalf("expected CommandPrinter to forward the exact same create-info pointer, not a copy")
	}
	if len(sink.lines) != 1 {
		t.Fatalf("expected exactly one printed line, got %v", sink.lines)
	}
	if !strings.Contains(sink.lines[0], "vkCreateInstance") || !strings.Contains(sink.lines[0], "instance=55") {
		t.Fatalf("unexpected line: %q", sink.lines[0])
	}
}

func TestCommandPrinterCmdDrawHasNoResultButStillLogs(t *testing.T) {
	sink := &capturingSink{}
	p := NewCommandPrinter(sink)
	p.Next = &transform.Base{}
	p.CmdDraw(context.Background(), 1, 3, 1, 0, 0)

	if len(sink.lines) != 1 {
		t.Fatalf("expected one line, got %v", sink.lines)
	}
	if !strings.Contains(sink.lines[0], "vkCmdDraw") || !strings.Contains(sink.lines[0], "vertexCount=3") {
		t.Fatalf("unexpected line: %q", sink.lines[0])
	}
}

func TestWriterSinkWritesNewlineTerminatedLine(t *testing.T) {
	var buf strings.Builder
	sink := WriterSink{W: &buf}
	sink.Print("hello")
	if buf.String() != "hello\n" {
		t.Fatalf("got %q", buf.String())
	}
}
