// Command gfxtrace wires the capture pipeline together for offline use:
// encoding a synthetic call sequence to a trace file, decoding a trace
// file's frames as text, or replaying one through a counting transform
// (§4.4, §9's worked example).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gfxtrace/vktrace/codec"
	"github.com/gfxtrace/vktrace/core/arena"
	"github.com/gfxtrace/vktrace/core/log"
	"github.com/gfxtrace/vktrace/deserializer"
	"github.com/gfxtrace/vktrace/printer"
	"github.com/gfxtrace/vktrace/serializer"
	"github.com/gfxtrace/vktrace/stateblock"
	"github.com/gfxtrace/vktrace/tracker"
	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(ctx, os.Args[2:])
	case "decode":
		err = runDecode(ctx, os.Args[2:])
	case "replay":
		err = runReplay(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.E(ctx, "gfxtrace: %v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: gfxtrace encode <out-file> | decode <trace-file> | replay <trace-file>")
}

// runEncode drives a small synthetic call sequence through a
// serializer.CommandSerializer backed by transform.NewDriver (standing in
// for a real driver, §1's non-goal), then writes the recorded stream to a
// file — the "encode a synthetic call sequence" half of §9's worked
// example.
func runEncode(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	sb := stateblock.New()
	stream := codec.NewStream(codec.DefaultBlockSize)
	s := serializer.NewCommandSerializer(stream, sb)
	s.Next = transform.NewDriver(0)

	var instance vk.Handle
	s.CreateInstance(ctx, &vk.InstanceCreateInfo{
		ApplicationInfo: &vk.ApplicationInfo{ApplicationName: "gfxtrace-encode"},
	}, &instance)
	var device vk.Handle
	s.CreateDevice(ctx, 0, &vk.DeviceCreateInfo{}, &device)
	var buffer vk.Handle
	s.CreateBuffer(ctx, device, &vk.BufferCreateInfo{Size: 4096}, &buffer)
	s.DestroyBuffer(ctx, device, buffer)
	s.DestroyDevice(ctx, device)
	s.DestroyInstance(ctx, instance)

	return os.WriteFile(fs.Arg(0), stream.Encoder(0).Bytes(), 0644)
}

// runDecode reads a whole trace file and prints one structured line per
// frame of each entry point CommandPrinter covers (frames of other entry
// points are replayed without a line), by driving a pipeline of tracker.MinimalStateTracker ->
// printer.CommandPrinter -> an implicit terminal transform.Base (nil Next
// is itself a no-op sink).
func runDecode(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	sb := stateblock.New()
	sink := printer.WriterSink{W: os.Stdout}
	pr := printer.NewCommandPrinter(sink)
	st := tracker.NewMinimalStateTracker(sb)
	st.Next = pr

	d := deserializer.NewCommandDeserializer(st, sb)
	blk := codec.NewBlockFromBytes(raw)
	return d.Run(ctx, codec.NewDecoder([]*codec.Block{blk}, arena.New()))
}

// runReplay decodes a trace file and drives it through
// tracker.MinimalStateTracker into a printer.CommandPrinter backed by a
// countingSink rather than a WriterSink — the "replay it through a
// counting transform" half of §9's worked example — then prints a summary
// of how many calls of each kind CommandPrinter covers were replayed.
func runReplay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	sb := stateblock.New()
	counts := newCountingSink()
	pr := printer.NewCommandPrinter(counts)
	st := tracker.NewMinimalStateTracker(sb)
	st.Next = pr

	d := deserializer.NewCommandDeserializer(st, sb)
	blk := codec.NewBlockFromBytes(raw)
	if err := d.Run(ctx, codec.NewDecoder([]*codec.Block{blk}, arena.New())); err != nil {
		return err
	}
	counts.Summarize(os.Stdout)
	return nil
}
