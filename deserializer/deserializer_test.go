package deserializer

import (
	"context"
	"testing"

	"github.com/gfxtrace/vktrace/codec"
	"github.com/gfxtrace/vktrace/core/arena"
	"github.com/gfxtrace/vktrace/core/binary"
	"github.com/gfxtrace/vktrace/opcode"
	"github.com/gfxtrace/vktrace/stateblock"
	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

// reorderingDriver stands in for a driver that enumerates physical devices
// in a different order than they were recorded in, and records which
// handle CreateDevice was actually called with.
type reorderingDriver struct {
	transform.Base
	enumerated       []vk.Handle
	gotPhysicalDevice vk.Handle
}

func (r *reorderingDriver) EnumeratePhysicalDevices(ctx context.Context, instance vk.Handle, pCount *uint32, pDevices []vk.Handle) vk.Result {
	*pCount = uint32(len(r.enumerated))
	copy(pDevices, r.enumerated)
	return vk.Success
}

func (r *reorderingDriver) CreateDevice(ctx context.Context, physicalDevice vk.Handle, ci *vk.DeviceCreateInfo, pDevice *vk.Handle) vk.Result {
	r.gotPhysicalDevice = physicalDevice
	*pDevice = 1
	return vk.Success
}

// TestEnumeratePhysicalDevicesPairsByIdentityAcrossReordering exercises the
// §8 "physical-device reordering" scenario: two devices recorded as handles
// 10 and 20 with distinct identity triples are re-enumerated as handles 200
// and 100 (driver-assigned order flipped relative to capture), and a
// subsequent vkCreateDevice naming recorded handle 10 must resolve to
// driver handle 100 — the device whose identity actually matches — not to
// the device at the same enumeration index.
func TestEnumeratePhysicalDevicesPairsByIdentityAcrossReordering(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	enc := stream.Encoder(0)
	enc.Lock()

	tok := enc.BeginFrame(uint64(opcode.EnumeratePhysicalDevices), 0)
	w := binary.NewWriter(enc)
	w.Uint64(1)    // instance
	w.Bool(true)   // wantDevices
	w.Uint32(2)    // count
	w.Uint32(2)    // recorded handle count
	w.Uint64(10)   // recorded physical device A
	w.Uint64(20)   // recorded physical device B
	w.Int32(0)     // result
	w.Uint32(2)    // triple count
	w.Uint32(111)  // A's device_id
	w.Uint32(1)    // A's vendor_id
	w.Uint32(1)    // A's driver_version
	w.Uint32(222)  // B's device_id
	w.Uint32(2)    // B's vendor_id
	w.Uint32(1)    // B's driver_version
	enc.FinishFrame(tok)

	tokDev := enc.BeginFrame(uint64(opcode.CreateDevice), 0)
	w2 := binary.NewWriter(enc)
	w2.Uint64(10) // recorded physical device A, referenced by later call
	w2.Uint32(0)  // empty chain (DeviceCreateInfo.Next)
	w2.Uint32(0)  // flags
	w2.Uint32(0)  // queue create info count
	w2.Uint32(0)  // layer count
	w2.Uint32(0)  // extension count
	w2.Uint64(1)  // recorded device handle
	w2.Int32(0)   // result
	enc.FinishFrame(tokDev)
	enc.Unlock()

	dec := codec.NewDecoder(enc.Snapshot(), arena.New())

	identities := map[vk.Handle][3]uint32{
		100: {111, 1, 1},
		200: {222, 2, 1},
	}
	drv := &reorderingDriver{enumerated: []vk.Handle{200, 100}}
	d := NewCommandDeserializer(drv, stateblock.New())
	d.PhysicalDeviceIdentity = func(h vk.Handle) (uint32, uint32, uint32, bool) {
		id, ok := identities[h]
		return id[0], id[1], id[2], ok
	}

	if err := d.Run(context.Background(), dec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if drv.gotPhysicalDevice != 100 {
		t.Fatalf("expected CreateDevice to resolve recorded handle 10 to driver handle 100 by identity, got %v", drv.gotPhysicalDevice)
	}
}

// TestEnumeratePhysicalDevicesFallsBackToIndexOrderWithoutIdentity covers
// §4.4's explicit fallback: with no PhysicalDeviceIdentity lookup wired up,
// pairing is positional.
func TestEnumeratePhysicalDevicesFallsBackToIndexOrderWithoutIdentity(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	enc := stream.Encoder(0)
	enc.Lock()

	tok := enc.BeginFrame(uint64(opcode.EnumeratePhysicalDevices), 0)
	w := binary.NewWriter(enc)
	w.Uint64(1)
	w.Bool(true)
	w.Uint32(1)
	w.Uint32(1)
	w.Uint64(10)
	w.Int32(0)
	w.Uint32(1)
	w.Uint32(0)
	w.Uint32(0)
	w.Uint32(0)
	enc.FinishFrame(tok)

	tokDev := enc.BeginFrame(uint64(opcode.CreateDevice), 0)
	w2 := binary.NewWriter(enc)
	w2.Uint64(10)
	w2.Uint32(0)
	w2.Uint32(0)
	w2.Uint32(0)
	w2.Uint32(0)
	w2.Uint32(0)
	w2.Uint64(1)
	w2.Int32(0)
	enc.FinishFrame(tokDev)
	enc.Unlock()

	dec := codec.NewDecoder(enc.Snapshot(), arena.New())
	drv := &reorderingDriver{enumerated: []vk.Handle{42}}
	d := NewCommandDeserializer(drv, stateblock.New())

	if err := d.Run(context.Background(), dec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if drv.gotPhysicalDevice != 42 {
		t.Fatalf("expected index-order fallback to resolve recorded handle 10 to driver handle 42, got %v", drv.gotPhysicalDevice)
	}
}

func TestReadChainRoundTripsSentinel(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	enc := stream.Encoder(0)
	w := binary.NewWriter(enc)
	w.Uint32(0) // sentinel only: empty chain

	dec := codec.NewDecoder(enc.Snapshot(), arena.New())
	chain := readChain(dec)
	if len(chain) != 0 {
		t.Fatalf("expected empty chain, got %v", chain)
	}
}

func TestReadHandlesEmptySlice(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	enc := stream.Encoder(0)
	w := binary.NewWriter(enc)
	w.Uint32(0)

	dec := codec.NewDecoder(enc.Snapshot(), arena.New())
	hs := readHandles(dec)
	if len(hs) != 0 {
		t.Fatalf("expected no handles, got %v", hs)
	}
}

// TestDispatchSkipsUnknownOpcode exercises the default case in dispatch: a
// frame whose opcode nothing recognises is skipped by its declared payload
// length rather than aborting the whole replay.
func TestDispatchSkipsUnknownOpcode(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	enc := stream.Encoder(0)
	enc.Lock()
	tok := enc.BeginFrame(999999, 0)
	w := binary.NewWriter(enc)
	w.Uint64(0xDEADBEEF)
	w.Uint32(7)
	enc.FinishFrame(tok)
	enc.Unlock()

	// A well-formed CreateInstance frame follows, to confirm the stream
	// resumes correctly after the skip.
	tok2 := enc.BeginFrame(1, 0) // opcode.CreateInstance == 1
	w2 := binary.NewWriter(enc)
	w2.Uint32(0) // empty chain
	w2.Uint32(0) // flags
	w2.Bool(false)
	w2.Uint32(0)
	w2.Uint32(0)
	w2.Uint64(123) // handle
	w2.Int32(0)    // result
	enc.FinishFrame(tok2)

	dec := codec.NewDecoder(enc.Snapshot(), arena.New())
	term := &transform.Base{}
	d := NewCommandDeserializer(term, stateblock.New())
	if err := d.Run(context.Background(), dec); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestReadApplicationInfoNilWhenAbsent(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	enc := stream.Encoder(0)
	w := binary.NewWriter(enc)
	w.Bool(false)

	dec := codec.NewDecoder(enc.Snapshot(), arena.New())
	if got := readApplicationInfo(dec); got != nil {
		t.Fatalf("expected nil ApplicationInfo, got %v", got)
	}
}

func TestReadClearValue(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	enc := stream.Encoder(0)
	w := binary.NewWriter(enc)
	for _, v := range []uint32{9, 8, 7, 6} {
		w.Uint32(v)
	}
	dec := codec.NewDecoder(enc.Snapshot(), arena.New())
	got := readClearValue(dec)
	want := vk.ClearValue{9, 8, 7, 6}
	if *got != want {
		t.Fatalf("got %v, want %v", *got, want)
	}
}
