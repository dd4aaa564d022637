package layer

import (
	"context"

	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

// layerLinkStructureType is the sType this layer looks for when walking
// pNext on vkCreateInstance/vkCreateDevice to find the loader's layer-link
// chain link (the "loader-glue for discovering next-layer function
// pointers" itself is out of core scope per §1; this is the one
// chain-walking step the spec still names explicitly in §6).
const layerLinkStructureType = vk.StructureType(0x2e)

// NextLayerLink locates the layer-link chain entry in next, if present,
// and returns its raw payload for the caller to decode the next-layer
// Get-Proc-Addr pointers out of, and false when there is no such entry.
// next itself is neither returned nor modified — advancing past the link
// before calling the downstream constructor is the caller's responsibility,
// since only it knows the real ABI struct this placeholder payload stands
// in for.
func NextLayerLink(next vk.Chain) ([]byte, bool) {
	for _, e := range next {
		if e.SType == layerLinkStructureType {
			return e.Data, true
		}
	}
	return nil, false
}

// Negotiator is a transform overriding the loader hand-off entry points
// (§6): GetInstanceProcAddr/GetDeviceProcAddr answer for the opcode subset
// this build intercepts (opaquely, via names, not a codegen table — that
// table is part of the out-of-scope build-time generator) and otherwise
// forward; the LayerProperties enumerations report exactly this layer.
type Negotiator struct {
	transform.Base
	// Intercepted lists the entry-point names this build answers directly
	// rather than delegating to Next's GetInstanceProcAddr/GetDeviceProcAddr,
	// matching whatever the generated transform.Transform subset covers.
	Intercepted map[string]uintptr
}

// NewNegotiator constructs a Negotiator answering intercepted directly and
// delegating everything else to Next.
func NewNegotiator(intercepted map[string]uintptr) *Negotiator {
	return &Negotiator{Intercepted: intercepted}
}

func (n *Negotiator) GetInstanceProcAddr(ctx context.Context, instance vk.Handle, name string) uintptr {
	if p, ok := n.Intercepted[name]; ok {
		return p
	}
	return n.Base.GetInstanceProcAddr(ctx, instance, name)
}

func (n *Negotiator) GetDeviceProcAddr(ctx context.Context, device vk.Handle, name string) uintptr {
	if p, ok := n.Intercepted[name]; ok {
		return p
	}
	return n.Base.GetDeviceProcAddr(ctx, device, name)
}

func (n *Negotiator) EnumerateInstanceLayerProperties(ctx context.Context, pPropertyCount *uint32, pProperties []vk.LayerProperties) vk.Result {
	*pPropertyCount = 1
	if pProperties != nil && len(pProperties) > 0 {
		pProperties[0] = transform.LayerDescriptor
	}
	return vk.Success
}

func (n *Negotiator) EnumerateDeviceLayerProperties(ctx context.Context, physicalDevice vk.Handle, pPropertyCount *uint32, pProperties []vk.LayerProperties) vk.Result {
	return n.EnumerateInstanceLayerProperties(ctx, pPropertyCount, pProperties)
}
