package stateblock

import (
	"github.com/gfxtrace/vktrace/api"
	"github.com/gfxtrace/vktrace/vk"
)

// StateBlock owns one Registry per Vulkan object kind (§4.5).
type StateBlock struct {
	registries map[vk.Kind]*Registry
}

// New constructs an empty StateBlock with a registry for every handle kind.
func New() *StateBlock {
	sb := &StateBlock{registries: map[vk.Kind]*Registry{}}
	for _, k := range vk.AllKinds() {
		sb.registries[k] = NewRegistry(k)
	}
	return sb
}

// Registry returns the registry for kind k.
func (sb *StateBlock) Registry(k vk.Kind) *Registry { return sb.registries[k] }

// Insert registers a freshly-created wrapper of kind k under handle h,
// deriving its dispatch slot from parent when k is dispatchable (§3's
// dispatch fixup invariant). It is the single insertion path used by
// Observer for every vkCreate*/vkAllocate*/vkGetDeviceQueue-shaped call.
func (sb *StateBlock) Insert(h vk.Handle, k vk.Kind, parent *api.Wrapper) *api.Wrapper {
	var dt *api.DispatchTable
	if k.Dispatchable() {
		if parent != nil && parent.Dispatch != nil {
			dt = parent.Dispatch
		} else {
			dt = api.NewDispatchTable(uintptr(h))
		}
	}
	w := api.NewWrapper(h, k, dt)
	sb.registries[k].Create(h, w)
	return w
}

// Erase removes handle h of kind k, matching "Destroy/Free → remove" (§3).
func (sb *StateBlock) Erase(h vk.Handle, k vk.Kind) { sb.registries[k].Erase(h) }

// Get looks up handle h of kind k.
func (sb *StateBlock) Get(h vk.Handle, k vk.Kind) *api.Wrapper { return sb.registries[k].Get(h) }

// Completeness reports, for every kind, whether the registry's key set
// equals live — the check behind §8's state-block-completeness property.
func (sb *StateBlock) Completeness(live map[vk.Kind][]vk.Handle) map[vk.Kind]bool {
	out := map[vk.Kind]bool{}
	for k, r := range sb.registries {
		want := map[vk.Handle]bool{}
		for _, h := range live[k] {
			want[h] = true
		}
		got := map[vk.Handle]bool{}
		for _, h := range r.Handles() {
			got[h] = true
		}
		out[k] = len(want) == len(got)
		if out[k] {
			for h := range want {
				if !got[h] {
					out[k] = false
					break
				}
			}
		}
	}
	return out
}
