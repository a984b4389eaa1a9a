// Package addon implements the addon side of the host binding: the base
// addon object, typed sub-instances, and the dispatcher that routes the
// host's function-table calls onto author-implemented hooks.
//
// An addon embeds Base, overrides the hooks it cares about, and wires itself
// up with Register. The host owns the api.Interface record and drives every
// call; this layer adds no locking or ordering of its own and relies on the
// host serializing calls per instance.
package addon
