package pointsto

import (
	"fmt"

	"ptaset/internal/lowir"
)

// MergeWith composes other into e: the analyzed-function set is unioned,
// and every equivalence class of other is folded into e, either by growing
// an existing class that shares an element or by copying the class
// wholesale. other must be a *Engine; anything else is a programmer error
// and this panics, since alias relations computed by different provider
// implementations cannot be merged soundly.
func (e *Engine) MergeWith(other Info) {
	o, ok := other.(*Engine)
	if !ok {
		panic(fmt.Sprintf("pointsto: MergeWith requires a *pointsto.Engine, got %T", other))
	}

	for f := range o.analyzed {
		e.analyzed[f] = struct{}{}
	}

	// Track which of other's sets we've already folded in, by identity, so
	// a set referenced under several keys in o.sets is only processed
	// once.
	done := make(map[*set]bool, len(o.sets))

	for keyPtr, otherSet := range o.sets {
		if done[otherSet] {
			continue
		}
		done[otherSet] = true

		var target *set
		for elem := range otherSet.members {
			if existing, ok := e.sets[elem]; ok {
				target = existing
				break
			}
		}

		if target != nil {
			for elem := range otherSet.members {
				target.members[elem] = struct{}{}
				e.sets[elem] = target
			}
			continue
		}

		// None of this class's members are known to e: copy the class.
		copied := &set{members: make(map[lowir.Value]struct{}, len(otherSet.members))}
		for elem := range otherSet.members {
			copied.members[elem] = struct{}{}
		}
		e.sets[keyPtr] = copied
		for elem := range otherSet.members {
			e.sets[elem] = copied
		}
	}
}
