package builtins

import (
	"uosteam/alias"
	"uosteam/host"
	"uosteam/values"
)

// RegisterAliases wires the handler-backed dynamic aliases named in :
// backpack, bank, lefthand, righthand, mount (sticky), self, last,
// lasttarget, lastobject, enemy, friend. These depend on live host state,
// which is why they live here rather than in alias.RegisterDefaults (which
// only knows the two pure sentinels, ground/any).
func RegisterAliases(store *alias.Store, caps host.Capabilities, st *State) {
	store.SetHandler(values.KindSerial, "self", func() (values.Value, bool) {
		return caps.Player.Serial(), true
	})

	store.SetHandler(values.KindSerial, "backpack", func() (values.Value, bool) {
		return handBacked(caps, "Backpack")
	})
	store.SetHandler(values.KindSerial, "bank", func() (values.Value, bool) {
		return handBacked(caps, "BankBox")
	})
	store.SetHandler(values.KindSerial, "lefthand", func() (values.Value, bool) {
		s, ok := caps.Player.FindItemByHand("left")
		return s, ok
	})
	store.SetHandler(values.KindSerial, "righthand", func() (values.Value, bool) {
		s, ok := caps.Player.FindItemByHand("right")
		return s, ok
	})

	store.SetHandler(values.KindSerial, "mount", func() (values.Value, bool) {
		flags := caps.Player.Flags()
		if flags.IsMounted {
			if s, ok := handBacked(caps, "Mount"); ok {
				st.RememberMount(s.(values.Serial))
				return s, true
			}
		}
		if s, ok := st.LastMount(); ok {
			return s, true
		}
		return nil, false
	})

	store.SetHandler(values.KindSerial, "last", func() (values.Value, bool) {
		if st.Last.Val == 0 {
			return nil, false
		}
		return st.Last, true
	})
	store.SetHandler(values.KindSerial, "lasttarget", func() (values.Value, bool) {
		if st.LastTarget.Val == 0 {
			return nil, false
		}
		return st.LastTarget, true
	})
	store.SetHandler(values.KindSerial, "lastobject", func() (values.Value, bool) {
		if st.LastObject.Val == 0 {
			return nil, false
		}
		return st.LastObject, true
	})
	store.SetHandler(values.KindSerial, "enemy", func() (values.Value, bool) {
		if st.Enemy.Val == 0 {
			return nil, false
		}
		return st.Enemy, true
	})
	store.SetHandler(values.KindSerial, "friend", func() (values.Value, bool) {
		if st.Friend.Val == 0 {
			return nil, false
		}
		return st.Friend, true
	})
}

func handBacked(caps host.Capabilities, layer string) (values.Value, bool) {
	s, ok := caps.Player.FindItemByLayer(layer)
	if !ok {
		return nil, false
	}
	return s, true
}
