package mapping

import (
	"bindsync/internal/common"
	"bindsync/internal/diagnostic"
	"bindsync/internal/schema"
)

// CompareFlags verifies that every interface flag-set has a native
// counterpart, that every member is present, and that the bit values agree.
// Purely diagnostic: nothing is generated and nothing is fatal.
func CompareFlags(native *schema.Native, iface *schema.Interface, nm *NameMap) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, name := range common.SortedKeys(iface.Flags) {
		hname := nm.Resolve(name)

		hflag, ok := native.Flags[hname]
		if !ok {
			diags.AddInfof("Flag %s missing in native header", hname)

			continue
		}

		for key, val := range iface.Flags[name].All() {
			// MAP_READ -> MapRead
			hkey := common.TitleNoSep(key)
			hkey = nm.Member(hname, hkey)

			hval, ok := hflag.Get(hkey)

			switch {
			case !ok:
				diags.AddInfof("Flag field %s.%s missing in native header", hname, hkey)
			case val != hval:
				diags.AddInfof("Flag field %s.%s have different values (interface %d, native %d)",
					hname, hkey, val, hval)
			}
		}
	}

	return diags
}
