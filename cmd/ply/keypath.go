package main

import (
	"fmt"
	"strconv"
	"strings"

	"howett.net/openstep"
)

// walkKeyPath descends from v along a /-separated path. Path components name dictionary
// keys, or index arrays. Empty components are ignored, so "/" selects v itself.
func walkKeyPath(v openstep.Value, keypath string) (openstep.Value, error) {
	walked := ""
	for _, comp := range strings.Split(keypath, "/") {
		if comp == "" {
			continue
		}

		switch cur := v.(type) {
		case openstep.Dictionary:
			next, ok := cur[comp]
			if !ok {
				return nil, fmt.Errorf("key path /%s: no key %q", walked, comp)
			}
			v = next
		case openstep.Array:
			i, err := strconv.Atoi(comp)
			if err != nil || i < 0 || i >= len(cur) {
				return nil, fmt.Errorf("key path /%s: invalid index %q into array of length %d", walked, comp, len(cur))
			}
			v = cur[i]
		default:
			return nil, fmt.Errorf("key path /%s: cannot descend into a %s", walked, v.TypeName())
		}
		walked = strings.TrimPrefix(walked+"/"+comp, "/")
	}
	return v, nil
}
