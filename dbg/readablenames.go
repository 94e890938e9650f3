package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Region labels for mesh renderings. Bare indices are hard to tell apart in a
// dense picture, so each key gets a two-word pet name the first time it is
// drawn, and keeps it until the process exits.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// A label depends on drawing order, not on the region, so vary the names
	// between runs to keep anyone from reading meaning into them.
	petname.NonDeterministicMode()
}

// The label for key, usually a region index. Safe for concurrent renders.
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
