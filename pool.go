package sqlq

import (
	"sync"
)

// scanVecPool recycles the pointer vectors used to drain a cursor into
// the result snapshot, one Get/Put per Query call.
var scanVecPool = sync.Pool{}

func getScanVec(n int) []any {
	if v := scanVecPool.Get(); v != nil {
		s := v.([]any)
		if cap(s) >= n {
			return s[:n]
		}
	}
	return make([]any, n)
}

func putScanVec(s []any) {
	if s == nil {
		return
	}
	for n := range s {
		s[n] = nil
	}
	scanVecPool.Put(s)
}
