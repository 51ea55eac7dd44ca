package par

import (
	"sync"

	"github.com/ib-77/vop/pkg/vop"
)

// Eval computes every thunk in its own goroutine and returns the outcomes in
// argument order, ready for All or the Combine functions. It is a caller-side
// optimization for expensive validators; accumulation semantics do not depend
// on it.
func Eval[T, F any](thunks ...func() vop.Outcome[T, []F]) []vop.Outcome[T, []F] {
	outs := make([]vop.Outcome[T, []F], len(thunks))
	wg := &sync.WaitGroup{}

	for i, thunk := range thunks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outs[i] = thunk()
		}()
	}

	wg.Wait()
	return outs
}
