package utils

import (
	"sync"
)

// Run calls f for every integer in [0, n), with at most 'limit' calls running at once. Run blocks
// until every call has returned.
//
// Once any call to f returns an error, no new calls are started; calls already running are left
// to finish. The first error returned is given back.
//
// Run assumes that n >= 0. If limit < 1, it is treated as 1.
func Run(n, limit int, f func(int) error) error {
	if limit < 1 {
		limit = 1
	}
	if limit > n {
		limit = n
	}

	index := 0
	var firstErr error
	var mux sync.Mutex

	var wg sync.WaitGroup

	wg.Add(limit)
	for thread := 0; thread < limit; thread++ {
		go func() {
			defer wg.Done()

			for {
				mux.Lock()
				if index >= n || firstErr != nil {
					mux.Unlock()
					return
				}

				i := index
				index++
				mux.Unlock()

				if err := f(i); err != nil {
					mux.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mux.Unlock()
				}
			}
		}()
	}

	wg.Wait()

	return firstErr
}
