package backprop

import (
	"context"
	"reflect"
	"sync"

	"github.com/pkg/errors"

	"github.com/sharnoff/backprop/utils"
)

// TrainAll runs each of the Managers on its own goroutine, with no more than 'limit' running at a
// time, and waits for them to finish. Managers must not share Networks, PatternSources, or
// LearningProcesses; use PatternSet.Clone to give each Manager its own view of the same data.
//
// If a Manager fails, no Managers that have not yet started will be run, those that are running
// are stopped at their next pattern, and the first error is returned (wrapped with the id of the
// Manager).
func TrainAll(ctx context.Context, limit int, managers ...*Manager) error {
	if limit < 1 {
		return errors.Errorf("Can't train, limit must be >= 1 (%d)", limit)
	}

	for i, m := range managers {
		if m == nil {
			return NilArgError{"Manager"}
		}

		for _, other := range managers[:i] {
			if err := checkShared(other, m); err != nil {
				return errors.Wrapf(err, "Can't train, managers %s and %s", other.id, m.id)
			}
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var once sync.Once
	var failure error

	err := utils.Run(len(managers), limit, func(i int) error {
		if err := managers[i].Run(ctx); err != nil {
			err = errors.Wrapf(err, "Manager %s failed", managers[i].id)
			once.Do(func() {
				failure = err
				cancel()
			})
			return err
		}

		return nil
	})

	if failure != nil {
		return failure
	}
	return err
}

// checkShared returns an error if the two Managers hold any of the same mutable state
func checkShared(a, b *Manager) error {
	if a.net == b.net {
		return errors.New("share a network")
	} else if same(a.proc, b.proc) {
		return errors.New("share a learning process")
	}

	for _, x := range []PatternSource{a.learnData, a.checkData} {
		for _, y := range []PatternSource{b.learnData, b.checkData} {
			if same(x, y) {
				return errors.New("share a pattern source")
			}
		}
	}

	return nil
}

// same compares interface values without panicking on uncomparable types, which can't be shared
// by reference anyway. Nil pointers are never the same.
func same(a, b interface{}) bool {
	if a == nil || b == nil {
		return false
	}

	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	} else if v := reflect.ValueOf(a); v.Kind() == reflect.Ptr && v.IsNil() {
		return false
	}

	return a == b
}
