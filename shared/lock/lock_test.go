package lock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/lock"
)

func TestKeyed_SerializesSameKey(t *testing.T) {
	locks := lock.NewKeyed()

	const workers = 20

	counter := 0

	var wg sync.WaitGroup

	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()

			release := locks.Acquire("worker:abc")
			defer release()

			counter++
		}()
	}

	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyed_IndependentKeysDoNotBlock(t *testing.T) {
	locks := lock.NewKeyed()

	releaseA := locks.Acquire("worker:a")
	defer releaseA()

	done := make(chan struct{})

	go func() {
		release := locks.Acquire("worker:b")
		release()
		close(done)
	}()

	<-done
}

func TestKeyed_Do(t *testing.T) {
	locks := lock.NewKeyed()

	ran := false

	err := locks.Do("calendar:xyz", func() error {
		ran = true

		return nil
	})

	assert.NoError(t, err)
	assert.True(t, ran)
}

func TestKeyed_ReacquireAfterRelease(t *testing.T) {
	locks := lock.NewKeyed()

	release := locks.Acquire("worker:a")
	release()

	release = locks.Acquire("worker:a")
	release()
}
