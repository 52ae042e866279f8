package redirect

import (
	"sync"
	"testing"

	"github.com/LerianStudio/lib-mealmind-go/test/helper/testlogger"
	"github.com/stretchr/testify/assert"
)

func TestManager_DefaultHandlerLogs(t *testing.T) {
	logger := testlogger.New()
	m := New(logger)

	m.Navigate("/login")

	assert.True(t, logger.Contains("INFO", "redirecting to /login"))
}

func TestManager_SetHandler(t *testing.T) {
	m := New(testlogger.New())

	var got []string
	m.SetHandler(func(location string) { got = append(got, location) })
	m.SetHandler(nil)

	m.Navigate("/login")

	assert.Equal(t, []string{"/login"}, got)
}

func TestManager_ConcurrentNavigate(t *testing.T) {
	m := New(testlogger.New())

	var (
		mu    sync.Mutex
		count int
	)

	m.SetHandler(func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			m.Navigate("/login")
		}()
	}

	wg.Wait()
	assert.Equal(t, 20, count)
}
