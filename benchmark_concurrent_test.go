package datefmt_test

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"runtime/debug"
	"sync"
	"testing"
	"time"

	"github.com/vearutop/datefmt"
	"golang.org/x/text/language"
)

type formatLoader interface {
	run(b *testing.B, numRoutines, cnt int)
}

// perWorkerCache gives each goroutine its own cache.
type perWorkerCache struct{}

func (perWorkerCache) run(b *testing.B, numRoutines, cnt int) {
	b.Helper()

	cfg := datefmt.Config{Defaults: &datefmt.FixedDefaults{Tag: language.English}}

	err := datefmt.RunWorkers(context.Background(), numRoutines, cfg, func(ctx context.Context, worker int, c *datefmt.Cache) error {
		for i := 0; i < cnt; i++ {
			f, err := c.Formatter(ctx, benchPatterns[(i^12345)%len(benchPatterns)], datefmt.WithTimeZone(time.UTC))
			if err != nil {
				return err
			}

			_ = f.Format(sample)
		}

		return nil
	})
	if err != nil {
		b.Fatal(err)
	}
}

// rebuild compiles a new formatter for every call.
type rebuild struct{}

func (rebuild) run(b *testing.B, numRoutines, cnt int) {
	b.Helper()

	wg := sync.WaitGroup{}
	wg.Add(numRoutines)

	for r := 0; r < numRoutines; r++ {
		go func() {
			defer wg.Done()

			for i := 0; i < cnt; i++ {
				f, err := datefmt.NewFormatter(benchPatterns[(i^12345)%len(benchPatterns)], language.English, time.UTC)
				if err != nil {
					b.Error(err)

					return
				}

				_ = f.Format(sample)
			}
		}()
	}

	wg.Wait()
}

func Benchmark_concurrentFormat(b *testing.B) {
	for _, numRoutines := range []int{1, runtime.GOMAXPROCS(0)} {
		for _, loader := range []formatLoader{
			perWorkerCache{},
			rebuild{},
		} {
			b.Run(fmt.Sprintf("%d:%T", numRoutines, loader), func(b *testing.B) {
				before := heapInUse()

				b.ReportAllocs()
				b.ResetTimer()

				loader.run(b, numRoutines, b.N/numRoutines+1)

				b.StopTimer()
				b.ReportMetric(float64(heapInUse()-before)/(1024*1024), "MB/inuse")
			})
		}
	}
}

func heapInUse() uint64 {
	var (
		m         = runtime.MemStats{}
		prevInUse uint64
	)

	for {
		runtime.ReadMemStats(&m)

		if math.Abs(float64(m.HeapInuse-prevInUse)) < 1*1024 {
			break
		}

		prevInUse = m.HeapInuse

		time.Sleep(50 * time.Millisecond)
		runtime.GC()
		debug.FreeOSMemory()
	}

	return m.HeapInuse
}
