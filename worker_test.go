package datefmt_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bool64/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/datefmt"
	"golang.org/x/text/language"
)

func TestRunWorkers(t *testing.T) {
	st := &stats.TrackerMock{}
	cfg := datefmt.Config{
		Name:     "workers",
		Stats:    st,
		Defaults: &datefmt.FixedDefaults{Tag: language.English},
	}

	var (
		mu         sync.Mutex
		formatters = map[*datefmt.Formatter]int{}
	)

	err := datefmt.RunWorkers(context.Background(), 8, cfg, func(ctx context.Context, worker int, c *datefmt.Cache) error {
		assert.Same(t, c, datefmt.CacheFrom(ctx))

		for i := 0; i < 100; i++ {
			f, err := datefmt.Lookup(ctx, "yyyy-MM-dd HH:mm:ss")
			if err != nil {
				return err
			}

			if s := f.Format(sample); s != "2011-06-22 19:49:28" {
				return errors.New("unexpected result: " + s)
			}

			mu.Lock()
			formatters[f] = worker
			mu.Unlock()
		}

		return nil
	})
	require.NoError(t, err)

	// One formatter per worker, never shared.
	assert.Len(t, formatters, 8)
	assert.Equal(t, 8, st.Int(datefmt.MetricBuild))
	assert.Equal(t, 8*99, st.Int(datefmt.MetricHit))
}

func TestRunWorkers_error(t *testing.T) {
	err := datefmt.RunWorkers(context.Background(), 4, datefmt.Config{}, func(ctx context.Context, worker int, c *datefmt.Cache) error {
		if worker == 2 {
			_, err := c.Formatter(ctx, "bad-pattern-!!")

			return err
		}

		<-ctx.Done()

		return nil
	})

	assert.ErrorIs(t, err, datefmt.ErrInvalidPattern)
	assert.Contains(t, err.Error(), "date format worker failed")
}
