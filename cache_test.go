package datefmt_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/datefmt"
	"golang.org/x/text/language"
)

type logRecorder struct {
	ctxd.NoOpLogger

	debug []string
	warn  []string
}

func (l *logRecorder) Debug(_ context.Context, msg string, _ ...interface{}) {
	l.debug = append(l.debug, msg)
}

func (l *logRecorder) Warn(_ context.Context, msg string, _ ...interface{}) {
	l.warn = append(l.warn, msg)
}

func TestCache_Formatter(t *testing.T) {
	ctx := context.Background()
	st := &stats.TrackerMock{}
	logger := &logRecorder{}

	c := datefmt.New(datefmt.Config{
		Name:     "test",
		Stats:    st,
		Logger:   logger,
		Defaults: &datefmt.FixedDefaults{Tag: language.AmericanEnglish},
	})

	f1, err := c.Formatter(ctx, "yyyy-MM-dd HH:mm")
	require.NoError(t, err)

	f2, err := c.Formatter(ctx, "yyyy-MM-dd HH:mm")
	require.NoError(t, err)
	assert.Same(t, f1, f2)
	assert.Equal(t, time.UTC, f2.TimeZone())

	// Time zone change is applied without rebuild.
	f3, err := c.Formatter(ctx, "yyyy-MM-dd HH:mm", datefmt.WithTimeZone(cst))
	require.NoError(t, err)
	assert.Same(t, f1, f3)
	assert.Equal(t, cst, f3.TimeZone())
	assert.Equal(t, "2011-06-23 03:49", f3.Format(sample))

	// Zone is reset to default for the next request without explicit zone.
	f4, err := c.Formatter(ctx, "yyyy-MM-dd HH:mm")
	require.NoError(t, err)
	assert.Same(t, f1, f4)
	assert.Equal(t, "2011-06-22 19:49", f4.Format(sample))

	// Another locale is another formatter.
	f5, err := c.Formatter(ctx, "yyyy-MM-dd HH:mm", datefmt.WithLocale(language.German))
	require.NoError(t, err)
	assert.NotSame(t, f1, f5)
	assert.Equal(t, language.German, f5.Locale())

	// Another pattern is another formatter.
	f6, err := c.Default(ctx)
	require.NoError(t, err)
	assert.NotSame(t, f1, f6)
	assert.Equal(t, datefmt.DefaultPattern, f6.Pattern())

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, st.Int(datefmt.MetricBuild))
	assert.Equal(t, 3, st.Int(datefmt.MetricHit))
	assert.Equal(t, 0, st.Int(datefmt.MetricBuildFailed))
	assert.Len(t, logger.debug, 3)
	assert.Empty(t, logger.warn)
}

func TestCache_Formatter_invalidPattern(t *testing.T) {
	ctx := context.Background()
	st := &stats.TrackerMock{}
	logger := &logRecorder{}

	c := datefmt.New(datefmt.Config{
		Stats:    st,
		Logger:   logger,
		Defaults: &datefmt.FixedDefaults{Tag: language.English},
	})

	for i := 0; i < 2; i++ {
		f, err := c.Formatter(ctx, "bad-pattern-!!")
		assert.Nil(t, f)
		assert.ErrorIs(t, err, datefmt.ErrInvalidPattern)

		var ce *datefmt.ConstructionError

		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "bad-pattern-!!", ce.Pattern)
	}

	// Failure is not cached and does not affect valid patterns.
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 2, st.Int(datefmt.MetricBuildFailed))
	assert.Equal(t, []string{"failed to build date formatter", "failed to build date formatter"}, logger.warn)

	f, err := c.Formatter(ctx, "yyyy")
	require.NoError(t, err)
	assert.Equal(t, "2011", f.Format(sample))
	assert.Equal(t, 1, c.Len())
}

func TestCache_Formatter_ambientDefaults(t *testing.T) {
	ctx := context.Background()
	d := &datefmt.FixedDefaults{Tag: language.English}
	c := datefmt.New(datefmt.Config{Defaults: d})

	f, err := c.Formatter(ctx, "d MMMM HH:mm")
	require.NoError(t, err)
	assert.Equal(t, "22 June 19:49", f.Format(sample))

	// Changes of defaults are observed by next request.
	d.Zone = cst
	d.Tag = language.French

	f, err = c.Formatter(ctx, "d MMMM HH:mm")
	require.NoError(t, err)
	assert.Equal(t, "23 juin 03:49", f.Format(sample))

	// Explicit options win over defaults.
	f, err = c.Formatter(ctx, "d MMMM HH:mm", datefmt.WithLocale(language.English), datefmt.WithTimeZone(time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "22 June 19:49", f.Format(sample))

	// Nil zone option falls back to defaults.
	f, err = c.Formatter(ctx, "d MMMM HH:mm", datefmt.WithTimeZone(nil))
	require.NoError(t, err)
	assert.Equal(t, cst, f.TimeZone())

	assert.Equal(t, 2, c.Len())
}

func TestCache_zeroValue(t *testing.T) {
	c := datefmt.Cache{}

	f, err := c.Formatter(context.Background(), "yyyy-MM-dd", datefmt.WithTimeZone(time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2011-06-22", f.Format(sample))

	f2, err := c.Formatter(context.Background(), "yyyy-MM-dd", datefmt.WithLocale(f.Locale()))
	require.NoError(t, err)
	assert.Same(t, f, f2)
	assert.Equal(t, time.Local, f2.TimeZone())
}

func TestCache_Walk(t *testing.T) {
	ctx := context.Background()
	c := datefmt.New(datefmt.Config{Defaults: &datefmt.FixedDefaults{Tag: language.English}})

	n, err := c.Walk(func(k datefmt.Key, f *datefmt.Formatter) error {
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for _, p := range []string{"yyyy", "MM", "dd"} {
		_, err := c.Formatter(ctx, p)
		require.NoError(t, err)
	}

	var patterns []string

	n, err = c.Walk(func(k datefmt.Key, f *datefmt.Formatter) error {
		assert.Equal(t, k.Pattern, f.Pattern())
		assert.Equal(t, language.English, k.Locale)

		patterns = append(patterns, k.Pattern)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	sort.Strings(patterns)
	assert.Equal(t, []string{"MM", "dd", "yyyy"}, patterns)

	stop := errors.New("stop")

	n, err = c.Walk(func(k datefmt.Key, f *datefmt.Formatter) error {
		return stop
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 0, n)
}
