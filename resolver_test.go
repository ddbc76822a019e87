package inspire_test

import (
	"errors"
	"testing"

	"github.com/junioryono/inspire"
	"github.com/junioryono/inspire/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("singleton per container", func(t *testing.T) {
		t.Parallel()

		logger, counter := testutil.CountingProvider("Logger", testutil.NewTestLogger)
		c := inspire.NewContainer()

		first := testutil.AssertResolvable[*testutil.TestLogger](t, c, logger)
		second := testutil.AssertResolvable[*testutil.TestLogger](t, c, logger)

		assert.Same(t, first, second)
		assert.Equal(t, 1, counter.Count())
	})

	t.Run("separate containers build separate instances", func(t *testing.T) {
		t.Parallel()

		logger, counter := testutil.CountingProvider("Logger", testutil.NewTestLogger)

		a := testutil.AssertResolvable[*testutil.TestLogger](t, inspire.NewContainer(), logger)
		b := testutil.AssertResolvable[*testutil.TestLogger](t, inspire.NewContainer(), logger)

		assert.NotSame(t, a, b)
		assert.Equal(t, 2, counter.Count())
	})

	t.Run("nested providers are shared", func(t *testing.T) {
		t.Parallel()

		logger, loggerCount := testutil.CountingProvider("Logger", testutil.NewTestLogger)
		service, serviceCount := testutil.CountingProvider("Service", testutil.NewTestStore, logger)
		c := inspire.NewContainer()

		first := testutil.AssertResolvable[*testutil.TestStore](t, c, service)
		second := testutil.AssertResolvable[*testutil.TestStore](t, c, service)

		assert.Same(t, first, second)
		assert.Same(t, first.Logger, second.Logger)
		assert.Equal(t, 1, serviceCount.Count())
		assert.Equal(t, 1, loggerCount.Count())

		direct := testutil.AssertResolvable[*testutil.TestLogger](t, c, logger)
		assert.Same(t, direct, first.Logger)
	})

	t.Run("dependencies are injected in declaration order", func(t *testing.T) {
		t.Parallel()

		a := &inspire.ProviderType{Name: "A", New: func() inspire.Injectable { return testutil.NewTestLogger() }}
		b := &inspire.ProviderType{Name: "B", New: func() inspire.Injectable { return testutil.NewTestLogger() }}
		recorder := inspire.NewProvider(testutil.NewRecorder, b, a, b)
		c := inspire.NewContainer()

		rec := testutil.AssertResolvable[*testutil.Recorder](t, c, recorder)
		instA := testutil.AssertResolvable[*testutil.TestLogger](t, c, a)
		instB := testutil.AssertResolvable[*testutil.TestLogger](t, c, b)

		require.Len(t, rec.Received, 3)
		assert.Same(t, instB, rec.Received[0])
		assert.Same(t, instA, rec.Received[1])
		assert.Same(t, instB, rec.Received[2])
		assert.Equal(t, 1, rec.Calls)
	})

	t.Run("providers of the same type stay distinct", func(t *testing.T) {
		t.Parallel()

		primary := inspire.NewProvider(testutil.NewTestLogger)
		secondary := inspire.NewProvider(testutil.NewTestLogger)
		recorder := inspire.NewProvider(testutil.NewRecorder, primary, secondary)
		c := inspire.NewContainer()

		rec := testutil.AssertResolvable[*testutil.Recorder](t, c, recorder)
		first := testutil.AssertResolvable[*testutil.TestLogger](t, c, primary)
		second := testutil.AssertResolvable[*testutil.TestLogger](t, c, secondary)

		assert.NotSame(t, first, second)
		require.Len(t, rec.Received, 2)
		assert.Same(t, first, rec.Received[0])
		assert.Same(t, second, rec.Received[1])
	})

	t.Run("dependencies are built before their dependent", func(t *testing.T) {
		t.Parallel()

		var order []string
		logger := &inspire.ProviderType{Name: "Logger", New: func() inspire.Injectable {
			order = append(order, "Logger")
			return testutil.NewTestLogger()
		}}
		store := &inspire.ProviderType{Name: "Store", New: func() inspire.Injectable {
			order = append(order, "Store")
			return testutil.NewTestStore()
		}, Providers: []*inspire.ProviderType{logger}}

		testutil.AssertResolvable[*testutil.TestStore](t, inspire.NewContainer(), store)
		assert.Equal(t, []string{"Logger", "Store"}, order)
	})

	t.Run("inject is skipped without dependencies", func(t *testing.T) {
		t.Parallel()

		recorder := inspire.NewProvider(testutil.NewRecorder)
		rec := testutil.AssertResolvable[*testutil.Recorder](t, inspire.NewContainer(), recorder)

		assert.Zero(t, rec.Calls)
	})
}

func TestContainer_Resolve_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider func() *inspire.ProviderType
		check    func(t *testing.T, err error)
	}{
		{
			name:     "nil provider",
			provider: func() *inspire.ProviderType { return nil },
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, inspire.ErrProviderNil)
			},
		},
		{
			name: "nil constructor",
			provider: func() *inspire.ProviderType {
				return &inspire.ProviderType{Name: "Broken"}
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, inspire.ErrConstructorNil)

				var validation *inspire.ValidationError
				require.ErrorAs(t, err, &validation)
				assert.Equal(t, "Broken", validation.Subject)
			},
		},
		{
			name: "constructor returns nil",
			provider: func() *inspire.ProviderType {
				return inspire.NewProvider(func() *testutil.TestLogger { return nil })
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, inspire.ErrInstanceNil)
			},
		},
		{
			name: "constructor panics",
			provider: func() *inspire.ProviderType {
				return &inspire.ProviderType{
					Name: "Panicky",
					New:  func() inspire.Injectable { panic("boom") },
				}
			},
			check: func(t *testing.T, err error) {
				var panicErr *inspire.ConstructorPanicError
				require.ErrorAs(t, err, &panicErr)
				assert.Equal(t, "boom", panicErr.Panic)
				assert.Equal(t, "Panicky", panicErr.Subject)
				assert.Contains(t, err.Error(), "panicked")
			},
		},
		{
			name: "inject fails",
			provider: func() *inspire.ProviderType {
				logger := inspire.NewProvider(testutil.NewTestLogger)
				return &inspire.ProviderType{
					Name: "Failing",
					New: func() inspire.Injectable {
						return &testutil.Recorder{Err: errors.New("inject failed")}
					},
					Providers: []*inspire.ProviderType{logger},
				}
			},
			check: func(t *testing.T, err error) {
				var resolution *inspire.ResolutionError
				require.ErrorAs(t, err, &resolution)
				assert.Equal(t, "Failing", resolution.Provider)
				assert.EqualError(t, resolution.Cause, "inject failed")
			},
		},
		{
			name: "nested failure names the failing provider",
			provider: func() *inspire.ProviderType {
				broken := &inspire.ProviderType{Name: "Broken"}
				return inspire.NewProvider(testutil.NewRecorder, broken)
			},
			check: func(t *testing.T, err error) {
				var validation *inspire.ValidationError
				require.ErrorAs(t, err, &validation)
				assert.Equal(t, "Broken", validation.Subject)
			},
		},
		{
			name: "nil dependency",
			provider: func() *inspire.ProviderType {
				return inspire.NewProvider(testutil.NewRecorder, nil)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, inspire.ErrProviderNil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := inspire.NewContainer().Resolve(tt.provider())
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestContainer_Resolve_FailureIsNotCached(t *testing.T) {
	t.Parallel()

	attempts := 0
	flaky := &inspire.ProviderType{
		Name: "Flaky",
		New: func() inspire.Injectable {
			attempts++
			if attempts == 1 {
				panic("first attempt")
			}
			return testutil.NewTestLogger()
		},
	}
	c := inspire.NewContainer()

	_, err := c.Resolve(flaky)
	require.Error(t, err)

	instance, err := c.Resolve(flaky)
	require.NoError(t, err)
	assert.NotNil(t, instance)
	assert.Equal(t, 2, attempts)
}

func TestContainer_Resolve_CircularDependency(t *testing.T) {
	t.Parallel()

	t.Run("two providers", func(t *testing.T) {
		t.Parallel()

		a := &inspire.ProviderType{Name: "A", New: func() inspire.Injectable { return testutil.NewRecorder() }}
		b := &inspire.ProviderType{Name: "B", New: func() inspire.Injectable { return testutil.NewRecorder() }}
		a.Providers = []*inspire.ProviderType{b}
		b.Providers = []*inspire.ProviderType{a}

		_, err := inspire.NewContainer().Resolve(a)
		testutil.AssertCircular(t, err)

		var cycle *inspire.CircularDependencyError
		require.ErrorAs(t, err, &cycle)
		assert.Equal(t, "A", cycle.Node.Name)
		require.Len(t, cycle.Path, 2)
		assert.Equal(t, "A", cycle.Path[0].Name)
		assert.Equal(t, "B", cycle.Path[1].Name)
	})

	t.Run("self dependency", func(t *testing.T) {
		t.Parallel()

		a := &inspire.ProviderType{Name: "A", New: func() inspire.Injectable { return testutil.NewRecorder() }}
		a.Providers = []*inspire.ProviderType{a}

		_, err := inspire.NewContainer().Resolve(a)
		testutil.AssertCircular(t, err)
	})

	t.Run("diamond is not a cycle", func(t *testing.T) {
		t.Parallel()

		shared := inspire.NewProvider(testutil.NewTestLogger)
		left := &inspire.ProviderType{Name: "Left", New: func() inspire.Injectable { return testutil.NewRecorder() }, Providers: []*inspire.ProviderType{shared}}
		right := &inspire.ProviderType{Name: "Right", New: func() inspire.Injectable { return testutil.NewRecorder() }, Providers: []*inspire.ProviderType{shared}}
		top := inspire.NewProvider(testutil.NewRecorder, left, right)

		rec := testutil.AssertResolvable[*testutil.Recorder](t, inspire.NewContainer(), top)
		require.Len(t, rec.Received, 2)

		l := rec.Received[0].(*testutil.Recorder)
		r := rec.Received[1].(*testutil.Recorder)
		assert.Same(t, l.Received[0], r.Received[0])
	})
}

func TestResolve_TypeMismatch(t *testing.T) {
	t.Parallel()

	logger := inspire.NewProvider(testutil.NewTestLogger)

	_, err := inspire.Resolve[*testutil.TestStore](inspire.NewContainer(), logger)

	var mismatch *inspire.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, err.Error(), "TestStore")

	_, err = inspire.Resolve[*testutil.TestLogger](nil, logger)
	assert.ErrorIs(t, err, inspire.ErrContainerNil)

	assert.Panics(t, func() {
		inspire.MustResolve[*testutil.TestStore](inspire.NewContainer(), logger)
	})
}

func TestContainer_Close(t *testing.T) {
	t.Parallel()

	t.Run("disposes in reverse creation order", func(t *testing.T) {
		t.Parallel()

		var log []string
		first := testutil.CloserProvider("first", &log)
		second := testutil.CloserProvider("second", &log, first)
		third := testutil.CloserProvider("third", &log, second)

		c := inspire.NewContainer()
		_, err := c.Resolve(third)
		require.NoError(t, err)

		require.NoError(t, c.Close())
		assert.Equal(t, []string{"third", "second", "first"}, log)

		require.NoError(t, c.Close())
		assert.Len(t, log, 3)
	})

	t.Run("aggregates errors", func(t *testing.T) {
		t.Parallel()

		var log []string
		failing := &inspire.ProviderType{
			Name: "failing",
			New: func() inspire.Injectable {
				return &testutil.TestCloser{Name: "failing", Log: &log, Err: errors.New("close failed")}
			},
		}

		c := inspire.NewContainer()
		_, err := c.Resolve(failing)
		require.NoError(t, err)

		err = c.Close()
		var disposal *inspire.DisposalError
		require.ErrorAs(t, err, &disposal)
		assert.Len(t, disposal.Errors, 1)
		assert.Contains(t, err.Error(), "close failed")
	})

	t.Run("closed container rejects resolution", func(t *testing.T) {
		t.Parallel()

		c := inspire.NewContainer()
		require.NoError(t, c.Close())

		_, err := c.Resolve(inspire.NewProvider(testutil.NewTestLogger))
		assert.ErrorIs(t, err, inspire.ErrContainerClosed)
	})
}
