package discovery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stellarlog/relay/core/discovery"
)

func TestEDSMProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body any
		err  error
		want bool
	}{
		{"named system", map[string]any{"name": "Sol", "id": 27.0}, nil, true},
		{"empty object", map[string]any{}, nil, false},
		{"object without name", map[string]any{"id": 27.0}, nil, false},
		{"empty name", map[string]any{"name": ""}, nil, false},
		{"null body", nil, nil, false},
		{"array body", []any{}, nil, false},
		{"network error", nil, errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			getter := &fakeGetter{fn: func(url string, params map[string]string) (any, int, error) {
				assert.Equal(t, "Sol", params["systemName"])
				assert.Equal(t, "1", params["showInformation"])
				return tt.body, 200, tt.err
			}}
			p := discovery.NewEDSMProvider("https://edsm.test/api-v1/system", getter, nil)

			assert.Equal(t, tt.want, p.Lookup(context.Background(), "Sol", 0))
		})
	}
}

func TestEDSMProviderSkipsEmptyName(t *testing.T) {
	t.Parallel()

	getter := &fakeGetter{}
	p := discovery.NewEDSMProvider("https://edsm.test/api-v1/system", getter, nil)

	assert.False(t, p.Lookup(context.Background(), "", 42))
	assert.Zero(t, getter.callCount())
}

func TestSpanshProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body any
		want bool
	}{
		{"system key", map[string]any{"system": map[string]any{"name": "Sol"}}, true},
		{"record key", map[string]any{"record": map[string]any{"id": 1.0}}, true},
		{"empty system object", map[string]any{"system": map[string]any{}}, false},
		{"neither key", map[string]any{"error": "not found"}, false},
		{"non-object", "oops", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			getter := &fakeGetter{fn: func(url string, params map[string]string) (any, int, error) {
				// Address goes into the path, not the query.
				assert.Equal(t, "https://spansh.test/api/system/10477373803", url)
				assert.Empty(t, params)
				return tt.body, 200, nil
			}}
			p := discovery.NewSpanshProvider("https://spansh.test/api/system", getter, nil)

			assert.Equal(t, tt.want, p.Lookup(context.Background(), "Sol", 10477373803))
		})
	}
}

func TestSpanshProviderSkipsZeroAddress(t *testing.T) {
	t.Parallel()

	getter := &fakeGetter{}
	p := discovery.NewSpanshProvider("https://spansh.test/api/system", getter, nil)

	assert.False(t, p.Lookup(context.Background(), "Sol", 0))
	assert.Zero(t, getter.callCount())
}

func TestEdastroProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body any
		want bool
	}{
		{"system key", map[string]any{"system": map[string]any{"name": "Sol"}}, true},
		{"non-empty list", []any{map[string]any{"name": "Sol"}}, true},
		{"empty list", []any{}, false},
		{"empty object", map[string]any{}, false},
		{"text body", "maintenance", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			getter := &fakeGetter{fn: func(url string, params map[string]string) (any, int, error) {
				assert.Equal(t, "10477373803", params["q"])
				return tt.body, 200, nil
			}}
			p := discovery.NewEdastroProvider("https://edastro.test/api/starsystem", getter, nil)

			assert.Equal(t, tt.want, p.Lookup(context.Background(), "Sol", 10477373803))
		})
	}
}

func TestEdastroProviderSkipsZeroAddress(t *testing.T) {
	t.Parallel()

	getter := &fakeGetter{}
	p := discovery.NewEdastroProvider("https://edastro.test/api/starsystem", getter, nil)

	assert.False(t, p.Lookup(context.Background(), "Sol", 0))
	assert.Zero(t, getter.callCount())
}
