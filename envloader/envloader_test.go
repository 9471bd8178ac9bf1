package envloader

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	type Ports struct {
		Caddy int `env:"TEST_PORT_CADDY" envDefault:"8080"`
		Nginx int `env:"TEST_PORT_NGINX" envDefault:"8081"`
	}

	var p Ports
	require.NoError(t, Load(&p))
	assert.Equal(t, 8080, p.Caddy)
	assert.Equal(t, 8081, p.Nginx)

	t.Setenv("TEST_PORT_NGINX", "9091")

	var p2 Ports
	require.NoError(t, Load(&p2))
	assert.Equal(t, 8080, p2.Caddy)
	assert.Equal(t, 9091, p2.Nginx)
}

func TestLoad_EmptyValueFallsBackToDefault(t *testing.T) {
	type Config struct {
		Port int `env:"TEST_EMPTY_PORT" envDefault:"8082"`
	}
	t.Setenv("TEST_EMPTY_PORT", "  ")

	var c Config
	require.NoError(t, Load(&c))
	assert.Equal(t, 8082, c.Port)
}

func TestLoadWith_Types(t *testing.T) {
	type Nested struct {
		Debug bool `env:"DEBUG"`
	}
	type Config struct {
		Name    string        `env:"NAME"`
		Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
		Ratio   float64       `env:"RATIO"`
		Workers uint8         `env:"WORKERS"`
		Exclude []string      `env:"EXCLUDE"`
		Nested  Nested
		Ptr     *Nested
		Ignored string
	}

	env := map[string]string{
		"NAME":    "coletor",
		"RATIO":   "0.5",
		"WORKERS": "4",
		"EXCLUDE": ".git, node_modules,,dist",
		"DEBUG":   "TRUE",
	}

	c := Config{Ignored: "original"}
	require.NoError(t, LoadWith(&c, mapLookup(env)))

	assert.Equal(t, "coletor", c.Name)
	assert.Equal(t, 5*time.Second, c.Timeout)
	assert.Equal(t, 0.5, c.Ratio)
	assert.Equal(t, uint8(4), c.Workers)
	assert.Equal(t, []string{".git", "node_modules", "dist"}, c.Exclude)
	assert.True(t, c.Nested.Debug)
	require.NotNil(t, c.Ptr)
	assert.True(t, c.Ptr.Debug)
	assert.Equal(t, "original", c.Ignored)
}

func TestLoad_InvalidConfig(t *testing.T) {
	var s string
	err := Load(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pointer to struct")

	var n int
	err = Load(&n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pointer to struct")

	err = Load(nil)
	var ice *InvalidConfigError
	assert.True(t, errors.As(err, &ice))
}

func TestLoad_ConversionErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"não numérico", "abc"},
		{"overflow de int16", "70000"},
	}

	type Config struct {
		Port int16 `env:"PORT"`
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			err := LoadWith(&c, mapLookup(map[string]string{"PORT": tt.value}))
			require.Error(t, err)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, "PORT", fe.EnvVar)
			assert.Equal(t, tt.value, fe.Value)
			assert.Contains(t, err.Error(), "error setting field Port")
		})
	}
}

func TestLoad_BadDuration(t *testing.T) {
	type Config struct {
		Timeout time.Duration `env:"TIMEOUT"`
	}
	var c Config
	err := LoadWith(&c, mapLookup(map[string]string{"TIMEOUT": "cinco"}))
	assert.Error(t, err)
}

func TestLoad_UnsupportedType(t *testing.T) {
	type Config struct {
		Tags map[string]string `env:"TAGS"`
	}
	var c Config
	err := LoadWith(&c, mapLookup(map[string]string{"TAGS": "a=b"}))
	require.Error(t, err)

	var ue *UnsupportedTypeError
	assert.True(t, errors.As(err, &ue))
}

func TestMustLoad(t *testing.T) {
	type Config struct {
		Port string `env:"TEST_MUST_PORT" envDefault:"8080"`
	}

	c := &Config{}
	assert.NotPanics(t, func() { MustLoad(c) })
	assert.Equal(t, "8080", c.Port)

	assert.Panics(t, func() { MustLoad("not-a-pointer") })
}
