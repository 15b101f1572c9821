package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/taller-api/pkg/normalize"
)

func TestFold_QuitaTildesYMayusculas(t *testing.T) {
	cases := map[string]string{
		"Pérez":       "perez",
		"MARÍA":       "maria",
		"Ñoño":        "nono", // NFD descompone la eñe en n + tilde combinada
		"Electrónica": "electronica",
		"sin cambios": "sin cambios",
		"":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalize.Fold(in), "Fold(%q)", in)
	}
}

func TestContains_IgnoraTildesYCase(t *testing.T) {
	assert.True(t, normalize.Contains("María Pérez García", "perez"))
	assert.True(t, normalize.Contains("JOSÉ RODRÍGUEZ", "jose rodri"))
	assert.False(t, normalize.Contains("María Pérez", "gomez"))
}
