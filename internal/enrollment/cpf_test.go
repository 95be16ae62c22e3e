package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCPF(t *testing.T) {
	cases := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"valid plain", "52998224725", true},
		{"valid formatted", "529.982.247-25", true},
		{"valid second sample", "111.444.777-35", true},
		{"wrong first check digit", "52998224735", false},
		{"wrong second check digit", "52998224724", false},
		{"too short", "5299822472", false},
		{"too long", "529982247255", false},
		{"empty", "", false},
		{"letters only", "abcdefghijk", false},
		{"formatted but short", "529.982.247-2", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidCPF(tc.cpf))
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "11987654321", digitsOnly("(11) 98765-4321"))
	assert.Equal(t, "", digitsOnly("abc"))
}
