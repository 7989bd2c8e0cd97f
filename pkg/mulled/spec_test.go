package mulled_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfbio/mulled/pkg/mulled"
)

func TestParseTargets(t *testing.T) {
	testcases := []struct {
		name  string
		specs []string
		want  []mulled.Target
	}{
		{
			name:  "double equals",
			specs: []string{"foo==0.1.2", "bar==1.1"},
			want:  []mulled.Target{{Name: "foo", Version: "0.1.2"}, {Name: "bar", Version: "1.1"}},
		},
		{
			name:  "single equals",
			specs: []string{"foo=0.1.2", "bar=1.1"},
			want:  []mulled.Target{{Name: "foo", Version: "0.1.2"}, {Name: "bar", Version: "1.1"}},
		},
		{
			name:  "surrounding whitespace is trimmed",
			specs: []string{" samtools == 1.9 "},
			want:  []mulled.Target{{Name: "samtools", Version: "1.9"}},
		},
		{
			name:  "input order is preserved",
			specs: []string{"b==2", "a==1"},
			want:  []mulled.Target{{Name: "b", Version: "2"}, {Name: "a", Version: "1"}},
		},
		{
			name:  "duplicates are passed through",
			specs: []string{"samtools==1.9", "samtools==1.9"},
			want:  []mulled.Target{{Name: "samtools", Version: "1.9"}, {Name: "samtools", Version: "1.9"}},
		},
		{
			name:  "empty input",
			specs: []string{},
			want:  []mulled.Target{},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mulled.ParseTargets(tc.specs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTargets_BadFormat(t *testing.T) {
	testcases := []struct {
		name  string
		specs []string
	}{
		{"no separator", []string{"numpy"}},
		{"unexpected constraint operator", []string{"foo<0.1.2", "bar==1.1"}},
		{"constraint operator later in list", []string{"foo=0.1.2", "bar>1.1"}},
		{"missing tool name", []string{"==1.9"}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mulled.ParseTargets(tc.specs)
			require.Error(t, err)
			assert.ErrorIs(t, err, mulled.ErrBadFormat)
			assert.Contains(t, err.Error(), "<tool==version>")
		})
	}
}

func TestParseTargets_BadVersion(t *testing.T) {
	testcases := []struct {
		name  string
		specs []string
	}{
		{"not a version at all", []string{"numpy==notaversion"}},
		{"bad release segment", []string{"foo==0a.1.2", "bar==1.1"}},
		{"bad pre-release segment", []string{"foo==0.1.2", "bar==1.b1b"}},
		{"empty version", []string{"numpy=="}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mulled.ParseTargets(tc.specs)
			require.Error(t, err)
			assert.ErrorIs(t, err, mulled.ErrBadVersion)
			assert.Contains(t, err.Error(), "PEP 440")
		})
	}
}

func TestTarget_String(t *testing.T) {
	assert.Equal(t, "samtools==1.9", mulled.NewTarget("samtools", "1.9").String())
	assert.Equal(t, "samtools", mulled.NewTarget("samtools", "").String())
}
