package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/fireeagle-go/fireeagle"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{
			name:       "simple equality",
			expression: `City == "Oakland"`,
			wantErr:    false,
		},
		{
			name:       "boolean combination",
			expression: `City == "Oakland" && Country == "US"`,
			wantErr:    false,
		},
		{
			name:       "numeric comparison",
			expression: `Lat > 37.0 && Lng < 0`,
			wantErr:    false,
		},
		{
			name:       "empty expression",
			expression: "",
			wantErr:    true,
		},
		{
			name:       "whitespace only",
			expression: "   ",
			wantErr:    true,
		},
		{
			name:       "unknown field",
			expression: `Planet == "Earth"`,
			wantErr:    true,
		},
		{
			name:       "non-boolean result",
			expression: `City`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, f)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestMatch(t *testing.T) {
	loc := fireeagle.Location{
		City:       "Oakland",
		State:      "CA",
		PostalCode: "94618",
		Country:    "US",
		Lat:        37.8044,
		Lng:        -122.2712,
		UpdateTime: "2008-03-12T12:34:56Z",
	}

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{
			name:       "matching city",
			expression: `City == "Oakland"`,
			want:       true,
		},
		{
			name:       "non-matching city",
			expression: `City == "Berkeley"`,
			want:       false,
		},
		{
			name:       "combined match",
			expression: `State == "CA" && Lat > 37.0`,
			want:       true,
		},
		{
			name:       "postal prefix",
			expression: `PostalCode startsWith "946"`,
			want:       true,
		},
		{
			name:       "either branch",
			expression: `City == "Berkeley" || Country == "US"`,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := f.Match(loc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
