package validation

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryOptionalNumber(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		min, max int64
		want     *int64
		wantErr  string
	}{
		{name: "absent", query: "", min: 300, max: 850, want: nil},
		{name: "valid", query: "?creditScore=750", min: 300, max: 850, want: int64Ptr(750)},
		{name: "minimum", query: "?creditScore=300", min: 300, max: 850, want: int64Ptr(300)},
		{name: "maximum", query: "?creditScore=850", min: 300, max: 850, want: int64Ptr(850)},
		{name: "below minimum", query: "?creditScore=299", min: 300, max: 850, wantErr: "validation.query.parameter.number.outOfRange"},
		{name: "above maximum", query: "?creditScore=851", min: 300, max: 850, wantErr: "validation.query.parameter.number.outOfRange"},
		{name: "not a number", query: "?creditScore=abc", min: 300, max: 850, wantErr: "validation.query.parameter.invalidType"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "http://localhost:8080/api/loans/start"+test.query, nil)
			value, err := QueryOptionalNumber(request, "creditScore", test.min, test.max)
			if test.wantErr != "" {
				require.NotNil(t, err)
				assert.Equal(t, test.wantErr, err.Type)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, test.want, value)
		})
	}
}

func int64Ptr(val int64) *int64 {
	return &val
}
