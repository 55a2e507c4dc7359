package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		separator string
		expected  []string
	}{
		{name: "colon", value: "a.jar:b.jar", separator: ":", expected: []string{"a.jar", "b.jar"}},
		{name: "blanks dropped", value: " a.jar ;; b.jar;", separator: ";", expected: []string{"a.jar", "b.jar"}},
		{name: "empty", value: "", separator: ":", expected: nil},
		{name: "no separator", value: " a.jar ", separator: "", expected: []string{"a.jar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.value, tt.separator))
		})
	}
}

func TestCompactStrings(t *testing.T) {
	assert.Equal(t, []string{"javafx.controls", "javafx.web"}, CompactStrings([]string{" javafx.controls", "", "  ", "javafx.web "}))
	assert.Nil(t, CompactStrings(nil))
}
