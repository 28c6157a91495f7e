package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateFormatterLocales(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en-US", "1/5/2024"},
		{"en", "1/5/2024"},
		{"en-GB", "05/01/2024"},
		{"de-DE", "5.1.2024"},
		{"fr", "05/01/2024"},
		{"ja-JP", "2024/1/5"},
		{"sw", "2024-01-05"},
		{"???", "2024-01-05"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, NewDateFormatter(tt.locale).Format("2024-01-05"))
		})
	}
}

func TestDateFormatterInputs(t *testing.T) {
	d := NewDateFormatter("en-US")

	assert.Equal(t, "1/5/2024", d.Format("2024-01-05T23:30:00-05:00"), "date stays in its own zone")
	assert.Equal(t, "1/5/2024", d.Format("2024-01-05T08:00:00"))
	assert.Equal(t, "1/5/2024", d.Format("2024-01-05T08:00:00.123456Z"))
	assert.Equal(t, "", d.Format(nil))
	assert.Equal(t, "", d.Format(""))
	assert.Equal(t, InvalidDate, d.Format("yesterday"))
}
