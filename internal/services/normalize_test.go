package services

import (
	"errors"
	"testing"

	"eventline/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Tech Summit", "tech-summit"},
		{"punctuation stripped", "Hello, World!", "hello-world"},
		{"whitespace runs collapse", "  Multiple   Spaces\tand tabs ", "multiple-spaces-and-tabs"},
		{"hyphen runs collapse", "a --- b", "a-b"},
		{"leading and trailing hyphens trimmed", "--Edge Case--", "edge-case"},
		{"digits kept", "Go Conference 2025", "go-conference-2025"},
		{"underscores kept", "snake_case title", "snake_case-title"},
		{"non-ascii stripped", "Café Night", "caf-night"},
		{"only punctuation", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify(tt.title))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"canonical form round-trips", "2024-05-01", "2024-05-01", false},
		{"leap day accepted", "2024-02-29", "2024-02-29", false},
		{"impossible calendar date", "2024-02-30", "", true},
		{"rfc3339 time component discarded", "2024-05-01T10:30:00Z", "2024-05-01", false},
		{"datetime without zone", "2024-05-01 10:30:00", "2024-05-01", false},
		{"long month name", "March 5, 2027", "2027-03-05", false},
		{"us slash format", "03/05/2027", "2027-03-05", false},
		{"surrounding whitespace", "  2024-05-01  ", "2024-05-01", false},
		{"garbage", "not a date", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeDate(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrNormalization))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"single digit hour is padded", "9:30", "09:30", false},
		{"already canonical", "23:59", "23:59", false},
		{"midnight", "0:00", "00:00", false},
		{"single digit minutes rejected", "9:5", "", true},
		{"hour out of range", "24:00", "", true},
		{"minutes out of range", "12:60", "", true},
		{"no colon", "1230", "", true},
		{"surrounding whitespace", " 7:45 ", "07:45", false},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeTime(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrNormalization))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
