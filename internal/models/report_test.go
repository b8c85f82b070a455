package models

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/reportdesk/internal/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{"active", "active", StatusActive, false},
		{"archived", "archived", StatusArchived, false},
		{"empty", "", "", true},
		{"unknown", "deleted", "", true},
		{"case sensitive", "Active", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStatus(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewReport_AssignsIdAndDate(t *testing.T) {
	before := time.Now().UTC()
	r := NewReport("Audit", "Q1 audit", StatusActive)
	after := time.Now().UTC()

	_, err := uuid.Parse(r.Id)
	require.NoError(t, err, "id must be a valid uuid")

	assert.Equal(t, "Audit", r.Title)
	assert.Equal(t, "Q1 audit", r.Description)
	assert.Equal(t, StatusActive, r.Status)
	assert.False(t, r.Date.Before(before))
	assert.False(t, r.Date.After(after))
}

func TestNewReport_UniqueIdsUnderRapidCreation(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		r := NewReport("t", "d", StatusActive)
		_, dup := seen[r.Id]
		require.False(t, dup, "duplicate id on iteration %d", i)
		seen[r.Id] = struct{}{}
	}
}

func TestNewReport_InvalidStatusFallsBackToActive(t *testing.T) {
	r := NewReport("t", "d", Status("bogus"))
	assert.Equal(t, StatusActive, r.Status)
}

func TestApplyEdit_PreservesIdAndDate(t *testing.T) {
	r := NewReport("Draft", "internal notes", StatusArchived)
	id, date := r.Id, r.Date

	require.NoError(t, r.ApplyEdit("Draft v2", "published notes", StatusActive))

	assert.Equal(t, id, r.Id)
	assert.Equal(t, date, r.Date)
	assert.Equal(t, "Draft v2", r.Title)
	assert.Equal(t, "published notes", r.Description)
	assert.Equal(t, StatusActive, r.Status)
}

func TestApplyEdit_RejectsInvalidStatus(t *testing.T) {
	r := NewReport("Draft", "notes", StatusActive)
	err := r.ApplyEdit("x", "y", Status("bogus"))
	require.ErrorIs(t, err, common.ErrInvalidStatus)
	assert.Equal(t, "Draft", r.Title, "failed edit must not mutate the report")
}
