package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestSurveySnapshot(t *testing.T) {
	now := time.Now().UTC()
	survey := &Survey{
		ID:          uuid.New(),
		WorkspaceID: uuid.New(),
		Questions:   pq.StringArray{uuid.New().String()},
		Language:    "en",
		Config:      JSONMap{"show_progress": true},
		Type:        SurveyTypeApp,
		Version:     4,
	}

	snapshot := survey.Snapshot(now)

	assert.Equal(t, survey.ID, snapshot.SurveyID)
	assert.Equal(t, survey.Version, snapshot.Version)
	assert.Equal(t, survey.Questions, snapshot.Questions)
	assert.Equal(t, now, snapshot.Timestamp)

	// The snapshot owns its question list.
	snapshot.Questions[0] = "mutated"
	assert.NotEqual(t, snapshot.Questions[0], survey.Questions[0])
}

func TestJSONMapScanValue(t *testing.T) {
	m := JSONMap{"lang": "en", "count": float64(3)}

	value, err := m.Value()
	assert.NoError(t, err)

	var scanned JSONMap
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, m, scanned)
}

func TestValidSurveyType(t *testing.T) {
	assert.True(t, ValidSurveyType(SurveyTypeEmail))
	assert.True(t, ValidSurveyType(SurveyTypeWebsite))
	assert.True(t, ValidSurveyType(SurveyTypeApp))
	assert.False(t, ValidSurveyType("sms"))
}
