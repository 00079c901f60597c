package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/store"
)

func TestLoad_AbsentUsesDefaults(t *testing.T) {
	p := Load(store.NewMemory())
	assert.Equal(t, domain.DefaultMinMatchScore, p.MinMatchScore)
	assert.Empty(t, p.RoleKeywords)
	assert.Empty(t, p.PreferredLocations)
	assert.Empty(t, p.PreferredMode)
	assert.Empty(t, p.Skills)
	assert.Equal(t, "", p.ExperienceLevel)
}

func TestLoad_MalformedUsesDefaults(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(store.KeyPreferences, "{{{"))
	p := Load(kv)
	assert.Equal(t, domain.DefaultPreferences(), p)
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	kv := store.NewMemory()
	in := domain.Preferences{
		RoleKeywords:       []string{"react", "frontend"},
		PreferredLocations: []string{"Bengaluru"},
		PreferredMode:      []domain.JobMode{domain.ModeRemote},
		ExperienceLevel:    "1-3 years",
		Skills:             []string{"React"},
		MinMatchScore:      60,
	}
	require.NoError(t, Save(kv, in))
	assert.Equal(t, in, Load(kv))
}

func TestSave_Normalizes(t *testing.T) {
	kv := store.NewMemory()
	in := domain.Preferences{
		RoleKeywords:    []string{" react ", "", "React", "node"},
		Skills:          []string{"Go", "go "},
		ExperienceLevel: "  1-3 years ",
		PreferredMode:   []domain.JobMode{"remote", "Remote", "whatever"},
		MinMatchScore:   250,
	}
	require.NoError(t, Save(kv, in))

	p := Load(kv)
	assert.Equal(t, []string{"react", "node"}, p.RoleKeywords)
	assert.Equal(t, []string{"Go"}, p.Skills)
	assert.Equal(t, "1-3 years", p.ExperienceLevel)
	assert.Equal(t, []domain.JobMode{domain.ModeRemote}, p.PreferredMode)
	assert.Equal(t, 100, p.MinMatchScore)
}

func TestSave_OverwritesWholesale(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, Save(kv, domain.Preferences{RoleKeywords: []string{"react"}, MinMatchScore: 40}))
	require.NoError(t, Save(kv, domain.Preferences{Skills: []string{"go"}, MinMatchScore: 40}))

	p := Load(kv)
	assert.Empty(t, p.RoleKeywords)
	assert.Equal(t, []string{"go"}, p.Skills)
}
