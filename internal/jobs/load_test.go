package jobs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker-engine/internal/domain"
)

func TestDecode(t *testing.T) {
	in := `[
	  {"id":"a","title":"React Developer","company":"X","mode":"remote","postedDaysAgo":1},
	  {"id":"b","title":"QA Engineer","company":"Y","mode":"On-Site","postedDaysAgo":4,"skills":["Selenium"]}
	]`

	list, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, domain.ModeRemote, list[0].Mode)
	assert.Equal(t, []string{}, list[0].Skills)
	assert.Equal(t, domain.ModeOnsite, list[1].Mode)
	assert.Equal(t, []string{"Selenium"}, list[1].Skills)
}

func TestDecode_Rejections(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"duplicate id", `[{"id":"a","title":"x"},{"id":"a","title":"y"}]`},
		{"missing id", `[{"title":"x"}]`},
		{"negative age", `[{"id":"a","title":"x","postedDaysAgo":-1}]`},
		{"not json", `nope`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"a","title":"Dev","mode":"hybrid"}]`), 0o644))

	list, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.ModeHybrid, list[0].Mode)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestImportHTML(t *testing.T) {
	html := `
<html><body>
<table><tr><td>
  <a href="https://www.linkedin.com/comm/jobs/view/12345/?tracking=x">Senior React Developer</a>
  <p>BrightApps</p>
  <p>Bengaluru (Remote)</p>
</td></tr></table>
<table><tr><td>
  <a href="https://www.linkedin.com/jobs/view/67890/?ref=email"><img src="logo.png"/></a>
  <a href="https://www.linkedin.com/jobs/view/67890/?ref=email">QA Engineer</a>
  <p>Finch Labs</p>
  <p>Pune</p>
</td></tr></table>
<a href="https://www.linkedin.com/feed/">Not a job</a>
</body></html>`

	list, err := ImportHTML(strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, list, 2)

	first := list[0]
	assert.Equal(t, "li-12345", first.ID)
	assert.Equal(t, "Senior React Developer", first.Title)
	assert.Equal(t, "BrightApps", first.Company)
	assert.Equal(t, "Bengaluru (Remote)", first.Location)
	assert.Equal(t, domain.ModeRemote, first.Mode)
	assert.Equal(t, "LinkedIn", first.Source)
	assert.NotContains(t, first.ApplyURL, "?")

	second := list[1]
	assert.Equal(t, "li-67890", second.ID)
	assert.Equal(t, "QA Engineer", second.Title, "logo anchor must not shadow the title anchor")
	assert.Equal(t, domain.ModeOnsite, second.Mode)
}

func TestSeed_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, j := range Seed() {
		assert.False(t, seen[j.ID], "duplicate id %s", j.ID)
		seen[j.ID] = true
		assert.NotEmpty(t, j.Title)
		assert.GreaterOrEqual(t, j.PostedDaysAgo, 0)
	}
}
