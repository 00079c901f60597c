package jobs

import (
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobtracker-engine/internal/domain"
)

var reJobID = regexp.MustCompile(`/jobs/view/(\d+)`)

// ImportHTML extracts jobs from a locally saved job-alert page, e.g. a
// LinkedIn notification email downloaded to disk. The caller supplies the
// bytes; nothing here touches the network. Anchors pointing at the same job
// id are merged so a logo link seen first doesn't shadow the title link.
func ImportHTML(r io.Reader) ([]domain.Job, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	byID := map[string]*domain.Job{}
	var order []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || !strings.Contains(strings.ToLower(href), "/jobs/view/") {
			return
		}

		m := reJobID.FindStringSubmatch(href)
		if m == nil {
			return
		}
		id := "li-" + m[1]

		j, ok := byID[id]
		if !ok {
			j = &domain.Job{
				ID:       id,
				ApplyURL: stripQuery(href),
				Source:   "LinkedIn",
			}
			byID[id] = j
			order = append(order, id)
		}

		if t := cleanText(a.Text()); j.Title == "" && t != "" {
			j.Title = t
		}

		// The company and location usually sit in <p> siblings inside the
		// enclosing card.
		card := a.Closest("td")
		if card.Length() == 0 {
			card = a.Parent()
		}
		var fields []string
		card.Find("p").Each(func(_ int, p *goquery.Selection) {
			if t := cleanText(p.Text()); t != "" {
				fields = append(fields, t)
			}
		})
		if j.Company == "" && len(fields) > 0 {
			j.Company = fields[0]
		}
		if j.Location == "" && len(fields) > 1 {
			j.Location = fields[1]
		}
	})

	out := make([]domain.Job, 0, len(order))
	for _, id := range order {
		j := byID[id]
		if j.Title == "" {
			continue
		}
		j.Mode = domain.InferMode(j.Location, j.Title)
		if j.Mode == domain.ModeUnknown {
			j.Mode = domain.ModeOnsite
		}
		j.Skills = []string{}
		out = append(out, *j)
	}
	return out, nil
}

func stripQuery(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}
	return raw
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
