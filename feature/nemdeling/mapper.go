package nemdeling

import (
	"sort"
	"strings"
	"time"

	"display-sync/core/reconcile"
	"display-sync/core/utils"

	"github.com/goccy/go-json"
)

// feedDateLayout is the date format used by the event feed.
const feedDateLayout = "02.01.2006"

// colorMap translates the feed's named colors to hex values.
var colorMap = map[string]string{
	"sort":             "#000000",
	"kk_blaa":          "#000c2e",
	"blaa":             "#002CFC",
	"marine_blaa":      "#260EB5",
	"stoev_blaa":       "#025FCC",
	"moerk_stoev_blaa": "#00519C",
	"graa_blaa":        "#1271A6",
	"roed":             "#C10023",
	"rust_roed":        "#BD3615",
	"moerk_rosa":       "#CD274F",
	"bordeaux":         "#900009",
	"lilla":            "#8332EB",
	"groen":            "#047C6E",
	"blaa_groen":       "#00777E",
	"brun":             "#5E4347",
	"bronze":           "#926B1F",
	"moerke_graa":      "#665E62",
	"prismen":          "#428515",
	"gmc":              "#0c807e",
	"blaagaarden":      "#116B91",
	"huset":            "#c7e2df",
	"kiby":             "#153d44",
}

// colorPalettes is the set of color palette names the templates understand.
var colorPalettes = map[string]struct{}{
	"farvepar1": {},
	"farvepar2": {},
	"farvepar3": {},
}

// seedGroups builds the per-screen group map pre-seeded with an empty slide
// list for every known screen. Seeding makes playlists converge to empty
// when a feed no longer addresses a screen.
func seedGroups(screens []string) map[string][]reconcile.SlideDescriptor {
	groups := make(map[string][]reconcile.SlideDescriptor, len(screens))
	for _, name := range screens {
		if name != "" {
			groups[name] = []reconcile.SlideDescriptor{}
		}
	}
	return groups
}

// mapServiceMessages converts a service message feed into per-screen slide
// groups. Screens named by the feed but missing from screens are reported in
// notFound, deduplicated and in order of first appearance.
func mapServiceMessages(feed *ServiceMessageFeed, templateID string, screens []string) (map[string][]reconcile.SlideDescriptor, []string) {
	groups := seedGroups(screens)
	var notFound []string
	seen := map[string]struct{}{}

	for _, item := range feed.Items {
		if len(item.Screens) == 0 {
			continue
		}

		institution := ""
		if len(item.Institutions) > 0 {
			institution = item.Institutions[0]
		}

		for _, screen := range item.Screens {
			if _, ok := groups[screen]; !ok {
				if _, dup := seen[screen]; !dup {
					seen[screen] = struct{}{}
					notFound = append(notFound, screen)
				}
				continue
			}

			groups[screen] = append(groups[screen], reconcile.SlideDescriptor{
				TemplateID: templateID,
				Content: map[string]any{
					"externalId":         item.NID,
					"title":              item.Title,
					"text":               item.Body,
					"displayInstitution": institution,
					"bgColor":            item.BackgroundColor,
				},
			})
		}
	}

	return groups, notFound
}

// mapEvents converts an event feed into per-screen slide groups, ordered by
// start date. The returned descriptors carry the event template; the
// event-list and event-theme variants are derived from them.
func mapEvents(feed *EventFeed, templateID string, screens []string) (map[string][]reconcile.SlideDescriptor, []string) {
	groups := seedGroups(screens)
	var notFound []string
	seen := map[string]struct{}{}

	items := make([]EventItem, len(feed.Items))
	copy(items, feed.Items)
	sort.SliceStable(items, func(i, j int) bool {
		return parseFeedDate(first(items[i].StartDates)).Before(parseFeedDate(first(items[j].StartDates)))
	})

	for _, item := range items {
		if len(item.Screens) == 0 {
			continue
		}

		startTime, endTime := splitTimeRange(first(item.Times))
		startDate := formatEventDate(first(item.StartDates))
		endDate := formatEventDate(first(item.EndDates))

		image := ""
		if len(item.Images) > 0 {
			image = item.Images[0].Src
		}

		bgColor := colorMap[item.Color]

		colorPalette := ""
		if _, ok := colorPalettes[item.ColorPalette]; ok {
			colorPalette = item.ColorPalette
		}

		content := map[string]any{
			"title":        item.Title,
			"subTitle":     item.Teaser,
			"host":         item.Host,
			"startDate":    startDate + " kl. " + startTime,
			"endDate":      "",
			"image":        image,
			"bgColor":      bgColor,
			"colorPalette": colorPalette,
		}
		// Same-day events show no end date.
		if startDate != endDate {
			content["endDate"] = endDate + " kl. " + endTime
		}

		for _, screen := range item.Screens {
			if _, ok := groups[screen]; !ok {
				if _, dup := seen[screen]; !dup {
					seen[screen] = struct{}{}
					notFound = append(notFound, screen)
				}
				continue
			}

			groups[screen] = append(groups[screen], reconcile.SlideDescriptor{
				TemplateID: templateID,
				Content:    cloneContent(content),
			})
		}
	}

	return groups, notFound
}

// eventListGroups collapses each screen's event slides into a single slide
// whose jsonData field carries the full event list.
func eventListGroups(groups map[string][]reconcile.SlideDescriptor, templateID string) (map[string][]reconcile.SlideDescriptor, error) {
	collapsed := make(map[string][]reconcile.SlideDescriptor, len(groups))
	for screen, slides := range groups {
		contents := make([]map[string]any, 0, len(slides))
		for _, slide := range slides {
			contents = append(contents, slide.Content)
		}

		raw, err := json.Marshal(contents)
		if err != nil {
			return nil, err
		}

		collapsed[screen] = []reconcile.SlideDescriptor{{
			TemplateID: templateID,
			Content: map[string]any{
				"jsonData": string(raw),
			},
		}}
	}
	return collapsed, nil
}

// eventThemeGroups rewrites each event slide for the event theme template,
// stripping the clock time from the start and end dates.
func eventThemeGroups(groups map[string][]reconcile.SlideDescriptor, templateID string) map[string][]reconcile.SlideDescriptor {
	themed := make(map[string][]reconcile.SlideDescriptor, len(groups))
	for screen, slides := range groups {
		out := make([]reconcile.SlideDescriptor, 0, len(slides))
		for _, slide := range slides {
			content := cloneContent(slide.Content)
			content["startDate"] = stripClockTime(utils.ToString(content["startDate"]))
			content["endDate"] = stripClockTime(utils.ToString(content["endDate"]))
			out = append(out, reconcile.SlideDescriptor{
				TemplateID: templateID,
				Content:    content,
			})
		}
		themed[screen] = out
	}
	return themed
}

// parseFeedDate parses a feed date for sorting. Unparseable dates sort
// first.
func parseFeedDate(raw string) time.Time {
	t, err := time.Parse(feedDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatEventDate renders a feed date as a Danish long date, e.g.
// "24. december 2023". Unparseable dates pass through unchanged.
func formatEventDate(raw string) string {
	t, err := time.Parse(feedDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return utils.FormatDanishDate(t)
}

// splitTimeRange splits a "HH:MM til HH:MM" range into its parts.
func splitTimeRange(raw string) (string, string) {
	parts := strings.SplitN(raw, " til ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return raw, ""
}

// stripClockTime removes a trailing " kl. <time>" suffix from a date string.
func stripClockTime(date string) string {
	return strings.SplitN(date, " kl. ", 2)[0]
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func cloneContent(content map[string]any) map[string]any {
	clone := make(map[string]any, len(content))
	for key, val := range content {
		clone[key] = val
	}
	return clone
}
