package libevents

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"display-sync/core/reconcile"
	"display-sync/core/utils"
)

// eventBgColor is the fixed background color of library event slides.
const eventBgColor = "#3a6f55"

// activityDateLayouts are the timestamp formats observed in the feed.
var activityDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// mapActivities converts the feed into per-screen slide groups ordered by
// start date. Screens named by the feed but missing from screens are
// reported in notFound, deduplicated.
func mapActivities(feed *ActivityFeed, templateID string, screens []string) (map[string][]reconcile.SlideDescriptor, []string) {
	groups := make(map[string][]reconcile.SlideDescriptor, len(screens))
	for _, name := range screens {
		if name != "" {
			groups[name] = []reconcile.SlideDescriptor{}
		}
	}

	var notFound []string
	seen := map[string]struct{}{}

	activities := make([]Activity, 0, len(feed.Activities))
	for _, activity := range feed.Activities {
		if len(activity.Screens) > 0 {
			activities = append(activities, activity)
		}
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return parseActivityDate(activities[i].StartDate).Before(parseActivityDate(activities[j].StartDate))
	})

	for _, activity := range activities {
		start := parseActivityDate(activity.StartDate)
		end := parseActivityDate(activity.EndDate)

		// Multi-day events show an end date, single-day events don't.
		endDate := ""
		if end.Sub(start) > 24*time.Hour {
			endDate = utils.FormatDanishDateTime(end)
		}

		content := map[string]any{
			"externalId": activity.UID,
			"title":      activity.Title,
			"subTitle":   activity.Description,
			"host":       activity.Branch,
			"startDate":  utils.FormatDanishDateTime(start),
			"endDate":    endDate,
			"image":      activity.Image,
			"bgColor":    eventBgColor,
		}

		for _, screen := range activity.Screens {
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

// parseActivityDate parses a feed timestamp. Some feed entries carry a
// trailing timezone abbreviation, which is stripped before parsing.
// Unparseable dates yield the zero time, sorting first.
func parseActivityDate(raw string) time.Time {
	trimmed := strings.TrimSpace(strings.TrimRightFunc(raw, unicode.IsLetter))
	trimmed = strings.TrimSpace(trimmed)
	for _, layout := range activityDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}
	return time.Time{}
}

func cloneContent(content map[string]any) map[string]any {
	clone := make(map[string]any, len(content))
	for key, val := range content {
		clone[key] = val
	}
	return clone
}
