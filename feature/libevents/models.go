package libevents

import "encoding/xml"

// ActivityFeed is the XML payload of the library activities feed.
type ActivityFeed struct {
	XMLName    xml.Name   `xml:"activities"`
	Activities []Activity `xml:"activity"`
}

// Activity is one event in the feed. Activities without screen names are
// not meant for the displays and are skipped.
type Activity struct {
	UID         string   `xml:"uid"`
	Title       string   `xml:"titel"`
	Image       string   `xml:"list_image"`
	Description string   `xml:"beskrivelse"`
	StartDate   string   `xml:"startdato"`
	EndDate     string   `xml:"slutdato"`
	Branch      string   `xml:"bibname"`
	Screens     []string `xml:"screenname>item"`
}

// ParseActivityFeed decodes an activities feed document.
func ParseActivityFeed(body []byte) (*ActivityFeed, error) {
	var feed ActivityFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}
