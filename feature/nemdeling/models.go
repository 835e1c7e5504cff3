package nemdeling

import "encoding/xml"

// ServiceMessageFeed is the XML payload posted to the service-messages
// webhook. The feed wraps every list-valued field in an extra element
// holding repeated <item> children.
type ServiceMessageFeed struct {
	XMLName xml.Name             `xml:"result"`
	Items   []ServiceMessageItem `xml:"item"`
}

// ServiceMessageItem is one service message in the feed.
type ServiceMessageItem struct {
	NID             string   `xml:"nid"`
	Title           string   `xml:"title_field"`
	Body            string   `xml:"body"`
	BackgroundColor string   `xml:"field_background_color"`
	Institutions    []string `xml:"field_display_institution>item"`
	Screens         []string `xml:"field_os2_display_list_spot>item"`
}

// EventFeed is the XML payload posted to the events, event-lists and
// event-theme webhooks. All three share the same feed shape.
type EventFeed struct {
	XMLName xml.Name    `xml:"result"`
	Items   []EventItem `xml:"item"`
}

// EventItem is one event in the feed. Dates arrive as "DD.MM.YYYY" and the
// time range as "HH:MM til HH:MM".
type EventItem struct {
	Title        string       `xml:"title"`
	Teaser       string       `xml:"field_teaser"`
	Host         string       `xml:"host"`
	StartDates   []string     `xml:"startdate>item"`
	EndDates     []string     `xml:"enddate>item"`
	Times        []string     `xml:"time>item"`
	Images       []EventImage `xml:"billede>item>img"`
	Color        string       `xml:"color"`
	ColorPalette string       `xml:"farvepar"`
	Screens      []string     `xml:"screen>item"`
}

// EventImage carries the image source URL of an event.
type EventImage struct {
	Src string `xml:"src,attr"`
}

// ParseServiceMessageFeed decodes a service message webhook body.
func ParseServiceMessageFeed(body []byte) (*ServiceMessageFeed, error) {
	var feed ServiceMessageFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// ParseEventFeed decodes an event webhook body.
func ParseEventFeed(body []byte) (*EventFeed, error) {
	var feed EventFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}
