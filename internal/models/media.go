package models

// MediaKind identifies which item field an article image was taken from.
type MediaKind int

// Media kinds in resolution priority order.
const (
	MediaNone MediaKind = iota
	MediaEnclosure
	MediaContent
	MediaThumbnail
	MediaInlineImage
)

// String returns the upstream field name for the kind.
func (k MediaKind) String() string {
	switch k {
	case MediaEnclosure:
		return "enclosure"
	case MediaContent:
		return "media:content"
	case MediaThumbnail:
		return "media:thumbnail"
	case MediaInlineImage:
		return "inline-img"
	case MediaNone:
		return "none"
	}

	return "unknown"
}

// Media is the resolved image source of a feed item.
// URL is empty exactly when Kind is MediaNone.
type Media struct {
	URL  string
	Kind MediaKind
}

// FeedItem is a typed view over one loosely typed item from the conversion service.
// Fields that were absent or not strings are left empty.
type FeedItem struct {
	Category       any
	MediaContent   any
	MediaThumbnail any
	Title          string
	Description    string
	Content        string
	Summary        string
	Link           string
	PubDate        string
	EnclosureLink  string
}
