package normalizer

import (
	"regexp"

	"foxfeed/internal/models"
)

var inlineImagePattern = regexp.MustCompile(`<img[^>]+src="([^"]+)"`)

// ResolveMedia picks the item's image source. The first match wins, in order:
// enclosure link, media:content, media:thumbnail, first inline <img> in the
// description or content HTML.
func ResolveMedia(item models.FeedItem) models.Media {
	if item.EnclosureLink != "" {
		return models.Media{Kind: models.MediaEnclosure, URL: item.EnclosureLink}
	}

	if url := mediaRefURL(item.MediaContent); url != "" {
		return models.Media{Kind: models.MediaContent, URL: url}
	}

	if url := mediaRefURL(item.MediaThumbnail); url != "" {
		return models.Media{Kind: models.MediaThumbnail, URL: url}
	}

	for _, html := range []string{item.Description, item.Content} {
		if url := FirstInlineImage(html); url != "" {
			return models.Media{Kind: models.MediaInlineImage, URL: url}
		}
	}

	return models.Media{Kind: models.MediaNone}
}

// FirstInlineImage returns the src of the first <img> tag in html.
func FirstInlineImage(html string) string {
	if html == "" {
		return ""
	}

	match := inlineImagePattern.FindStringSubmatch(html)
	if len(match) < 2 {
		return ""
	}

	return match[1]
}

// mediaRefURL resolves a media:content or media:thumbnail value, which is
// either a list (first element used) or a single object.
func mediaRefURL(ref any) string {
	switch v := ref.(type) {
	case []any:
		if len(v) == 0 {
			return ""
		}

		return attributeURL(v[0])
	case map[string]any:
		return attributeURL(v)
	}

	return ""
}

// attributeURL reads url directly or from the "$" attribute object.
func attributeURL(v any) string {
	obj, ok := v.(map[string]any)
	if !ok {
		return ""
	}

	if url := stringField(obj, fieldURL); url != "" {
		return url
	}

	if attrs, ok := obj[fieldAttributes].(map[string]any); ok {
		return stringField(attrs, fieldURL)
	}

	return ""
}
