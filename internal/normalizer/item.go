package normalizer

import "foxfeed/internal/models"

// Upstream field names used by the conversion service.
const (
	fieldTitle          = "title"
	fieldDescription    = "description"
	fieldContent        = "content"
	fieldSummary        = "summary"
	fieldLink           = "link"
	fieldPubDate        = "pubDate"
	fieldCategories     = "categories"
	fieldCategory       = "category"
	fieldEnclosure      = "enclosure"
	fieldMediaContent   = "media:content"
	fieldMediaThumbnail = "media:thumbnail"
	fieldURL            = "url"
	fieldAttributes     = "$"
)

// DecodeItem builds a typed view of a raw item. It never fails: fields with
// unexpected types are treated as absent.
func DecodeItem(raw map[string]any) models.FeedItem {
	item := models.FeedItem{
		Title:          stringField(raw, fieldTitle),
		Description:    stringField(raw, fieldDescription),
		Content:        stringField(raw, fieldContent),
		Summary:        stringField(raw, fieldSummary),
		Link:           stringField(raw, fieldLink),
		PubDate:        stringField(raw, fieldPubDate),
		MediaContent:   raw[fieldMediaContent],
		MediaThumbnail: raw[fieldMediaThumbnail],
	}

	if categories, ok := raw[fieldCategories].([]any); ok && len(categories) > 0 && truthy(categories[0]) {
		item.Category = categories[0]
	} else if truthy(raw[fieldCategory]) {
		item.Category = raw[fieldCategory]
	}

	if enclosure, ok := raw[fieldEnclosure].(map[string]any); ok {
		item.EnclosureLink = stringField(enclosure, fieldLink)
	}

	return item
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)

	return s
}

// truthy mirrors the loose presence checks feed producers rely on: empty
// strings, zero numbers, false and null count as missing.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	}

	return true
}
