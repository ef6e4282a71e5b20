package m_url

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildSaveMap prepares the canonical columns for a URL row.
func BuildSaveMap(urlID, url, localeID, resourceType, resourceID string, createdAt, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColUrlID:        urlID,
		ColUrl:          url,
		ColFkLocale:     localeID,
		ColResourceType: resourceType,
		ColResourceID:   resourceID,
		ColCreatedAt:    createdAt,
		ColUpdatedAt:    updatedAt,
	}
}

// SaveMutation builds an InsertOrUpdate so a URL row is created on first
// save and overwritten in place on subsequent saves of the same url_id.
func SaveMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.InsertOrUpdate(TableName, cols, vals)
}

// DeleteMutation builds a Delete for a URL row by primary key.
func DeleteMutation(urlID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{urlID})
}
