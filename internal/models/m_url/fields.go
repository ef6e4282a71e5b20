package m_url

// Field constants for the urls table.
const (
	TableName = "urls"

	ColUrlID        = "url_id"
	ColUrl          = "url"
	ColFkLocale     = "fk_locale"
	ColResourceType = "resource_type"
	ColResourceID   = "resource_id"
	ColCreatedAt    = "created_at"
	ColUpdatedAt    = "updated_at"
)
