package model

// Field names used by article and tag records
const (
	// OID is the identifier of any record
	OID = "oId"

	// ArticleTitle is the title of an article
	ArticleTitle = "articleTitle"

	// ArticleCreated is the creation time of an article, in milliseconds since epoch
	ArticleCreated = "articleCreated"

	// ArticleUpdated is the last update time of an article, in milliseconds since epoch
	ArticleUpdated = "articleUpdated"

	// TagTitle is the title of a tag
	TagTitle = "tagTitle"

	// TagReferenceCount is the number of articles referencing a tag
	TagReferenceCount = "tagReferenceCount"
)
