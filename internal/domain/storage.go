package domain

// StoredObject is an entry returned by an object storage listing.
type StoredObject struct {
	Path string
}

type ObjectStore interface {
	List(prefix string) ([]StoredObject, error)
	PublicURL(path string) string
}

// UserPDFPrefix is the storage folder holding a user's uploads.
func UserPDFPrefix(userID string) string {
	return "pdfs/" + userID
}
