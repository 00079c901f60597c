package store

// KV is the persistence contract every engine component depends on. Values
// are UTF-8 JSON text. A missing key is reported via the bool, not an error;
// callers treat unreadable values the same as missing and fall back to their
// documented defaults.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Well-known keys. Digests get one key per calendar date.
const (
	KeyPreferences   = "preferences"
	KeySavedIDs      = "saved_ids"
	KeyStatusMap     = "status_map"
	KeyStatusHistory = "status_history"
	KeyChecklist     = "checklist"
	KeyProofLinks    = "proof_links"

	digestKeyPrefix = "digest_"
)

// DigestKey scopes a digest to one calendar date (YYYY-MM-DD).
func DigestKey(date string) string {
	return digestKeyPrefix + date
}
