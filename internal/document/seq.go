package document

import "github.com/oklog/ulid/v2"

// Begin issues a fresh request token for a term fingerprint and makes it the
// current one. Responses belonging to an older token must be discarded via
// ApplyIfCurrent, so the last *issued* request wins rather than the last
// response to land.
func (d *Document) Begin(hex string) ulid.ULID {
	d.mu.Lock()
	defer d.mu.Unlock()
	token := ulid.MustNew(ulid.Now(), d.entropy)
	d.seq[hex] = token
	return token
}

// ApplyIfCurrent runs apply only when token is still the current request
// token for hex. It reports whether apply ran.
func (d *Document) ApplyIfCurrent(hex string, token ulid.ULID, apply func()) bool {
	d.mu.RLock()
	current, ok := d.seq[hex]
	d.mu.RUnlock()
	if !ok || current != token {
		return false
	}
	apply()
	return true
}
