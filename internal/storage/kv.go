package storage

import (
	"fmt"
)

// ProfileKV is the key/value space of one learner profile.
type ProfileKV struct {
	store   *Store
	profile string
}

// Profile returns the key/value space for name. Blank names map to
// DefaultProfile.
func (s *Store) Profile(name string) *ProfileKV {
	return &ProfileKV{store: s, profile: normalizeProfile(name)}
}

// Name returns the profile name.
func (p *ProfileKV) Name() string {
	return p.profile
}

// Get returns the value stored under key.
func (p *ProfileKV) Get(key string) (string, bool, error) {
	var value string
	err := p.store.db.Get(&value,
		"SELECT value FROM kv WHERE profile = ? AND key = ?",
		p.profile, key,
	)
	if isNoRows(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s/%s: %w", p.profile, key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (p *ProfileKV) Set(key, value string) error {
	_, err := p.store.db.Exec(
		`INSERT INTO kv (profile, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile, key) DO UPDATE SET
		   value = excluded.value,
		   updated_at = excluded.updated_at`,
		p.profile, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s/%s: %w", p.profile, key, err)
	}
	return nil
}
