package makeable

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes a stable content hash of a snapshot. The snapshot
// is serialized to canonical JSON (encoding/json emits map keys sorted),
// so two snapshots with identical content always hash identically no
// matter how the underlying store iterated. The hash is deterministic
// across process runs, which is what lets a restarted process detect
// "nothing changed since last run".
//
// Fingerprinting a well-formed snapshot never fails; an error here means
// the snapshot holds something JSON cannot represent, which is a
// configuration problem rather than a per-call condition.
func Fingerprint(snapshot interface{}) (uint64, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return xxhash.Sum64(data), nil
}
