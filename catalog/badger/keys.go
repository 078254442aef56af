package badger

import (
	"fmt"

	"github.com/poiesic/wayfarer/core"
)

// Key prefixes for different data types
const (
	destinationPrefix = "dstrec"
	packagePrefix     = "pkgrec"
	fingerprintPrefix = "catfpr"
)

// makeDestinationKey generates a key for a destination record by ID.
func makeDestinationKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", destinationPrefix, id))
}

// makePackageKey generates a key for a package record by ID.
func makePackageKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", packagePrefix, id))
}

// makeFingerprintKey generates a key for a collection fingerprint.
func makeFingerprintKey(collection string) []byte {
	return []byte(fmt.Sprintf("%s:%s", fingerprintPrefix, collection))
}
