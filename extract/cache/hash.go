package cache

import (
	"github.com/minio/highwayhash"
)

var key = []byte("neurotab0123456789ABCDEF01234567")

// Hash fingerprints the input data for change detection
func Hash(data []byte) (uint64, error) {
	h, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = h.Write(data)
	if err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
