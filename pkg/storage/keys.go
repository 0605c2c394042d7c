package storage

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ObjectKey builds a collision-resistant key for an uploaded file: a
// millisecond timestamp plus a random base36 suffix, keeping the original
// extension. A non-empty namespace (the generated request ID) becomes a
// prefix so one submission's photos stay grouped.
func ObjectKey(namespace, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randSuffix(), ext)
	if namespace == "" {
		return name
	}
	return namespace + "/" + name
}

func randSuffix() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// fall back to the clock; the timestamp prefix still disambiguates
		return strconv.FormatInt(time.Now().UnixNano()%1679616, 36)
	}
	return strconv.FormatUint(uint64(binary.BigEndian.Uint32(b[:])), 36)
}

// KeyFromURL extracts the trailing path segment of a stored object's public
// URL, which is how gallery deletes recover the object key.
func KeyFromURL(url string) string {
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}
