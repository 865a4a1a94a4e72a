package pngchunk

import (
	"strconv"
	"strings"
	"sync"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// MediaTypePNG is the media type recorded in descriptors built by Inspect.
const MediaTypePNG = "image/png"

// Annotation keys set on descriptors built by Inspect.
const (
	// AnnotationChunkCount holds the number of chunks in the container.
	AnnotationChunkCount = "io.meigma.pngchunk.chunk-count"

	// AnnotationChunkTypes holds the comma-separated chunk type codes, in order.
	AnnotationChunkTypes = "io.meigma.pngchunk.chunk-types"
)

// InspectResult summarises a parsed container.
type InspectResult struct {
	container *Container
	digest    digest.Digest
	size      int64

	// Lazy computed stats
	statsOnce      sync.Once
	chunkCount     int
	payloadBytes   uint64
	criticalCount  int
	ancillaryCount int
	types          []string
}

// Inspect parses data and returns a summary of its chunks.
func Inspect(data []byte, opts ...Option) (*InspectResult, error) {
	c, err := Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	r := &InspectResult{
		container: c,
		digest:    digest.FromBytes(data),
		size:      int64(len(data)),
	}
	r.computeStats()
	return r, nil
}

// Container returns the parsed container.
// Statistics describe the inspected bytes; later edits to the container are
// not reflected.
func (r *InspectResult) Container() *Container {
	return r.container
}

// Digest returns the sha256 digest of the inspected bytes.
func (r *InspectResult) Digest() digest.Digest {
	return r.digest
}

// Size returns the number of inspected bytes.
func (r *InspectResult) Size() int64 {
	return r.size
}

// ChunkCount returns the number of chunks.
func (r *InspectResult) ChunkCount() int {
	r.computeStats()
	return r.chunkCount
}

// PayloadBytes returns the sum of all chunk payload sizes.
func (r *InspectResult) PayloadBytes() uint64 {
	r.computeStats()
	return r.payloadBytes
}

// CriticalCount returns the number of chunks whose type code is critical.
func (r *InspectResult) CriticalCount() int {
	r.computeStats()
	return r.criticalCount
}

// AncillaryCount returns the number of chunks whose type code is not critical.
func (r *InspectResult) AncillaryCount() int {
	r.computeStats()
	return r.ancillaryCount
}

// Types returns the chunk type codes in container order.
func (r *InspectResult) Types() []string {
	r.computeStats()
	return append([]string(nil), r.types...)
}

// Descriptor returns an OCI descriptor for the inspected bytes.
func (r *InspectResult) Descriptor() ocispec.Descriptor {
	return ocispec.Descriptor{
		MediaType: MediaTypePNG,
		Digest:    r.digest,
		Size:      r.size,
		Annotations: map[string]string{
			AnnotationChunkCount: strconv.Itoa(r.ChunkCount()),
			AnnotationChunkTypes: strings.Join(r.Types(), ","),
		},
	}
}

// computeStats computes aggregate statistics by iterating all chunks.
func (r *InspectResult) computeStats() {
	r.statsOnce.Do(func() {
		for chunk := range r.container.Chunks() {
			r.payloadBytes += uint64(chunk.Length())
			if chunk.Type().IsCritical() {
				r.criticalCount++
			} else {
				r.ancillaryCount++
			}
			r.types = append(r.types, chunk.Type().String())
		}
		r.chunkCount = len(r.types)
	})
}
