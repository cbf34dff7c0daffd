package cache

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/wbrown/img2svg"
)

// Fingerprint hashes everything a conversion depends on: dimensions,
// pixels and every Config field, with the pixel size clamped. Configs that
// clamp to the same pixel size share a fingerprint.
func Fingerprint(buf img2svg.PixelBuffer, cfg img2svg.Config) uint64 {
	h := fnv.New64a()
	var hdr [17]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(buf.Width))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(buf.Height))
	binary.LittleEndian.PutUint64(hdr[8:], uint64(img2svg.ClampPixelSize(cfg.PixelSize)))
	if cfg.IncludeTransparent {
		hdr[16] |= 1
	}
	if cfg.Strict {
		hdr[16] |= 2
	}
	_, _ = h.Write(hdr[:]) // fnv.Write never returns an error
	_, _ = h.Write(buf.Pix)
	return h.Sum64()
}
