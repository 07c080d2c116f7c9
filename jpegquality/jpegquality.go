// Package jpegquality estimates the quality setting a JPEG image was
// encoded with by inverting the IJG quantization table scaling. The
// estimate is approximate, different encoders round tables differently.
package jpegquality

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

var ErrInvalidJPEG = errors.New("invalid jpeg data")

// luminance quantization table for quality 50 from ITU T.81 Annex K.
var baseLuminance = [64]int{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

type Reader struct {
	quality int
}

// New reads JPEG segments until the first quantization table and derives
// the quality estimate from it.
func New(r io.Reader) (*Reader, error) {
	var soi [2]byte
	if _, err := io.ReadFull(r, soi[:]); err != nil {
		return nil, ErrInvalidJPEG
	}
	if soi[0] != 0xff || soi[1] != 0xd8 {
		return nil, ErrInvalidJPEG
	}

	for {
		var marker [2]byte
		if _, err := io.ReadFull(r, marker[:]); err != nil {
			return nil, ErrInvalidJPEG
		}
		if marker[0] != 0xff {
			return nil, ErrInvalidJPEG
		}
		// skip fill bytes
		for marker[1] == 0xff {
			if _, err := io.ReadFull(r, marker[1:]); err != nil {
				return nil, ErrInvalidJPEG
			}
		}

		switch marker[1] {
		case 0xd9, 0xda:
			// EOI or SOS before any DQT, nothing to estimate from
			return nil, ErrInvalidJPEG
		}

		var lenBuf [2]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, ErrInvalidJPEG
		}
		segLen := int(binary.BigEndian.Uint16(lenBuf[:]))
		if segLen < 2 {
			return nil, ErrInvalidJPEG
		}
		payload := make([]byte, segLen-2)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, ErrInvalidJPEG
		}

		if marker[1] != 0xdb {
			continue
		}

		// DQT may pack several tables, use the luminance one (id 0)
		for off := 0; off < len(payload); {
			precision := payload[off] >> 4
			id := payload[off] & 0x0f
			off++
			size := 64
			if precision > 0 {
				size = 128
			}
			if off+size > len(payload) {
				return nil, ErrInvalidJPEG
			}
			if id == 0 {
				var table [64]int
				for i := range 64 {
					if precision > 0 {
						table[i] = int(binary.BigEndian.Uint16(payload[off+i*2:]))
					} else {
						table[i] = int(payload[off+i])
					}
				}
				return &Reader{quality: estimateQuality(table)}, nil
			}
			off += size
		}
		return nil, ErrInvalidJPEG
	}
}

func NewWithBytes(data []byte) (*Reader, error) {
	return New(bytes.NewReader(data))
}

// Quality returns the estimated encoder quality setting, 1 to 100.
func (r *Reader) Quality() int {
	return r.quality
}

// estimateQuality inverts the libjpeg quality_scaling() mapping. Scale
// percentage is recovered per coefficient and averaged, then mapped back
// to the 1..100 quality range.
func estimateQuality(table [64]int) int {
	var sum, cnt int
	for i := range 64 {
		if baseLuminance[i] == 0 {
			continue
		}
		// table[i] = (base[i]*scale + 50) / 100, clamped to at least 1
		sum += (table[i]*100 - 50) * 100 / baseLuminance[i]
		cnt++
	}
	if cnt == 0 {
		return 1
	}
	scale := sum / (cnt * 100)

	var q int
	if scale <= 100 {
		q = (200 - scale) / 2
	} else {
		q = 5000 / scale
	}
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}
	return q
}
