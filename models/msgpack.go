package models

import (
	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// EncodeImages packs an image reference list into msgpack bytes for the images column.
// A nil or empty list encodes to nil so the column stays NULL.
func EncodeImages(images []string) ([]byte, error) {
	if len(images) == 0 {
		return nil, nil
	}

	b, err := msgpack.Marshal(images)
	if err != nil {
		return nil, serr.Wrap(err, "failed to msgpack encode images")
	}
	return b, nil
}

// DecodeImages reverses EncodeImages. NULL or empty input yields an empty, non-nil list.
func DecodeImages(b []byte) ([]string, error) {
	if len(b) == 0 {
		return []string{}, nil
	}

	var images []string
	if err := msgpack.Unmarshal(b, &images); err != nil {
		return nil, serr.Wrap(err, "failed to unmarshal msgpack images")
	}
	if images == nil {
		images = []string{}
	}
	return images, nil
}
