package room

// Image is one room photo
type Image struct {
	ID    int    `json:"id" yaml:"id" toml:"id"`
	URL   string `json:"url" yaml:"url" toml:"url"`
	Cover bool   `json:"cover,omitempty" yaml:"cover,omitempty" toml:"cover,omitempty"`
}

// SetCover marks the image with the given id as the only cover.
// An unknown id clears every cover flag.
func SetCover(images []Image, id int) []Image {
	out := make([]Image, len(images))
	for i, img := range images {
		img.Cover = img.ID == id
		out[i] = img
	}
	return out
}

// MoveImage moves the image at index from to index to, shifting the others.
// Out-of-range indexes leave the order unchanged.
func MoveImage(images []Image, from, to int) []Image {
	out := make([]Image, len(images))
	copy(out, images)
	if from == to || from < 0 || to < 0 || from >= len(out) || to >= len(out) {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]Image{moved}, out[to:]...)...)
	return out
}

// Cover returns the cover image, if any
func Cover(images []Image) (Image, bool) {
	for _, img := range images {
		if img.Cover {
			return img, true
		}
	}
	return Image{}, false
}
