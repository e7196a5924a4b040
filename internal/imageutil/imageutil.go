package imageutil

import "encoding/base64"

// DefaultImagePath is used when a bike has no stored image.
const DefaultImagePath = "/images/default-bike.jpg"

// DataURL renders stored image bytes as an inline <img> source.
func DataURL(image []byte) string {
	if len(image) == 0 {
		return DefaultImagePath
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)
}
