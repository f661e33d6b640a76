package note

import "fmt"

// VideoEmbed renders the iframe snippet for a YouTube or Shorts note.
func VideoEmbed(videoID string, width, height int) string {
	return fmt.Sprintf(
		`<iframe width="%d" height="%d" src="https://www.youtube.com/embed/%s" frameborder="0" allowfullscreen></iframe>`,
		width, height, videoID)
}

// ImageEmbed renders the image snippet for a web link note. An empty image URL
// yields an empty snippet.
func ImageEmbed(imageURL string, width, height int) string {
	if imageURL == "" {
		return ""
	}
	return fmt.Sprintf(`<img src="%s" width="%d" height="%d" alt="Image" />`, imageURL, width, height)
}
