package youtube

import "fmt"

// EmbedHTML renders the iframe fragment that embeds a video at the given
// player size. The attribute order and values are a compatibility contract
// with previously written notes, so the fragment is built verbatim.
func EmbedHTML(id string, width, height int) string {
	return fmt.Sprintf(
		`<iframe width="%d" height="%d" src="https://www.youtube.com/embed/%s" frameborder="0" allowfullscreen></iframe>`,
		width, height, id,
	)
}
