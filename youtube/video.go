package youtube

// Video is the snippet metadata captured for a video or short. Fields the
// API omits stay at their zero values so note rendering never branches on
// missing metadata.
type Video struct {
	ID          string   `json:"id" jsonschema:"description=YouTube video identifier."`
	Title       string   `json:"title" jsonschema:"description=Video title."`
	Description string   `json:"description" jsonschema:"description=Video description."`
	Channel     string   `json:"channel" jsonschema:"description=Name of the channel the video was published on."`
	PublishedAt string   `json:"publishedAt" jsonschema:"description=RFC 3339 publish timestamp."`
	Tags        []string `json:"tags" jsonschema:"description=Uploader-supplied tags."`
}
